package m68k

// LoadImage writes image into bus starting at addr, big-endian word at a
// time, matching the donor's LoadProgramBytes convention. addr must be
// word-aligned (the core's own instruction fetch requires it) and the image
// must fit below the 4GiB addressable ceiling; violating either returns a
// wrapped sentinel error instead of a CPU exception, since no instruction
// has executed yet for the fault to attach to.
func LoadImage(bus Bus, addr uint32, image []byte) error {
	if addr%2 != 0 {
		return wrapf(ErrMisaligned, "address %#x", addr)
	}
	end := uint64(addr) + uint64(len(image))
	if end > 1<<32 {
		return wrapf(ErrImageTooLarge, "%d bytes at %#x overruns the 32-bit address space", len(image), addr)
	}

	for i := 0; i+1 < len(image); i += 2 {
		bus.Write16(addr+uint32(i), uint16(image[i])<<8|uint16(image[i+1]))
	}
	if len(image)%2 != 0 {
		bus.Write8(addr+uint32(len(image)-1), image[len(image)-1])
	}
	return nil
}
