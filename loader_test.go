package m68k

import (
	"errors"
	"testing"
)

func TestLoadImageWritesBigEndianWords(t *testing.T) {
	bus := newMemBus()
	if err := LoadImage(bus, 0x1000, []byte{0x4E, 0x71, 0x4E, 0x75}); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got := bus.Read16(0x1000); got != 0x4E71 {
		t.Fatalf("word at 0x1000 = %#x, want 0x4e71 (nop)", got)
	}
	if got := bus.Read16(0x1002); got != 0x4E75 {
		t.Fatalf("word at 0x1002 = %#x, want 0x4e75 (rts)", got)
	}
}

func TestLoadImageWritesTrailingOddByte(t *testing.T) {
	bus := newMemBus()
	if err := LoadImage(bus, 0x2000, []byte{0xAA, 0xBB, 0xCC}); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got := bus.Read16(0x2000); got != 0xAABB {
		t.Fatalf("word at 0x2000 = %#x, want 0xaabb", got)
	}
	if got := bus.Read8(0x2002); got != 0xCC {
		t.Fatalf("trailing byte at 0x2002 = %#x, want 0xcc", got)
	}
}

func TestLoadImageRejectsOddAddress(t *testing.T) {
	bus := newMemBus()
	err := LoadImage(bus, 0x1001, []byte{0x00, 0x01})
	if !errors.Is(err, ErrMisaligned) {
		t.Fatalf("err = %v, want ErrMisaligned", err)
	}
}

func TestLoadImageRejectsImageOverrunningAddressSpace(t *testing.T) {
	bus := newMemBus()
	err := LoadImage(bus, 0xFFFFFFF0, make([]byte, 32))
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("err = %v, want ErrImageTooLarge", err)
	}
}
