package m68k

// memBus is a flat 1MB memory-backed Bus used throughout the test suite.
// Reads/writes are big-endian, matching the wire format §4.1 specifies.
type memBus struct {
	mem [1 << 20]uint8
}

func newMemBus() *memBus { return &memBus{} }

func (b *memBus) Read8(addr uint32) uint8 { return b.mem[addr&0xFFFFF] }

func (b *memBus) Read16(addr uint32) uint16 {
	addr &= 0xFFFFF
	return uint16(b.mem[addr])<<8 | uint16(b.mem[addr+1])
}

func (b *memBus) Read32(addr uint32) uint32 {
	return uint32(b.Read16(addr))<<16 | uint32(b.Read16(addr+2))
}

func (b *memBus) Write8(addr uint32, v uint8) { b.mem[addr&0xFFFFF] = v }

func (b *memBus) Write16(addr uint32, v uint16) {
	addr &= 0xFFFFF
	b.mem[addr] = uint8(v >> 8)
	b.mem[addr+1] = uint8(v)
}

func (b *memBus) Write32(addr uint32, v uint32) {
	b.Write16(addr, uint16(v>>16))
	b.Write16(addr+2, uint16(v))
}

// loadWords writes a little program (a sequence of opcode/extension words)
// starting at addr.
func (b *memBus) loadWords(addr uint32, words ...uint16) {
	for _, w := range words {
		b.Write16(addr, w)
		addr += 2
	}
}

// newTestCPU builds a CPU with SSP/PC vectors preloaded and code loaded at
// 0x1000, ready to single-step. Reset vector: SSP=0x10000, PC=0x1000.
func newTestCPU(t interface{ Fatalf(string, ...any) }, variant Variant, words ...uint16) (*CPU, *memBus) {
	bus := newMemBus()
	bus.Write32(0, 0x00010000)
	bus.Write32(4, 0x00001000)
	bus.loadWords(0x1000, words...)
	cpu, err := New(bus, variant)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return cpu, bus
}
