package m68k

import "testing"

func TestAbcdAddsPackedDigitsWithDecimalCorrection(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000, 0xC101) // ABCD D1,D0
	cpu.SetD(0, 0x09)
	cpu.SetD(1, 0x01)
	cpu.Step()
	if cpu.D(0)&0xFF != 0x10 {
		t.Fatalf("D0 low byte = %#x, want 0x10 (09+01 BCD)", cpu.D(0)&0xFF)
	}
	if cpu.flagC() || cpu.flagX() {
		t.Fatal("09+01 does not carry out of the decimal byte")
	}
}

func TestAbcdCarriesOutOnDecimalOverflow(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000, 0xC101) // ABCD D1,D0
	cpu.SetD(0, 0x99)
	cpu.SetD(1, 0x01)
	cpu.Step()
	if cpu.D(0)&0xFF != 0x00 {
		t.Fatalf("D0 low byte = %#x, want 0x00 (99+01 wraps)", cpu.D(0)&0xFF)
	}
	if !cpu.flagC() || !cpu.flagX() {
		t.Fatal("99+01 must carry out, setting both C and X")
	}
}

func TestSbcdSubtractsPackedDigits(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000, 0x8101) // SBCD D1,D0
	cpu.SetD(0, 0x15)
	cpu.SetD(1, 0x06)
	cpu.Step()
	if cpu.D(0)&0xFF != 0x09 {
		t.Fatalf("D0 low byte = %#x, want 0x09 (15-06 BCD)", cpu.D(0)&0xFF)
	}
	if cpu.flagC() {
		t.Fatal("15-06 does not borrow")
	}
}

func TestNbcdNegatesPackedDigit(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000, 0x4800) // NBCD D0
	cpu.SetD(0, 0x01)
	cpu.Step()
	if cpu.D(0)&0xFF != 0x99 {
		t.Fatalf("D0 low byte = %#x, want 0x99 (0-01 borrows to 99)", cpu.D(0)&0xFF)
	}
	if !cpu.flagC() {
		t.Fatal("NBCD of a nonzero digit must borrow, setting C")
	}
}

func TestPackUnpackMemoryRoundTripPreservesByteOrder(t *testing.T) {
	// UNPK -(A0),-(A1),#0 then PACK -(A1),-(A2),#0: PACK's memory-to-memory
	// source read must reconstruct the 16-bit word in the same byte order
	// UNPK wrote it, or the round trip doesn't reproduce the original byte.
	cpu, bus := newTestCPU(t, MC68020, 0x8388, 0x0000, 0x8549, 0x0000)
	cpu.SetA(0, 0x3001)
	cpu.SetA(1, 0x4002)
	bus.Write8(0x3000, 0x37)
	cpu.Step()
	if got := bus.Read8(0x4000); got != 0x03 {
		t.Fatalf("unpacked tens digit at 0x4000 = %#x, want 0x03", got)
	}
	if got := bus.Read8(0x4001); got != 0x07 {
		t.Fatalf("unpacked units digit at 0x4001 = %#x, want 0x07", got)
	}

	cpu.SetA(1, 0x4002)
	cpu.SetA(2, 0x5001)
	cpu.Step()
	if got := bus.Read8(0x5000); got != 0x37 {
		t.Fatalf("repacked byte at 0x5000 = %#x, want the original 0x37", got)
	}
}

func TestAbcdMemoryOperandPredecrements(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000, 0xC109) // ABCD -(A1),-(A0)
	cpu.SetA(0, 0x2001)
	cpu.SetA(1, 0x3001)
	bus.Write8(0x2000, 0x09)
	bus.Write8(0x3000, 0x01)
	cpu.Step()
	if got := bus.Read8(0x2000); got != 0x10 {
		t.Fatalf("destination byte = %#x, want 0x10", got)
	}
	if cpu.A(0) != 0x2000 || cpu.A(1) != 0x3000 {
		t.Fatalf("A0=%#x A1=%#x, both must predecrement by 1", cpu.A(0), cpu.A(1))
	}
}
