package m68k

import "testing"

func TestBfextuExtractsRotatedField(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68020, 0xE9C0, 0x3108) // BFEXTU D0{4:8},D3
	cpu.SetD(0, 0x12345678)
	cpu.Step()
	if cpu.D(3) != 0x23 {
		t.Fatalf("D3 = %#x, want 0x23", cpu.D(3))
	}
}

func TestBfinsWritesFieldAtComputedShift(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68020, 0xEFC1, 0x2108) // BFINS D2,D1{4:8}
	cpu.SetD(1, 0)
	cpu.SetD(2, 0xAB)
	cpu.Step()
	if cpu.D(1) != 0xAB00000 {
		t.Fatalf("D1 = %#x, want 0xab00000", cpu.D(1))
	}
}

func TestBfclrZeroesMemoryFieldAndReportsOriginalFlags(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68020, 0xECD0, 0x0008) // BFCLR (A0){0:8}
	cpu.SetA(0, 0x2000)
	bus.Write8(0x2000, 0xFF)
	cpu.Step()
	if got := bus.Read8(0x2000); got != 0 {
		t.Fatalf("memory byte = %#x, want 0", got)
	}
	if !cpu.flagN() {
		t.Fatal("BFCLR must report N from the pre-clear field value (0xff has bit7 set)")
	}
	if cpu.flagZ() {
		t.Fatal("original field value 0xff is nonzero, Z must be clear")
	}
}

func TestBitfieldRegisterOffsetCanBeNegative(t *testing.T) {
	// BFEXTU (A0){D2:8},D3 with D2 holding -8: a register offset is a full
	// signed 32-bit value, so an offset of -8 must address the byte one
	// below A0, not wrap to some enormous forward displacement.
	cpu, bus := newTestCPU(t, MC68020, 0xE9D0, 0x3888)
	cpu.SetA(0, 0x2001)
	cpu.SetD(2, 0xFFFFFFF8) // -8 in two's complement
	bus.Write8(0x2000, 0xAB)
	cpu.Step()
	if cpu.D(3) != 0xAB {
		t.Fatalf("D3 = %#x, want 0xab (negative register offset addresses the preceding byte)", cpu.D(3))
	}
}

func TestBfRequiresFullExtensionCapability(t *testing.T) {
	// On a plain 68000 (no has020Ext), the BFxxx bit pattern falls through to
	// execShiftRotateMem instead of execBitfield -- it neither traps nor
	// consumes the would-be BF extension word.
	cpu, _ := newTestCPU(t, MC68000, 0xE9C0, 0x3108)
	cpu.SetD(0, 0x12345678)
	cpu.Step()
	if cpu.PC() != 0x1002 {
		t.Fatalf("PC = %#x, want 0x1002 (single-word shift form, no BF extension word consumed)", cpu.PC())
	}
}
