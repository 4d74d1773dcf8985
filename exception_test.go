package m68k

import "testing"

func TestIllegalInstructionStacksShortFrameOn68000(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000, 0x4AFC) // ILLEGAL
	bus.Write32(0x10, 0x2000)                  // vector 4 (illegal) target
	cpu.Step()

	if cpu.PC() != 0x2000 {
		t.Fatalf("PC = %#x, want 0x2000 (illegal vector target)", cpu.PC())
	}
	if !cpu.Registers().supervisor() {
		t.Fatal("exception entry must set the supervisor bit")
	}
	if cpu.A7() != 0xFFF8 {
		t.Fatalf("A7 = %#x, want 0xfff8 (4-word frame pushed below 0x10000)", cpu.A7())
	}
	if got := bus.Read16(0xFFF8); got != 0x2700 {
		t.Fatalf("stacked SR = %#x, want 0x2700 (pre-exception SR, on top of the frame)", got)
	}
	if got := bus.Read32(0xFFFA); got != 0x1002 {
		t.Fatalf("stacked PC = %#x, want 0x1002 (address after the ILLEGAL opcode word)", got)
	}
	if got := bus.Read16(0xFFFE); got != 0x1010 {
		t.Fatalf("stacked format/vector word = %#x, want 0x1010 (frame1, vector 4)", got)
	}
}

func TestRteRoundTripRestoresPcSrAndStack(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000, 0x4AFC) // ILLEGAL at 0x1000
	bus.Write32(0x10, 0x2000)                  // illegal vector -> handler at 0x2000
	bus.loadWords(0x2000, 0x4E73)              // RTE
	cpu.Step()                                 // raises the exception, jumps to the handler

	if cpu.PC() != 0x2000 {
		t.Fatalf("PC = %#x, want 0x2000 before RTE runs", cpu.PC())
	}

	cpu.Step() // executes RTE

	if cpu.PC() != 0x1002 {
		t.Fatalf("PC = %#x, want 0x1002 (resumed after the ILLEGAL opcode)", cpu.PC())
	}
	if cpu.SR() != 0x2700 {
		t.Fatalf("SR = %#x, want 0x2700 (fully restored)", cpu.SR())
	}
	if cpu.A7() != 0x10000 {
		t.Fatalf("A7 = %#x, want 0x10000 (stack fully unwound)", cpu.A7())
	}
}

func TestVbrRelocatesExceptionVectorTable(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68010, 0x4AFC) // ILLEGAL
	cpu.SetVBR(0x8000)
	bus.Write32(0x8010, 0x3000) // vector 4 relative to the relocated VBR
	cpu.Step()

	if cpu.PC() != 0x3000 {
		t.Fatalf("PC = %#x, want 0x3000 (vector fetched through the relocated VBR)", cpu.PC())
	}
}

func TestMoveToSrFromUserModeRaisesPrivilegeViolation(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000, 0x46FC, 0x2700) // MOVE #$2700,SR
	bus.Write32(0x20, 0x4000)                          // vector 8 (privilege) target
	cpu.SetSR(0x0000)                                  // drop to user mode
	cpu.Step()

	if cpu.PC() != 0x4000 {
		t.Fatalf("PC = %#x, want 0x4000 (privilege-violation vector target)", cpu.PC())
	}
	if !cpu.Registers().supervisor() {
		t.Fatal("accepting the privilege-violation exception must enter supervisor mode")
	}
	if cpu.SR() != srS {
		t.Fatalf("SR = %#x, want %#x (only the supervisor bit set by exception entry; the faulting MOVE to SR must never have taken effect)", cpu.SR(), srS)
	}
}

func TestRteRejectsInvalidFrameFormatOn68010(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68010, 0x4E73) // RTE
	bus.Write32(0x38, 0x5000)                  // vector 14 (format error) target

	cpu.SetA7(0x5000)
	bus.Write16(0x5000, 0x2700)             // SR
	bus.Write32(0x5002, 0x00003000)         // PC
	bus.Write16(0x5006, 5<<12|uint16(14)*4) // bogus format nibble 5

	cpu.Step()

	if cpu.PC() != 0x5000 {
		t.Fatalf("PC = %#x, want 0x5000 (format-error vector target)", cpu.PC())
	}
}
