package m68k

import "testing"

// TestScenarioNopStopLoopTerminates: Reset at SSP=0x1000/PC=0x400, memory
// holds NOP then STOP #$2700. After two steps the core is stopped with
// PC past the STOP instruction and the operand word loaded into SR.
func TestScenarioNopStopLoopTerminates(t *testing.T) {
	bus := newMemBus()
	bus.Write32(0, 0x00001000) // reset SSP
	bus.Write32(4, 0x00000400) // reset PC
	bus.loadWords(0x400, 0x4E71, 0x4E72, 0x2700)

	cpu, err := New(bus, MC68000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cpu.Step() // NOP
	cpu.Step() // STOP #$2700

	if !cpu.Stopped() {
		t.Fatal("core must be stopped after executing STOP")
	}
	if cpu.PC() != 0x406 {
		t.Fatalf("PC = %#x, want 0x406", cpu.PC())
	}
	if cpu.SR() != 0x2700 {
		t.Fatalf("SR = %#x, want 0x2700", cpu.SR())
	}
}

// TestScenarioDivideByZeroHandlerRuns: DIVU.W D5,D6 with a zero divisor
// takes the zero-divide vector to a handler that sets D7 and returns; the
// dividend in D6 must be left untouched and PC must land past the DIVU.
func TestScenarioDivideByZeroHandlerRuns(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000, 0x8CC5) // DIVU.W D5,D6
	bus.Write32(0x14, 0x500)                   // vector 5 (zero divide)
	bus.loadWords(0x500, 0x7E01, 0x4E73)       // MOVEQ #1,D7 ; RTE

	cpu.SetD(5, 0)
	cpu.SetD(6, 100)

	cpu.Step() // DIVU faults, takes the vector
	if cpu.PC() != 0x500 {
		t.Fatalf("PC = %#x, want 0x500 (zero-divide vector taken)", cpu.PC())
	}
	cpu.Step() // MOVEQ #1,D7
	cpu.Step() // RTE

	if cpu.D(7) != 1 {
		t.Fatalf("D7 = %#x, want 1", cpu.D(7))
	}
	if cpu.D(6) != 100 {
		t.Fatalf("D6 = %#x, want 100 (unchanged by the faulted DIVU)", cpu.D(6))
	}
	if cpu.PC() != 0x1002 {
		t.Fatalf("PC = %#x, want 0x1002 (past the DIVU)", cpu.PC())
	}
}

// TestScenarioAddressErrorOnOddWordAccess: a 68000 executing MOVE.W
// (xxxx).L,D0 with the absolute address odd must stack a 14-byte short
// frame recording the faulting instruction, the odd address, and that the
// access was a read.
func TestScenarioAddressErrorOnOddWordAccess(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000, 0x3039, 0x0000, 0x1001) // MOVE.W $00001001.L,D0
	bus.Write32(0x0C, 0x2000)                                  // vector 3 (address error)

	cpu.Step()

	if cpu.PC() != 0x2000 {
		t.Fatalf("PC = %#x, want 0x2000 (address-error vector taken)", cpu.PC())
	}
	const frameBase = 0xFFF2 // SSP(0x10000) - 14
	if cpu.A7() != frameBase {
		t.Fatalf("A7 = %#x, want %#x (14-byte short frame)", cpu.A7(), frameBase)
	}
	if got := bus.Read16(frameBase + 6); got != 0x3039 {
		t.Fatalf("stacked IR = %#x, want 0x3039", got)
	}
	if got := bus.Read32(frameBase + 8); got != 0x1001 {
		t.Fatalf("stacked access address = %#x, want 0x1001", got)
	}
	ssw := bus.Read16(frameBase + 12)
	if ssw&(1<<4) == 0 { // fault-status read/write bit: set means read
		t.Fatal("fault-status word must record the access as a read")
	}
}

// TestScenarioShiftByZeroCountLeavesOperandAndMostFlagsUnchanged: a
// register-count shift with a zero count must leave the operand untouched
// and clear V and C while preserving X, per the §4 shift-count-0 rule.
func TestScenarioShiftByZeroCountLeavesOperandAndMostFlagsUnchanged(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000, 0xE1A1) // ASL.L D0,D1 (count in D0)
	cpu.SetD(0, 0)
	cpu.SetD(1, 0x12345678)
	cpu.SetSR(cpu.SR() | srX) // X set beforehand; must survive a count of 0

	cpu.Step()

	if cpu.D(1) != 0x12345678 {
		t.Fatalf("D1 = %#x, want 0x12345678 (shift count 0 is a no-op)", cpu.D(1))
	}
	sr := cpu.SR()
	if sr&srX == 0 {
		t.Fatal("X must be preserved across a shift count of 0")
	}
	if sr&srV != 0 {
		t.Fatal("V must be cleared for a shift count of 0")
	}
	if sr&srC != 0 {
		t.Fatal("C must be cleared for a shift count of 0")
	}
	if sr&srN != 0 {
		t.Fatal("N must be clear (operand's top bit is 0)")
	}
	if sr&srZ != 0 {
		t.Fatal("Z must be clear (operand is nonzero)")
	}
}

// TestScenarioBfextsSignExtendsIntoDestinationRegister: BFEXTS of a 4-bit
// field whose top bit is 1 sign-extends to all 32 bits of D0.
func TestScenarioBfextsSignExtendsIntoDestinationRegister(t *testing.T) {
	// BFEXTS $2000{0:4},D0 -- absolute-long EA (mode 7, reg 1), offset 0, width 4.
	cpu, bus := newTestCPU(t, MC68030, 0xEBF9, 0x0004, 0x0000, 0x2000)
	bus.Write32(0x2000, 0xF0000000)

	cpu.Step()

	if cpu.D(0) != 0xFFFFFFFF {
		t.Fatalf("D0 = %#x, want 0xffffffff", cpu.D(0))
	}
	if cpu.SR()&srZ != 0 {
		t.Fatal("Z must be clear for a nonzero extracted field")
	}
	if cpu.SR()&srN == 0 {
		t.Fatal("N must be set for a negative sign-extended field")
	}
}

// TestScenarioMove16CopiesSixteenByteBlockAndAdvancesBothPointers: MOVE16
// (A0)+,(A1)+ on a 68040 copies a 16-byte, 16-byte-aligned block and
// advances both address registers by 16.
func TestScenarioMove16CopiesSixteenByteBlockAndAdvancesBothPointers(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68040, 0xF620, 0x1000) // MOVE16 (A0)+,(A1)+ ; dst reg A1 in ext word
	bus.loadWords(0x3000,
		0x1122, 0x3344, 0x1122, 0x3344,
		0x1122, 0x3344, 0x1122, 0x3344,
	)
	cpu.SetA(0, 0x3000)
	cpu.SetA(1, 0x3100)

	cpu.Step()

	for i := uint32(0); i < 16; i++ {
		if bus.Read8(0x3100+i) != bus.Read8(0x3000+i) {
			t.Fatalf("byte %d of destination = %#x, want %#x", i, bus.Read8(0x3100+i), bus.Read8(0x3000+i))
		}
	}
	if cpu.A(0) != 0x3010 {
		t.Fatalf("A0 = %#x, want 0x3010", cpu.A(0))
	}
	if cpu.A(1) != 0x3110 {
		t.Fatalf("A1 = %#x, want 0x3110", cpu.A(1))
	}
}
