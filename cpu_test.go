package m68k

import "testing"

func TestResetLoadsVectorsAndSupervisorState(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000, 0x4E71) // NOP
	if cpu.PC() != 0x1000 {
		t.Fatalf("PC = %#x, want 0x1000", cpu.PC())
	}
	if cpu.A7() != 0x10000 {
		t.Fatalf("A7 = %#x, want 0x10000", cpu.A7())
	}
	if !cpu.Registers().supervisor() {
		t.Fatal("reset must enter supervisor mode")
	}
	if level := (cpu.SR() & srIMask) >> 8; level != 7 {
		t.Fatalf("interrupt mask after reset = %d, want 7", level)
	}
}

func TestStepAdvancesPC(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000, 0x4E71, 0x4E71)
	cpu.Step()
	if cpu.PC() != 0x1002 {
		t.Fatalf("PC after NOP = %#x, want 0x1002", cpu.PC())
	}
}

func TestIllegalOpcodeRaisesVector4(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000, 0x4AFC) // ILLEGAL
	bus.Write32(vecIllegalAddr(), 0x00002000)
	cpu.Step()
	if cpu.PC() != 0x2000 {
		t.Fatalf("PC after illegal = %#x, want 0x2000", cpu.PC())
	}
	if !cpu.Registers().supervisor() {
		t.Fatal("exception entry must set supervisor bit")
	}
}

func vecIllegalAddr() uint32 { return uint32(vecIllegal) * 4 }

type recordingHLE struct {
	aLineHit, fLineHit, trapHit, bkptHit, illegalHit bool
}

func (r *recordingHLE) HandleALine(cpu *CPU, bus Bus, opcode uint16) bool {
	r.aLineHit = true
	cpu.SetPC(cpu.PC()) // no-op adjustment, exception suppressed
	return true
}
func (r *recordingHLE) HandleFLine(cpu *CPU, bus Bus, opcode uint16) bool {
	r.fLineHit = true
	return true
}
func (r *recordingHLE) HandleTrap(cpu *CPU, bus Bus, n uint8) bool {
	r.trapHit = true
	return true
}
func (r *recordingHLE) HandleBreakpoint(cpu *CPU, bus Bus, n uint8) bool {
	r.bkptHit = true
	return true
}
func (r *recordingHLE) HandleIllegal(cpu *CPU, bus Bus, opcode uint16) bool {
	r.illegalHit = true
	return true
}

func TestHLEInterceptsALineBeforeException(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000, 0xA800) // A-line opcode
	h := &recordingHLE{}
	cpu.StepWithHLE(h)
	if !h.aLineHit {
		t.Fatal("HandleALine was not consulted")
	}
	if cpu.PC() != 0x1002 {
		t.Fatalf("PC = %#x, want 0x1002 (no exception taken)", cpu.PC())
	}
}

func TestHLEInterceptsTrap(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000, 0x4E40) // TRAP #0
	h := &recordingHLE{}
	cpu.StepWithHLE(h)
	if !h.trapHit {
		t.Fatal("HandleTrap was not consulted")
	}
}

func TestHLEInterceptsBkpt(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68020, 0x4848) // BKPT #0
	h := &recordingHLE{}
	cpu.StepWithHLE(h)
	if !h.bkptHit {
		t.Fatal("HandleBreakpoint was not consulted")
	}
}

func TestRequestInterruptAcceptedWhenAboveMask(t *testing.T) {
	cpu, bus := newTestCPU(t, MC68000, 0x4E71, 0x4E71)
	bus.Write32(uint32(vecAutovectorBase+2)*4, 0x00003000)
	cpu.SetSR(cpu.SR() &^ srIMask) // mask level 0
	cpu.RequestInterrupt(2, nil)
	cpu.Step()
	if cpu.PC() != 0x3000 {
		t.Fatalf("PC after accepted interrupt = %#x, want 0x3000", cpu.PC())
	}
}

func TestRequestInterruptIgnoredWhenBelowMask(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000, 0x4E71, 0x4E71)
	cpu.SetSR(cpu.SR() | srIMask) // mask level 7
	cpu.RequestInterrupt(3, nil)
	cpu.Step()
	if cpu.PC() != 0x1002 {
		t.Fatalf("PC = %#x, interrupt below mask must not be accepted", cpu.PC())
	}
}

func TestDoubleBusFaultHalts(t *testing.T) {
	cpu, _ := newTestCPU(t, MC68000, 0x4E71)
	cpu.inException = true // simulate a fault already in flight
	cpu.raiseException(vecIllegal)
	if !cpu.Halted() {
		t.Fatal("a fault raised while stacking a fault must halt the CPU")
	}
	if cpu.Step() != 0 {
		t.Fatal("Step on a halted CPU must return 0 cycles and do nothing")
	}
}
