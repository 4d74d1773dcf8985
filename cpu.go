package m68k

import "log"

// CPU is a Motorola 68000-family processor core. It owns architectural
// state only; the address bus and any OS-trap emulation are supplied by the
// embedder. A CPU is not safe for concurrent use -- Step executes exactly
// one instruction to completion and returns, and the embedder is expected
// to own the CPU and its Bus exclusively from a single goroutine, per the
// single-threaded cooperative model this core implements.
type CPU struct {
	reg     Registers
	variant Variant
	caps    capabilities

	bus   Bus
	fcBus FCBus
	fpu   *FPU
	mmu   *MMU
	hle   HLEHandler

	table *opcodeTable

	stopped      bool
	halted       bool
	cycles       uint64
	pendingTrace bool

	pendingIPL  uint8
	pendingVec  *uint8
	inException bool

	// Fault-tracking fields, populated by read/write/translate when a
	// bus or address error occurs, consumed by exception frame assembly.
	faultAddr  uint32
	faultSize  Size
	faultWrite bool
	faultFC    uint8
	faultValid bool
	faultIR    uint16

	ir uint16 // instruction register: first word of the executing instruction
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithVBR sets the initial vector base register (ignored on plain 68000,
// where VBR is fixed at 0).
func WithVBR(vbr uint32) Option {
	return func(c *CPU) {
		if c.caps.vbrRelocat {
			c.reg.VBR = vbr
		}
	}
}

// WithHLE installs a high-level-emulation handler consulted before A-line,
// F-line, TRAP, BKPT, and illegal-instruction exceptions are raised.
func WithHLE(h HLEHandler) Option {
	return func(c *CPU) { c.hle = h }
}

// New constructs a CPU of the given variant wired to bus and performs a
// hardware reset. It returns ErrNilBus if bus is nil.
func New(bus Bus, variant Variant, opts ...Option) (*CPU, error) {
	if bus == nil {
		return nil, ErrNilBus
	}
	c := &CPU{
		bus:     bus,
		variant: variant,
		caps:    variant.caps(),
	}
	c.fcBus, _ = bus.(FCBus)
	if c.caps.hasFPU {
		c.fpu = newFPU()
	}
	if c.caps.hasMMU {
		c.mmu = newMMU(variant)
	}
	c.table = tableFor(c.caps)
	c.Reset()
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Reset performs a hardware reset: loads SSP from [VBR+0] and PC from
// [VBR+4] (VBR is 0 at reset on every variant), enters supervisor mode with
// interrupts masked at level 7, clears the trace bits, disables the MMU,
// and zeroes the FPU.
func (c *CPU) Reset() {
	c.reg = Registers{}
	c.reg.SR = 0x2700
	c.reg.ISP = c.read(Long, 0)
	c.reg.PC = c.read(Long, 4)
	c.stopped = false
	c.halted = false
	c.cycles = 0
	c.pendingTrace = false
	c.pendingIPL = 0
	c.pendingVec = nil
	c.faultValid = false
	if c.fpu != nil {
		*c.fpu = *newFPU()
	}
	if c.mmu != nil {
		c.mmu.reset()
	}
}

// Halted reports whether the CPU has stopped due to a double bus fault and
// will no longer execute instructions.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU is in the STOP-instruction low-power
// state, awaiting an interrupt above its current mask.
func (c *CPU) Stopped() bool { return c.stopped }

// Cycles returns the running cycle count since the last reset. Executed
// instructions and accepted exceptions add nothing to it; only a Step taken
// while stopped adds 4.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Variant returns the CPU variant this core was constructed with.
func (c *CPU) Variant() Variant { return c.variant }

// Registers returns a snapshot of the programmer-visible register file. The
// snapshot has no A7 field: the stack pointer is held in its USP, ISP and
// MSP banks, and A7() returns the one active under the current SR.
func (c *CPU) Registers() Registers {
	return c.reg
}

// A7 returns the currently active stack pointer.
func (c *CPU) A7() uint32 { return *c.reg.a7Bank(c.caps.hasMBit) }

// SetA7 sets the currently active stack pointer.
func (c *CPU) SetA7(v uint32) { *c.reg.a7Bank(c.caps.hasMBit) = v }

// D returns data register n (0-7).
func (c *CPU) D(n int) uint32 { return c.reg.D[n] }

// SetD sets data register n (0-7).
func (c *CPU) SetD(n int, v uint32) { c.reg.D[n] = v }

// A returns address register n (0-7); n=7 resolves through the active bank.
func (c *CPU) A(n int) uint32 {
	if n == 7 {
		return c.A7()
	}
	return c.reg.A[n]
}

// SetA sets address register n (0-7); n=7 resolves through the active bank.
func (c *CPU) SetA(n int, v uint32) {
	if n == 7 {
		c.SetA7(v)
		return
	}
	c.reg.A[n] = v
}

func (c *CPU) PC() uint32      { return c.reg.PC }
func (c *CPU) SetPC(v uint32)  { c.reg.PC = v }
func (c *CPU) SR() uint16      { return c.reg.SR }
func (c *CPU) VBR() uint32     { return c.reg.VBR }
func (c *CPU) SetVBR(v uint32) { c.reg.VBR = v }
func (c *CPU) FPU() *FPU       { return c.fpu }
func (c *CPU) MMU() *MMU       { return c.mmu }

// SetSR sets the status register. A7 needs no explicit bank swap on S/M
// transitions: USP, ISP, and MSP are distinct fields and A7()/SetA7 always
// resolve through a7Bank against the *current* SR, so the value left behind
// in the bank being vacated simply sits untouched until that bank is active
// again.
func (c *CPU) SetSR(sr uint16) {
	c.reg.SR = sr
}

// RequestInterrupt posts a pending interrupt at the given priority level
// (1-7). A level-7 request is a non-maskable interrupt. vector, if non-nil,
// supplies a vectored interrupt number; nil requests autovectoring.
func (c *CPU) RequestInterrupt(level uint8, vector *uint8) {
	if level > c.pendingIPL {
		c.pendingIPL = level
		c.pendingVec = vector
	}
}

// Step executes a single instruction (or accepts a single pending exception)
// and returns the number of cycles added to the cycle counter. Instruction
// timing is not modelled: an executed instruction or accepted exception
// returns 0, a Step taken while stopped returns 4, and a Step on a CPU halted
// by a double bus fault returns 0.
func (c *CPU) Step() int {
	return c.step(nil)
}

// StepWithHLE is equivalent to Step but consults handler before A-line,
// F-line, TRAP, BKPT, or illegal-instruction exceptions are raised for this
// one instruction, overriding any handler passed to WithHLE for this call.
func (c *CPU) StepWithHLE(handler HLEHandler) int {
	return c.step(handler)
}

func (c *CPU) step(override HLEHandler) int {
	if c.halted {
		return 0
	}
	before := c.cycles

	if override != nil {
		saved := c.hle
		c.hle = override
		defer func() { c.hle = saved }()
	}

	if c.pendingTrace {
		c.pendingTrace = false
		c.raiseException(vecTrace)
		return int(c.cycles - before)
	}

	if c.stopped {
		if c.pendingIPL > uint8((c.reg.SR&srIMask)>>8) || c.pendingIPL == 7 {
			c.stopped = false
			c.acceptInterrupt()
		} else {
			c.cycles += 4
		}
		return int(c.cycles - before)
	}

	if c.pendingIPL > 0 {
		mask := uint8((c.reg.SR & srIMask) >> 8)
		if c.pendingIPL == 7 || c.pendingIPL > mask {
			c.acceptInterrupt()
			return int(c.cycles - before)
		}
	}

	if c.reg.PC&1 != 0 {
		c.addressError(c.reg.PC, Word, false, c.programFC())
		return int(c.cycles - before)
	}

	startSR := c.reg.SR
	c.ir = c.fetch16()
	handler := c.table.lookup(c.ir)

	if handler == nil {
		c.dispatchUnhandled(c.ir)
	} else {
		handler(c, c.ir)
	}

	if startSR&srT1 != 0 && !c.halted {
		c.pendingTrace = true
	}

	return int(c.cycles - before)
}

func (c *CPU) dispatchUnhandled(opcode uint16) {
	switch opcode >> 12 {
	case 0xA:
		if c.hle != nil && c.hle.HandleALine(c, c.bus, opcode) {
			return
		}
		c.raiseException(vecALine)
	case 0xF:
		if c.hle != nil && c.hle.HandleFLine(c, c.bus, opcode) {
			return
		}
		c.raiseException(vecFLine)
	default:
		if c.hle != nil && c.hle.HandleIllegal(c, c.bus, opcode) {
			return
		}
		c.raiseException(vecIllegal)
	}
}

// fetch16 reads the word at PC and advances PC by 2.
func (c *CPU) fetch16() uint16 {
	v := uint16(c.read(Word, c.reg.PC))
	c.reg.PC += 2
	return v
}

// fetch32 reads the long at PC and advances PC by 4.
func (c *CPU) fetch32() uint32 {
	hi := uint32(c.fetch16())
	lo := uint32(c.fetch16())
	return hi<<16 | lo
}

func (c *CPU) push16(v uint16) {
	a7 := c.A7() - 2
	c.SetA7(a7)
	c.write(Word, a7, uint32(v))
}

func (c *CPU) push32(v uint32) {
	a7 := c.A7() - 4
	c.SetA7(a7)
	c.write(Long, a7, v)
}

func (c *CPU) pop16() uint16 {
	a7 := c.A7()
	v := uint16(c.read(Word, a7))
	c.SetA7(a7 + 2)
	return v
}

func (c *CPU) pop32() uint32 {
	a7 := c.A7()
	v := c.read(Long, a7)
	c.SetA7(a7 + 4)
	return v
}

// addressError halts accesses on 68000/010 when a word/long address is odd;
// 68020+ permit misaligned access so this is only invoked by those two
// variants' read/write wrappers.
func (c *CPU) addressError(addr uint32, size Size, write bool, fc uint8) {
	c.faultAddr = addr
	c.faultSize = size
	c.faultWrite = write
	c.faultFC = fc
	c.faultValid = true
	c.faultIR = c.ir
	c.raiseException(vecAddressError)
}

func (c *CPU) logf(format string, args ...any) {
	log.Printf("[m68k] "+format, args...)
}
