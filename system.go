package m68k

func (c *CPU) execMoveFromCCR(op uint16) {
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Word)
	c.writeEA(e, uint32(c.reg.ccr()))
}

func (c *CPU) execMoveToCCR(op uint16) {
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Word)
	c.reg.setCCR(uint8(c.readEA(e)))
}

func (c *CPU) execMoveFromSR(op uint16) {
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Word)
	c.writeEA(e, uint32(c.reg.SR))
}

func (c *CPU) execMoveToSR(op uint16) {
	if !c.reg.supervisor() {
		c.raiseException(vecPrivilege)
		return
	}
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Word)
	c.SetSR(uint16(c.readEA(e)))
}

func (c *CPU) execMoveFromUSP(op uint16) {
	if !c.reg.supervisor() {
		c.raiseException(vecPrivilege)
		return
	}
	reg := op & 7
	c.SetA(int(reg), c.reg.USP)
}

func (c *CPU) execMoveToUSP(op uint16) {
	if !c.reg.supervisor() {
		c.raiseException(vecPrivilege)
		return
	}
	reg := op & 7
	c.reg.USP = c.A(int(reg))
}

// execMovec moves between a general register and one of the 020+
// privileged control registers (SFC/DFC/USP/VBR/CACR/CAAR/MSP/ISP).
func (c *CPU) execMovec(op uint16) {
	if !c.reg.supervisor() {
		c.raiseException(vecPrivilege)
		return
	}
	toReg := op&1 == 0
	ext := c.fetch16()
	genReg := (ext >> 12) & 0xF
	ctrl := ext & 0xFFF
	isAddr := genReg&0x8 != 0
	idx := int(genReg & 7)

	read := func() uint32 {
		if isAddr {
			return c.A(idx)
		}
		return c.reg.D[idx]
	}
	write := func(v uint32) {
		if isAddr {
			c.SetA(idx, v)
		} else {
			c.reg.D[idx] = v
		}
	}

	ctrlPtr := func() *uint32 {
		switch ctrl {
		case 0x002:
			return &c.reg.CACR
		case 0x800:
			return &c.reg.USP
		case 0x801:
			return &c.reg.VBR
		case 0x802:
			return &c.reg.CAAR
		case 0x803:
			return &c.reg.MSP
		case 0x804:
			return &c.reg.ISP
		default:
			return nil
		}
	}

	switch ctrl {
	case 0x000:
		if toReg {
			write(uint32(c.reg.SFC))
		} else {
			c.reg.SFC = uint8(read())
		}
		return
	case 0x001:
		if toReg {
			write(uint32(c.reg.DFC))
		} else {
			c.reg.DFC = uint8(read())
		}
		return
	}

	p := ctrlPtr()
	if p == nil {
		c.raiseException(vecIllegal)
		return
	}
	if toReg {
		write(*p)
	} else {
		*p = read()
	}
}

// execMoves moves between a general register and memory using SFC/DFC as
// the function code for the memory side, rather than the CPU's normal
// data/program function code.
func (c *CPU) execMoves(op uint16) {
	if !c.reg.supervisor() {
		c.raiseException(vecPrivilege)
		return
	}
	size, _ := sizeFromField((op >> 6) & 3)
	mode := (op >> 3) & 7
	xreg := op & 7
	ext := c.fetch16()
	genReg := (ext >> 12) & 0xF
	isAddr := genReg&0x8 != 0
	idx := int(genReg & 7)
	toMemory := ext&0x0800 != 0

	e := c.decodeEA(mode, xreg, size)

	if toMemory {
		var v uint32
		if isAddr {
			v = c.A(idx)
		} else {
			v = c.reg.D[idx] & size.Mask()
		}
		c.writeEA(e, v)
		return
	}

	v := signExtend(c.readEA(e), size)
	if isAddr {
		c.SetA(idx, v)
	} else {
		c.reg.D[idx] = (c.reg.D[idx] &^ size.Mask()) | (v & size.Mask())
	}
}

func (c *CPU) execReset(op uint16) {
	if !c.reg.supervisor() {
		c.raiseException(vecPrivilege)
		return
	}
	// RESET pulses the external reset line for attached peripherals; this
	// core has no peripheral bus of its own to pulse, so it is a no-op
	// beyond the privilege check above.
}

func (c *CPU) execStop(op uint16) {
	if !c.reg.supervisor() {
		c.raiseException(vecPrivilege)
		return
	}
	sr := c.fetch16()
	c.SetSR(sr)
	c.stopped = true
}

func (c *CPU) execRte(op uint16) {
	if !c.reg.supervisor() {
		c.raiseException(vecPrivilege)
		return
	}
	c.rte()
}

func (c *CPU) execBkpt(op uint16) {
	n := uint8(op & 7)
	if c.hle != nil && c.hle.HandleBreakpoint(c, c.bus, n) {
		return
	}
	c.raiseException(vecIllegal)
}

// execPMove handles 030/68851-style PMMU register moves (PMOVE TC,URP,SRP,
// TT0/1,MMUSR and the 68040 PMOVE IACR/DACR forms share the same opcode
// shape once decoded).
func (c *CPU) execPMove(op uint16) {
	if !c.reg.supervisor() {
		c.raiseException(vecPrivilege)
		return
	}
	mode := (op >> 3) & 7
	xreg := op & 7
	ext := c.fetch16()
	preg := (ext >> 10) & 7
	toMem := ext&0x0200 != 0

	e := c.decodeEA(mode, xreg, Long)
	if c.mmu == nil {
		return
	}
	target := func() *uint32 {
		switch preg {
		case 0:
			return &c.mmu.TC
		case 1:
			return &c.mmu.DTT0
		case 2:
			return &c.mmu.ITT0
		case 3:
			return &c.mmu.DTT1
		default:
			return &c.mmu.SRP
		}
	}()
	if toMem {
		c.writeEA(e, *target)
	} else {
		*target = c.readEA(e)
	}
}

func (c *CPU) execPFlush(op uint16) {
	if !c.reg.supervisor() || c.mmu == nil {
		c.raiseException(vecPrivilege)
		return
	}
	mode := (op >> 3) & 7
	switch mode {
	case 0:
		c.mmu.pflusha()
	default:
		xreg := op & 7
		e := c.decodeEA(mode, xreg, Long)
		c.mmu.pflush(e.addr)
	}
}

func (c *CPU) execPTest(op uint16) {
	if !c.reg.supervisor() || c.mmu == nil {
		c.raiseException(vecPrivilege)
		return
	}
	mode := (op >> 3) & 7
	xreg := op & 7
	write := op&0x0200 != 0
	e := c.decodeEA(mode, xreg, Long)
	c.ptest(e.addr, write)
}
