package m68k

func (c *CPU) execBcc(op uint16) {
	cond := uint8((op >> 8) & 0xF)
	disp8 := int8(op & 0xFF)
	base := c.reg.PC
	var disp int32
	switch disp8 {
	case 0:
		disp = int32(int16(c.fetch16()))
	case -1:
		if c.caps.has020Ext {
			disp = int32(c.fetch32())
			break
		}
		disp = int32(disp8)
	default:
		disp = int32(disp8)
	}

	if cond == 1 { // BSR
		c.push32(c.reg.PC)
		c.reg.PC = base + uint32(disp)
		return
	}
	if c.checkCondition(cond) {
		c.reg.PC = base + uint32(disp)
	}
}

func (c *CPU) execDbcc(op uint16) {
	cond := uint8((op >> 8) & 0xF)
	reg := op & 7
	disp := int32(int16(c.fetch16()))

	if c.checkCondition(cond) {
		return
	}
	v := int16(c.reg.D[reg])
	v--
	c.reg.D[reg] = (c.reg.D[reg] &^ 0xFFFF) | uint32(uint16(v))
	if v != -1 {
		c.reg.PC = c.reg.PC - 2 + uint32(disp)
	}
}

func (c *CPU) execScc(op uint16) {
	cond := uint8((op >> 8) & 0xF)
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Byte)
	if c.checkCondition(cond) {
		c.writeEA(e, 0xFF)
	} else {
		c.writeEA(e, 0)
	}
}

func (c *CPU) execTrapcc(op uint16) {
	cond := uint8((op >> 8) & 0xF)
	extWords := op & 7
	switch extWords {
	case 2:
		c.fetch16()
	case 3:
		c.fetch32()
	}
	if c.checkCondition(cond) {
		c.raiseException(vecTrapV)
	}
}

func (c *CPU) execJmp(op uint16) {
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Long)
	c.reg.PC = e.addr
}

func (c *CPU) execJsr(op uint16) {
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Long)
	c.push32(c.reg.PC)
	c.reg.PC = e.addr
}

func (c *CPU) execRts(op uint16) {
	c.reg.PC = c.pop32()
}

func (c *CPU) execRtr(op uint16) {
	ccr := c.pop16()
	c.reg.setCCR(uint8(ccr))
	c.reg.PC = c.pop32()
}

func (c *CPU) execRtd(op uint16) {
	disp := int32(int16(c.fetch16()))
	c.reg.PC = c.pop32()
	c.SetA7(uint32(int32(c.A7()) + disp))
}

func (c *CPU) execTrap(op uint16) {
	n := uint8(op & 0xF)
	if c.hle != nil && c.hle.HandleTrap(c, c.bus, n) {
		return
	}
	c.raiseException(n + vecTrapBase)
}

func (c *CPU) execTrapv(op uint16) {
	if c.flagV() {
		c.raiseException(vecTrapV)
	}
}

func (c *CPU) execChk(op uint16) {
	reg := (op >> 9) & 7
	opmode := (op >> 6) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	size := Word
	if opmode == 4 {
		size = Long
	}
	e := c.decodeEA(mode, xreg, size)
	bound := signExtend(c.readEA(e), size)
	v := signExtend(c.reg.D[reg]&size.Mask(), size)

	if int32(v) < 0 {
		c.setN(true)
		c.raiseException(vecCHK)
		return
	}
	if int32(v) > int32(bound) {
		c.setN(false)
		c.raiseException(vecCHK)
	}
}

func (c *CPU) execLink(op uint16) {
	reg := op & 7
	disp := int32(int16(c.fetch16()))
	c.push32(c.A(int(reg)))
	c.SetA(int(reg), c.A7())
	c.SetA7(uint32(int32(c.A7()) + disp))
}

func (c *CPU) execLinkLong(op uint16) {
	reg := op & 7
	disp := int32(c.fetch32())
	c.push32(c.A(int(reg)))
	c.SetA(int(reg), c.A7())
	c.SetA7(uint32(int32(c.A7()) + disp))
}

func (c *CPU) execUnlk(op uint16) {
	reg := op & 7
	c.SetA7(c.A(int(reg)))
	c.SetA(int(reg), c.pop32())
}

func (c *CPU) execNop(op uint16) {}

func (c *CPU) execIllegal(op uint16) {
	c.raiseException(vecIllegal)
}
