package m68k

// bitNumber resolves the bit-number operand for BTST/BCHG/BCLR/BSET: a
// data-register operand is modulo 32, a memory operand is modulo 8 (each
// addresses one bit within the single byte at the EA).
func bitNumber(e ea, n uint32) uint32 {
	if e.kind == eaMemory {
		return n % 8
	}
	return n % 32
}

func (c *CPU) execBtst(op uint16, dynamic bool) {
	mode := (op >> 3) & 7
	xreg := op & 7
	var n uint32
	if dynamic {
		n = c.reg.D[(op>>9)&7]
	} else {
		n = uint32(c.fetch16()) & 0xFF
	}
	size := Long
	if mode != 0 {
		size = Byte
	}
	e := c.decodeEA(mode, xreg, size)
	bit := bitNumber(e, n)
	v := c.readEA(e)
	c.setZ(v&(1<<bit) == 0)
}

func (c *CPU) execBchg(op uint16, dynamic bool) {
	mode := (op >> 3) & 7
	xreg := op & 7
	var n uint32
	if dynamic {
		n = c.reg.D[(op>>9)&7]
	} else {
		n = uint32(c.fetch16()) & 0xFF
	}
	size := Long
	if mode != 0 {
		size = Byte
	}
	e := c.decodeEA(mode, xreg, size)
	bit := bitNumber(e, n)
	v := c.readEA(e)
	c.setZ(v&(1<<bit) == 0)
	c.writeEA(e, v^(1<<bit))
}

func (c *CPU) execBclr(op uint16, dynamic bool) {
	mode := (op >> 3) & 7
	xreg := op & 7
	var n uint32
	if dynamic {
		n = c.reg.D[(op>>9)&7]
	} else {
		n = uint32(c.fetch16()) & 0xFF
	}
	size := Long
	if mode != 0 {
		size = Byte
	}
	e := c.decodeEA(mode, xreg, size)
	bit := bitNumber(e, n)
	v := c.readEA(e)
	c.setZ(v&(1<<bit) == 0)
	c.writeEA(e, v&^(1<<bit))
}

func (c *CPU) execBset(op uint16, dynamic bool) {
	mode := (op >> 3) & 7
	xreg := op & 7
	var n uint32
	if dynamic {
		n = c.reg.D[(op>>9)&7]
	} else {
		n = uint32(c.fetch16()) & 0xFF
	}
	size := Long
	if mode != 0 {
		size = Byte
	}
	e := c.decodeEA(mode, xreg, size)
	bit := bitNumber(e, n)
	v := c.readEA(e)
	c.setZ(v&(1<<bit) == 0)
	c.writeEA(e, v|(1<<bit))
}
