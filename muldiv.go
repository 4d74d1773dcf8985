package m68k

// execMulu multiplies an unsigned word by Dn, producing a 32-bit result.
func (c *CPU) execMulu(op uint16) {
	reg := (op >> 9) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Word)
	src := c.readEA(e) & 0xFFFF
	dst := c.reg.D[reg] & 0xFFFF
	result := src * dst
	c.reg.D[reg] = result
	c.setLogicFlags(result, Long)
}

func (c *CPU) execMuls(op uint16) {
	reg := (op >> 9) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Word)
	src := int32(int16(c.readEA(e)))
	dst := int32(int16(c.reg.D[reg]))
	result := uint32(src * dst)
	c.reg.D[reg] = result
	c.setLogicFlags(result, Long)
}

// execMulL handles the 020+ 32x32 long multiply extension-word form,
// including the optional 64-bit result pair and signed variant.
func (c *CPU) execMulL(op uint16) {
	mode := (op >> 3) & 7
	xreg := op & 7
	ext := c.fetch16()
	dl := (ext >> 12) & 7
	signedOp := ext&0x0800 != 0
	dh := (ext >> 0) & 7
	wide := ext&0x0400 != 0

	e := c.decodeEA(mode, xreg, Long)
	src := c.readEA(e)

	if signedOp {
		a := int64(int32(src))
		b := int64(int32(c.reg.D[dl]))
		result := a * b
		c.reg.D[dl] = uint32(result)
		if wide {
			c.reg.D[dh] = uint32(result >> 32)
		}
		c.reg.SR &^= srV | srC
		c.setLogicFlags(uint32(result), Long)
		if !wide && (result > 0x7FFFFFFF || result < -0x80000000) {
			c.setV(true)
		}
		return
	}

	a := uint64(src)
	b := uint64(c.reg.D[dl])
	result := a * b
	c.reg.D[dl] = uint32(result)
	if wide {
		c.reg.D[dh] = uint32(result >> 32)
	}
	c.reg.SR &^= srV | srC
	c.setLogicFlags(uint32(result), Long)
	if !wide && result > 0xFFFFFFFF {
		c.setV(true)
	}
}

func (c *CPU) execDivu(op uint16) {
	reg := (op >> 9) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Word)
	src := c.readEA(e) & 0xFFFF
	if src == 0 {
		c.raiseException(vecZeroDivide)
		return
	}
	dividend := c.reg.D[reg]
	quotient := dividend / src
	remainder := dividend % src
	if quotient > 0xFFFF {
		c.setV(true)
		return
	}
	c.reg.D[reg] = (remainder&0xFFFF)<<16 | (quotient & 0xFFFF)
	c.reg.SR &^= srV | srC
	c.setLogicFlags(quotient, Word)
}

func (c *CPU) execDivs(op uint16) {
	reg := (op >> 9) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Word)
	src := int32(int16(c.readEA(e)))
	if src == 0 {
		c.raiseException(vecZeroDivide)
		return
	}
	dividend := int32(c.reg.D[reg])
	quotient := dividend / src
	remainder := dividend % src
	if quotient > 0x7FFF || quotient < -0x8000 {
		c.setV(true)
		return
	}
	c.reg.D[reg] = uint32(remainder)<<16 | (uint32(quotient) & 0xFFFF)
	c.reg.SR &^= srV | srC
	c.setLogicFlags(uint32(quotient), Word)
}

// execDivL handles the 020+ 32/32-bit long divide extension-word form.
func (c *CPU) execDivL(op uint16) {
	mode := (op >> 3) & 7
	xreg := op & 7
	ext := c.fetch16()
	dq := (ext >> 12) & 7
	signedOp := ext&0x0800 != 0
	dr := ext & 7
	remPresent := dr != dq

	e := c.decodeEA(mode, xreg, Long)
	src := c.readEA(e)
	if src == 0 {
		c.raiseException(vecZeroDivide)
		return
	}

	if signedOp {
		dividend := int64(int32(c.reg.D[dq]))
		if remPresent {
			dividend = int64(int32(c.reg.D[dr]))<<32 | int64(uint32(c.reg.D[dq]))
		}
		divisor := int64(int32(src))
		quotient := dividend / divisor
		remainder := dividend % divisor
		if quotient > 0x7FFFFFFF || quotient < -0x80000000 {
			c.setV(true)
			return
		}
		c.reg.D[dq] = uint32(quotient)
		if remPresent {
			c.reg.D[dr] = uint32(remainder)
		}
		c.reg.SR &^= srV | srC
		c.setLogicFlags(uint32(quotient), Long)
		return
	}

	dividend := uint64(c.reg.D[dq])
	if remPresent {
		dividend = uint64(c.reg.D[dr])<<32 | uint64(c.reg.D[dq])
	}
	divisor := uint64(src)
	quotient := dividend / divisor
	remainder := dividend % divisor
	if quotient > 0xFFFFFFFF {
		c.setV(true)
		return
	}
	c.reg.D[dq] = uint32(quotient)
	if remPresent {
		c.reg.D[dr] = uint32(remainder)
	}
	c.reg.SR &^= srV | srC
	c.setLogicFlags(uint32(quotient), Long)
}
