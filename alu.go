package m68k

// execAdd handles ADD Dn,<ea> and ADD <ea>,Dn (opcode 1101 rrr ooo mmm rrr).
func (c *CPU) execAdd(op uint16) {
	reg := (op >> 9) & 7
	opmode := (op >> 6) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	size := sizeFromOpmode(opmode)

	if opmode < 3 {
		e := c.decodeEA(mode, xreg, size)
		src := c.readEA(e)
		dst := c.reg.D[reg] & size.Mask()
		result := dst + src
		c.reg.D[reg] = (c.reg.D[reg] &^ size.Mask()) | (result & size.Mask())
		c.setAddFlags(dst, src, result, size)
		return
	}
	e := c.decodeEA(mode, xreg, size)
	src := c.reg.D[reg] & size.Mask()
	dst := c.readEA(e)
	result := dst + src
	c.writeEA(e, result)
	c.setAddFlags(dst, src, result, size)
}

func (c *CPU) execAdda(op uint16) {
	reg := (op >> 9) & 7
	opmode := (op >> 6) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	size := Word
	if opmode == 7 {
		size = Long
	}
	e := c.decodeEA(mode, xreg, size)
	src := signExtend(c.readEA(e), size)
	c.SetA(int(reg), c.A(int(reg))+src)
}

func (c *CPU) execSub(op uint16) {
	reg := (op >> 9) & 7
	opmode := (op >> 6) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	size := sizeFromOpmode(opmode)

	if opmode < 3 {
		e := c.decodeEA(mode, xreg, size)
		src := c.readEA(e)
		dst := c.reg.D[reg] & size.Mask()
		result := dst - src
		c.reg.D[reg] = (c.reg.D[reg] &^ size.Mask()) | (result & size.Mask())
		c.setSubFlags(dst, src, result, size)
		return
	}
	e := c.decodeEA(mode, xreg, size)
	src := c.reg.D[reg] & size.Mask()
	dst := c.readEA(e)
	result := dst - src
	c.writeEA(e, result)
	c.setSubFlags(dst, src, result, size)
}

func (c *CPU) execSuba(op uint16) {
	reg := (op >> 9) & 7
	opmode := (op >> 6) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	size := Word
	if opmode == 7 {
		size = Long
	}
	e := c.decodeEA(mode, xreg, size)
	src := signExtend(c.readEA(e), size)
	c.SetA(int(reg), c.A(int(reg))-src)
}

func (c *CPU) execCmp(op uint16) {
	reg := (op >> 9) & 7
	opmode := (op >> 6) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	size := sizeFromOpmode(opmode)

	e := c.decodeEA(mode, xreg, size)
	src := c.readEA(e)
	dst := c.reg.D[reg] & size.Mask()
	result := dst - src
	c.setCmpFlags(dst, src, result, size)
}

func (c *CPU) execCmpa(op uint16) {
	reg := (op >> 9) & 7
	opmode := (op >> 6) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	size := Word
	if opmode == 7 {
		size = Long
	}
	e := c.decodeEA(mode, xreg, size)
	src := signExtend(c.readEA(e), size)
	dst := c.A(int(reg))
	result := dst - src
	c.setCmpFlags(dst, src, result, Long)
}

func (c *CPU) execCmpm(op uint16) {
	ry := (op >> 9) & 7
	size, _ := sizeFromField((op >> 6) & 3)
	rx := op & 7

	srcAddr := c.A(int(rx))
	c.SetA(int(rx), srcAddr+uint32(postIncrStep(rx, size)))
	src := c.read(size, srcAddr)

	dstAddr := c.A(int(ry))
	c.SetA(int(ry), dstAddr+uint32(postIncrStep(ry, size)))
	dst := c.read(size, dstAddr)

	result := dst - src
	c.setCmpFlags(dst, src, result, size)
}

func (c *CPU) execAnd(op uint16) {
	reg := (op >> 9) & 7
	opmode := (op >> 6) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	size := sizeFromOpmode(opmode)

	if opmode < 3 {
		e := c.decodeEA(mode, xreg, size)
		result := (c.reg.D[reg] & size.Mask()) & c.readEA(e)
		c.reg.D[reg] = (c.reg.D[reg] &^ size.Mask()) | result
		c.setLogicFlags(result, size)
		return
	}
	e := c.decodeEA(mode, xreg, size)
	result := c.readEA(e) & (c.reg.D[reg] & size.Mask())
	c.writeEA(e, result)
	c.setLogicFlags(result, size)
}

func (c *CPU) execOr(op uint16) {
	reg := (op >> 9) & 7
	opmode := (op >> 6) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	size := sizeFromOpmode(opmode)

	if opmode < 3 {
		e := c.decodeEA(mode, xreg, size)
		result := (c.reg.D[reg] & size.Mask()) | c.readEA(e)
		c.reg.D[reg] = (c.reg.D[reg] &^ size.Mask()) | (result & size.Mask())
		c.setLogicFlags(result, size)
		return
	}
	e := c.decodeEA(mode, xreg, size)
	result := c.readEA(e) | (c.reg.D[reg] & size.Mask())
	c.writeEA(e, result)
	c.setLogicFlags(result, size)
}

func (c *CPU) execEor(op uint16) {
	reg := (op >> 9) & 7
	size := sizeFromOpmode((op >> 6) & 7)
	mode := (op >> 3) & 7
	xreg := op & 7

	e := c.decodeEA(mode, xreg, size)
	result := c.readEA(e) ^ (c.reg.D[reg] & size.Mask())
	c.writeEA(e, result)
	c.setLogicFlags(result, size)
}

// execImmediateALU handles the group-0 immediate-to-EA ops ORI/ANDI/SUBI/
// ADDI/EORI/CMPI, including the CCR/SR special-case destinations for ORI/
// ANDI/EORI when mode/reg select EA mode 7 reg 4 with size byte/word.
func (c *CPU) execImmediateALU(op uint16) {
	sub := (op >> 9) & 7
	sizeField := (op >> 6) & 3
	mode := (op >> 3) & 7
	xreg := op & 7
	size, ok := sizeFromField(sizeField)
	if !ok {
		c.raiseException(vecIllegal)
		return
	}

	if mode == 7 && xreg == 4 && (sub == 0 || sub == 1 || sub == 5) {
		var imm uint32
		if size == Long {
			imm = c.fetch32()
		} else {
			imm = uint32(c.fetch16()) & size.Mask()
		}
		c.execSRImmediate(sub, size, imm)
		return
	}

	var imm uint32
	if size == Long {
		imm = c.fetch32()
	} else {
		imm = uint32(c.fetch16()) & size.Mask()
	}

	e := c.decodeEA(mode, xreg, size)
	dst := c.readEA(e)

	switch sub {
	case 0: // ORI
		result := dst | imm
		c.writeEA(e, result)
		c.setLogicFlags(result, size)
	case 1: // ANDI
		result := dst & imm
		c.writeEA(e, result)
		c.setLogicFlags(result, size)
	case 2: // SUBI
		result := dst - imm
		c.writeEA(e, result)
		c.setSubFlags(dst, imm, result, size)
	case 3: // ADDI
		result := dst + imm
		c.writeEA(e, result)
		c.setAddFlags(dst, imm, result, size)
	case 5: // EORI
		result := dst ^ imm
		c.writeEA(e, result)
		c.setLogicFlags(result, size)
	case 6: // CMPI
		result := dst - imm
		c.setCmpFlags(dst, imm, result, size)
	}
}

// execSRImmediate handles ORI/ANDI/EORI #imm,CCR and #imm,SR.
func (c *CPU) execSRImmediate(sub uint16, size Size, imm uint32) {
	toSR := size == Word
	if toSR && !c.reg.supervisor() {
		c.raiseException(vecPrivilege)
		return
	}
	var cur uint16
	if toSR {
		cur = c.reg.SR
	} else {
		cur = uint16(c.reg.ccr())
	}
	var result uint16
	switch sub {
	case 0:
		result = cur | uint16(imm)
	case 1:
		result = cur & uint16(imm)
	case 5:
		result = cur ^ uint16(imm)
	}
	if toSR {
		c.SetSR(result)
	} else {
		c.reg.setCCR(uint8(result))
	}
}

func (c *CPU) execAddq(op uint16) {
	data := (op >> 9) & 7
	if data == 0 {
		data = 8
	}
	size, ok := sizeFromField((op >> 6) & 3)
	if !ok {
		c.raiseException(vecIllegal)
		return
	}
	mode := (op >> 3) & 7
	xreg := op & 7

	e := c.decodeEA(mode, xreg, size)
	if e.kind == eaAddrReg {
		c.SetA(int(xreg), c.A(int(xreg))+uint32(data))
		return
	}
	dst := c.readEA(e)
	result := dst + uint32(data)
	c.writeEA(e, result)
	c.setAddFlags(dst, uint32(data), result, size)
}

func (c *CPU) execSubq(op uint16) {
	data := (op >> 9) & 7
	if data == 0 {
		data = 8
	}
	size, ok := sizeFromField((op >> 6) & 3)
	if !ok {
		c.raiseException(vecIllegal)
		return
	}
	mode := (op >> 3) & 7
	xreg := op & 7

	e := c.decodeEA(mode, xreg, size)
	if e.kind == eaAddrReg {
		c.SetA(int(xreg), c.A(int(xreg))-uint32(data))
		return
	}
	dst := c.readEA(e)
	result := dst - uint32(data)
	c.writeEA(e, result)
	c.setSubFlags(dst, uint32(data), result, size)
}

func (c *CPU) execAddx(op uint16) {
	ry := (op >> 9) & 7
	size, _ := sizeFromField((op >> 6) & 3)
	rm := (op >> 3) & 1
	rx := op & 7
	x := uint32(0)
	if c.flagX() {
		x = 1
	}
	wasZero := c.flagZ()
	if rm == 0 {
		dst := c.reg.D[ry] & size.Mask()
		src := c.reg.D[rx] & size.Mask()
		result := dst + src + x
		c.reg.D[ry] = (c.reg.D[ry] &^ size.Mask()) | (result & size.Mask())
		c.setAddFlags(dst, src+x, result, size)
	} else {
		srcAddr := c.A(int(rx)) - uint32(postIncrStep(rx, size))
		c.SetA(int(rx), srcAddr)
		dstAddr := c.A(int(ry)) - uint32(postIncrStep(ry, size))
		c.SetA(int(ry), dstAddr)
		src := c.read(size, srcAddr)
		dst := c.read(size, dstAddr)
		result := dst + src + x
		c.write(size, dstAddr, result)
		c.setAddFlags(dst, src+x, result, size)
	}
	if c.flagZ() && !wasZero {
		c.setZ(false)
	}
}

func (c *CPU) execSubx(op uint16) {
	ry := (op >> 9) & 7
	size, _ := sizeFromField((op >> 6) & 3)
	rm := (op >> 3) & 1
	rx := op & 7
	x := uint32(0)
	if c.flagX() {
		x = 1
	}
	wasZero := c.flagZ()
	if rm == 0 {
		dst := c.reg.D[ry] & size.Mask()
		src := c.reg.D[rx] & size.Mask()
		result := dst - src - x
		c.reg.D[ry] = (c.reg.D[ry] &^ size.Mask()) | (result & size.Mask())
		c.setSubFlags(dst, src+x, result, size)
	} else {
		srcAddr := c.A(int(rx)) - uint32(postIncrStep(rx, size))
		c.SetA(int(rx), srcAddr)
		dstAddr := c.A(int(ry)) - uint32(postIncrStep(ry, size))
		c.SetA(int(ry), dstAddr)
		src := c.read(size, srcAddr)
		dst := c.read(size, dstAddr)
		result := dst - src - x
		c.write(size, dstAddr, result)
		c.setSubFlags(dst, src+x, result, size)
	}
	if !c.flagZ() {
		return
	}
	if !wasZero {
		c.setZ(false)
	}
}

func (c *CPU) execNeg(op uint16) {
	size, _ := sizeFromField((op >> 6) & 3)
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, size)
	dst := c.readEA(e)
	result := uint32(0) - dst
	c.writeEA(e, result)
	c.setSubFlags(0, dst, result, size)
}

func (c *CPU) execNegx(op uint16) {
	size, _ := sizeFromField((op >> 6) & 3)
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, size)
	dst := c.readEA(e)
	x := uint32(0)
	if c.flagX() {
		x = 1
	}
	wasZero := c.flagZ()
	result := uint32(0) - dst - x
	c.writeEA(e, result)
	c.setSubFlags(0, dst+x, result, size)
	if c.flagZ() && !wasZero {
		c.setZ(false)
	}
}

func (c *CPU) execNot(op uint16) {
	size, _ := sizeFromField((op >> 6) & 3)
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, size)
	result := ^c.readEA(e) & size.Mask()
	c.writeEA(e, result)
	c.setLogicFlags(result, size)
}
