package m68k

// bcdAdd adds two packed BCD bytes plus an extend-in carry, per-nibble with
// decimal correction, returning the result byte and the decimal carry-out.
func bcdAdd(a, b, x uint8) (uint8, bool) {
	sum := int(a) + int(b) + int(x)
	lo := (sum & 0xF)
	hi := (sum >> 4) & 0xF
	carry := false
	if lo > 9 {
		lo += 6
		hi++
	}
	if hi > 9 {
		hi += 6
		carry = true
	}
	return uint8((hi<<4 | (lo & 0xF)) & 0xFF), carry
}

func bcdSub(a, b, x uint8) (uint8, bool) {
	diff := int(a) - int(b) - int(x)
	borrow := diff < 0

	correction := 0
	if int(a&0xF)-int(b&0xF)-int(x) < 0 {
		correction += 0x06
	}
	if diff-correction < 0 {
		correction += 0x60
	}
	result := diff - correction
	if result < 0 {
		result += 0x100
	}
	return uint8(result & 0xFF), borrow
}

func (c *CPU) execAbcd(op uint16) {
	ry := (op >> 9) & 7
	rm := (op >> 3) & 1
	rx := op & 7
	x := uint8(0)
	if c.flagX() {
		x = 1
	}

	var a, b uint8
	var store func(uint8)
	if rm == 0 {
		a = uint8(c.reg.D[ry])
		b = uint8(c.reg.D[rx])
		store = func(v uint8) { c.reg.D[ry] = (c.reg.D[ry] &^ 0xFF) | uint32(v) }
	} else {
		dstAddr := c.A(int(ry)) - 1
		c.SetA(int(ry), dstAddr)
		srcAddr := c.A(int(rx)) - 1
		c.SetA(int(rx), srcAddr)
		a = uint8(c.read(Byte, dstAddr))
		b = uint8(c.read(Byte, srcAddr))
		store = func(v uint8) { c.write(Byte, dstAddr, uint32(v)) }
	}

	result, carry := bcdAdd(a, b, x)
	store(result)
	c.setX(carry)
	c.setC(carry)
	if result != 0 {
		c.setZ(false)
	}
	c.setN(result&0x80 != 0)
}

func (c *CPU) execSbcd(op uint16) {
	ry := (op >> 9) & 7
	rm := (op >> 3) & 1
	rx := op & 7
	x := uint8(0)
	if c.flagX() {
		x = 1
	}

	var a, b uint8
	var store func(uint8)
	if rm == 0 {
		a = uint8(c.reg.D[ry])
		b = uint8(c.reg.D[rx])
		store = func(v uint8) { c.reg.D[ry] = (c.reg.D[ry] &^ 0xFF) | uint32(v) }
	} else {
		dstAddr := c.A(int(ry)) - 1
		c.SetA(int(ry), dstAddr)
		srcAddr := c.A(int(rx)) - 1
		c.SetA(int(rx), srcAddr)
		a = uint8(c.read(Byte, dstAddr))
		b = uint8(c.read(Byte, srcAddr))
		store = func(v uint8) { c.write(Byte, dstAddr, uint32(v)) }
	}

	result, borrow := bcdSub(a, b, x)
	store(result)
	c.setX(borrow)
	c.setC(borrow)
	if result != 0 {
		c.setZ(false)
	}
	c.setN(result&0x80 != 0)
}

func (c *CPU) execNbcd(op uint16) {
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Byte)
	v := uint8(c.readEA(e))
	x := uint8(0)
	if c.flagX() {
		x = 1
	}
	result, borrow := bcdSub(0, v, x)
	c.writeEA(e, uint32(result))
	c.setX(borrow)
	c.setC(borrow)
	if result != 0 {
		c.setZ(false)
	}
	c.setN(result&0x80 != 0)
}

// execPack converts two unpacked BCD digits (plus a 16-bit immediate
// adjustment) into one packed BCD byte.
func (c *CPU) execPack(op uint16) {
	ry := (op >> 9) & 7
	rm := (op >> 3) & 1
	rx := op & 7
	adj := c.fetch16()

	var src uint16
	var store func(uint16)
	if rm == 0 {
		src = uint16(c.reg.D[rx])
		store = func(v uint16) { c.reg.D[ry] = (c.reg.D[ry] &^ 0xFF) | uint32(v&0xFF) }
	} else {
		srcAddr := c.A(int(rx)) - 1
		c.SetA(int(rx), srcAddr)
		lo := uint16(c.read(Byte, srcAddr))
		srcAddr2 := c.A(int(rx)) - 1
		c.SetA(int(rx), srcAddr2)
		hi := uint16(c.read(Byte, srcAddr2))
		src = (hi << 8) | lo
		dstAddr := c.A(int(ry)) - 1
		c.SetA(int(ry), dstAddr)
		store = func(v uint16) { c.write(Byte, dstAddr, uint32(v&0xFF)) }
	}

	sum := src + adj
	packed := ((sum >> 4) & 0xF0) | (sum & 0xF)
	store(packed)
}

// execUnpk expands one packed BCD byte into two unpacked digits plus an
// immediate adjustment.
func (c *CPU) execUnpk(op uint16) {
	ry := (op >> 9) & 7
	rm := (op >> 3) & 1
	rx := op & 7
	adj := c.fetch16()

	var src uint8
	if rm == 0 {
		src = uint8(c.reg.D[rx])
	} else {
		srcAddr := c.A(int(rx)) - 1
		c.SetA(int(rx), srcAddr)
		src = uint8(c.read(Byte, srcAddr))
	}

	unpacked := uint16(src&0xF) | uint16(src>>4)<<8
	result := unpacked + adj

	if rm == 0 {
		c.reg.D[ry] = (c.reg.D[ry] &^ 0xFFFF) | uint32(result)
	} else {
		dstAddr := c.A(int(ry)) - 1
		c.SetA(int(ry), dstAddr)
		c.write(Byte, dstAddr, uint32(result&0xFF))
		dstAddr2 := c.A(int(ry)) - 1
		c.SetA(int(ry), dstAddr2)
		c.write(Byte, dstAddr2, uint32((result>>8)&0xFF))
	}
}
