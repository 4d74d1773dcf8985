package m68k

// execMove decodes and executes MOVE/MOVEA for all three size encodings
// (group 1/2/3 share this handler: the group nibble alone selects size).
// It is a closure factory rather than a plain handler so the decoder can
// bind the size once per table build and reuse one closure for every
// opcode in that size class.
func execMove(size Size) opFunc {
	return func(c *CPU, op uint16) {
		srcMode := (op >> 3) & 7
		srcReg := op & 7
		dstReg := (op >> 9) & 7
		dstMode := (op >> 6) & 7

		src := c.decodeEA(srcMode, srcReg, size)
		v := c.readEA(src)

		if dstMode == 1 {
			c.SetA(int(dstReg), signExtend(v, size))
			return
		}
		dst := c.decodeEA(dstMode, dstReg, size)
		c.writeEA(dst, v)
		c.setLogicFlags(v, size)
	}
}

func (c *CPU) execMoveq(op uint16) {
	reg := (op >> 9) & 7
	data := uint32(int32(int8(op & 0xFF)))
	c.reg.D[reg] = data
	c.setLogicFlags(data, Long)
}

func (c *CPU) execLea(op uint16) {
	reg := (op >> 9) & 7
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Long)
	c.SetA(int(reg), e.addr)
}

func (c *CPU) execPea(op uint16) {
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Long)
	c.push32(e.addr)
}

func (c *CPU) execSwap(op uint16) {
	reg := op & 7
	v := c.reg.D[reg]
	c.reg.D[reg] = v<<16 | v>>16
	c.setLogicFlags(c.reg.D[reg], Long)
}

func (c *CPU) execExt(op uint16) {
	reg := op & 7
	opmode := (op >> 6) & 7
	switch opmode {
	case 2: // byte to word
		v := signExtend(c.reg.D[reg]&0xFF, Byte) & Word.Mask()
		c.reg.D[reg] = (c.reg.D[reg] &^ Word.Mask()) | v
		c.setLogicFlags(v, Word)
	case 3: // word to long
		v := signExtend(c.reg.D[reg]&0xFFFF, Word)
		c.reg.D[reg] = v
		c.setLogicFlags(v, Long)
	case 7: // byte to long (EXTB, 020+)
		v := signExtend(c.reg.D[reg]&0xFF, Byte)
		c.reg.D[reg] = v
		c.setLogicFlags(v, Long)
	}
}

func (c *CPU) execClr(op uint16) {
	size, _ := sizeFromField((op >> 6) & 3)
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, size)
	c.writeEA(e, 0)
	c.setLogicFlags(0, size)
}

func (c *CPU) execTst(op uint16) {
	size, _ := sizeFromField((op >> 6) & 3)
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, size)
	v := c.readEA(e)
	c.setLogicFlags(v, size)
}

func (c *CPU) execTas(op uint16) {
	mode := (op >> 3) & 7
	xreg := op & 7
	e := c.decodeEA(mode, xreg, Byte)
	v := c.readEA(e)
	c.setLogicFlags(v, Byte)
	c.writeEA(e, v|0x80)
}

// execMovem handles MOVEM register list <-> memory for word and long sizes,
// including the predecrement-mode reversed register order and the
// postincrement-mode A7 update rule.
func (c *CPU) execMovem(op uint16) {
	dir := (op >> 10) & 1 // 0 = register to memory, 1 = memory to register
	size := Word
	if op&0x40 != 0 {
		size = Long
	}
	mode := (op >> 3) & 7
	xreg := op & 7
	list := c.fetch16()

	if mode == 3 { // postincrement, memory to register only
		addr := c.A(int(xreg))
		for i := 0; i < 16; i++ {
			if list&(1<<uint(i)) == 0 {
				continue
			}
			v := signExtend(c.read(size, addr), size)
			if i < 8 {
				c.reg.D[i] = v
			} else {
				c.SetA(i-8, v)
			}
			addr += uint32(size)
		}
		c.SetA(int(xreg), addr)
		return
	}

	if mode == 4 { // predecrement, register to memory only
		addr := c.A(int(xreg))
		for bit := 15; bit >= 0; bit-- {
			if list&(1<<uint(bit)) == 0 {
				continue
			}
			var v uint32
			if bit < 8 {
				v = c.reg.D[bit]
			} else {
				v = c.A(bit - 8)
			}
			addr -= uint32(size)
			c.write(size, addr, v)
		}
		c.SetA(int(xreg), addr)
		return
	}

	e := c.decodeEA(mode, xreg, size)
	addr := e.addr
	for i := 0; i < 16; i++ {
		if list&(1<<uint(i)) == 0 {
			continue
		}
		if dir == 0 {
			var v uint32
			if i < 8 {
				v = c.reg.D[i]
			} else {
				v = c.A(i - 8)
			}
			c.write(size, addr, v)
		} else {
			v := signExtend(c.read(size, addr), size)
			if i < 8 {
				c.reg.D[i] = v
			} else {
				c.SetA(i-8, v)
			}
		}
		addr += uint32(size)
	}
}

func (c *CPU) execMovep(op uint16) {
	dreg := (op >> 9) & 7
	areg := op & 7
	opmode := (op >> 6) & 7
	addr := c.A(int(areg))
	long := opmode == 5 || opmode == 7
	toMemory := opmode == 6 || opmode == 7

	if toMemory {
		v := c.reg.D[dreg]
		if long {
			c.write(Byte, addr, (v>>24)&0xFF)
			c.write(Byte, addr+2, (v>>16)&0xFF)
			c.write(Byte, addr+4, (v>>8)&0xFF)
			c.write(Byte, addr+6, v&0xFF)
		} else {
			c.write(Byte, addr, (v>>8)&0xFF)
			c.write(Byte, addr+2, v&0xFF)
		}
		return
	}

	if long {
		v := c.read(Byte, addr)<<24 | c.read(Byte, addr+2)<<16 | c.read(Byte, addr+4)<<8 | c.read(Byte, addr+6)
		c.reg.D[dreg] = v
	} else {
		v := (c.read(Byte, addr)<<8 | c.read(Byte, addr+2)) & 0xFFFF
		c.reg.D[dreg] = (c.reg.D[dreg] &^ 0xFFFF) | v
	}
}

func (c *CPU) execExg(op uint16) {
	rx := (op >> 9) & 7
	mode := (op >> 3) & 0x1F
	ry := op & 7
	switch mode {
	case 0x08: // data-data
		c.reg.D[rx], c.reg.D[ry] = c.reg.D[ry], c.reg.D[rx]
	case 0x09: // addr-addr
		a, b := c.A(int(rx)), c.A(int(ry))
		c.SetA(int(rx), b)
		c.SetA(int(ry), a)
	case 0x11: // data-addr
		a, b := c.reg.D[rx], c.A(int(ry))
		c.reg.D[rx] = b
		c.SetA(int(ry), a)
	}
}
