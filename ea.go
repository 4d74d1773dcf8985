package m68k

// eaKind classifies where an effective-address resolution landed.
type eaKind int

const (
	eaDataReg eaKind = iota
	eaAddrReg
	eaMemory
	eaImmediate
)

// ea is a resolved operand reference: mode/register decode and any
// extension-word consumption (including post/predecrement side effects)
// have already happened by the time one of these is returned. read/write
// re-use it without recomputing the address, so postincrement/predecrement
// fire exactly once per operand evaluation as §4.1 requires.
type ea struct {
	kind eaKind
	reg  uint16
	size Size
	addr uint32
	imm  uint32
}

// decodeEA resolves the mode/register fields of an instruction operand,
// consuming any extension words from the instruction stream and applying
// address-register post/predecrement side effects. It does not itself
// touch the bus for memory operands; call readEA/writeEA for that.
func (c *CPU) decodeEA(mode, reg uint16, size Size) ea {
	switch mode {
	case 0:
		return ea{kind: eaDataReg, reg: reg, size: size}
	case 1:
		return ea{kind: eaAddrReg, reg: reg, size: size}
	case 2:
		return ea{kind: eaMemory, addr: c.A(int(reg)), size: size}
	case 3:
		addr := c.A(int(reg))
		c.SetA(int(reg), addr+uint32(postIncrStep(reg, size)))
		return ea{kind: eaMemory, addr: addr, size: size}
	case 4:
		addr := c.A(int(reg)) - uint32(postIncrStep(reg, size))
		c.SetA(int(reg), addr)
		return ea{kind: eaMemory, addr: addr, size: size}
	case 5:
		disp := int32(int16(c.fetch16()))
		return ea{kind: eaMemory, addr: c.A(int(reg)) + uint32(disp), size: size}
	case 6:
		return ea{kind: eaMemory, addr: c.indexedAddr(c.A(int(reg))), size: size}
	case 7:
		switch reg {
		case 0:
			return ea{kind: eaMemory, addr: uint32(int32(int16(c.fetch16()))), size: size}
		case 1:
			return ea{kind: eaMemory, addr: c.fetch32(), size: size}
		case 2:
			base := c.reg.PC
			disp := int32(int16(c.fetch16()))
			return ea{kind: eaMemory, addr: base + uint32(disp), size: size}
		case 3:
			return ea{kind: eaMemory, addr: c.indexedAddr(c.reg.PC), size: size}
		case 4:
			if size == Long {
				return ea{kind: eaImmediate, imm: c.fetch32(), size: size}
			}
			return ea{kind: eaImmediate, imm: uint32(c.fetch16()) & size.Mask(), size: size}
		default:
			c.raiseException(vecIllegal)
			return ea{kind: eaImmediate, size: size}
		}
	default:
		c.raiseException(vecIllegal)
		return ea{kind: eaImmediate, size: size}
	}
}

// postIncrStep returns the amount An is adjusted by a postincrement/
// predecrement operand of the given size; A7 always moves by at least 2 to
// keep the stack word-aligned.
func postIncrStep(reg uint16, size Size) int {
	if reg == 7 && size == Byte {
		return 2
	}
	return int(size)
}

// indexedAddr resolves a brief or full 020+ extension word relative to
// base, which is either an address register's value or the address of the
// extension word itself for PC-relative modes.
func (c *CPU) indexedAddr(base uint32) uint32 {
	ext := c.fetch16()
	if ext&0x0100 != 0 && c.caps.has020Ext {
		return c.fullExtEA(ext, base)
	}
	idxReg := (ext >> 12) & 0xF
	idxVal := c.indexRegValue(idxReg, (ext>>11)&1 == 0)
	scale := (ext >> 9) & 0x3
	if c.caps.has020Ext {
		idxVal <<= scale
	}
	disp8 := int32(int8(ext & 0xFF))
	return base + uint32(disp8) + idxVal
}

// indexRegValue reads D/An(idxReg) for use as an index, sign-extending
// from word when wordSize is true.
func (c *CPU) indexRegValue(idxReg uint16, wordSize bool) uint32 {
	var v uint32
	if idxReg&0x8 == 0 {
		v = c.reg.D[idxReg&7]
	} else {
		v = c.A(int(idxReg & 7))
	}
	if wordSize {
		return uint32(int32(int16(v)))
	}
	return v
}

// fullExtEA resolves the 68020+ full extension word format: suppressed
// base/index, 0/16/32-bit base displacement, scaled index, and the three
// memory-indirect addressing variants.
func (c *CPU) fullExtEA(ext uint16, base uint32) uint32 {
	bs := (ext >> 7) & 1
	is := (ext >> 6) & 1
	bdSize := (ext >> 4) & 3
	scale := (ext >> 9) & 3

	addr := uint32(0)
	if bs == 0 {
		addr = base
	}

	switch bdSize {
	case 2:
		addr += uint32(int32(int16(c.fetch16())))
	case 3:
		addr += c.fetch32()
	}

	idxReg := ext & 0xF
	idxType := (ext >> 11) & 1
	indexTerm := func() uint32 {
		if is != 0 {
			return 0
		}
		v := c.indexRegValue(idxReg|(idxType<<3), (ext>>5)&1 == 0)
		return v << scale
	}

	indLevel := ext & 0x7
	if indLevel == 0 {
		return addr + indexTerm()
	}

	// Memory-indirect: bs/is suppress bits determine whether base/index
	// feed the *inner* address (pre-indexed) or are added after the
	// indirection (post-indexed); bit 2 of indLevel selects pre vs post.
	var indirectAddr uint32
	if indLevel <= 4 {
		// preindexed: ([bd,An,Xn],od)
		indirectAddr = c.read(Long, addr+indexTerm())
	} else {
		// postindexed: ([bd,An],Xn,od)
		indirectAddr = c.read(Long, addr)
		indirectAddr += indexTerm()
	}

	switch indLevel & 0x3 {
	case 1:
		indirectAddr += uint32(int32(int16(c.fetch16())))
	case 2:
		indirectAddr += c.fetch32()
	}
	return indirectAddr
}

// readEA fetches the operand value an ea descriptor refers to.
func (c *CPU) readEA(e ea) uint32 {
	switch e.kind {
	case eaDataReg:
		return c.reg.D[e.reg] & e.size.Mask()
	case eaAddrReg:
		return c.A(int(e.reg)) & e.size.Mask()
	case eaMemory:
		return c.read(e.size, e.addr)
	default:
		return e.imm
	}
}

// writeEA stores v into the operand an ea descriptor refers to, preserving
// the untouched upper bits of a data register on byte/word writes and
// sign-extending a word value written to an address register.
func (c *CPU) writeEA(e ea, v uint32) {
	switch e.kind {
	case eaDataReg:
		mask := e.size.Mask()
		c.reg.D[e.reg] = (c.reg.D[e.reg] &^ mask) | (v & mask)
	case eaAddrReg:
		if e.size == Word {
			c.SetA(int(e.reg), uint32(int32(int16(v))))
		} else {
			c.SetA(int(e.reg), v)
		}
	case eaMemory:
		c.write(e.size, e.addr, v)
	}
}
