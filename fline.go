package m68k

import "math"

// execFGeneric decodes the 68881/68882/68040 general FPU instruction format:
// 1111 001 mmm rrr, extension word <R/M><src:3><dst:3><opcode:7>. When R/M
// is set the source operand comes from the EA instead of an FP register;
// this implementation reads/writes that memory operand as a single-
// precision IEEE value, a documented simplification of the seven source
// formats real 68881 silicon accepts.
func (c *CPU) execFGeneric(op uint16) {
	if c.fpu == nil {
		c.raiseException(vecFLine)
		return
	}
	mode := (op >> 3) & 7
	xreg := op & 7
	ext := c.fetch16()

	rm := ext&0x4000 != 0
	srcSpec := (ext >> 10) & 7
	dst := int((ext >> 7) & 7)
	opcode := ext & 0x7F

	loadSrc := func() int {
		if !rm {
			return int(srcSpec)
		}
		e := c.decodeEA(mode, xreg, Long)
		bits := c.readEA(e)
		c.fpu.FP[7] = ExtendedRealFromFloat64(float64(math.Float32frombits(bits)))
		return 7
	}

	switch opcode {
	case 0x00:
		c.fpu.FMove(loadSrc(), dst)
	case 0x01:
		c.fpu.FInt(loadSrc(), dst)
	case 0x02:
		if rm && srcSpec == 7 {
			e := c.decodeEA(mode, xreg, Byte)
			c.fpu.FMoveCR(uint8(c.readEA(e)), dst)
		}
	case 0x03:
		c.fpu.FIntRZ(loadSrc(), dst)
	case 0x04:
		c.fpu.FSqrt(loadSrc(), dst)
	case 0x06, 0x0C:
		c.fpu.FLogN(loadSrc(), dst)
	case 0x08:
		c.fpu.FEtoX(loadSrc(), dst)
	case 0x09:
		c.fpu.FTenToX(loadSrc(), dst)
	case 0x0A:
		c.fpu.FTwoToX(loadSrc(), dst)
	case 0x0B:
		c.fpu.FTanh(loadSrc(), dst)
	case 0x0D:
		c.fpu.FLog10(loadSrc(), dst)
	case 0x0E:
		c.fpu.FLog2(loadSrc(), dst)
	case 0x0F, 0x17:
		c.fpu.FTan(loadSrc(), dst)
	case 0x12:
		c.fpu.FAsin(loadSrc(), dst)
	case 0x13:
		c.fpu.FAtanh(loadSrc(), dst)
	case 0x14:
		c.fpu.FAtan(loadSrc(), dst)
	case 0x16:
		c.fpu.FSin(loadSrc(), dst)
	case 0x18:
		c.fpu.FAbs(loadSrc(), dst)
	case 0x19:
		c.fpu.FCosh(loadSrc(), dst)
	case 0x1A:
		c.fpu.FNeg(loadSrc(), dst)
	case 0x1C:
		c.fpu.FAcos(loadSrc(), dst)
	case 0x1D:
		c.fpu.FCos(loadSrc(), dst)
	case 0x1E:
		c.fpu.FGetExp(loadSrc(), dst)
	case 0x1F:
		c.fpu.FGetMan(loadSrc(), dst)
	case 0x20:
		c.fpu.FDiv(loadSrc(), dst)
	case 0x21:
		c.fpu.FMod(loadSrc(), dst)
	case 0x22:
		c.fpu.FAdd(loadSrc(), dst)
	case 0x23:
		c.fpu.FMul(loadSrc(), dst)
	case 0x24:
		c.fpu.FSglDiv(loadSrc(), dst)
	case 0x25:
		c.fpu.FRem(loadSrc(), dst)
	case 0x26:
		c.fpu.FScale(loadSrc(), dst)
	case 0x27:
		c.fpu.FSglMul(loadSrc(), dst)
	case 0x28:
		c.fpu.FSub(loadSrc(), dst)
	case 0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37:
		c.fpu.FSinCos(loadSrc(), dst, int(opcode&7))
	case 0x38:
		c.fpu.FCmp(loadSrc(), dst)
	case 0x3A:
		c.fpu.FTst(dst)
	default:
		c.raiseException(vecFLine)
	}
}

// execFMoveToMem handles FMOVE FPn,<ea>, writing a single-precision value
// to memory -- the same simplification execFGeneric's loadSrc makes for
// reads.
func (c *CPU) execFMoveToMem(op uint16) {
	if c.fpu == nil {
		c.raiseException(vecFLine)
		return
	}
	mode := (op >> 3) & 7
	xreg := op & 7
	ext := c.fetch16()
	src := int((ext >> 7) & 7)
	e := c.decodeEA(mode, xreg, Long)
	bits := math.Float32bits(float32(c.fpu.FP[src].ToFloat64()))
	c.writeEA(e, bits)
}

// execFMovem saves or restores the FP register file (or a subset of it) as
// 96-bit extended-precision slots in memory. The extension word's bit 5
// selects the 68040's dynamic register-list form, reading the list from a
// data register (selected by bits 6-4) instead of the static bits 7-0.
// Predecrement addressing scans the list high register to low, decrementing
// by 12 bytes before each write; postincrement and control addressing scan
// low to high, mirroring integer MOVEM's reversed-scan rule.
func (c *CPU) execFMovem(op uint16) {
	if c.fpu == nil {
		c.raiseException(vecFLine)
		return
	}
	mode := (op >> 3) & 7
	xreg := op & 7
	ext := c.fetch16()
	toMemory := ext&0x2000 == 0

	var list uint8
	if ext&0x0020 != 0 { // dynamic list: register number in bits 6-4
		dreg := (ext >> 4) & 7
		list = uint8(c.reg.D[dreg] & 0xFF)
	} else {
		list = uint8(ext & 0xFF)
	}

	transfer := func(addr uint32, i int) {
		if toMemory {
			v := c.fpu.FP[i]
			c.write(Long, addr, uint32(v.Sign)<<31|uint32(v.Exp)<<16)
			c.write(Long, addr+4, uint32(v.Mant>>32))
			c.write(Long, addr+8, uint32(v.Mant))
		} else {
			w0 := c.read(Long, addr)
			w1 := c.read(Long, addr+4)
			w2 := c.read(Long, addr+8)
			c.fpu.FP[i] = ExtendedReal{
				Sign: uint8(w0 >> 31),
				Exp:  uint16((w0 >> 16) & 0x7FFF),
				Mant: uint64(w1)<<32 | uint64(w2),
			}
		}
	}

	switch mode {
	case 4: // predecrement, register to memory only
		addr := c.A(int(xreg))
		for bit := 7; bit >= 0; bit-- {
			if list&(1<<uint(bit)) == 0 {
				continue
			}
			addr -= 12
			transfer(addr, bit)
		}
		c.SetA(int(xreg), addr)
	case 3: // postincrement, memory to register only
		addr := c.A(int(xreg))
		for bit := 0; bit < 8; bit++ {
			if list&(1<<uint(bit)) == 0 {
				continue
			}
			transfer(addr, bit)
			addr += 12
		}
		c.SetA(int(xreg), addr)
	default:
		e := c.decodeEA(mode, xreg, Long)
		addr := e.addr
		for bit := 0; bit < 8; bit++ {
			if list&(1<<uint(bit)) == 0 {
				continue
			}
			transfer(addr, bit)
			addr += 12
		}
	}
}

func (c *CPU) execFBcc(op uint16, long bool) {
	pred := uint8(op & 0x3F)
	base := c.reg.PC
	var disp int32
	if long {
		disp = int32(c.fetch32())
	} else {
		disp = int32(int16(c.fetch16()))
	}
	if c.fpu != nil && c.fpu.fpccPredicate(pred) {
		c.reg.PC = base + uint32(disp)
	}
}

func (c *CPU) execFScc(op uint16) {
	mode := (op >> 3) & 7
	xreg := op & 7
	ext := c.fetch16()
	pred := uint8(ext & 0x3F)
	e := c.decodeEA(mode, xreg, Byte)
	if c.fpu != nil && c.fpu.fpccPredicate(pred) {
		c.writeEA(e, 0xFF)
	} else {
		c.writeEA(e, 0)
	}
}

func (c *CPU) execFDbcc(op uint16) {
	reg := op & 7
	ext := c.fetch16()
	pred := uint8(ext & 0x3F)
	disp := int32(int16(c.fetch16()))

	if c.fpu != nil && c.fpu.fpccPredicate(pred) {
		return
	}
	v := int16(c.reg.D[reg])
	v--
	c.reg.D[reg] = (c.reg.D[reg] &^ 0xFFFF) | uint32(uint16(v))
	if v != -1 {
		c.reg.PC = c.reg.PC - 2 + uint32(disp)
	}
}

func (c *CPU) execFNop(op uint16) {
	c.fetch16()
}
