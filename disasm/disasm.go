// Package disasm disassembles 68000-family machine code into text mnemonics.
// It shares no state with a CPU core: it walks a caller-supplied byte source
// one instruction at a time, decoding the same opcode groups decode.go
// dispatches, so a disassembly and a Step always agree on instruction length.
package disasm

import (
	"fmt"
	"strings"
)

// Reader is the minimal bus-like read-only view a disassembler needs. Any
// m68k.Bus satisfies it already.
type Reader interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
}

// Line is one disassembled instruction.
type Line struct {
	Addr     uint32
	Bytes    []byte
	Length   uint32
	Mnemonic string
}

var sizeSuffix = [4]string{".B", ".W", ".L", ""}
var condNames = [16]string{
	"T", "F", "HI", "LS", "CC", "CS", "NE", "EQ",
	"VC", "VS", "PL", "MI", "GE", "LT", "GT", "LE",
}

// cursor walks a Reader forward from a starting address, tracking how many
// bytes have been consumed so One can report instruction length.
type cursor struct {
	r     Reader
	start uint32
	pc    uint32
}

func (c *cursor) word() uint16 {
	v := c.r.Read16(c.pc)
	c.pc += 2
	return v
}

func (c *cursor) long() uint32 {
	v := c.r.Read32(c.pc)
	c.pc += 4
	return v
}

// Disassemble decodes count instructions starting at addr.
func Disassemble(r Reader, addr uint32, count int) []Line {
	lines := make([]Line, 0, count)
	pc := addr
	for i := 0; i < count; i++ {
		l := One(r, pc)
		lines = append(lines, l)
		pc += l.Length
	}
	return lines
}

// One decodes a single instruction at addr.
func One(r Reader, addr uint32) Line {
	c := &cursor{r: r, start: addr, pc: addr}
	w := c.word()
	mnem := decodeInstruction(c, w)
	length := c.pc - c.start
	buf := make([]byte, 0, length)
	for i := uint32(0); i < length; i++ {
		buf = append(buf, r.Read8(addr+i))
	}
	return Line{Addr: addr, Bytes: buf, Length: length, Mnemonic: mnem}
}

func decodeInstruction(c *cursor, w uint16) string {
	switch w >> 12 {
	case 0x0:
		return decodeGroup0(c, w)
	case 0x1:
		return decodeMove(c, w, ".B", 1)
	case 0x2:
		return decodeMove(c, w, ".L", 4)
	case 0x3:
		return decodeMove(c, w, ".W", 2)
	case 0x4:
		return decodeGroup4(c, w)
	case 0x5:
		return decodeGroup5(c, w)
	case 0x6:
		return decodeGroup6(c, w)
	case 0x7:
		if w&0x0100 == 0 {
			dn := (w >> 9) & 7
			data := int8(w & 0xFF)
			return fmt.Sprintf("moveq #%d, d%d", data, dn)
		}
		return fmt.Sprintf("dc.w $%04x", w)
	case 0x8:
		return decodeGroup8(c, w)
	case 0x9:
		return decodeArith(c, w, "sub")
	case 0xA:
		return fmt.Sprintf("dc.w $%04x ; line-a", w)
	case 0xB:
		return decodeGroupB(c, w)
	case 0xC:
		return decodeGroupC(c, w)
	case 0xD:
		return decodeArith(c, w, "add")
	case 0xE:
		return decodeGroupE(c, w)
	case 0xF:
		return decodeGroupF(c, w)
	}
	return fmt.Sprintf("dc.w $%04x", w)
}

// formatEA renders the mode/reg fields of an instruction operand as text,
// consuming whatever extension words that addressing mode requires.
// sizeBytes is only consulted for the immediate mode (7,4).
func formatEA(c *cursor, mode, reg uint16, sizeBytes int) string {
	switch mode {
	case 0:
		return fmt.Sprintf("d%d", reg)
	case 1:
		return fmt.Sprintf("a%d", reg)
	case 2:
		return fmt.Sprintf("(a%d)", reg)
	case 3:
		return fmt.Sprintf("(a%d)+", reg)
	case 4:
		return fmt.Sprintf("-(a%d)", reg)
	case 5:
		disp := int16(c.word())
		return fmt.Sprintf("%d(a%d)", disp, reg)
	case 6:
		return formatIndexed(c, fmt.Sprintf("a%d", reg))
	case 7:
		switch reg {
		case 0:
			addr := int16(c.word())
			return fmt.Sprintf("$%x.w", uint16(addr))
		case 1:
			return fmt.Sprintf("$%x.l", c.long())
		case 2:
			disp := int16(c.word())
			return fmt.Sprintf("%d(pc)", disp)
		case 3:
			return formatIndexed(c, "pc")
		case 4:
			switch sizeBytes {
			case 1:
				return fmt.Sprintf("#$%x", c.word()&0xFF)
			case 4:
				return fmt.Sprintf("#$%x", c.long())
			default:
				return fmt.Sprintf("#$%x", c.word())
			}
		default:
			return "???"
		}
	}
	return "???"
}

// formatIndexed renders a brief or 68020+ full extension word relative to
// baseText, which is already "an" or "pc".
func formatIndexed(c *cursor, baseText string) string {
	ext := c.word()
	idxReg := (ext >> 12) & 0xF
	idxName := fmt.Sprintf("d%d", idxReg&7)
	if idxReg&0x8 != 0 {
		idxName = fmt.Sprintf("a%d", idxReg&7)
	}
	if ext&0x0800 == 0 {
		idxName += ".w"
	} else {
		idxName += ".l"
	}
	scale := (ext >> 9) & 3
	scaleText := ""
	if scale != 0 {
		scaleText = fmt.Sprintf("*%d", 1<<scale)
	}

	if ext&0x0100 == 0 {
		disp8 := int8(ext & 0xFF)
		return fmt.Sprintf("%d(%s,%s%s)", disp8, baseText, idxName, scaleText)
	}

	// Full extension word: suppressed base/index, 0/16/32-bit base
	// displacement, and the memory-indirect pre/post-indexed forms.
	bs := ext&0x0080 != 0
	is := ext&0x0040 != 0
	bdSize := (ext >> 4) & 3
	var bd string
	switch bdSize {
	case 2:
		bd = fmt.Sprintf("%d", int16(c.word()))
	case 3:
		bd = fmt.Sprintf("%d", int32(c.long()))
	default:
		bd = "0"
	}
	baseName := baseText
	if bs {
		baseName = ""
	}
	indexName := "," + idxName + scaleText
	if is {
		indexName = ""
	}

	indLevel := ext & 0x7
	if indLevel == 0 {
		parts := []string{bd}
		if baseName != "" {
			parts = append(parts, baseName)
		}
		return fmt.Sprintf("(%s%s)", strings.Join(parts, ","), indexName)
	}

	var od string
	switch indLevel & 0x3 {
	case 1:
		od = fmt.Sprintf(",%d", int16(c.word()))
	case 2:
		od = fmt.Sprintf(",%d", int32(c.long()))
	}
	parts := []string{bd}
	if baseName != "" {
		parts = append(parts, baseName)
	}
	// Pre- and post-indexed forms differ in where the index term is added
	// (inside vs. outside the memory indirection) but render identically.
	return fmt.Sprintf("([%s]%s%s)", strings.Join(parts, ","), indexName, od)
}

func decodeMove(c *cursor, w uint16, suffix string, sizeBytes int) string {
	srcMode := (w >> 3) & 7
	srcReg := w & 7
	dstReg := (w >> 9) & 7
	dstMode := (w >> 6) & 7
	src := formatEA(c, srcMode, srcReg, sizeBytes)
	dst := formatEA(c, dstMode, dstReg, sizeBytes)
	if dstMode == 1 {
		return fmt.Sprintf("movea%s %s, %s", suffix, src, dst)
	}
	return fmt.Sprintf("move%s %s, %s", suffix, src, dst)
}

func decodeGroup0(c *cursor, w uint16) string {
	mode := (w >> 3) & 7
	xreg := w & 7
	sub := (w >> 8) & 0xF

	if w&0x0100 != 0 { // dynamic bit op or MOVEP
		if mode == 1 {
			dreg := (w >> 9) & 7
			opmode := (w >> 6) & 7
			return fmt.Sprintf("movep d%d, %d(a%d) [opmode %d]", dreg, 0, xreg, opmode)
		}
		dreg := (w >> 9) & 7
		ea := formatEA(c, mode, xreg, 1)
		switch (w >> 6) & 3 {
		case 0:
			return fmt.Sprintf("btst d%d, %s", dreg, ea)
		case 1:
			return fmt.Sprintf("bchg d%d, %s", dreg, ea)
		case 2:
			return fmt.Sprintf("bclr d%d, %s", dreg, ea)
		default:
			return fmt.Sprintf("bset d%d, %s", dreg, ea)
		}
	}

	switch sub {
	case 0x0, 0x1, 0x2, 0x3, 0x6:
		names := map[uint16]string{0x0: "ori", 0x1: "andi", 0x2: "subi", 0x3: "addi", 0x6: "cmpi"}
		szBits := (w >> 6) & 3
		szName, szBytes := sizeName(szBits)
		if mode == 7 && xreg == 4 {
			// ORI/ANDI/EORI #imm,CCR (byte) or #imm,SR (word)
			if szBits == 0 {
				return fmt.Sprintf("%s #$%x, ccr", names[sub], c.word()&0xFF)
			}
			return fmt.Sprintf("%s #$%x, sr", names[sub], c.word())
		}
		imm := fetchImm(c, szBytes)
		ea := formatEA(c, mode, xreg, szBytes)
		return fmt.Sprintf("%s%s #$%x, %s", names[sub], szName, imm, ea)
	case 0x4:
		if mode == 7 && xreg == 4 {
			return "bset #imm, ccr/sr"
		}
		_, szBytes := sizeName((w >> 6) & 3)
		imm := c.word() & 0x1F
		ea := formatEA(c, mode, xreg, szBytes)
		return fmt.Sprintf("bclr #$%x, %s", imm, ea)
	case 0x8:
		bit := c.word() & 0x3F
		ea := formatEA(c, mode, xreg, 1)
		switch (w >> 6) & 3 {
		case 0:
			return fmt.Sprintf("btst #$%x, %s", bit, ea)
		case 1:
			return fmt.Sprintf("bchg #$%x, %s", bit, ea)
		case 2:
			return fmt.Sprintf("bclr #$%x, %s", bit, ea)
		default:
			return fmt.Sprintf("bset #$%x, %s", bit, ea)
		}
	case 0xA, 0xB:
		if mode == 7 && (xreg == 0 || xreg == 1 || xreg == 2 || xreg == 3) {
			ext := c.word()
			return fmt.Sprintf("cas2/cmp2/chk2 ext=$%04x", ext)
		}
		ea := formatEA(c, mode, xreg, 1)
		ext := c.word()
		rn := (ext >> 12) & 7
		if ext&0x0800 != 0 {
			return fmt.Sprintf("chk2 %s, a%d", ea, rn)
		}
		return fmt.Sprintf("cmp2 %s, d%d", ea, rn)
	case 0xC:
		if mode == 1 {
			ext := c.word()
			ru := ext & 7
			rc := (ext >> 9) & 7
			return fmt.Sprintf("cas2 d%d:d%d", rc, ru)
		}
		ext := c.word()
		dc := ext & 7
		du := (ext >> 6) & 7
		ea := formatEA(c, mode, xreg, 1)
		return fmt.Sprintf("cas d%d, d%d, %s", dc, du, ea)
	case 0xE:
		ea := formatEA(c, mode, xreg, 4)
		ext := c.word()
		return fmt.Sprintf("cas.l ext=$%04x, %s", ext, ea)
	}
	return fmt.Sprintf("dc.w $%04x", w)
}

func fetchImm(c *cursor, szBytes int) uint32 {
	if szBytes == 1 {
		return uint32(c.word() & 0xFF)
	}
	if szBytes == 4 {
		return c.long()
	}
	return uint32(c.word())
}

func sizeName(bits uint16) (string, int) {
	switch bits {
	case 0:
		return ".b", 1
	case 1:
		return ".w", 2
	default:
		return ".l", 4
	}
}

func decodeGroup4(c *cursor, w uint16) string {
	switch {
	case w == 0x4E70:
		return "reset"
	case w == 0x4E71:
		return "nop"
	case w == 0x4E72:
		return fmt.Sprintf("stop #$%x", c.word())
	case w == 0x4E73:
		return "rte"
	case w == 0x4E74:
		return fmt.Sprintf("rtd #%d", int16(c.word()))
	case w == 0x4E75:
		return "rts"
	case w == 0x4E76:
		return "trapv"
	case w == 0x4E77:
		return "rtr"
	case w&0xFFF8 == 0x4848:
		return fmt.Sprintf("bkpt #%d", w&7)
	case w&0xFFF8 == 0x4E50:
		return fmt.Sprintf("link a%d, #%d", w&7, int16(c.word()))
	case w&0xFFF8 == 0x4E58:
		return fmt.Sprintf("unlk a%d", w&7)
	case w&0xFFF0 == 0x4E60:
		reg := w & 7
		if (w>>3)&1 == 0 {
			return fmt.Sprintf("move a%d, usp", reg)
		}
		return fmt.Sprintf("move usp, a%d", reg)
	case w&0xFFF0 == 0x4E40:
		return fmt.Sprintf("trap #%d", w&0xF)
	case w&0xFFC0 == 0x4E80:
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("jsr %s", formatEA(c, mode, reg, 4))
	case w&0xFFC0 == 0x4EC0:
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("jmp %s", formatEA(c, mode, reg, 4))
	case w&0xFB80 == 0x4880:
		sz := ".w"
		if w&0x40 != 0 {
			sz = ".l"
		}
		mode, reg := (w>>3)&7, w&7
		list := c.word()
		return fmt.Sprintf("movem%s #$%04x, %s", sz, list, formatEA(c, mode, reg, 4))
	case w&0xFB80 == 0x4C80:
		sz := ".w"
		if w&0x40 != 0 {
			sz = ".l"
		}
		mode, reg := (w>>3)&7, w&7
		list := c.word()
		return fmt.Sprintf("movem%s %s, #$%04x", sz, formatEA(c, mode, reg, 4), list)
	case w&0xFFF8 == 0x4840:
		return fmt.Sprintf("swap d%d", w&7)
	case w&0xFFC0 == 0x4AC0:
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("tas %s", formatEA(c, mode, reg, 1))
	case w&0xFF00 == 0x4A00:
		szName, szBytes := sizeName((w >> 6) & 3)
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("tst%s %s", szName, formatEA(c, mode, reg, szBytes))
	case w&0xF1C0 == 0x41C0:
		reg := (w >> 9) & 7
		mode, xreg := (w>>3)&7, w&7
		return fmt.Sprintf("lea %s, a%d", formatEA(c, mode, xreg, 4), reg)
	case w&0xFFC0 == 0x4840:
		mode, xreg := (w>>3)&7, w&7
		return fmt.Sprintf("pea %s", formatEA(c, mode, xreg, 4))
	case w&0xFFC0 == 0x4800:
		reg := w & 7
		return fmt.Sprintf("nbcd d%d", reg)
	case w&0xFF00 == 0x4000:
		szName, szBytes := sizeName((w >> 6) & 3)
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("negx%s %s", szName, formatEA(c, mode, reg, szBytes))
	case w&0xFF00 == 0x4200:
		szName, szBytes := sizeName((w >> 6) & 3)
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("clr%s %s", szName, formatEA(c, mode, reg, szBytes))
	case w&0xFF00 == 0x4400:
		szName, szBytes := sizeName((w >> 6) & 3)
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("neg%s %s", szName, formatEA(c, mode, reg, szBytes))
	case w&0xFF00 == 0x4600:
		szName, szBytes := sizeName((w >> 6) & 3)
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("not%s %s", szName, formatEA(c, mode, reg, szBytes))
	case w&0xFFC0 == 0x40C0:
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("move sr, %s", formatEA(c, mode, reg, 2))
	case w&0xFFC0 == 0x42C0:
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("move ccr, %s", formatEA(c, mode, reg, 2))
	case w&0xFFC0 == 0x44C0:
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("move %s, ccr", formatEA(c, mode, reg, 2))
	case w&0xFFC0 == 0x46C0:
		mode, reg := (w>>3)&7, w&7
		return fmt.Sprintf("move %s, sr", formatEA(c, mode, reg, 2))
	case w&0xF140 == 0x4100:
		reg := (w >> 9) & 7
		opmode := (w >> 6) & 7
		mode, xreg := (w>>3)&7, w&7
		sz := ".w"
		if opmode == 4 {
			sz = ".l"
		}
		return fmt.Sprintf("chk%s %s, d%d", sz, formatEA(c, mode, xreg, 2), reg)
	case w&0xFFC0 == 0x4C00:
		ext := c.word()
		reg := (ext >> 12) & 7
		mode, xreg := (w>>3)&7, w&7
		sz := ".w"
		if ext&0x0800 != 0 {
			sz = ".l"
		}
		if ext&0x0400 != 0 {
			return fmt.Sprintf("divs%s %s, d%d", sz, formatEA(c, mode, xreg, 4), reg)
		}
		return fmt.Sprintf("divu%s %s, d%d", sz, formatEA(c, mode, xreg, 4), reg)
	case w&0xFFC0 == 0x4C40:
		ext := c.word()
		reg := (ext >> 12) & 7
		mode, xreg := (w>>3)&7, w&7
		sz := ".w"
		if ext&0x0800 != 0 {
			sz = ".l"
		}
		if ext&0x0400 != 0 {
			return fmt.Sprintf("muls%s %s, d%d", sz, formatEA(c, mode, xreg, 4), reg)
		}
		return fmt.Sprintf("mulu%s %s, d%d", sz, formatEA(c, mode, xreg, 4), reg)
	}
	return fmt.Sprintf("dc.w $%04x", w)
}

func decodeGroup5(c *cursor, w uint16) string {
	cond := (w >> 8) & 0xF
	mode, reg := (w>>3)&7, w&7
	if w&0xC0 == 0xC0 {
		if mode == 1 {
			disp := int16(c.word())
			return fmt.Sprintf("db%s d%d, *%+d", strings.ToLower(condNames[cond]), reg, disp)
		}
		return fmt.Sprintf("s%s %s", strings.ToLower(condNames[cond]), formatEA(c, mode, reg, 1))
	}
	data := (w >> 9) & 7
	if data == 0 {
		data = 8
	}
	szName, szBytes := sizeName((w >> 6) & 3)
	if w&0x0100 != 0 {
		return fmt.Sprintf("subq%s #%d, %s", szName, data, formatEA(c, mode, reg, szBytes))
	}
	return fmt.Sprintf("addq%s #%d, %s", szName, data, formatEA(c, mode, reg, szBytes))
}

func decodeGroup6(c *cursor, w uint16) string {
	cond := (w >> 8) & 0xF
	disp8 := int8(w & 0xFF)
	name := "b" + strings.ToLower(condNames[cond])
	if cond == 1 {
		name = "bsr"
	}
	switch disp8 {
	case 0:
		disp := int16(c.word())
		return fmt.Sprintf("%s *%+d", name, disp)
	case -1:
		disp := int32(c.long())
		return fmt.Sprintf("%s.l *%+d", name, disp)
	default:
		return fmt.Sprintf("%s *%+d", name, disp8)
	}
}

func decodeGroup8(c *cursor, w uint16) string {
	reg := (w >> 9) & 7
	opmode := (w >> 6) & 7
	mode, xreg := (w>>3)&7, w&7
	if opmode == 3 {
		return fmt.Sprintf("divu.w %s, d%d", formatEA(c, mode, xreg, 2), reg)
	}
	if opmode == 7 {
		return fmt.Sprintf("divs.w %s, d%d", formatEA(c, mode, xreg, 2), reg)
	}
	if opmode == 4 && mode == 0 {
		return fmt.Sprintf("sbcd d%d, d%d", xreg, reg)
	}
	if opmode == 4 && mode == 1 {
		return fmt.Sprintf("sbcd -(a%d), -(a%d)", xreg, reg)
	}
	if (opmode == 4 || opmode == 5) && mode == 0 {
		return fmt.Sprintf("pack/unpk d%d, d%d", xreg, reg)
	}
	if (opmode == 4 || opmode == 5) && mode == 1 {
		return fmt.Sprintf("pack/unpk -(a%d), -(a%d)", xreg, reg)
	}
	szName, szBytes := sizeName(opmode & 3)
	if opmode >= 4 {
		return fmt.Sprintf("or%s d%d, %s", szName, reg, formatEA(c, mode, xreg, szBytes))
	}
	return fmt.Sprintf("or%s %s, d%d", szName, formatEA(c, mode, xreg, szBytes), reg)
}

func decodeArith(c *cursor, w uint16, base string) string {
	reg := (w >> 9) & 7
	opmode := (w >> 6) & 7
	mode, xreg := (w>>3)&7, w&7

	if opmode == 3 || opmode == 7 {
		sz := ".w"
		if opmode == 7 {
			sz = ".l"
		}
		return fmt.Sprintf("%sa%s %s, a%d", base, sz, formatEA(c, mode, xreg, 4), reg)
	}
	if mode == 1 && opmode >= 4 {
		szName, _ := sizeName(opmode & 3)
		return fmt.Sprintf("%sx%s -(a%d), -(a%d)", base, szName, xreg, reg)
	}
	if mode == 0 && opmode >= 4 {
		szName, _ := sizeName(opmode & 3)
		return fmt.Sprintf("%sx%s d%d, d%d", base, szName, xreg, reg)
	}
	szName, szBytes := sizeName(opmode & 3)
	if opmode >= 4 {
		return fmt.Sprintf("%s%s d%d, %s", base, szName, reg, formatEA(c, mode, xreg, szBytes))
	}
	return fmt.Sprintf("%s%s %s, d%d", base, szName, formatEA(c, mode, xreg, szBytes), reg)
}

func decodeGroupB(c *cursor, w uint16) string {
	reg := (w >> 9) & 7
	opmode := (w >> 6) & 7
	mode, xreg := (w>>3)&7, w&7

	if opmode == 3 || opmode == 7 {
		sz := ".w"
		if opmode == 7 {
			sz = ".l"
		}
		return fmt.Sprintf("cmpa%s %s, a%d", sz, formatEA(c, mode, xreg, 4), reg)
	}
	if mode == 1 && opmode < 3 {
		szName, _ := sizeName(opmode & 3)
		return fmt.Sprintf("cmpm%s (a%d)+, (a%d)+", szName, xreg, reg)
	}
	szName, szBytes := sizeName(opmode & 3)
	if opmode >= 4 {
		return fmt.Sprintf("eor%s d%d, %s", szName, reg, formatEA(c, mode, xreg, szBytes))
	}
	return fmt.Sprintf("cmp%s %s, d%d", szName, formatEA(c, mode, xreg, szBytes), reg)
}

func decodeGroupC(c *cursor, w uint16) string {
	reg := (w >> 9) & 7
	opmode := (w >> 6) & 7
	mode, xreg := (w>>3)&7, w&7

	if opmode == 3 {
		return fmt.Sprintf("mulu.w %s, d%d", formatEA(c, mode, xreg, 2), reg)
	}
	if opmode == 7 {
		return fmt.Sprintf("muls.w %s, d%d", formatEA(c, mode, xreg, 2), reg)
	}
	if opmode == 4 && mode == 0 {
		return fmt.Sprintf("abcd d%d, d%d", xreg, reg)
	}
	if opmode == 4 && mode == 1 {
		return fmt.Sprintf("abcd -(a%d), -(a%d)", xreg, reg)
	}
	if opmode == 5 && (mode == 0 || mode == 1) {
		sub := "exg d,d"
		switch mode {
		case 1:
			sub = "exg a,a"
		}
		return fmt.Sprintf("%s: %d, %d", sub, xreg, reg)
	}
	if opmode == 6 && mode == 1 {
		return fmt.Sprintf("exg d,a: %d, %d", reg, xreg)
	}
	szName, szBytes := sizeName(opmode & 3)
	if opmode >= 4 {
		return fmt.Sprintf("and%s d%d, %s", szName, reg, formatEA(c, mode, xreg, szBytes))
	}
	return fmt.Sprintf("and%s %s, d%d", szName, formatEA(c, mode, xreg, szBytes), reg)
}

func decodeGroupE(c *cursor, w uint16) string {
	if w&0xF8C0 == 0xE8C0 { // bitfield instructions, 020+
		ext := c.word()
		mode, xreg := (w>>3)&7, w&7
		ea := formatEA(c, mode, xreg, 4)
		off := fieldSpec((ext>>6)&0x1F, ext&0x800 != 0)
		width := fieldSpec(ext&0x1F, ext&0x20 != 0)
		dreg := (ext >> 12) & 7
		switch (w >> 8) & 0xF {
		case 0x8:
			return fmt.Sprintf("bftst %s {%s:%s}", ea, off, width)
		case 0x9:
			return fmt.Sprintf("bfextu %s {%s:%s}, d%d", ea, off, width, dreg)
		case 0xA:
			return fmt.Sprintf("bfchg %s {%s:%s}", ea, off, width)
		case 0xB:
			return fmt.Sprintf("bfexts %s {%s:%s}, d%d", ea, off, width, dreg)
		case 0xC:
			return fmt.Sprintf("bfclr %s {%s:%s}", ea, off, width)
		case 0xD:
			return fmt.Sprintf("bfffo %s {%s:%s}, d%d", ea, off, width, dreg)
		case 0xE:
			return fmt.Sprintf("bfset %s {%s:%s}", ea, off, width)
		case 0xF:
			return fmt.Sprintf("bfins d%d, %s {%s:%s}", dreg, ea, off, width)
		}
	}

	if w&0x00C0 != 0xC0 { // register shifts/rotates
		reg := (w >> 9) & 7
		dir := (w >> 8) & 1
		ir := (w >> 5) & 1
		kind := (w >> 3) & 3
		dreg := w & 7
		szName, _ := sizeName((w >> 6) & 3)
		names := [4]string{"asr", "lsr", "roxr", "ror"}
		if dir == 1 {
			names = [4]string{"asl", "lsl", "roxl", "rol"}
		}
		if ir == 0 {
			count := reg
			if count == 0 {
				count = 8
			}
			return fmt.Sprintf("%s%s #%d, d%d", names[kind], szName, count, dreg)
		}
		return fmt.Sprintf("%s%s d%d, d%d", names[kind], szName, reg, dreg)
	}

	// memory shift/rotate, word size only
	dir := (w >> 8) & 1
	kind := (w >> 9) & 3
	mode, xreg := (w>>3)&7, w&7
	names := [4]string{"asr", "lsr", "roxr", "ror"}
	if dir == 1 {
		names = [4]string{"asl", "lsl", "roxl", "rol"}
	}
	return fmt.Sprintf("%s %s", names[kind], formatEA(c, mode, xreg, 2))
}

func fieldSpec(raw uint16, dynamic bool) string {
	if dynamic {
		return fmt.Sprintf("d%d", raw&7)
	}
	return fmt.Sprintf("%d", raw)
}

func decodeGroupF(c *cursor, w uint16) string {
	mode := (w >> 3) & 7
	xreg := w & 7
	cpID := (w >> 9) & 7

	if cpID == 1 { // FPU generic (F-line opmode byte 0)
		ext := c.word()
		rm := ext&0x4000 != 0
		srcSpec := (ext >> 10) & 7
		dst := (ext >> 7) & 7
		opcode := ext & 0x7F

		switch ext & 0xC000 {
		case 0x0000, 0x4000: // generic arithmetic/move
			src := "fp" + fmt.Sprint(srcSpec)
			if rm {
				src = formatEA(c, mode, xreg, 4)
			}
			return fmt.Sprintf("f%02x %s, fp%d", opcode, src, dst)
		}

		switch w & 0xFFC0 {
		case 0xF040, 0xF080:
			return fmt.Sprintf("fscc.%d %s", ext&0x3F, formatEA(c, mode, xreg, 1))
		case 0xF048:
			return fmt.Sprintf("fdbcc ext=$%04x %s", ext, formatEA(c, mode, xreg, 2))
		}
		return fmt.Sprintf("f%02x ext=$%04x", opcode, ext)
	}

	if w&0xFF00 == 0xF200 {
		cond := w & 0x3F
		disp := int16(c.word())
		return fmt.Sprintf("fb%02x *%+d", cond, disp)
	}

	// PMMU (PMOVE/PFLUSH/PTEST), 68030/68040
	if cpID == 0 {
		ext := c.word()
		return fmt.Sprintf("pmmu ext=$%04x %s", ext, formatEA(c, mode, xreg, 4))
	}

	return fmt.Sprintf("dc.w $%04x ; line-f", w)
}
