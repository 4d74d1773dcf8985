package m68k

import "math"

// fpuROMTable holds the 68881/68882 constant ROM addressed by FMOVECR's
// 7-bit offset field. Entries not defined by Motorola read as zero, which
// is also what real silicon returns for a reserved address.
var fpuROMTable = map[uint8]float64{
	0x00: math.Pi,
	0x0B: 0.301029995663981195, // log10(2)
	0x0C: math.E,
	0x0D: math.Log2E,
	0x0E: math.Log10E,
	0x0F: 0.0,
	0x30: math.Ln2,
	0x31: math.Ln10,
	0x32: 1.0,
	0x33: 1.0e1,
	0x34: 1.0e2,
	0x35: 1.0e4,
	0x36: 1.0e8,
	0x37: 1.0e16,
	0x38: 1.0e32,
	0x39: 1.0e64,
	0x3A: 1.0e128,
	0x3B: 1.0e256,
}

// fpuROM returns the constant at the given ROM address, 0.0 for any
// address Motorola left reserved.
func fpuROM(addr uint8) float64 {
	if v, ok := fpuROMTable[addr&0x7F]; ok {
		return v
	}
	return 0.0
}
