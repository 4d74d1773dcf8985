package m68k

import "strings"

// Variant identifies a member of the 68000 family. Behavior that differs
// across the family -- available addressing modes, exception frame formats,
// presence of the FPU/MMU, register banking -- is selected through the
// capability flags a Variant resolves to, never through a type hierarchy.
type Variant int

const (
	MC68000 Variant = iota
	MC68010
	MC68EC020
	MC68020
	MC68EC030
	MC68030
	MC68EC040
	MC68LC040
	MC68040
	SCC68070
)

func (v Variant) String() string {
	switch v {
	case MC68000:
		return "68000"
	case MC68010:
		return "68010"
	case MC68EC020:
		return "68EC020"
	case MC68020:
		return "68020"
	case MC68EC030:
		return "68EC030"
	case MC68030:
		return "68030"
	case MC68EC040:
		return "68EC040"
	case MC68LC040:
		return "68LC040"
	case MC68040:
		return "68040"
	case SCC68070:
		return "SCC68070"
	default:
		return "unknown"
	}
}

// capabilities is the static flag set a variant dispatches handler behavior
// on. It is looked up once per CPU (at construction) rather than branched on
// variant directly throughout the decoder.
type capabilities struct {
	hasFPU        bool // on-chip or attached 68881/2-equivalent FPU
	hasMMU        bool // on-chip or attached PMMU
	has020Ext     bool // scaled index, full extension word, 32-bit EA math
	has030Ext     bool // 030+: selects the format $B bus/address-error frame
	has040Frames  bool // format $7 access-fault frame, MOVE16
	hasMBit       bool // SR.M / MSP banking (020+)
	has010Frames  bool // format $0/$8 frames and RTD
	vbrRelocat    bool // VBR is writable (010+); fixed at 0 on plain 68000
	hasCallModule bool // CALLM/RTM (020 only, removed on 030+)
}

var variantCaps = [...]capabilities{
	MC68000: {},
	MC68010: {has010Frames: true, vbrRelocat: true},
	MC68EC020: {has010Frames: true, vbrRelocat: true, has020Ext: true, hasMBit: true, hasCallModule: true},
	MC68020: {has010Frames: true, vbrRelocat: true, has020Ext: true, hasMBit: true, hasMMU: true, hasFPU: true, hasCallModule: true},
	MC68EC030: {has010Frames: true, vbrRelocat: true, has020Ext: true, has030Ext: true, hasMBit: true},
	MC68030:   {has010Frames: true, vbrRelocat: true, has020Ext: true, has030Ext: true, hasMBit: true, hasMMU: true, hasFPU: true},
	MC68EC040: {has010Frames: true, vbrRelocat: true, has020Ext: true, has030Ext: true, has040Frames: true, hasMBit: true},
	MC68LC040: {has010Frames: true, vbrRelocat: true, has020Ext: true, has030Ext: true, has040Frames: true, hasMBit: true, hasMMU: true},
	MC68040:   {has010Frames: true, vbrRelocat: true, has020Ext: true, has030Ext: true, has040Frames: true, hasMBit: true, hasMMU: true, hasFPU: true},
	SCC68070:  {has010Frames: true, vbrRelocat: true, has020Ext: true, hasMBit: true},
}

func (v Variant) caps() capabilities {
	if int(v) < 0 || int(v) >= len(variantCaps) {
		return capabilities{}
	}
	return variantCaps[v]
}

// ParseVariant resolves a variant name -- as a user would type it on a
// command line or put in a config file -- to its Variant constant. It
// accepts the same spelling Variant.String produces, case-insensitively,
// plus a bare numeric form ("020" and "68020" both mean MC68020). It
// returns ErrBadVariant for anything else.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "68000", "000", "m68000":
		return MC68000, nil
	case "68010", "010":
		return MC68010, nil
	case "68ec020", "ec020":
		return MC68EC020, nil
	case "68020", "020":
		return MC68020, nil
	case "68ec030", "ec030":
		return MC68EC030, nil
	case "68030", "030":
		return MC68030, nil
	case "68ec040", "ec040":
		return MC68EC040, nil
	case "68lc040", "lc040":
		return MC68LC040, nil
	case "68040", "040":
		return MC68040, nil
	case "scc68070", "68070":
		return SCC68070, nil
	default:
		return 0, wrapf(ErrBadVariant, "%q", name)
	}
}
