package m68k

// MMU models the 68030/68851-style and 68040-style on-chip PMMU: root
// pointers, transparent translation registers, and an address translation
// cache sitting in front of a page-table walk. It is only attached to CPU
// variants whose capabilities report hasMMU.
//
// Table layout is a deliberate simplification (SPEC_FULL §9 notes the ATC
// replacement policy and exact TC field layout are not software-observable
// beyond PFLUSH/PTEST correctness): TC packs an enable bit, a page-size
// shift, and a one-or-two level walk depth rather than reproducing the
// real 030/040 TC bit-for-bit, and the descriptor format below is this
// module's own rather than transcribed from the Motorola PRM.
type MMU struct {
	variant Variant

	TC   uint32
	URP  uint32
	SRP  uint32
	ITT0 uint32
	ITT1 uint32
	DTT0 uint32
	DTT1 uint32

	// 68040 naming for the same transparent-translation concept.
	IACR0, IACR1 uint32
	DACR0, DACR1 uint32

	MMUSR uint16

	atc []atcEntry
}

type atcEntry struct {
	valid          bool
	logicalPage    uint32
	supervisor     bool
	physicalPage   uint32
	writeProtect   bool
	supervisorOnly bool
	modified       bool
}

const (
	mmuTCEnable    = 1 << 31
	mmuPageShift   = 12 // fixed 4K pages
	mmuDescInvalid = 0
	mmuDescPage    = 1
	mmuDescPointer = 3
	mmuDescWP      = 1 << 2
	mmuDescS       = 1 << 3
	mmuDescM       = 1 << 4
)

func newMMU(v Variant) *MMU {
	return &MMU{variant: v, atc: make([]atcEntry, 64)}
}

func (m *MMU) reset() {
	*m = MMU{variant: m.variant, atc: make([]atcEntry, len(m.atc))}
}

// pflusha invalidates every ATC entry.
func (m *MMU) pflusha() {
	for i := range m.atc {
		m.atc[i] = atcEntry{}
	}
}

// pflush invalidates ATC entries matching the given logical address.
func (m *MMU) pflush(logical uint32) {
	page := logical >> mmuPageShift
	for i := range m.atc {
		if m.atc[i].valid && m.atc[i].logicalPage == page {
			m.atc[i] = atcEntry{}
		}
	}
}

// pflushn invalidates only non-global entries; this implementation tracks
// no global bit, so it behaves as pflusha -- a conservative but correct
// simplification since over-flushing cannot produce a wrong translation.
func (m *MMU) pflushn() { m.pflusha() }

func (m *MMU) ttrMatches(ttr uint32, addr uint32, write bool) bool {
	if ttr&1 == 0 { // enable bit
		return false
	}
	base := ttr & 0xFF000000
	mask := (ttr & 0x00FF0000) << 8
	if (addr^base)&^mask != 0 {
		return false
	}
	if write && ttr&(1<<2) != 0 { // read-only transparent region
		return false
	}
	return true
}

// translate resolves a logical address to a physical one for the given
// function code, consulting transparent translation, then the ATC, then a
// page-table walk on miss. ok is false when the access faulted; the caller
// (read/write in bus.go) must not touch the bus in that case since a bus
// error exception has already been raised.
func (c *CPU) translate(addr uint32, fc uint8, write bool) (uint32, bool) {
	if c.mmu == nil || c.mmu.TC&mmuTCEnable == 0 {
		return addr, true
	}
	m := c.mmu

	var ttrs []uint32
	if fc == fcSupervisorProgram || fc == fcUserProgram {
		ttrs = []uint32{m.ITT0, m.ITT1, m.IACR0, m.IACR1}
	} else {
		ttrs = []uint32{m.DTT0, m.DTT1, m.DACR0, m.DACR1}
	}
	for _, ttr := range ttrs {
		if m.ttrMatches(ttr, addr, write) {
			return addr, true
		}
	}

	supervisor := fc == fcSupervisorProgram || fc == fcSupervisorData
	page := addr >> mmuPageShift
	offset := addr & (1<<mmuPageShift - 1)

	for i := range m.atc {
		e := &m.atc[i]
		if e.valid && e.logicalPage == page && e.supervisor == supervisor {
			if write && e.writeProtect {
				c.mmuFault(addr, fc, write)
				return 0, false
			}
			if e.supervisorOnly && !supervisor {
				c.mmuFault(addr, fc, write)
				return 0, false
			}
			e.modified = e.modified || write
			return e.physicalPage<<mmuPageShift | offset, true
		}
	}

	root := m.URP
	if supervisor {
		root = m.SRP
	}

	descAddr := (root &^ 0xF) + (page&0x3FF)*4
	desc := c.bus.Read32(descAddr)
	dtype := desc & 0x3
	if dtype == mmuDescPointer {
		next := desc &^ 0xF
		descAddr = next + (page>>10)*4
		desc = c.bus.Read32(descAddr)
		dtype = desc & 0x3
	}

	if dtype == mmuDescInvalid {
		c.mmuFault(addr, fc, write)
		return 0, false
	}

	wp := desc&mmuDescWP != 0
	sOnly := desc&mmuDescS != 0
	if write && wp {
		c.mmuFault(addr, fc, write)
		return 0, false
	}
	if sOnly && !supervisor {
		c.mmuFault(addr, fc, write)
		return 0, false
	}

	physPage := (desc &^ 0xFFF) >> mmuPageShift
	m.installATC(page, supervisor, physPage, wp, sOnly, write)
	return physPage<<mmuPageShift | offset, true
}

func (m *MMU) installATC(logicalPage uint32, supervisor bool, physPage uint32, wp, sOnly, modified bool) {
	slot := int(logicalPage) % len(m.atc)
	m.atc[slot] = atcEntry{
		valid:          true,
		logicalPage:    logicalPage,
		supervisor:     supervisor,
		physicalPage:   physPage,
		writeProtect:   wp,
		supervisorOnly: sOnly,
		modified:       modified,
	}
}

// mmuFault raises a bus-error exception carrying MMU fault detail; the
// frame format is the same bus/address-error frame described in
// exception.go, selected per variant.
func (c *CPU) mmuFault(addr uint32, fc uint8, write bool) {
	c.faultAddr = addr
	c.faultFC = fc
	c.faultWrite = write
	c.faultSize = Long
	c.faultValid = true
	c.faultIR = c.ir
	c.raiseException(vecBusError)
}

// ptest performs a diagnostic page-table walk through translate, depositing a
// summary into MMUSR. A successful walk installs an ATC entry, as any
// translated access does.
func (c *CPU) ptest(addr uint32, write bool) {
	m := c.mmu
	if m == nil {
		return
	}
	pa, ok := c.translate(addr, c.dataFC(), write)
	m.MMUSR = 0
	if !ok {
		m.MMUSR |= 1 << 3 // invalid
		return
	}
	_ = pa
	m.MMUSR |= 1 << 2 // resident/valid summary bit
}
