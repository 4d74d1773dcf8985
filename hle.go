package m68k

// HLEHandler lets an embedder intercept A-line, F-line, TRAP, BKPT, and
// illegal-instruction dispatch to implement high-level emulation of OS
// traps without executing their native handler code. Each method receives
// the CPU and bus and returns true when it has already performed the
// side effects (including any PC adjustment) the hardware exception would
// otherwise perform, suppressing that exception.
type HLEHandler interface {
	HandleALine(cpu *CPU, bus Bus, opcode uint16) bool
	HandleFLine(cpu *CPU, bus Bus, opcode uint16) bool
	HandleTrap(cpu *CPU, bus Bus, n uint8) bool
	HandleBreakpoint(cpu *CPU, bus Bus, n uint8) bool
	HandleIllegal(cpu *CPU, bus Bus, opcode uint16) bool
}
