package m68k

// acceptInterrupt latches the pending interrupt request: it sets the CPU's
// interrupt mask to the accepted level, resolves an autovector unless a
// vectored interrupt number was supplied, and runs the normal exception
// acceptance sequence.
func (c *CPU) acceptInterrupt() {
	level := c.pendingIPL
	vec := c.pendingVec
	c.pendingIPL = 0
	c.pendingVec = nil

	c.reg.SR = (c.reg.SR &^ srIMask) | (uint16(level) << 8)

	if vec != nil {
		c.raiseException(*vec)
		return
	}
	c.raiseException(vecAutovectorBase + level)
}
