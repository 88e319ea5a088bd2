package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag types.Flag) {
	c.SetFlag(flag, false)
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag types.Flag) {
	c.SetFlag(flag, true)
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag types.Flag) bool {
	return c.Flag(flag)
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	c.SetFlag(types.FlagZero, value == 0)
}
