package cpu

import (
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// loadRegister16 loads the 16-bit immediate value into the given
// RegisterPair. The immediate is stored low byte first.
//
//	LD nn, d16
//	nn = BC, DE, HL, SP
//	d16 = 16-bit immediate value
func (c *CPU) loadRegister16(pair types.RegisterPair) {
	low := c.readOperand()
	high := c.readOperand()
	c.Write16(pair, bits.Word(high, low))
}
