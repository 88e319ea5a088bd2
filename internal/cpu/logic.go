package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// xorRegister performs a bitwise XOR operation on the given Operand and
// the A Register.
//
//	XOR n
//	n = A, B, C, D, E, H, L, (HL), d8
//
// IF affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xorRegister(src Operand) {
	c.Write8(types.A, c.xor(c.Read8(types.A), c.readValue(src)))
}

// xor is a helper function for that performs a bitwise XOR operation on the two
// given values, and sets the flags accordingly.
func (c *CPU) xor(a, b uint8) uint8 {
	computed := a ^ b

	// F has to be cleared before Z is set, or it would be lost
	c.Write8(types.F, 0)
	c.shouldZeroFlag(computed)
	return computed
}
