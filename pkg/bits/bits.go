// Package bits provides helpers for manipulating individual bits and
// for composing bytes into words.
package bits

import "golang.org/x/exp/constraints"

// Val returns the value of the bit at the given index.
func Val[T constraints.Unsigned](b T, i uint8) T {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// Assign sets the bit at the given index if v is true,
// and resets it otherwise.
func Assign[T constraints.Unsigned](b T, i uint8, v bool) T {
	if v {
		return Set(b, i)
	}
	return Reset(b, i)
}

// Word composes a 16-bit value from its high and low bytes.
func Word(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split decomposes a 16-bit value into its high and low bytes.
func Split(w uint16) (high, low uint8) {
	return uint8(w >> 8), uint8(w)
}
