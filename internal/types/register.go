package types

import "github.com/thelolagemann/gbcore/pkg/bits"

// Register identifies one of the 8-bit cells of the register file.
// A, F, B, C, D, E, H and L are the SM83 general purpose and flag
// registers; S and P hold the high and low bytes of the stack pointer.
type Register uint8

const (
	A Register = iota
	F
	B
	C
	D
	E
	H
	L
	S
	P

	registerCount
)

var registerNames = [registerCount]string{"A", "F", "B", "C", "D", "E", "H", "L", "S", "P"}

func (r Register) String() string {
	return registerNames[r]
}

// RegisterPair identifies two Registers that are read and written as
// a single 16-bit value. The first Register of the pair holds the most
// significant byte.
type RegisterPair uint8

const (
	AF RegisterPair = iota
	BC
	DE
	HL
	SP
)

var pairs = [...]struct {
	name      string
	high, low Register
}{
	AF: {"AF", A, F},
	BC: {"BC", B, C},
	DE: {"DE", D, E},
	HL: {"HL", H, L},
	SP: {"SP", S, P},
}

func (p RegisterPair) String() string {
	return pairs[p].name
}

// Flag identifies one of the four condition bits held in the F register.
type Flag uint8

const (
	FlagZero Flag = iota
	FlagSubtract
	FlagHalfCarry
	FlagCarry
)

var flags = [...]struct {
	name string
	bit  uint8
}{
	FlagZero:      {"Z", 7},
	FlagSubtract:  {"N", 6},
	FlagHalfCarry: {"H", 5},
	FlagCarry:     {"C", 4},
}

func (f Flag) String() string {
	return flags[f].name
}

// flagMask covers the bits of F that can hold a value, the lower
// nibble always reads as 0.
const flagMask = 0xF0

// Registers is the SM83 register file.
type Registers struct {
	cells [registerCount]uint8
}

// Read8 returns the value of the given Register.
func (r *Registers) Read8(reg Register) uint8 {
	return r.cells[reg]
}

// Write8 sets the value of the given Register. Writes to F drop the
// lower nibble.
func (r *Registers) Write8(reg Register, value uint8) {
	if reg == F {
		value &= flagMask
	}
	r.cells[reg] = value
}

// Read16 returns the value of the RegisterPair as an uint16.
func (r *Registers) Read16(pair RegisterPair) uint16 {
	p := pairs[pair]
	return bits.Word(r.cells[p.high], r.cells[p.low])
}

// Write16 sets the value of the RegisterPair to the given value.
func (r *Registers) Write16(pair RegisterPair, value uint16) {
	p := pairs[pair]
	high, low := bits.Split(value)
	r.Write8(p.high, high)
	r.Write8(p.low, low)
}

// Flag returns true if the given Flag is set.
func (r *Registers) Flag(flag Flag) bool {
	return bits.Test(r.cells[F], flags[flag].bit)
}

// SetFlag sets or clears the given Flag, leaving the rest of F as is.
func (r *Registers) SetFlag(flag Flag, value bool) {
	r.cells[F] = bits.Assign(r.cells[F], flags[flag].bit, value)
}

// Reset sets every Register to 0.
func (r *Registers) Reset() {
	r.cells = [registerCount]uint8{}
}

// Load reads every Register from the given State, in declaration order.
func (r *Registers) Load(s *State) {
	for reg := A; reg < registerCount; reg++ {
		r.Write8(reg, s.Read8())
	}
}

// Save writes every Register to the given State, in declaration order.
func (r *Registers) Save(s *State) {
	for _, v := range r.cells {
		s.Write8(v)
	}
}

var _ Stater = (*Registers)(nil)
