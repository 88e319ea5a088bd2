// Package ram provides the flat 64kB memory the CPU executes from.
package ram

import "github.com/thelolagemann/gbcore/internal/types"

// Size is the number of addressable bytes.
const Size = 0x10000

// RAM represents the full 16-bit address space as one block of memory.
// Every address is both readable and writable.
type RAM struct {
	data [Size]uint8
}

// NewRAM returns a new zero-filled RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address] = value
}

// Reset zero-fills the RAM.
func (r *RAM) Reset() {
	r.data = [Size]uint8{}
}

func (r *RAM) Load(s *types.State) {
	s.ReadData(r.data[:])
}

func (r *RAM) Save(s *types.State) {
	s.WriteData(r.data[:])
}

var (
	_ types.Stater     = (*RAM)(nil)
	_ types.Resettable = (*RAM)(nil)
)
