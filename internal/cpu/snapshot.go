package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// Snapshot is a copy of the CPU state visible to debuggers, taken
// after an instruction has executed.
type Snapshot struct {
	Step        uint64 `json:"step"`
	Instruction string `json:"instruction"`
	Unknown     bool   `json:"unknown,omitempty"` // Instruction was an unimplemented opcode
	PC          uint16 `json:"pc"`
	SP          uint16 `json:"sp"`
	A           uint8  `json:"a"`
	F           uint8  `json:"f"`
	B           uint8  `json:"b"`
	C           uint8  `json:"c"`
	D           uint8  `json:"d"`
	E           uint8  `json:"e"`
	H           uint8  `json:"h"`
	L           uint8  `json:"l"`
}

// Snapshot returns a copy of the current CPU state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		Step:        c.steps,
		Instruction: c.last,
		Unknown:     c.unknown,
		PC:          c.PC,
		SP:          c.Read16(types.SP),
		A:           c.Read8(types.A),
		F:           c.Read8(types.F),
		B:           c.Read8(types.B),
		C:           c.Read8(types.C),
		D:           c.Read8(types.D),
		E:           c.Read8(types.E),
		H:           c.Read8(types.H),
		L:           c.Read8(types.L),
	}
}
