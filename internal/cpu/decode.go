package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Operand selects the byte an instruction operates on. The first eight
// values follow the 3-bit register encoding used throughout the SM83
// opcode space (B, C, D, E, H, L, (HL), A).
type Operand uint8

const (
	OperandB Operand = iota
	OperandC
	OperandD
	OperandE
	OperandH
	OperandL
	OperandHL // (HL), the byte in memory addressed by HL
	OperandA
	OperandImmediate // d8, the byte following the opcode
)

var operandNames = [...]string{"B", "C", "D", "E", "H", "L", "(HL)", "A", "d8"}

var operandRegisters = [...]types.Register{
	OperandB: types.B,
	OperandC: types.C,
	OperandD: types.D,
	OperandE: types.E,
	OperandH: types.H,
	OperandL: types.L,
	OperandA: types.A,
}

func (o Operand) String() string {
	return operandNames[o]
}

// operandIndex returns the Operand encoded in the lower 3 bits of an opcode.
func operandIndex(opcode uint8) Operand {
	return Operand(opcode & 0x07)
}

// Instruction is an opcode of the base instruction set, decoded into
// one of LoadImmediate16, Xor, Prefix or NoOp.
type Instruction interface {
	fmt.Stringer
	instruction()
}

// PrefixedInstruction is an opcode of the 0xCB prefixed instruction
// set, decoded into one of Bit or PrefixedNoOp.
type PrefixedInstruction interface {
	fmt.Stringer
	prefixedInstruction()
}

// LoadImmediate16 loads the 16-bit immediate following the opcode
// into Dst.
//
//	LD nn, d16
//	nn = BC, DE, HL, SP
type LoadImmediate16 struct {
	Dst types.RegisterPair
}

// Xor performs a bitwise XOR of Src into the A Register.
//
//	XOR n
//	n = A, B, C, D, E, H, L, (HL), d8
type Xor struct {
	Src Operand
}

// Prefix escapes to the prefixed instruction set, decoded from the
// byte that follows it.
type Prefix struct{}

// NoOp performs no operation. Every opcode without an implementation
// decodes to NoOp, so that it is skipped rather than halting the CPU.
type NoOp struct {
	Opcode uint8
}

// Bit tests bit Index of Src.
//
//	BIT b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
type Bit struct {
	Index uint8
	Src   Operand
}

// PrefixedNoOp is the prefixed counterpart of NoOp.
type PrefixedNoOp struct {
	Opcode uint8
}

func (LoadImmediate16) instruction() {}
func (Xor) instruction()             {}
func (Prefix) instruction()          {}
func (NoOp) instruction()            {}

func (Bit) prefixedInstruction()          {}
func (PrefixedNoOp) prefixedInstruction() {}

func (i LoadImmediate16) String() string { return fmt.Sprintf("LD %s, d16", i.Dst) }
func (i Xor) String() string             { return fmt.Sprintf("XOR %s", i.Src) }
func (Prefix) String() string            { return "PREFIX CB" }
func (i Bit) String() string             { return fmt.Sprintf("BIT %d, %s", i.Index, i.Src) }

func (i NoOp) String() string {
	if i.Opcode == 0x00 {
		return "NOP"
	}
	return fmt.Sprintf("UNKNOWN 0x%02X", i.Opcode)
}

func (i PrefixedNoOp) String() string {
	return fmt.Sprintf("UNKNOWN 0xCB%02X", i.Opcode)
}

// InstructionSet holds the decoded form of every base opcode.
var InstructionSet [256]Instruction

// InstructionSetCB holds the decoded form of every prefixed opcode.
var InstructionSetCB [256]PrefixedInstruction

// DefineInstruction places the instruction in the InstructionSet at
// the given opcode.
func DefineInstruction(opcode uint8, instruction Instruction) {
	InstructionSet[opcode] = instruction
}

// DefineInstructionCB places the instruction in the InstructionSetCB
// at the given opcode.
func DefineInstructionCB(opcode uint8, instruction PrefixedInstruction) {
	InstructionSetCB[opcode] = instruction
}

func init() {
	// 0x01, 0x11, 0x21, 0x31 - LD nn, d16
	for i, pair := range []types.RegisterPair{types.BC, types.DE, types.HL, types.SP} {
		DefineInstruction(0x01+uint8(i)<<4, LoadImmediate16{Dst: pair})
	}

	// 0xA8 - 0xAF - XOR n
	for j := uint8(0); j < 8; j++ {
		DefineInstruction(0xA8+j, Xor{Src: operandIndex(j)})
	}
	DefineInstruction(0xEE, Xor{Src: OperandImmediate})

	DefineInstruction(0xCB, Prefix{})

	// 0x40 - 0x7F - BIT b, r
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		DefineInstructionCB(uint8(opcode), Bit{
			Index: uint8(opcode>>3) & 0x07,
			Src:   operandIndex(uint8(opcode)),
		})
	}

	// anything left undefined is skipped
	for i := range InstructionSet {
		if InstructionSet[i] == nil {
			InstructionSet[i] = NoOp{Opcode: uint8(i)}
		}
	}
	for i := range InstructionSetCB {
		if InstructionSetCB[i] == nil {
			InstructionSetCB[i] = PrefixedNoOp{Opcode: uint8(i)}
		}
	}
}

// Decode returns the Instruction for the given opcode.
func Decode(opcode uint8) Instruction {
	return InstructionSet[opcode]
}

// DecodePrefixed returns the PrefixedInstruction for the opcode
// following a 0xCB prefix.
func DecodePrefixed(opcode uint8) PrefixedInstruction {
	return InstructionSetCB[opcode]
}
