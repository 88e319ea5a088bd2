package cpu

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/types"
)

func TestDecode_Total(t *testing.T) {
	for i := 0; i < 256; i++ {
		if Decode(uint8(i)) == nil {
			t.Errorf("expected 0x%02X to decode, got nil", i)
		}
		if DecodePrefixed(uint8(i)) == nil {
			t.Errorf("expected 0xCB%02X to decode, got nil", i)
		}
	}
}

func TestDecode(t *testing.T) {
	expected := map[uint8]Instruction{
		0x00: NoOp{Opcode: 0x00},
		0x01: LoadImmediate16{Dst: types.BC},
		0x11: LoadImmediate16{Dst: types.DE},
		0x21: LoadImmediate16{Dst: types.HL},
		0x31: LoadImmediate16{Dst: types.SP},
		0xA8: Xor{Src: OperandB},
		0xA9: Xor{Src: OperandC},
		0xAA: Xor{Src: OperandD},
		0xAB: Xor{Src: OperandE},
		0xAC: Xor{Src: OperandH},
		0xAD: Xor{Src: OperandL},
		0xAE: Xor{Src: OperandHL},
		0xAF: Xor{Src: OperandA},
		0xEE: Xor{Src: OperandImmediate},
		0xCB: Prefix{},
	}

	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		want, ok := expected[opcode]
		if !ok {
			want = NoOp{Opcode: opcode}
		}
		if got := Decode(opcode); got != want {
			t.Errorf("0x%02X: expected %s, got %s", opcode, want, got)
		}
	}
}

func TestDecodePrefixed_Bit(t *testing.T) {
	operands := []Operand{OperandB, OperandC, OperandD, OperandE, OperandH, OperandL, OperandHL, OperandA}

	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		got := DecodePrefixed(opcode)
		if opcode < 0x40 || opcode > 0x7F {
			if got != (PrefixedNoOp{Opcode: opcode}) {
				t.Errorf("0xCB%02X: expected no-op, got %s", opcode, got)
			}
			continue
		}

		index := (opcode - 0x40) / 8
		want := Bit{Index: index, Src: operands[opcode%8]}
		if got != want {
			t.Errorf("0xCB%02X: expected %s, got %s", opcode, want, got)
		}
	}
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		instruction interface{ String() string }
		name        string
	}{
		{Decode(0x00), "NOP"},
		{Decode(0x31), "LD SP, d16"},
		{Decode(0xAE), "XOR (HL)"},
		{Decode(0xEE), "XOR d8"},
		{Decode(0xCB), "PREFIX CB"},
		{Decode(0xD3), "UNKNOWN 0xD3"},
		{DecodePrefixed(0x7C), "BIT 7, H"},
		{DecodePrefixed(0x46), "BIT 0, (HL)"},
		{DecodePrefixed(0x37), "UNKNOWN 0xCB37"},
	}
	for _, tt := range tests {
		if got := tt.instruction.String(); got != tt.name {
			t.Errorf("expected %s, got %s", tt.name, got)
		}
	}
}
