package cpu

import (
	"fmt"
	"testing"

	"github.com/thelolagemann/gbcore/internal/types"
)

func TestBit(t *testing.T) {
	c := NewCPU()
	t.Run("clear", func(t *testing.T) {
		c.testBit(0x00, 0)
		if !c.isFlagSet(types.FlagZero) {
			t.Errorf("expected zero flag to be set, got unset")
		}
	})
	t.Run("set", func(t *testing.T) {
		c.testBit(0x01, 0)
		if c.isFlagSet(types.FlagZero) {
			t.Errorf("expected zero flag to be unset, got set")
		}
	})
	t.Run("carry", func(t *testing.T) {
		c.setFlag(types.FlagCarry)
		c.testBit(0x00, 3)
		if !c.isFlagSet(types.FlagCarry) {
			t.Errorf("expected carry flag to be untouched, got unset")
		}
		c.clearFlag(types.FlagCarry)
		c.testBit(0x00, 3)
		if c.isFlagSet(types.FlagCarry) {
			t.Errorf("expected carry flag to be untouched, got set")
		}
	})
}

func TestInstruction_Bits(t *testing.T) {
	// 0x40 - 0x7F BIT b,r
	for b := uint8(0); b < 8; b++ {
		for i, regName := range registerNames {
			opcode := 0x40 + b*8 + uint8(i)
			name := fmt.Sprintf("BIT %d, %s", b, regName)
			for _, set := range []bool{true, false} {
				testInstruction(t, name, []uint8{0xCB, opcode}, bitTest(b, Operand(i), set))
			}
		}
	}
}

func bitTest(b uint8, src Operand, set bool) func(*testing.T, *CPU) {
	return func(t *testing.T, c *CPU) {
		var value uint8 = 0xFF &^ (1 << b)
		if set {
			value = 1 << b
		}
		if src == OperandHL {
			c.Write16(types.HL, 0xD000)
			c.Write(0xD000, value)
		} else {
			c.Write8(operandRegisters[src], value)
		}
		c.setFlag(types.FlagSubtract)
		before := c.Registers

		c.Step()

		if c.isFlagSet(types.FlagZero) == set {
			t.Errorf("expected zero flag to be %t, got %t", !set, c.isFlagSet(types.FlagZero))
		}
		if c.isFlagSet(types.FlagSubtract) {
			t.Errorf("expected subtract flag to be unset, got set")
		}
		if !c.isFlagSet(types.FlagHalfCarry) {
			t.Errorf("expected half carry flag to be set, got unset")
		}
		for reg := types.A; reg <= types.P; reg++ {
			if reg != types.F && c.Read8(reg) != before.Read8(reg) {
				t.Errorf("expected %s to be untouched", reg)
			}
		}
		if c.PC != 2 {
			t.Errorf("expected PC to be 2, got %d", c.PC)
		}
	}
}
