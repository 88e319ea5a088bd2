// Package cpu implements the fetch, decode and execute cycle of the
// SM83 CPU found in the Game Boy.
package cpu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be
	// executed. It wraps from 0xFFFF to 0x0000.
	PC uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	types.Registers

	// Debug logs every executed instruction.
	Debug bool

	mem *ram.RAM
	log log.Logger

	tracers []func(Snapshot)
	last    string
	unknown bool
	steps   uint64
}

// NewCPU creates a new CPU with the program counter at 0x0000 and every
// register and memory address set to 0.
func NewCPU(opts ...Opt) *CPU {
	c := &CPU{
		mem: ram.NewRAM(),
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Step fetches, decodes and executes a single instruction, leaving
// the program counter on the byte after it.
func (c *CPU) Step() {
	pc := c.PC
	instruction := Decode(c.readInstruction())
	c.execute(instruction)
	c.steps++

	if c.Debug {
		c.log.Debugf("0x%04X %s\t%s", pc, c.last, c)
	}
	if len(c.tracers) > 0 {
		snapshot := c.Snapshot()
		for _, fn := range c.tracers {
			fn(snapshot)
		}
	}
}

// execute dispatches the instruction to its handler.
func (c *CPU) execute(instruction Instruction) {
	c.last = instruction.String()
	c.unknown = false

	switch i := instruction.(type) {
	case LoadImmediate16:
		c.loadRegister16(i.Dst)
	case Xor:
		c.xorRegister(i.Src)
	case Prefix:
		c.executePrefixed(DecodePrefixed(c.readOperand()))
	case NoOp:
		if i.Opcode != 0x00 {
			c.unknown = true
			c.log.Debugf("skipping unknown opcode 0x%02X at 0x%04X", i.Opcode, c.PC-1)
		}
	}
}

// executePrefixed dispatches the prefixed instruction to its handler.
func (c *CPU) executePrefixed(instruction PrefixedInstruction) {
	c.last = instruction.String()

	switch i := instruction.(type) {
	case Bit:
		c.testBit(c.readValue(i.Src), i.Index)
	case PrefixedNoOp:
		c.unknown = true
		c.log.Debugf("skipping unknown opcode 0xCB%02X at 0x%04X", i.Opcode, c.PC-2)
	}
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.mem.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand from memory. The same as
// readInstruction, but kept apart so the two can diverge.
func (c *CPU) readOperand() uint8 {
	value := c.mem.Read(c.PC)
	c.PC++
	return value
}

// readValue returns the byte selected by the Operand.
func (c *CPU) readValue(o Operand) uint8 {
	switch o {
	case OperandHL:
		return c.mem.Read(c.Read16(types.HL))
	case OperandImmediate:
		return c.readOperand()
	default:
		return c.Read8(operandRegisters[o])
	}
}

// Read returns the byte at the given address.
func (c *CPU) Read(address uint16) uint8 {
	return c.mem.Read(address)
}

// Write writes the value to the given address.
func (c *CPU) Write(address uint16, value uint8) {
	c.mem.Write(address, value)
}

// Steps returns the number of instructions executed since the CPU was
// created or last reset.
func (c *CPU) Steps() uint64 {
	return c.steps
}

// Reset returns the CPU to the state it was created in.
func (c *CPU) Reset() {
	c.PC = 0
	c.Registers.Reset()
	c.mem.Reset()
	c.steps = 0
	c.last, c.unknown = "", false
}

func (c *CPU) String() string {
	return fmt.Sprintf("A: %02x F: %02x B: %02x C: %02x D: %02x E: %02x H: %02x L: %02x SP: %04x PC: %04x",
		c.Read8(types.A), c.Read8(types.F), c.Read8(types.B), c.Read8(types.C),
		c.Read8(types.D), c.Read8(types.E), c.Read8(types.H), c.Read8(types.L),
		c.Read16(types.SP), c.PC)
}

// stateMagic prefixes every saved CPU state.
var stateMagic = []byte("GBC1")

// ErrStateMagic is returned by LoadState when the state was not saved
// by a CPU.
var ErrStateMagic = errors.New("cpu: unrecognised state")

var _ types.Stater = (*CPU)(nil)

// Load restores the CPU from the given State. Callers should check
// s.Err() afterwards; LoadState does both.
func (c *CPU) Load(s *types.State) {
	c.Registers.Load(s)
	c.PC = s.Read16()
	c.steps = uint64(s.Read32()) | uint64(s.Read32())<<32
	c.mem.Load(s)
}

func (c *CPU) Save(s *types.State) {
	c.Registers.Save(s)
	s.Write16(c.PC)
	s.Write32(uint32(c.steps))
	s.Write32(uint32(c.steps >> 32))
	c.mem.Save(s)
}

// SaveState returns the sealed state of the CPU.
func (c *CPU) SaveState() []byte {
	s := types.NewState()
	s.WriteData(stateMagic)
	c.Save(s)
	return s.Seal()
}

// LoadState restores the CPU from a state produced by SaveState. The
// CPU is left untouched if the state is invalid.
func (c *CPU) LoadState(sealed []byte) error {
	s, err := types.OpenState(sealed)
	if err != nil {
		return err
	}
	magic := make([]byte, len(stateMagic))
	s.ReadData(magic)
	if string(magic) != string(stateMagic) {
		return ErrStateMagic
	}

	loaded := NewCPU()
	loaded.Load(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("cpu: %w", err)
	}

	c.PC, c.Registers, c.steps = loaded.PC, loaded.Registers, loaded.steps
	c.last, c.unknown = "", false
	*c.mem = *loaded.mem
	return nil
}
