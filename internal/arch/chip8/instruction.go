package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction is a decoded CHIP-8 instruction. Operand fields are extracted
// from their standard nibble positions regardless of the operation, only the
// ones used by Op are meaningful.
type Instruction struct {
	Opcode uint16 // raw instruction word
	Op     Op

	X   uint8  // bits 8-11
	Y   uint8  // bits 4-7
	N   uint8  // bits 0-3
	KK  uint8  // bits 0-7
	NNN uint16 // bits 0-11
}

// Name returns the instruction name.
func (i Instruction) Name() string {
	return i.Op.Name()
}

// IsCall returns true if the instruction is a call instruction.
func (i Instruction) IsCall() bool {
	return i.Op == OpCall
}

// IsJump returns true if the instruction is a jump instruction.
func (i Instruction) IsJump() bool {
	return i.Op == OpJp || i.Op == OpJpV0
}

// IsReturn returns true if the instruction is a return instruction.
func (i Instruction) IsReturn() bool {
	return i.Op == OpRet
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (i Instruction) IsSkip() bool {
	ins := i.Op.Mnemonic()
	if ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(ins.Name)
}

// SetsProgramCounter returns true if the instruction replaces the program
// counter instead of advancing it.
func (i Instruction) SetsProgramCounter() bool {
	return i.IsJump() || i.IsCall() || i.IsReturn()
}

// String returns the instruction in assembler notation, for example
// "ld V2, $34".
func (i Instruction) String() string {
	name := i.Name()
	if name == "" {
		return ""
	}
	if params := formatParams(i); params != "" {
		return name + " " + params
	}
	return name
}
