package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Op identifies a decoded CHIP-8 operation. Each opcode pattern of the
// instruction set maps to exactly one Op.
type Op uint8

// Operations of the original CHIP-8 instruction set.
const (
	OpInvalid Op = iota
	OpCls        // 00E0
	OpRet        // 00EE
	OpJp         // 1nnn
	OpCall       // 2nnn
	OpSeByte     // 3xkk
	OpSneByte    // 4xkk
	OpSeReg      // 5xy0
	OpLdByte     // 6xkk
	OpAddByte    // 7xkk
	OpLdReg      // 8xy0
	OpOr         // 8xy1
	OpAnd        // 8xy2
	OpXor        // 8xy3
	OpAddReg     // 8xy4
	OpSub        // 8xy5
	OpShr        // 8xy6
	OpSubn       // 8xy7
	OpShl        // 8xyE
	OpSneReg     // 9xy0
	OpLdI        // Annn
	OpJpV0       // Bnnn
	OpRnd        // Cxkk
	OpDrw        // Dxyn
	OpSkp        // Ex9E
	OpSknp       // ExA1
	OpLdVxDT     // Fx07
	OpLdVxK      // Fx0A
	OpLdDTVx     // Fx15
	OpLdSTVx     // Fx18
	OpAddI       // Fx1E
	OpLdF        // Fx29
	OpLdB        // Fx33
	OpLdIVx      // Fx55
	OpLdVxI      // Fx65
)

// mnemonics maps every operation to the shared instruction definition that
// carries its assembler name.
var mnemonics = map[Op]*chip8.Instruction{
	OpCls:     chip8.Cls,
	OpRet:     chip8.Ret,
	OpJp:      chip8.Jp,
	OpCall:    chip8.Call,
	OpSeByte:  chip8.Se,
	OpSneByte: chip8.Sne,
	OpSeReg:   chip8.Se,
	OpLdByte:  chip8.Ld,
	OpAddByte: chip8.Add,
	OpLdReg:   chip8.Ld,
	OpOr:      chip8.Or,
	OpAnd:     chip8.And,
	OpXor:     chip8.Xor,
	OpAddReg:  chip8.Add,
	OpSub:     chip8.Sub,
	OpShr:     chip8.Shr,
	OpSubn:    chip8.Subn,
	OpShl:     chip8.Shl,
	OpSneReg:  chip8.Sne,
	OpLdI:     chip8.Ld,
	OpJpV0:    chip8.Jp,
	OpRnd:     chip8.Rnd,
	OpDrw:     chip8.Drw,
	OpSkp:     chip8.Skp,
	OpSknp:    chip8.Sknp,
	OpLdVxDT:  chip8.Ld,
	OpLdVxK:   chip8.Ld,
	OpLdDTVx:  chip8.Ld,
	OpLdSTVx:  chip8.Ld,
	OpAddI:    chip8.Add,
	OpLdF:     chip8.Ld,
	OpLdB:     chip8.Ld,
	OpLdIVx:   chip8.Ld,
	OpLdVxI:   chip8.Ld,
}

// Mnemonic returns the instruction definition of the operation, or nil for
// OpInvalid.
func (o Op) Mnemonic() *chip8.Instruction {
	return mnemonics[o]
}

// Name returns the assembler name of the operation.
func (o Op) Name() string {
	ins := o.Mnemonic()
	if ins == nil {
		return ""
	}
	return ins.Name
}
