package interpreter

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Step fetches, decodes and executes the instruction at PC.
//
// Step never blocks. While an Fx0A instruction waits for a key, Step leaves
// PC unchanged and returns StateAwaitingKey. A returned error is fatal: the
// interpreter is halted and every further Step returns the same error until
// Reset or LoadProgram is called.
func (i *Interpreter) Step() (State, error) {
	if i.halted != nil {
		return i.state, i.halted
	}

	ins, err := i.fetch()
	if err != nil {
		return i.halt(ins.Opcode, err)
	}

	if i.options.Trace && i.state == StateRunning {
		i.logger.Debug("Executing instruction",
			log.Hex("pc", i.pc),
			log.Hex("opcode", ins.Opcode),
			log.String("instruction", ins.String()))
	}

	conditionMet, err := i.execute(ins)
	if err != nil {
		return i.halt(ins.Opcode, err)
	}

	switch {
	case i.state == StateAwaitingKey:
	case ins.SetsProgramCounter():
	case ins.IsSkip() && conditionMet:
		i.pc += 2 * opcodeSize
	default:
		i.pc += opcodeSize
	}
	return i.state, nil
}

// opcodeSize is the size of an instruction in bytes.
const opcodeSize = 2

// fetch reads and decodes the big-endian instruction word at PC. Both bytes
// of the word must lie within memory.
func (i *Interpreter) fetch() (chip8.Instruction, error) {
	if i.pc >= chip8.MaxAddress {
		return chip8.Instruction{}, fmt.Errorf("%w: fetching instruction at $%04X", ErrOutOfBounds, i.pc)
	}
	ins, ok := chip8.DecodeBytes(i.memory[i.pc:])
	if !ok {
		return ins, ErrUnsupportedOpcode
	}
	return ins, nil
}

// halt stops execution with a fatal error.
func (i *Interpreter) halt(opcode uint16, err error) (State, error) {
	i.halted = &ExecutionError{
		PC:     i.pc,
		Opcode: opcode,
		Err:    err,
	}
	i.logger.Debug("Execution halted", log.Err(i.halted))
	return i.state, i.halted
}

// execute runs a decoded instruction and returns whether the condition of a
// skip instruction holds. Every operand is validated before state is
// modified, a failing instruction leaves the machine untouched.
//
//nolint:funlen,cyclop // one case per instruction
func (i *Interpreter) execute(ins chip8.Instruction) (bool, error) {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case chip8.OpCls:
		i.display.clear()
		i.needRedraw = true

	case chip8.OpRet:
		if i.stackPointer == 0 {
			return false, ErrStackUnderflow
		}
		i.stackPointer--
		i.pc = i.stack[i.stackPointer]

	case chip8.OpJp:
		i.pc = ins.NNN

	case chip8.OpCall:
		if i.stackPointer == StackSize {
			return false, fmt.Errorf("%w: call depth %d", ErrStackOverflow, StackSize)
		}
		i.stack[i.stackPointer] = i.pc + opcodeSize
		i.stackPointer++
		i.pc = ins.NNN

	case chip8.OpSeByte:
		return i.v[x] == ins.KK, nil

	case chip8.OpSneByte:
		return i.v[x] != ins.KK, nil

	case chip8.OpSeReg:
		return i.v[x] == i.v[y], nil

	case chip8.OpSneReg:
		return i.v[x] != i.v[y], nil

	case chip8.OpLdByte:
		i.v[x] = ins.KK

	case chip8.OpAddByte:
		i.v[x] += ins.KK

	case chip8.OpLdReg:
		i.v[x] = i.v[y]

	case chip8.OpOr:
		i.v[x] |= i.v[y]
		i.resetFlagQuirk()

	case chip8.OpAnd:
		i.v[x] &= i.v[y]
		i.resetFlagQuirk()

	case chip8.OpXor:
		i.v[x] ^= i.v[y]
		i.resetFlagQuirk()

	case chip8.OpAddReg:
		sum := uint16(i.v[x]) + uint16(i.v[y])
		i.v[x] = uint8(sum)
		i.setFlag(sum > 0xFF)

	case chip8.OpSub:
		noBorrow := i.v[x] >= i.v[y]
		i.v[x] -= i.v[y]
		i.setFlag(noBorrow)

	case chip8.OpSubn:
		noBorrow := i.v[y] >= i.v[x]
		i.v[x] = i.v[y] - i.v[x]
		i.setFlag(noBorrow)

	case chip8.OpShr:
		value := i.shiftSource(x, y)
		i.v[x] = value >> 1
		i.setFlag(value&0x01 != 0)

	case chip8.OpShl:
		value := i.shiftSource(x, y)
		i.v[x] = value << 1
		i.setFlag(value&0x80 != 0)

	case chip8.OpLdI:
		i.i = ins.NNN

	case chip8.OpJpV0:
		i.pc = ins.NNN + uint16(i.v[0])

	case chip8.OpRnd:
		i.v[x] = uint8(i.rnd.Uint32()) & ins.KK

	case chip8.OpDrw:
		return false, i.draw(x, y, ins.N)

	case chip8.OpSkp:
		if int(i.v[x]) >= KeyCount {
			return false, fmt.Errorf("%w: V%X holds %02X", ErrInvalidKey, x, i.v[x])
		}
		return i.keys[i.v[x]], nil

	case chip8.OpSknp:
		if int(i.v[x]) >= KeyCount {
			return false, fmt.Errorf("%w: V%X holds %02X", ErrInvalidKey, x, i.v[x])
		}
		return !i.keys[i.v[x]], nil

	case chip8.OpLdVxDT:
		i.v[x] = i.delayTimer

	case chip8.OpLdVxK:
		i.waitForKey(x)

	case chip8.OpLdDTVx:
		i.delayTimer = i.v[x]

	case chip8.OpLdSTVx:
		i.soundTimer = i.v[x]

	case chip8.OpAddI:
		i.i = (i.i + uint16(i.v[x])) & chip8.AddressMask

	case chip8.OpLdF:
		if int(i.v[x]) >= len(FontSet)/FontGlyphSize {
			return false, fmt.Errorf("%w: no font glyph for digit %02X", ErrOutOfBounds, i.v[x])
		}
		i.i = FontAddress + uint16(i.v[x])*FontGlyphSize

	case chip8.OpLdB:
		return false, i.storeBCD(x)

	case chip8.OpLdIVx:
		return false, i.storeRegisters(x)

	case chip8.OpLdVxI:
		return false, i.loadRegisters(x)

	default:
		return false, ErrUnsupportedOpcode
	}

	return false, nil
}

// setFlag writes the flag output of an instruction to VF.
func (i *Interpreter) setFlag(set bool) {
	if set {
		i.v[flagRegister] = 1
	} else {
		i.v[flagRegister] = 0
	}
}

// resetFlagQuirk clears VF after logical operations if the quirk is enabled.
func (i *Interpreter) resetFlagQuirk() {
	if i.options.Quirks.LogicResetsVF {
		i.v[flagRegister] = 0
	}
}

// shiftSource returns the register value that a shift instruction operates on.
func (i *Interpreter) shiftSource(x, y uint8) uint8 {
	if i.options.Quirks.ShiftUsesVY {
		return i.v[y]
	}
	return i.v[x]
}

// checkMemory validates that length bytes starting at address are within memory.
func checkMemory(address uint16, length int) error {
	if int(address)+length > MemorySize {
		return fmt.Errorf("%w: accessing %d bytes at $%03X", ErrOutOfBounds, length, address)
	}
	return nil
}

// draw handles Dxyn, XORing the n row sprite at I onto the display at (Vx, Vy).
func (i *Interpreter) draw(x, y, rows uint8) error {
	if err := checkMemory(i.i, int(rows)); err != nil {
		return err
	}

	sprite := i.memory[i.i : int(i.i)+int(rows)]
	collision := i.display.drawSprite(i.v[x], i.v[y], sprite)
	i.setFlag(collision)
	i.needRedraw = true
	return nil
}

// storeBCD handles Fx33, storing the decimal digits of Vx at I, I+1 and I+2.
func (i *Interpreter) storeBCD(x uint8) error {
	if err := checkMemory(i.i, 3); err != nil {
		return err
	}

	value := i.v[x]
	i.memory[i.i] = value / 100
	i.memory[i.i+1] = value / 10 % 10
	i.memory[i.i+2] = value % 10
	return nil
}

// storeRegisters handles Fx55, storing V0..Vx to memory starting at I.
func (i *Interpreter) storeRegisters(x uint8) error {
	count := int(x) + 1
	if err := checkMemory(i.i, count); err != nil {
		return err
	}

	copy(i.memory[i.i:], i.v[:count])
	i.incrementIndexQuirk(count)
	return nil
}

// loadRegisters handles Fx65, loading V0..Vx from memory starting at I.
func (i *Interpreter) loadRegisters(x uint8) error {
	count := int(x) + 1
	if err := checkMemory(i.i, count); err != nil {
		return err
	}

	copy(i.v[:count], i.memory[i.i:])
	i.incrementIndexQuirk(count)
	return nil
}

// incrementIndexQuirk advances I past the transferred registers if the
// quirk is enabled.
func (i *Interpreter) incrementIndexQuirk(count int) {
	if i.options.Quirks.MemoryIncrementsI {
		i.i = (i.i + uint16(count)) & chip8.AddressMask
	}
}
