package chip8

import (
	"fmt"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
//
// The display buffer (64×32 pixels) and stack are maintained
// separately from the 4KB main memory address space.
const (
	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space (4KB total).
	MaxAddress = 0xFFF

	// AddressMask masks an address to the 12 significant bits of the address space.
	AddressMask = 0x0FFF
)

// formatParams formats the operands of an instruction.
func formatParams(ins Instruction) string {
	switch ins.Op {
	case OpCls, OpRet:
		return "" // No parameters
	case OpJp, OpCall:
		return formatAddress(ins.NNN)
	case OpJpV0:
		return "V0, " + formatAddress(ins.NNN)
	case OpSeByte, OpSneByte, OpLdByte, OpAddByte, OpRnd:
		return formatRegisterByte(ins)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return formatRegisterPair(ins)
	case OpShr, OpShl, OpSkp, OpSknp:
		return formatRegister(ins.X)
	case OpLdI:
		return "I, " + formatAddress(ins.NNN)
	case OpDrw:
		return formatDrawInstruction(ins)
	default:
		return formatMiscInstruction(ins)
	}
}

// formatMiscInstruction formats the Fxkk timer, keypad and memory instructions.
func formatMiscInstruction(ins Instruction) string {
	x := formatRegister(ins.X)
	switch ins.Op {
	case OpLdVxDT:
		return x + ", DT"
	case OpLdVxK:
		return x + ", K"
	case OpLdDTVx:
		return "DT, " + x
	case OpLdSTVx:
		return "ST, " + x
	case OpAddI:
		return "I, " + x
	case OpLdF:
		return "F, " + x
	case OpLdB:
		return "B, " + x
	case OpLdIVx:
		return "[I], " + x
	case OpLdVxI:
		return x + ", [I]"
	}
	return ""
}

// formatAddress formats a 12 bit address operand.
func formatAddress(nnn uint16) string {
	return fmt.Sprintf("$%03X", nnn)
}

// formatRegister formats a register operand.
func formatRegister(register uint8) string {
	return fmt.Sprintf("V%X", register)
}

// formatRegisterByte formats instructions with a register and immediate byte operand.
func formatRegisterByte(ins Instruction) string {
	return fmt.Sprintf("V%X, $%02X", ins.X, ins.KK)
}

// formatRegisterPair formats register to register instructions.
func formatRegisterPair(ins Instruction) string {
	return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
}

// formatDrawInstruction formats draw instructions (DRW).
func formatDrawInstruction(ins Instruction) string {
	return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
}

// decodeOpcode extracts the 16-bit opcode from instruction bytes.
func decodeOpcode(data []byte) (uint16, bool) {
	if len(data) < opcodeSize {
		return 0, false
	}
	return uint16(data[0])<<8 | uint16(data[1]), true
}

// extractRegisterX extracts the X register nibble from a CHIP-8 opcode.
func extractRegisterX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

// extractRegisterY extracts the Y register nibble from a CHIP-8 opcode.
func extractRegisterY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
