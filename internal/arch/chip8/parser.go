package chip8

// Decode splits a 16-bit opcode into its operation and operand fields.
// The high nibble selects the instruction family, the 0x0, 0x8, 0xE and 0xF
// families are further decoded on their low nibble or low byte.
// It returns false if the opcode is not part of the CHIP-8 instruction set.
func Decode(opcode uint16) (Instruction, bool) {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(extractRegisterX(opcode)),
		Y:      uint8(extractRegisterY(opcode)),
		N:      uint8(opcode & 0x000F),
		KK:     uint8(opcode & 0x00FF),
		NNN:    opcode & 0x0FFF,
	}

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			ins.Op = OpCls
		case 0x00EE:
			ins.Op = OpRet
		}
	case 0x1000:
		ins.Op = OpJp
	case 0x2000:
		ins.Op = OpCall
	case 0x3000:
		ins.Op = OpSeByte
	case 0x4000:
		ins.Op = OpSneByte
	case 0x5000:
		if ins.N == 0 {
			ins.Op = OpSeReg
		}
	case 0x6000:
		ins.Op = OpLdByte
	case 0x7000:
		ins.Op = OpAddByte
	case 0x8000:
		ins.Op = decodeArithmetic(ins.N)
	case 0x9000:
		if ins.N == 0 {
			ins.Op = OpSneReg
		}
	case 0xA000:
		ins.Op = OpLdI
	case 0xB000:
		ins.Op = OpJpV0
	case 0xC000:
		ins.Op = OpRnd
	case 0xD000:
		ins.Op = OpDrw
	case 0xE000:
		switch ins.KK {
		case 0x9E:
			ins.Op = OpSkp
		case 0xA1:
			ins.Op = OpSknp
		}
	case 0xF000:
		ins.Op = decodeMisc(ins.KK)
	}

	return ins, ins.Op != OpInvalid
}

// decodeArithmetic decodes the 8xyN register to register family.
func decodeArithmetic(n uint8) Op {
	switch n {
	case 0x0:
		return OpLdReg
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddReg
	case 0x5:
		return OpSub
	case 0x6:
		return OpShr
	case 0x7:
		return OpSubn
	case 0xE:
		return OpShl
	default:
		return OpInvalid
	}
}

// decodeMisc decodes the Fxkk timer, keypad and memory family.
func decodeMisc(kk uint8) Op {
	switch kk {
	case 0x07:
		return OpLdVxDT
	case 0x0A:
		return OpLdVxK
	case 0x15:
		return OpLdDTVx
	case 0x18:
		return OpLdSTVx
	case 0x1E:
		return OpAddI
	case 0x29:
		return OpLdF
	case 0x33:
		return OpLdB
	case 0x55:
		return OpLdIVx
	case 0x65:
		return OpLdVxI
	default:
		return OpInvalid
	}
}

// DecodeBytes decodes the instruction stored big-endian in the first two
// bytes of data.
func DecodeBytes(data []byte) (Instruction, bool) {
	opcode, ok := decodeOpcode(data)
	if !ok {
		return Instruction{}, false
	}
	return Decode(opcode)
}
