// Package chip8 provides CHIP-8 instruction decoding.
//
// # Instruction Set
//
// CHIP-8 has a simple instruction set of 34 supported opcodes, the 0nnn
// machine code call is not part of it:
//   - All instructions are 2 bytes (16 bits), stored big-endian
//   - The high nibble selects the instruction family
//   - Operands use fixed nibble positions: x = bits 8-11, y = bits 4-7,
//     n = bits 0-3, kk = bits 0-7, nnn = bits 0-11
//
// # Decoding
//
// Decode turns an instruction word into an Instruction holding one Op
// per opcode pattern plus all operand fields. Executors switch over the Op,
// every case is independent:
//
//	ins, ok := chip8.Decode(0x6234)
//	if !ok {
//		return fmt.Errorf("unsupported opcode %04X", ins.Opcode)
//	}
//	fmt.Println(ins) // ld V2, $34
//
// # Supported Operations
//
// The package supports all standard CHIP-8 operations:
//   - Flow control: JP, CALL, RET
//   - Arithmetic: ADD, SUB, SUBN, OR, AND, XOR, SHR, SHL
//   - Memory: LD (load/store operations)
//   - Graphics: CLS, DRW (draw sprites)
//   - Input: SKP, SKNP (skip on key press/release), LD Vx, K
//   - Timers
//
// Super-CHIP and XO-CHIP extensions are not decoded.
package chip8
