package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestInstruction_IsCall(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		expected bool
	}{
		{"call instruction", OpCall, true},
		{"jump instruction", OpJp, false},
		{"load instruction", OpLdByte, false},
		{"invalid instruction", OpInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instr := Instruction{Op: tt.op}
			assert.Equal(t, tt.expected, instr.IsCall())
		})
	}
}

func TestInstruction_IsJump(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		expected bool
	}{
		{"jump instruction", OpJp, true},
		{"indexed jump instruction", OpJpV0, true},
		{"call instruction", OpCall, false},
		{"load instruction", OpLdI, false},
		{"return instruction", OpRet, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instr := Instruction{Op: tt.op}
			assert.Equal(t, tt.expected, instr.IsJump())
		})
	}
}

func TestInstruction_IsReturn(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		expected bool
	}{
		{"return instruction", OpRet, true},
		{"call instruction", OpCall, false},
		{"jump instruction", OpJp, false},
		{"clear instruction", OpCls, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instr := Instruction{Op: tt.op}
			assert.Equal(t, tt.expected, instr.IsReturn())
		})
	}
}

func TestInstruction_IsSkip(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		expected bool
	}{
		{"SE byte instruction", OpSeByte, true},
		{"SE register instruction", OpSeReg, true},
		{"SNE byte instruction", OpSneByte, true},
		{"SNE register instruction", OpSneReg, true},
		{"SKP instruction", OpSkp, true},
		{"SKNP instruction", OpSknp, true},
		{"jump instruction", OpJp, false},
		{"call instruction", OpCall, false},
		{"load instruction", OpLdByte, false},
		{"invalid instruction", OpInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instr := Instruction{Op: tt.op}
			assert.Equal(t, tt.expected, instr.IsSkip())
		})
	}
}

func TestInstruction_SetsProgramCounter(t *testing.T) {
	assert.True(t, Instruction{Op: OpJp}.SetsProgramCounter())
	assert.True(t, Instruction{Op: OpJpV0}.SetsProgramCounter())
	assert.True(t, Instruction{Op: OpCall}.SetsProgramCounter())
	assert.True(t, Instruction{Op: OpRet}.SetsProgramCounter())
	assert.False(t, Instruction{Op: OpSeByte}.SetsProgramCounter())
	assert.False(t, Instruction{Op: OpLdVxK}.SetsProgramCounter())
}
