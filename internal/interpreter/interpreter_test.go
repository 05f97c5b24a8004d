package interpreter

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestInterpreter(t *testing.T, program ...byte) *Interpreter {
	t.Helper()
	interp := New(log.NewTestLogger(t), Options{Seed: 1})
	assert.NoError(t, interp.LoadProgram(program))
	return interp
}

// execOpcode places the opcode at the current PC and executes it.
func execOpcode(t *testing.T, interp *Interpreter, opcode uint16) (State, error) {
	t.Helper()
	interp.memory[interp.pc] = byte(opcode >> 8)
	interp.memory[interp.pc+1] = byte(opcode)
	return interp.Step()
}

func mustStep(t *testing.T, interp *Interpreter, steps int) {
	t.Helper()
	for range steps {
		_, err := interp.Step()
		assert.NoError(t, err)
	}
}

func TestNew(t *testing.T) {
	interp := New(log.NewTestLogger(t), Options{})

	assert.Equal(t, uint16(ProgramStart), interp.pc)
	assert.Equal(t, StateRunning, interp.State())
	assert.False(t, interp.NeedsRedraw())
	assert.Nil(t, interp.Halted())
	assert.Equal(t, FontSet[:], interp.Memory(FontAddress, len(FontSet)))
}

func TestLoadProgram(t *testing.T) {
	t.Run("program copied to program start", func(t *testing.T) {
		interp := newTestInterpreter(t, 0x12, 0x34, 0x56)
		assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x00}, interp.Memory(ProgramStart, 4))
	})

	t.Run("maximum size fits", func(t *testing.T) {
		program := make([]byte, MaxProgramSize)
		program[len(program)-1] = 0xAB

		interp := New(log.NewTestLogger(t), Options{})
		assert.NoError(t, interp.LoadProgram(program))
		assert.Equal(t, []byte{0xAB}, interp.Memory(MemorySize-1, 1))
	})

	t.Run("program too large", func(t *testing.T) {
		interp := New(log.NewTestLogger(t), Options{})
		err := interp.LoadProgram(make([]byte, MaxProgramSize+1))
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrProgramTooLarge))
	})

	t.Run("load resets machine state", func(t *testing.T) {
		interp := newTestInterpreter(t, 0x60, 0x05)
		mustStep(t, interp, 1)
		assert.Equal(t, uint8(5), interp.v[0])

		assert.NoError(t, interp.LoadProgram([]byte{0x00, 0xE0}))
		assert.Equal(t, uint8(0), interp.v[0])
		assert.Equal(t, uint16(ProgramStart), interp.pc)
	})
}

func TestReset(t *testing.T) {
	interp := newTestInterpreter(t, 0x60, 0x05, 0xA3, 0x00, 0xF0, 0x55)
	mustStep(t, interp, 3)
	assert.Equal(t, []byte{0x05}, interp.Memory(0x300, 1))

	interp.Reset()
	snapshot := interp.Snapshot()
	assert.Equal(t, uint16(ProgramStart), snapshot.PC)
	assert.Equal(t, uint16(0), snapshot.I)
	assert.Equal(t, uint8(0), snapshot.V[0])
	assert.Equal(t, []byte{0x00}, interp.Memory(0x300, 1))
	assert.Equal(t, []byte{0x60, 0x05}, interp.Memory(ProgramStart, 2))
}

func TestSetKey(t *testing.T) {
	interp := New(log.NewTestLogger(t), Options{})

	assert.NoError(t, interp.SetKey(0xF, true))
	assert.True(t, interp.KeyPressed(0xF))
	assert.NoError(t, interp.SetKey(0xF, false))
	assert.False(t, interp.KeyPressed(0xF))

	err := interp.SetKey(0x10, true)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidKey))
	assert.False(t, interp.KeyPressed(0x10))
}

func TestTick(t *testing.T) {
	interp := newTestInterpreter(t)
	interp.delayTimer = 2
	interp.soundTimer = 1
	assert.True(t, interp.SoundActive())

	interp.Tick()
	assert.Equal(t, uint8(1), interp.DelayTimer())
	assert.Equal(t, uint8(0), interp.SoundTimer())
	assert.False(t, interp.SoundActive())

	for range 10 {
		interp.Tick()
	}
	assert.Equal(t, uint8(0), interp.DelayTimer())
	assert.Equal(t, uint8(0), interp.SoundTimer())
}

func TestTimers_IndependentOfInstructions(t *testing.T) {
	// V0 = 10, DT = V0, then a loop of V1 = DT reads
	interp := newTestInterpreter(t,
		0x60, 0x0A, // ld V0, $0A
		0xF0, 0x15, // ld DT, V0
		0xF1, 0x07, // ld V1, DT
		0xF1, 0x07, // ld V1, DT
		0xF1, 0x07, // ld V1, DT
	)
	mustStep(t, interp, 3)
	assert.Equal(t, uint8(10), interp.v[1])

	// executing instructions never decrements the timer
	mustStep(t, interp, 1)
	assert.Equal(t, uint8(10), interp.v[1])

	interp.Tick()
	interp.Tick()
	interp.Tick()
	mustStep(t, interp, 1)
	assert.Equal(t, uint8(7), interp.v[1])
}

func TestSnapshot(t *testing.T) {
	interp := newTestInterpreter(t,
		0x22, 0x04, // call $204
		0x00, 0x00,
		0x6A, 0x42, // ld VA, $42
	)
	mustStep(t, interp, 2)

	snapshot := interp.Snapshot()
	assert.Equal(t, uint16(0x206), snapshot.PC)
	assert.Equal(t, 1, snapshot.SP)
	assert.Equal(t, []uint16{0x202}, snapshot.Stack)
	assert.Equal(t, uint8(0x42), snapshot.V[0xA])
	assert.Equal(t, StateRunning, snapshot.State)
	assert.Nil(t, snapshot.Halted)
}

func TestMemory_Clipped(t *testing.T) {
	interp := New(log.NewTestLogger(t), Options{})
	assert.Len(t, interp.Memory(MemorySize-2, 10), 2)
	assert.Len(t, interp.Memory(0xFFFF, 10), 0)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "awaiting key", StateAwaitingKey.String())
	assert.Equal(t, "state(9)", State(9).String())
}
