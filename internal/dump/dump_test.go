package dump

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/assert"
)

func TestNewMachine(t *testing.T) {
	snapshot := interpreter.Snapshot{
		I:      0x300,
		PC:     0x204,
		Stack:  []uint16{0x202},
		State:  interpreter.StateAwaitingKey,
		Halted: errors.New("stopped"),
	}
	snapshot.V[0xA] = 0x42

	m := NewMachine(snapshot)
	assert.Equal(t, uint8(0x42), m.Registers[0xA])
	assert.Equal(t, uint16(0x300), m.Index)
	assert.Equal(t, uint16(0x204), m.PC)
	assert.Len(t, m.Stack, 1)
	assert.Equal(t, "awaiting key", m.State)
	assert.Equal(t, "stopped", m.Halted)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, interpreter.Snapshot{PC: 0x200})

	assert.Contains(t, buf.String(), "digraph")
	assert.Contains(t, buf.String(), "PC")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.dot")
	assert.NoError(t, WriteFile(path, interpreter.Snapshot{}))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "state.dot"), interpreter.Snapshot{})
	assert.ErrorContains(t, err, "creating dump file")
}
