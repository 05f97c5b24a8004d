package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load program file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, program)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8")
		assert.ErrorContains(t, err, "opening file")
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyProgram))
	})
}

func TestRead(t *testing.T) {
	t.Run("odd sized program is returned verbatim", func(t *testing.T) {
		data := []byte{0x60, 0x05, 0xF0, 0x29, 0xD0, 0x05, 0x00}
		program, err := New().Read(bytes.NewReader(data))
		assert.NoError(t, err)
		assert.Equal(t, data, program)
	})

	t.Run("maximum size", func(t *testing.T) {
		data := make([]byte, interpreter.MaxProgramSize)
		program, err := New().Read(bytes.NewReader(data))
		assert.NoError(t, err)
		assert.Len(t, program, interpreter.MaxProgramSize)
	})

	t.Run("program too large", func(t *testing.T) {
		data := make([]byte, interpreter.MaxProgramSize+1)
		_, err := New().Read(bytes.NewReader(data))
		assert.True(t, errors.Is(err, interpreter.ErrProgramTooLarge))
	})

	t.Run("read error", func(t *testing.T) {
		_, err := New().Read(iotest.ErrReader(errors.New("disk failure")))
		assert.ErrorContains(t, err, "disk failure")
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
