// Package loader handles program file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/interpreter"
)

// ErrEmptyProgram is returned for program files without content.
var ErrEmptyProgram = errors.New("program is empty")

// Loader handles loading program files from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a CHIP-8 program file. Programs have no header, the file content
// is returned verbatim.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(file)
}

// Read reads a raw program image and validates that it fits into memory.
// The image is returned unpadded, at most one byte more than fits into memory
// is read to detect oversized programs.
func (l *Loader) Read(reader io.Reader) ([]byte, error) {
	program, err := io.ReadAll(io.LimitReader(reader, interpreter.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	switch {
	case len(program) == 0:
		return nil, ErrEmptyProgram
	case len(program) > interpreter.MaxProgramSize:
		return nil, fmt.Errorf("%w: more than %d bytes",
			interpreter.ErrProgramTooLarge, interpreter.MaxProgramSize)
	}
	return program, nil
}
