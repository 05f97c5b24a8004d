package interpreter

import (
	"errors"
	"fmt"
)

// Errors returned by the interpreter. All of them are fatal to the current
// execution, the caller decides whether to halt, reset or reload.
var (
	ErrOutOfBounds       = errors.New("memory access out of bounds")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrUnsupportedOpcode = errors.New("unsupported opcode")
	ErrProgramTooLarge   = errors.New("program too large")
	ErrInvalidKey        = errors.New("invalid key")
)

// ExecutionError describes a fatal condition raised while executing the
// instruction at PC. It unwraps to one of the sentinel errors.
type ExecutionError struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing opcode %04X at $%03X: %s", e.Opcode, e.PC, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
