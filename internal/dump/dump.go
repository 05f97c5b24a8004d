// Package dump writes the machine state as a graphviz graph for inspection.
package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/retroenv/retrochip8/internal/interpreter"
)

// Machine is the machine state that is written to the graph.
type Machine struct {
	Registers  [interpreter.RegisterCount]uint8
	Index      uint16
	PC         uint16
	Stack      []uint16
	DelayTimer uint8
	SoundTimer uint8
	State      string
	Halted     string
}

// NewMachine converts an interpreter snapshot to its dumped form.
func NewMachine(snapshot interpreter.Snapshot) *Machine {
	m := &Machine{
		Registers:  snapshot.V,
		Index:      snapshot.I,
		PC:         snapshot.PC,
		Stack:      snapshot.Stack,
		DelayTimer: snapshot.DelayTimer,
		SoundTimer: snapshot.SoundTimer,
		State:      snapshot.State.String(),
	}
	if snapshot.Halted != nil {
		m.Halted = snapshot.Halted.Error()
	}
	return m
}

// Write writes the graph of the snapshot in dot format to writer.
func Write(writer io.Writer, snapshot interpreter.Snapshot) {
	memviz.Map(writer, NewMachine(snapshot))
}

// WriteFile writes the graph of the snapshot to the named file.
func WriteFile(path string, snapshot interpreter.Snapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dump file %s: %w", path, err)
	}

	Write(file, snapshot)

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing dump file %s: %w", path, err)
	}
	return nil
}
