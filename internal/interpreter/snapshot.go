package interpreter

// Snapshot is a copy of the CPU visible machine state.
type Snapshot struct {
	V     [RegisterCount]uint8
	I     uint16
	PC    uint16
	SP    int
	Stack []uint16 // return addresses, oldest first

	DelayTimer uint8
	SoundTimer uint8

	State  State
	Halted error
}

// Snapshot returns a copy of the registers, stack, timers and execution state.
func (i *Interpreter) Snapshot() Snapshot {
	stack := make([]uint16, i.stackPointer)
	copy(stack, i.stack[:i.stackPointer])

	return Snapshot{
		V:          i.v,
		I:          i.i,
		PC:         i.pc,
		SP:         i.stackPointer,
		Stack:      stack,
		DelayTimer: i.delayTimer,
		SoundTimer: i.soundTimer,
		State:      i.state,
		Halted:     i.halted,
	}
}

// Memory returns a copy of length bytes of memory starting at address.
// The range is clipped to the memory size.
func (i *Interpreter) Memory(address uint16, length int) []byte {
	start := min(int(address), MemorySize)
	end := min(start+length, MemorySize)
	data := make([]byte, end-start)
	copy(data, i.memory[start:end])
	return data
}
