package interpreter

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Machine dimensions.
const (
	MemorySize    = 0x1000
	RegisterCount = 16
	StackSize     = 16
	KeyCount      = 16

	// ProgramStart is the address programs are loaded at and executed from.
	ProgramStart = chip8.ProgramStart

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart
)

// flagRegister is the index of VF, the carry, borrow and collision output.
const flagRegister = 0xF

// Quirks select historical deviations from the standard instruction
// semantics. The zero value runs the standard semantics.
type Quirks struct {
	// ShiftUsesVY shifts Vy and stores the result in Vx for 8xy6 and 8xyE,
	// as the COSMAC VIP interpreter did.
	ShiftUsesVY bool

	// MemoryIncrementsI leaves I pointing after the last register
	// transferred by Fx55 and Fx65.
	MemoryIncrementsI bool

	// LogicResetsVF clears VF after 8xy1, 8xy2 and 8xy3.
	LogicResetsVF bool
}

// Options controls the creation of an interpreter.
type Options struct {
	Quirks Quirks

	// Seed initializes the random number source used by Cxkk. A zero seed
	// picks a time based seed.
	Seed uint64

	// Trace logs every executed instruction at debug level.
	Trace bool
}

// Interpreter is a CHIP-8 virtual machine. It exclusively owns all machine
// state, Step and Tick must not be called concurrently.
type Interpreter struct {
	logger  *log.Logger
	options Options
	rnd     *rand.Rand

	memory [MemorySize]byte
	v      [RegisterCount]uint8 // general purpose registers V0-VF
	i      uint16               // index register, 12 significant bits
	pc     uint16               // program counter

	stack        [StackSize]uint16
	stackPointer int // next free stack slot

	delayTimer uint8
	soundTimer uint8

	keys       [KeyCount]bool
	display    Framebuffer
	needRedraw bool

	state      State
	keyPressed int // key pressed while awaiting a key, -1 if none

	program []byte // last loaded program, restored by Reset
	halted  error  // fatal error that stopped execution
}

// New returns a new interpreter in its power-on state with the font loaded
// and PC pointing to the program start.
func New(logger *log.Logger, options Options) *Interpreter {
	seed := options.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	interp := &Interpreter{
		logger:  logger,
		options: options,
		rnd:     rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
	interp.Reset()
	return interp
}

// Reset restores the power-on state. A previously loaded program is copied
// into memory again.
func (i *Interpreter) Reset() {
	i.memory = [MemorySize]byte{}
	i.v = [RegisterCount]uint8{}
	i.i = 0
	i.pc = ProgramStart
	i.stack = [StackSize]uint16{}
	i.stackPointer = 0
	i.delayTimer = 0
	i.soundTimer = 0
	i.keys = [KeyCount]bool{}
	i.display.clear()
	i.needRedraw = false
	i.state = StateRunning
	i.keyPressed = -1
	i.halted = nil

	i.loadFont()
	copy(i.memory[ProgramStart:], i.program)
}

// LoadProgram resets the machine and copies the program bytes verbatim into
// memory at the program start address.
func (i *Interpreter) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceed the maximum of %d bytes",
			ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	i.program = make([]byte, len(program))
	copy(i.program, program)
	i.Reset()

	i.logger.Debug("Program loaded",
		log.Int("size", len(program)),
		log.Hex("address", uint16(ProgramStart)))
	return nil
}

// Framebuffer returns a copy of the current display content.
func (i *Interpreter) Framebuffer() Framebuffer {
	return i.display
}

// NeedsRedraw returns whether the framebuffer changed since the last
// ClearRedraw call.
func (i *Interpreter) NeedsRedraw() bool {
	return i.needRedraw
}

// ClearRedraw marks the framebuffer as consumed by the display.
func (i *Interpreter) ClearRedraw() {
	i.needRedraw = false
}

// State returns the execution state of the interpreter.
func (i *Interpreter) State() State {
	return i.state
}

// Halted returns the fatal error that stopped execution, or nil.
func (i *Interpreter) Halted() error {
	return i.halted
}
