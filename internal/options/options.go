// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
	Dump  string `flag:"dump" usage:"write a graphviz dump of the final machine state to this file"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend string `flag:"f" usage:"frontend: terminal, window, headless" default:"terminal"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Stats    bool   `flag:"statsview" usage:"serve runtime statistics over HTTP, needs the statsview build tag"`
}

// Machine contains options for the interpreter and its clocks.
type Machine struct {
	InstructionRate int    `flag:"cpu" usage:"instructions executed per second" default:"700"`
	TimerRate       int    `flag:"timer" usage:"timer decrements per second" default:"60"`
	MaxSteps        uint64 `flag:"steps" usage:"stop after this many instructions, 0 runs until closed"`
	Scale           int    `flag:"scale" usage:"window pixel scale" default:"10"`
	Seed            uint64 `flag:"seed" usage:"random number seed, 0 picks a time based seed"`
}

// Quirks contains the compatibility switches for historical interpreters.
type Quirks struct {
	ShiftUsesVY       bool `flag:"quirk-shift" usage:"8xy6/8xyE shift Vy into Vx"`
	MemoryIncrementsI bool `flag:"quirk-memory" usage:"Fx55/Fx65 advance I past the transferred registers"`
	LogicResetsVF     bool `flag:"quirk-vf" usage:"8xy1/8xy2/8xy3 reset VF"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	Machine
	Quirks
}
