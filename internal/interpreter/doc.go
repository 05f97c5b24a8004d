// Package interpreter implements a CHIP-8 virtual machine.
//
// # Machine State
//
// The Interpreter owns all machine state:
//   - 4KB of memory, font sprites at FontAddress, programs at ProgramStart
//   - 16 general purpose 8-bit registers V0-VF, VF doubles as flag output
//   - the 12-bit index register I and the program counter
//   - a 16 entry call stack
//   - the delay and sound timers
//   - a 64×32 monochrome framebuffer and its redraw flag
//   - the 16 key hex keypad
//
// # Driving the Interpreter
//
// The interpreter has no clock of its own. A driver calls Step at the
// instruction rate and Tick at TimerRate, the two rates are independent:
//
//	interp := interpreter.New(logger, interpreter.Options{})
//	if err := interp.LoadProgram(rom); err != nil {
//		return err
//	}
//	for {
//		if _, err := interp.Step(); err != nil {
//			return err
//		}
//		if interp.NeedsRedraw() {
//			fb := interp.Framebuffer()
//			show(&fb)
//			interp.ClearRedraw()
//		}
//	}
//
// Errors returned by Step are fatal and unwrap to one of the package
// sentinel errors, for example ErrStackOverflow.
package interpreter
