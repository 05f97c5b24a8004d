// Package driver runs an interpreter in real time, clocking instructions and
// timers independently and connecting the machine to a frontend.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrogolib/log"
)

// Default clock rates in Hz.
const (
	DefaultInstructionRate = 700
	DefaultTimerRate       = interpreter.TimerRate
)

var errInvalidRate = errors.New("clock rate must be positive")

// Machine is the part of the interpreter that the driver clocks.
type Machine interface {
	Step() (interpreter.State, error)
	Tick()
	SetKey(key uint8, pressed bool) error
	NeedsRedraw() bool
	ClearRedraw()
	Framebuffer() interpreter.Framebuffer
}

// Config controls the clocks of the driver.
type Config struct {
	InstructionRate int    // instructions per second
	TimerRate       int    // timer decrements per second
	MaxSteps        uint64 // stop after this many instructions, 0 for no limit
}

// Driver clocks a machine and forwards display updates and key events.
type Driver struct {
	logger   *log.Logger
	machine  Machine
	frontend frontend.Frontend
	config   Config

	steps uint64
	ticks uint64
	state interpreter.State
}

// New returns a new driver.
func New(logger *log.Logger, machine Machine, fe frontend.Frontend, config Config) (*Driver, error) {
	if config.InstructionRate <= 0 || config.TimerRate <= 0 {
		return nil, fmt.Errorf("%w: instructions %d Hz, timers %d Hz",
			errInvalidRate, config.InstructionRate, config.TimerRate)
	}

	return &Driver{
		logger:   logger,
		machine:  machine,
		frontend: fe,
		config:   config,
	}, nil
}

// Run executes the machine until the context is cancelled, the frontend is
// closed, the step limit is reached or the machine fails. A closed frontend
// and a reached step limit are not errors.
func (d *Driver) Run(ctx context.Context) error {
	stepTicker := time.NewTicker(period(d.config.InstructionRate))
	defer stepTicker.Stop()
	timerTicker := time.NewTicker(period(d.config.TimerRate))
	defer timerTicker.Stop()

	keys := d.frontend.Keys()
	done := d.frontend.Done()

	d.logger.Debug("Driver started",
		log.Int("instructionRate", d.config.InstructionRate),
		log.Int("timerRate", d.config.TimerRate))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-done:
			d.logger.Debug("Frontend closed", log.Int("steps", int(d.steps)))
			return nil

		case event := <-keys:
			if err := d.machine.SetKey(event.Key, event.Pressed); err != nil {
				d.logger.Warn("Ignoring key event", log.Err(err))
			}

		case <-timerTicker.C:
			d.machine.Tick()
			d.ticks++

		case <-stepTicker.C:
			finished, err := d.step()
			if err != nil {
				return err
			}
			if finished {
				return nil
			}
		}

		if err := d.present(); err != nil {
			return err
		}
	}
}

// step executes one instruction and returns whether the step limit is reached.
func (d *Driver) step() (bool, error) {
	state, err := d.machine.Step()
	if err != nil {
		return false, fmt.Errorf("running program: %w", err)
	}
	d.steps++

	if state != d.state {
		d.state = state
		if state == interpreter.StateAwaitingKey {
			d.logger.Debug("Waiting for key press")
		}
	}

	if d.config.MaxSteps > 0 && d.steps >= d.config.MaxSteps {
		d.logger.Debug("Step limit reached", log.Int("steps", int(d.steps)))
		return true, d.present()
	}
	return false, nil
}

// present hands the framebuffer to the frontend if it changed.
func (d *Driver) present() error {
	if !d.machine.NeedsRedraw() {
		return nil
	}

	frame := d.machine.Framebuffer()
	if err := d.frontend.Render(&frame); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	d.machine.ClearRedraw()
	return nil
}

// Steps returns the number of executed instructions.
func (d *Driver) Steps() uint64 {
	return d.steps
}

// Ticks returns the number of timer ticks.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

func period(rate int) time.Duration {
	return max(time.Second/time.Duration(rate), time.Microsecond)
}
