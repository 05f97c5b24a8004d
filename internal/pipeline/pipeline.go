// Package pipeline orchestrates the stages of running a program.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/dump"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates loading, running and inspecting a program.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader

	input  io.Reader // keyboard input of the terminal frontend
	output io.Writer // display output of the terminal and headless frontends
}

// New creates a new pipeline that uses the process standard streams.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
		input:  os.Stdin,
		output: os.Stdout,
	}
}

// Execute loads the program file and runs it.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	return p.ExecuteWithProgram(ctx, program, opts)
}

// ExecuteWithProgram runs an already loaded program until the frontend is
// closed, the step limit is reached, the context is cancelled or the program
// fails. The machine state is dumped afterwards if requested, also when the
// program failed.
func (p *Pipeline) ExecuteWithProgram(ctx context.Context, program []byte, opts options.Program) error {
	interp := interpreter.New(p.logger, config.CreateInterpreterOptions(opts))
	if err := interp.LoadProgram(program); err != nil {
		return fmt.Errorf("loading program into memory: %w", err)
	}

	app.PrintInfo(p.logger, opts, len(program))

	fe, err := p.createFrontend(opts)
	if err != nil {
		return fmt.Errorf("creating frontend: %w", err)
	}

	drv, err := driver.New(p.logger, interp, fe, config.CreateDriverConfig(opts))
	if err != nil {
		_ = fe.Close()
		return fmt.Errorf("creating driver: %w", err)
	}

	runErr := drv.Run(ctx)
	closeErr := fe.Close()

	p.logger.Debug("Program stopped",
		log.Int("steps", int(drv.Steps())),
		log.Hex("pc", interp.Snapshot().PC))

	if opts.Dump != "" {
		if err := dump.WriteFile(opts.Dump, interp.Snapshot()); err != nil {
			return errors.Join(runErr, err)
		}
		p.logger.Info("Machine state written", log.String("file", opts.Dump))
	}

	if runErr != nil {
		return fmt.Errorf("running program: %w", runErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing frontend: %w", closeErr)
	}
	return nil
}

// createFrontend creates and starts the frontend selected by the options.
func (p *Pipeline) createFrontend(opts options.Program) (frontend.Frontend, error) {
	switch opts.Frontend {
	case frontend.Terminal:
		t := terminal.New(p.logger, terminal.Config{
			Input:  p.input,
			Output: p.output,
		})
		if err := t.Start(); err != nil {
			return nil, fmt.Errorf("starting terminal: %w", err)
		}
		return t, nil

	case frontend.Window:
		w, err := window.New(p.logger, window.Config{
			Scale: opts.Scale,
			Title: fmt.Sprintf("%s - %s", app.Name, filepath.Base(opts.Input)),
		})
		if err != nil {
			return nil, fmt.Errorf("creating window: %w", err)
		}
		if err := w.Start(); err != nil {
			return nil, fmt.Errorf("starting window: %w", err)
		}
		return w, nil

	case frontend.Headless:
		return headless.New(p.output), nil

	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}
