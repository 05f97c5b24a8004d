// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateInterpreterOptions maps the program options to interpreter options.
func CreateInterpreterOptions(opts options.Program) interpreter.Options {
	return interpreter.Options{
		Quirks: interpreter.Quirks{
			ShiftUsesVY:       opts.ShiftUsesVY,
			MemoryIncrementsI: opts.MemoryIncrementsI,
			LogicResetsVF:     opts.LogicResetsVF,
		},
		Seed:  opts.Seed,
		Trace: opts.Trace,
	}
}

// CreateDriverConfig maps the program options to the driver clock settings.
func CreateDriverConfig(opts options.Program) driver.Config {
	return driver.Config{
		InstructionRate: opts.InstructionRate,
		TimerRate:       opts.TimerRate,
		MaxSteps:        opts.MaxSteps,
	}
}
