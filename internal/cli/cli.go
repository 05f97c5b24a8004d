// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
)

const defaultScale = 10

// ParseFlags parses the command line flags of the process.
func ParseFlags() (options.Program, error) {
	return Parse(os.Args[0], os.Args[1:], os.Stderr)
}

// Parse parses the given arguments into program options. Parse errors and
// missing input files are returned as *UsageError.
func Parse(name string, arguments []string, output io.Writer) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags, output: output}
	}

	if err := validateArgs(args, flags, output); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags  *flag.FlagSet
	output io.Writer
	msg    string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "invalid usage"
	}
	return e.msg
}

// ShowUsage prints the usage and flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		_, _ = fmt.Fprintf(e.output, "%s\n\n", e.msg)
	}
	_, _ = fmt.Fprintf(e.output, "usage: retrochip8 [options] <file to run>\n\n")
	e.flags.PrintDefaults()
	_, _ = fmt.Fprintln(e.output)
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string, flags *flag.FlagSet, output io.Writer) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				flags:  flags,
				output: output,
				msg:    fmt.Sprintf("Potential argument %s found after file to run, please pass the file to run as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if !slices.Contains(frontend.Names, opts.Frontend) {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(frontend.Names, ", "))
	}

	if opts.InstructionRate <= 0 {
		return fmt.Errorf("invalid instruction rate %d, must be positive", opts.InstructionRate)
	}
	if opts.TimerRate <= 0 {
		return fmt.Errorf("invalid timer rate %d, must be positive", opts.TimerRate)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid window scale %d, must be positive", opts.Scale)
	}

	if opts.Trace {
		opts.Debug = true
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Dump, "dump", "", "write a graphviz dump of the final machine state to this file")
	flags.StringVar(&opts.Frontend, "f", frontend.Terminal, "frontend to use (terminal/window/headless)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Stats, "statsview", false, "serve runtime statistics over HTTP, needs the statsview build tag")

	flags.IntVar(&opts.InstructionRate, "cpu", driver.DefaultInstructionRate, "instructions executed per second")
	flags.IntVar(&opts.TimerRate, "timer", driver.DefaultTimerRate, "timer decrements per second")
	flags.Uint64Var(&opts.MaxSteps, "steps", 0, "stop after this many instructions, 0 runs until closed")
	flags.IntVar(&opts.Scale, "scale", defaultScale, "window pixel scale")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random number seed, 0 picks a time based seed")

	flags.BoolVar(&opts.ShiftUsesVY, "quirk-shift", false, "8xy6/8xyE shift Vy into Vx")
	flags.BoolVar(&opts.MemoryIncrementsI, "quirk-memory", false, "Fx55/Fx65 advance I past the transferred registers")
	flags.BoolVar(&opts.LogicResetsVF, "quirk-vf", false, "8xy1/8xy2/8xy3 reset VF")
}
