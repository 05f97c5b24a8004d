// Package app provides the application helpers for banner and run information.
package app

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Name of the application.
const Name = "retrochip8"

// PrintBanner logs the application name and version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info(Name, log.String("version", VersionString(version, commit)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
	logger.Debug("Build info", log.String("details", buildinfo.Version(version, commit, date)))
}

// VersionString returns the version with the abbreviated commit appended.
func VersionString(version, commit string) string {
	if commit == "" {
		return version
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, commit)
}

// PrintInfo logs the program that is about to run and the machine settings.
func PrintInfo(logger *log.Logger, opts options.Program, programSize int) {
	if opts.Quiet {
		return
	}

	logger.Info("Running CHIP-8 program",
		log.String("file", opts.Input),
		log.Int("size", programSize),
		log.String("frontend", opts.Frontend),
		log.Int("cpu", opts.InstructionRate),
	)

	var quirks []string
	if opts.ShiftUsesVY {
		quirks = append(quirks, "shift")
	}
	if opts.MemoryIncrementsI {
		quirks = append(quirks, "memory")
	}
	if opts.LogicResetsVF {
		quirks = append(quirks, "vf")
	}
	if len(quirks) > 0 {
		logger.Info("Compatibility quirks enabled", log.String("quirks", strings.Join(quirks, ", ")))
	}
}
