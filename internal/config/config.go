// Package config provides configuration for the rules engine and its CLI.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Verbosity levels for the log sink.
const (
	Silent     = 0 // nothing
	Summary    = 1 // one line per game or script
	Commentary = 2 // every move, undo, redo and status change
)

// Config holds all program configuration.
type Config struct {
	// Verbosity gates Logf: 0=nothing, 1=summaries, 2=running commentary.
	Verbosity int

	// StartFEN is the starting position; empty means the standard layout.
	StartFEN string

	// Workers is the number of scripts replayed concurrently (CLI batch mode).
	Workers int

	// Strict stops a script at its first rejected move.
	Strict bool

	History   HistoryConfig
	Output    OutputConfig
	Duplicate DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Workers:    1,
		History:    NewHistoryConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports configuration values the engine cannot work with.
func (c *Config) Validate() error {
	if c.History.Capacity < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "history capacity %d", c.History.Capacity)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d", c.Workers)
	}
	if c.Verbosity < Silent {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	if c.Output.SquareSize < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "square size %d", c.Output.SquareSize)
	}
	return nil
}

// Enabled reports whether Logf at level would write anything. Callers
// use it to skip building expensive log lines.
func (c *Config) Enabled(level int) bool {
	return c != nil && c.LogFile != nil && c.Verbosity >= level
}

// Logf writes a line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if !c.Enabled(level) {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
