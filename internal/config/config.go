// Package config provides configuration for the chess-rules replay tool.
package config

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels for diagnostics written to LogFile.
const (
	Silent     = 0 // nothing
	Summary    = 1 // one line per game
	Commentary = 2 // running commentary, one line per ply
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game summary, 2=running commentary

	// Workers is the number of games replayed concurrently.
	// Zero selects one worker per CPU.
	Workers int

	// StopOnError stops dispatching games after the first failure.
	StopOnError bool

	Game      *GameConfig
	Output    *OutputConfig
	Duplicate *DuplicateConfig

	// File handling
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	logMu sync.Mutex
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration and its sub-configs.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Game == nil || c.Output == nil || c.Duplicate == nil {
		return fmt.Errorf("missing game, output or duplicate settings: %w", errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the log writer.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
// It is safe for concurrent use.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	c.logMu.Lock()
	defer c.logMu.Unlock()
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
