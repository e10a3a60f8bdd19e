// Package config provides configuration for the chessmatch tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Verbosity levels understood by the engine and the command line front end.
const (
	Silent     = 0 // nothing but results
	Summary    = 1 // check, checkmate and batch statistics
	Commentary = 2 // every committed and rejected move
	MaxVerbose = Commentary
)

// Config holds all program configuration.
type Config struct {
	// Verbosity is one of Silent, Summary or Commentary.
	Verbosity int

	// Verify cross-checks every position against the legality oracle.
	Verify bool

	// Grouped settings
	Output *OutputConfig
	Replay *ReplayConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Output:     NewOutputConfig(),
		Replay:     NewReplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate rejects settings that cannot be honoured.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > MaxVerbose {
		return fmt.Errorf("verbosity %d outside %d..%d: %w", c.Verbosity, Silent, MaxVerbose, errors.ErrInvalidConfig)
	}
	if c.Replay.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Replay.Workers, errors.ErrInvalidConfig)
	}
	if c.Replay.BufferSize < 1 {
		return fmt.Errorf("buffer size must be at least 1, got %d: %w", c.Replay.BufferSize, errors.ErrInvalidConfig)
	}
	if c.Replay.StopAfter < 0 {
		return fmt.Errorf("stop-after must not be negative, got %d: %w", c.Replay.StopAfter, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams must be set: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
