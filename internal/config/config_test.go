package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != Summary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Summary)
	}
	if cfg.Verify {
		t.Error("Verify should be false by default")
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("OutputFile and LogFile should default to stdout/stderr")
	}
	if !cfg.Output.ShowBoard || !cfg.Output.ShowFEN || !cfg.Output.ShowCaptured {
		t.Error("board, FEN and captured output should be on by default")
	}
	if cfg.Output.ShowHash {
		t.Error("ShowHash should be false by default")
	}
	if cfg.Replay.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Replay.Workers)
	}
	if cfg.Replay.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.Replay.StartFEN)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

// TestConfigBuilder verifies the fluent builder sets every field
func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithVerbosity(Commentary).
		WithVerify(true).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithWorkers(3).
		WithDuplicateSuppression(true).
		WithStopAfter(5).
		WithBoard(false).
		WithFEN(false).
		WithHash(true).
		WithMovesFor("e2").
		WithOutput(&out).
		WithLogFile(&log).
		Build()

	if cfg.Verbosity != Commentary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Commentary)
	}
	if !cfg.Verify {
		t.Error("Verify = false, want true")
	}
	if cfg.Replay.StartFEN == "" {
		t.Error("StartFEN not set")
	}
	if cfg.Replay.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Replay.Workers)
	}
	if !cfg.Replay.SuppressDuplicates {
		t.Error("SuppressDuplicates = false, want true")
	}
	if cfg.Replay.StopAfter != 5 {
		t.Errorf("StopAfter = %d, want 5", cfg.Replay.StopAfter)
	}
	if cfg.Output.ShowBoard || cfg.Output.ShowFEN {
		t.Error("board and FEN output should be disabled")
	}
	if !cfg.Output.ShowHash {
		t.Error("ShowHash = false, want true")
	}
	if cfg.Output.ShowMoves != "e2" {
		t.Errorf("ShowMoves = %q, want e2", cfg.Output.ShowMoves)
	}
	if cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("writers not set")
	}
}

// TestValidate verifies invalid settings are rejected with ErrInvalidConfig
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }},
		{"verbosity too high", func(c *Config) { c.Verbosity = MaxVerbose + 1 }},
		{"zero workers", func(c *Config) { c.Replay.Workers = 0 }},
		{"zero buffer", func(c *Config) { c.Replay.BufferSize = 0 }},
		{"negative stop-after", func(c *Config) { c.Replay.StopAfter = -2 }},
		{"nil log", func(c *Config) { c.LogFile = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestLogf verifies messages are gated by verbosity
func TestLogf(t *testing.T) {
	var log bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&log).WithVerbosity(Summary).Build()

	cfg.Logf(Commentary, "hidden %d\n", 1)
	if log.Len() != 0 {
		t.Errorf("commentary written at summary verbosity: %q", log.String())
	}

	cfg.Logf(Summary, "shown %d\n", 2)
	if got := log.String(); got != "shown 2\n" {
		t.Errorf("log = %q, want %q", got, "shown 2\n")
	}
}
