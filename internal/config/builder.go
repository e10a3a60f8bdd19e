package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithVerify enables cross-checking against the legality oracle.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Verify = enabled
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Replay.StartFEN = fen
	return b
}

// WithWorkers sets the number of concurrent replays in batch mode.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithDuplicateSuppression enables duplicate final-position suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Replay.SuppressDuplicates = enabled
	return b
}

// WithStopAfter stops a batch after n checkmates.
func (b *ConfigBuilder) WithStopAfter(n int) *ConfigBuilder {
	b.cfg.Replay.StopAfter = n
	return b
}

// WithBoard enables or disables the final board diagram.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithFEN enables or disables the final FEN line.
func (b *ConfigBuilder) WithFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowFEN = enabled
	return b
}

// WithHash enables or disables the final hash line.
func (b *ConfigBuilder) WithHash(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowHash = enabled
	return b
}

// WithMovesFor prints the destinations of the piece on square.
func (b *ConfigBuilder) WithMovesFor(square string) *ConfigBuilder {
	b.cfg.Output.ShowMoves = square
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
