package config

import "runtime"

// ReplayConfig holds settings for replaying move lists.
type ReplayConfig struct {
	// StartFEN is the starting position ("" for the standard setup)
	StartFEN string

	// Workers is the number of matches replayed concurrently in batch mode
	Workers int

	// BufferSize is the work queue length in batch mode
	BufferSize int

	// SuppressDuplicates omits games whose final position was already reported
	SuppressDuplicates bool

	// StopAfter stops a batch after this many games end in checkmate (0 = no limit)
	StopAfter int
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 16,
	}
}
