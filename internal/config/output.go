package config

// OutputConfig holds settings for what is printed after a replay.
type OutputConfig struct {
	// ShowBoard prints the final board as text
	ShowBoard bool

	// ShowFEN prints the final position as FEN
	ShowFEN bool

	// ShowHash prints the Zobrist hash of the final position
	ShowHash bool

	// ShowMoves prints the destinations of the piece on this square
	// ("" disables). Both raw and self-check-filtered sets are shown.
	ShowMoves string

	// ShowCaptured prints the captured pieces of each side
	ShowCaptured bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:    true,
		ShowFEN:      true,
		ShowCaptured: true,
	}
}
