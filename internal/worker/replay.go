package worker

import (
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// ReplayFunc returns a ProcessFunc that replays each item on a fresh match
// built from startFEN ("" for the standard setup).
func ReplayFunc(startFEN string, opts ...engine.Option) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index}

		m, err := newMatch(startFEN, opts...)
		if err != nil {
			result.Error = err
			return result
		}

		result.Plies, result.Error = engine.Replay(m, item.Moves)
		result.State = m.State()
		result.FEN = m.FEN()
		result.Hash = m.Hash()
		return result
	}
}

func newMatch(startFEN string, opts ...engine.Option) (*engine.Match, error) {
	if startFEN == "" {
		return engine.NewMatch(opts...), nil
	}
	return engine.NewMatchFromFEN(startFEN, opts...)
}
