package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// DefaultPromotion is used when a move reaching the last rank names no piece.
const DefaultPromotion = chess.Queen

// Play applies one move in coordinate notation ("e2e4", "e7e8n"). A
// promotion it triggers is resolved immediately with the named piece, or
// DefaultPromotion. It returns the captured piece, if any.
func (m *Match) Play(text string) (*chess.Piece, error) {
	mv, err := chess.ParseMove(text)
	if err != nil {
		return nil, err
	}
	captured, err := m.SubmitMove(mv.From, mv.To)
	if err != nil {
		return nil, err
	}
	if m.promoted != nil {
		kind := DefaultPromotion
		if mv.Promotes {
			kind = mv.Promotion
		}
		if _, err := m.ResolvePromotion(kind); err != nil {
			return captured, err
		}
	}
	return captured, nil
}

// Replay plays moves in order and stops at the first error. It returns the
// number of moves applied.
func Replay(m *Match, moves []string) (int, error) {
	for i, text := range moves {
		if _, err := m.Play(text); err != nil {
			return i, errors.Wrapf(err, "move %d (%s)", i+1, text)
		}
	}
	return len(moves), nil
}
