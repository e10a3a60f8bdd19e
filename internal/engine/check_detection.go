package engine

import (
	"sort"

	"github.com/lgbarn/chessmatch-go/internal/board"
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// king returns the king of the given colour.
func (m *Match) king(colour chess.Colour) (*chess.Piece, error) {
	for _, p := range m.piecesOnTheBoard {
		if p.Colour() == colour && p.Kind() == chess.King {
			return p, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrMissingKing, "no %v king on the board", colour)
}

// testCheck returns true if any opposing piece can reach the king of colour.
func (m *Match) testCheck(colour chess.Colour) (bool, error) {
	k, err := m.king(colour)
	if err != nil {
		return false, err
	}
	kingPos := k.Position()
	for _, p := range m.piecesOnTheBoard {
		if p.Colour() == colour {
			continue
		}
		if p.PossibleMoves(m.board, m.enPassantVulnerable).At(kingPos) {
			return true, nil
		}
	}
	return false, nil
}

// testCheckMate returns true if colour is in check and no move of any of its
// pieces removes the check. Each candidate is executed and undone in place.
func (m *Match) testCheckMate(colour chess.Colour) (bool, error) {
	inCheck, err := m.testCheck(colour)
	if err != nil || !inCheck {
		return false, err
	}
	escape, err := m.hasSafeMove(colour)
	if err != nil {
		return false, err
	}
	return !escape, nil
}

// hasSafeMove returns true if some piece of colour has a move that does not
// leave its king attacked.
func (m *Match) hasSafeMove(colour chess.Colour) (bool, error) {
	// The roster changes while candidates are tried; walk a copy.
	for _, p := range m.PiecesOnBoard(colour) {
		source := p.Position()
		for _, target := range p.PossibleMoves(m.board, m.enPassantVulnerable).Positions() {
			safe, err := m.leavesKingSafe(source, target, colour)
			if err != nil {
				return false, err
			}
			if safe {
				return true, nil
			}
		}
	}
	return false, nil
}

// leavesKingSafe executes source->target, tests whether the king of colour
// is attacked, and undoes the move unconditionally.
func (m *Match) leavesKingSafe(source, target board.Position, colour chess.Colour) (bool, error) {
	rec, err := m.makeMove(source, target)
	if err != nil {
		return false, err
	}
	inCheck, checkErr := m.testCheck(colour)
	if err := m.undoMove(rec); err != nil {
		return false, err
	}
	if checkErr != nil {
		return false, checkErr
	}
	return !inCheck, nil
}

// Stalemate reports whether the side to move is not in check and has no
// move that keeps its king safe. It is a query only and never ends the match.
func (m *Match) Stalemate() (bool, error) {
	if m.checkMate || m.promoted != nil {
		return false, nil
	}
	inCheck, err := m.testCheck(m.currentPlayer)
	if err != nil || inCheck {
		return false, err
	}
	escape, err := m.hasSafeMove(m.currentPlayer)
	if err != nil {
		return false, err
	}
	return !escape, nil
}

// AllLegalMoves returns every self-check-free move of the side to move,
// keyed by source square with sorted target squares. Pieces without a legal
// move are omitted. The result is empty once the match has ended.
func (m *Match) AllLegalMoves() (map[string][]string, error) {
	out := make(map[string][]string)
	if m.checkMate || m.promoted != nil {
		return out, nil
	}
	for _, p := range m.PiecesOnBoard(m.currentPlayer) {
		mat, err := m.LegalMoves(p.Square())
		if err != nil {
			return nil, err
		}
		var targets []string
		for _, pos := range mat.Positions() {
			targets = append(targets, chess.SquareOf(pos).String())
		}
		if len(targets) > 0 {
			sort.Strings(targets)
			out[p.Square().String()] = targets
		}
	}
	return out, nil
}
