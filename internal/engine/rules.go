package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/board"
	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// InsufficientMaterial reports whether neither side can possibly mate:
// K vs K, K+B vs K, K+N vs K, or K+B vs K+B with bishops on the same
// square colour. Like Stalemate it is a query and never ends the match.
func (m *Match) InsufficientMaterial() bool {
	minor := map[chess.Colour][]*chess.Piece{}

	for _, p := range m.piecesOnTheBoard {
		switch p.Kind() {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}
		minor[p.Colour()] = append(minor[p.Colour()], p)
	}

	white, black := minor[chess.White], minor[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white)+len(black) == 1:
		// A lone bishop or knight.
		return true
	case len(white) == 1 && len(black) == 1:
		w, b := white[0], black[0]
		return w.Kind() == chess.Bishop && b.Kind() == chess.Bishop &&
			isLightSquare(w.Position()) == isLightSquare(b.Position())
	}
	return false
}

// isLightSquare returns true if pos is a light square (h1 is light).
func isLightSquare(pos board.Position) bool {
	return (pos.Row+pos.Column)%2 == 0
}
