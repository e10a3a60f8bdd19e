package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign[T constraints.Signed](x T) T {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// indexOf returns the index of p in pieces, or -1.
func indexOf(pieces []*chess.Piece, p *chess.Piece) int {
	return slices.Index(pieces, p)
}

// lastIndexOf returns the last index of p in pieces, or -1.
func lastIndexOf(pieces []*chess.Piece, p *chess.Piece) int {
	for i := len(pieces) - 1; i >= 0; i-- {
		if pieces[i] == p {
			return i
		}
	}
	return -1
}

// filterColour returns a new slice with the pieces of colour c, order preserved.
func filterColour(pieces []*chess.Piece, c chess.Colour) []*chess.Piece {
	out := make([]*chess.Piece, 0, len(pieces))
	for _, p := range pieces {
		if p.Colour() == c {
			out = append(out, p)
		}
	}
	return out
}
