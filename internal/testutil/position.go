package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/board"
	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// MustSquare parses an algebraic square such as "e4" and fails the test
// if it is invalid.
func MustSquare(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("bad square %q: %v", s, err)
	}
	return sq
}

// MustMove parses a coordinate move such as "e2e4" and fails the test if it
// is invalid.
func MustMove(t *testing.T, text string) chess.MoveText {
	t.Helper()
	mv, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("bad move %q: %v", text, err)
	}
	return mv
}

// SquareNames returns the marked squares of an 8x8 matrix as sorted
// algebraic names, which makes reachability sets easy to compare.
func SquareNames(m board.Matrix) []string {
	names := []string{}
	for _, pos := range m.Positions() {
		names = append(names, chess.SquareOf(pos).String())
	}
	sort.Strings(names)
	return names
}

// Sorted returns a sorted copy of names.
func Sorted(names ...string) []string {
	out := append([]string{}, names...)
	sort.Strings(out)
	return out
}
