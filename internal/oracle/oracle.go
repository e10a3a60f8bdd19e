// Package oracle cross-checks legal move sets against dragontoothmg, an
// independent bitboard move generator. It works on FEN strings and plain
// square names so that any package can use it without import cycles.
package oracle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Moves maps a source square ("e2") to its sorted legal target squares.
// Promotion variants collapse into a single target.
type Moves map[string][]string

// Discrepancy describes one source square whose targets disagree.
type Discrepancy struct {
	From    string
	Missing []string // legal per the oracle, absent from the checked set
	Extra   []string // present in the checked set, illegal per the oracle
}

// String returns a one-line description.
func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: missing %v, extra %v", d.From, d.Missing, d.Extra)
}

// LegalMoves returns every legal move of the side to move in fen.
func LegalMoves(fen string) (moves Moves, err error) {
	if len(strings.Fields(fen)) < 4 {
		return nil, fmt.Errorf("oracle needs at least 4 FEN fields: %q: %w", fen, errors.ErrInvalidFEN)
	}
	defer func() {
		// dragontoothmg panics on input it cannot parse.
		if r := recover(); r != nil {
			moves = nil
			err = fmt.Errorf("oracle rejected %q: %v: %w", fen, r, errors.ErrInvalidFEN)
		}
	}()

	b := dragontoothmg.ParseFen(fen)
	sets := make(map[string]map[string]bool)
	for _, mv := range b.GenerateLegalMoves() {
		from, to := squareName(mv.From()), squareName(mv.To())
		if sets[from] == nil {
			sets[from] = make(map[string]bool)
		}
		sets[from][to] = true
	}

	moves = make(Moves, len(sets))
	for from, targets := range sets {
		moves[from] = sortedKeys(targets)
	}
	return moves, nil
}

// InCheck reports whether the side to move in fen is in check.
func InCheck(fen string) (inCheck bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("oracle rejected %q: %v: %w", fen, r, errors.ErrInvalidFEN)
		}
	}()
	b := dragontoothmg.ParseFen(fen)
	return b.OurKingInCheck(), nil
}

// Compare returns the sources whose targets in got differ from want,
// sorted by source square. Both sets are expected to be sorted.
func Compare(want, got Moves) []Discrepancy {
	sources := make(map[string]bool)
	for from := range want {
		sources[from] = true
	}
	for from := range got {
		sources[from] = true
	}

	var out []Discrepancy
	for _, from := range sortedKeys(sources) {
		missing := difference(want[from], got[from])
		extra := difference(got[from], want[from])
		if len(missing) > 0 || len(extra) > 0 {
			out = append(out, Discrepancy{From: from, Missing: missing, Extra: extra})
		}
	}
	return out
}

// Verify compares got against the oracle's legal moves for fen.
func Verify(fen string, got Moves) ([]Discrepancy, error) {
	want, err := LegalMoves(fen)
	if err != nil {
		return nil, err
	}
	return Compare(want, got), nil
}

// squareName converts a dragontoothmg square index (a1 = 0, h8 = 63).
func squareName(sq uint8) string {
	return fmt.Sprintf("%c%d", 'a'+sq%8, sq/8+1)
}

// difference returns the elements of a not present in b.
func difference(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	for _, s := range a {
		if !inB[s] {
			out = append(out, s)
		}
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
