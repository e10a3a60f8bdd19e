package engine

import (
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"rnbqkbnr/pppp1ppp/8/8/3Pp3/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 2",
		"4k3/8/8/8/8/8/8/4K3 b - - 0 42",
		"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", // checkmate
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			m := mustFEN(t, fen)
			testutil.AssertEqual(t, m.FEN(), fen)
		})
	}
}

func TestNewMatchFromFEN_Defaults(t *testing.T) {
	m := mustFEN(t, "4k3/8/8/8/8/8/8/4K3")
	testutil.AssertEqual(t, m.CurrentPlayer(), chess.White)
	testutil.AssertEqual(t, m.Turn(), 1)
	testutil.AssertEqual(t, m.FEN(), "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
}

func TestNewMatchFromFEN_State(t *testing.T) {
	t.Run("side to move and turn", func(t *testing.T) {
		m := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 10")
		testutil.AssertEqual(t, m.CurrentPlayer(), chess.Black)
		testutil.AssertEqual(t, m.Turn(), 20)
	})

	t.Run("check", func(t *testing.T) {
		m := mustFEN(t, "4k3/8/8/8/8/8/8/4K2r w - - 0 1")
		testutil.AssertTrue(t, m.Check())
		testutil.AssertEqual(t, m.State(), Check)
	})

	t.Run("checkmate makes the other side the winner", func(t *testing.T) {
		m := mustFEN(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
		testutil.AssertTrue(t, m.CheckMate())
		testutil.AssertEqual(t, m.CurrentPlayer(), chess.White)
		testutil.AssertEqual(t, m.Turn(), 1)
		_, err := m.Play("g8h8")
		testutil.AssertErrorIs(t, err, errors.ErrGameOver)
	})

	t.Run("castling rights set move counts", func(t *testing.T) {
		m := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
		testutil.AssertEqual(t, pieceAt(t, m, "e1").MoveCount(), 0)
		testutil.AssertEqual(t, pieceAt(t, m, "h1").MoveCount(), 0)
		testutil.AssertEqual(t, pieceAt(t, m, "a1").MoveCount(), 1)
		testutil.AssertEqual(t, pieceAt(t, m, "h8").MoveCount(), 1)
		testutil.AssertEqual(t, pieceAt(t, m, "a8").MoveCount(), 0)
	})

	t.Run("pawns off their start row count as moved", func(t *testing.T) {
		m := mustFEN(t, "4k3/8/8/8/4P3/8/3P4/4K3 w - - 0 1")
		testutil.AssertEqual(t, pieceAt(t, m, "d2").MoveCount(), 0)
		testutil.AssertEqual(t, pieceAt(t, m, "e4").MoveCount(), 1)
	})

	t.Run("en passant square selects the pawn", func(t *testing.T) {
		m := mustFEN(t, "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3")
		testutil.AssertTrue(t, m.EnPassantVulnerable() == pieceAt(t, m, "e5"), "e5 pawn should be vulnerable")
		mustPlay(t, m, "f5e6")
		testutil.AssertNil(t, pieceAt(t, m, "e5"))
	})
}

func TestNewMatchFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8 w - - 0 1"},
		{"rank too long", "4k4/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"rank too short", "4k2/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad piece letter", "4k3/8/8/8/8/8/8/4K2X w - - 0 1"},
		{"pawn on back rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"no white king", "4k3/8/8/8/8/8/8/8 w - - 0 1"},
		{"two black kings", "3kk3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling letter", "4k3/8/8/8/8/8/8/4K3 w Z - 0 1"},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 b - e3 0 1"},
		{"en passant off the board", "4k3/8/8/8/8/8/8/4K3 b - e9 0 1"},
		{"bad fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMatchFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestFEN_AfterMoves(t *testing.T) {
	m := NewMatch()
	mustPlay(t, m, "e2e4")
	testutil.AssertEqual(t, m.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	mustPlay(t, m, "c7c5", "g1f3")
	testutil.AssertEqual(t, m.FEN(), "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 2")
	mustPlay(t, m, "d8a5", "e1e2")
	testutil.AssertEqual(t, m.FEN(), "rnb1kbnr/pp1ppppp/8/q1p5/4P3/5N2/PPPPKPPP/RNBQ1B1R b kq - 0 3")
}
