package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

// newTestConfig returns a config writing to buffers.
func newTestConfig() (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	var out, log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithOutput(&out).
		WithLogFile(&log).
		WithWorkers(2).
		Build()
	return cfg, &out, &log
}

func TestReadMoves(t *testing.T) {
	input := "e2e4 e7e5   # king's pawn\n\ng1f3\n# nothing here\nb8c6\n"
	moves, err := readMoves(strings.NewReader(input))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, moves, []string{"e2e4", "e7e5", "g1f3", "b8c6"})
}

func TestRenderBoard_Initial(t *testing.T) {
	cfg, out, _ := newTestConfig()
	m, err := newMatch(cfg)
	testutil.AssertNoError(t, err)

	renderBoard(out, m.Board())

	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 - - - - - - - -",
		"5 - - - - - - - -",
		"4 - - - - - - - -",
		"3 - - - - - - - -",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
	}, "\n") + "\n"
	testutil.AssertEqual(t, out.String(), want)
}

func TestRunSingle_FoolsMate(t *testing.T) {
	cfg, out, log := newTestConfig()
	cfg.Output.ShowBoard = false

	err := runSingle(cfg, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertNoError(t, err)

	got := out.String()
	testutil.AssertContains(t, got, "Checkmate after turn 4, Black wins")
	testutil.AssertContains(t, got, "FEN: rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3")
	testutil.AssertContains(t, got, "Captured white: -")
	testutil.AssertContains(t, log.String(), "checkmate, Black wins")
}

func TestRunSingle_RejectedMove(t *testing.T) {
	cfg, out, _ := newTestConfig()
	cfg.Output.ShowBoard = false

	err := runSingle(cfg, []string{"e2e4", "e2e3"})
	testutil.AssertErrorIs(t, err, errors.ErrNoPieceAtSource)
	testutil.AssertContains(t, err.Error(), "move 2 (e2e3)")

	// The position the move was rejected in is still reported.
	testutil.AssertContains(t, out.String(), "Turn 2: Black to move")
}

func TestRunSingle_Capture(t *testing.T) {
	cfg, out, _ := newTestConfig()
	cfg.Output.ShowBoard = false
	cfg.Output.ShowHash = true

	err := runSingle(cfg, []string{"e2e4", "d7d5", "e4d5"})
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out.String(), "Captured black: p")
	testutil.AssertContains(t, out.String(), "Hash: ")
}

func TestRunSingle_ShowMoves(t *testing.T) {
	cfg, out, _ := newTestConfig()
	cfg.Output.ShowBoard = false
	// The knight on d2 is pinned against the king on e1.
	cfg.Replay.StartFEN = "4k3/8/8/8/1b6/8/3N4/4K3 w - - 0 1"
	cfg.Output.ShowMoves = "d2"

	err := runSingle(cfg, nil)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out.String(), "Possible moves from d2: c4 e4 b3 f3 b1 f1")
	testutil.AssertContains(t, out.String(), "Legal moves from d2: -")
}

func TestRunSingle_BadFEN(t *testing.T) {
	cfg, _, _ := newTestConfig()
	cfg.Replay.StartFEN = "8/8/8/8/8/8/8/8 w - - 0 1"

	err := runSingle(cfg, nil)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestRunSingle_Verify(t *testing.T) {
	cfg, _, _ := newTestConfig()
	cfg.Verify = true

	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1", "f6e4"}
	testutil.AssertNoError(t, runSingle(cfg, moves))
}
