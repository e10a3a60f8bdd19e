package main

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

const batchInput = `# opening lines
d2d3 d7d6
f2f3 e7e5 g2g4 d8h4
e2e4 e7e5 e1e3

d2d4
g1f3 g8f6 f3g1 f6g8 d2d3 d7d6
`

func TestReadGames(t *testing.T) {
	games, err := readGames(strings.NewReader(batchInput))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(games), 5)
	testutil.AssertEqual(t, games[1], []string{"f2f3", "e7e5", "g2g4", "d8h4"})
}

func TestRunBatch(t *testing.T) {
	cfg, out, _ := newTestConfig()

	stats, err := runBatch(cfg, strings.NewReader(batchInput))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats, batchStats{Games: 5, Replayed: 4, Checkmates: 1, Failed: 1, Workers: 2})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("output lines = %d; want 5:\n%s", len(lines), out.String())
	}
	testutil.AssertContains(t, lines[0], "game 1: InProgress after 2 move(s)")
	testutil.AssertContains(t, lines[1], "game 2: CheckMate after 4 move(s)")
	testutil.AssertContains(t, lines[2], "game 3: failed after 2 move(s)")
	testutil.AssertContains(t, lines[3], "game 4: InProgress after 1 move(s)")
	testutil.AssertContains(t, lines[4], "game 5: InProgress after 6 move(s)")
}

func TestRunBatch_SuppressDuplicates(t *testing.T) {
	cfg, out, log := newTestConfig()
	cfg.Replay.SuppressDuplicates = true
	cfg.Verbosity = 2

	// Games 1 and 5 reach the same position by transposition.
	stats, err := runBatch(cfg, strings.NewReader(batchInput))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.Duplicates, 1)
	testutil.AssertEqual(t, stats.Replayed, 3)
	testutil.AssertEqual(t, stats.Positions, 3)
	testutil.AssertContains(t, log.String(), "replaying 5 game(s) on 2 worker(s)")
	testutil.AssertContains(t, log.String(), "game 5: same final position as game 1")
	if strings.Contains(out.String(), "game 5:") {
		t.Errorf("duplicate game was reported:\n%s", out.String())
	}

	log.Reset()
	reportStatistics(cfg, stats)
	testutil.AssertEqual(t, log.String(),
		"3 game(s) replayed, 1 checkmate(s), 1 failed, 1 duplicate(s) of 3 distinct position(s) out of 5.\n")
}

func TestRunBatch_StopAfter(t *testing.T) {
	cfg, _, _ := newTestConfig()
	cfg.Replay.StopAfter = 1
	cfg.Replay.Workers = 1

	input := strings.Repeat("f2f3 e7e5 g2g4 d8h4\n", 20)
	stats, err := runBatch(cfg, strings.NewReader(input))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.Checkmates, 1)
	testutil.AssertEqual(t, stats.Games, 20)
}

func TestRunBatch_Verify(t *testing.T) {
	cfg, _, _ := newTestConfig()
	cfg.Verify = true

	stats, err := runBatch(cfg, strings.NewReader("e2e4 c7c5 g1f3 d7d6\nf2f3 e7e5 g2g4 d8h4\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, stats.Failed, 0)
}

func TestRunBatch_BadStartFEN(t *testing.T) {
	cfg, _, _ := newTestConfig()
	cfg.Replay.StartFEN = "not a fen"

	_, err := runBatch(cfg, strings.NewReader("e2e4\n"))
	testutil.AssertError(t, err)
}
