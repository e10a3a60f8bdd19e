package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/hashing"
	"github.com/lgbarn/chessmatch-go/internal/worker"
)

// batchStats summarizes a batch run.
type batchStats struct {
	Games      int // games read from the input
	Replayed   int // games whose result was reported
	Checkmates int
	Failed     int // games with a rejected move or a verification failure
	Duplicates int // games suppressed as duplicates
	Positions  int // distinct final positions, when duplicates are suppressed
	Workers    int
}

// readGames reads one game per non-empty line.
func readGames(r io.Reader) ([][]string, error) {
	var games [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if moves := splitMoves(scanner.Text()); len(moves) > 0 {
			games = append(games, moves)
		}
	}
	return games, scanner.Err()
}

// runBatch replays every game of r concurrently, one match per game, and
// prints one line per game in input order.
func runBatch(cfg *config.Config, r io.Reader) (batchStats, error) {
	var stats batchStats

	games, err := readGames(r)
	if err != nil {
		return stats, err
	}
	stats.Games = len(games)

	if cfg.Replay.StartFEN != "" {
		// Reject a bad start position once rather than once per game.
		if _, err := engine.NewMatchFromFEN(cfg.Replay.StartFEN); err != nil {
			return stats, err
		}
	}

	pool := worker.NewPool(worker.ReplayFunc(cfg.Replay.StartFEN),
		worker.WithWorkers(cfg.Replay.Workers),
		worker.WithBufferSize(cfg.Replay.BufferSize))
	pool.Start()
	stats.Workers = pool.NumWorkers()
	cfg.Logf(config.Commentary, "replaying %d game(s) on %d worker(s)\n", stats.Games, stats.Workers)

	go func() {
		for i, moves := range games {
			if !pool.Submit(worker.WorkItem{Moves: moves, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	// Results arrive in completion order; only this goroutine reads them.
	var results []worker.ProcessResult
	mates := 0
	for result := range pool.Results() {
		if cfg.Replay.StopAfter > 0 && mates >= cfg.Replay.StopAfter {
			pool.Stop()
			continue
		}
		if result.Error == nil && result.State == engine.CheckMate {
			mates++
		}
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	var detector *hashing.DuplicateDetector
	if cfg.Replay.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(false)
	}

	for _, result := range results {
		if result.Error == nil && cfg.Verify && result.State != engine.CheckMate {
			result.Error = verifyFEN(result.FEN)
		}
		if result.Error != nil {
			stats.Failed++
			fmt.Fprintf(cfg.OutputFile, "game %d: failed after %d move(s): %v\n", result.Index+1, result.Plies, result.Error)
			continue
		}

		if detector != nil {
			sig := hashing.GameSignature{Hash: result.Hash, Plies: result.Plies, Index: result.Index}
			if first, dup := detector.CheckAndAdd(sig); dup {
				cfg.Logf(config.Commentary, "game %d: same final position as game %d\n", result.Index+1, first.Index+1)
				continue
			}
		}

		stats.Replayed++
		if result.State == engine.CheckMate {
			stats.Checkmates++
		}
		fmt.Fprintf(cfg.OutputFile, "game %d: %v after %d move(s): %s", result.Index+1, result.State, result.Plies, result.FEN)
		if cfg.Output.ShowHash {
			fmt.Fprintf(cfg.OutputFile, " %016x", result.Hash)
		}
		fmt.Fprintln(cfg.OutputFile)
	}
	if detector != nil {
		stats.Duplicates = detector.DuplicateCount()
		stats.Positions = detector.UniqueCount()
	}
	return stats, nil
}

// verifyFEN reloads a final position and cross-checks it against the oracle.
func verifyFEN(fen string) error {
	m, err := engine.NewMatchFromFEN(fen)
	if err != nil {
		return errors.Wrap(err, "reload final position")
	}
	return verifyPosition(m)
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats batchStats) {
	cfg.Logf(config.Summary, "%d game(s) replayed, %d checkmate(s), %d failed", stats.Replayed, stats.Checkmates, stats.Failed)
	if cfg.Replay.SuppressDuplicates {
		cfg.Logf(config.Summary, ", %d duplicate(s) of %d distinct position(s)", stats.Duplicates, stats.Positions)
	}
	cfg.Logf(config.Summary, " out of %d.\n", stats.Games)
}
