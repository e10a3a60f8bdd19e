// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

var (
	// Input options
	startFEN  = flag.String("fen", "", "Starting position in FEN (default: standard setup)")
	batchFile = flag.String("f", "", "Batch file: one game per line, moves separated by spaces")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	noBoard      = flag.Bool("noboard", false, "Don't print the final board")
	noFEN        = flag.Bool("nofen", false, "Don't print the final FEN")
	noCaptured   = flag.Bool("nocaptured", false, "Don't print captured pieces")
	showHash     = flag.Bool("hash", false, "Print the Zobrist hash of the final position")
	movesFor     = flag.String("moves", "", "Print the destinations of the piece on this square")

	// Checking
	verify = flag.Bool("verify", false, "Cross-check every position against an independent move generator")

	// Batch options
	workers            = flag.Int("workers", 0, "Number of concurrent replays in batch mode (0 = number of CPUs)")
	suppressDuplicates = flag.Bool("D", false, "Suppress games whose final position was already reported")
	stopAfter          = flag.Int("stopafter", 0, "Stop a batch after N games end in checkmate")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet     = flag.Bool("s", false, "Silent mode: report nothing but results")
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0 silent, 1 check and checkmate, 2 every move")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyReplayFlags(cfg)

	cfg.Verify = *verify
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// applyOutputFlags configures what is printed after a replay.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowFEN = !*noFEN
	cfg.Output.ShowCaptured = !*noCaptured
	cfg.Output.ShowHash = *showHash
	cfg.Output.ShowMoves = *movesFor
}

// applyReplayFlags configures the starting position and batch behaviour.
func applyReplayFlags(cfg *config.Config) {
	cfg.Replay.StartFEN = *startFEN
	cfg.Replay.SuppressDuplicates = *suppressDuplicates
	cfg.Replay.StopAfter = *stopAfter
	if *workers > 0 {
		cfg.Replay.Workers = *workers
	}
}
