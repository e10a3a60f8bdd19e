// chessmatch replays chess games given in coordinate notation, enforcing
// the full rules of play, and reports the resulting position.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmatch version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *batchFile != "" {
		os.Exit(batchMain(cfg))
	}

	moves := flag.Args()
	if len(moves) == 0 {
		var err error
		if moves, err = readMoves(os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading moves: %v\n", err)
			os.Exit(1)
		}
	}

	if err := runSingle(cfg, moves); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// batchMain replays every game in the batch file and reports statistics.
func batchMain(cfg *config.Config) int {
	file, err := os.Open(*batchFile) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening batch file %s: %v\n", *batchFile, err)
		return 1
	}
	defer file.Close()

	stats, err := runBatch(cfg, file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	reportStatistics(cfg, stats)
	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// readMoves reads whitespace-separated moves. Text after '#' on a line is ignored.
func readMoves(r io.Reader) ([]string, error) {
	var moves []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		moves = append(moves, splitMoves(scanner.Text())...)
	}
	return moves, scanner.Err()
}

// splitMoves splits one line into moves, dropping any '#' comment.
func splitMoves(line string) []string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.Fields(line)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmatch [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays a chess game and reports the final position.\n")
	fmt.Fprintf(os.Stderr, "Moves are in coordinate notation (e2e4, e7e8q); without arguments\n")
	fmt.Fprintf(os.Stderr, "they are read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
