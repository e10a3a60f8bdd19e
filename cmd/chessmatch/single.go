package main

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/oracle"
)

// newMatch creates a match from the configured starting position with
// commentary routed to the log.
func newMatch(cfg *config.Config) (*engine.Match, error) {
	logOpt := engine.WithLog(cfg.LogFile, cfg.Verbosity)
	if cfg.Replay.StartFEN == "" {
		return engine.NewMatch(logOpt), nil
	}
	return engine.NewMatchFromFEN(cfg.Replay.StartFEN, logOpt)
}

// runSingle replays moves on one match and prints the report. The report is
// printed even when a move is rejected, showing the position it was
// rejected in.
func runSingle(cfg *config.Config, moves []string) error {
	m, err := newMatch(cfg)
	if err != nil {
		return err
	}

	for i, text := range moves {
		if cfg.Verify {
			if err := verifyPosition(m); err != nil {
				return errors.Wrapf(err, "before move %d (%s)", i+1, text)
			}
		}
		if _, err := m.Play(text); err != nil {
			if reportErr := report(cfg.OutputFile, cfg.Output, m); reportErr != nil {
				return reportErr
			}
			return errors.Wrapf(err, "move %d (%s)", i+1, text)
		}
	}
	if cfg.Verify {
		if err := verifyPosition(m); err != nil {
			return errors.Wrap(err, "final position")
		}
	}
	cfg.Logf(config.Summary, "%d move(s) replayed\n", len(moves))
	return report(cfg.OutputFile, cfg.Output, m)
}

// report prints the parts of the final position selected in out.
func report(w io.Writer, out *config.OutputConfig, m *engine.Match) error {
	if out.ShowBoard {
		renderBoard(w, m.Board())
	}
	fmt.Fprintln(w, describeState(m))
	if out.ShowFEN {
		fmt.Fprintf(w, "FEN: %s\n", m.FEN())
	}
	if out.ShowHash {
		fmt.Fprintf(w, "Hash: %016x\n", m.Hash())
	}
	if out.ShowCaptured {
		fmt.Fprintf(w, "Captured white: %s\n", pieceLetters(m.Captured(chess.White)))
		fmt.Fprintf(w, "Captured black: %s\n", pieceLetters(m.Captured(chess.Black)))
	}
	if out.ShowMoves != "" {
		return reportMoves(w, m, out.ShowMoves)
	}
	return nil
}

// reportMoves prints the raw and the self-check-filtered destinations of the
// piece on square.
func reportMoves(w io.Writer, m *engine.Match, square string) error {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return err
	}
	possible, err := m.PossibleMoves(sq)
	if err != nil {
		return err
	}
	legal, err := m.LegalMoves(sq)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Possible moves from %s: %s\n", sq, squareList(possible))
	fmt.Fprintf(w, "Legal moves from %s: %s\n", sq, squareList(legal))
	return nil
}

// verifyPosition cross-checks the legal moves and check status of the side
// to move against the oracle. A finished match has nothing to verify.
func verifyPosition(m *engine.Match) error {
	if m.CheckMate() {
		return nil
	}
	fen := m.FEN()

	got, err := m.AllLegalMoves()
	if err != nil {
		return err
	}
	diffs, err := oracle.Verify(fen, got)
	if err != nil {
		return err
	}
	if len(diffs) > 0 {
		return fmt.Errorf("%s: %v: %w", fen, diffs, errors.ErrOracleMismatch)
	}

	inCheck, err := oracle.InCheck(fen)
	if err != nil {
		return err
	}
	if inCheck != m.Check() {
		return fmt.Errorf("%s: check is %v, oracle says %v: %w", fen, m.Check(), inCheck, errors.ErrOracleMismatch)
	}
	return nil
}
