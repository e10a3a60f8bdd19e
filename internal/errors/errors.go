// Package errors provides sentinel errors and error types for the match engine.
// Every rejection the engine produces wraps exactly one of the sentinels below,
// so callers can branch with errors.Is() without parsing messages.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rejected requests.
// Use these with errors.Is() to check for specific error kinds.
var (
	// ErrInvalidCoordinate indicates a human-facing square outside a1..h8.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrOutOfBounds indicates a grid position outside the configured rows/columns.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrOccupiedCell indicates a placement onto a cell that already holds a piece.
	ErrOccupiedCell = errors.New("cell already occupied")

	// ErrNoPieceAtSource indicates a move request from an empty square.
	ErrNoPieceAtSource = errors.New("no piece at source")

	// ErrNotYourPiece indicates a move request for the side not to move.
	ErrNotYourPiece = errors.New("piece belongs to the opponent")

	// ErrNoLegalMoves indicates the chosen piece cannot reach any square.
	ErrNoLegalMoves = errors.New("piece has no possible moves")

	// ErrIllegalTarget indicates the chosen piece cannot reach the target square.
	ErrIllegalTarget = errors.New("piece cannot move to target")

	// ErrSelfCheck indicates a move that would leave the mover's own king attacked.
	ErrSelfCheck = errors.New("move leaves own king in check")

	// ErrNoPendingPromotion indicates a promotion choice with no pawn awaiting one.
	ErrNoPendingPromotion = errors.New("no pending promotion")

	// ErrPromotionPending indicates a move submitted before a promotion was resolved.
	ErrPromotionPending = errors.New("promotion choice pending")

	// ErrGameOver indicates a move submitted after checkmate.
	ErrGameOver = errors.New("match is over")

	// ErrMissingKing indicates a colour has no king on the board.
	// This is a broken invariant, not a game outcome.
	ErrMissingKing = errors.New("missing king")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrOracleMismatch indicates the legal move set disagrees with the
	// independent move generator used for verification.
	ErrOracleMismatch = errors.New("legal moves disagree with oracle")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejected move request with the ply it was submitted on
// and the squares involved. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // Turn number the request was made on (0 if not applicable)
	From string // Source square in algebraic form (if known)
	To   string // Target square in algebraic form (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		if context == "" {
			return "move error"
		}
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It mirrors the standard library so callers importing this package
// under the name errors keep access to it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
