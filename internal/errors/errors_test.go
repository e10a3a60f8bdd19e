package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrInvalidCoordinate,
		ErrOutOfBounds,
		ErrOccupiedCell,
		ErrNoPieceAtSource,
		ErrNotYourPiece,
		ErrNoLegalMoves,
		ErrIllegalTarget,
		ErrSelfCheck,
		ErrNoPendingPromotion,
		ErrPromotionPending,
		ErrGameOver,
		ErrMissingKing,
		ErrInvalidFEN,
		ErrInvalidConfig,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("submitting move: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
			for _, other := range sentinels {
				if other != sentinel && errors.Is(wrapped, other) {
					t.Errorf("errors.Is(wrapped %v, %v) = true, want false", sentinel, other)
				}
			}
		})
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name:     "full context",
			err:      &MoveError{Err: ErrSelfCheck, Ply: 12, From: "e1", To: "e2"},
			contains: []string{"ply 12", "e1-e2", "own king in check"},
		},
		{
			name:     "source only",
			err:      &MoveError{Err: ErrNoPieceAtSource, Ply: 1, From: "e4"},
			contains: []string{"ply 1", "square e4", "no piece at source"},
		},
		{
			name:     "no context",
			err:      &MoveError{Err: ErrGameOver},
			contains: []string{"match is over"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works through further wrapping
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalTarget, Ply: 7, From: "b1", To: "b3"}
	wrapped := fmt.Errorf("replaying game: %w", moveErr)

	var extracted *MoveError
	if !As(wrapped, &extracted) {
		t.Fatal("As() could not extract MoveError")
	}
	if extracted.Ply != 7 {
		t.Errorf("extracted.Ply = %d, want 7", extracted.Ply)
	}
	if !Is(wrapped, ErrIllegalTarget) {
		t.Error("Is(wrapped, ErrIllegalTarget) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "loading position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrMissingKing, "%s king", "White")

	if !errors.Is(wrapped, ErrMissingKing) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "white king") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
