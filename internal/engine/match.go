// Package engine provides the match orchestrator: it sequences turns,
// validates and executes moves (castling, en passant and promotion
// included) and detects check and checkmate.
//
// A Match is not safe for concurrent use. Callers sharing one across
// goroutines must serialize SubmitMove and ResolvePromotion themselves.
package engine

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessmatch-go/internal/board"
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/hashing"
)

// State is the match's position in its state machine.
type State int

const (
	InProgress State = iota
	Check
	CheckMate
	AwaitingPromotion
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Check:
		return "Check"
	case CheckMate:
		return "CheckMate"
	case AwaitingPromotion:
		return "AwaitingPromotion"
	}
	return "Unknown"
}

// Match owns the board, the rosters of pieces in play and captured, and the
// turn state. SubmitMove and ResolvePromotion are its only mutating entry points.
type Match struct {
	board *chess.Board

	turn          int
	currentPlayer chess.Colour
	check         bool
	checkMate     bool

	enPassantVulnerable *chess.Piece
	promoted            *chess.Piece

	// Derived from board occupancy; only makeMove, undoMove and promotion edit them.
	piecesOnTheBoard []*chess.Piece
	capturedPieces   []*chess.Piece

	log       io.Writer
	verbosity int
}

// Option configures a Match.
type Option func(*Match)

// WithLog sends running commentary to w. Verbosity 1 reports check and
// checkmate, 2 also reports every committed and rejected move.
func WithLog(w io.Writer, verbosity int) Option {
	return func(m *Match) {
		m.log = w
		m.verbosity = verbosity
	}
}

// newMatch creates a match with an empty board and White to move.
func newMatch(opts ...Option) *Match {
	m := &Match{
		board:         chess.NewBoard(),
		turn:          1,
		currentPlayer: chess.White,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewMatch creates a match in the standard starting position.
func NewMatch(opts ...Option) *Match {
	m := newMatch(opts...)
	m.initialSetup()
	return m
}

// logf writes commentary when the configured verbosity is at least level.
func (m *Match) logf(level int, format string, args ...interface{}) {
	if m.log == nil || m.verbosity < level {
		return
	}
	fmt.Fprintf(m.log, format+"\n", args...)
}

// Board returns the live board. Callers must not mutate it.
func (m *Match) Board() *chess.Board {
	return m.board
}

// Pieces returns a snapshot of the board indexed [row][column], nil for empty cells.
func (m *Match) Pieces() [][]*chess.Piece {
	rows, cols := m.board.Rows(), m.board.Columns()
	mat := make([][]*chess.Piece, rows)
	for r := 0; r < rows; r++ {
		mat[r] = make([]*chess.Piece, cols)
		for c := 0; c < cols; c++ {
			mat[r][c] = m.board.At(board.Position{Row: r, Column: c})
		}
	}
	return mat
}

// Turn returns the turn number: 1 for the first ply, incremented after each completed ply.
func (m *Match) Turn() int {
	return m.turn
}

// CurrentPlayer returns the side to move. After checkmate it is the winner.
func (m *Match) CurrentPlayer() chess.Colour {
	return m.currentPlayer
}

// Check reports whether the last completed ply left the opponent's king attacked.
func (m *Match) Check() bool {
	return m.check
}

// CheckMate reports whether the match has ended in checkmate.
func (m *Match) CheckMate() bool {
	return m.checkMate
}

// State returns the current state of the match.
func (m *Match) State() State {
	switch {
	case m.checkMate:
		return CheckMate
	case m.promoted != nil:
		return AwaitingPromotion
	case m.check:
		return Check
	}
	return InProgress
}

// EnPassantVulnerable returns the pawn that may be captured en passant on
// this ply, or nil.
func (m *Match) EnPassantVulnerable() *chess.Piece {
	return m.enPassantVulnerable
}

// Promoted returns the pawn awaiting a promotion choice, or nil.
func (m *Match) Promoted() *chess.Piece {
	return m.promoted
}

// PiecesOnBoard returns the pieces of colour c still in play.
func (m *Match) PiecesOnBoard(c chess.Colour) []*chess.Piece {
	return filterColour(m.piecesOnTheBoard, c)
}

// Captured returns the pieces of colour c that have been captured, in capture order.
func (m *Match) Captured(c chess.Colour) []*chess.Piece {
	return filterColour(m.capturedPieces, c)
}

// Hash returns the Zobrist hash of the current position, as written by FEN.
func (m *Match) Hash() uint64 {
	return hashing.Zobrist(m.FEN())
}

// PossibleMoves returns the reachability matrix of the piece on source.
//
// The matrix is NOT filtered for self-check: a square that would expose the
// mover's king is still marked, and SubmitMove rejects it with ErrSelfCheck.
// Use LegalMoves for the filtered set.
func (m *Match) PossibleMoves(source chess.Square) (board.Matrix, error) {
	pos := source.Position()
	if err := m.validateSourcePosition(pos); err != nil {
		return nil, &errors.MoveError{Err: err, Ply: m.turn, From: source.String()}
	}
	return m.board.At(pos).PossibleMoves(m.board, m.enPassantVulnerable), nil
}

// LegalMoves returns the reachability matrix of the piece on source with
// every destination that would leave its own king attacked removed.
func (m *Match) LegalMoves(source chess.Square) (board.Matrix, error) {
	pos := source.Position()
	p, err := m.board.Get(pos)
	if err == nil && p == nil {
		err = errors.ErrNoPieceAtSource
	}
	if err != nil {
		return nil, &errors.MoveError{Err: err, Ply: m.turn, From: source.String()}
	}
	mat := p.PossibleMoves(m.board, m.enPassantVulnerable)
	for _, target := range mat.Positions() {
		safe, err := m.leavesKingSafe(pos, target, p.Colour())
		if err != nil {
			return nil, err
		}
		if !safe {
			mat.Clear(target)
		}
	}
	return mat, nil
}

// SubmitMove moves the piece on source to target. It returns the captured
// piece, or nil if nothing was captured. A rejected move leaves the match
// unchanged. ErrMissingKing means the position itself is corrupt.
func (m *Match) SubmitMove(source, target chess.Square) (*chess.Piece, error) {
	captured, err := m.performMove(source.Position(), target.Position())
	if err != nil {
		m.logf(2, "ply %d: %v %s-%s rejected: %v", m.turn, m.currentPlayer, source, target, err)
		return nil, &errors.MoveError{Err: err, Ply: m.turn, From: source.String(), To: target.String()}
	}
	return captured, nil
}

func (m *Match) performMove(source, target board.Position) (*chess.Piece, error) {
	if m.checkMate {
		return nil, errors.ErrGameOver
	}
	if m.promoted != nil {
		return nil, errors.ErrPromotionPending
	}
	if err := m.validateSourcePosition(source); err != nil {
		return nil, err
	}
	if err := m.validateTargetPosition(source, target); err != nil {
		return nil, err
	}

	rec, err := m.makeMove(source, target)
	if err != nil {
		return nil, err
	}

	inCheck, err := m.testCheck(m.currentPlayer)
	if err != nil {
		if undoErr := m.undoMove(rec); undoErr != nil {
			return nil, undoErr
		}
		return nil, err
	}
	if inCheck {
		if err := m.undoMove(rec); err != nil {
			return nil, err
		}
		return nil, errors.ErrSelfCheck
	}

	moved := rec.piece
	m.logf(2, "ply %d: %v %v %s-%s", m.turn, m.currentPlayer, moved.Kind(),
		chess.SquareOf(source), chess.SquareOf(target))

	// special move en passant
	m.enPassantVulnerable = nil
	if moved.Kind() == chess.Pawn && abs(target.Row-source.Row) == 2 {
		m.enPassantVulnerable = moved
	}

	// special move promotion
	if moved.Kind() == chess.Pawn && target.Row == chess.PromotionRow(moved.Colour()) {
		m.promoted = moved
		m.logf(2, "ply %d: %v pawn on %s awaiting promotion", m.turn, m.currentPlayer, moved.Square())
		return rec.captured, nil
	}

	if err := m.finishPly(); err != nil {
		return rec.captured, err
	}
	return rec.captured, nil
}

// ResolvePromotion replaces the pending pawn with a new piece of kind and
// completes the ply. A kind that is not promotable keeps the pawn as it is
// and still completes the ply. It returns the piece now on the square.
func (m *Match) ResolvePromotion(kind chess.Kind) (*chess.Piece, error) {
	if m.promoted == nil {
		return nil, &errors.MoveError{Err: errors.ErrNoPendingPromotion, Ply: m.turn}
	}
	pawn := m.promoted
	result := pawn

	if kind.Promotable() {
		pos := pawn.Position()
		if _, err := m.board.Remove(pos); err != nil {
			return nil, err
		}
		newPiece := chess.NewPiece(pawn.Colour(), kind)
		if err := m.board.Place(newPiece, pos); err != nil {
			return nil, err
		}
		i := indexOf(m.piecesOnTheBoard, pawn)
		m.piecesOnTheBoard[i] = newPiece
		result = newPiece
		m.logf(2, "ply %d: %v pawn on %s promoted to %v", m.turn, m.currentPlayer, pawn.Square(), kind)
	} else {
		m.logf(2, "ply %d: %v pawn on %s kept, %v is not a promotion choice", m.turn, m.currentPlayer, pawn.Square(), kind)
	}

	m.promoted = nil
	if err := m.finishPly(); err != nil {
		return result, err
	}
	return result, nil
}

// finishPly updates check and checkmate for the opponent and advances the
// turn unless the opponent has been mated.
func (m *Match) finishPly() error {
	opponent := m.currentPlayer.Opposite()

	check, err := m.testCheck(opponent)
	if err != nil {
		return err
	}
	m.check = check

	mate, err := m.testCheckMate(opponent)
	if err != nil {
		return err
	}
	if mate {
		m.checkMate = true
		m.logf(1, "ply %d: checkmate, %v wins", m.turn, m.currentPlayer)
		return nil
	}
	if check {
		m.logf(1, "ply %d: %v is in check", m.turn, opponent)
	}
	m.nextTurn()
	return nil
}

func (m *Match) nextTurn() {
	m.turn++
	m.currentPlayer = m.currentPlayer.Opposite()
}

func (m *Match) validateSourcePosition(pos board.Position) error {
	p, err := m.board.Get(pos)
	if err != nil {
		return err
	}
	if p == nil {
		return errors.ErrNoPieceAtSource
	}
	if p.Colour() != m.currentPlayer {
		return errors.ErrNotYourPiece
	}
	if !p.IsThereAnyPossibleMove(m.board, m.enPassantVulnerable) {
		return errors.ErrNoLegalMoves
	}
	return nil
}

func (m *Match) validateTargetPosition(source, target board.Position) error {
	if !m.board.InBounds(target) {
		return fmt.Errorf("target %v: %w", target, errors.ErrOutOfBounds)
	}
	if !m.board.At(source).CanReach(m.board, m.enPassantVulnerable, target) {
		return errors.ErrIllegalTarget
	}
	return nil
}
