package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessmatch-go/internal/board"
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewMatchFromFEN creates a match from a FEN position. Castling rights are
// carried by move counters: a king or corner rook without a right is marked
// as having moved. The en passant field selects the vulnerable pawn.
func NewMatchFromFEN(fen string, opts ...Option) (*Match, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	m := newMatch(opts...)

	if err := m.parsePiecePositions(parts[0]); err != nil {
		return nil, err
	}
	if err := m.parseSideToMove(parts); err != nil {
		return nil, err
	}
	if err := m.parseCastlingRights(parts); err != nil {
		return nil, err
	}
	if err := m.parseEnPassant(parts); err != nil {
		return nil, err
	}
	if err := m.parseClocks(parts); err != nil {
		return nil, err
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := countKind(m.board.Pieces(colour), chess.King); n != 1 {
			return nil, fmt.Errorf("%v has %d kings: %w", colour, n, errors.ErrInvalidFEN)
		}
	}

	check, err := m.testCheck(m.currentPlayer)
	if err != nil {
		return nil, err
	}
	m.check = check
	mate, err := m.testCheckMate(m.currentPlayer)
	if err != nil {
		return nil, err
	}
	if mate {
		// After checkmate the side to move is the winner.
		m.checkMate = true
		m.currentPlayer = m.currentPlayer.Opposite()
		if m.turn > 1 {
			m.turn--
		}
	}

	return m, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Every piece starts with one recorded move except pawns on their start
// row; parseCastlingRights resets kings and rooks that keep their rights.
func (m *Match) parsePiecePositions(positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind, ok := chess.ParseKind(byte(c))
				if !ok {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				if kind == chess.Pawn && (row == chess.HomeRow(chess.White) || row == chess.HomeRow(chess.Black)) {
					return fmt.Errorf("pawn on back rank: %w", errors.ErrInvalidFEN)
				}

				p := chess.NewPiece(colour, kind)
				if kind != chess.Pawn || row != chess.PawnRow(colour) {
					p.SetMoveCount(1)
				}
				if err := m.board.Place(p, board.Position{Row: row, Column: col}); err != nil {
					return errors.Wrap(errors.ErrInvalidFEN, err.Error())
				}
				m.piecesOnTheBoard = append(m.piecesOnTheBoard, p)
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d columns: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func (m *Match) parseSideToMove(parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		m.currentPlayer = chess.White
	case "b":
		m.currentPlayer = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. A right is
// honoured only when the king stands on its e-file home square and the rook
// on the matching corner.
func (m *Match) parseCastlingRights(parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		var side int
		switch unicode.ToUpper(c) {
		case 'K':
			side = 1
		case 'Q':
			side = -1
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}

		home := chess.HomeRow(colour)
		kingPos := board.Position{Row: home, Column: int('e' - chess.ColBase)}
		k := m.board.At(kingPos)
		rook := m.board.At(chess.CastlingRookOrigin(kingPos, side, m.board.Columns()))
		if k == nil || k.Kind() != chess.King || k.Colour() != colour ||
			rook == nil || rook.Kind() != chess.Rook || rook.Colour() != colour {
			continue
		}
		k.SetMoveCount(0)
		rook.SetMoveCount(0)
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func (m *Match) parseEnPassant(parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return errors.Wrap(errors.ErrInvalidFEN, err.Error())
	}
	// The pawn that double-advanced belongs to the side that just moved and
	// stands one row past the target square in its own direction of travel.
	mover := m.currentPlayer.Opposite()
	pawn := m.board.At(sq.Position().Offset(mover.Forward(), 0))
	if pawn == nil || pawn.Kind() != chess.Pawn || pawn.Colour() != mover {
		return fmt.Errorf("no %v pawn behind en passant square %s: %w", mover, sq, errors.ErrInvalidFEN)
	}
	m.enPassantVulnerable = pawn
	return nil
}

// parseClocks parses the fullmove number into the ply-based turn counter.
// The halfmove clock is accepted and ignored.
func (m *Match) parseClocks(parts []string) error {
	m.turn = 1
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		m.turn = 2*(n-1) + 1
	}
	if m.currentPlayer == chess.Black {
		m.turn++
	}
	return nil
}

// FEN returns the current position as a FEN string. The halfmove clock is
// not tracked and is always written as 0. NewMatchFromFEN(m.FEN()) restores
// the same position, checkmate included.
func (m *Match) FEN() string {
	var sb strings.Builder

	for row := 0; row < m.board.Rows(); row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < m.board.Columns(); col++ {
			p := m.board.At(board.Position{Row: row, Column: col})
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	// A mated position is written with the loser to move, as it stands on the board.
	toMove, turn := m.currentPlayer, m.turn
	if m.checkMate {
		toMove, turn = toMove.Opposite(), turn+1
	}
	if toMove == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	sb.WriteString(m.castlingField())
	sb.WriteByte(' ')

	if ep := m.enPassantVulnerable; ep != nil {
		sb.WriteString(chess.SquareOf(ep.Position().Offset(-ep.Colour().Forward(), 0)).String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " 0 %d", (turn+1)/2)
	return sb.String()
}

// castlingField derives the FEN castling field from move counters.
func (m *Match) castlingField() string {
	var sb strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kingPos := board.Position{Row: chess.HomeRow(colour), Column: int('e' - chess.ColBase)}
		k := m.board.At(kingPos)
		if k == nil || k.Kind() != chess.King || k.Colour() != colour || k.MoveCount() != 0 {
			continue
		}
		for _, side := range []int{1, -1} {
			rook := m.board.At(chess.CastlingRookOrigin(kingPos, side, m.board.Columns()))
			if rook == nil || rook.Kind() != chess.Rook || rook.Colour() != colour || rook.MoveCount() != 0 {
				continue
			}
			letter := byte('K')
			if side < 0 {
				letter = 'Q'
			}
			if colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// countKind counts the pieces of the given kind.
func countKind(pieces []*chess.Piece, kind chess.Kind) int {
	n := 0
	for _, p := range pieces {
		if p.Kind() == kind {
			n++
		}
	}
	return n
}
