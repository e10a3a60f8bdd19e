package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/board"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Square is a human-facing coordinate: a column letter 'a'-'h' and a
// row number 1-8. The zero value is not a valid square; use NewSquare.
type Square struct {
	Column byte
	Row    int
}

// NewSquare validates and builds a square.
func NewSquare(column byte, row int) (Square, error) {
	if column < FirstCol || column > LastCol || row < FirstRank || row > LastRank {
		return Square{}, fmt.Errorf("%c%d: valid values are from a1 to h8: %w",
			column, row, errors.ErrInvalidCoordinate)
	}
	return Square{Column: column, Row: row}, nil
}

// ParseSquare parses a square such as "e4". Letters are case-insensitive.
func ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidCoordinate)
	}
	column := s[0]
	if column >= 'A' && column <= 'Z' {
		column += 'a' - 'A'
	}
	if s[1] < '0' || s[1] > '9' {
		return Square{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidCoordinate)
	}
	return NewSquare(column, int(s[1]-'0'))
}

// Position converts the square to grid space.
func (s Square) Position() board.Position {
	return board.Position{Row: BoardSize - s.Row, Column: int(s.Column - ColBase)}
}

// SquareOf converts a grid position back to a square. The position is
// assumed to be on the board.
func SquareOf(pos board.Position) Square {
	return Square{Column: byte(ColBase + pos.Column), Row: BoardSize - pos.Row}
}

// String returns the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", s.Column, s.Row)
}

// MoveText is a parsed coordinate move such as "e2e4" or "e7e8q".
type MoveText struct {
	From      Square
	To        Square
	Promotion Kind
	Promotes  bool
}

// ParseMove parses coordinate notation: source square, target square and an
// optional promotion letter. A '-' between the squares is accepted.
func ParseMove(text string) (MoveText, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	if len(s) != 4 && len(s) != 5 {
		return MoveText{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidCoordinate)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return MoveText{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return MoveText{}, errors.Wrapf(err, "move %q", text)
	}
	mv := MoveText{From: from, To: to}
	if len(s) == 5 {
		kind, ok := ParseKind(s[4])
		if !ok {
			return MoveText{}, fmt.Errorf("move %q: unknown promotion piece %q: %w",
				text, s[4], errors.ErrInvalidCoordinate)
		}
		mv.Promotion = kind
		mv.Promotes = true
	}
	return mv, nil
}

// String returns the move in coordinate notation.
func (m MoveText) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotes {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}
