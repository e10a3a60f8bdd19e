// Package chess provides the pieces, coordinates and movement rules of the
// classical ruleset. Movement rules are pure: they read a Board and report
// which squares a piece could reach, and never mutate anything.
package chess

import "github.com/lgbarn/chessmatch-go/internal/board"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this colour advances by.
// Row 0 is the eighth rank, so White moves towards lower rows.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Kind identifies which movement rule a piece follows.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter for a kind.
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Promotable reports whether a pawn may be promoted to this kind.
func (k Kind) Promotable() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// ParseKind converts a piece letter (either case) to a Kind.
func ParseKind(letter byte) (Kind, bool) {
	switch letter {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	ColBase   = 'a'
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
	FirstRank = 1
	LastRank  = BoardSize
)

// HomeRow returns the grid row of the given colour's back rank.
func HomeRow(c Colour) int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the grid row a pawn of the given colour starts on.
func PawnRow(c Colour) int {
	return HomeRow(c) + c.Forward()
}

// PromotionRow returns the grid row on which a pawn of the given colour promotes.
func PromotionRow(c Colour) int {
	return HomeRow(c.Opposite())
}

// Board is the 8x8 grid of pieces. Placing a piece through Board keeps the
// piece's own position in step with the cell that holds it.
type Board struct {
	*board.Grid[Piece]
}

// NewBoard creates an empty 8x8 board.
func NewBoard() *Board {
	g, err := board.NewGrid[Piece](BoardSize, BoardSize)
	if err != nil {
		// BoardSize is a positive constant.
		panic(err)
	}
	return &Board{Grid: g}
}

// Place puts p on pos and records pos as the piece's position.
func (b *Board) Place(p *Piece, pos board.Position) error {
	if err := b.Grid.Place(p, pos); err != nil {
		return err
	}
	p.pos = pos
	return nil
}

// Pieces returns the pieces of colour c in row-major board order.
func (b *Board) Pieces(c Colour) []*Piece {
	var out []*Piece
	b.Each(func(_ board.Position, p *Piece) {
		if p.colour == c {
			out = append(out, p)
		}
	})
	return out
}

// FindKing returns the king of colour c, or nil if there is none.
func (b *Board) FindKing(c Colour) *Piece {
	var king *Piece
	b.Each(func(_ board.Position, p *Piece) {
		if king == nil && p.colour == c && p.kind == King {
			king = p
		}
	})
	return king
}
