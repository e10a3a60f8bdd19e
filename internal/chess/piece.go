package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/board"
)

// Piece is a single piece in play. Its identity is the pointer: a promoted
// pawn is replaced by a new Piece rather than mutated.
type Piece struct {
	colour Colour
	kind   Kind
	pos    board.Position
	moves  int
}

// NewPiece creates a piece that has not moved and is not yet on a board.
func NewPiece(colour Colour, kind Kind) *Piece {
	return &Piece{colour: colour, kind: kind}
}

// Colour returns the piece's colour.
func (p *Piece) Colour() Colour {
	return p.colour
}

// Kind returns the piece's movement rule.
func (p *Piece) Kind() Kind {
	return p.kind
}

// Position returns the grid position the piece was last placed on.
func (p *Piece) Position() board.Position {
	return p.pos
}

// Square returns the piece's position as an algebraic square.
func (p *Piece) Square() Square {
	return SquareOf(p.pos)
}

// MoveCount returns how many committed moves the piece has made.
func (p *Piece) MoveCount() int {
	return p.moves
}

// IncreaseMoveCount records a move of the piece.
func (p *Piece) IncreaseMoveCount() {
	p.moves++
}

// DecreaseMoveCount reverts a recorded move.
func (p *Piece) DecreaseMoveCount() {
	p.moves--
}

// SetMoveCount overrides the move counter. Position setup uses this to mark
// rooks and kings that have lost castling rights.
func (p *Piece) SetMoveCount(n int) {
	p.moves = n
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.kind.Letter()
	if p.colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p *Piece) String() string {
	return fmt.Sprintf("%v %v", p.colour, p.kind)
}

// isOpponent reports whether other is a piece of the opposite colour.
func (p *Piece) isOpponent(other *Piece) bool {
	return other != nil && other.colour != p.colour
}

// canMoveTo reports whether pos is empty or holds an opposing piece.
func (p *Piece) canMoveTo(b *Board, pos board.Position) bool {
	occupant := b.At(pos)
	return occupant == nil || occupant.colour != p.colour
}
