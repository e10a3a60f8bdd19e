package chess

import "github.com/lgbarn/chessmatch-go/internal/board"

// Offsets for each movement rule, as {row, column} deltas.
var (
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// PossibleMoves returns the squares p could move to on b, ignoring whether
// the move would leave its own king in check. enPassant is the pawn that
// double-advanced on the previous ply, or nil.
func (p *Piece) PossibleMoves(b *Board, enPassant *Piece) board.Matrix {
	m := b.NewMatrix()
	switch p.kind {
	case Pawn:
		p.pawnMoves(b, m, enPassant)
	case Knight:
		p.step(b, m, knightOffsets)
	case Bishop:
		p.slide(b, m, diagonalDirs)
	case Rook:
		p.slide(b, m, straightDirs)
	case Queen:
		p.slide(b, m, straightDirs)
		p.slide(b, m, diagonalDirs)
	case King:
		p.step(b, m, kingOffsets)
		p.castlingMoves(b, m)
	}
	return m
}

// IsThereAnyPossibleMove reports whether PossibleMoves marks any square.
func (p *Piece) IsThereAnyPossibleMove(b *Board, enPassant *Piece) bool {
	return p.PossibleMoves(b, enPassant).Any()
}

// CanReach reports whether PossibleMoves marks target.
func (p *Piece) CanReach(b *Board, enPassant *Piece, target board.Position) bool {
	return p.PossibleMoves(b, enPassant).At(target)
}

// slide marks each ray up to and including the first opposing piece.
func (p *Piece) slide(b *Board, m board.Matrix, dirs [][2]int) {
	for _, dir := range dirs {
		pos := p.pos.Offset(dir[0], dir[1])
		for b.InBounds(pos) {
			occupant := b.At(pos)
			if occupant == nil {
				m.Mark(pos)
				pos = pos.Offset(dir[0], dir[1])
				continue
			}
			if p.isOpponent(occupant) {
				m.Mark(pos)
			}
			break // Blocked
		}
	}
}

// step marks each fixed offset that is on the board and not held by a friend.
func (p *Piece) step(b *Board, m board.Matrix, offsets [][2]int) {
	for _, off := range offsets {
		pos := p.pos.Offset(off[0], off[1])
		if b.InBounds(pos) && p.canMoveTo(b, pos) {
			m.Mark(pos)
		}
	}
}

func (p *Piece) pawnMoves(b *Board, m board.Matrix, enPassant *Piece) {
	dir := p.colour.Forward()

	one := p.pos.Offset(dir, 0)
	if b.InBounds(one) && b.At(one) == nil {
		m.Mark(one)
		two := p.pos.Offset(2*dir, 0)
		if p.pos.Row == PawnRow(p.colour) && b.InBounds(two) && b.At(two) == nil {
			m.Mark(two)
		}
	}

	for _, dc := range []int{-1, 1} {
		diag := p.pos.Offset(dir, dc)
		if p.isOpponent(b.At(diag)) {
			m.Mark(diag)
		}
	}

	// en passant
	if enPassant != nil && enPassant.kind == Pawn && p.isOpponent(enPassant) &&
		b.At(enPassant.pos) == enPassant && enPassant.pos.Row == p.pos.Row &&
		abs(enPassant.pos.Column-p.pos.Column) == 1 {
		target := board.Position{Row: p.pos.Row + dir, Column: enPassant.pos.Column}
		if b.InBounds(target) && b.At(target) == nil {
			m.Mark(target)
		}
	}
}

// castlingMoves marks the king's two-column castling destinations.
func (p *Piece) castlingMoves(b *Board, m board.Matrix) {
	if p.moves != 0 || p.pos.Row != HomeRow(p.colour) {
		return
	}
	for _, side := range []int{1, -1} {
		if p.canCastle(b, side) {
			m.Mark(p.pos.Offset(0, 2*side))
		}
	}
}

// canCastle checks castling towards the corner rook on side (+1 king side,
// -1 queen side): the rook has not moved, the squares between are empty and
// none of the squares the king stands on or crosses is attacked.
func (p *Piece) canCastle(b *Board, side int) bool {
	rookPos := CastlingRookOrigin(p.pos, side, b.Columns())
	rook := b.At(rookPos)
	if rook == nil || rook.kind != Rook || rook.colour != p.colour || rook.moves != 0 {
		return false
	}
	if abs(rookPos.Column-p.pos.Column) < 3 {
		return false
	}
	for c := min(p.pos.Column, rookPos.Column) + 1; c < max(p.pos.Column, rookPos.Column); c++ {
		if b.At(board.Position{Row: p.pos.Row, Column: c}) != nil {
			return false
		}
	}
	enemy := p.colour.Opposite()
	for i := 0; i <= 2; i++ {
		if IsSquareAttacked(b, p.pos.Offset(0, i*side), enemy) {
			return false
		}
	}
	return true
}

// CastlingRookOrigin returns the corner the rook castles from, for a king
// on kingPos castling towards side (+1 king side, -1 queen side).
func CastlingRookOrigin(kingPos board.Position, side, columns int) board.Position {
	if side > 0 {
		return board.Position{Row: kingPos.Row, Column: columns - 1}
	}
	return board.Position{Row: kingPos.Row, Column: 0}
}

// CastlingRookTarget returns where the rook lands: the square the king crossed.
func CastlingRookTarget(kingPos board.Position, side int) board.Position {
	return kingPos.Offset(0, side)
}
