package chess

import "github.com/lgbarn/chessmatch-go/internal/board"

// Attacks returns the squares p attacks. It differs from PossibleMoves in
// two ways: pawns attack both forward diagonals whether or not anything
// stands there (and never attack straight ahead), and kings never castle.
func (p *Piece) Attacks(b *Board) board.Matrix {
	m := b.NewMatrix()
	switch p.kind {
	case Pawn:
		dir := p.colour.Forward()
		m.Mark(p.pos.Offset(dir, -1))
		m.Mark(p.pos.Offset(dir, 1))
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
	}
	return m
}

// IsSquareAttacked returns true if pos is attacked by any piece of colour by.
func IsSquareAttacked(b *Board, pos board.Position, by Colour) bool {
	if !b.InBounds(pos) {
		return false
	}
	attacked := false
	b.Each(func(_ board.Position, p *Piece) {
		if !attacked && p.colour == by && p.Attacks(b).At(pos) {
			attacked = true
		}
	})
	return attacked
}
