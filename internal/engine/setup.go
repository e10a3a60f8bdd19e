package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// backRank lists the pieces of the first rank from the a-file to the h-file.
var backRank = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// placeNewPiece puts a new piece on the board and into the roster.
// It panics if the square is invalid or taken: setup squares are constants.
func (m *Match) placeNewPiece(column byte, row int, p *chess.Piece) {
	sq, err := chess.NewSquare(column, row)
	if err != nil {
		panic(err)
	}
	if err := m.board.Place(p, sq.Position()); err != nil {
		panic(err)
	}
	m.piecesOnTheBoard = append(m.piecesOnTheBoard, p)
}

// initialSetup places both armies in the standard starting position.
func (m *Match) initialSetup() {
	for i, kind := range backRank {
		m.placeNewPiece(byte(chess.FirstCol+i), 1, chess.NewPiece(chess.White, kind))
	}
	for i := 0; i < chess.BoardSize; i++ {
		m.placeNewPiece(byte(chess.FirstCol+i), 2, chess.NewPiece(chess.White, chess.Pawn))
	}
	for i, kind := range backRank {
		m.placeNewPiece(byte(chess.FirstCol+i), 8, chess.NewPiece(chess.Black, kind))
	}
	for i := 0; i < chess.BoardSize; i++ {
		m.placeNewPiece(byte(chess.FirstCol+i), 7, chess.NewPiece(chess.Black, chess.Pawn))
	}
}
