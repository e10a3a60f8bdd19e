// Package hashing provides Zobrist hashing of positions and duplicate
// detection for replayed matches.
package hashing

import (
	"github.com/dylhunn/dragontoothmg"
)

// Zobrist hashes the position described by fen: piece placement, side to
// move, castling rights and the en passant square. The halfmove clock and
// move number do not contribute. fen must be well formed; the parser
// panics otherwise.
func Zobrist(fen string) uint64 {
	b := dragontoothmg.ParseFen(fen)
	return b.Hash()
}
