package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/board"
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"golang.org/x/exp/slices"
)

// moveRecord holds everything undoMove needs to reverse makeMove exactly.
type moveRecord struct {
	piece  *chess.Piece
	source board.Position
	target board.Position

	captured      *chess.Piece
	capturedAt    board.Position
	capturedIndex int // index the captured piece held in piecesOnTheBoard

	rook     *chess.Piece // set for castling
	rookFrom board.Position
	rookTo   board.Position
}

// makeMove executes a move that has already passed geometric validation,
// including the rook relocation of castling and the pawn removal of en
// passant. It does not touch turn state.
func (m *Match) makeMove(source, target board.Position) (*moveRecord, error) {
	p, err := m.board.Remove(source)
	if err != nil {
		return nil, err
	}
	p.IncreaseMoveCount()
	rec := &moveRecord{piece: p, source: source, target: target}

	captured, err := m.board.Remove(target)
	if err != nil {
		return nil, err
	}
	if err := m.board.Place(p, target); err != nil {
		return nil, err
	}
	if captured != nil {
		m.recordCapture(rec, captured, target)
	}

	// special move castling
	if p.Kind() == chess.King && abs(target.Column-source.Column) == 2 {
		side := sign(target.Column - source.Column)
		rec.rookFrom = chess.CastlingRookOrigin(source, side, m.board.Columns())
		rec.rookTo = chess.CastlingRookTarget(source, side)
		rook, err := m.board.Remove(rec.rookFrom)
		if err != nil {
			return nil, err
		}
		if err := m.board.Place(rook, rec.rookTo); err != nil {
			return nil, err
		}
		rook.IncreaseMoveCount()
		rec.rook = rook
	}

	// special move en passant
	if p.Kind() == chess.Pawn && source.Column != target.Column && captured == nil {
		pawnPos := board.Position{Row: source.Row, Column: target.Column}
		pawn, err := m.board.Remove(pawnPos)
		if err != nil {
			return nil, err
		}
		if pawn != nil {
			m.recordCapture(rec, pawn, pawnPos)
		}
	}

	return rec, nil
}

// recordCapture moves a piece already lifted off the board into the captured roster.
func (m *Match) recordCapture(rec *moveRecord, captured *chess.Piece, at board.Position) {
	rec.captured = captured
	rec.capturedAt = at
	rec.capturedIndex = indexOf(m.piecesOnTheBoard, captured)
	if rec.capturedIndex >= 0 {
		m.piecesOnTheBoard = slices.Delete(m.piecesOnTheBoard, rec.capturedIndex, rec.capturedIndex+1)
	}
	m.capturedPieces = append(m.capturedPieces, captured)
}

// undoMove reverses makeMove, restoring board cells, both rosters and every
// touched move counter.
func (m *Match) undoMove(rec *moveRecord) error {
	p, err := m.board.Remove(rec.target)
	if err != nil {
		return err
	}
	p.DecreaseMoveCount()
	if err := m.board.Place(p, rec.source); err != nil {
		return err
	}

	if rec.rook != nil {
		if _, err := m.board.Remove(rec.rookTo); err != nil {
			return err
		}
		if err := m.board.Place(rec.rook, rec.rookFrom); err != nil {
			return err
		}
		rec.rook.DecreaseMoveCount()
	}

	if rec.captured != nil {
		if err := m.board.Place(rec.captured, rec.capturedAt); err != nil {
			return err
		}
		if i := lastIndexOf(m.capturedPieces, rec.captured); i >= 0 {
			m.capturedPieces = slices.Delete(m.capturedPieces, i, i+1)
		}
		if rec.capturedIndex >= 0 {
			m.piecesOnTheBoard = slices.Insert(m.piecesOnTheBoard, rec.capturedIndex, rec.captured)
		}
	}
	return nil
}
