package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/board"
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// renderBoard writes the board as text, eighth rank first. Empty squares
// are '-', pieces are FEN letters.
func renderBoard(w io.Writer, b *chess.Board) {
	for row := 0; row < b.Rows(); row++ {
		fmt.Fprintf(w, "%d", chess.BoardSize-row)
		for col := 0; col < b.Columns(); col++ {
			letter := byte('-')
			if p := b.At(board.Position{Row: row, Column: col}); p != nil {
				letter = p.Letter()
			}
			fmt.Fprintf(w, " %c", letter)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, " ")
	for col := 0; col < b.Columns(); col++ {
		fmt.Fprintf(w, " %c", chess.ColBase+col)
	}
	fmt.Fprintln(w)
}

// describeState returns a one-line summary of whose move it is and whether
// the match has ended.
func describeState(m *engine.Match) string {
	switch m.State() {
	case engine.CheckMate:
		return fmt.Sprintf("Checkmate after turn %d, %v wins", m.Turn(), m.CurrentPlayer())
	case engine.AwaitingPromotion:
		return fmt.Sprintf("Turn %d: %v must choose a promotion", m.Turn(), m.CurrentPlayer())
	case engine.Check:
		return fmt.Sprintf("Turn %d: %v to move, in check", m.Turn(), m.CurrentPlayer())
	}
	if stalemate, err := m.Stalemate(); err == nil && stalemate {
		return fmt.Sprintf("Turn %d: %v to move, stalemate", m.Turn(), m.CurrentPlayer())
	}
	return fmt.Sprintf("Turn %d: %v to move", m.Turn(), m.CurrentPlayer())
}

// pieceLetters lists pieces as FEN letters separated by spaces, or "-".
func pieceLetters(pieces []*chess.Piece) string {
	if len(pieces) == 0 {
		return "-"
	}
	letters := make([]string, len(pieces))
	for i, p := range pieces {
		letters[i] = string(p.Letter())
	}
	return strings.Join(letters, " ")
}

// squareList formats the marked squares of a matrix in row-major order.
func squareList(m board.Matrix) string {
	var names []string
	for _, pos := range m.Positions() {
		names = append(names, chess.SquareOf(pos).String())
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, " ")
}
