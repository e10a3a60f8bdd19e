// Package board provides a fixed-size rectangular grid that maps positions
// to occupants. It has no knowledge of what the occupants are.
package board

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Position is a zero-based (row, column) coordinate in grid space.
type Position struct {
	Row    int
	Column int
}

// Offset returns the position shifted by the given row and column deltas.
// The result is not bounds-checked.
func (p Position) Offset(dRow, dColumn int) Position {
	return Position{Row: p.Row + dRow, Column: p.Column + dColumn}
}

// String returns the position as "(row, column)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// Grid is a rows x columns container where each cell holds at most one
// occupant. Occupants are held by pointer so identity survives moves.
type Grid[T any] struct {
	rows    int
	columns int
	cells   [][]*T
}

// NewGrid creates an empty grid. Both dimensions must be at least 1.
func NewGrid[T any](rows, columns int) (*Grid[T], error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("grid must have at least 1 row and 1 column, got %dx%d: %w",
			rows, columns, errors.ErrOutOfBounds)
	}
	cells := make([][]*T, rows)
	for r := range cells {
		cells[r] = make([]*T, columns)
	}
	return &Grid[T]{rows: rows, columns: columns, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Columns returns the number of columns.
func (g *Grid[T]) Columns() int {
	return g.columns
}

// InBounds reports whether pos lies inside the grid.
func (g *Grid[T]) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Column >= 0 && pos.Column < g.columns
}

func (g *Grid[T]) checkBounds(pos Position) error {
	if !g.InBounds(pos) {
		return fmt.Errorf("%v outside %dx%d grid: %w", pos, g.rows, g.columns, errors.ErrOutOfBounds)
	}
	return nil
}

// Get returns the occupant at pos, or nil if the cell is empty.
func (g *Grid[T]) Get(pos Position) (*T, error) {
	if err := g.checkBounds(pos); err != nil {
		return nil, err
	}
	return g.cells[pos.Row][pos.Column], nil
}

// At returns the occupant at pos. Positions off the grid read as empty,
// which lets movement rules probe neighbours without bounds bookkeeping.
func (g *Grid[T]) At(pos Position) *T {
	if !g.InBounds(pos) {
		return nil
	}
	return g.cells[pos.Row][pos.Column]
}

// Place puts occupant at pos. The cell must be empty.
func (g *Grid[T]) Place(occupant *T, pos Position) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}
	if g.cells[pos.Row][pos.Column] != nil {
		return fmt.Errorf("place at %v: %w", pos, errors.ErrOccupiedCell)
	}
	g.cells[pos.Row][pos.Column] = occupant
	return nil
}

// Remove clears pos and returns whatever occupied it (nil if it was empty).
func (g *Grid[T]) Remove(pos Position) (*T, error) {
	if err := g.checkBounds(pos); err != nil {
		return nil, err
	}
	occupant := g.cells[pos.Row][pos.Column]
	g.cells[pos.Row][pos.Column] = nil
	return occupant, nil
}

// Occupied reports whether pos holds an occupant.
func (g *Grid[T]) Occupied(pos Position) (bool, error) {
	if err := g.checkBounds(pos); err != nil {
		return false, err
	}
	return g.cells[pos.Row][pos.Column] != nil, nil
}

// Each calls fn for every occupied cell in row-major order.
func (g *Grid[T]) Each(fn func(pos Position, occupant *T)) {
	for r, row := range g.cells {
		for c, occupant := range row {
			if occupant != nil {
				fn(Position{Row: r, Column: c}, occupant)
			}
		}
	}
}

// NewMatrix returns an all-false matrix shaped like the grid.
func (g *Grid[T]) NewMatrix() Matrix {
	return NewMatrix(g.rows, g.columns)
}
