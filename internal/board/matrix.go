package board

// Matrix is a boolean grid marking a set of positions, e.g. the squares a
// piece can reach. It is indexed [row][column].
type Matrix [][]bool

// NewMatrix creates an all-false matrix.
func NewMatrix(rows, columns int) Matrix {
	m := make(Matrix, rows)
	for r := range m {
		m[r] = make([]bool, columns)
	}
	return m
}

// inBounds reports whether pos addresses a cell of m.
func (m Matrix) inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < len(m) && pos.Column >= 0 && pos.Column < len(m[pos.Row])
}

// Mark sets pos to true. Positions off the matrix are ignored.
func (m Matrix) Mark(pos Position) {
	if m.inBounds(pos) {
		m[pos.Row][pos.Column] = true
	}
}

// Clear sets pos to false. Positions off the matrix are ignored.
func (m Matrix) Clear(pos Position) {
	if m.inBounds(pos) {
		m[pos.Row][pos.Column] = false
	}
}

// At reports whether pos is marked. Positions off the matrix are unmarked.
func (m Matrix) At(pos Position) bool {
	return m.inBounds(pos) && m[pos.Row][pos.Column]
}

// Any reports whether at least one position is marked.
func (m Matrix) Any() bool {
	for _, row := range m {
		for _, v := range row {
			if v {
				return true
			}
		}
	}
	return false
}

// Count returns the number of marked positions.
func (m Matrix) Count() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Positions returns the marked positions in row-major order.
func (m Matrix) Positions() []Position {
	var out []Position
	for r, row := range m {
		for c, v := range row {
			if v {
				out = append(out, Position{Row: r, Column: c})
			}
		}
	}
	return out
}
