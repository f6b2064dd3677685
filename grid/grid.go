package grid

import (
	"strings"

	"github.com/katalvlaran/gridkit/seq"
)

// Grid is a fixed-size, row-major 2-D array of cells. It is immutable once
// built; transforms return new grids.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New builds a Grid from row-major cells. len(cells) must equal rows*cols.
// The slice is copied.
func New[T any](rows, cols int, cells []T) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != rows*cols {
		return nil, ErrNonRectangular
	}
	cp := make([]T, len(cells))
	copy(cp, cells)

	return &Grid[T]{rows: rows, cols: cols, cells: cp}, nil
}

// From2D builds a Grid from a rectangular [][]T, deep-copying it.
func From2D[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]T, 0, h*w)
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{rows: h, cols: w, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns Rows*Cols.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether c lies inside the grid.
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Get returns the cell at c, or the zero value and false when c is outside
// the grid. It never panics.
func (g *Grid[T]) Get(c Coord) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}
	return g.cells[g.Index(c)], true
}

// At returns the cell at c and panics when c is out of bounds. Use it only
// where the coordinate is already known to be inside.
func (g *Grid[T]) At(c Coord) T {
	if !g.InBounds(c) {
		panic(ErrIndex.Error() + ": " + c.String())
	}
	return g.cells[g.Index(c)]
}

// WrapGet treats the grid as a torus: coordinates are reduced modulo the
// dimensions before lookup. Used for boards that repeat infinitely.
func (g *Grid[T]) WrapGet(c Coord) T {
	return g.cells[seq.ArithMod(c.Row, g.rows)*g.cols+seq.ArithMod(c.Col, g.cols)]
}

// Index maps c to its row-major offset. It does not check bounds.
func (g *Grid[T]) Index(c Coord) int { return c.Row*g.cols + c.Col }

// Coordinate converts a row-major offset back to a Coord.
func (g *Grid[T]) Coordinate(idx int) Coord { return Coord{idx / g.cols, idx % g.cols} }

// All calls fn for every cell in row-major order until fn returns false.
func (g *Grid[T]) All(fn func(c Coord, v T) bool) {
	for i, v := range g.cells {
		if !fn(g.Coordinate(i), v) {
			return
		}
	}
}

// Find returns the first coordinate (row-major) whose cell satisfies pred.
func (g *Grid[T]) Find(pred func(T) bool) (Coord, bool) {
	for i, v := range g.cells {
		if pred(v) {
			return g.Coordinate(i), true
		}
	}
	return Coord{}, false
}

// FindAll returns every coordinate whose cell satisfies pred, row-major.
func (g *Grid[T]) FindAll(pred func(T) bool) []Coord {
	var out []Coord
	for i, v := range g.cells {
		if pred(v) {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Count returns the number of cells satisfying pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Cells returns a copy of the row-major cell slice.
func (g *Grid[T]) Cells() []T {
	cp := make([]T, len(g.cells))
	copy(cp, g.cells)
	return cp
}

// Row returns a copy of row r. It panics if r is out of range.
func (g *Grid[T]) Row(r int) []T {
	cp := make([]T, g.cols)
	copy(cp, g.cells[r*g.cols:(r+1)*g.cols])
	return cp
}

// Col returns a copy of column c. It panics if c is out of range.
func (g *Grid[T]) Col(c int) []T {
	if c < 0 || c >= g.cols {
		panic(ErrIndex.Error())
	}
	out := make([]T, g.rows)
	for r := range out {
		out[r] = g.cells[r*g.cols+c]
	}
	return out
}

// Render draws the grid as text, one line per row, using glyph for each cell.
func (g *Grid[T]) Render(glyph func(c Coord, v T) rune) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for i, v := range g.cells {
		if i > 0 && i%g.cols == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(glyph(g.Coordinate(i), v))
	}
	return sb.String()
}

// EqualFunc reports whether a and b have the same shape and eq holds for
// every pair of cells.
func EqualFunc[T any](a, b *Grid[T], eq func(x, y T) bool) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.cells {
		if !eq(a.cells[i], b.cells[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b have the same shape and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}
