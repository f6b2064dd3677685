package grid

import "fmt"

// Builder is the mutable counterpart of Grid, used while painting cells
// (sand, rock, walls) before the board is frozen.
type Builder[T any] struct {
	rows, cols int
	cells      []T
}

// NewBuilder returns a rows×cols builder with every cell set to fill.
func NewBuilder[T any](rows, cols int, fill T) (*Builder[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]T, rows*cols)
	for i := range cells {
		cells[i] = fill
	}
	return &Builder[T]{rows: rows, cols: cols, cells: cells}, nil
}

// FromGrid starts a builder from a copy of g.
func FromGrid[T any](g *Grid[T]) *Builder[T] {
	return &Builder[T]{rows: g.rows, cols: g.cols, cells: g.Cells()}
}

// Rows returns the number of rows.
func (b *Builder[T]) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Builder[T]) Cols() int { return b.cols }

// InBounds reports whether c lies inside the builder.
func (b *Builder[T]) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Get returns the cell at c, or false when c is outside.
func (b *Builder[T]) Get(c Coord) (T, bool) {
	if !b.InBounds(c) {
		var zero T
		return zero, false
	}
	return b.cells[c.Row*b.cols+c.Col], true
}

// Set stores v at c. It returns an error wrapping ErrIndex when c is outside.
func (b *Builder[T]) Set(c Coord, v T) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrIndex, c, b.rows, b.cols)
	}
	b.cells[c.Row*b.cols+c.Col] = v
	return nil
}

// Swap exchanges the cells at a and b.
func (b *Builder[T]) Swap(x, y Coord) error {
	if !b.InBounds(x) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrIndex, x, b.rows, b.cols)
	}
	if !b.InBounds(y) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrIndex, y, b.rows, b.cols)
	}
	i, j := x.Row*b.cols+x.Col, y.Row*b.cols+y.Col
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
	return nil
}

// Build freezes a copy of the current cells into a Grid. The builder stays
// usable afterwards.
func (b *Builder[T]) Build() *Grid[T] {
	cp := make([]T, len(b.cells))
	copy(cp, b.cells)
	return &Grid[T]{rows: b.rows, cols: b.cols, cells: cp}
}
