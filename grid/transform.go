package grid

import "fmt"

// Transpose returns a new grid with rows and columns swapped.
func (g *Grid[T]) Transpose() *Grid[T] {
	out := make([]T, len(g.cells))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out[c*g.rows+r] = g.cells[r*g.cols+c]
		}
	}
	return &Grid[T]{rows: g.cols, cols: g.rows, cells: out}
}

// RotateCW returns a new grid rotated a quarter turn clockwise.
// Cell (r, c) moves to (c, Rows-1-r).
func (g *Grid[T]) RotateCW() *Grid[T] {
	out := make([]T, len(g.cells))
	nCols := g.rows
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out[c*nCols+(g.rows-1-r)] = g.cells[r*g.cols+c]
		}
	}
	return &Grid[T]{rows: g.cols, cols: nCols, cells: out}
}

// RotateCCW returns a new grid rotated a quarter turn counter-clockwise.
// Cell (r, c) moves to (Cols-1-c, r).
func (g *Grid[T]) RotateCCW() *Grid[T] {
	out := make([]T, len(g.cells))
	nCols := g.rows
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out[(g.cols-1-c)*nCols+r] = g.cells[r*g.cols+c]
		}
	}
	return &Grid[T]{rows: g.cols, cols: nCols, cells: out}
}

// Tile repeats g rowsTimes vertically and colsTimes horizontally.
func (g *Grid[T]) Tile(rowsTimes, colsTimes int) (*Grid[T], error) {
	if rowsTimes <= 0 || colsTimes <= 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := g.rows*rowsTimes, g.cols*colsTimes
	out := make([]T, 0, rows*cols)
	for r := 0; r < rows; r++ {
		src := g.cells[(r%g.rows)*g.cols : (r%g.rows+1)*g.cols]
		for i := 0; i < colsTimes; i++ {
			out = append(out, src...)
		}
	}
	return &Grid[T]{rows: rows, cols: cols, cells: out}, nil
}

// Map builds a new grid of the same shape by applying fn to every cell.
func Map[T, U any](g *Grid[T], fn func(c Coord, v T) U) *Grid[U] {
	out := make([]U, len(g.cells))
	for i, v := range g.cells {
		out[i] = fn(g.Coordinate(i), v)
	}
	return &Grid[U]{rows: g.rows, cols: g.cols, cells: out}
}

// Widen expands every cell horizontally into factor cells produced by
// expand, e.g. '#' → "##" and 'O' → "[]" for a doubled warehouse.
func Widen[T any](g *Grid[T], factor int, expand func(v T) []T) (*Grid[T], error) {
	if factor <= 0 {
		return nil, ErrEmptyGrid
	}
	out := make([]T, 0, len(g.cells)*factor)
	for i, v := range g.cells {
		parts := expand(v)
		if len(parts) != factor {
			return nil, fmt.Errorf("%w: %d cells at %v, want %d", ErrWidenMismatch, len(parts), g.Coordinate(i), factor)
		}
		out = append(out, parts...)
	}
	return &Grid[T]{rows: g.rows, cols: g.cols * factor, cells: out}, nil
}
