// Package grid provides an immutable, row-major 2-D grid of typed cells plus
// the coordinate and direction algebra used to walk it.
//
// What:
//
//   - Grid[T] stores Rows×Cols cells in one slice, index = row*Cols + col.
//   - Get returns (value, false) for coordinates outside [0,Rows)×[0,Cols);
//     neighbor expansion code relies on that to clip searches at the border
//     without explicit bounds checks.
//   - Parse maps text (one row per line) through a caller-supplied CellMapper.
//   - Builder is the only mutable variant; Set on it fails with ErrIndex
//     outside the bounds, Build freezes a copy.
//   - Transpose, RotateCW, RotateCCW, Map, Widen and Tile return new grids.
//   - Coord, Direction (4-way, clockwise order) and Compass (8-way) carry the
//     offsets, turns and opposites used by neighbor functions.
//
// Errors:
//
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrParse:           matched by every *ParseError (bad rune or ragged row).
//   - ErrIndex:           Builder.Set outside the grid.
//   - ErrWidenMismatch:   Widen expander returned the wrong number of cells.
//
// Complexity: Get/Set/Index O(1); Parse and every transform O(Rows×Cols).
package grid
