package region

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridkit/grid"
)

// ErrSeedOutOfBounds indicates Fill was seeded outside the grid.
var ErrSeedOutOfBounds = errors.New("region: seed outside grid")

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options configures Fill, Partition and Exterior.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// DepthFirst switches traversal from bfs to dfs.
	DepthFirst bool
	// OnBoundary, if non-nil, receives every boundary edge of each region
	// produced by Fill or Partition.
	OnBoundary func(in grid.Coord, facing grid.Direction)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Conn4, breadth-first, no boundary hook.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity sets the adjacency used while filling.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithDepthFirst fills with a depth-first walk.
func WithDepthFirst() Option {
	return func(o *Options) { o.DepthFirst = true }
}

// WithOnBoundary installs a boundary-edge hook.
func WithOnBoundary(fn func(in grid.Coord, facing grid.Direction)) Option {
	return func(o *Options) { o.OnBoundary = fn }
}

// Region is a maximal connected set of like cells. Label is the seed cell's value.
type Region[T any] struct {
	Label T
	Cells mapset.Set[grid.Coord]
}

// Area is the number of member cells.
func (r Region[T]) Area() int { return r.Cells.Size() }

// Contains reports membership of c.
func (r Region[T]) Contains(c grid.Coord) bool { return r.Cells.Has(c) }

// Coords returns the member cells in row-major order.
func (r Region[T]) Coords() []grid.Coord { return sorted(r.Cells) }

// Edge is one unit boundary edge: a member cell and the direction in which
// its neighbor lies outside the region.
type Edge struct {
	In     grid.Coord
	Facing grid.Direction
}
