package region

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridkit/bfs"
	"github.com/katalvlaran/gridkit/dfs"
	"github.com/katalvlaran/gridkit/grid"
)

// Fill returns the region containing seed: every cell reachable from seed
// through cells v with same(seedValue, v).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Fill[T any](g *grid.Grid[T], seed grid.Coord, same func(a, b T) bool, opts ...Option) (mapset.Set[grid.Coord], error) {
	if !g.InBounds(seed) {
		return mapset.New[grid.Coord](), fmt.Errorf("%w: %v in %dx%d", ErrSeedOutOfBounds, seed, g.Rows(), g.Cols())
	}
	o := apply(opts)
	label := g.At(seed)
	cells := o.collect(seed, func(c grid.Coord) bool {
		v, ok := g.Get(c)
		return ok && same(label, v)
	})
	o.reportBoundary(cells)

	return cells, nil
}

// Partition splits g into regions, seeding in row-major order from each
// cell not yet assigned. The union of the returned cell sets is the whole
// grid and no cell appears twice.
func Partition[T any](g *grid.Grid[T], same func(a, b T) bool, opts ...Option) []Region[T] {
	o := apply(opts)
	seen := make([]bool, g.Len())
	var regions []Region[T]

	g.All(func(c grid.Coord, label T) bool {
		if seen[g.Index(c)] {
			return true
		}
		cells := o.collect(c, func(n grid.Coord) bool {
			v, ok := g.Get(n)
			return ok && !seen[g.Index(n)] && same(label, v)
		})
		cells.Each(func(m grid.Coord) { seen[g.Index(m)] = true })
		o.reportBoundary(cells)
		regions = append(regions, Region[T]{Label: label, Cells: cells})

		return true
	})

	return regions
}

// Exterior returns every open cell connected to the grid border through
// open cells.
func Exterior[T any](g *grid.Grid[T], open func(T) bool, opts ...Option) mapset.Set[grid.Coord] {
	o := apply(opts)
	// outside is a virtual source adjacent to every open border cell.
	outside := grid.C(-1, -1)
	var border []grid.Coord
	g.All(func(c grid.Coord, v T) bool {
		if open(v) && (c.Row == 0 || c.Col == 0 || c.Row == g.Rows()-1 || c.Col == g.Cols()-1) {
			border = append(border, c)
		}
		return true
	})

	adj := o.adjacency(func(c grid.Coord) bool {
		v, ok := g.Get(c)
		return ok && open(v)
	})
	cells := o.walk(outside, func(c grid.Coord) []grid.Coord {
		if c == outside {
			return border
		}
		return adj(c)
	})
	cells.Remove(outside)

	return cells
}

// Enclosed returns the open cells not in Exterior.
func Enclosed[T any](g *grid.Grid[T], open func(T) bool, opts ...Option) mapset.Set[grid.Coord] {
	ext := Exterior(g, open, opts...)
	in := mapset.New[grid.Coord]()
	g.All(func(c grid.Coord, v T) bool {
		if open(v) && !ext.Has(c) {
			in.Put(c)
		}
		return true
	})

	return in
}

func apply(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// collect floods from seed through cells accepted by member.
func (o Options) collect(seed grid.Coord, member func(grid.Coord) bool) mapset.Set[grid.Coord] {
	return o.walk(seed, o.adjacency(member))
}

// adjacency yields the member neighbors of a cell under o.Conn.
func (o Options) adjacency(member func(grid.Coord) bool) func(grid.Coord) []grid.Coord {
	return func(c grid.Coord) []grid.Coord {
		var out []grid.Coord
		if o.Conn == Conn8 {
			for _, n := range c.Neighbors8() {
				if member(n) {
					out = append(out, n)
				}
			}
			return out
		}
		for _, n := range c.Neighbors4() {
			if member(n) {
				out = append(out, n)
			}
		}
		return out
	}
}

// walk runs the configured traversal and returns the visited set.
// Neither walker can fail here: no hooks are installed.
func (o Options) walk(start grid.Coord, next func(grid.Coord) []grid.Coord) mapset.Set[grid.Coord] {
	cells := mapset.New[grid.Coord]()
	if o.DepthFirst {
		res, _ := dfs.Walk(start, next)
		for _, c := range res.Order {
			cells.Put(c)
		}
		return cells
	}
	res, _ := bfs.Walk(start, next)
	for _, c := range res.Order {
		cells.Put(c)
	}

	return cells
}

func (o Options) reportBoundary(cells mapset.Set[grid.Coord]) {
	if o.OnBoundary == nil {
		return
	}
	for _, e := range boundary(cells) {
		o.OnBoundary(e.In, e.Facing)
	}
}
