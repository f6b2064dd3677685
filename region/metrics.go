package region

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridkit/grid"
)

// Perimeter counts member edges whose 4-neighbor is outside the region or
// outside the grid.
func Perimeter[T any](r Region[T]) int {
	n := 0
	r.Cells.Each(func(c grid.Coord) {
		for _, nb := range c.Neighbors4() {
			if !r.Cells.Has(nb) {
				n++
			}
		}
	})
	return n
}

// Boundary lists the boundary edges of r sorted by cell (row-major) then
// facing direction.
func Boundary[T any](r Region[T]) []Edge { return boundary(r.Cells) }

// Sides counts maximal straight boundary segments. Edges are grouped by
// facing direction and by the line they lie on; within a group, each run of
// consecutive positions along the line is one side.
func Sides[T any](r Region[T]) int {
	type line struct {
		facing grid.Direction
		at     int
	}
	groups := make(map[line][]int)
	for _, e := range boundary(r.Cells) {
		if e.Facing.Horizontal() {
			// left/right edges are vertical lines, positions run down the rows
			k := line{e.Facing, e.In.Col}
			groups[k] = append(groups[k], e.In.Row)
		} else {
			k := line{e.Facing, e.In.Row}
			groups[k] = append(groups[k], e.In.Col)
		}
	}

	sides := 0
	for _, pos := range groups {
		slices.Sort(pos)
		sides++
		for i := 1; i < len(pos); i++ {
			if pos[i] != pos[i-1]+1 {
				sides++
			}
		}
	}
	return sides
}

func boundary(cells mapset.Set[grid.Coord]) []Edge {
	var out []Edge
	for _, c := range sorted(cells) {
		for _, d := range grid.Directions4 {
			if !cells.Has(c.Add(d)) {
				out = append(out, Edge{In: c, Facing: d})
			}
		}
	}
	return out
}

func sorted(cells mapset.Set[grid.Coord]) []grid.Coord {
	out := make([]grid.Coord, 0, cells.Size())
	cells.Each(func(c grid.Coord) { out = append(out, c) })
	slices.SortFunc(out, func(a, b grid.Coord) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}
