package puzzles

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridkit/bfs"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/memo"
)

// walkState is the memo key: the plots reachable from at with left steps to go.
type walkState struct {
	left int
	at   grid.Coord
}

// ReachableIn counts the garden plots the elf can stand on after exactly
// steps moves from 'S', never stepping onto '#' or off the map. Each
// (steps left, position) pair is solved once.
func ReachableIn(g *grid.Grid[rune], steps int) (int, error) {
	start, err := walkStart(g, steps)
	if err != nil {
		return 0, err
	}

	var ends func(walkState) mapset.Set[grid.Coord]
	ends, _ = memo.Recursive(func(self func(walkState) mapset.Set[grid.Coord], s walkState) mapset.Set[grid.Coord] {
		out := mapset.New[grid.Coord]()
		if s.left == 0 {
			out.Put(s.at)
			return out
		}
		for _, n := range s.at.Neighbors4() {
			if v, ok := g.Get(n); ok && v != '#' {
				self(walkState{s.left - 1, n}).Each(func(c grid.Coord) { out.Put(c) })
			}
		}
		return out
	})

	return ends(walkState{steps, start}).Size(), nil
}

// ReachableByParity answers the same question from one breadth-first walk:
// a plot is reachable in exactly steps moves iff its distance is at most
// steps and has the same parity. With infinite set the map repeats in every
// direction.
func ReachableByParity(g *grid.Grid[rune], steps int, infinite bool) (int, error) {
	start, err := walkStart(g, steps)
	if err != nil {
		return 0, err
	}
	if steps == 0 {
		return 1, nil
	}

	open := func(c grid.Coord) bool {
		if infinite {
			return g.WrapGet(c) != '#'
		}
		v, ok := g.Get(c)
		return ok && v != '#'
	}
	return countByParity(start, steps, open)
}

// ReachableOnTiles solves the infinite walk on a finite board: the map is
// tiled far enough around the centre copy that steps moves cannot reach
// the edge.
func ReachableOnTiles(g *grid.Grid[rune], steps int) (int, error) {
	start, err := walkStart(g, steps)
	if err != nil {
		return 0, err
	}
	if steps == 0 {
		return 1, nil
	}

	plain := grid.Map(g, func(_ grid.Coord, r rune) rune {
		if r == 'S' {
			return '.'
		}
		return r
	})
	kr, kc := 2*(steps/g.Rows()+1)+1, 2*(steps/g.Cols()+1)+1
	board, err := plain.Tile(kr, kc)
	if err != nil {
		return 0, err
	}
	centre := grid.C(kr/2*g.Rows()+start.Row, kc/2*g.Cols()+start.Col)

	return countByParity(centre, steps, func(c grid.Coord) bool {
		v, ok := board.Get(c)
		return ok && v != '#'
	})
}

// countByParity walks at most steps from start and counts the cells whose
// distance has the parity of steps.
func countByParity(start grid.Coord, steps int, open func(grid.Coord) bool) (int, error) {
	res, err := bfs.Walk(start, func(c grid.Coord) []grid.Coord {
		var out []grid.Coord
		for _, n := range c.Neighbors4() {
			if open(n) {
				out = append(out, n)
			}
		}
		return out
	}, bfs.WithMaxDepth[grid.Coord](steps))
	if err != nil {
		return 0, err
	}

	n := 0
	for _, c := range res.Order {
		if res.Depth[c]%2 == steps%2 {
			n++
		}
	}
	return n, nil
}

func walkStart(g *grid.Grid[rune], steps int) (grid.Coord, error) {
	if steps < 0 {
		return grid.Coord{}, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}
	start, ok := g.Find(func(r rune) bool { return r == 'S' })
	if !ok {
		return grid.Coord{}, fmt.Errorf("%w: S", ErrMissingMarker)
	}
	return start, nil
}
