package puzzles

import (
	"fmt"

	"github.com/katalvlaran/gridkit/dfs"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/memo"
)

var slopes = map[rune]grid.Direction{'^': grid.Up, '>': grid.Right, 'v': grid.Down, '<': grid.Left}

// LongestHike returns the length of the longest hike from the open tile in
// the top row to the open tile in the bottom row that never visits a tile
// twice. When slippery, a slope tile can only be left in its direction.
func LongestHike(g *grid.Grid[rune], slippery bool) (int, error) {
	start, ok := findInRow(g, 0)
	if !ok {
		return 0, fmt.Errorf("%w: no entrance in top row", ErrMissingMarker)
	}
	end, ok := findInRow(g, g.Rows()-1)
	if !ok {
		return 0, fmt.Errorf("%w: no exit in bottom row", ErrMissingMarker)
	}

	t := &trailMap{g: g, slippery: slippery, start: start, end: end}
	corridors := memo.New[grid.Coord, []dfs.Edge[grid.Coord]]()
	next := func(j grid.Coord) []dfs.Edge[grid.Coord] {
		return corridors.Do(j, func() []dfs.Edge[grid.Coord] { return t.corridors(j) })
	}

	best, _, err := dfs.LongestPath(start, next, func(c grid.Coord) bool { return c == end })
	if err != nil {
		return 0, fmt.Errorf("hike: %w", err)
	}
	return best, nil
}

func findInRow(g *grid.Grid[rune], row int) (grid.Coord, bool) {
	for col, r := range g.Row(row) {
		if r == '.' {
			return grid.C(row, col), true
		}
	}
	return grid.Coord{}, false
}

// trailMap compresses the trail into a graph of junctions joined by
// corridors.
type trailMap struct {
	g          *grid.Grid[rune]
	slippery   bool
	start, end grid.Coord
}

func (t *trailMap) open(c grid.Coord) bool {
	v, ok := t.g.Get(c)
	return ok && v != '#'
}

func (t *trailMap) canLeave(c grid.Coord, d grid.Direction) bool {
	if !t.slippery {
		return true
	}
	forced, ok := slopes[t.g.At(c)]
	return !ok || forced == d
}

func (t *trailMap) junction(c grid.Coord) bool {
	if c == t.start || c == t.end {
		return true
	}
	n := 0
	for _, nb := range c.Neighbors4() {
		if t.open(nb) {
			n++
		}
	}
	return n >= 3
}

// corridors follows every exit of junction j to the next junction.
func (t *trailMap) corridors(j grid.Coord) []dfs.Edge[grid.Coord] {
	var out []dfs.Edge[grid.Coord]
	for _, d := range grid.Directions4 {
		cur := j.Add(d)
		if !t.open(cur) || !t.canLeave(j, d) {
			continue
		}
		prev, length, alive := j, 1, true
		for alive && !t.junction(cur) {
			alive = false
			for _, e := range grid.Directions4 {
				n := cur.Add(e)
				if n != prev && t.open(n) && t.canLeave(cur, e) {
					prev, cur, alive = cur, n, true
					length++
					break
				}
			}
		}
		if alive {
			out = append(out, dfs.Edge[grid.Coord]{To: cur, Weight: length})
		}
	}
	return out
}
