package puzzles

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/region"
)

// Pipe is a tile of the pipe maze.
type Pipe uint8

const (
	Ground Pipe = iota
	NS          // |
	EW          // -
	NE          // L
	NW          // J
	SW          // 7
	SE          // F
	Start       // S, shape inferred from its neighbors
)

var pipeRunes = map[rune]Pipe{
	'.': Ground, '|': NS, '-': EW, 'L': NE, 'J': NW, '7': SW, 'F': SE, 'S': Start,
}

// pipeEnds is the pair of directions each shape connects.
var pipeEnds = [...][]grid.Direction{
	Ground: nil,
	NS:     {grid.Up, grid.Down},
	EW:     {grid.Right, grid.Left},
	NE:     {grid.Up, grid.Right},
	NW:     {grid.Up, grid.Left},
	SW:     {grid.Down, grid.Left},
	SE:     {grid.Down, grid.Right},
	Start:  nil,
}

// ParsePipe is a grid.CellMapper for the pipe alphabet.
var ParsePipe = grid.RuneTable(pipeRunes)

// Connects reports whether p has an opening toward d.
func (p Pipe) Connects(d grid.Direction) bool {
	for _, e := range pipeEnds[p] {
		if e == d {
			return true
		}
	}
	return false
}

// FindLoop returns the cells of the loop through 'S' in travel order,
// starting at 'S'.
func FindLoop(g *grid.Grid[Pipe]) ([]grid.Coord, error) {
	start, ok := g.Find(func(p Pipe) bool { return p == Start })
	if !ok {
		return nil, fmt.Errorf("%w: S", ErrMissingMarker)
	}

	var ends []grid.Direction
	for _, d := range grid.Directions4 {
		if p, ok := g.Get(start.Add(d)); ok && p.Connects(d.Opposite()) {
			ends = append(ends, d)
		}
	}
	if len(ends) != 2 {
		return nil, fmt.Errorf("%w: found %d", ErrStartPipe, len(ends))
	}

	loop := []grid.Coord{start}
	at, heading := start.Add(ends[0]), ends[0]
	for at != start {
		loop = append(loop, at)
		p := g.At(at)
		out, ok := otherEnd(p, heading.Opposite())
		if !ok {
			return nil, fmt.Errorf("%w: broken loop at %v", ErrStartPipe, at)
		}
		at, heading = at.Add(out), out
		if !g.InBounds(at) {
			return nil, fmt.Errorf("%w: loop leaves the map at %v", ErrStartPipe, at)
		}
	}
	return loop, nil
}

// otherEnd returns the opening of p that is not in.
func otherEnd(p Pipe, in grid.Direction) (grid.Direction, bool) {
	ends := pipeEnds[p]
	if len(ends) != 2 || (ends[0] != in && ends[1] != in) {
		return 0, false
	}
	if ends[0] == in {
		return ends[1], true
	}
	return ends[0], true
}

// FarthestOnLoop is the number of steps along the loop to the point
// farthest from 'S'.
func FarthestOnLoop(g *grid.Grid[Pipe]) (int, error) {
	loop, err := FindLoop(g)
	if err != nil {
		return 0, err
	}
	return len(loop) / 2, nil
}

// EnclosedByLoop counts tiles inside the loop. The map is redrawn at double
// resolution with a one-cell margin so that gaps between touching pipes
// become passable; tiles not reachable from the margin are inside.
func EnclosedByLoop(g *grid.Grid[Pipe]) (int, error) {
	loop, err := FindLoop(g)
	if err != nil {
		return 0, err
	}

	fine, _ := grid.NewBuilder(2*g.Rows()+1, 2*g.Cols()+1, false)
	scale := func(c grid.Coord) grid.Coord { return grid.C(2*c.Row+1, 2*c.Col+1) }
	for i, c := range loop {
		n := loop[(i+1)%len(loop)]
		_ = fine.Set(scale(c), true)
		_ = fine.Set(grid.C(c.Row+n.Row+1, c.Col+n.Col+1), true)
	}
	wall := fine.Build()

	outside := region.Exterior(wall, func(w bool) bool { return !w })
	onLoop := make(map[grid.Coord]bool, len(loop))
	for _, c := range loop {
		onLoop[c] = true
	}

	inside := 0
	g.All(func(c grid.Coord, _ Pipe) bool {
		if !onLoop[c] && !outside.Has(scale(c)) {
			inside++
		}
		return true
	})
	return inside, nil
}
