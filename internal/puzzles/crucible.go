package puzzles

import (
	"fmt"

	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/grid"
)

// Crucible is a search state: position, heading and how many blocks it has
// moved in a straight line. Run 0 marks the start, before any move.
type Crucible struct {
	At      grid.Coord
	Heading grid.Direction
	Run     int
}

// MinHeatLoss returns the least heat lost moving a crucible from the top-left
// to the bottom-right block of g. The crucible never reverses, must move at
// least minRun blocks before turning or stopping and at most maxRun blocks
// in a straight line. Entering a block costs its digit.
func MinHeatLoss(g *grid.Grid[int], minRun, maxRun int, opts ...dijkstra.Option[Crucible]) (int, error) {
	if minRun < 0 || maxRun < 1 || minRun > maxRun {
		return 0, fmt.Errorf("%w: min=%d max=%d", ErrRunLimits, minRun, maxRun)
	}
	goal := grid.C(g.Rows()-1, g.Cols()-1)

	next := func(c Crucible) []dijkstra.Edge[Crucible] {
		var edges []dijkstra.Edge[Crucible]
		try := func(d grid.Direction, run int) {
			at := c.At.Add(d)
			if loss, ok := g.Get(at); ok {
				edges = append(edges, dijkstra.Edge[Crucible]{To: Crucible{at, d, run}, Cost: loss})
			}
		}
		if c.Run == 0 {
			for _, d := range grid.Directions4 {
				try(d, 1)
			}
			return edges
		}
		if c.Run < maxRun {
			try(c.Heading, c.Run+1)
		}
		if c.Run >= minRun {
			try(c.Heading.TurnCW(), 1)
			try(c.Heading.TurnCCW(), 1)
		}
		return edges
	}

	all := append([]dijkstra.Option[Crucible]{
		dijkstra.WithGoal(func(c Crucible) bool { return c.At == goal && c.Run >= minRun }),
	}, opts...)
	res, err := dijkstra.Search(Crucible{At: grid.C(0, 0), Heading: grid.Right}, next, all...)
	if err != nil {
		return 0, fmt.Errorf("crucible: %w", err)
	}
	end, _ := res.Goal()
	loss, _ := res.Distance(end)

	return loss, nil
}
