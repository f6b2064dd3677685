package puzzles

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/grid"
)

// Scoring for the reindeer maze.
const (
	StepCost = 1
	TurnCost = 1000
)

// Pose is a reindeer position plus the way it faces.
type Pose struct {
	At     grid.Coord
	Facing grid.Direction
}

// MazeResult is the best score and the tiles on at least one best path.
type MazeResult struct {
	Score int
	Tiles mapset.Set[grid.Coord]
}

// ReindeerMaze finds the cheapest route from 'S' (facing east) to 'E' on a
// '#'-walled maze, where stepping forward costs StepCost and turning 90°
// in place costs TurnCost. Extra options are passed to the search.
func ReindeerMaze(g *grid.Grid[rune], opts ...dijkstra.Option[Pose]) (MazeResult, error) {
	start, ok := g.Find(func(r rune) bool { return r == 'S' })
	if !ok {
		return MazeResult{}, fmt.Errorf("%w: S", ErrMissingMarker)
	}
	end, ok := g.Find(func(r rune) bool { return r == 'E' })
	if !ok {
		return MazeResult{}, fmt.Errorf("%w: E", ErrMissingMarker)
	}

	next := func(p Pose) []dijkstra.Edge[Pose] {
		edges := []dijkstra.Edge[Pose]{
			{To: Pose{p.At, p.Facing.TurnCW()}, Cost: TurnCost},
			{To: Pose{p.At, p.Facing.TurnCCW()}, Cost: TurnCost},
		}
		ahead := p.At.Add(p.Facing)
		if v, ok := g.Get(ahead); ok && v != '#' {
			edges = append(edges, dijkstra.Edge[Pose]{To: Pose{ahead, p.Facing}, Cost: StepCost})
		}
		return edges
	}

	all := append([]dijkstra.Option[Pose]{
		dijkstra.WithGoal(func(p Pose) bool { return p.At == end }),
		dijkstra.WithSettleTies[Pose](),
	}, opts...)
	res, err := dijkstra.Search(Pose{start, grid.Right}, next, all...)
	if err != nil {
		return MazeResult{}, fmt.Errorf("reindeer maze: %w", err)
	}

	goal, _ := res.Goal()
	score, _ := res.Distance(goal)
	tiles := mapset.New[grid.Coord]()
	res.OnShortestPaths(res.Goals()...).Each(func(p Pose) { tiles.Put(p.At) })

	return MazeResult{Score: score, Tiles: tiles}, nil
}
