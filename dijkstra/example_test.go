package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/grid"
)

// ExampleSearch finds the cheapest route across a weighted digit grid where
// entering a cell costs its value.
func ExampleSearch() {
	g, _ := grid.Parse("131\n919\n111", grid.Digits)
	next := func(c grid.Coord) []dijkstra.Edge[grid.Coord] {
		var out []dijkstra.Edge[grid.Coord]
		for _, n := range c.Neighbors4() {
			if cost, ok := g.Get(n); ok {
				out = append(out, dijkstra.Edge[grid.Coord]{To: n, Cost: cost})
			}
		}
		return out
	}
	goal := grid.C(2, 2)
	res, err := dijkstra.Search(grid.C(0, 0), next, dijkstra.WithGoal(func(c grid.Coord) bool { return c == goal }))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := res.Distance(goal)
	path, _ := res.Path(goal)
	fmt.Println("cost:", d)
	fmt.Println("path:", path)
	// Output:
	// cost: 6
	// path: [(0,0) (0,1) (1,1) (2,1) (2,2)]
}

// ExampleResult_OnShortestPaths counts the cells lying on any shortest path
// between opposite corners of an open 3×3 board: all of them.
func ExampleResult_OnShortestPaths() {
	g, _ := grid.ParseRunes("...\n...\n...")
	next := func(c grid.Coord) []dijkstra.Edge[grid.Coord] {
		var out []dijkstra.Edge[grid.Coord]
		for _, n := range c.Neighbors4() {
			if _, ok := g.Get(n); ok {
				out = append(out, dijkstra.Edge[grid.Coord]{To: n, Cost: 1})
			}
		}
		return out
	}
	res, _ := dijkstra.Search(grid.C(0, 0), next)
	fmt.Println(res.OnShortestPaths(grid.C(2, 2)).Size())
	// Output: 9
}
