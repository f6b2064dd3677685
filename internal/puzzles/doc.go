// Package puzzles holds the grid puzzles served by cmd/gridkit. Each one is
// a thin caller of the toolkit packages: it parses its alphabet into a
// grid.Grid, builds a neighbor function over its own state type and hands
// it to dijkstra, bfs, dfs, region or cycle.
package puzzles

import "errors"

var (
	// ErrMissingMarker is returned when a required start or end marker is absent.
	ErrMissingMarker = errors.New("puzzles: missing marker")

	// ErrRunLimits is returned for inconsistent crucible run limits.
	ErrRunLimits = errors.New("puzzles: invalid run limits")

	// ErrStartPipe is returned when the start tile does not join exactly two pipes.
	ErrStartPipe = errors.New("puzzles: start does not join exactly two pipes")

	// ErrNegativeSteps is returned for a negative step budget.
	ErrNegativeSteps = errors.New("puzzles: negative step count")
)
