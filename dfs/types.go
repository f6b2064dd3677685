// Package dfs defines types and options for depth-first traversal of an
// implicit state space, including pre-/post-order hooks, depth limiting,
// neighbor filtering and basic diagnostics.
package dfs

import (
	"errors"
)

var (
	// ErrNilNeighbors is returned when a nil neighbor function is passed to
	// Walk or LongestPath.
	ErrNilNeighbors = errors.New("dfs: neighbor function is nil")

	// ErrNoPath indicates that LongestPath found no simple path from the
	// start to any goal state.
	ErrNoPath = errors.New("dfs: no path to goal")
)

// Option configures optional behavior of DFS traversal.
// Use with Walk(start, next, opts...).
type Option[S comparable] func(*Options[S])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[S comparable] struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a state (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(s S, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a state
	// have been explored (post-order), before appending to Result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(s S) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start state. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each transition before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(curr, next S) bool

	// skipped counts transitions rejected by FilterNeighbor.
	skipped int
}

// DefaultOptions returns Options with:
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{MaxDepth: -1}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a state is first discovered.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a state's descendants have been fully explored.
func WithOnExit[S comparable](fn func(s S) error) Option[S] {
	return func(o *Options[S]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start state is visited; a negative limit
// removes the bound.
func WithMaxDepth[S comparable](limit int) Option[S] {
	return func(o *Options[S]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters transitions.
// If fn(curr, next) == false, that neighbor is skipped and counted in
// Result.SkippedNeighbors.
func WithFilterNeighbor[S comparable](fn func(curr, next S) bool) Option[S] {
	return func(o *Options[S]) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[S comparable] struct {
	// Order records states in the sequence they finished (post-order).
	Order []S

	// Depth maps each state to its tree depth from the start.
	Depth map[S]int

	// Parent maps each state to the state from which it was first discovered.
	// The start state does not appear in this map.
	Parent map[S]S

	// Visited flags which states were reached during the traversal.
	Visited map[S]bool

	// SkippedNeighbors reports how many transitions were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}

// Edge is a weighted transition used by LongestPath. Weight lets callers
// compress corridors into single edges between junctions.
type Edge[S comparable] struct {
	To     S
	Weight int
}
