package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilNeighbors is returned if the neighbor function is nil.
	ErrNilNeighbors = errors.New("bfs: neighbor function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a state that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize Walk.
type Options[S comparable] struct {
	// OnVisit is called when visiting a state. If it returns an error,
	// Walk aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip transitions by returning false.
	FilterNeighbor func(curr, next S) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and a
// no-op visit hook.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		OnVisit:        func(S, int) error { return nil },
		FilterNeighbor: func(_, _ S) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips transitions when fn returns false.
func WithFilterNeighbor[S comparable](fn func(curr, next S) bool) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order:  states visited, in visit sequence.
//   - Depth:  map from state to its distance (in steps) from the start.
//   - Parent: map from state to its predecessor in the BFS tree.
type Result[S comparable] struct {
	Start  S
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// Reached reports whether s was visited.
func (r *Result[S]) Reached(s S) bool {
	_, ok := r.Depth[s]
	return ok
}

// PathTo reconstructs the path from the start state to dest.
// Returns an error wrapping ErrNoPath if dest was not reached.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v not reached", ErrNoPath, dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// AtDepth returns the visited states whose depth equals d, in visit order.
func (r *Result[S]) AtDepth(d int) []S {
	var out []S
	for _, s := range r.Order {
		if r.Depth[s] == d {
			out = append(out, s)
		}
	}
	return out
}
