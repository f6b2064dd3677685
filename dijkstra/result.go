package dijkstra

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Result maps every reached state to its distance and predecessor set.
// Distances of settled states are final; states reached but never popped
// (the search stopped at a goal or at MaxDistance) hold tentative values.
type Result[S comparable] struct {
	initial S
	dist    map[S]int
	preds   map[S][]S
	settled map[S]bool
	order   []S
	goals   []S
}

// Initial returns the start state.
func (r *Result[S]) Initial() S { return r.initial }

// Distance returns the best known distance to s and whether s was reached.
func (r *Result[S]) Distance(s S) (int, bool) {
	d, ok := r.dist[s]
	return d, ok
}

// Settled reports whether s was popped, i.e. its distance is final.
func (r *Result[S]) Settled(s S) bool { return r.settled[s] }

// Predecessors returns every state that reaches s at its minimal distance,
// in the order they were discovered. The initial state has none.
func (r *Result[S]) Predecessors(s S) []S {
	p := r.preds[s]
	out := make([]S, len(p))
	copy(out, p)
	return out
}

// Reached returns the number of states with a recorded distance.
func (r *Result[S]) Reached() int { return len(r.dist) }

// Order returns the settled states in the order they were popped.
func (r *Result[S]) Order() []S {
	out := make([]S, len(r.order))
	copy(out, r.order)
	return out
}

// Goal returns the first goal state popped, if any.
func (r *Result[S]) Goal() (S, bool) {
	if len(r.goals) == 0 {
		var zero S
		return zero, false
	}
	return r.goals[0], true
}

// Goals returns every goal state settled. Without WithSettleTies this is at
// most one state.
func (r *Result[S]) Goals() []S {
	out := make([]S, len(r.goals))
	copy(out, r.goals)
	return out
}

// Min returns the settled state with the lowest distance among those
// satisfying pred, earliest settled on ties.
func (r *Result[S]) Min(pred func(S) bool) (S, int, bool) {
	// order is non-decreasing in distance, so the first match wins.
	for _, s := range r.order {
		if pred(s) {
			return s, r.dist[s], true
		}
	}
	var zero S
	return zero, 0, false
}

// Path returns one shortest path from the initial state to target,
// following the first recorded predecessor at every step.
func (r *Result[S]) Path(target S) ([]S, error) {
	if _, ok := r.dist[target]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, target)
	}
	path := []S{target}
	for cur := target; cur != r.initial; {
		p := r.preds[cur]
		if len(p) == 0 {
			break
		}
		cur = p[0]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// OnShortestPaths returns every state lying on at least one shortest path
// from the initial state to any of targets, targets included. Targets that
// were never reached are ignored.
func (r *Result[S]) OnShortestPaths(targets ...S) mapset.Set[S] {
	seen := mapset.New[S]()
	stack := make([]S, 0, len(targets))
	for _, t := range targets {
		if _, ok := r.dist[t]; ok && !seen.Has(t) {
			seen.Put(t)
			stack = append(stack, t)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range r.preds[s] {
			if !seen.Has(p) {
				seen.Put(p)
				stack = append(stack, p)
			}
		}
	}

	return seen
}
