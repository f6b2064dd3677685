package dijkstra

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
)

// Search runs Dijkstra from initial over the states produced by neighbors.
//
// Without WithGoal the reachable space is exhausted (or capped by
// MaxDistance) and every returned distance is final. With WithGoal the search
// stops when a goal is popped; if none is, Search returns ErrUnreachable.
//
// Preconditions and validation (in order):
//  1. neighbors must be non-nil (ErrNilNeighbors).
//  2. options must be valid (ErrOptionViolation).
//  3. every generated edge cost must be ≥ 0 (ErrNegativeCost, wrapped).
func Search[S comparable](initial S, neighbors NeighborFunc[S], opts ...Option[S]) (*Result[S], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	cfg := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &runner[S]{
		next:    neighbors,
		options: cfg,
		res: &Result[S]{
			initial: initial,
			dist:    make(map[S]int),
			preds:   make(map[S][]S),
			settled: make(map[S]bool),
		},
		pq: heap.New[item[S]](func(a, b item[S]) bool {
			if a.dist != b.dist {
				return a.dist < b.dist
			}
			return a.seq < b.seq
		}),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	if cfg.Goal != nil && len(r.res.goals) == 0 {
		return nil, ErrUnreachable
	}

	return r.res, nil
}

// ShortestDistance is Search with a goal, returning only the goal distance.
func ShortestDistance[S comparable](initial S, neighbors NeighborFunc[S], goal func(S) bool) (int, error) {
	res, err := Search(initial, neighbors, WithGoal(goal))
	if err != nil {
		return 0, err
	}
	g, _ := res.Goal()
	d, _ := res.Distance(g)

	return d, nil
}

// item is one heap entry. seq is the push counter used to break ties.
type item[S comparable] struct {
	state S
	dist  int
	seq   uint64
}

// runner holds the mutable state for a single Search execution.
type runner[S comparable] struct {
	next    NeighborFunc[S]
	options Options[S]
	res     *Result[S]
	pq      *heap.Heap[item[S]]
	seq     uint64

	goalDist int
}

func (r *runner[S]) init() {
	r.res.dist[r.res.initial] = 0
	r.push(r.res.initial, 0)
}

func (r *runner[S]) push(s S, d int) {
	r.pq.Push(item[S]{state: s, dist: d, seq: r.seq})
	r.seq++
}

// process pops states in distance order until the heap is empty, the
// distance cap is exceeded, or a goal (and its ties) has been settled.
func (r *runner[S]) process() error {
	cfg := r.options
	for r.pq.Size() > 0 {
		it, _ := r.pq.Pop()
		u := it.state

		// Stale entry: a shorter distance was pushed and settled already.
		if r.res.settled[u] {
			continue
		}
		if it.dist > cfg.MaxDistance {
			break
		}
		if len(r.res.goals) > 0 && it.dist > r.goalDist {
			break
		}

		r.res.settled[u] = true
		r.res.order = append(r.res.order, u)
		cfg.OnSettle(u, it.dist)

		if cfg.Goal != nil && cfg.Goal(u) {
			if len(r.res.goals) == 0 {
				r.goalDist = it.dist
			}
			r.res.goals = append(r.res.goals, u)
			if !cfg.SettleTies {
				return nil
			}
		}

		if err := r.relax(u, it.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge out of u. A strictly shorter distance replaces
// the predecessor list; an equal one appends u to it. Settled states keep
// their distance and only gain predecessors.
func (r *runner[S]) relax(u S, du int) error {
	for _, e := range r.next(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, u, e.To, e.Cost)
		}
		v := e.To
		alt := du + e.Cost
		if alt > r.options.MaxDistance {
			continue
		}

		cur, seen := r.res.dist[v]
		if r.res.settled[v] {
			// Zero-cost edges can tie with a distance that is already final.
			if alt == cur && !contains(r.res.preds[v], u) {
				r.res.preds[v] = append(r.res.preds[v], u)
			}
			continue
		}
		switch {
		case !seen || alt < cur:
			r.res.dist[v] = alt
			r.res.preds[v] = append(r.res.preds[v][:0], u)
			r.push(v, alt)
		case alt == cur:
			if !contains(r.res.preds[v], u) {
				r.res.preds[v] = append(r.res.preds[v], u)
			}
		}
	}

	return nil
}

func contains[S comparable](s []S, v S) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
