// Package dfs implements depth-first search over states produced by a
// neighbor function, plus an exhaustive longest-simple-path search.
//
// Key features:
//   - Walk(start, next, opts...): recursive traversal with Depth, Parent and post-order
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - LongestPath(start, next, goal): maximum-weight simple path by backtracking
//
// Complexity:
//
//   - Walk:        O(V + E) time, O(V) memory for the recursion stack and metadata maps.
//   - LongestPath: exponential in the worst case; intended for sparse junction graphs.
//
// Errors:
//
//   - ErrNilNeighbors           if next is nil.
//   - ErrNoPath                 if LongestPath reaches no goal.
//   - any error returned by OnVisit or OnExit (wrapped).
package dfs

import (
	"fmt"
)

// walker encapsulates state during DFS.
type walker[S comparable] struct {
	next func(S) []S
	opts Options[S]
	res  *Result[S]
}

// Walk performs depth-first search from start.
// Returns Result or an error if aborted by a hook; on abort the partial
// Result is returned alongside the error.
func Walk[S comparable](start S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	// 1. Validate input
	if next == nil {
		return nil, ErrNilNeighbors
	}

	// 2. Apply options
	o := DefaultOptions[S]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize result
	res := &Result[S]{
		Depth:   make(map[S]int),
		Parent:  make(map[S]S),
		Visited: make(map[S]bool),
	}
	w := &walker[S]{next: next, opts: o, res: res}

	// 4. Traverse the single tree rooted at start
	err := w.traverse(start, 0)

	// 5. Expose diagnostics
	res.SkippedNeighbors = w.opts.skipped

	return res, err
}

// traverse visits s at the given depth, recursing to unvisited neighbors.
func (w *walker[S]) traverse(s S, depth int) error {
	// 1. Mark visited and record depth
	w.res.Visited[s] = true
	w.res.Depth[s] = depth

	// 2. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(s, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", s, err)
		}
	}

	// 3. Explore each neighbor unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, n := range w.next(s) {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(s, n) {
				w.opts.skipped++
				continue
			}
			if w.res.Visited[n] {
				continue
			}
			w.res.Parent[n] = s
			if err := w.traverse(n, depth+1); err != nil {
				return err
			}
		}
	}

	// 4. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(s); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", s, err)
		}
	}

	// 5. Record finish order
	w.res.Order = append(w.res.Order, s)

	return nil
}

// LongestPath returns the maximum total weight over all simple paths from
// start to a state satisfying goal, together with one such path.
// A state may appear at most once on a path. Returns ErrNoPath if no goal
// is reachable.
func LongestPath[S comparable](start S, next func(S) []Edge[S], goal func(S) bool) (int, []S, error) {
	if next == nil {
		return 0, nil, ErrNilNeighbors
	}
	ls := &longest[S]{
		next:   next,
		goal:   goal,
		onPath: map[S]bool{start: true},
		path:   []S{start},
		best:   -1,
	}
	ls.search(start, 0)
	if ls.best < 0 {
		return 0, nil, fmt.Errorf("%w: from %v", ErrNoPath, start)
	}

	return ls.best, ls.bestPath, nil
}

// longest holds backtracking state for LongestPath.
type longest[S comparable] struct {
	next     func(S) []Edge[S]
	goal     func(S) bool
	onPath   map[S]bool
	path     []S
	best     int
	bestPath []S
}

func (l *longest[S]) search(s S, dist int) {
	if l.goal(s) {
		if dist > l.best {
			l.best = dist
			l.bestPath = append(l.bestPath[:0], l.path...)
		}
		// goals are terminal
		return
	}
	for _, e := range l.next(s) {
		if l.onPath[e.To] {
			continue
		}
		l.onPath[e.To] = true
		l.path = append(l.path, e.To)
		l.search(e.To, dist+e.Weight)
		l.path = l.path[:len(l.path)-1]
		delete(l.onPath, e.To)
	}
}
