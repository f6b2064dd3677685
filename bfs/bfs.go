package bfs

import (
	"fmt"

	"github.com/zyedidia/generic/queue"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  func(S) []S
	opts  Options[S]
	queue *queue.Queue[queueItem[S]]
	res   *Result[S]
}

// Walk runs breadth-first search from start, expanding states with next and
// applying any number of functional Options.
// Returns ErrNilNeighbors for a nil next, ErrOptionViolation for bad options,
// or any error returned by the OnVisit hook (wrapped).
func Walk[S comparable](start S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	if next == nil {
		return nil, ErrNilNeighbors
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next:  next,
		opts:  o,
		queue: queue.New[queueItem[S]](),
		res: &Result[S]{
			Start:  start,
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}

	// Seed queue with start state (no parent)
	w.res.Depth[start] = 0
	w.queue.Enqueue(queueItem[S]{state: start})

	return w.res, w.loop()
}

// Distances is Walk without options, returning only the depth map.
func Distances[S comparable](start S, next func(S) []S) map[S]int {
	res, _ := Walk(start, next)
	if res == nil {
		return nil
	}
	return res.Depth
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker[S]) loop() error {
	for !w.queue.Empty() {
		item := w.queue.Dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the state in Order and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.state)
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor, recording its depth and parent at enqueue time.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.next(item.state) {
		if !w.opts.FilterNeighbor(item.state, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.state
		w.queue.Enqueue(queueItem[S]{state: nbr, depth: nextDepth})
	}
}
