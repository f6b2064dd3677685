package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Search and Result methods.
var (
	// ErrNilNeighbors indicates a nil NeighborFunc.
	ErrNilNeighbors = errors.New("dijkstra: neighbor function is nil")

	// ErrNegativeCost indicates that a generated edge had a negative cost.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrUnreachable indicates that the state space was exhausted (or capped by
	// MaxDistance) without popping a goal state.
	ErrUnreachable = errors.New("dijkstra: no goal state is reachable")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNotReached indicates a query about a state the search never reached.
	ErrNotReached = errors.New("dijkstra: state not reached")
)

// Edge is one outgoing transition produced by a NeighborFunc.
type Edge[S comparable] struct {
	To   S
	Cost int
}

// NeighborFunc lists the transitions out of a state. It must be
// deterministic: the order of the returned edges fixes the order in which
// predecessors are recorded.
type NeighborFunc[S comparable] func(S) []Edge[S]

// Option configures Search.
type Option[S comparable] func(*Options[S])

// Options holds the configuration of one Search call.
type Options[S comparable] struct {
	// Goal, if non-nil, stops the search when a state satisfying it is popped.
	Goal func(S) bool

	// SettleTies keeps popping after the first goal while the next state's
	// distance equals the goal distance.
	SettleTies bool

	// MaxDistance stops exploration past this distance. Default math.MaxInt.
	MaxDistance int

	// OnSettle is called once for every popped state with its final distance.
	OnSettle func(s S, dist int)

	err error
}

// DefaultOptions returns exhaustive search with no distance cap.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		MaxDistance: math.MaxInt,
		OnSettle:    func(S, int) {},
	}
}

// WithGoal stops the search at the first popped state satisfying goal.
func WithGoal[S comparable](goal func(S) bool) Option[S] {
	return func(o *Options[S]) {
		o.Goal = goal
	}
}

// WithSettleTies keeps settling states whose distance equals the first goal's
// distance, collecting every goal at that distance. Only meaningful together
// with WithGoal.
func WithSettleTies[S comparable]() Option[S] {
	return func(o *Options[S]) {
		o.SettleTies = true
	}
}

// WithMaxDistance skips states whose distance would exceed max.
//
//	max >= 0: cap exploration
//	max < 0:  invalid option → ErrOptionViolation
func WithMaxDistance[S comparable](max int) Option[S] {
	return func(o *Options[S]) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithOnSettle registers a hook run for every settled state.
func WithOnSettle[S comparable](fn func(s S, dist int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
