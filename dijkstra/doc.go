// Package dijkstra implements a generic best-first (Dijkstra) search over an
// implicit state space.
//
// Overview:
//
//   - A state is any comparable value. Grid searches usually pair a
//     grid.Coord with auxiliary context (facing, run length, remaining
//     steps); two states with the same position but different context are
//     distinct nodes.
//   - Edges come from a caller-supplied NeighborFunc returning (state, cost)
//     pairs with non-negative integer costs.
//   - Every reached state records its distance and its full predecessor set:
//     all preceding states that reach it at the minimal distance, not just
//     one. OnShortestPaths walks those sets back to find every state lying on
//     any optimal path.
//
// Algorithm:
//
//   - Priority-queue relaxation with lazy decrease-key: improved distances
//     are pushed again and stale heap entries are skipped when popped.
//   - Heap ties are broken by insertion order, so repeated runs produce
//     identical predecessor lists.
//   - A settled (popped) state is never relaxed through again.
//   - With WithGoal the search stops as soon as a goal state is popped; its
//     distance is final because costs are non-negative. WithSettleTies keeps
//     popping states at the goal distance so every equal-cost goal and
//     zero-cost predecessor is recorded.
//
// Complexity:
//
//   - Time:  O((V + E) log E) for V reached states and E generated edges.
//   - Space: O(V + E) for distances, predecessor lists and the heap.
//
// Errors:
//
//   - ErrNilNeighbors     neighbor function is nil.
//   - ErrNegativeCost     an edge with negative cost was generated.
//   - ErrUnreachable      WithGoal was given and no goal state was reached.
//   - ErrOptionViolation  an option was given an invalid value.
//   - ErrNotReached       Path was asked for a state the search never reached.
package dijkstra
