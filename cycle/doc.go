// Package cycle finds the tail length and period of an eventually periodic
// sequence start, next(start), next(next(start)), ... with Floyd's
// tortoise-and-hare algorithm, and fast-forwards long simulations with it.
//
// What:
//
//   - Detect works on comparable states.
//   - DetectBy compares states through a caller key, for states such as
//     grids that are not comparable themselves.
//   - Cycle.Reduce maps a huge step count N to an equivalent small one;
//     StateAt replays only the reduced count.
//
// The sequence must eventually repeat. For a transition function over an
// unbounded state space Detect does not return; that is the caller's
// responsibility.
//
// Complexity: O(Offset + Period) calls to next and key, O(1) extra memory.
package cycle
