// Package gridkit is a toolkit for puzzles played on rectangular grids:
// typed grids parsed from text, coordinate and direction algebra, weighted
// search with complete predecessor sets, flood-fill regions with perimeter
// and side counts, and cycle detection for fast-forwarding simulations.
//
// Packages:
//
//	grid/       Grid[T], Builder[T], Coord, Direction, Compass, Parse, transforms
//	dijkstra/   generic shortest paths over any comparable state, all equal-cost predecessors
//	bfs/        unit-cost breadth-first walk: depth, parent, order
//	dfs/        depth-first walk with pre/post hooks; longest simple path
//	region/     Fill, Partition, Perimeter, Sides, Exterior, Enclosed
//	cycle/      tortoise-and-hare Detect, Reduce, StateAt
//	memo/       explicit memo table and self-memoising recursion
//	seq/        SplitBy, Ring, ArithMod, Abs
//
// Every algorithm is synchronous and deterministic: iteration follows the
// caller's neighbor order and priority-queue ties break by insertion order,
// so repeated runs produce identical predecessor sets.
//
// Quick ASCII example:
//
//	S.#      Search from S with unit costs:
//	#..      distance(E) = 4
//	#.E      path = (0,0) (0,1) (1,1) (1,2) (2,2)
//
// cmd/gridkit runs the bundled puzzles (fence pricing, reindeer maze,
// crucible, garden walk, rock tilt, pipe loop, hiking trail) against a grid
// file and prints the answers.
package gridkit
