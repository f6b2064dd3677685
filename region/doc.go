// Package region partitions a grid.Grid into maximal connected regions and
// derives per-region statistics from their cell sets.
//
// What:
//
//   - Fill grows one region from a seed: a neighbor joins iff it is in bounds,
//     unvisited and same(seedValue, neighborValue) holds.
//   - Partition fills from every unvisited cell in row-major order, so each
//     cell lands in exactly one Region and region order is deterministic.
//   - Perimeter counts member edges facing a non-member (or the border);
//     Sides merges collinear, contiguous boundary edges into straight sides.
//   - Exterior and Enclosed classify open cells as reachable from the border
//     or trapped inside walls.
//
// Traversal is breadth-first through package bfs, or depth-first through
// package dfs with WithDepthFirst; the resulting sets are identical.
//
// Complexity:
//
//   - Fill, Partition, Exterior: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//   - Perimeter, Boundary:       O(|region|).
//   - Sides:                     O(|region|·log|region|) for sorting edges.
//
// Errors:
//
//   - ErrSeedOutOfBounds: Fill seed outside the grid.
package region
