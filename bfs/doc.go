// Package bfs provides breadth-first search over an implicit state space
// given by a neighbor function, returning unit-cost distances (depths),
// parent links and visit order.
//
// States are any comparable value; grid callers typically use grid.Coord or a
// struct of coordinate plus context. Walk explores states in increasing depth
// from a start state, with an optional visit hook, depth limit and neighbor
// filter. It is the unweighted counterpart of package dijkstra and the
// default traversal of package region.
//
// Complexity: O(V + E) time, O(V) memory for V reached states and E
// generated transitions.
package bfs
