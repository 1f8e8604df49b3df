// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a
//     start vertex and returns a BFSResult (Order, Depth, Parent).
//   - Distance is the one-shot form: the hop count between two vertices.
//   - Options: WithContext, WithOnVisit, WithMaxDepth, WithFilterNeighbor.
//
// Determinism
//
//	Neighbors are enqueued in core.NeighborIDs order (edge insertion
//	order), so the visit sequence is reproducible for a graph built in a
//	fixed order.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
