// Package dfs implements depth‑first traversal and simple-path enumeration
// on a core.Graph.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre‑order hook
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - SimplePaths: enumerates every path between two vertices that visits
//     no vertex twice, by backtracking over the same neighbor order DFS uses.
//
// Why:
//   - Check that every vertex of a fixed layout is reachable from a home vertex
//   - Enumerate candidate routes on small boards (keypads, puzzles) so that a
//     cost model can pick among them
//
// Complexity:
//
//   - DFS:          Time O(V+E), Memory O(V)
//   - SimplePaths:  Time O(P·L) for P paths of length ≤ L (exponential worst case), Memory O(V + P·L)
//
// Errors:
//
//   - ErrGraphNil              graph pointer is nil
//   - ErrStartVertexNotFound   start vertex ID not in graph
//   - ErrTargetVertexNotFound  target vertex ID not in graph (SimplePaths)
//   - context.Canceled         traversal canceled via context
//   - hook errors              propagated from OnVisit
//
// Functions:
//
//   - DFS(g \*core.Graph, startID string, opts ...Option) (\*DFSResult, error)
//   - SimplePaths(g \*core.Graph, startID, targetID string, opts ...Option) (\[]\[]string, error)
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithMaxDepth(), WithFilterNeighbor()
package dfs
