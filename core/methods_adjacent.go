// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() and NeighborIDs() follow edge insertion order.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

// Neighbors returns the edges leaving the given vertex id.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.From == id.
//   - Undirected edges: include every incident edge (mirrored adjacency).
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Collect edges from adjacencyList[id] and order them by insertion.
//
// Determinism:
//   - Order is the order in which the edges were added. Builders rely on
//     this to make traversals (and any tie-break that depends on traversal
//     order) reproducible.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacencyList[id]))
	var eid string
	for _, eid = range g.adjacencyList[id] {
		out = append(out, g.edges[eid])
	}
	sortBySeq(out)

	return out, nil
}

// NeighborIDs returns the IDs of the vertices reachable from id in one step,
// in the same order as Neighbors.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(nbs))
	var e *Edge
	for _, e = range nbs {
		if e.From == id {
			out = append(out, e.To)
		} else {
			out = append(out, e.From) // mirrored undirected edge
		}
	}

	return out, nil
}

// ensureAdjacency makes sure the bucket for from exists.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]string)
	}
}
