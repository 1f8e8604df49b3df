// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeBetween/GetEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs and loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject parallel edges.
//  4. Generate eid atomically, build Edge, apply opts.
//  5. Store in g.edges and link adjacency (mirrored when undirected).
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed: if from→to is already linked.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	directed := g.Directed()

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacencyList[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Build the edge
	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{ID: edgeID(seq), From: from, To: to, Directed: directed, seq: seq}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}

	// 5) Store and link adjacency
	g.edges[e.ID] = e
	ensureAdjacency(g, from)
	g.adjacencyList[from][to] = e.ID
	if !e.Directed && from != to {
		ensureAdjacency(g, to)
		g.adjacencyList[to][from] = e.ID
	}

	return e.ID, nil
}

// HasEdge reports whether an edge from→to exists.
// Works for undirected graphs as AddEdge mirrors adjacency automatically.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacencyList[from][to]

	return ok
}

// EdgeBetween returns the edge linking from→to.
// For undirected graphs the mirrored edge is returned as stored (its From
// may equal to).
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrEdgeNotFound: if the vertices are not adjacent.
//
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacencyList[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// GetEdge returns the Edge with the given edgeID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// edgeID formats the textual ID for sequence number n without fmt.
func edgeID(n uint64) string {
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// sortBySeq orders edges by insertion sequence. Textual IDs sort "e10"
// before "e9", so the numeric sequence is used instead.
func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
