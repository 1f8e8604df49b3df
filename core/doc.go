// Package core provides a thread-safe in-memory Graph with labeled edges
// and a minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Free-form edge labels (WithLabel), e.g. the compass heading of a move
//   - Self-loops (WithLoops)
//   - Constant-time edge lookups via nested maps:
//     adjacencyList[from][to] = edgeID
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() is sorted by ID. Neighbors(), NeighborIDs() and Edges() follow
//	edge insertion order, so a graph built from a fixed table always yields
//	the same traversal order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1)
//	HasVertex(id string) bool               // O(1)
//	Vertex(id string) (*Vertex, error)      // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	HasEdge(from, to string) bool                  // O(1)
//	EdgeBetween(from, to string) (*Edge, error)    // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d)
//	NeighborIDs(id string) ([]string, error) // O(d·log d)
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	VertexCount(), EdgeCount() int           // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge
package core
