// Package dfs defines types and options for depth-first search traversal
// and simple-path enumeration, including cancellation, pre-order hooks,
// depth limiting and neighbor filtering.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or SimplePaths.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrTargetVertexNotFound indicates that the target vertex ID passed to
	// SimplePaths does not exist in the graph.
	ErrTargetVertexNotFound = errors.New("dfs: target vertex not found")
)

// Option configures optional behavior of DFS and SimplePaths.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error. Ignored by SimplePaths.
	OnVisit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// For SimplePaths it bounds the number of edges in a path.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id string) bool

	// SkippedNeighbors tracks how many neighbor vertices were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each vertex ID to its distance (#edges) from the start.
	Depth map[string]int

	// Parent maps each vertex ID to the ID of the vertex from which it was first discovered.
	// The start vertex does not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}

// applyOptions folds opts over DefaultOptions.
func applyOptions(opts []Option) DFSOptions {
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	return dopts
}
