package dfs

import (
	"fmt"

	"github.com/katalvlaran/padchain/core"
)

// pathWalker carries the backtracking state of SimplePaths.
type pathWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	target  string
	onPath  map[string]bool
	current []string
	paths   [][]string
}

// SimplePaths enumerates every simple path (no repeated vertex) from
// startID to targetID, each returned as the ordered list of vertex IDs
// including both endpoints.
//
// Paths are produced in depth-first order following g.NeighborIDs, so the
// result is deterministic for a graph built in a fixed order. When
// startID == targetID the single path [startID] is returned. An empty
// result with a nil error means targetID is unreachable.
//
// Options honoured: WithContext, WithMaxDepth (maximum number of edges per
// path), WithFilterNeighbor.
//
// Complexity: exponential in the worst case; intended for small graphs
// such as keypads or puzzle boards.
func SimplePaths(g *core.Graph, startID, targetID string, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if !g.HasVertex(targetID) {
		return nil, ErrTargetVertexNotFound
	}

	w := &pathWalker{
		graph:  g,
		opts:   applyOptions(opts),
		target: targetID,
		onPath: make(map[string]bool, g.VertexCount()),
	}
	if err := w.walk(startID); err != nil {
		return nil, err
	}

	return w.paths, nil
}

// walk extends the current path with id and recurses into unvisited neighbors.
func (w *pathWalker) walk(id string) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.current = append(w.current, id)
	w.onPath[id] = true
	defer func() {
		w.current = w.current[:len(w.current)-1]
		delete(w.onPath, id)
	}()

	if id == w.target {
		found := make([]string, len(w.current))
		copy(found, w.current)
		w.paths = append(w.paths, found)

		return nil
	}

	// edges used so far == len(current)-1
	if w.opts.MaxDepth >= 0 && len(w.current)-1 >= w.opts.MaxDepth {
		return nil
	}

	nids, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}

	var nid string
	for _, nid = range nids {
		if w.onPath[nid] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if err = w.walk(nid); err != nil {
			return err
		}
	}

	return nil
}
