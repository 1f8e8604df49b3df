package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/padchain/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g from startID, following
// g.NeighborIDs so the visit order is deterministic.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// context errors, or an OnVisit error wrapped with the vertex ID.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Distance returns the number of edges on a shortest from→to path.
func Distance(g *core.Graph, from, to string) (int, error) {
	res, err := BFS(g, from)
	if err != nil {
		return 0, err
	}
	d, ok := res.Depth[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q from %q", ErrUnreachable, to, from)
	}

	return d, nil
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues every
// neighbor not seen yet.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nbrs, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range nbrs {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}
