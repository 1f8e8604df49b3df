package keypad

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/padchain/core"
	"github.com/katalvlaran/padchain/dfs"
	"github.com/katalvlaran/padchain/gridgraph"
)

// BuildGraph constructs the directed adjacency graph of variant v.
// Vertices are key symbols; each edge carries the Direction (as its arrow
// symbol) that moves from source to target. Every edge A→B labeled d is
// paired with B→A labeled d.Opposite().
//
// The result is validated: all keys of v must be present and reachable
// from v.Home(). Any violation is reported as ErrMalformedLayout.
func BuildGraph(v Variant) (*core.Graph, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}

	return buildGraph(v.Layout(), v.Keys(), v.Home())
}

// buildGraph turns a layout table into a validated keypad graph.
func buildGraph(rows []string, keys []Key, home Key) (*core.Graph, error) {
	gg, err := gridgraph.NewGridGraph(rows, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedLayout, err)
	}
	g, err := gg.ToCoreGraph(directionLabels())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedLayout, err)
	}

	if g.VertexCount() != len(keys) {
		return nil, fmt.Errorf("%w: %d buttons, want %d", ErrMalformedLayout, g.VertexCount(), len(keys))
	}
	for _, k := range keys {
		if !g.HasVertex(k.String()) {
			return nil, fmt.Errorf("%w: missing key %s", ErrMalformedLayout, k)
		}
	}

	res, err := dfs.DFS(g, home.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedLayout, err)
	}
	for _, k := range keys {
		if !res.Visited[k.String()] {
			return nil, fmt.Errorf("%w: key %s unreachable from %s", ErrMalformedLayout, k, home)
		}
	}

	return g, nil
}

// graphCache memoises one graph per variant for the whole process.
var graphCache [len(layouts)]struct {
	once  sync.Once
	graph *core.Graph
	err   error
}

// Graph returns the shared, immutable graph of variant v, building it on
// first use. It panics if v is unknown or its layout is malformed: both
// are compile-time constants, so either case is a bug.
func Graph(v Variant) *core.Graph {
	if !v.Valid() {
		panic(fmt.Errorf("%w: %s", ErrUnknownVariant, v))
	}
	c := &graphCache[v]
	c.once.Do(func() {
		c.graph, c.err = BuildGraph(v)
	})
	if c.err != nil {
		panic(c.err)
	}

	return c.graph
}
