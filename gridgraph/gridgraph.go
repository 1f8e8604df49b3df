// Package gridgraph provides utilities to treat a 2D table of symbols as a
// graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Gap cells that take no part in the graph
//   - Conversion to a directed, labeled *core.Graph
//
// Every non-gap cell becomes a vertex whose ID is its symbol.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/padchain/core"
)

// NewGridGraph constructs a GridGraph from non-empty rows of equal rune length.
// It copies the input to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrDuplicateSymbol if a non-gap symbol is repeated.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(rows []string, opts GridOptions) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len([]rune(rows[0]))
	cells := make([][]rune, h)
	positions := make(map[rune][2]int, w*h)
	for y, row := range rows {
		cells[y] = []rune(row)
		if len(cells[y]) != w {
			return nil, ErrNonRectangular
		}
		for x, r := range cells[y] {
			if r == opts.Gap {
				continue
			}
			if _, dup := positions[r]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
			}
			positions[r] = [2]int{x, y}
		}
	}
	// Precompute neighbor offsets based on connectivity
	var offsets []Offset
	if opts.Conn == Conn8 {
		offsets = []Offset{East, {1, -1}, North, {-1, -1}, West, {-1, 1}, South, {1, 1}}
	} else {
		offsets = []Offset{East, North, West, South}
	}

	gg := &GridGraph{
		Width:           w,
		Height:          h,
		Cells:           cells,
		Gap:             opts.Gap,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
		positions:       positions,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsGap reports whether (x,y) is outside the grid or a gap cell.
func (gg *GridGraph) IsGap(x, y int) bool {
	return !gg.InBounds(x, y) || gg.Cells[y][x] == gg.Gap
}

// NeighborOffsets returns the precomputed neighbor offsets, in the order
// edges are emitted by ToCoreGraph.
func (gg *GridGraph) NeighborOffsets() []Offset {
	return gg.neighborOffsets
}

// Locate returns the coordinates of symbol r.
func (gg *GridGraph) Locate(r rune) (x, y int, ok bool) {
	p, ok := gg.positions[r]

	return p[0], p[1], ok
}

// Symbols returns the non-gap symbols in row-major order.
func (gg *GridGraph) Symbols() []rune {
	out := make([]rune, 0, len(gg.positions))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsGap(x, y) {
				out = append(out, gg.Cells[y][x])
			}
		}
	}

	return out
}

// ToCoreGraph converts the GridGraph into a directed *core.Graph.
// Each non-gap cell becomes a vertex with ID = its symbol and metadata
// {x, y}. For every pair of neighboring non-gap cells one edge per
// direction is added, labeled with labels[offset]. Cells are visited in
// row-major order and offsets in NeighborOffsets order, which fixes the
// neighbor order of every vertex.
// Returns ErrMissingLabel if labels lacks an offset of gg.Conn.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph(labels map[Offset]string) (*core.Graph, error) {
	for _, d := range gg.neighborOffsets {
		if _, ok := labels[d]; !ok {
			return nil, fmt.Errorf("%w: %+v", ErrMissingLabel, d)
		}
	}

	g := core.NewGraph(core.WithDirected(true))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsGap(x, y) {
				continue
			}
			id := string(gg.Cells[y][x])
			if err := g.AddVertex(id); err != nil {
				return nil, err
			}
			v, err := g.Vertex(id)
			if err != nil {
				return nil, err
			}
			v.Metadata["x"] = x
			v.Metadata["y"] = y
		}
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsGap(x, y) {
				continue
			}
			uID := string(gg.Cells[y][x])
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d.DX, y+d.DY
				if gg.IsGap(nx, ny) {
					continue
				}
				vID := string(gg.Cells[ny][nx])
				if _, err := g.AddEdge(uID, vID, core.WithLabel(labels[d])); err != nil {
					return nil, fmt.Errorf("gridgraph: edge %s→%s: %w", uID, vID, err)
				}
			}
		}
	}

	return g, nil
}
