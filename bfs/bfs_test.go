package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/padchain/bfs"
	"github.com/katalvlaran/padchain/core"
)

// chain builds the undirected path A–B–C–D.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Depths(t *testing.T) {
	res, err := bfs.BFS(chain(t), "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 1, "B": 0, "C": 1, "D": 2}, res.Depth)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, path)

	path, err = res.PathTo("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, path)
}

func TestBFS_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("C"))

	res, err := bfs.BFS(g, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, res.Order)

	_, err = res.PathTo("A")
	assert.ErrorIs(t, err, bfs.ErrUnreachable)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	res, err := bfs.BFS(chain(t), "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(chain(t), "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(chain(t), "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(chain(t), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDistance(t *testing.T) {
	g := chain(t)
	d, err := bfs.Distance(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	d, err = bfs.Distance(g, "C", "C")
	require.NoError(t, err)
	assert.Zero(t, d)

	require.NoError(t, g.AddVertex("Z"))
	_, err = bfs.Distance(g, "A", "Z")
	assert.ErrorIs(t, err, bfs.ErrUnreachable)
	_, err = bfs.Distance(g, "missing", "A")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}
