package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/padchain/core"
	"github.com/katalvlaran/padchain/dfs"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(n int) *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n-1; i++ {
		u := "N" + strconv.Itoa(i)
		v := "N" + strconv.Itoa(i+1)
		_, _ = g.AddEdge(u, v)
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("X"))

	res, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.True(t, res.Visited["X"])
	assert.Equal(t, 0, res.Depth["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	_, err := g.AddEdge("A", "A")
	require.NoError(t, err)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	g := buildChain(3)

	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	// Post-order: N2, N1, N0
	assert.Equal(t, []string{"N2", "N1", "N0"}, res.Order)
	assert.Equal(t, "N1", res.Parent["N2"])
	assert.Equal(t, 2, res.Depth["N2"])
}

func TestDFS_Disconnected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	require.NoError(t, g.AddVertex("C"))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"], "disconnected vertex should not be visited")
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(3)

	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0"}, res.Order)
	assert.False(t, res.Visited["N1"])
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("A", "C")

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(id string) bool {
		return id != "C"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"], "filtered neighbor should not be visited")
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_OnVisitError(t *testing.T) {
	g := buildChain(4)
	boom := errors.New("boom")

	res, err := dfs.DFS(g, "N0", dfs.WithOnVisit(func(id string) error {
		if id == "N2" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, res.Order)
}

func TestDFS_ContextCanceled(t *testing.T) {
	g := buildChain(5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
