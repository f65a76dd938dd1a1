// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/builder"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
)

// assertTopological checks that every edge goes forward in order.
func assertTopological(t *testing.T, g *core.Graph, order []string) {
	t.Helper()
	require.Len(t, order, g.VertexCount())
	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %s→%s", e.From, e.To)
	}
}

func TestTopologicalSort_DAG(t *testing.T) {
	g := mustGraph(t, true,
		[2]string{"shirt", "tie"}, [2]string{"tie", "jacket"},
		[2]string{"pants", "shoes"}, [2]string{"pants", "belt"},
		[2]string{"belt", "jacket"}, [2]string{"shirt", "belt"},
		[2]string{"socks", "shoes"},
	)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assertTopological(t, g, order)
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := mustGraph(t, true, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"}, [2]string{"C", "D"})
	order, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Nil(t, order)
}

func TestTopologicalSort_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	require.NoError(t, g.AddEdge("A", "A", 0))
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.TopologicalSort(mustGraph(t, false, [2]string{"A", "B"}))
	assert.ErrorIs(t, err, dfs.ErrNotDirected)
}

// TestTopologicalSort_RandomDAG orients random edges from lower to higher
// index, which always yields a DAG.
func TestTopologicalSort_RandomDAG(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		src, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(40, 0.15))
		require.NoError(t, err)

		g := core.NewGraph(core.WithDirected(true))
		for _, v := range src.Vertices() {
			require.NoError(t, g.AddVertex(v))
		}
		for _, e := range src.Edges() {
			require.NoError(t, g.AddEdge(e.From, e.To, 0))
		}

		order, err := dfs.TopologicalSort(g)
		require.NoError(t, err)
		assertTopological(t, g, order)
	}
}
