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

func TestHasCycleDirected(t *testing.T) {
	cases := []struct {
		name  string
		edges [][2]string
		want  bool
	}{
		{"empty", nil, false},
		{"chain", [][2]string{{"A", "B"}, {"B", "C"}}, false},
		// A→B, A→C, B→D, C→D reaches the black D twice: not a cycle.
		{"diamond", [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}}, false},
		{"two-cycle", [][2]string{{"A", "B"}, {"B", "A"}}, true},
		{"tail-cycle", [][2]string{{"X", "A"}, {"A", "B"}, {"B", "C"}, {"C", "A"}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dfs.HasCycleDirected(mustGraph(t, true, tc.edges...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := dfs.HasCycleDirected(mustGraph(t, false))
	assert.ErrorIs(t, err, dfs.ErrNotDirected)
}

func TestHasCycleUndirected(t *testing.T) {
	cases := []struct {
		name  string
		edges [][2]string
		want  bool
	}{
		{"single-edge", [][2]string{{"A", "B"}}, false},
		{"tree", [][2]string{{"A", "B"}, {"A", "C"}, {"C", "D"}, {"C", "E"}}, false},
		{"triangle", [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}}, true},
		{"forest-with-cycle", [][2]string{{"X", "Y"}, {"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "B"}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dfs.HasCycleUndirected(mustGraph(t, false, tc.edges...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := dfs.HasCycleUndirected(mustGraph(t, true))
	assert.ErrorIs(t, err, dfs.ErrDirected)
}

func TestHasCycleUndirected_LoopsAndParallel(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "B", 0))
	got, err := dfs.HasCycleUndirected(g)
	require.NoError(t, err)
	assert.True(t, got)

	m := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, m.AddEdge("A", "B", 0))
	got, err = dfs.HasCycleUndirected(m)
	require.NoError(t, err)
	assert.False(t, got)

	require.NoError(t, m.AddEdge("A", "B", 0))
	got, err = dfs.HasCycleUndirected(m)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestHasCycle_Fixtures(t *testing.T) {
	path, err := builder.BuildGraph(nil, nil, builder.Path(50))
	require.NoError(t, err)
	got, err := dfs.HasCycleUndirected(path)
	require.NoError(t, err)
	assert.False(t, got)

	ring, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Cycle(50))
	require.NoError(t, err)
	got, err = dfs.HasCycleDirected(ring)
	require.NoError(t, err)
	assert.True(t, got)

	wheel, err := builder.BuildGraph(nil, nil, builder.Wheel(8))
	require.NoError(t, err)
	got, err = dfs.HasCycleUndirected(wheel)
	require.NoError(t, err)
	assert.True(t, got)

	// K_{1,n} is a star, hence a tree; K_{2,2} is a 4-cycle.
	star, err := builder.BuildGraph(nil, nil, builder.CompleteBipartite(1, 6))
	require.NoError(t, err)
	got, err = dfs.HasCycleUndirected(star)
	require.NoError(t, err)
	assert.False(t, got)

	square, err := builder.BuildGraph(nil, nil, builder.CompleteBipartite(2, 2))
	require.NoError(t, err)
	got, err = dfs.HasCycleUndirected(square)
	require.NoError(t, err)
	assert.True(t, got)
}
