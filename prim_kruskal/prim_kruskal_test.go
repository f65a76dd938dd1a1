// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/builder"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
	"github.com/katalvlaran/algokit/prim_kruskal"
)

type wedge struct {
	from, to string
	w        int64
}

func weighted(t *testing.T, opts []core.GraphOption, edges ...wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(append([]core.GraphOption{core.WithWeighted()}, opts...)...)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}

	return g
}

func triangle(t *testing.T) *core.Graph {
	return weighted(t, nil, wedge{"A", "B", 1}, wedge{"B", "C", 2}, wedge{"A", "C", 3})
}

func TestKruskal_Triangle(t *testing.T) {
	edges, total, err := prim_kruskal.Kruskal(triangle(t))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, edges, 2)
}

func TestPrim_Triangle(t *testing.T) {
	edges, total, err := prim_kruskal.Prim(triangle(t), "C")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []core.Edge{{From: "C", To: "B", Weight: 2}, {From: "B", To: "A", Weight: 1}}, edges)
}

func TestValidation(t *testing.T) {
	_, _, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Kruskal(core.NewGraph())
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(weighted(t, []core.GraphOption{core.WithDirected(true)}, wedge{"A", "B", 1}), "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	g := triangle(t)
	_, _, err = prim_kruskal.Prim(g, "")
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyRoot)
	_, _, err = prim_kruskal.Prim(g, "Q")
	assert.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)

	_, _, err = prim_kruskal.MST(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestSpanningForest_Disconnected(t *testing.T) {
	g := weighted(t, nil,
		wedge{"A", "B", 4}, wedge{"B", "C", 1}, wedge{"A", "C", 2},
		wedge{"X", "Y", 7},
	)
	require.NoError(t, g.AddVertex("Solo"))

	f, err := prim_kruskal.SpanningForest(g)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Trees())
	assert.Equal(t, int64(1+2+7), f.Weight)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"X", "Y"}, {"Solo"}}, f.Groups)
	assert.Len(t, f.Edges, g.VertexCount()-f.Trees())

	_, _, err = prim_kruskal.Prim(g, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.MST(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestLoopsAndParallelEdges(t *testing.T) {
	g := weighted(t, []core.GraphOption{core.WithLoops(), core.WithMultiEdges()},
		wedge{"A", "A", 0}, wedge{"A", "B", 9}, wedge{"A", "B", 2}, wedge{"B", "C", 5},
	)
	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		edges, total, err := prim_kruskal.MST(g, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot("A"))
		require.NoError(t, err, method)
		assert.Equal(t, int64(7), total, method)
		assert.Len(t, edges, 2, method)
	}
}

func TestSingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))

	edges, total, err := prim_kruskal.Prim(g, "A")
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)

	f, err := prim_kruskal.SpanningForest(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}}, f.Groups)
}

// TestPrimMatchesKruskal compares total weights on random connected graphs
// and checks that the forest groups agree with ConnectedComponents.
func TestPrimMatchesKruskal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted(), core.WithMultiEdges()},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightRange(1, 50)},
			builder.RandomSparse(40, 0.08),
			builder.Path(40), // guarantees connectivity over the same IDs
		)
		require.NoError(t, err)

		_, kw, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		pe, pw, err := prim_kruskal.Prim(g, "0")
		require.NoError(t, err)
		assert.Equal(t, kw, pw, "seed %d", seed)
		assert.Len(t, pe, g.VertexCount()-1)
	}

	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted()},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightRange(1, 50)},
			builder.RandomSparse(40, 0.03),
		)
		require.NoError(t, err)

		f, err := prim_kruskal.SpanningForest(g)
		require.NoError(t, err)
		comps, err := dfs.ConnectedComponents(g)
		require.NoError(t, err)
		assert.Equal(t, len(comps), f.Trees(), "seed %d", seed)
	}
}
