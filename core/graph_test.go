// SPDX-License-Identifier: MIT

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(VertexB))
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexB), "re-adding is a no-op")

	assert.Equal(t, []string{VertexB, VertexA}, g.Vertices(), "insertion order")
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(VertexC))
}

// TestAddEdge_Validation covers every rejection path and checks the graph
// is not mutated by a failed call.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", VertexB, 0), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge(VertexA, VertexB, 3), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(VertexA, VertexA, 0), core.ErrLoopNotAllowed)
	assert.Equal(t, 0, g.VertexCount(), "failed AddEdge must not create vertices")

	require.NoError(t, g.AddEdge(VertexA, VertexB, 0))
	assert.ErrorIs(t, g.AddEdge(VertexA, VertexB, 0), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge(VertexB, VertexA, 0), core.ErrMultiEdgeNotAllowed, "undirected mirror")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestUndirectedSymmetry(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge(VertexA, VertexB, 4))
	require.NoError(t, g.AddEdge(VertexA, VertexC, 1))

	assert.True(t, g.HasEdge(VertexB, VertexA))
	nb, err := g.Neighbors(VertexB)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: VertexB, To: VertexA, Weight: 4}}, nb)

	ids, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexC}, ids)

	assert.Equal(t, []core.Edge{
		{From: VertexA, To: VertexB, Weight: 4},
		{From: VertexA, To: VertexC, Weight: 1},
	}, g.Edges())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge(VertexA, VertexB, 0))
	require.NoError(t, g.AddEdge(VertexB, VertexA, 0), "reverse edge is distinct")

	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Len(t, g.Edges(), 2)

	deg, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
	_, err = g.Degree(VertexD)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighbors_Missing(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors(VertexA)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs(VertexA)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestNeighbors_ReturnsCopy verifies callers cannot alias internal storage.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB, 0))
	nb, _ := g.Neighbors(VertexA)
	nb[0].To = VertexD
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasVertex(VertexD))
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddEdge(VertexA, VertexB, 0))
	require.NoError(t, g.AddEdge(VertexA, VertexB, 0))
	assert.Equal(t, 2, g.EdgeCount())

	require.NoError(t, g.RemoveEdge(VertexB, VertexA))
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(VertexA, VertexB))

	require.NoError(t, g.RemoveEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA))
	assert.ErrorIs(t, g.RemoveEdge(VertexA, VertexB), core.ErrEdgeNotFound)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestRemoveVertex(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := core.NewGraph(core.WithDirected(directed), core.WithLoops())
		require.NoError(t, g.AddEdge(VertexA, VertexB, 0))
		require.NoError(t, g.AddEdge(VertexB, VertexC, 0))
		require.NoError(t, g.AddEdge(VertexC, VertexA, 0))
		require.NoError(t, g.AddEdge(VertexB, VertexB, 0))
		require.Equal(t, 4, g.EdgeCount())

		require.NoError(t, g.RemoveVertex(VertexB))
		assert.Equal(t, []string{VertexA, VertexC}, g.Vertices())
		assert.Equal(t, 1, g.EdgeCount(), "directed=%v", directed)
		assert.Len(t, g.Edges(), 1)
		assert.ErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound)

		// positions are re-indexed: edges after removal stay consistent
		require.NoError(t, g.AddEdge(VertexD, VertexA, 0))
		assert.Len(t, g.Edges(), 2)
	}
}

func TestSelfLoopUndirected(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge(VertexA, VertexA, 0))
	nb, _ := g.Neighbors(VertexA)
	assert.Len(t, nb, 1, "self-loop is stored once")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Len(t, g.Edges(), 1)
}

func TestCloneAndStats(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge(VertexA, VertexB, 2))
	require.NoError(t, g.AddVertex(VertexC))

	c := g.Clone()
	require.NoError(t, c.AddEdge(VertexB, VertexC, 1))
	assert.False(t, g.HasEdge(VertexB, VertexC), "clone must be independent")
	assert.Equal(t, g.Vertices(), c.Vertices())

	s := c.Stats()
	assert.True(t, s.Directed)
	assert.True(t, s.Weighted)
	assert.False(t, s.Looped)
	assert.Equal(t, 3, s.VertexCount)
	assert.Equal(t, 2, s.EdgeCount)
}

// TestConcurrentReaders runs parallel readers; meaningful under -race.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{VertexA, VertexB}, {VertexB, VertexC}, {VertexC, VertexD}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, v := range g.Vertices() {
				if _, err := g.Neighbors(v); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
