// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/stack"
)

// HasCycleDirected reports whether the directed graph g contains a cycle,
// self-loops included. Three colours are tracked per vertex; an edge to a
// gray vertex (one still on the current path) closes a cycle. Reaching a
// black vertex is never a cycle.
func HasCycleDirected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Directed() {
		return false, fmt.Errorf("HasCycleDirected: %w", ErrNotDirected)
	}
	_, err := TopologicalSort(g)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrCycleDetected):
		return true, nil
	default:
		return false, err
	}
}

// HasCycleUndirected reports whether g, read as an undirected graph,
// contains a cycle. Each undirected edge is stored in both adjacency
// lists, so the edge back to a vertex's DFS parent is skipped once;
// any other edge to a visited vertex closes a cycle. Consequently a self
// loop is a cycle, and two parallel edges between the same pair are a
// cycle (possible only in a multigraph).
//
// Directed graphs yield ErrDirected; use HasCycleDirected for them.
func HasCycleUndirected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return false, fmt.Errorf("HasCycleUndirected: %w", ErrDirected)
	}

	visited := make(map[string]bool, g.VertexCount())
	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		f, err := newFrame(g, root, "", 0)
		if err != nil {
			return false, err
		}
		f.skippedParent = true // the root has no parent edge
		visited[root] = true
		st := stack.New[*frame]()
		st.Push(f)

		for !st.IsEmpty() {
			top, _ := st.Peek()
			nbr, ok := top.advance()
			if !ok {
				st.Pop()
				continue
			}
			if nbr == top.parent && !top.skippedParent {
				top.skippedParent = true
				continue
			}
			if visited[nbr] {
				return true, nil
			}
			child, err := newFrame(g, nbr, top.id, top.depth+1)
			if err != nil {
				return false, err
			}
			visited[nbr] = true
			st.Push(child)
		}
	}

	return false, nil
}
