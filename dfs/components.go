// SPDX-License-Identifier: MIT

package dfs

import (
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/stack"
)

// ConnectedComponents partitions the vertices of g into connected
// components. Directed graphs are read as undirected, which yields the
// weakly connected components.
//
// Components are listed in insertion order of their first vertex; the
// vertices of a component appear in DFS discovery order. Every vertex
// belongs to exactly one component and isolated vertices form singletons.
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	adj := undirectedAdjacency(g, verts)

	seen := make(map[string]bool, len(verts))
	var comps [][]string
	for _, root := range verts {
		if seen[root] {
			continue
		}
		var comp []string
		st := stack.New[string]()
		st.Push(root)
		for !st.IsEmpty() {
			id, _ := st.Pop()
			if seen[id] {
				continue
			}
			seen[id] = true
			comp = append(comp, id)
			nbrs := adj[id]
			for i := len(nbrs) - 1; i >= 0; i-- {
				if !seen[nbrs[i]] {
					st.Push(nbrs[i])
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// undirectedAdjacency returns the adjacency of g with every edge mirrored.
// For undirected graphs core already stores both directions.
func undirectedAdjacency(g *core.Graph, verts []string) map[string][]string {
	adj := make(map[string][]string, len(verts))
	for _, v := range verts {
		nbrs, _ := g.NeighborIDs(v)
		adj[v] = nbrs
	}
	if !g.Directed() {
		return adj
	}
	for _, e := range g.Edges() {
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	return adj
}
