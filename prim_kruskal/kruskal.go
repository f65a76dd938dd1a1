// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/unionfind"
)

// Kruskal returns the edges and total weight of a minimum spanning forest
// of g. A connected graph yields a spanning tree of |V|-1 edges; in
// general the forest has |V| - components edges.
//
// Errors: ErrInvalidGraph for nil, directed or unweighted graphs.
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	f, err := SpanningForest(g)
	if err != nil {
		return nil, 0, err
	}

	return f.Edges, f.Weight, nil
}

// SpanningForest runs Kruskal and groups the vertices by tree.
func SpanningForest(g *core.Graph) (*Forest, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	verts := g.Vertices()
	uf := unionfind.NewKeyed(verts...)

	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	f := &Forest{Edges: make([]core.Edge, 0, max(len(verts)-1, 0))}
	for _, e := range edges {
		if !uf.Union(e.From, e.To) {
			continue // same tree already, or a self-loop
		}
		f.Edges = append(f.Edges, e)
		f.Weight += e.Weight
		if len(f.Edges) == len(verts)-1 {
			break
		}
	}
	f.Groups = uf.Groups()

	return f, nil
}
