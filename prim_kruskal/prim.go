// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/algokit/core"
)

// candidate is a heap entry: a crossing edge and its push sequence.
type candidate struct {
	edge core.Edge
	seq  int
}

func byWeight(a, b interface{}) int {
	x, y := a.(candidate), b.(candidate)
	switch {
	case x.edge.Weight < y.edge.Weight:
		return -1
	case x.edge.Weight > y.edge.Weight:
		return 1
	}

	return x.seq - y.seq
}

// Prim grows a minimum spanning tree from root. Crossing edges wait in a
// min-heap; entries whose target joined the tree meanwhile are dropped
// when popped.
//
// Errors: ErrInvalidGraph, ErrEmptyRoot, ErrRootNotFound, and
// ErrDisconnected when the tree cannot reach every vertex.
func Prim(g *core.Graph, root string) ([]core.Edge, int64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %q", ErrRootNotFound, root)
	}

	n := g.VertexCount()
	inTree := make(map[string]bool, n)
	pq := priorityqueue.NewWith(byWeight)
	seq := 0
	tree := make([]core.Edge, 0, n-1)
	var total int64

	add := func(v string) error {
		inTree[v] = true
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return fmt.Errorf("prim_kruskal: neighbors of %q: %w", v, err)
		}
		for _, e := range nbrs {
			if !inTree[e.To] {
				pq.Enqueue(candidate{edge: e, seq: seq})
				seq++
			}
		}

		return nil
	}
	if err := add(root); err != nil {
		return nil, 0, err
	}

	for len(tree) < n-1 {
		v, ok := pq.Dequeue()
		if !ok {
			break
		}
		c := v.(candidate)
		if inTree[c.edge.To] {
			continue
		}
		tree = append(tree, c.edge)
		total += c.edge.Weight
		if err := add(c.edge.To); err != nil {
			return nil, 0, err
		}
	}
	if len(inTree) != n {
		return nil, 0, fmt.Errorf("%w: reached %d of %d vertices from %q", ErrDisconnected, len(inTree), n, root)
	}

	return tree, total, nil
}
