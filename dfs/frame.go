// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// frame is one activation of the iterative DFS: a vertex and a cursor
// into its adjacency list.
type frame struct {
	id     string
	depth  int
	nbrs   []string
	next   int
	parent string
	// skippedParent is set once the edge back to parent has been ignored;
	// a second parallel edge to the parent is a cycle.
	skippedParent bool
}

func newFrame(g *core.Graph, id, parent string, depth int) (*frame, error) {
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrNeighborFetch, id, err)
	}

	return &frame{id: id, depth: depth, nbrs: nbrs, parent: parent}, nil
}

// advance returns the next neighbor of f, or false when f is exhausted.
func (f *frame) advance() (string, bool) {
	if f.next >= len(f.nbrs) {
		return "", false
	}
	v := f.nbrs[f.next]
	f.next++

	return v, true
}
