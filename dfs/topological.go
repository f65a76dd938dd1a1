// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/stack"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. Nil is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort returns the vertices of the directed graph g ordered so
// that every edge u→v has u before v.
//
// Roots are tried in vertex insertion order and neighbours in adjacency
// order; the answer is the reversed post-order. Reaching a gray vertex
// means a cycle and ErrCycleDetected is returned with no ordering.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrCycleDetected, context errors.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("TopologicalSort: %w", ErrNotDirected)
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	order := make([]string, 0, len(verts))

	for _, root := range verts {
		if state[root] != White {
			continue
		}
		f, err := newFrame(g, root, "", 0)
		if err != nil {
			return nil, err
		}
		st := stack.New[*frame]()
		st.Push(f)
		state[root] = Gray

		for !st.IsEmpty() {
			if err = opts.ctx.Err(); err != nil {
				return nil, err
			}
			top, _ := st.Peek()
			nbr, ok := top.advance()
			if !ok {
				st.Pop()
				state[top.id] = Black
				order = append(order, top.id)
				continue
			}
			switch state[nbr] {
			case Gray:
				return nil, fmt.Errorf("%w: back edge %s→%s", ErrCycleDetected, top.id, nbr)
			case White:
				child, err := newFrame(g, nbr, top.id, top.depth+1)
				if err != nil {
					return nil, err
				}
				state[nbr] = Gray
				st.Push(child)
			}
		}
	}
	slices.Reverse(order)

	return order, nil
}
