// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// ErrInvalidGraph indicates that the graph is nil, directed or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrRootNotFound indicates that Prim's root is not in the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrDisconnected indicates that no single spanning tree covers every vertex.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than the two below.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm.
const MethodKruskal = "kruskal"

// MSTOptions configures MST.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim. Empty means the first vertex.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions selects Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Forest is a minimum spanning forest.
type Forest struct {
	// Edges of all trees, in the order Kruskal accepted them.
	Edges []core.Edge
	// Weight is the sum of Edges' weights.
	Weight int64
	// Groups holds the vertex set of every tree; isolated vertices form
	// singleton groups. Groups follow vertex insertion order.
	Groups [][]string
}

// Trees returns the number of trees in the forest.
func (f *Forest) Trees() int { return len(f.Groups) }

// MST returns a minimum spanning tree of a connected graph using the
// configured method. Disconnected graphs yield ErrDisconnected for both
// methods.
func MST(g *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		f, err := SpanningForest(g)
		if err != nil {
			return nil, 0, err
		}
		if f.Trees() > 1 {
			return nil, 0, fmt.Errorf("%w: %d components", ErrDisconnected, f.Trees())
		}
		return f.Edges, f.Weight, nil
	case MethodPrim:
		root := o.Root
		if root == "" && g != nil {
			if vs := g.Vertices(); len(vs) > 0 {
				root = vs[0]
			}
		}
		return Prim(g, root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

func validate(g *core.Graph) error {
	if g == nil || g.Directed() || !g.Weighted() {
		return ErrInvalidGraph
	}

	return nil
}
