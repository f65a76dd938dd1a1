// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is one adjacency entry: a connection From→To with a Weight.
// For undirected graphs the mirrored entry To→From is stored on To.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or symmetric (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an in-memory adjacency-list graph with string vertex IDs.
//
// By default a Graph is undirected, unweighted, without loops and without
// parallel edges.
type Graph struct {
	mu sync.RWMutex // guards everything below

	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	order []string          // vertex IDs in insertion order
	pos   map[string]int    // vertex ID → index in order
	adj   map[string][]Edge // vertex ID → outgoing edges, insertion order
	edges int               // logical edge count (undirected counted once)
}

// NewGraph creates an empty Graph configured by opts.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		pos: make(map[string]int),
		adj: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
