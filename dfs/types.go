// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Vertex colours used by cycle detection and topological sort.
const (
	White = iota // not visited yet
	Gray         // on the current DFS path
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned by TopologicalSort on a cyclic graph.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected is returned by directed-only algorithms.
	ErrNotDirected = errors.New("dfs: graph is not directed")

	// ErrDirected is returned by undirected-only algorithms.
	ErrDirected = errors.New("dfs: graph is directed")

	// ErrNeighborFetch indicates a failure to retrieve neighbors.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked once all descendants of a vertex
	// have been explored (post-order).
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits the depth of discovered vertices.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each unvisited neighbor.
	// Returning false skips it; skips are counted in SkippedNeighbors.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts DFS from every unvisited vertex, in vertex
	// insertion order, after the start vertex's tree is finished.
	FullTraversal bool

	err error
}

// DefaultOptions returns DFSOptions with a background context, no hooks,
// no depth limit, no filtering and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. A negative limit is recorded and
// reported as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbor IDs for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in discovery sequence (pre-order).
	Order []string

	// PostOrder records vertices in the sequence they finished.
	PostOrder []string

	// Depth maps each vertex to its tree depth (root = 0).
	Depth map[string]int

	// Parent maps each non-root vertex to the vertex it was discovered from.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

func newResult(n int) *DFSResult {
	return &DFSResult{
		Order:     make([]string, 0, n),
		PostOrder: make([]string, 0, n),
		Depth:     make(map[string]int, n),
		Parent:    make(map[string]string, n),
		Visited:   make(map[string]bool, n),
	}
}
