// SPDX-License-Identifier: MIT

package core

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Clone returns a deep copy with the same configuration, vertices and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		order:      make([]string, len(g.order)),
		pos:        make(map[string]int, len(g.pos)),
		adj:        make(map[string][]Edge, len(g.adj)),
		edges:      g.edges,
	}
	copy(c.order, g.order)
	for id, i := range g.pos {
		c.pos[id] = i
	}
	for id, list := range g.adj {
		if list == nil {
			c.adj[id] = nil
			continue
		}
		c.adj[id] = append([]Edge(nil), list...)
	}

	return c
}

// Stats summarizes a graph's configuration and size.
type Stats struct {
	Directed    bool
	Weighted    bool
	Looped      bool
	Multigraph  bool
	VertexCount int
	EdgeCount   int
}

// Stats returns a snapshot of configuration flags and sizes.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Stats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		Looped:      g.allowLoops,
		Multigraph:  g.allowMulti,
		VertexCount: len(g.order),
		EdgeCount:   g.edges,
	}
}
