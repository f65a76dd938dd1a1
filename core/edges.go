// SPDX-License-Identifier: MIT

package core

import "fmt"

// AddEdge connects from→to with weight w, creating missing endpoints.
// Undirected graphs also store the mirror entry to→from.
//
// Errors:
//   - ErrEmptyVertexID       if either ID is empty.
//   - ErrBadWeight           if w != 0 on an unweighted graph.
//   - ErrLoopNotAllowed      if from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed if from→to exists without WithMultiEdges.
//
// Complexity: O(1) amortized with multi-edges enabled, O(deg(from)) otherwise.
func (g *Graph) AddEdge(from, to string, w int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !g.weighted && w != 0 {
		return fmt.Errorf("%w: %s→%s weight=%d", ErrBadWeight, from, to, w)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: w})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], Edge{From: to, To: from, Weight: w})
	}
	g.edges++

	return nil
}

// RemoveEdge deletes the first from→to edge (and its mirror when undirected).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.removeFirstLocked(from, to) {
		return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	if !g.directed && from != to {
		g.removeFirstLocked(to, from)
	}
	g.edges--

	return nil
}

// removeFirstLocked drops the first adjacency entry from→to.
func (g *Graph) removeFirstLocked(from, to string) bool {
	list := g.adj[from]
	for i, e := range list {
		if e.To != to {
			continue
		}
		copy(list[i:], list[i+1:])
		list[len(list)-1] = Edge{}
		g.adj[from] = list[:len(list)-1]

		return true
	}

	return false
}

// HasEdge reports whether an edge from→to exists. For undirected graphs
// the order of the endpoints does not matter.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.adj[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of the outgoing edges of id, in insertion order.
// Every returned Edge has From == id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(list))
	copy(out, list)

	return out, nil
}

// NeighborIDs returns the targets of the outgoing edges of id, in
// insertion order. Parallel edges yield repeated IDs.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.To
	}

	return out, nil
}

// Edges returns every logical edge once. Undirected edges are reported
// from the endpoint inserted first. Order: by source vertex insertion
// order, then adjacency order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for _, u := range g.order {
		for _, e := range g.adj[u] {
			if g.directed || g.pos[u] <= g.pos[e.To] {
				out = append(out, e)
			}
		}
	}

	return out
}

// EdgeCount returns the number of logical edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
