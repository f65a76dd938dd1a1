// SPDX-License-Identifier: MIT

package core

import "fmt"

// AddVertex inserts id. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id if absent; caller holds the write lock.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.pos[id]; ok {
		return
	}
	g.pos[id] = len(g.order)
	g.order = append(g.order, id)
	g.adj[id] = nil
}

// HasVertex reports whether id is a vertex.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pos[id]

	return ok
}

// RemoveVertex deletes id and every edge incident to it.
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx, ok := g.pos[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	// Outgoing edges. Undirected edges are counted once, on either side;
	// a self-loop is stored once and counted once.
	for _, e := range g.adj[id] {
		if g.directed || e.To == id {
			g.edges--
		}
	}
	delete(g.adj, id)

	// Incoming edges (and the mirrors of undirected ones).
	for _, u := range g.order {
		if u == id {
			continue
		}
		kept := g.adj[u][:0]
		for _, e := range g.adj[u] {
			if e.To == id {
				g.edges--
				continue
			}
			kept = append(kept, e)
		}
		clear(g.adj[u][len(kept):])
		g.adj[u] = kept
	}

	g.order = append(g.order[:idx], g.order[idx+1:]...)
	delete(g.pos, id)
	for i := idx; i < len(g.order); i++ {
		g.pos[g.order[i]] = i
	}

	return nil
}

// Vertices returns the vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the number of adjacency entries stored for id: the
// out-degree of a directed graph, the degree of an undirected one
// (a self-loop counts once).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.pos[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(g.adj[id]), nil
}
