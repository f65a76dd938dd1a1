// Package dfs implements depth-first search and the classic algorithms
// built on it over a core.Graph:
//
//   - DFS: iterative traversal with an explicit stack.Stack of frames,
//     reporting pre-order, post-order, depths and parent links.
//   - DFSRecursive: the textbook recursive form, kept as a reference.
//     Both produce the same orders for the same graph.
//   - TopologicalSort: reversed post-order of a directed acyclic graph.
//     A cycle yields ErrCycleDetected and never a partial order.
//   - HasCycleDirected: white/gray/black colouring; an edge into a gray
//     vertex closes a cycle.
//   - HasCycleUndirected: parent tracking; the edge back to the parent is
//     not a cycle, any other edge to a visited vertex is.
//   - ConnectedComponents: components of an undirected graph, or weakly
//     connected components of a directed one.
//
// Neighbours are explored in adjacency insertion order and roots in
// vertex insertion order, so every result is deterministic.
//
// The iterative forms use O(V) auxiliary memory and never grow the Go
// call stack, so deep path graphs are safe. DFSRecursive recurses once
// per tree edge.
//
// Complexity: O(V + E) time for every function in the package.
package dfs
