// Package algokit is an in-memory toolkit of classic data structures and
// algorithms, written with generics and without hidden global state.
//
// 🚀 What is inside?
//
//	Containers:     stack, queue, deque, linkedlist, hashtable, bst
//	Disjoint sets:  unionfind (int elements and comparable keys)
//	Graphs:         core (adjacency list), builder (fixtures)
//	Traversals:     bfs (HasPath, ShortestPath), dfs (TopologicalSort,
//	                cycle detection, ConnectedComponents)
//	Shortest paths: dijkstra
//	Spanning trees: prim_kruskal (Kruskal forest, Prim)
//	Sorting:        sorting (quick, merge, heap, insertion, counting, radix)
//	Strings:        strmatch (KMP, Rabin-Karp)
//
// ✨ Conventions shared by every package
//
//   - Absence is a value, not a panic: Pop, Peek, Get and friends return
//     (T, bool) and never panic on an empty container.
//   - Out-of-range indices and broken preconditions return package-prefixed
//     sentinel errors (linkedlist.ErrIndexOutOfRange, dfs.ErrCycleDetected)
//     that work with errors.Is. A failed call leaves its receiver unchanged.
//   - Inserting a duplicate is a no-op reported through a bool.
//   - Graph algorithms visit neighbours in insertion order, so results are
//     deterministic for a given construction sequence.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 0)
//	_ = g.AddEdge("A", "C", 0)
//	_ = g.AddEdge("B", "D", 0)
//	_ = g.AddEdge("C", "D", 0)
//	path, _ := bfs.ShortestPath(g, "A", "D") // [A B D]
//
// Runnable programs live under examples/.
package algokit
