// Package dijkstra computes single-source shortest paths on weighted
// core.Graph values with non-negative edge weights.
//
// The frontier is a binary-heap priority queue from
// github.com/emirpasic/gods with lazy decrease-key: an improved distance
// pushes a fresh entry and stale entries are skipped when popped. Ties
// on distance are broken by push order, so results are deterministic.
//
// Precondition: every edge weight is >= 0. This is NOT checked by
// default, because checking costs a full edge scan on every call. With a
// negative weight the run still terminates (each vertex settles once),
// but the distances are unspecified. Pass WithNegativeWeightCheck to
// reject such graphs with ErrNegativeWeight instead.
//
// Vertices that are unreachable (or lie beyond WithMaxDistance) are
// absent from the distance map. PathTo rebuilds a route from the
// predecessor map returned under WithReturnPath.
//
// Complexity: O((V + E) log E) time, O(V + E) memory.
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	path, err := dijkstra.PathTo(prev, "A", "D")
package dijkstra
