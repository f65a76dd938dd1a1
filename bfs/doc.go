// Package bfs implements breadth-first search over a core.Graph.
//
// BFS explores vertices in non-decreasing hop distance from a start
// vertex and records, for every reached vertex, its depth and its parent
// in the BFS tree. The frontier is a queue.Queue; a vertex is marked
// visited when it is enqueued, so it is enqueued at most once.
//
// Edge weights are ignored: on weighted graphs BFS still measures hops.
// HasPath and ShortestPath are thin wrappers for the common questions
// "is t reachable from s" and "which fewest-edge path leads there".
//
// Complexity: O(V + E) time, O(V) memory.
//
// Hooks (WithOnEnqueue, WithOnDequeue, WithOnVisit), a depth limit
// (WithMaxDepth), neighbour filtering (WithFilterNeighbor) and
// cancellation (WithContext) are configured through functional options.
// An invalid option is reported as ErrOptionViolation when BFS runs.
package bfs
