// Package core defines the adjacency-list Graph shared by the traversal,
// shortest-path and spanning-forest packages.
//
// What
//
//   - Vertices are identified by non-empty strings and kept in insertion
//     order, which makes every algorithm built on top deterministic.
//   - Each vertex owns an ordered list of outgoing Edge values
//     (neighbor, weight). Undirected graphs store every edge on both
//     endpoints; a self-loop is stored once.
//   - Directedness, weights, self-loops and parallel edges are fixed at
//     construction through GraphOption values.
//
// Invariants
//
//   - An edge listed under u pointing at v implies v is a vertex of the
//     same graph. RemoveVertex drops every edge touching the vertex.
//   - Read methods return copies; callers never alias internal slices.
//
// Concurrency
//
//	A single sync.RWMutex guards the graph. Read-only algorithms keep
//	their visited sets local to each call, so independent traversals of
//	one graph may run in parallel; mutation must not overlap with them.
//
// Errors
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed and ErrMultiEdgeNotAllowed. A failed mutation leaves
//	the graph unchanged.
package core
