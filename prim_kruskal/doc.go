// Package prim_kruskal computes minimum spanning trees and forests of
// undirected weighted core.Graph values.
//
//   - Kruskal sorts edges by weight (stable, so ties keep Edges order)
//     and keeps every edge that joins two different unionfind.Keyed sets.
//     On a disconnected graph the result is a minimum spanning forest:
//     one tree per connected component.
//   - SpanningForest runs Kruskal and also reports the vertex groups, one
//     per tree, as collected by the union-find structure.
//   - Prim grows a single tree from a root with a gods priority queue and
//     returns ErrDisconnected when some vertex cannot be reached.
//   - MST dispatches to either algorithm and requires a connected graph.
//
// Self-loops never join two sets and are ignored; among parallel edges
// the lightest wins.
//
// Complexity: Kruskal O(E log E), Prim O(E log E) with lazy deletion.
package prim_kruskal
