// Package unionfind implements a disjoint-set forest with path compression
// and union by rank.
//
// UnionFind works over the dense element range [0, n). Find compresses
// every node on the visited path directly onto the root; Union hangs the
// lower-rank root under the higher-rank one, incrementing the surviving
// rank on ties. Together they give near-constant amortized cost per
// operation (inverse Ackermann).
//
// Union returns false when both elements already share a root; Kruskal's
// algorithm uses that as its cycle test. Out-of-range elements never
// touch memory: Find returns -1 and Union/Connected return false.
//
// Keyed adapts the forest to arbitrary comparable keys, such as the
// string vertex IDs of core.Graph.
package unionfind
