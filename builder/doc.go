// Package builder produces deterministic core.Graph fixtures for tests,
// benchmarks and examples: paths, cycles, stars, complete graphs, grids,
// wheels, complete bipartite graphs, Erdős–Rényi-style random sparse
// graphs, random d-regular graphs, and the land cells of a height map
// (Islands).
//
// BuildGraph(gopts, bopts, cons...) creates the graph with the core
// options gopts, resolves builder options bopts and applies every
// Constructor in order. Equal inputs and seeds produce identical graphs.
//
// Weighted graphs receive weights from the configured weight function
// (constant 1 by default, or uniform in [lo, hi] via WithWeightRange).
package builder
