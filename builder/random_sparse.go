// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse samples each admissible edge independently with
// probability p over n vertices. Undirected graphs try unordered pairs
// i<j; directed graphs try ordered pairs i≠j, plus i→i when the graph
// allows loops.
//
// Contract: n ≥ 1, 0 ≤ p ≤ 1, and an RNG (WithSeed) when 0 < p < 1.
// Trial order is fixed (i asc, j asc), so a fixed seed reproduces the
// graph exactly.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(methodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			}
			return cfg.rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			j0 := 0
			if !g.Directed() {
				j0 = i + 1
			}
			for j := j0; j < n; j++ {
				if i == j && !(g.Directed() && g.Looped()) {
					continue
				}
				if !keep() {
					continue
				}
				if err = addEdge(methodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
