// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

const (
	methodRandomRegular = "RandomRegular"
	maxStubAttempts     = 1000
)

// RandomRegular builds an undirected d-regular graph on n vertices by
// stub matching: every vertex contributes d stubs, the stubs are shuffled
// and paired. A pairing that would create a self-loop (without WithLoops)
// or a parallel edge (without WithMultiEdges) is rejected and reshuffled,
// at most maxStubAttempts times.
//
// Contract: undirected graph, n ≥ 1, 0 ≤ d < n, n·d even, RNG set.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s: directed graphs: %w", methodRandomRegular, ErrUnsupportedGraphMode)
		}
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomRegular, n, ErrTooFewVertices)
		}
		if d < 0 || d >= n || (n*d)%2 != 0 {
			return fmt.Errorf("%s: n=%d, d=%d: %w", methodRandomRegular, n, d, ErrInvalidDegree)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		ids, err := addVertices(methodRandomRegular, g, cfg, n)
		if err != nil {
			return err
		}
		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		for attempt := 0; attempt < maxStubAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !validPairing(stubs, g.Looped(), g.Multigraph()) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err = addEdge(methodRandomRegular, g, cfg, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no valid pairing after %d attempts: %w", methodRandomRegular, maxStubAttempts, ErrConstructFailed)
	}
}

// validPairing reports whether consecutive stub pairs avoid loops and
// duplicate pairs as the graph mode requires.
func validPairing(stubs []int, allowLoops, allowMulti bool) bool {
	seen := make(map[[2]int]bool, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v && !allowLoops {
			return false
		}
		if allowMulti {
			continue
		}
		if u > v {
			u, v = v, u
		}
		if seen[[2]int{u, v}] {
			return false
		}
		seen[[2]int{u, v}] = true
	}

	return true
}
