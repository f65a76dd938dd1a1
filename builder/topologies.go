// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/algokit/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodGrid     = "Grid"
	methodWheel    = "Wheel"
	methodBipart   = "CompleteBipartite"

	// CenterID is the hub vertex added by Wheel.
	CenterID = "Center"
	// LeftPrefix and RightPrefix name the two sides of CompleteBipartite.
	LeftPrefix  = "L"
	RightPrefix = "R"
)

// Path builds P_n: edges i-1 → i for i = 1..n-1 (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodPath, n, ErrTooFewVertices)
		}
		ids, err := addVertices(methodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(methodPath, g, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: the path P_n closed by n-1 → 0 (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("%s: n=%d < min=3: %w", methodCycle, n, ErrTooFewVertices)
		}
		ids, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with center ID index 0 and leaves 1..n-1 (n ≥ 2).
// Edges point center → leaf.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < min=2: %w", methodStar, n, ErrTooFewVertices)
		}
		ids, err := addVertices(methodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(methodStar, g, cfg, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1). Undirected graphs get one edge per
// unordered pair i<j; directed graphs get both i→j and j→i.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		ids, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!g.Directed() && j < i) {
					continue
				}
				if err = addEdge(methodComplete, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood grid with vertex IDs "r,c".
// Edges point right and down. The ID scheme option is not used.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(id(r, c)); err != nil {
					return fmt.Errorf("%s: %v: %w", methodGrid, err, ErrConstructFailed)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, id(r, c), id(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, id(r, c), id(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Wheel builds W_n: the cycle C_{n-1} over IDs 0..n-2 plus the hub
// CenterID joined to every rim vertex (n ≥ 4). Directed graphs get spokes
// in both directions.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 4 {
			return fmt.Errorf("%s: n=%d < min=4: %w", methodWheel, n, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim: %w", methodWheel, err)
		}
		for i := 0; i < n-1; i++ {
			rim := cfg.idFn(i)
			if err := addEdge(methodWheel, g, cfg, CenterID, rim); err != nil {
				return err
			}
			if g.Directed() {
				if err := addEdge(methodWheel, g, cfg, rim, CenterID); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} with sides "L0".."L{n1-1}" and
// "R0".."R{n2-1}"; every left vertex is joined to every right one. The ID
// scheme option is not used. Directed graphs get both directions.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ 1): %w", methodBipart, n1, n2, ErrTooFewVertices)
		}
		left := make([]string, n1)
		for i := range left {
			left[i] = LeftPrefix + strconv.Itoa(i)
			if err := g.AddVertex(left[i]); err != nil {
				return fmt.Errorf("%s: %v: %w", methodBipart, err, ErrConstructFailed)
			}
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = RightPrefix + strconv.Itoa(j)
			if err := g.AddVertex(right[j]); err != nil {
				return fmt.Errorf("%s: %v: %w", methodBipart, err, ErrConstructFailed)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(methodBipart, g, cfg, u, v); err != nil {
					return err
				}
				if g.Directed() {
					if err := addEdge(methodBipart, g, cfg, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
