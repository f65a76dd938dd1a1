// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

const methodIslands = "Islands"

// Islands turns a rectangular grid of cell values into a graph of its land
// cells: every cell with value ≥ threshold becomes vertex "r,c", and two
// land cells are joined when they are 4-neighbours (8-neighbours when
// diagonal is set). Water cells are left out, so the connected components
// of the result are the islands of the grid.
func Islands(cells [][]int, threshold int, diagonal bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(cells) == 0 || len(cells[0]) == 0 {
			return fmt.Errorf("%s: %w", methodIslands, ErrEmptyGrid)
		}
		rows, cols := len(cells), len(cells[0])
		for r, row := range cells {
			if len(row) != cols {
				return fmt.Errorf("%s: row %d has %d cells, want %d: %w", methodIslands, r, len(row), cols, ErrNonRectangular)
			}
		}

		land := func(r, c int) bool {
			return r >= 0 && r < rows && c >= 0 && c < cols && cells[r][c] >= threshold
		}
		id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }

		// forward offsets only, so each undirected pair is tried once
		offsets := [][2]int{{0, 1}, {1, 0}}
		if diagonal {
			offsets = append(offsets, [2]int{1, 1}, [2]int{1, -1})
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !land(r, c) {
					continue
				}
				if err := g.AddVertex(id(r, c)); err != nil {
					return fmt.Errorf("%s: %v: %w", methodIslands, err, ErrConstructFailed)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !land(r, c) {
					continue
				}
				for _, d := range offsets {
					if nr, nc := r+d[0], c+d[1]; land(nr, nc) {
						if err := addEdge(methodIslands, g, cfg, id(r, c), id(nr, nc)); err != nil {
							return err
						}
					}
				}
			}
		}

		return nil
	}
}
