// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// errFound stops the traversal once the target is visited.
var errFound = errors.New("bfs: target found")

// HasPath reports whether to is reachable from from. A vertex always
// reaches itself. Missing endpoints yield ErrStartVertexNotFound
// (for from) or core.ErrVertexNotFound (for to).
func HasPath(g *core.Graph, from, to string) (bool, error) {
	res, err := search(g, from, to)
	if err != nil {
		return false, err
	}

	return res.Reached(to), nil
}

// ShortestPath returns a fewest-edge path from..to, both endpoints
// included; from == to yields [from]. Unreachable targets yield ErrNoPath.
func ShortestPath(g *core.Graph, from, to string) ([]string, error) {
	res, err := search(g, from, to)
	if err != nil {
		return nil, err
	}

	return res.PathTo(to)
}

// search runs BFS from from and stops as soon as to is dequeued.
// The start is validated before the target.
func search(g *core.Graph, from, to string) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(from) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("bfs: target %q: %w", to, core.ErrVertexNotFound)
	}
	res, err := BFS(g, from, WithOnVisit(func(id string, _ int) error {
		if id == to {
			return errFound
		}
		return nil
	}))
	if err != nil && !errors.Is(err, errFound) {
		return nil, err
	}

	return res, nil
}
