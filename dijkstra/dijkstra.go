// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"go.uber.org/zap"

	"github.com/katalvlaran/algokit/core"
)

// Dijkstra computes shortest distances from Options.Source to every
// vertex reachable in g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance; unreachable vertices are absent.
//   - prev: predecessor map under WithReturnPath (nil otherwise);
//     prev[v] == u means the shortest path to v ends with u→v.
//
// Validation order: ErrEmptySource, ErrNilGraph, option errors,
// ErrUnweightedGraph, ErrVertexNotFound, then ErrNegativeWeight when
// WithNegativeWeightCheck is set.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.CheckNegative {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, n),
		settled: make(map[string]bool, n),
		pq:      priorityqueue.NewWith(byDistance),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, n)
	}

	r.push(cfg.Source, 0)
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	cfg.Logger.Debug("dijkstra finished",
		zap.String("source", cfg.Source),
		zap.Int("settled", len(r.settled)),
		zap.Int("pushes", r.pushes),
		zap.Int("stale", r.stale),
	)

	return r.dist, r.prev, nil
}

// nodeItem is one heap entry; seq breaks ties in push order.
type nodeItem struct {
	id   string
	dist int64
	seq  int
}

func byDistance(a, b interface{}) int {
	x, y := a.(nodeItem), b.(nodeItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	}

	return x.seq - y.seq
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	settled map[string]bool
	pq      *priorityqueue.Queue
	pushes  int
	stale   int
}

func (r *runner) push(id string, d int64) {
	r.dist[id] = d
	r.pq.Enqueue(nodeItem{id: id, dist: d, seq: r.pushes})
	r.pushes++
}

// process pops the closest unsettled vertex, settles it and relaxes its
// outgoing edges until the heap is empty or MaxDistance is passed.
func (r *runner) process() error {
	for {
		v, ok := r.pq.Dequeue()
		if !ok {
			return nil
		}
		item := v.(nodeItem)
		if r.settled[item.id] || item.dist != r.dist[item.id] {
			r.stale++
			continue
		}
		r.settled[item.id] = true
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u string, du int64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}
	for _, e := range edges {
		w := e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w > 0 && du > math.MaxInt64-w {
			continue // would overflow; no finite distance
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[e.To]; seen && nd >= old {
			continue
		}
		if r.settled[e.To] {
			// only reachable with a negative weight; the result is
			// unspecified, keep the settled distance
			continue
		}
		if r.prev != nil {
			r.prev[e.To] = u
		}
		r.push(e.To, nd)
	}

	return nil
}
