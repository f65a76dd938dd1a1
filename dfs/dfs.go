// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/stack"
)

// walker holds the state of one DFS call.
type walker struct {
	g    *core.Graph
	opts DFSOptions
	res  *DFSResult
}

// DFS performs an iterative depth-first traversal from startID.
//
// The explicit stack holds one frame per vertex on the current path;
// each frame remembers how far through its adjacency list it has got,
// so already visited neighbours are skipped without being pushed. The
// resulting orders equal those of DFSRecursive.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// context errors, ErrNeighborFetch and hook errors (wrapped).
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	w := &walker{g: g, opts: o, res: newResult(g.VertexCount())}
	if err := w.tree(startID); err != nil {
		return nil, err
	}
	if o.FullTraversal {
		for _, id := range g.Vertices() {
			if w.res.Visited[id] {
				continue
			}
			if err := w.tree(id); err != nil {
				return nil, err
			}
		}
	}

	return w.res, nil
}

// discover marks id visited and runs the pre-order hook.
func (w *walker) discover(id, parent string, depth int, root bool) (*frame, error) {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if !root {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit(%q): %w", id, err)
		}
	}

	return newFrame(w.g, id, parent, depth)
}

// tree explores the DFS tree rooted at root.
func (w *walker) tree(root string) error {
	st := stack.New[*frame]()
	f, err := w.discover(root, "", 0, true)
	if err != nil {
		return err
	}
	st.Push(f)

	for !st.IsEmpty() {
		if err = w.opts.Ctx.Err(); err != nil {
			return err
		}
		top, _ := st.Peek()
		nbr, ok := top.advance()
		if !ok {
			st.Pop()
			w.res.PostOrder = append(w.res.PostOrder, top.id)
			if w.opts.OnExit != nil {
				if err = w.opts.OnExit(top.id); err != nil {
					return fmt.Errorf("dfs: OnExit(%q): %w", top.id, err)
				}
			}
			continue
		}
		if w.res.Visited[nbr] {
			continue
		}
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			w.res.SkippedNeighbors++
			continue
		}
		child, err := w.discover(nbr, top.id, top.depth+1, false)
		if err != nil {
			return err
		}
		st.Push(child)
	}

	return nil
}

// DFSRecursive is the recursive reference traversal from startID with
// default options. Its Order and PostOrder match DFS. Recursion depth
// equals the longest tree path, so prefer DFS on very deep graphs.
func DFSRecursive(g *core.Graph, startID string) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}
	res := newResult(g.VertexCount())

	var visit func(id string, depth int) error
	visit = func(id string, depth int) error {
		res.Visited[id] = true
		res.Depth[id] = depth
		res.Order = append(res.Order, id)
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrNeighborFetch, id, err)
		}
		for _, nbr := range nbrs {
			if res.Visited[nbr] {
				continue
			}
			res.Parent[nbr] = id
			if err = visit(nbr, depth+1); err != nil {
				return err
			}
		}
		res.PostOrder = append(res.PostOrder, id)

		return nil
	}
	if err := visit(startID, 0); err != nil {
		return nil, err
	}

	return res, nil
}
