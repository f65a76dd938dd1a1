package bst

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/algokit/queue"
	"github.com/katalvlaran/algokit/stack"
)

type node[T any] struct {
	key         T
	left, right *node[T]
}

// Tree is a binary search tree ordered by a comparator.
type Tree[T any] struct {
	root *node[T]
	size int
	cmp  func(a, b T) int
}

// New returns an empty tree ordered by cmp, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// NewOrdered returns an empty tree using the natural order of T.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New[T](cmp.Compare[T])
}

// Insert adds v. It returns false, leaving the tree unchanged, if an
// equal key is already present.
func (t *Tree[T]) Insert(v T) bool {
	link := &t.root
	for *link != nil {
		c := t.cmp(v, (*link).key)
		switch {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return false
		}
	}
	*link = &node[T]{key: v}
	t.size++

	return true
}

// Contains reports whether a key equal to v is present.
func (t *Tree[T]) Contains(v T) bool {
	for n := t.root; n != nil; {
		c := t.cmp(v, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Remove deletes the key equal to v and reports whether it was present.
// A node with two children is replaced by its in-order successor.
func (t *Tree[T]) Remove(v T) bool {
	link := &t.root
	for *link != nil {
		c := t.cmp(v, (*link).key)
		if c == 0 {
			break
		}
		if c < 0 {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	n := *link
	if n == nil {
		return false
	}

	switch {
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		// detach the leftmost node of the right subtree
		succLink := &n.right
		for (*succLink).left != nil {
			succLink = &(*succLink).left
		}
		succ := *succLink
		*succLink = succ.right
		succ.left, succ.right = n.left, n.right
		*link = succ
	}
	t.size--

	return true
}

// Min returns the smallest key.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.key, true
}

// Max returns the largest key.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, true
}

// Len returns the number of keys.
func (t *Tree[T]) Len() int { return t.size }

// Height returns the number of nodes on the longest root-to-leaf path;
// an empty tree has height 0.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	type item struct {
		n     *node[T]
		depth int
	}
	h := 0
	q := queue.New[item]()
	q.Enqueue(item{t.root, 1})
	for !q.IsEmpty() {
		it, _ := q.Dequeue()
		h = max(h, it.depth)
		if it.n.left != nil {
			q.Enqueue(item{it.n.left, it.depth + 1})
		}
		if it.n.right != nil {
			q.Enqueue(item{it.n.right, it.depth + 1})
		}
	}

	return h
}

// InOrder returns the keys in ascending order.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	s := stack.New[*node[T]]()
	n := t.root
	for n != nil || !s.IsEmpty() {
		for n != nil {
			s.Push(n)
			n = n.left
		}
		n, _ = s.Pop()
		out = append(out, n.key)
		n = n.right
	}

	return out
}

// PreOrder returns the keys node-left-right.
func (t *Tree[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}
	s := stack.New[*node[T]]()
	s.Push(t.root)
	for !s.IsEmpty() {
		n, _ := s.Pop()
		out = append(out, n.key)
		// right first so left is popped first
		if n.right != nil {
			s.Push(n.right)
		}
		if n.left != nil {
			s.Push(n.left)
		}
	}

	return out
}

// PostOrder returns the keys left-right-node.
func (t *Tree[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	s := stack.New[*node[T]]()
	var last *node[T]
	n := t.root
	for n != nil || !s.IsEmpty() {
		if n != nil {
			s.Push(n)
			n = n.left
			continue
		}
		top, _ := s.Peek()
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		out = append(out, top.key)
		last, _ = s.Pop()
	}

	return out
}

// LevelOrder returns the keys breadth-first, left to right within a level.
func (t *Tree[T]) LevelOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}
	q := queue.New[*node[T]]()
	q.Enqueue(t.root)
	for !q.IsEmpty() {
		n, _ := q.Dequeue()
		out = append(out, n.key)
		if n.left != nil {
			q.Enqueue(n.left)
		}
		if n.right != nil {
			q.Enqueue(n.right)
		}
	}

	return out
}

// InOrderRecursive is the call-stack formulation of InOrder.
func (t *Tree[T]) InOrderRecursive() []T {
	out := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)

	return out
}
