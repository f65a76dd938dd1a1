// Package bst implements an unbalanced binary search tree over any type
// with a total order.
//
// For every node, keys in its left subtree compare strictly less and
// keys in its right subtree strictly greater. Inserting a key that is
// already present is a no-op reported by a false return.
//
// Traversals
//
//   - InOrder, PreOrder, PostOrder: iterative over an explicit
//     stack.Stack, O(n) time and O(h) auxiliary space (h = height).
//   - LevelOrder: breadth-first over a queue.Queue, O(n) time and O(w)
//     auxiliary space (w = widest level).
//   - InOrderRecursive: call-stack reference implementation for small
//     trees; a degenerate tree of depth h uses h goroutine stack frames.
//
// Height is not balanced; sorted insertions produce a linked chain and
// O(n) operations. Insert, Contains and Remove are iterative so such
// chains do not grow the goroutine stack.
package bst
