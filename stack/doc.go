// Package stack provides a generic LIFO stack backed by a growable slice.
//
// What
//
//   - Push appends to the top in O(1) amortized time.
//   - Pop and Peek return (value, true) for the most recently pushed
//     surviving element, or (zero, false) when the stack is empty.
//     Neither ever panics.
//
// Why
//
//   - Explicit-stack replacement for recursion in tree and graph
//     traversals (see bst and dfs), so deep inputs cannot exhaust the
//     goroutine stack.
//
// Complexity
//
//   - Push, Pop, Peek, Size, IsEmpty: O(1) (Push amortized).
//   - Memory: O(n) for n live elements.
//
// A Stack is not safe for concurrent use; callers serialize access.
package stack
