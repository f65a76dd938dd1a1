// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// HeapSort sorts s in place using a binary max-heap. It is not stable
// and needs no extra memory.
func HeapSort[T any](s []T, cmp func(a, b T) int) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, cmp)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end, cmp)
	}
}

// HeapSortOrdered sorts s in place in ascending order.
func HeapSortOrdered[T constraints.Ordered](s []T) {
	HeapSort(s, cmp.Compare[T])
}

// siftDown restores the max-heap property of s[:n] below root.
func siftDown[T any](s []T, root, n int, cmp func(a, b T) int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && cmp(s[child], s[child+1]) < 0 {
			child++
		}
		if cmp(s[root], s[child]) >= 0 {
			return
		}
		s[root], s[child] = s[child], s[root]
		root = child
	}
}
