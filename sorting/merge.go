// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// MergeSort returns a sorted copy of s; s itself is not modified. The
// sort is stable: equal elements keep their relative order. A nil input
// yields nil.
func MergeSort[T any](s []T, cmp func(a, b T) int) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	if len(out) < 2 {
		return out
	}
	buf := make([]T, len(out))
	mergeSort(out, buf, cmp)

	return out
}

// MergeSortOrdered returns a sorted copy of s.
func MergeSortOrdered[T constraints.Ordered](s []T) []T {
	return MergeSort(s, cmp.Compare[T])
}

// mergeSort sorts s using buf (same length) as scratch space.
func mergeSort[T any](s, buf []T, cmp func(a, b T) int) {
	if len(s) < insertionCutoff {
		InsertionSort(s, cmp)
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], cmp)
	mergeSort(s[mid:], buf[mid:], cmp)
	if cmp(s[mid-1], s[mid]) <= 0 {
		return // halves already in order
	}

	copy(buf, s)
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		// take from the left on ties to stay stable
		if cmp(buf[j], buf[i]) < 0 {
			s[k] = buf[j]
			j++
		} else {
			s[k] = buf[i]
			i++
		}
		k++
	}
	k += copy(s[k:], buf[i:mid])
	copy(s[k:], buf[j:])
}
