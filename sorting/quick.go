// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// QuickSort sorts s in place in ascending cmp order. It is not stable.
func QuickSort[T any](s []T, cmp func(a, b T) int) {
	lo, hi := 0, len(s)-1
	for hi-lo+1 >= insertionCutoff {
		p := partition(s, lo, hi, cmp)
		// recurse into the smaller half, iterate on the larger
		if p-lo < hi-p {
			QuickSort(s[lo:p+1], cmp)
			lo = p + 1
		} else {
			QuickSort(s[p+1:hi+1], cmp)
			hi = p
		}
	}
	InsertionSort(s[lo:hi+1], cmp)
}

// QuickSortOrdered sorts s in place in ascending order.
func QuickSortOrdered[T constraints.Ordered](s []T) {
	QuickSort(s, cmp.Compare[T])
}

// medianOfThree orders s[lo], s[mid], s[hi] and returns the median value.
func medianOfThree[T any](s []T, lo, hi int, cmp func(a, b T) int) T {
	mid := lo + (hi-lo)/2
	if cmp(s[mid], s[lo]) < 0 {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if cmp(s[hi], s[lo]) < 0 {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if cmp(s[hi], s[mid]) < 0 {
		s[hi], s[mid] = s[mid], s[hi]
	}

	return s[mid]
}

// partition is Hoare's scheme around the median-of-three pivot. It
// returns p with lo <= p < hi such that every element of s[lo:p+1] is
// <= pivot and every element of s[p+1:hi+1] is >= pivot; both sides are
// non-empty.
func partition[T any](s []T, lo, hi int, cmp func(a, b T) int) int {
	pivot := medianOfThree(s, lo, hi, cmp)
	i, j := lo-1, hi+1
	for {
		for {
			i++
			if cmp(s[i], pivot) >= 0 {
				break
			}
		}
		for {
			j--
			if cmp(s[j], pivot) <= 0 {
				break
			}
		}
		if i >= j {
			return j
		}
		s[i], s[j] = s[j], s[i]
	}
}
