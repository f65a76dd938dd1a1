// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// InsertionSort sorts s in place. It is stable.
func InsertionSort[T any](s []T, cmp func(a, b T) int) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i
		for ; j > 0 && cmp(v, s[j-1]) < 0; j-- {
			s[j] = s[j-1]
		}
		s[j] = v
	}
}

// IsSorted reports whether s is in ascending cmp order.
func IsSorted[T any](s []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[i-1]) < 0 {
			return false
		}
	}

	return true
}

// IsSortedOrdered reports whether s is in ascending order.
func IsSortedOrdered[T constraints.Ordered](s []T) bool {
	return IsSorted(s, cmp.Compare[T])
}
