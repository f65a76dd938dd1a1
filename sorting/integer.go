// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CountingSort returns a sorted copy of s whose values must lie in
// [0, max]. The counter table is sized by the largest value actually
// present, so it runs in O(n + largest) time and memory; max only
// bounds validation. The sort is stable.
// Out-of-range values yield ErrNegative or ErrAboveMax, and a largest
// value of maxCountingKeys or more yields ErrBoundTooLarge.
func CountingSort[T constraints.Integer](s []T, max T) ([]T, error) {
	if max < 0 {
		return nil, fmt.Errorf("%w: bound %d", ErrNegative, max)
	}
	var hi T
	for i, v := range s {
		if v < 0 {
			return nil, fmt.Errorf("%w: s[%d]=%d", ErrNegative, i, v)
		}
		if v > max {
			return nil, fmt.Errorf("%w: s[%d]=%d > %d", ErrAboveMax, i, v, max)
		}
		hi = maxOf(hi, v)
	}
	if uint64(hi) >= maxCountingKeys {
		return nil, fmt.Errorf("%w: largest value %d", ErrBoundTooLarge, hi)
	}

	return countingSortBy(s, uint64(hi), func(v T) uint64 { return uint64(v) }), nil
}

// maxOf is the max builtin, which CountingSort's parameter shadows.
func maxOf[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// countingSortBy stably sorts s by key(v) in [0, k]; k must stay below
// maxCountingKeys.
func countingSortBy[T any](s []T, k uint64, key func(T) uint64) []T {
	counts := make([]int, k+1)
	for _, v := range s {
		counts[key(v)]++
	}
	// prefix sums give each key's first output slot
	total := 0
	for i, c := range counts {
		counts[i] = total
		total += c
	}
	out := make([]T, len(s))
	for _, v := range s {
		kv := key(v)
		out[counts[kv]] = v
		counts[kv]++
	}

	return out
}

// RadixSort returns a sorted copy of s using least-significant-digit
// radix sort with 256 buckets per pass, one pass per significant byte
// of the largest value.
// Each pass is a stable counting sort, so the whole sort is stable.
func RadixSort[T constraints.Unsigned](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	if len(out) < 2 {
		return out
	}

	var mx T
	for _, v := range out {
		mx = max(mx, v)
	}
	// stop once every remaining digit is zero
	for shift := uint(0); shift < 64 && uint64(mx)>>shift != 0; shift += 8 {
		out = countingSortBy(out, 255, func(v T) uint64 { return uint64(v) >> shift & 0xff })
	}

	return out
}
