// SPDX-License-Identifier: MIT

package sorting

import "errors"

var (
	// ErrNegative is returned by CountingSort for a value below zero.
	ErrNegative = errors.New("sorting: negative value")

	// ErrAboveMax is returned by CountingSort for a value above the bound.
	ErrAboveMax = errors.New("sorting: value above bound")

	// ErrBoundTooLarge is returned by CountingSort when the largest value
	// present would need more than maxCountingKeys counters.
	ErrBoundTooLarge = errors.New("sorting: value range too large for counting sort")
)

// maxCountingKeys caps the counter table CountingSort will allocate.
const maxCountingKeys = 1 << 24

// insertionCutoff is the slice length below which QuickSort switches to
// insertion sort.
const insertionCutoff = 12
