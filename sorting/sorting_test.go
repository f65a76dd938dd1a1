// SPDX-License-Identifier: MIT

package sorting_test

import (
	"cmp"
	"math"
	"slices"
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/sorting"
)

// inputs returns fixed edge cases plus random slices of several sizes.
func inputs() [][]int {
	out := [][]int{
		nil,
		{},
		{7},
		{2, 1},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
		{5, -1, 5, 0, -1, 9, 2, 2, 8, -7, 0, 5, 3, 1},
	}
	for _, n := range []int{11, 12, 13, 50, 257, 1000} {
		s := make([]int, n)
		for i := range s {
			s[i] = randomdata.Number(-100, 100)
		}
		out = append(out, s)
	}

	return out
}

func sortedCopy(s []int) []int {
	c := slices.Clone(s)
	slices.Sort(c)

	return c
}

func TestInPlaceSorts(t *testing.T) {
	sorts := map[string]func([]int){
		"quick":     sorting.QuickSortOrdered[int],
		"heap":      sorting.HeapSortOrdered[int],
		"insertion": func(s []int) { sorting.InsertionSort(s, cmp.Compare[int]) },
	}
	for name, sortFn := range sorts {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs() {
				got := slices.Clone(in)
				sortFn(got)
				if diff := gocmp.Diff(sortedCopy(in), got); diff != "" {
					t.Fatalf("%s(%v) mismatch (-want +got):\n%s", name, in, diff)
				}
			}
		})
	}
}

func TestMergeSort_NewSlice(t *testing.T) {
	for _, in := range inputs() {
		orig := slices.Clone(in)
		got := sorting.MergeSortOrdered(in)
		if diff := gocmp.Diff(sortedCopy(in), got); diff != "" {
			t.Fatalf("MergeSort(%v) mismatch (-want +got):\n%s", in, diff)
		}
		assert.Equal(t, orig, in, "input must not change")
	}

	assert.Nil(t, sorting.MergeSortOrdered[int](nil))
	empty := sorting.MergeSortOrdered([]int{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

type record struct {
	key int
	seq int
}

func byKey(a, b record) int { return cmp.Compare(a.key, b.key) }

// TestStability sorts records by key only; equal keys must keep seq order.
func TestStability(t *testing.T) {
	in := make([]record, 500)
	for i := range in {
		in[i] = record{key: randomdata.Number(0, 10), seq: i}
	}
	want := slices.Clone(in)
	slices.SortStableFunc(want, byKey)

	assert.Equal(t, want, sorting.MergeSort(in, byKey))

	ins := slices.Clone(in)
	sorting.InsertionSort(ins, byKey)
	assert.Equal(t, want, ins)
}

func TestQuickSort_CustomComparator(t *testing.T) {
	words := []string{"pear", "fig", "banana", "kiwi", "apple", "plum", "date", "cherry", "lime", "mango", "grape", "melon", "lemon"}
	byLenThenAlpha := func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	}
	got := slices.Clone(words)
	sorting.QuickSort(got, byLenThenAlpha)
	assert.True(t, sorting.IsSorted(got, byLenThenAlpha))
	assert.ElementsMatch(t, words, got)

	desc := slices.Clone(words)
	sorting.HeapSort(desc, func(a, b string) int { return cmp.Compare(b, a) })
	assert.Equal(t, "plum", desc[0])
}

// TestQuickSort_Adversarial runs inputs that defeat naive pivots.
func TestQuickSort_Adversarial(t *testing.T) {
	const n = 100_000
	asc := make([]int, n)
	organ := make([]int, n)
	for i := range asc {
		asc[i] = i
		organ[i] = min(i, n-i)
	}
	for _, in := range [][]int{asc, organ} {
		got := slices.Clone(in)
		sorting.QuickSortOrdered(got)
		assert.True(t, sorting.IsSortedOrdered(got))
	}
}

func TestIsSorted(t *testing.T) {
	assert.True(t, sorting.IsSortedOrdered([]int{}))
	assert.True(t, sorting.IsSortedOrdered([]int{1, 1, 2}))
	assert.False(t, sorting.IsSortedOrdered([]int{2, 1}))
}

func TestCountingSort(t *testing.T) {
	got, err := sorting.CountingSort([]int{4, 1, 0, 4, 2, 9}, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 4, 4, 9}, got)

	empty, err := sorting.CountingSort([]uint8{}, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = sorting.CountingSort([]int{1, -2}, 5)
	assert.ErrorIs(t, err, sorting.ErrNegative)
	_, err = sorting.CountingSort([]int{1, 6}, 5)
	assert.ErrorIs(t, err, sorting.ErrAboveMax)
	_, err = sorting.CountingSort([]int{1}, -1)
	assert.ErrorIs(t, err, sorting.ErrNegative)

	in := make([]uint16, 2000)
	for i := range in {
		in[i] = uint16(randomdata.Number(0, 1000))
	}
	got16, err := sorting.CountingSort(in, 999)
	require.NoError(t, err)
	want := slices.Clone(in)
	slices.Sort(want)
	assert.Equal(t, want, got16)
}

// TestCountingSort_HugeBound checks that a loose bound does not size the
// counter table; only the largest value present does.
func TestCountingSort_HugeBound(t *testing.T) {
	got, err := sorting.CountingSort([]uint64{3, 1, 2}, math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, got)

	gotInt, err := sorting.CountingSort([]int{9, 0, 4}, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 9}, gotInt)

	none, err := sorting.CountingSort([]int64{}, math.MaxInt64)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = sorting.CountingSort([]int{1 << 62, 0}, 1<<62)
	assert.ErrorIs(t, err, sorting.ErrBoundTooLarge)
	_, err = sorting.CountingSort([]uint64{math.MaxUint64}, math.MaxUint64)
	assert.ErrorIs(t, err, sorting.ErrBoundTooLarge)
	_, err = sorting.CountingSort([]int8{math.MaxInt8, 0}, math.MaxInt8)
	assert.NoError(t, err)
}

func TestRadixSort(t *testing.T) {
	in := []uint64{0, 1 << 40, 255, 256, 65535, 1<<64 - 1, 42, 256, 7}
	want := slices.Clone(in)
	slices.Sort(want)
	assert.Equal(t, want, sorting.RadixSort(in))
	assert.Equal(t, uint64(1<<40), in[1], "input must not change")

	small := make([]uint32, 3000)
	for i := range small {
		small[i] = uint32(randomdata.Number(0, 1<<30))
	}
	want32 := slices.Clone(small)
	slices.Sort(want32)
	assert.Equal(t, want32, sorting.RadixSort(small))

	assert.Empty(t, sorting.RadixSort([]uint{}))
	assert.Equal(t, []uint8{0, 0}, sorting.RadixSort([]uint8{0, 0}))
}
