// Package sorting provides the classic comparison sorts plus two
// integer sorts that run in linear time.
//
// Every comparison sort takes a comparator cmp(a, b) that returns a
// negative number when a < b, zero when equal and a positive number when
// a > b (the contract of cmp.Compare and slices.SortFunc). The ...Ordered
// variants use cmp.Compare for any constraints.Ordered type.
//
//	QuickSort      in place, not stable, O(n log n) expected, O(n²) worst
//	MergeSort      returns a new slice, stable, O(n log n), O(n) extra
//	HeapSort       in place, not stable, O(n log n), O(1) extra
//	InsertionSort  in place, stable, O(n²); fast on tiny or nearly sorted input
//	CountingSort   new slice, stable, O(n + k) for values in [0, k]
//	RadixSort      new slice, stable, O(n · w) for w-byte unsigned values
//
// QuickSort picks its pivot as the median of the first, middle and last
// element and partitions with Hoare's scheme. It recurses only into the
// smaller side and loops over the larger one, so its stack depth stays
// O(log n) even when the running time degrades. Slices shorter than
// twelve elements are finished with insertion sort.
//
// Zero- and one-element inputs are returned unchanged by every function.
package sorting
