// Package queue provides a generic FIFO queue over a growable slice.
//
// Dequeue never shifts the remaining elements. The queue keeps a head
// cursor into its backing array; once the consumed prefix grows past half
// of the array the live window is copied down in a single pass. Each
// element is therefore moved at most a constant number of times, giving
// O(1) amortized Enqueue and Dequeue.
//
// Dequeue and Peek on an empty queue return (zero, false).
//
// A Queue is not safe for concurrent use.
package queue
