package queue

// compactMin is the smallest consumed prefix worth reclaiming.
const compactMin = 32

// Queue is a first-in, first-out sequence of T.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	items []T // items[head:] are live, front first
	head  int
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends v at the rear.
// Complexity: O(1) amortized.
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the front element, or (zero, false) if empty.
// Complexity: O(1) amortized.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	switch {
	case q.head == len(q.items):
		// drained: rewind onto the same backing array
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactMin && q.head*2 >= cap(q.items):
		q.compact()
	}

	return v, true
}

// compact moves the live window to the start of the backing array.
func (q *Queue[T]) compact() {
	n := copy(q.items, q.items[q.head:])
	clear(q.items[n:])
	q.items = q.items[:n]
	q.head = 0
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head >= len(q.items) {
		var zero T
		return zero, false
	}

	return q.items[q.head], true
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.head >= len(q.items) }

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int { return len(q.items) - q.head }

// Clear drops all elements.
func (q *Queue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}

// Values returns a copy of the queued elements from front to rear.
func (q *Queue[T]) Values() []T {
	out := make([]T, q.Size())
	copy(out, q.items[q.head:])

	return out
}
