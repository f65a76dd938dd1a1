package deque

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by At for an index outside [0, Len).
var ErrIndexOutOfRange = errors.New("deque: index out of range")

const minCapacity = 8

// Deque is a double-ended queue of T.
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	buf   []T // len(buf) is zero or a power of two
	head  int // index of the front element
	count int
}

// New returns an empty Deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// PushBack appends v at the back.
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[d.index(d.count)] = v
	d.count++
}

// PushFront inserts v at the front.
func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = (d.head - 1) & (len(d.buf) - 1)
	d.buf[d.head] = v
	d.count++
}

// PopFront removes and returns the front element.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.index(1)
	d.count--

	return v, true
}

// PopBack removes and returns the back element.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	i := d.index(d.count - 1)
	v := d.buf[i]
	d.buf[i] = zero
	d.count--

	return v, true
}

// PeekFront returns the front element without removing it.
func (d *Deque[T]) PeekFront() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}

	return d.buf[d.head], true
}

// PeekBack returns the back element without removing it.
func (d *Deque[T]) PeekBack() (T, bool) {
	if d.count == 0 {
		var zero T
		return zero, false
	}

	return d.buf[d.index(d.count-1)], true
}

// At returns the i-th element counted from the front.
func (d *Deque[T]) At(i int) (T, error) {
	if i < 0 || i >= d.count {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, d.count)
	}

	return d.buf[d.index(i)], nil
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.count }

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool { return d.count == 0 }

// Clear removes every element and keeps the buffer.
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head = 0
	d.count = 0
}

// Values returns a copy of the elements from front to back.
func (d *Deque[T]) Values() []T {
	out := make([]T, d.count)
	for i := range out {
		out[i] = d.buf[d.index(i)]
	}

	return out
}

// index maps a logical offset from the front to a buffer slot.
func (d *Deque[T]) index(off int) int {
	return (d.head + off) & (len(d.buf) - 1)
}

// grow doubles the buffer when it is full, unrolling the ring so the
// front lands at slot 0.
func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	size := len(d.buf) * 2
	if size == 0 {
		size = minCapacity
	}
	buf := make([]T, size)
	if d.count > 0 {
		n := copy(buf, d.buf[d.head:])
		copy(buf[n:], d.buf[:d.head])
	}
	d.buf = buf
	d.head = 0
}
