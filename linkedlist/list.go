package linkedlist

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange is returned when an index falls outside the list.
var ErrIndexOutOfRange = errors.New("linkedlist: index out of range")

type node[T comparable] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked list of T.
// The zero value is an empty list ready to use.
type LinkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty list.
func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// FromSlice builds a list holding vs in order.
func FromSlice[T comparable](vs []T) *LinkedList[T] {
	l := New[T]()
	for _, v := range vs {
		l.Append(v)
	}

	return l
}

// Append adds v after the current tail. O(1).
func (l *LinkedList[T]) Append(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// Prepend adds v before the current head. O(1).
func (l *LinkedList[T]) Prepend(v T) {
	n := &node[T]{value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// InsertAt places v so that it ends up at position index.
// Valid indexes are 0..Len(); Len() appends.
func (l *LinkedList[T]) InsertAt(index int, v T) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("%w: insert at %d, len %d", ErrIndexOutOfRange, index, l.size)
	}
	switch index {
	case 0:
		l.Prepend(v)
	case l.size:
		l.Append(v)
	default:
		prev := l.nodeAt(index - 1)
		prev.next = &node[T]{value: v, next: prev.next}
		l.size++
	}

	return nil
}

// Get returns the value at index.
func (l *LinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: get %d, len %d", ErrIndexOutOfRange, index, l.size)
	}

	return l.nodeAt(index).value, nil
}

// RemoveAt unlinks and returns the value at index.
func (l *LinkedList[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: remove %d, len %d", ErrIndexOutOfRange, index, l.size)
	}
	if index == 0 {
		n := l.head
		l.unlink(nil, n)
		return n.value, nil
	}
	prev := l.nodeAt(index - 1)
	n := prev.next
	l.unlink(prev, n)

	return n.value, nil
}

// Delete removes the first node holding v and reports whether one was found.
func (l *LinkedList[T]) Delete(v T) bool {
	var prev *node[T]
	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if cur.value == v {
			l.unlink(prev, cur)
			return true
		}
	}

	return false
}

// unlink removes n, whose predecessor is prev (nil when n is the head),
// and re-points tail when n was the last node.
func (l *LinkedList[T]) unlink(prev, n *node[T]) {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	if l.tail == n {
		l.tail = prev
	}
	n.next = nil
	l.size--
}

// Find returns the index of the first node holding v.
func (l *LinkedList[T]) Find(v T) (int, bool) {
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == v {
			return i, true
		}
		i++
	}

	return -1, false
}

// Contains reports whether v is in the list.
func (l *LinkedList[T]) Contains(v T) bool {
	_, ok := l.Find(v)
	return ok
}

// Head returns the first value.
func (l *LinkedList[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.value, true
}

// Tail returns the last value.
func (l *LinkedList[T]) Tail() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	return l.tail.value, true
}

// Reverse reverses the list in place. O(n) time, O(1) space.
func (l *LinkedList[T]) Reverse() {
	var prev *node[T]
	cur := l.head
	l.tail = l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	l.head = prev
}

// Len returns the number of nodes.
func (l *LinkedList[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no nodes.
func (l *LinkedList[T]) IsEmpty() bool { return l.size == 0 }

// Clear drops every node.
func (l *LinkedList[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}

// All returns a lazy traversal of the list. Each range over the sequence
// starts again from the current head and yields at most as many values as
// the list held when that range began. Mutating the list while ranging
// over it is not supported.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		remaining := l.size
		for cur := l.head; cur != nil && remaining > 0; cur = cur.next {
			if !yield(cur.value) {
				return
			}
			remaining--
		}
	}
}

// ToSlice returns a snapshot of the values from head to tail.
func (l *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}

// nodeAt walks to position i; callers check bounds.
func (l *LinkedList[T]) nodeAt(i int) *node[T] {
	cur := l.head
	for ; i > 0; i-- {
		cur = cur.next
	}

	return cur
}

// validate walks the chain and checks the size and tail bookkeeping.
func (l *LinkedList[T]) validate() error {
	steps := 0
	var last *node[T]
	for cur := l.head; cur != nil; cur = cur.next {
		steps++
		if steps > l.size {
			return fmt.Errorf("linkedlist: chain longer than size %d", l.size)
		}
		last = cur
	}
	if steps != l.size {
		return fmt.Errorf("linkedlist: chain has %d nodes, size %d", steps, l.size)
	}
	if last != l.tail {
		return errors.New("linkedlist: tail does not point at last node")
	}

	return nil
}
