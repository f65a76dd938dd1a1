package stack

// Stack is a last-in, first-out sequence of T.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// New returns an empty Stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// NewWithCapacity returns an empty Stack whose backing array can hold n
// elements before growing.
func NewWithCapacity[T any](n int) *Stack[T] {
	if n < 0 {
		n = 0
	}

	return &Stack[T]{items: make([]T, 0, n)}
}

// Push places v on top of the stack.
// Complexity: O(1) amortized.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// Returns (zero, false) if the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero // drop the reference held by the backing array
	s.items = s.items[:n-1]

	return v, true
}

// Peek returns the top element without removing it.
// Returns (zero, false) if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Size returns the number of elements on the stack.
func (s *Stack[T]) Size() int { return len(s.items) }

// Clear removes every element, keeping the backing array for reuse.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Values returns a copy of the elements from bottom to top.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}
