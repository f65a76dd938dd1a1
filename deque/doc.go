// Package deque provides a generic double-ended queue on a growable ring
// buffer.
//
// PushFront, PushBack, PopFront and PopBack run in O(1) amortized time;
// the buffer doubles (power-of-two sizes) when full and never shrinks.
// Pops and peeks on an empty deque return (zero, false). Indexed access
// with At reports ErrIndexOutOfRange instead of reading past the live
// window.
package deque
