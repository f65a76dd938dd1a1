// Package linkedlist implements a generic singly linked list with a
// tracked tail.
//
// Append and Prepend are O(1). Index and value based operations walk
// from the head and are O(n). Indexed operations report
// ErrIndexOutOfRange and leave the list untouched; value lookups report
// absence with a boolean.
//
// Each node is owned by exactly one list and is reachable from head
// exactly once; the last node's next link is nil, so traversal always
// terminates. All yields a lazy, restartable traversal; ToSlice takes a
// snapshot.
package linkedlist
