package linkedlist

// Validate exposes the structural check to the external test package.
func (l *LinkedList[T]) Validate() error { return l.validate() }
