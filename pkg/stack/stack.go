// Package stack provides a slice backed stack used as
// an explicit work list in place of recursion.
package stack

// Stack is an implementation of stack container.
type Stack[T any] struct{ s []T }

// New creates a new instance of Stack.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{s: make([]T, 0, capacity)}
}

// Push adds an element to the stack.
func (s *Stack[T]) Push(f T) { s.s = append(s.s, f) }

// Pop returns and deletes the last stack element.
func (s *Stack[T]) Pop() (top T) {
	if l := len(s.s) - 1; l >= 0 {
		var zero T
		top, s.s[l] = s.s[l], zero
		s.s = s.s[:l]
	}
	return
}

// Top returns the last stack element.
func (s *Stack[T]) Top() (top T) {
	if l := len(s.s) - 1; l >= 0 {
		return s.s[l]
	}
	return
}

// Len returns the stack length.
func (s *Stack[T]) Len() int {
	return len(s.s)
}
