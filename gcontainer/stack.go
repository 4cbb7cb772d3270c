package gcontainer

// Stack is a LIFO stack backed by a [List].
// The zero value is an empty stack.
type Stack[T any] struct {
	l List[T]
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.l.PushBack(v)
}

// Pop removes and returns the value on top of the stack.
// It returns [ErrUnderflow] if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	return s.l.PopBack()
}

// Peek returns the value on top of the stack without removing it.
// It returns [ErrUnderflow] if the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if s.l.tail == nil {
		var zero T
		return zero, ErrUnderflow
	}
	return s.l.tail.Value, nil
}

// Len returns the number of values in the stack.
func (s *Stack[T]) Len() int { return s.l.Len() }

// Empty reports whether the stack holds no values.
func (s *Stack[T]) Empty() bool { return s.l.Len() == 0 }
