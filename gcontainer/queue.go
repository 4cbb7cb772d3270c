package gcontainer

// Queue is a FIFO queue backed by a [List].
// The zero value is an empty queue.
type Queue[T any] struct {
	l List[T]
}

// Push adds v to the back of the queue.
func (q *Queue[T]) Push(v T) {
	q.l.PushBack(v)
}

// Pop removes and returns the value at the front of the queue.
// It returns [ErrUnderflow] if the queue is empty.
func (q *Queue[T]) Pop() (T, error) {
	return q.l.PopFront()
}

// Peek returns the value at the front of the queue without removing it.
// It returns [ErrUnderflow] if the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	if q.l.head == nil {
		var zero T
		return zero, ErrUnderflow
	}
	return q.l.head.Value, nil
}

// Len returns the number of values in the queue.
func (q *Queue[T]) Len() int { return q.l.Len() }

// Empty reports whether the queue holds no values.
func (q *Queue[T]) Empty() bool { return q.l.Len() == 0 }
