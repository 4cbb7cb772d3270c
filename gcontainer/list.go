package gcontainer

import "iter"

// Element is a single entry in a [List].
type Element[T any] struct {
	next, prev *Element[T]

	// The list this element belongs to.
	// Cleared on removal so a stale element cannot unlink anything.
	list *List[T]

	Value T
}

// Next returns the element after e, or nil if e is the last element.
func (e *Element[T]) Next() *Element[T] {
	if e.list == nil {
		return nil
	}
	return e.next
}

// Prev returns the element before e, or nil if e is the first element.
func (e *Element[T]) Prev() *Element[T] {
	if e.list == nil {
		return nil
	}
	return e.prev
}

// List is a doubly linked list.
// The zero value is an empty list.
type List[T any] struct {
	head, tail *Element[T]
	n          int
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	return l.n
}

// Front returns the first element of l, or nil if l is empty.
func (l *List[T]) Front() *Element[T] {
	return l.head
}

// Back returns the last element of l, or nil if l is empty.
func (l *List[T]) Back() *Element[T] {
	return l.tail
}

// PushBack appends v to l and returns the new element.
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v, list: l, prev: l.tail}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.n++
	return e
}

// PushFront prepends v to l and returns the new element.
func (l *List[T]) PushFront(v T) *Element[T] {
	e := &Element[T]{Value: v, list: l, next: l.head}
	if l.head == nil {
		l.tail = e
	} else {
		l.head.prev = e
	}
	l.head = e
	l.n++
	return e
}

// PopFront removes the first element and returns its value.
// It returns [ErrUnderflow] if l is empty.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrUnderflow
	}
	e := l.head
	l.unlink(e)
	return e.Value, nil
}

// PopBack removes the last element and returns its value.
// It returns [ErrUnderflow] if l is empty.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrUnderflow
	}
	e := l.tail
	l.unlink(e)
	return e.Value, nil
}

// Remove unlinks e from l.
// It reports false, leaving l unchanged, if e does not belong to l.
func (l *List[T]) Remove(e *Element[T]) bool {
	if e == nil || e.list != l {
		return false
	}
	l.unlink(e)
	return true
}

func (l *List[T]) unlink(e *Element[T]) {
	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}

	e.next = nil
	e.prev = nil
	e.list = nil
	l.n--
}

// At returns the element at position i, counting from the front.
// The ok value is false when i is out of range.
//
// At walks from whichever end of the list is closer to i.
func (l *List[T]) At(i int) (e *Element[T], ok bool) {
	if i < 0 || i >= l.n {
		return nil, false
	}

	if i <= l.n/2 {
		e = l.head
		for range i {
			e = e.next
		}
		return e, true
	}

	e = l.tail
	for range l.n - 1 - i {
		e = e.prev
	}
	return e, true
}

// Clear removes every element from l.
func (l *List[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.next = nil
		e.prev = nil
		e.list = nil
		e = next
	}
	l.head = nil
	l.tail = nil
	l.n = 0
}

// All returns an iterator over the values in l, front to back.
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values in l, back to front.
// The list must not be modified during iteration.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.tail; e != nil; e = e.prev {
			if !yield(e.Value) {
				return
			}
		}
	}
}
