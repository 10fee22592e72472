package containerkit

import (
	"iter"

	"go.llib.dev/frameless/port/option"
)

// NewStack creates an empty Stack whose backing store
// starts with the configured initial capacity.
func NewStack[T any](opts ...ContainerOption) (*Stack[T], error) {
	conf := option.ToConfig(opts)
	capacity := conf.capacity()
	if capacity < 1 {
		return nil, ErrInvalidCapacity.F("stack capacity must be positive, got %d", capacity)
	}
	return &Stack[T]{buf: make([]T, capacity)}, nil
}

// Stack is a growable, last-in-first-out container.
// The zero value is an empty stack with a zero capacity backing store.
type Stack[T any] struct {
	// buf is the backing store, len(buf) is the slot capacity.
	buf []T
	// size is the count of live elements, the top element living at size-1.
	size int
}

var (
	_ LIFO[any]     = (*Stack[any])(nil)
	_ Iterable[any] = (*Stack[any])(nil)
)

// Push places the value on top of the stack.
// When the backing store is full, it grows by capacity doubling first.
func (s *Stack[T]) Push(v T) {
	s.buf = grow(s.buf, s.size+1)
	s.buf[s.size] = v
	s.size++
}

// Pop removes and returns the most recently pushed element.
// Popping an empty stack yields ErrEmpty and leaves the stack unchanged.
func (s *Stack[T]) Pop() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	s.size--
	v := s.buf[s.size]
	var zero T
	// the vacated slot must not retain the popped value
	s.buf[s.size] = zero
	return v, nil
}

// Peek returns the most recently pushed element without removing it.
// Peeking an empty stack yields ErrEmpty.
func (s *Stack[T]) Peek() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.buf[s.size-1], nil
}

func (s *Stack[T]) Len() int { return s.size }

// Cap returns the slot count of the backing store.
func (s *Stack[T]) Cap() int { return len(s.buf) }

func (s *Stack[T]) IsEmpty() bool { return s.size == 0 }

// ToSlice returns the elements in push order, the top element being the last.
func (s *Stack[T]) ToSlice() []T {
	if s.size == 0 {
		return nil
	}
	return append([]T(nil), s.buf[:s.size]...)
}

// Iter yields the elements in pop order, starting from the top.
func (s *Stack[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.size - 1; 0 <= i; i-- {
			if !yield(s.buf[i]) {
				return
			}
		}
	}
}

// Iterate returns a fresh cursor walking the elements in pop order,
// capturing the stack's contents at the time of the call.
// The copy keeps the cursor readable even after later pops
// release the popped values from the backing store.
func (s *Stack[T]) Iterate() Cursor[T] {
	return &sliceCursor[T]{view: s.ToSlice(), desc: true}
}
