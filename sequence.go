package containerkit

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/option"
)

// NewSequence creates an empty Sequence whose backing store
// starts with the configured initial capacity.
func NewSequence[T any](opts ...ContainerOption) (*Sequence[T], error) {
	conf := option.ToConfig(opts)
	capacity := conf.capacity()
	if capacity < 0 {
		return nil, ErrInvalidCapacity.F("sequence capacity must be non-negative, got %d", capacity)
	}
	return &Sequence[T]{buf: make([]T, capacity)}, nil
}

// Sequence is a growable, insertion ordered, indexed container.
// The zero value is an empty sequence with a zero capacity backing store.
type Sequence[T any] struct {
	// buf is the backing store, len(buf) is the slot capacity.
	buf []T
	// length is the count of live elements at the beginning of buf.
	length int
}

var (
	_ List[any]     = (*Sequence[any])(nil)
	_ Iterable[any] = (*Sequence[any])(nil)
)

func (s *Sequence[T]) Len() int { return s.length }

// Cap returns the slot count of the backing store.
func (s *Sequence[T]) Cap() int { return len(s.buf) }

// Append adds the received values to the end of the sequence.
// When the backing store is full, it grows by capacity doubling first,
// making Append amortized constant time.
func (s *Sequence[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	s.buf = grow(s.buf, s.length+len(vs))
	copy(s.buf[s.length:], vs)
	s.length += len(vs)
}

// Lookup returns the element at the given index.
func (s *Sequence[T]) Lookup(index int) (T, bool) {
	if index < 0 || s.length <= index {
		var zero T
		return zero, false
	}
	return s.buf[index], true
}

// Set replaces the element at the given index,
// and reports whether the index denoted a live element.
func (s *Sequence[T]) Set(index int, v T) bool {
	if index < 0 || s.length <= index {
		return false
	}
	s.buf[index] = v
	return true
}

// Insert places the received values at the given index,
// shifting the elements from that index towards the end.
// Index may equal Len, which is equivalent to Append.
func (s *Sequence[T]) Insert(index int, vs ...T) bool {
	if index < 0 || s.length < index {
		return false
	}
	if len(vs) == 0 {
		return true
	}
	s.buf = grow(s.buf, s.length+len(vs))
	copy(s.buf[index+len(vs):], s.buf[index:s.length])
	copy(s.buf[index:], vs)
	s.length += len(vs)
	return true
}

// Delete removes the element at the given index,
// shifting the elements after it towards the beginning.
func (s *Sequence[T]) Delete(index int) bool {
	if index < 0 || s.length <= index {
		return false
	}
	copy(s.buf[index:], s.buf[index+1:s.length])
	s.length--
	var zero T
	// the vacated slot must not retain the removed value
	s.buf[s.length] = zero
	return true
}

func (s *Sequence[T]) ToSlice() []T {
	return iterkit.Collect(s.Iter())
}

// Iter yields the live elements in insertion order.
func (s *Sequence[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.view() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterate returns a fresh cursor over the elements the sequence holds at the time of the call.
// The cursor never observes values appended after its creation,
// and it keeps reading its captured window correctly
// even when a later append reallocates the backing store.
func (s *Sequence[T]) Iterate() Cursor[T] {
	return &sliceCursor[T]{view: s.view()}
}

func (s *Sequence[T]) view() []T {
	return s.buf[:s.length:s.length]
}
