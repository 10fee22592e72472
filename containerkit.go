// Package containerkit provides generic, slice backed container types
// with an explicit capacity doubling growth policy,
// and a stateful cursor abstraction for external iteration.
//
// The containers are plain in-memory values without internal synchronisation;
// sharing one between goroutines for mutation requires external locking by the caller.
package containerkit

import "iter"

// Sizer is a common interface for types that can report how many elements they hold.
type Sizer interface {
	Len() int
}

// List is the role interface of an insertion ordered, appendable container.
type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Iter() iter.Seq[T]
	Sizer
}

// LIFO is the role interface of a last-in-first-out container.
type LIFO[T any] interface {
	Push(v T)
	Pop() (T, error)
	Peek() (T, error)
	IsEmpty() bool
	Sizer
}

// Cursor is a stateful, non-owning traversal handle over a container's elements.
//
// A fresh Cursor stands before the first element,
// so Next must be called before the first Value read.
// Next reports whether the new position holds an element,
// and an exhausted cursor keeps reporting false until Reset is called.
type Cursor[T any] interface {
	// Next advances the cursor position by one,
	// and reports whether the new position denotes an existing element.
	Next() bool
	// Value returns the element at the current cursor position.
	// Reading before the first Next call or past the last element yields ErrOutOfRange.
	// The call is repeatable without side effects.
	Value() (T, error)
	// Reset returns the cursor to its initial position, before the first element.
	Reset()
}

// Iterable is the capability interface of containers that can produce a Cursor.
// Cursors made by Iterate are independent from each other,
// and observe the container's contents as they were at the time of the Iterate call.
type Iterable[T any] interface {
	Iterate() Cursor[T]
}
