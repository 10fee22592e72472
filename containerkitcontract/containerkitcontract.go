// Package containerkitcontract provides reusable behavioral contracts
// for the containerkit role interfaces.
package containerkitcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/containerkit"
)

// List defines the expected behavior of a containerkit.List implementation.
func List[T any](mk contract.Make[containerkit.List[T]], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("smoke", func(t *testcase.T) {
		var (
			list = mk(t)
			exp  []T
		)
		assert.Equal(t, 0, list.Len())
		t.Random.Repeat(3, 7, func() {
			v := c.makeT(t)
			list.Append(v)
			exp = append(exp, v)
		})
		assert.Equal(t, len(exp), list.Len())
		assert.Equal(t, exp, list.ToSlice())
		assert.Equal(t, exp, iterkit.Collect(list.Iter()))
	})

	s.Test("variadic append keeps the argument order", func(t *testcase.T) {
		var (
			list = mk(t)
			vs   = random.Slice(t.Random.IntBetween(2, 5), func() T { return c.makeT(t) })
		)
		list.Append(vs...)
		assert.Equal(t, vs, list.ToSlice())
	})

	s.Test("appending past any initial capacity keeps insertion order", func(t *testcase.T) {
		var (
			list = mk(t)
			exp  []T
		)
		t.Random.Repeat(32, 64, func() {
			v := c.makeT(t)
			list.Append(v)
			exp = append(exp, v)
		})
		assert.Equal(t, len(exp), list.Len())
		assert.Equal(t, exp, list.ToSlice())
	})

	return s.AsSuite(fmt.Sprintf("List[%s]", reflectkit.TypeOf[T]().String()))
}

type ListOption[T any] interface {
	option.Option[ListConfig[T]]
}

type ListConfig[T any] struct {
	// MakeT creates a value for the contract's testing subject.
	MakeT func(tb testing.TB) T
}

func (c ListConfig[T]) Configure(oth *ListConfig[T]) {
	oth.MakeT = zerokit.Coalesce(c.MakeT, oth.MakeT)
}

func (c ListConfig[T]) makeT(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeT, makeT[T])(tb)
}

// LIFO defines the expected behavior of a containerkit.LIFO implementation.
func LIFO[T any](mk contract.Make[containerkit.LIFO[T]], opts ...LIFOOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("smoke", func(t *testcase.T) {
		var (
			stack  = mk(t)
			pushed []T
		)
		assert.True(t, stack.IsEmpty())
		assert.Equal(t, 0, stack.Len())

		t.Random.Repeat(3, 7, func() {
			v := c.makeT(t)
			stack.Push(v)
			pushed = append(pushed, v)

			top, err := stack.Peek()
			assert.NoError(t, err)
			assert.Equal(t, v, top)
		})
		assert.False(t, stack.IsEmpty())
		assert.Equal(t, len(pushed), stack.Len())

		for i := len(pushed) - 1; 0 <= i; i-- {
			got, err := stack.Pop()
			assert.NoError(t, err)
			assert.Equal(t, pushed[i], got)
			assert.Equal(t, i, stack.Len())
		}
		assert.True(t, stack.IsEmpty())
	})

	s.Test("pop on an empty stack fails and leaves the stack empty", func(t *testcase.T) {
		stack := mk(t)
		_, err := stack.Pop()
		assert.ErrorIs(t, containerkit.ErrEmpty, err)
		assert.Equal(t, 0, stack.Len())
		assert.True(t, stack.IsEmpty())
	})

	s.Test("peek on an empty stack fails and leaves the stack empty", func(t *testcase.T) {
		stack := mk(t)
		_, err := stack.Peek()
		assert.ErrorIs(t, containerkit.ErrEmpty, err)
		assert.Equal(t, 0, stack.Len())
	})

	s.Test("peek returns what the next pop will, without mutating the stack", func(t *testcase.T) {
		stack := mk(t)
		t.Random.Repeat(1, 5, func() {
			stack.Push(c.makeT(t))
		})
		length := stack.Len()

		peeked, err := stack.Peek()
		assert.NoError(t, err)
		assert.Equal(t, length, stack.Len())

		popped, err := stack.Pop()
		assert.NoError(t, err)
		assert.Equal(t, peeked, popped)
		assert.Equal(t, length-1, stack.Len())
	})

	s.Test("interleaved pushes and pops respect the LIFO ordering", func(t *testcase.T) {
		var (
			stack = mk(t)
			model []T
		)
		t.Random.Repeat(25, 50, func() {
			if t.Random.Bool() || len(model) == 0 {
				v := c.makeT(t)
				stack.Push(v)
				model = append(model, v)
				return
			}
			exp := model[len(model)-1]
			model = model[:len(model)-1]
			got, err := stack.Pop()
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		})
		assert.Equal(t, len(model), stack.Len())
	})

	return s.AsSuite(fmt.Sprintf("LIFO[%s]", reflectkit.TypeOf[T]().String()))
}

type LIFOOption[T any] interface {
	option.Option[LIFOConfig[T]]
}

type LIFOConfig[T any] struct {
	// MakeT creates a value for the contract's testing subject.
	MakeT func(tb testing.TB) T
}

func (c LIFOConfig[T]) Configure(oth *LIFOConfig[T]) {
	oth.MakeT = zerokit.Coalesce(c.MakeT, oth.MakeT)
}

func (c LIFOConfig[T]) makeT(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeT, makeT[T])(tb)
}

// IterableSubject is the testing subject of the Iterable contract.
type IterableSubject[T any] struct {
	// Iterable is the cursor producing container under test.
	Iterable containerkit.Iterable[T]
	// Contents are the values Iterate is expected to yield, in traversal order.
	Contents []T
}

// Iterable defines the expected behavior of a containerkit.Iterable implementation
// and the cursors it produces.
//
// The Make function must return a populated container along with the values
// a fresh cursor is expected to traverse, in order.
func Iterable[T any](mk contract.Make[IterableSubject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) IterableSubject[T] {
		sub := mk(t)
		assert.NotEmpty(t, sub.Contents, "the Iterable contract requires a non-empty testing subject")
		return sub
	})

	s.Test("reading before the first advance is out of range", func(t *testcase.T) {
		cur := subject.Get(t).Iterable.Iterate()
		_, err := cur.Value()
		assert.ErrorIs(t, containerkit.ErrOutOfRange, err)
	})

	s.Test("advancing traverses the contents in order, then reports exhaustion", func(t *testcase.T) {
		var (
			sub = subject.Get(t)
			cur = sub.Iterable.Iterate()
			got []T
		)
		for cur.Next() {
			v, err := cur.Value()
			assert.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, sub.Contents, got)
	})

	s.Test("an exhausted cursor stays exhausted", func(t *testcase.T) {
		cur := subject.Get(t).Iterable.Iterate()
		for cur.Next() {
		}
		assert.False(t, cur.Next())
		_, err := cur.Value()
		assert.ErrorIs(t, containerkit.ErrOutOfRange, err)
	})

	s.Test("value reads are repeatable without side effects", func(t *testcase.T) {
		var (
			sub = subject.Get(t)
			cur = sub.Iterable.Iterate()
		)
		assert.True(t, cur.Next())
		for range 3 {
			v, err := cur.Value()
			assert.NoError(t, err)
			assert.Equal(t, sub.Contents[0], v)
		}
	})

	s.Test("reset returns the cursor before the first element", func(t *testcase.T) {
		var (
			sub = subject.Get(t)
			cur = sub.Iterable.Iterate()
		)
		for cur.Next() {
		}
		cur.Reset()
		_, err := cur.Value()
		assert.ErrorIs(t, containerkit.ErrOutOfRange, err)
		assert.True(t, cur.Next())
		v, err := cur.Value()
		assert.NoError(t, err)
		assert.Equal(t, sub.Contents[0], v)
	})

	s.Test("cursors over the same container are independent", func(t *testcase.T) {
		var (
			sub  = subject.Get(t)
			cur1 = sub.Iterable.Iterate()
			cur2 = sub.Iterable.Iterate()
		)
		assert.True(t, cur1.Next())
		for cur1.Next() {
		}
		assert.True(t, cur2.Next())
		v, err := cur2.Value()
		assert.NoError(t, err)
		assert.Equal(t, sub.Contents[0], v)
	})

	return s.AsSuite(fmt.Sprintf("Iterable[%s]", reflectkit.TypeOf[T]().String()))
}

func makeT[T any](tb testing.TB) T {
	var zero T
	rnd := random.New(random.CryptoSeed{})
	return rnd.Make(zero).(T)
}
