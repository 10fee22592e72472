package containerkit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/containerkit"
)

func TestSequence_Iterate(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		vs = let.Var(s, func(t *testcase.T) []string {
			return random.Slice(t.Random.IntBetween(3, 7), t.Random.String)
		})
		seq = let.Var(s, func(t *testcase.T) *containerkit.Sequence[string] {
			// a spare slot is left so appending once doesn't trigger a reallocation
			seq, err := containerkit.NewSequence[string](containerkit.InitialCapacity(len(vs.Get(t)) + 1))
			assert.NoError(t, err)
			seq.Append(vs.Get(t)...)
			return seq
		})
	)

	s.Test("reading before the first advance is out of range", func(t *testcase.T) {
		cur := seq.Get(t).Iterate()
		_, err := cur.Value()
		assert.ErrorIs(t, containerkit.ErrOutOfRange, err)
	})

	s.Test("the cursor yields every element in insertion order, then reports exhaustion", func(t *testcase.T) {
		var (
			cur = seq.Get(t).Iterate()
			got []string
		)
		for cur.Next() {
			v, err := cur.Value()
			assert.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, vs.Get(t), got)
		assert.False(t, cur.Next())
		_, err := cur.Value()
		assert.ErrorIs(t, containerkit.ErrOutOfRange, err)
	})

	s.Test("the cursor captures the logical length at creation", func(t *testcase.T) {
		cur := seq.Get(t).Iterate()

		// the appended value stays within the current backing store's capacity,
		// the cursor must not observe it regardless
		assert.True(t, seq.Get(t).Len() < seq.Get(t).Cap())
		seq.Get(t).Append(t.Random.String())

		var count int
		for cur.Next() {
			count++
		}
		assert.Equal(t, len(vs.Get(t)), count)
	})

	s.Test("the cursor reads correctly after the sequence reallocates its backing store", func(t *testcase.T) {
		var (
			sub = seq.Get(t)
			cur = sub.Iterate()
		)
		prevC := sub.Cap()
		for sub.Cap() == prevC { // force a reallocation
			sub.Append(t.Random.String())
		}

		var got []string
		for cur.Next() {
			v, err := cur.Value()
			assert.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, vs.Get(t), got)
	})

	s.Test("reset returns the cursor before the first element", func(t *testcase.T) {
		cur := seq.Get(t).Iterate()
		for cur.Next() {
		}
		cur.Reset()
		_, err := cur.Value()
		assert.ErrorIs(t, containerkit.ErrOutOfRange, err)
		assert.True(t, cur.Next())
		got, err := cur.Value()
		assert.NoError(t, err)
		assert.Equal(t, vs.Get(t)[0], got)
	})

	s.Test("cursors over the same sequence traverse independently", func(t *testcase.T) {
		var (
			sub  = seq.Get(t)
			cur1 = sub.Iterate()
			cur2 = sub.Iterate()
		)
		for cur1.Next() {
		}
		assert.True(t, cur2.Next())
		got, err := cur2.Value()
		assert.NoError(t, err)
		assert.Equal(t, vs.Get(t)[0], got)
	})

	s.Test("a cursor over an empty sequence is immediately exhausted", func(t *testcase.T) {
		var empty containerkit.Sequence[string]
		cur := empty.Iterate()
		assert.False(t, cur.Next())
		_, err := cur.Value()
		assert.ErrorIs(t, containerkit.ErrOutOfRange, err)
	})

	s.Test("value reads are repeatable without side effects", func(t *testcase.T) {
		cur := seq.Get(t).Iterate()
		assert.True(t, cur.Next())
		for range 3 {
			got, err := cur.Value()
			assert.NoError(t, err)
			assert.Equal(t, vs.Get(t)[0], got)
		}
	})
}
