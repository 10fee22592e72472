package containerkit

import (
	"testing"

	"go.llib.dev/testcase/assert"
)

func Test_grow(t *testing.T) {
	t.Run("a store that already fits is returned as is", func(t *testing.T) {
		buf := make([]int, 4)
		assert.Equal(t, 4, len(grow(buf, 4)))
		assert.Equal(t, 4, len(grow(buf, 2)))
	})

	t.Run("a zero capacity store grows to a single slot first", func(t *testing.T) {
		assert.Equal(t, 1, len(grow[int](nil, 1)))
	})

	t.Run("the slot count doubles until the requested count fits", func(t *testing.T) {
		assert.Equal(t, 8, len(grow(make([]int, 4), 5)))
		assert.Equal(t, 16, len(grow(make([]int, 4), 9)))
		assert.Equal(t, 4, len(grow[int](nil, 3)))
	})

	t.Run("the stored elements are copied over in order", func(t *testing.T) {
		buf := []int{1, 2, 3}
		next := grow(buf, 7)
		assert.Equal(t, 8, len(next))
		assert.Equal(t, []int{1, 2, 3}, next[:3])
	})
}
