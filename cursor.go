package containerkit

// sliceCursor traverses a non-owning view of a container's backing store.
//
// The view is captured at cursor creation, so elements added to the container
// afterwards stay invisible, while the captured window keeps reading correctly
// even if the container reallocates its backing store in the meantime.
type sliceCursor[T any] struct {
	view []T
	// moves is the number of Next calls taken so far,
	// zero meaning the position before the first element.
	moves int
	// desc makes the cursor walk the view from its last element towards the first.
	desc bool
}

func (c *sliceCursor[T]) Next() bool {
	if c.moves <= len(c.view) {
		c.moves++
	}
	return c.moves <= len(c.view)
}

func (c *sliceCursor[T]) Value() (T, error) {
	index, ok := c.index()
	if !ok {
		var zero T
		return zero, ErrOutOfRange
	}
	return c.view[index], nil
}

func (c *sliceCursor[T]) Reset() {
	c.moves = 0
}

func (c *sliceCursor[T]) index() (int, bool) {
	if c.moves < 1 || len(c.view) < c.moves {
		return 0, false
	}
	if c.desc {
		return len(c.view) - c.moves, true
	}
	return c.moves - 1, true
}
