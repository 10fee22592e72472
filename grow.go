package containerkit

// grow returns a backing store with at least n slots, preserving the stored elements.
// When the current store is too small, the slot count is doubled until n fits,
// starting from a floor of a single slot, and the elements are copied over in order.
// The returned store never has fewer slots than the received one.
func grow[T any](buf []T, n int) []T {
	capacity := len(buf)
	if n <= capacity {
		return buf
	}
	if capacity == 0 {
		capacity = 1
	}
	for capacity < n {
		capacity *= 2
	}
	next := make([]T, capacity)
	copy(next, buf)
	return next
}
