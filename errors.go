package containerkit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrInvalidCapacity is returned when a container is constructed
	// with an initial capacity it cannot accept.
	ErrInvalidCapacity errorkit.Error = "containerkit: invalid initial capacity"
	// ErrEmpty is returned when a value is requested from a container that holds no elements.
	ErrEmpty errorkit.Error = "containerkit: container is empty"
	// ErrOutOfRange is returned when a cursor is read outside its captured element range.
	ErrOutOfRange errorkit.Error = "containerkit: cursor position is out of range"
)
