package containerkit

import (
	"go.llib.dev/frameless/pkg/pointer"
	"go.llib.dev/frameless/port/option"
)

// defaultCapacity is the slot count a backing store starts with
// when construction receives no explicit capacity.
const defaultCapacity = 4

// ContainerOption configures the construction of a container type.
type ContainerOption interface {
	option.Option[ContainerConfig]
}

type ContainerConfig struct {
	// Capacity is the initial slot count of the container's backing store.
	//
	// default: 4
	Capacity *int
}

func (c ContainerConfig) Configure(oth *ContainerConfig) {
	if c.Capacity != nil {
		oth.Capacity = c.Capacity
	}
}

// InitialCapacity sets the initial slot count of the container's backing store.
func InitialCapacity(n int) ContainerOption {
	return option.Func[ContainerConfig](func(c *ContainerConfig) {
		c.Capacity = pointer.Of(n)
	})
}

func (c ContainerConfig) capacity() int {
	if c.Capacity != nil {
		return *c.Capacity
	}
	return defaultCapacity
}
