package containerkit_test

import (
	"fmt"

	"go.llib.dev/containerkit"
)

func ExampleSequence() {
	seq, err := containerkit.NewSequence[string](containerkit.InitialCapacity(5))
	if err != nil {
		panic(err)
	}

	seq.Append("Alice", "Bob", "Charlie")

	for name := range seq.Iter() {
		fmt.Println(name)
	}
	// Output:
	// Alice
	// Bob
	// Charlie
}

func ExampleSequence_Iterate() {
	var seq containerkit.Sequence[int]
	seq.Append(1, 2, 3)

	cur := seq.Iterate()
	for cur.Next() {
		n, err := cur.Value()
		if err != nil {
			panic(err)
		}
		fmt.Println(n)
	}
	// Output:
	// 1
	// 2
	// 3
}

func ExampleStack() {
	stack, err := containerkit.NewStack[int]()
	if err != nil {
		panic(err)
	}

	stack.Push(1)
	stack.Push(2)
	stack.Push(3)

	for !stack.IsEmpty() {
		n, err := stack.Pop()
		if err != nil {
			panic(err)
		}
		fmt.Println(n)
	}
	// Output:
	// 3
	// 2
	// 1
}

func ExampleInitialCapacity() {
	seq, err := containerkit.NewSequence[string](containerkit.InitialCapacity(42))
	if err != nil {
		panic(err)
	}

	fmt.Println(seq.Cap())
	// Output: 42
}
