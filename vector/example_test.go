package vector_test

import (
	"fmt"

	"github.com/hoardlib/hoard/vector"
)

// ExampleVector_Append demonstrates the doubling growth policy: appending
// three elements walks the capacity through 0 → 1 → 2 → 4.
func ExampleVector_Append() {
	v := vector.New[int]()
	for _, x := range []int{1, 2, 3} {
		if err := v.Append(x); err != nil {
			fmt.Println("error:", err)

			return
		}
	}

	x, _ := v.Get(1)
	fmt.Printf("len=%d cap=%d v[1]=%d\n", v.Len(), v.Cap(), x)
	// Output:
	// len=3 cap=4 v[1]=2
}

// ExampleVector_Pop demonstrates the halving shrink: once the length falls
// below half the capacity, capacity drops to the length.
func ExampleVector_Pop() {
	v := vector.New[int]()
	for i := 1; i <= 5; i++ {
		_ = v.Append(i) // capacity grows to 8
	}

	_, _ = v.Pop() // len 4, not below 8/2
	fmt.Printf("len=%d cap=%d\n", v.Len(), v.Cap())
	_, _ = v.Pop() // len 3 < 8/2 → capacity shrinks to 3
	fmt.Printf("len=%d cap=%d\n", v.Len(), v.Cap())
	// Output:
	// len=4 cap=8
	// len=3 cap=3
}
