package list_test

import (
	"fmt"

	"github.com/hoardlib/hoard/list"
)

// ExampleList demonstrates endpoint splices, indexed insertion, and
// reversal on a small integer list.
func ExampleList() {
	l := list.New[int]()
	for _, x := range []int{1, 2, 3} {
		_ = l.Append(x)
	}
	_ = l.Prepend(0)      // [0 1 2 3]
	_ = l.Insert(4, 4)    // [0 1 2 3 4]
	first, _ := l.Shift() // [1 2 3 4]
	_ = l.Reverse()       // [4 3 2 1]

	fmt.Println("shifted:", first)
	for _, x := range l.All() {
		fmt.Print(x, " ")
	}
	fmt.Println()
	// Output:
	// shifted: 0
	// 4 3 2 1
}
