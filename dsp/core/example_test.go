package core_test

import (
	"fmt"

	"github.com/ssanderson/foundations-of-numerical-computing/dsp/core"
)

func ExampleEnsureLen() {
	buf := make([]int, 2, 4)
	buf[0], buf[1] = 1, 2

	grown := core.EnsureLen(buf, 4)
	fmt.Println(len(grown), cap(grown), grown)

	fresh := core.EnsureLen(buf, 6)
	fmt.Println(len(fresh), fresh)

	// Output:
	// 4 4 [1 2 0 0]
	// 6 [0 0 0 0 0 0]
}

func ExampleCountTrue() {
	fmt.Println(core.CountTrue([]bool{true, false, true}))

	// Output:
	// 2
}
