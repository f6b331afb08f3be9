// SPDX-License-Identifier: MIT

package edit_test

import (
	"fmt"

	"github.com/katalvlaran/seqlath/edit"
	"github.com/katalvlaran/seqlath/seq"
)

// ExampleRotate moves the block [3, 5) in front of the block [1, 3).
func ExampleRotate() {
	v := seq.ValuesOf(10, 20, 30, 40, 50)
	r, _ := edit.Rotate[int](v, 1, 3, 5)
	fmt.Println(r)
	// Output: values[10 40 50 20 30]
}

// ExampleSwapExtent exchanges blocks of different lengths between two sequences.
func ExampleSwapExtent() {
	a, b, _ := edit.SwapExtent[int](seq.ValuesOf(1, 2, 3, 4), 1, 3, seq.ValuesOf(7, 8, 9), 0, 1)
	fmt.Println(a, b)
	// Output: values[1 7 4] values[2 3 8 9]
}
