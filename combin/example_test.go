// SPDX-License-Identifier: MIT

package combin_test

import (
	"fmt"

	"github.com/katalvlaran/seqlath/combin"
	"github.com/katalvlaran/seqlath/seq"
)

// ExampleNextPermutation prints every ordering of three constants.
func ExampleNextPermutation() {
	var p seq.Sequence[int] = seq.ValuesOf(0, 1, 2)
	for ok := true; ok; {
		fmt.Println(p)
		p, ok, _ = combin.NextPermutation(p, nil)
	}
	// Output:
	// values[0 1 2]
	// values[0 2 1]
	// values[1 0 2]
	// values[1 2 0]
	// values[2 0 1]
	// values[2 1 0]
}

// ExampleCombinations lists the 2-subsets of {1,2,3}.
func ExampleCombinations() {
	list, _ := combin.Combinations[int](seq.ValuesOf(1, 2, 3), 2, nil)
	fmt.Println(list)
	// Output: [values[1 2] values[1 3] values[2 3]]
}
