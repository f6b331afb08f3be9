// SPDX-License-Identifier: MIT

package search_test

import (
	"fmt"

	"github.com/katalvlaran/seqlath/search"
	"github.com/katalvlaran/seqlath/seq"
)

// ExampleEqualRange locates the run of a duplicated key.
func ExampleEqualRange() {
	v := seq.ValuesOf(1, 3, 3, 3, 8)
	lo, hi, _ := search.EqualRange[int](v, 3, nil)
	fmt.Println(lo, hi)
	// Output: 1 4
}

// ExampleInterpolationSearch stays correct on badly skewed keys.
func ExampleInterpolationSearch() {
	v := seq.ValuesOf(1, 2, 3, 4, 1_000_000)
	fmt.Println(search.InterpolationSearch[int](v, 4), search.InterpolationSearch[int](v, 5))
	// Output: true false
}

// ExampleKMP reports overlapping occurrences.
func ExampleKMP() {
	pos, _ := search.KMP[int](seq.ValuesOf(0, 1, 0, 1, 0), seq.ValuesOf(0, 1, 0), nil)
	fmt.Println(pos)
	// Output: [0 2]
}
