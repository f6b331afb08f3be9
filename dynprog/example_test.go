// SPDX-License-Identifier: MIT

package dynprog_test

import (
	"fmt"

	"github.com/katalvlaran/seqlath/dynprog"
	"github.com/katalvlaran/seqlath/seq"
)

// ExampleEditDistance turns "kitten" into "sitting" in three edits.
func ExampleEditDistance() {
	a := seq.ValuesOf([]rune("kitten")...)
	b := seq.ValuesOf([]rune("sitting")...)

	d, err := dynprog.EditDistance[rune](a, b, nil, &dynprog.Options{MemoryMode: dynprog.RollingArray})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d)
	// Output:
	// 3
}

// ExampleBinomialCache shares Pascal rows between lookups.
func ExampleBinomialCache() {
	c, err := dynprog.NewBinomialCache(16)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	row, _ := c.Row(6)
	k, _ := c.Coeff(6, 2)
	fmt.Println(row, k)
	// Output:
	// [1 6 15 20 15 6 1] 15
}

// ExampleFindMaximumSubarray finds the most profitable stretch of price changes.
func ExampleFindMaximumSubarray() {
	changes := seq.ValuesOf(13, -3, -25, 20, -3, -16, -23, 18, 20, -7, 12, -5, -22, 15, -4, 7)

	best, _ := dynprog.FindMaximumSubarray[int](changes)
	fast, _ := dynprog.Kadane[int](changes)
	fmt.Printf("%+v %d\n", best, fast.Sum)
	// Output:
	// {Low:7 High:10 Sum:43} 43
}

// ExampleDTW aligns a stretched series and recovers the warping path.
func ExampleDTW() {
	a := seq.ValuesOf(1, 2, 3)
	b := seq.ValuesOf(1, 2, 2, 3)

	dist, path, err := dynprog.DTW[int](a, b, &dynprog.Options{ReturnPath: true})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\npath=%v\n", dist, path)
	// Output:
	// distance=0
	// path=[[0 0] [1 1] [1 2] [2 3]]
}
