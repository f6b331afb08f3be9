// SPDX-License-Identifier: MIT

package sorting

import (
	"github.com/katalvlaran/seqlath/internal/kernel"
	"github.com/katalvlaran/seqlath/seq"
)

// InsertSort grows a sorted prefix: each new element is placed after the
// last prefix element not greater than it (an upper bound found by binary
// search) and rotated into that slot. Stable.
//
// Complexity: O(n log n) comparisons, O(n²) moves.
func InsertSort[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	return apply(s, less, func(a []E, less seq.Less[E]) {
		for j := 1; j < len(a); j++ {
			p := kernel.UpperBound(a, 0, j, a[j], less)
			kernel.Rotate(a, p, j, j+1)
		}
	})
}

// InsertionSort is the classic shifting insertion sort. Stable.
//
// Complexity: O(n²), O(n) on sorted input.
func InsertionSort[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	return apply(s, less, func(a []E, less seq.Less[E]) {
		for j := 1; j < len(a); j++ {
			key := a[j]
			i := j - 1
			for ; i >= 0 && less(key, a[i]); i-- {
				a[i+1] = a[i]
			}
			a[i+1] = key
		}
	})
}
