// SPDX-License-Identifier: MIT

package sorting

import (
	"github.com/katalvlaran/seqlath/internal/kernel"
	"github.com/katalvlaran/seqlath/partition"
	"github.com/katalvlaran/seqlath/seq"
)

// QuickSort recursively partitions around a pivot that src moves into the
// Lomuto slot. A nil src means partition.DefaultLFSR().
//
// Complexity: O(n log n) expected, O(n²) worst case.
func QuickSort[E comparable](s seq.Sequence[E], less seq.Less[E], src partition.Source) (seq.Sequence[E], error) {
	src = source(src)

	return apply(s, less, func(a []E, less seq.Less[E]) {
		quick(a, 0, len(a), seq.LessEqual(less), src)
	})
}

func quick[E comparable](a []E, lo, hi int, le seq.Less[E], src partition.Source) {
	for hi-lo > 1 {
		q := kernel.RandomizedLomuto(a, lo, hi, le, src)
		// recurse into the smaller side, loop on the larger one.
		if q-lo < hi-q-1 {
			quick(a, lo, q, le, src)
			lo = q + 1
		} else {
			quick(a, q+1, hi, le, src)
			hi = q
		}
	}
}

// QuickSortIterative is QuickSort with an explicit stack of pending ranges.
func QuickSortIterative[E comparable](s seq.Sequence[E], less seq.Less[E], src partition.Source) (seq.Sequence[E], error) {
	src = source(src)

	return apply(s, less, func(a []E, less seq.Less[E]) {
		le := seq.LessEqual(less)
		stack := [][2]int{{0, len(a)}}
		for len(stack) > 0 {
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			lo, hi := r[0], r[1]
			if hi-lo < 2 {
				continue
			}
			q := kernel.RandomizedLomuto(a, lo, hi, le, src)
			stack = append(stack, [2]int{lo, q}, [2]int{q + 1, hi})
		}
	})
}

// StableSort picks a random pivot value, splits the range stably into
// (< pivot | == pivot | > pivot) and recurses on the outer blocks. The
// middle block is final, so equal elements keep their input order.
//
// Complexity: O(n log n) expected comparisons.
func StableSort[E comparable](s seq.Sequence[E], less seq.Less[E], src partition.Source) (seq.Sequence[E], error) {
	src = source(src)

	return apply(s, less, func(a []E, less seq.Less[E]) {
		stableQuick(a, 0, len(a), less, src)
	})
}

func stableQuick[E comparable](a []E, lo, hi int, less seq.Less[E], src partition.Source) {
	for hi-lo > 1 {
		pivot := a[lo+src.Intn(hi-lo)]
		lt, gt := kernel.Split3(a, lo, hi, pivot, less)
		if lt-lo < hi-gt {
			stableQuick(a, lo, lt, less, src)
			lo = gt
		} else {
			stableQuick(a, gt, hi, less, src)
			hi = lt
		}
	}
}

// SelectSort fills position i with the element of rank i found by
// quickselect over the unsorted suffix, for i = 0..n-1.
//
// Complexity: O(n²) expected.
func SelectSort[E comparable](s seq.Sequence[E], less seq.Less[E], src partition.Source) (seq.Sequence[E], error) {
	src = source(src)

	return apply(s, less, func(a []E, less seq.Less[E]) {
		for i := range a {
			kernel.Select(a, i, len(a), i, less, src)
		}
	})
}
