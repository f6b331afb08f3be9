// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/seqlath/seq"

// SelectionSort compares every pair (i, j>i) and swaps when s[j] sorts
// before s[i]; after pass i the minimum of the rest sits at i.
//
// Complexity: Θ(n²) comparisons.
func SelectionSort[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	return apply(s, less, func(a []E, less seq.Less[E]) {
		for i := range a {
			for j := i + 1; j < len(a); j++ {
				if less(a[j], a[i]) {
					a[i], a[j] = a[j], a[i]
				}
			}
		}
	})
}

// BubbleSort bubbles the smallest remaining element to the front on each
// pass, scanning from the back.
//
// Complexity: Θ(n²) comparisons.
func BubbleSort[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	return apply(s, less, func(a []E, less seq.Less[E]) {
		for i := 0; i < len(a); i++ {
			for j := len(a) - 1; j > i; j-- {
				if less(a[j], a[j-1]) {
					a[j], a[j-1] = a[j-1], a[j]
				}
			}
		}
	})
}

// ShakerSort alternates forward and backward bubble passes, shrinking the
// unsorted window from both ends, and stops after a pass without swaps.
//
// Complexity: O(n²), O(n) on sorted input.
func ShakerSort[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	return apply(s, less, func(a []E, less seq.Less[E]) {
		lo, hi := 0, len(a)-1
		for swapped := true; swapped && lo < hi; {
			swapped = false
			for i := lo; i < hi; i++ {
				if less(a[i+1], a[i]) {
					a[i], a[i+1] = a[i+1], a[i]
					swapped = true
				}
			}
			hi--
			for i := hi; i > lo; i-- {
				if less(a[i], a[i-1]) {
					a[i], a[i-1] = a[i-1], a[i]
					swapped = true
				}
			}
			lo++
		}
	})
}

// OddEvenSort runs alternating compare-exchange phases over odd and even
// adjacent pairs until a round changes nothing. Pairs within a phase are
// independent of each other.
//
// Complexity: O(n²).
func OddEvenSort[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	return apply(s, less, func(a []E, less seq.Less[E]) {
		for sorted := false; !sorted; {
			sorted = true
			for start := 1; start >= 0; start-- {
				for i := start; i+1 < len(a); i += 2 {
					if less(a[i+1], a[i]) {
						a[i], a[i+1] = a[i+1], a[i]
						sorted = false
					}
				}
			}
		}
	})
}

// GnomeSort walks a single cursor forward while neighbours are in order and
// swaps one step back otherwise.
//
// Complexity: O(n²).
func GnomeSort[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	return apply(s, less, func(a []E, less seq.Less[E]) {
		for i := 0; i < len(a); {
			if i == 0 || !less(a[i], a[i-1]) {
				i++
				continue
			}
			a[i], a[i-1] = a[i-1], a[i]
			i--
		}
	})
}

// StoogeSort orders the first and last element, then recursively sorts the
// first two thirds, the last two thirds and the first two thirds again.
//
// Complexity: O(n^(log 3 / log 1.5)) ≈ O(n^2.71).
func StoogeSort[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	return apply(s, less, func(a []E, less seq.Less[E]) {
		stooge(a, 0, len(a), less)
	})
}

func stooge[E comparable](a []E, lo, hi int, less seq.Less[E]) {
	if hi-lo < 2 {
		return
	}
	if less(a[hi-1], a[lo]) {
		a[lo], a[hi-1] = a[hi-1], a[lo]
	}
	if hi-lo > 2 {
		t := (hi - lo) / 3
		stooge(a, lo, hi-t, less)
		stooge(a, lo+t, hi, less)
		stooge(a, lo, hi-t, less)
	}
}
