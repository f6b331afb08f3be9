// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

// Merge combines the adjacent sorted runs [lo, mid) and [mid, hi) of s into
// one sorted run, taking from the left run on ties.
//
// Errors:
//   - seq.ErrInvalidRange, seq.ErrIndexOutOfRange: not 0 ≤ lo ≤ mid ≤ hi ≤ len.
func Merge[E comparable](s seq.Sequence[E], lo, mid, hi int, less seq.Less[E]) (seq.Sequence[E], error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return nil, err
	}
	if mid < lo || mid > hi {
		return nil, fmt.Errorf("%w: middle %d outside [%d, %d]", seq.ErrInvalidRange, mid, lo, hi)
	}

	return apply(s, less, func(a []E, less seq.Less[E]) {
		merge(a, lo, mid, hi, make([]E, 0, hi-lo), less)
	})
}

// merge merges a[lo:mid) and a[mid:hi) through buf and copies back.
func merge[E comparable](a []E, lo, mid, hi int, buf []E, less seq.Less[E]) {
	buf = buf[:0]
	i, j := lo, mid
	for i < mid && j < hi {
		if less(a[j], a[i]) {
			buf = append(buf, a[j])
			j++
		} else {
			buf = append(buf, a[i])
			i++
		}
	}
	buf = append(buf, a[i:mid]...)
	buf = append(buf, a[j:hi]...)
	copy(a[lo:hi], buf)
}

// MergeSort is top-down merge sort with a single scratch buffer. Stable.
//
// Complexity: Θ(n log n) comparisons, O(n) extra space.
func MergeSort[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	return apply(s, less, func(a []E, less seq.Less[E]) {
		mergeSort(a, 0, len(a), make([]E, 0, len(a)), less)
	})
}

func mergeSort[E comparable](a []E, lo, hi int, buf []E, less seq.Less[E]) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(a, lo, mid, buf, less)
	mergeSort(a, mid, hi, buf, less)
	if !less(a[mid], a[mid-1]) {
		return
	}
	merge(a, lo, mid, hi, buf, less)
}

// StrandSort repeatedly pulls a non-decreasing strand out of the remaining
// input (first element, then every later one not smaller than the strand's
// tail) and merges the strand into the output.
//
// Complexity: O(n²) worst case, O(n) on sorted input.
func StrandSort[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	return apply(s, less, func(a []E, less seq.Less[E]) {
		rest := append([]E(nil), a...)
		var out, strand, left []E
		for len(rest) > 0 {
			strand = append(strand[:0], rest[0])
			left = left[:0]
			for _, e := range rest[1:] {
				if !less(e, strand[len(strand)-1]) {
					strand = append(strand, e)
				} else {
					left = append(left, e)
				}
			}
			rest, left = left, rest

			merged := make([]E, 0, len(out)+len(strand))
			i, j := 0, 0
			for i < len(out) && j < len(strand) {
				if less(strand[j], out[i]) {
					merged = append(merged, strand[j])
					j++
				} else {
					merged = append(merged, out[i])
					i++
				}
			}
			merged = append(merged, out[i:]...)
			out = append(merged, strand[j:]...)
		}
		copy(a, out)
	})
}
