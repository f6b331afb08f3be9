// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/seqlath/seq"

// SortIndex returns the positions of s in stably sorted order: s.At(idx[0])
// is a smallest element and equal elements keep their input order. Applying
// the result to s yields MergeSort(s, less).
//
// Complexity: Θ(n log n) comparisons, O(n) extra space.
func SortIndex[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Values[int], error) {
	if s == nil {
		return seq.Values[int]{}, seq.ErrNilSequence
	}
	less = seq.Resolve(s, less)
	byElement := func(i, j int) bool { return less(s.At(i), s.At(j)) }

	idx, err := MergeSort[int](seq.Iota(s.Len(), 0, 1), byElement)
	if err != nil {
		return seq.Values[int]{}, err
	}

	return seq.AsValues(idx), nil
}
