// SPDX-License-Identifier: MIT

package combin

import (
	"github.com/katalvlaran/seqlath/internal/kernel"
	"github.com/katalvlaran/seqlath/seq"
)

// NextPermutation returns the lexicographic successor of s under less
// (nil is the canonical key order). The last permutation wraps to the
// first, ascending one, with false.
//
// Complexity: O(n).
func NextPermutation[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], bool, error) {
	if s == nil {
		return nil, false, seq.ErrNilSequence
	}
	elems := s.Elements()
	ok := nextPermutation(elems, seq.Resolve(s, less))

	return s.Rebuild(elems), ok, nil
}

// PrevPermutation returns the lexicographic predecessor of s. The first
// permutation wraps to the last, descending one, with false.
func PrevPermutation[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], bool, error) {
	if s == nil {
		return nil, false, seq.ErrNilSequence
	}
	elems := s.Elements()
	ok := nextPermutation(elems, seq.Flip(seq.Resolve(s, less)))

	return s.Rebuild(elems), ok, nil
}

// NextPartialPermutation steps through the k-permutations of s: only the
// prefix s[:k] is significant, the suffix holds the unused elements in
// ascending order.
//
// Errors:
//   - seq.ErrIndexOutOfRange: k outside [0, s.Len()].
func NextPartialPermutation[E comparable](s seq.Sequence[E], k int, less seq.Less[E]) (seq.Sequence[E], bool, error) {
	if s == nil {
		return nil, false, seq.ErrNilSequence
	}
	if err := checkCount(s, k); err != nil {
		return nil, false, err
	}
	elems := s.Elements()
	kernel.Reverse(elems, k, len(elems))
	ok := nextPermutation(elems, seq.Resolve(s, less))

	return s.Rebuild(elems), ok, nil
}

// PrevPartialPermutation is the inverse step of NextPartialPermutation.
func PrevPartialPermutation[E comparable](s seq.Sequence[E], k int, less seq.Less[E]) (seq.Sequence[E], bool, error) {
	if s == nil {
		return nil, false, seq.ErrNilSequence
	}
	if err := checkCount(s, k); err != nil {
		return nil, false, err
	}
	elems := s.Elements()
	ok := nextPermutation(elems, seq.Flip(seq.Resolve(s, less)))
	kernel.Reverse(elems, k, len(elems))

	return s.Rebuild(elems), ok, nil
}

// Permutations collects s followed by its successors until the sequence
// wraps. Starting from ascending order yields all distinct permutations.
func Permutations[E comparable](s seq.Sequence[E], less seq.Less[E]) ([]seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}
	less = seq.Resolve(s, less)
	out := []seq.Sequence[E]{s}
	elems := s.Elements()
	for nextPermutation(elems, less) {
		out = append(out, s.Rebuild(append([]E(nil), elems...)))
	}

	return out, nil
}

// PermutationRecursive lists all n! orderings of s by recursive swapping,
// duplicates included. The empty sequence has no permutations.
//
// Complexity: O(n·n!).
func PermutationRecursive[E comparable](s seq.Sequence[E]) ([]seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}
	var out []seq.Sequence[E]
	if s.Len() == 0 {
		return out, nil
	}
	elems := s.Elements()

	var permute func(i int)
	permute = func(i int) {
		if i == len(elems)-1 {
			out = append(out, s.Rebuild(append([]E(nil), elems...)))
			return
		}
		for j := i; j < len(elems); j++ {
			elems[i], elems[j] = elems[j], elems[i]
			permute(i + 1)
			elems[i], elems[j] = elems[j], elems[i]
		}
	}
	permute(0)

	return out, nil
}

// nextPermutation is the in-place lexicographic successor step.
func nextPermutation[E any](a []E, less seq.Less[E]) bool {
	i := len(a) - 2
	for i >= 0 && !less(a[i], a[i+1]) {
		i--
	}
	if i < 0 {
		kernel.Reverse(a, 0, len(a))
		return false
	}
	j := len(a) - 1
	for !less(a[i], a[j]) {
		j--
	}
	a[i], a[j] = a[j], a[i]
	kernel.Reverse(a, i+1, len(a))

	return true
}
