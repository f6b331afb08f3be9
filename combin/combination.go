// SPDX-License-Identifier: MIT

package combin

import (
	"github.com/katalvlaran/seqlath/internal/kernel"
	"github.com/katalvlaran/seqlath/seq"
)

// NextCombination advances the k-subset held in s[:k] to its lexicographic
// successor. s[:k] (the chosen elements) and s[k:] (the rest) must each be
// sorted under less, as they are when s is fully sorted; the result keeps
// that shape. After the last subset s wraps to fully sorted, with false.
//
// Errors:
//   - seq.ErrIndexOutOfRange: k outside [0, s.Len()].
//
// Complexity: O(n).
func NextCombination[E comparable](s seq.Sequence[E], k int, less seq.Less[E]) (seq.Sequence[E], bool, error) {
	if s == nil {
		return nil, false, seq.ErrNilSequence
	}
	if err := checkCount(s, k); err != nil {
		return nil, false, err
	}
	elems := s.Elements()
	ok := nextCombination(elems, k, seq.Resolve(s, less))

	return s.Rebuild(elems), ok, nil
}

// PrevCombination steps back to the lexicographic predecessor. Taking
// complements reverses the order of k-subsets, so the step is
// NextCombination applied to the complement s[k:] ++ s[:k].
func PrevCombination[E comparable](s seq.Sequence[E], k int, less seq.Less[E]) (seq.Sequence[E], bool, error) {
	if s == nil {
		return nil, false, seq.ErrNilSequence
	}
	if err := checkCount(s, k); err != nil {
		return nil, false, err
	}
	elems := s.Elements()
	n := len(elems)
	kernel.Rotate(elems, 0, k, n)
	ok := nextCombination(elems, n-k, seq.Resolve(s, less))
	kernel.Rotate(elems, 0, n-k, n)

	return s.Rebuild(elems), ok, nil
}

// Combinations collects every k-subset reachable from s by NextCombination,
// starting with s[:k] itself. Each result holds only the k chosen elements.
func Combinations[E comparable](s seq.Sequence[E], k int, less seq.Less[E]) ([]seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}
	if err := checkCount(s, k); err != nil {
		return nil, err
	}
	less = seq.Resolve(s, less)
	elems := s.Elements()
	var out []seq.Sequence[E]
	for ok := true; ok; ok = nextCombination(elems, k, less) {
		out = append(out, s.Rebuild(append([]E(nil), elems[:k]...)))
	}

	return out, nil
}

// nextCombination is the in-place successor on a[:k] | a[k:].
func nextCombination[E any](a []E, k int, less seq.Less[E]) bool {
	n := len(a)
	if k == 0 || k == n {
		return false
	}

	// rightmost chosen element that some unchosen one exceeds.
	i := k - 1
	for i >= 0 && !less(a[i], a[n-1]) {
		i--
	}
	if i < 0 {
		kernel.Rotate(a, 0, k, n)
		return false
	}

	j := kernel.UpperBound(a, k, n, a[i], less)
	a[i], a[j] = a[j], a[i]
	v := a[i]

	// a[i+1:] becomes the sorted run rest ++ chosen-suffix; then the
	// elements not smaller than v move up to fill the chosen slots.
	kernel.Rotate(a, i+1, k, n)
	p := i + 1
	for p < n && less(a[p], v) {
		p++
	}
	kernel.Rotate(a, i+1, p, p+(k-i-1))

	return true
}
