// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/seqlath/seq"

// Mode returns the most frequent element of s and its count. Among equally
// frequent elements the one that occurs first wins. A nil eq means
// structural equality and counts in one pass; a custom eq compares each
// element against the distinct ones seen so far.
//
// Errors:
//   - seq.ErrNilSequence
//   - seq.ErrEmptySequence: s has no elements.
func Mode[E comparable](s seq.Sequence[E], eq seq.Eq[E]) (E, int, error) {
	var zero E
	if s == nil {
		return zero, 0, seq.ErrNilSequence
	}
	if s.Len() == 0 {
		return zero, 0, seq.ErrEmptySequence
	}

	// distinct holds first occurrences in order; counts runs parallel to it.
	var (
		distinct []E
		counts   []int
	)
	if eq == nil {
		slot := make(map[E]int)
		for i := 0; i < s.Len(); i++ {
			e := s.At(i)
			j, ok := slot[e]
			if !ok {
				j = len(distinct)
				slot[e] = j
				distinct = append(distinct, e)
				counts = append(counts, 0)
			}
			counts[j]++
		}
	} else {
	next:
		for i := 0; i < s.Len(); i++ {
			e := s.At(i)
			for j, d := range distinct {
				if eq(d, e) {
					counts[j]++
					continue next
				}
			}
			distinct = append(distinct, e)
			counts = append(counts, 1)
		}
	}

	best := 0
	for j := range counts {
		if counts[j] > counts[best] {
			best = j
		}
	}

	return distinct[best], counts[best], nil
}

// MajoritySearch runs the Boyer–Moore vote over s. It returns the surviving
// candidate and whether that candidate really holds more than half of the
// elements; when no majority exists the candidate is arbitrary.
//
// Errors:
//   - seq.ErrNilSequence
//   - seq.ErrEmptySequence: s has no elements.
//
// Complexity: O(n) time, O(1) space.
func MajoritySearch[E comparable](s seq.Sequence[E], eq seq.Eq[E]) (E, bool, error) {
	var zero E
	if s == nil {
		return zero, false, seq.ErrNilSequence
	}
	if s.Len() == 0 {
		return zero, false, seq.ErrEmptySequence
	}
	eq = seq.ResolveEq(eq)

	candidate, votes := s.At(0), 0
	for i := 0; i < s.Len(); i++ {
		switch e := s.At(i); {
		case votes == 0:
			candidate, votes = e, 1
		case eq(candidate, e):
			votes++
		default:
			votes--
		}
	}

	n := 0
	for i := 0; i < s.Len(); i++ {
		if eq(candidate, s.At(i)) {
			n++
		}
	}

	return candidate, 2*n > s.Len(), nil
}

// IsPalindromic reports whether s reads the same in both directions under
// eq. The empty sequence is palindromic.
func IsPalindromic[E comparable](s seq.Sequence[E], eq seq.Eq[E]) (bool, error) {
	if s == nil {
		return false, seq.ErrNilSequence
	}
	eq = seq.ResolveEq(eq)
	for i, j := 0, s.Len()-1; i < j; i, j = i+1, j-1 {
		if !eq(s.At(i), s.At(j)) {
			return false, nil
		}
	}

	return true, nil
}
