// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

// Search returns the first position at which pattern occurs in s as a
// contiguous run, or s.Len(). An empty pattern occurs at 0. A nil eq means
// structural equality.
//
// Complexity: O(n·m). KMP finds every occurrence in O(n + m).
func Search[E comparable](s, pattern seq.Sequence[E], eq seq.Eq[E]) (int, error) {
	if s == nil {
		return 0, seq.ErrNilSequence
	}

	return SearchIn(s, 0, s.Len(), pattern, eq)
}

// SearchIn is Search restricted to [lo, hi): the whole occurrence must lie
// in the window. A miss returns hi; an empty pattern returns lo.
func SearchIn[E comparable](s seq.Sequence[E], lo, hi int, pattern seq.Sequence[E], eq seq.Eq[E]) (int, error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return 0, err
	}
	if pattern == nil {
		return 0, fmt.Errorf("%w: pattern", seq.ErrNilSequence)
	}
	eq = seq.ResolveEq(eq)
	for i := lo; i+pattern.Len() <= hi; i++ {
		if matchesAt(s, i, pattern, eq) {
			return i, nil
		}
	}

	return hi, nil
}

// FindEnd returns the position of the last occurrence of pattern in s, or
// s.Len() when there is none. An empty pattern also yields s.Len().
func FindEnd[E comparable](s, pattern seq.Sequence[E], eq seq.Eq[E]) (int, error) {
	if s == nil {
		return 0, seq.ErrNilSequence
	}

	return FindEndIn(s, 0, s.Len(), pattern, eq)
}

// FindEndIn is FindEnd restricted to [lo, hi); a miss returns hi.
func FindEndIn[E comparable](s seq.Sequence[E], lo, hi int, pattern seq.Sequence[E], eq seq.Eq[E]) (int, error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return 0, err
	}
	if pattern == nil {
		return 0, fmt.Errorf("%w: pattern", seq.ErrNilSequence)
	}
	if pattern.Len() == 0 {
		return hi, nil
	}
	eq = seq.ResolveEq(eq)
	for i := hi - pattern.Len(); i >= lo; i-- {
		if matchesAt(s, i, pattern, eq) {
			return i, nil
		}
	}

	return hi, nil
}

// SearchN returns the first position starting n consecutive elements equal
// to value under eq, or s.Len(). A non-positive n matches at 0.
func SearchN[E comparable](s seq.Sequence[E], n int, value E, eq seq.Eq[E]) (int, error) {
	if s == nil {
		return 0, seq.ErrNilSequence
	}

	return SearchNIn(s, 0, s.Len(), n, value, eq)
}

// SearchNIn is SearchN restricted to [lo, hi); a miss returns hi and a
// non-positive n returns lo.
func SearchNIn[E comparable](s seq.Sequence[E], lo, hi, n int, value E, eq seq.Eq[E]) (int, error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return 0, err
	}
	if n <= 0 {
		return lo, nil
	}
	eq = seq.ResolveEq(eq)
	run := 0
	for i := lo; i < hi; i++ {
		if !eq(s.At(i), value) {
			run = 0
			continue
		}
		if run++; run == n {
			return i - n + 1, nil
		}
	}

	return hi, nil
}

func matchesAt[E comparable](s seq.Sequence[E], at int, pattern seq.Sequence[E], eq seq.Eq[E]) bool {
	for j := 0; j < pattern.Len(); j++ {
		if !eq(s.At(at+j), pattern.At(j)) {
			return false
		}
	}

	return true
}
