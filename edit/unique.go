// SPDX-License-Identifier: MIT

package edit

import "github.com/katalvlaran/seqlath/seq"

// Unique drops every element structurally equal to an earlier one,
// keeping first occurrences in their original relative order.
//
// Complexity: O(n) expected.
func Unique[E comparable](s seq.Sequence[E]) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}
	seen := make(map[E]struct{}, s.Len())
	out := make([]E, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.At(i)
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return s.Rebuild(out), nil
}

// UniqueFunc is Unique under a caller-supplied equality.
//
// Complexity: O(n²) comparisons, since eq admits no hashing.
func UniqueFunc[E comparable](s seq.Sequence[E], eq seq.Eq[E]) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}
	eq = seq.ResolveEq(eq)
	out := make([]E, 0, s.Len())
next:
	for i := 0; i < s.Len(); i++ {
		e := s.At(i)
		for _, kept := range out {
			if eq(kept, e) {
				continue next
			}
		}
		out = append(out, e)
	}

	return s.Rebuild(out), nil
}

// HasDuplicates reports whether some element occurs more than once.
func HasDuplicates[E comparable](s seq.Sequence[E]) bool {
	if s == nil {
		return false
	}
	u, _ := Unique(s)

	return u.Len() != s.Len()
}

// RemoveIf drops every element satisfying pred, preserving the order of
// the rest.
func RemoveIf[E comparable](s seq.Sequence[E], pred seq.Pred[E]) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}
	out := make([]E, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		if e := s.At(i); !pred(e) {
			out = append(out, e)
		}
	}

	return s.Rebuild(out), nil
}
