// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

// FirstOf returns the first position whose element satisfies pred,
// or s.Len() when none does.
func FirstOf[E comparable](s seq.Sequence[E], pred seq.Pred[E]) (int, error) {
	if s == nil {
		return 0, seq.ErrNilSequence
	}

	return FirstOfIn(s, 0, s.Len(), pred)
}

// FirstOfIn is FirstOf restricted to [lo, hi); a miss returns hi.
func FirstOfIn[E comparable](s seq.Sequence[E], lo, hi int, pred seq.Pred[E]) (int, error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return 0, err
	}
	for i := lo; i < hi; i++ {
		if pred(s.At(i)) {
			return i, nil
		}
	}

	return hi, nil
}

// FirstNotOf returns the first position whose element fails pred,
// or s.Len() when all satisfy it.
func FirstNotOf[E comparable](s seq.Sequence[E], pred seq.Pred[E]) (int, error) {
	return FirstOf(s, seq.Not(pred))
}

// FirstNotOfIn is FirstNotOf restricted to [lo, hi); a miss returns hi.
func FirstNotOfIn[E comparable](s seq.Sequence[E], lo, hi int, pred seq.Pred[E]) (int, error) {
	return FirstOfIn(s, lo, hi, seq.Not(pred))
}

// LastOf returns the last position whose element satisfies pred,
// or -1 when none does.
func LastOf[E comparable](s seq.Sequence[E], pred seq.Pred[E]) (int, error) {
	if s == nil {
		return 0, seq.ErrNilSequence
	}

	return LastOfIn(s, 0, s.Len(), pred)
}

// LastOfIn is LastOf restricted to [lo, hi); a miss returns lo-1.
func LastOfIn[E comparable](s seq.Sequence[E], lo, hi int, pred seq.Pred[E]) (int, error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return 0, err
	}
	for i := hi - 1; i >= lo; i-- {
		if pred(s.At(i)) {
			return i, nil
		}
	}

	return lo - 1, nil
}

// LastNotOf returns the last position whose element fails pred, or -1.
func LastNotOf[E comparable](s seq.Sequence[E], pred seq.Pred[E]) (int, error) {
	return LastOf(s, seq.Not(pred))
}

// LastNotOfIn is LastNotOf restricted to [lo, hi); a miss returns lo-1.
func LastNotOfIn[E comparable](s seq.Sequence[E], lo, hi int, pred seq.Pred[E]) (int, error) {
	return LastOfIn(s, lo, hi, seq.Not(pred))
}

// Find returns the first position holding e, or s.Len().
func Find[E comparable](s seq.Sequence[E], e E) (int, error) {
	return FirstOf(s, func(x E) bool { return x == e })
}

// Contains reports whether e occurs in s. A nil sequence contains nothing.
func Contains[E comparable](s seq.Sequence[E], e E) bool {
	i, err := Find(s, e)

	return err == nil && i < s.Len()
}

// CountIf counts the elements satisfying pred.
func CountIf[E comparable](s seq.Sequence[E], pred seq.Pred[E]) (int, error) {
	if s == nil {
		return 0, seq.ErrNilSequence
	}
	n := 0
	for i := 0; i < s.Len(); i++ {
		if pred(s.At(i)) {
			n++
		}
	}

	return n, nil
}

// AdjacentFind returns the first i with eq(s[i], s[i+1]), or s.Len().
// A nil eq means structural equality.
func AdjacentFind[E comparable](s seq.Sequence[E], eq seq.Eq[E]) (int, error) {
	if s == nil {
		return 0, seq.ErrNilSequence
	}
	eq = seq.ResolveEq(eq)
	for i := 0; i+1 < s.Len(); i++ {
		if eq(s.At(i), s.At(i+1)) {
			return i, nil
		}
	}

	return s.Len(), nil
}

// Mismatch returns the first position at which a and b disagree under eq.
// When one is a prefix of the other the shorter length is returned.
func Mismatch[E comparable](a, b seq.Sequence[E], eq seq.Eq[E]) (int, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%w: mismatch operand", seq.ErrNilSequence)
	}
	eq = seq.ResolveEq(eq)
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if !eq(a.At(i), b.At(i)) {
			return i, nil
		}
	}

	return n, nil
}
