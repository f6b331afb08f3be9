// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/seqlath/seq"

// PartitionPoint returns the first position whose element fails pred,
// assuming s is partitioned (all true elements before all false ones).
//
// Complexity: O(log n) predicate calls.
func PartitionPoint[E comparable](s seq.Sequence[E], pred seq.Pred[E]) (int, error) {
	if s == nil {
		return 0, seq.ErrNilSequence
	}

	return PartitionPointIn(s, 0, s.Len(), pred)
}

// PartitionPointIn is PartitionPoint restricted to [lo, hi).
func PartitionPointIn[E comparable](s seq.Sequence[E], lo, hi int, pred seq.Pred[E]) (int, error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return 0, err
	}

	return bisect(s, lo, hi, pred), nil
}

// LowerBound returns the first position p with !less(s[p], target).
// A nil less means the canonical key order.
func LowerBound[E comparable](s seq.Sequence[E], target E, less seq.Less[E]) (int, error) {
	if s == nil {
		return 0, seq.ErrNilSequence
	}

	return LowerBoundIn(s, 0, s.Len(), target, less)
}

// LowerBoundIn is LowerBound restricted to [lo, hi).
func LowerBoundIn[E comparable](s seq.Sequence[E], lo, hi int, target E, less seq.Less[E]) (int, error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return 0, err
	}
	less = seq.Resolve(s, less)

	return bisect(s, lo, hi, func(e E) bool { return less(e, target) }), nil
}

// UpperBound returns the first position p with less(target, s[p]).
func UpperBound[E comparable](s seq.Sequence[E], target E, less seq.Less[E]) (int, error) {
	if s == nil {
		return 0, seq.ErrNilSequence
	}

	return UpperBoundIn(s, 0, s.Len(), target, less)
}

// UpperBoundIn is UpperBound restricted to [lo, hi).
func UpperBoundIn[E comparable](s seq.Sequence[E], lo, hi int, target E, less seq.Less[E]) (int, error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return 0, err
	}
	less = seq.Resolve(s, less)

	return bisect(s, lo, hi, func(e E) bool { return !less(target, e) }), nil
}

// EqualRange returns LowerBound and UpperBound of target as a pair.
func EqualRange[E comparable](s seq.Sequence[E], target E, less seq.Less[E]) (int, int, error) {
	if s == nil {
		return 0, 0, seq.ErrNilSequence
	}

	return EqualRangeIn(s, 0, s.Len(), target, less)
}

// EqualRangeIn is EqualRange restricted to [lo, hi).
func EqualRangeIn[E comparable](s seq.Sequence[E], lo, hi int, target E, less seq.Less[E]) (int, int, error) {
	first, err := LowerBoundIn(s, lo, hi, target, less)
	if err != nil {
		return 0, 0, err
	}
	last, _ := UpperBoundIn(s, first, hi, target, less)

	return first, last, nil
}

// bisect finds the first position in [lo, hi) failing pred.
func bisect[E comparable](s seq.Sequence[E], lo, hi int, pred seq.Pred[E]) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if pred(s.At(mid)) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
