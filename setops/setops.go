// SPDX-License-Identifier: MIT

package setops

import (
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

// operands validates both windows and resolves the ordering against a.
func operands[E comparable](a seq.Sequence[E], lo1, hi1 int, b seq.Sequence[E], lo2, hi2 int, less seq.Less[E]) (seq.Less[E], error) {
	if err := seq.CheckRange(a, lo1, hi1); err != nil {
		return nil, fmt.Errorf("first operand: %w", err)
	}
	if err := seq.CheckRange(b, lo2, hi2); err != nil {
		return nil, fmt.Errorf("second operand: %w", err)
	}

	return seq.Resolve(a, less), nil
}

// Union returns the sorted union of a and b.
//
//	Union([1 3 5 7], [3 4 5 8]) = [1 3 4 5 7 8]
func Union[E comparable](a, b seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	if a == nil || b == nil {
		return nil, seq.ErrNilSequence
	}

	return UnionIn(a, 0, a.Len(), b, 0, b.Len(), less)
}

// UnionIn is Union over the windows [lo1, hi1) of a and [lo2, hi2) of b.
func UnionIn[E comparable](a seq.Sequence[E], lo1, hi1 int, b seq.Sequence[E], lo2, hi2 int, less seq.Less[E]) (seq.Sequence[E], error) {
	less, err := operands(a, lo1, hi1, b, lo2, hi2, less)
	if err != nil {
		return nil, err
	}

	out := make([]E, 0, (hi1-lo1)+(hi2-lo2))
	i, j := lo1, lo2
	for i < hi1 && j < hi2 {
		x, y := a.At(i), b.At(j)
		if less(y, x) {
			out = append(out, y)
			j++
			continue
		}
		out = append(out, x)
		if !less(x, y) {
			j++
		}
		i++
	}
	out = appendWindow(out, a, i, hi1)
	out = appendWindow(out, b, j, hi2)

	return a.Rebuild(out), nil
}

// Intersection returns the elements of a that tie with some element of b.
//
//	Intersection([1 3 5 7], [3 4 5 8]) = [3 5]
func Intersection[E comparable](a, b seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	if a == nil || b == nil {
		return nil, seq.ErrNilSequence
	}

	return IntersectionIn(a, 0, a.Len(), b, 0, b.Len(), less)
}

// IntersectionIn is Intersection over windows.
func IntersectionIn[E comparable](a seq.Sequence[E], lo1, hi1 int, b seq.Sequence[E], lo2, hi2 int, less seq.Less[E]) (seq.Sequence[E], error) {
	less, err := operands(a, lo1, hi1, b, lo2, hi2, less)
	if err != nil {
		return nil, err
	}

	out := make([]E, 0, min(hi1-lo1, hi2-lo2))
	i, j := lo1, lo2
	for i < hi1 && j < hi2 {
		x, y := a.At(i), b.At(j)
		switch {
		case less(x, y):
			i++
		case less(y, x):
			j++
		default:
			out = append(out, x)
			i++
			j++
		}
	}

	return a.Rebuild(out), nil
}

// Difference returns the elements of a with no tie in b.
//
//	Difference([1 3 5 7], [3 4 5 8]) = [1 7]
func Difference[E comparable](a, b seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	if a == nil || b == nil {
		return nil, seq.ErrNilSequence
	}

	return DifferenceIn(a, 0, a.Len(), b, 0, b.Len(), less)
}

// DifferenceIn is Difference over windows.
func DifferenceIn[E comparable](a seq.Sequence[E], lo1, hi1 int, b seq.Sequence[E], lo2, hi2 int, less seq.Less[E]) (seq.Sequence[E], error) {
	less, err := operands(a, lo1, hi1, b, lo2, hi2, less)
	if err != nil {
		return nil, err
	}

	out := make([]E, 0, hi1-lo1)
	i, j := lo1, lo2
	for i < hi1 && j < hi2 {
		x, y := a.At(i), b.At(j)
		switch {
		case less(x, y):
			out = append(out, x)
			i++
		case less(y, x):
			j++
		default:
			i++
			j++
		}
	}
	out = appendWindow(out, a, i, hi1)

	return a.Rebuild(out), nil
}

// SymmetricDifference returns the elements found in exactly one operand.
//
//	SymmetricDifference([1 3 5 7], [3 4 5 8]) = [1 4 7 8]
func SymmetricDifference[E comparable](a, b seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	if a == nil || b == nil {
		return nil, seq.ErrNilSequence
	}

	return SymmetricDifferenceIn(a, 0, a.Len(), b, 0, b.Len(), less)
}

// SymmetricDifferenceIn is SymmetricDifference over windows.
func SymmetricDifferenceIn[E comparable](a seq.Sequence[E], lo1, hi1 int, b seq.Sequence[E], lo2, hi2 int, less seq.Less[E]) (seq.Sequence[E], error) {
	less, err := operands(a, lo1, hi1, b, lo2, hi2, less)
	if err != nil {
		return nil, err
	}

	out := make([]E, 0, (hi1-lo1)+(hi2-lo2))
	i, j := lo1, lo2
	for i < hi1 && j < hi2 {
		x, y := a.At(i), b.At(j)
		switch {
		case less(x, y):
			out = append(out, x)
			i++
		case less(y, x):
			out = append(out, y)
			j++
		default:
			i++
			j++
		}
	}
	out = appendWindow(out, a, i, hi1)
	out = appendWindow(out, b, j, hi2)

	return a.Rebuild(out), nil
}

// Includes reports whether every element of b ties with a distinct element
// of a, i.e. b is a sub-multiset of a.
func Includes[E comparable](a, b seq.Sequence[E], less seq.Less[E]) (bool, error) {
	if a == nil || b == nil {
		return false, seq.ErrNilSequence
	}
	less = seq.Resolve(a, less)

	i, j := 0, 0
	for j < b.Len() {
		if i == a.Len() {
			return false, nil
		}
		x, y := a.At(i), b.At(j)
		switch {
		case less(y, x):
			return false, nil
		case less(x, y):
			i++
		default:
			i++
			j++
		}
	}

	return true, nil
}

// Merge interleaves a and b into one sorted sequence keeping every element.
// On ties the element of a comes first, so Merge is stable.
func Merge[E comparable](a, b seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	if a == nil || b == nil {
		return nil, seq.ErrNilSequence
	}

	return MergeIn(a, 0, a.Len(), b, 0, b.Len(), less)
}

// MergeIn is Merge over windows.
func MergeIn[E comparable](a seq.Sequence[E], lo1, hi1 int, b seq.Sequence[E], lo2, hi2 int, less seq.Less[E]) (seq.Sequence[E], error) {
	less, err := operands(a, lo1, hi1, b, lo2, hi2, less)
	if err != nil {
		return nil, err
	}

	out := make([]E, 0, (hi1-lo1)+(hi2-lo2))
	i, j := lo1, lo2
	for i < hi1 && j < hi2 {
		if x, y := a.At(i), b.At(j); less(y, x) {
			out = append(out, y)
			j++
		} else {
			out = append(out, x)
			i++
		}
	}
	out = appendWindow(out, a, i, hi1)
	out = appendWindow(out, b, j, hi2)

	return a.Rebuild(out), nil
}

func appendWindow[E comparable](dst []E, s seq.Sequence[E], lo, hi int) []E {
	for k := lo; k < hi; k++ {
		dst = append(dst, s.At(k))
	}

	return dst
}
