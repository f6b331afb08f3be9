// SPDX-License-Identifier: MIT

package edit

import (
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

// Reverse returns s with its element order flipped.
// Reverse(Reverse(s)) equals s for every s, including the empty one.
func Reverse[E comparable](s seq.Sequence[E]) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}

	return ReverseRange(s, 0, s.Len())
}

// ReverseRange flips the order of the elements in [lo, hi) only.
func ReverseRange[E comparable](s seq.Sequence[E], lo, hi int) (seq.Sequence[E], error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return nil, err
	}
	elems := s.Elements()
	for l, r := lo, hi-1; l < r; l, r = l+1, r-1 {
		elems[l], elems[r] = elems[r], elems[l]
	}

	return s.Rebuild(elems), nil
}

// Rotate treats [i, k) as two adjacent blocks [i, j) and [j, k) and swaps
// their positions; elements outside [i, k) stay where they are.
//
//	Rotate([a b c d e], 1, 3, 5) = [a d e b c]
//
// Errors:
//   - seq.ErrInvalidRange: not i ≤ j ≤ k.
//   - seq.ErrIndexOutOfRange: i < 0 or k > s.Len().
func Rotate[E comparable](s seq.Sequence[E], i, j, k int) (seq.Sequence[E], error) {
	if err := seq.CheckRange(s, i, k); err != nil {
		return nil, err
	}
	if j < i || j > k {
		return nil, fmt.Errorf("%w: middle %d outside [%d, %d]", seq.ErrInvalidRange, j, i, k)
	}

	head, _ := Range(s, 0, i)
	left, _ := Range(s, i, j)
	right, _ := Range(s, j, k)
	tail, _ := Range(s, k, s.Len())

	return Concat(head, right, left, tail)
}

// ShiftLeft rotates the whole sequence left by n: Rotate(s, 0, n, len).
func ShiftLeft[E comparable](s seq.Sequence[E], n int) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}

	return Rotate(s, 0, n, s.Len())
}

// ShiftRight rotates the whole sequence right by n: Rotate(s, 0, len-n, len).
func ShiftRight[E comparable](s seq.Sequence[E], n int) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}

	return Rotate(s, 0, s.Len()-n, s.Len())
}
