// SPDX-License-Identifier: MIT

package edit

import (
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

// Range returns the elements of s at positions [lo, hi).
//
// Errors:
//   - seq.ErrNilSequence: s is nil.
//   - seq.ErrInvalidRange: hi < lo.
//   - seq.ErrIndexOutOfRange: lo < 0 or hi > s.Len().
//
// Complexity: O(hi-lo).
func Range[E comparable](s seq.Sequence[E], lo, hi int) (seq.Sequence[E], error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return nil, err
	}

	return s.Rebuild(slice(s, lo, hi)), nil
}

// Concat joins first and rest in order. The result has first's shape.
func Concat[E comparable](first seq.Sequence[E], rest ...seq.Sequence[E]) (seq.Sequence[E], error) {
	if first == nil {
		return nil, seq.ErrNilSequence
	}
	n := first.Len()
	for i, r := range rest {
		if r == nil {
			return nil, fmt.Errorf("%w: operand %d", seq.ErrNilSequence, i+1)
		}
		n += r.Len()
	}

	out := make([]E, 0, n)
	out = appendAll(out, first)
	for _, r := range rest {
		out = appendAll(out, r)
	}

	return first.Rebuild(out), nil
}

// Erase removes the elements at positions [lo, hi).
func Erase[E comparable](s seq.Sequence[E], lo, hi int) (seq.Sequence[E], error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return nil, err
	}
	head, _ := Range(s, 0, lo)
	tail, _ := Range(s, hi, s.Len())

	return Concat(head, tail)
}

// Insert places elems before position i; i == s.Len() appends.
func Insert[E comparable](s seq.Sequence[E], i int, elems ...E) (seq.Sequence[E], error) {
	return Replace(s, i, i, elems...)
}

// Replace substitutes the elements at [lo, hi) with elems.
func Replace[E comparable](s seq.Sequence[E], lo, hi int, elems ...E) (seq.Sequence[E], error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return nil, err
	}
	head, _ := Range(s, 0, lo)
	tail, _ := Range(s, hi, s.Len())
	mid := make([]E, len(elems))
	copy(mid, elems)

	return Concat(head, s.Rebuild(mid), tail)
}

// Append adds elems at the back.
func Append[E comparable](s seq.Sequence[E], elems ...E) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}

	return Insert(s, s.Len(), elems...)
}

// Prepend adds elems at the front.
func Prepend[E comparable](s seq.Sequence[E], elems ...E) (seq.Sequence[E], error) {
	return Insert(s, 0, elems...)
}

// Exchange replaces the element at position i with e.
func Exchange[E comparable](s seq.Sequence[E], i int, e E) (seq.Sequence[E], error) {
	if err := seq.CheckIndex(s, i); err != nil {
		return nil, err
	}

	return Replace(s, i, i+1, e)
}

// TakeFront keeps the first n elements.
func TakeFront[E comparable](s seq.Sequence[E], n int) (seq.Sequence[E], error) {
	return Range(s, 0, n)
}

// TakeBack keeps the last n elements.
func TakeBack[E comparable](s seq.Sequence[E], n int) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}

	return Range(s, s.Len()-n, s.Len())
}

// DropFront removes the first n elements.
func DropFront[E comparable](s seq.Sequence[E], n int) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}

	return Range(s, n, s.Len())
}

// DropBack removes the last n elements.
func DropBack[E comparable](s seq.Sequence[E], n int) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}

	return Range(s, 0, s.Len()-n)
}

// PopFront removes the first element; the empty sequence is an error.
func PopFront[E comparable](s seq.Sequence[E]) (seq.Sequence[E], error) {
	if _, err := seq.Front(s); err != nil {
		return nil, err
	}

	return DropFront(s, 1)
}

// PopBack removes the last element; the empty sequence is an error.
func PopBack[E comparable](s seq.Sequence[E]) (seq.Sequence[E], error) {
	if _, err := seq.Back(s); err != nil {
		return nil, err
	}

	return DropBack(s, 1)
}

// slice copies s[lo:hi) into a fresh slice. Bounds are the caller's concern.
func slice[E comparable](s seq.Sequence[E], lo, hi int) []E {
	out := make([]E, hi-lo)
	for i := range out {
		out[i] = s.At(lo + i)
	}

	return out
}

func appendAll[E comparable](dst []E, s seq.Sequence[E]) []E {
	for i := 0; i < s.Len(); i++ {
		dst = append(dst, s.At(i))
	}

	return dst
}
