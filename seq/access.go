// SPDX-License-Identifier: MIT

package seq

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Size returns the length of s; a nil sequence has size 0.
func Size[E comparable](s Sequence[E]) int {
	if s == nil {
		return 0
	}

	return s.Len()
}

// Get returns the element at position i.
//
// Errors:
//   - ErrNilSequence: s is nil.
//   - ErrIndexOutOfRange: i is outside [0, s.Len()).
func Get[E comparable](s Sequence[E], i int) (E, error) {
	var zero E
	if err := CheckIndex(s, i); err != nil {
		return zero, err
	}

	return s.At(i), nil
}

// Front returns the first element, or ErrEmptySequence.
func Front[E comparable](s Sequence[E]) (E, error) {
	var zero E
	if s == nil {
		return zero, ErrNilSequence
	}
	if s.Len() == 0 {
		return zero, ErrEmptySequence
	}

	return s.At(0), nil
}

// Back returns the last element, or ErrEmptySequence.
func Back[E comparable](s Sequence[E]) (E, error) {
	var zero E
	if s == nil {
		return zero, ErrNilSequence
	}
	if s.Len() == 0 {
		return zero, ErrEmptySequence
	}

	return s.At(s.Len() - 1), nil
}

// Empty returns the zero-length base form of s's shape, the seed every
// build-by-appending algorithm starts from.
func Empty[E comparable](s Sequence[E]) Sequence[E] {
	return s.Rebuild(nil)
}

// CheckIndex verifies that i addresses an element of s.
func CheckIndex[E comparable](s Sequence[E], i int) error {
	if s == nil {
		return ErrNilSequence
	}
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, s.Len())
	}

	return nil
}

// CheckRange verifies that [lo, hi) is a valid half-open range over s.
//
// Errors:
//   - ErrNilSequence: s is nil.
//   - ErrInvalidRange: hi < lo.
//   - ErrIndexOutOfRange: lo < 0 or hi > s.Len().
func CheckRange[E comparable](s Sequence[E], lo, hi int) error {
	if s == nil {
		return ErrNilSequence
	}
	if hi < lo {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, lo, hi)
	}
	if lo < 0 || hi > s.Len() {
		return fmt.Errorf("%w: [%d, %d), length %d", ErrIndexOutOfRange, lo, hi, s.Len())
	}

	return nil
}

// Equal reports structural identity: same shape, same length, same
// elements in the same order. Two nil sequences are equal.
func Equal[E comparable](a, b Sequence[E]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Shape() != b.Shape() || a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}

	return true
}

// Keys returns the ordering keys of s in order.
func Keys[E comparable](s Sequence[E]) []int64 {
	out := make([]int64, s.Len())
	for i := range out {
		out[i] = s.Key(s.At(i))
	}

	return out
}

// ToValues converts a Type-Sequence into a Value-Sequence of kind E by
// taking each descriptor's byte size. Order is preserved.
func ToValues[E constraints.Integer](t Sequence[reflect.Type]) Values[E] {
	elems := make([]E, t.Len())
	for i := range elems {
		elems[i] = E(t.Key(t.At(i)))
	}

	return Values[E]{elems: elems}
}

// ToTypes converts a Value-Sequence into a Type-Sequence. The constant v
// becomes the array type [v]uint8, whose byte size is v, so keys and order
// survive the round trip through ToValues.
//
// Errors:
//   - ErrNilSequence: v is nil.
//   - ErrNegativeValue: some constant is negative.
func ToTypes[E constraints.Integer](v Sequence[E]) (Types, error) {
	if v == nil {
		return Types{}, ErrNilSequence
	}
	byteType := reflect.TypeOf(uint8(0))
	elems := make([]reflect.Type, v.Len())
	for i := range elems {
		k := v.Key(v.At(i))
		if k < 0 {
			return Types{}, fmt.Errorf("%w: position %d holds %d", ErrNegativeValue, i, k)
		}
		elems[i] = reflect.ArrayOf(int(k), byteType)
	}

	return Types{elems: elems}, nil
}
