// SPDX-License-Identifier: MIT

package seq

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Values is the Value-Sequence shape: ordered integer constants that all
// share the element kind E. The ordering key of an element is its value.
//
// Key carries the value as int64 for arithmetic (sums, distances), so
// unsigned values above math.MaxInt64 wrap there. Ordering goes through
// Rank, which follows the native order of E for every kind.
type Values[E constraints.Integer] struct {
	elems []E
}

var (
	_ Sequence[int]  = Values[int]{}
	_ Ranked[uint64] = Values[uint64]{}
)

// ValuesOf builds a Value-Sequence from vs (copied).
func ValuesOf[E constraints.Integer](vs ...E) Values[E] {
	elems := make([]E, len(vs))
	copy(elems, vs)

	return Values[E]{elems: elems}
}

// Iota builds n constants start, start+step, start+2·step, ...
// A negative n yields the empty sequence.
func Iota[E constraints.Integer](n int, start, step E) Values[E] {
	if n < 0 {
		n = 0
	}
	elems := make([]E, n)
	v := start
	for i := range elems {
		elems[i] = v
		v += step
	}

	return Values[E]{elems: elems}
}

// Repeat builds n copies of v. A negative n yields the empty sequence.
func Repeat[E constraints.Integer](n int, v E) Values[E] {
	return Iota(n, v, 0)
}

// Len implements Sequence.
func (v Values[E]) Len() int { return len(v.elems) }

// At implements Sequence.
func (v Values[E]) At(i int) E { return v.elems[i] }

// Key implements Sequence: the value itself.
func (v Values[E]) Key(e E) int64 { return int64(e) }

// Rank implements Ranked: signed kinds are offset by the sign bit,
// unsigned kinds are their own rank.
func (v Values[E]) Rank(e E) uint64 {
	var zero E
	if zero-1 < zero {
		return uint64(int64(e)) ^ signBit
	}

	return uint64(e)
}

// Shape implements Sequence.
func (v Values[E]) Shape() Shape { return ShapeValues }

// Elements implements Sequence.
func (v Values[E]) Elements() []E {
	out := make([]E, len(v.elems))
	copy(out, v.elems)

	return out
}

// Rebuild implements Sequence.
func (v Values[E]) Rebuild(elems []E) Sequence[E] {
	return Values[E]{elems: elems}
}

// String renders the list as "values[1 2 3]".
func (v Values[E]) String() string {
	var b strings.Builder
	b.WriteString("values[")
	for i, e := range v.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, e)
	}
	b.WriteByte(']')

	return b.String()
}

// AsValues returns s as a Values[E] when it already has that concrete
// shape, or copies its elements into one otherwise.
func AsValues[E constraints.Integer](s Sequence[E]) Values[E] {
	if v, ok := s.(Values[E]); ok {
		return v
	}

	return Values[E]{elems: s.Elements()}
}
