// SPDX-License-Identifier: MIT

package seq

// Ranked is implemented by sequences whose elements carry an
// order-preserving unsigned image finer than their int64 Key. Values
// implements it, so unsigned constants above math.MaxInt64 still order
// after every smaller constant.
type Ranked[E any] interface {
	Rank(e E) uint64
}

// signBit moves an int64 key onto the uint64 line without changing order.
const signBit = 1 << 63

// Ranker returns the rank function of s: Rank when s implements Ranked,
// otherwise the Key shifted by the sign bit. a sorts canonically before b
// exactly when rank(a) < rank(b).
func Ranker[E comparable](s Sequence[E]) func(e E) uint64 {
	if r, ok := s.(Ranked[E]); ok {
		return r.Rank
	}

	return func(e E) uint64 { return uint64(s.Key(e)) ^ signBit }
}

// Ordering returns the canonical strict order of s: ascending by rank.
// For a Type-Sequence this is "smaller type first", for a Value-Sequence
// the natural numeric order of E.
func Ordering[E comparable](s Sequence[E]) Less[E] {
	rank := Ranker(s)

	return func(a, b E) bool { return rank(a) < rank(b) }
}

// OrderingEqual returns the canonical non-strict order of s.
func OrderingEqual[E comparable](s Sequence[E]) Less[E] {
	rank := Ranker(s)

	return func(a, b E) bool { return rank(a) <= rank(b) }
}

// Resolve returns less, or the canonical Ordering of s when less is nil.
func Resolve[E comparable](s Sequence[E], less Less[E]) Less[E] {
	if less != nil {
		return less
	}

	return Ordering(s)
}

// Flip reverses an ordering: Flip(less)(a, b) == less(b, a).
func Flip[E any](less Less[E]) Less[E] {
	return func(a, b E) bool { return less(b, a) }
}

// LessEqual derives the non-strict companion of a strict order.
func LessEqual[E any](less Less[E]) Less[E] {
	return func(a, b E) bool { return !less(b, a) }
}

// Equivalent derives the equivalence of a strict order: neither sorts
// before the other.
func Equivalent[E any](less Less[E]) Eq[E] {
	return func(a, b E) bool { return !less(a, b) && !less(b, a) }
}

// Identical is the structural equality of comparable elements.
func Identical[E comparable](a, b E) bool { return a == b }

// ResolveEq returns eq, or Identical when eq is nil.
func ResolveEq[E comparable](eq Eq[E]) Eq[E] {
	if eq != nil {
		return eq
	}

	return Identical[E]
}

// Not negates a predicate.
func Not[E any](pred Pred[E]) Pred[E] {
	return func(e E) bool { return !pred(e) }
}
