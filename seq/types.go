// SPDX-License-Identifier: MIT

package seq

import "errors"

// Sentinel errors shared by every seqlath package.
var (
	// ErrNilSequence is returned when an entry point receives a nil Sequence,
	// i.e. a value that is neither a Type-Sequence nor a Value-Sequence.
	ErrNilSequence = errors.New("seq: sequence is nil")

	// ErrIndexOutOfRange indicates an index or range bound outside [0, len).
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrInvalidRange indicates a half-open range [lo, hi) with hi < lo.
	ErrInvalidRange = errors.New("seq: invalid range")

	// ErrEmptySequence indicates an operation that needs at least one element.
	ErrEmptySequence = errors.New("seq: sequence is empty")

	// ErrNegativeValue indicates a constant that cannot be expressed as a type size.
	ErrNegativeValue = errors.New("seq: negative value has no type representation")
)

// Shape names which of the two canonical containers a Sequence is.
type Shape int

const (
	// ShapeTypes is an ordered list of type descriptors.
	ShapeTypes Shape = iota

	// ShapeValues is an ordered list of homogeneous integer constants.
	ShapeValues
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeTypes:
		return "types"
	case ShapeValues:
		return "values"
	default:
		return "unknown"
	}
}

// Sequence is the capability every algorithm in seqlath is written against:
// an indexable, fixed-length, immutable sequence of element kind E.
//
// Implementations must treat the receiver as a value: Rebuild returns a new
// Sequence of the same shape and never aliases the receiver's storage.
type Sequence[E comparable] interface {
	// Len reports the number of elements.
	Len() int

	// At returns the element at position i. It panics when i is outside
	// [0, Len()), like a slice index; use Get for a checked access.
	At(i int) E

	// Key returns the canonical ordering key of e: the byte size of a type,
	// the value of a constant.
	Key(e E) int64

	// Shape reports the container shape.
	Shape() Shape

	// Elements returns a fresh copy of the elements in order.
	Elements() []E

	// Rebuild returns a sequence of the same shape holding elems.
	// The returned sequence takes ownership of elems.
	Rebuild(elems []E) Sequence[E]
}

// Less is a strict ordering predicate: it reports whether a sorts before b.
type Less[E any] func(a, b E) bool

// Pred is a unary predicate over elements.
type Pred[E any] func(e E) bool

// Eq is an equality relation over elements.
type Eq[E any] func(a, b E) bool
