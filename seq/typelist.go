// SPDX-License-Identifier: MIT

package seq

import (
	"reflect"
	"strings"
)

// panicNilSample is raised by TypesOf for a nil sample, which has no type.
const panicNilSample = "seq: TypesOf: nil sample has no type"

// Types is the Type-Sequence shape: an ordered list of reflect.Type
// descriptors. Two Types are the same value iff they list the same
// descriptors in the same order. The ordering key of an element is its
// byte size, so sizes act as the canonical "less-than" between types.
type Types struct {
	elems []reflect.Type
}

var _ Sequence[reflect.Type] = Types{}

// TypesOf builds a Type-Sequence from the dynamic types of samples.
// It panics on a nil sample (programmer error).
func TypesOf(samples ...any) Types {
	elems := make([]reflect.Type, len(samples))
	for i, s := range samples {
		if s == nil {
			panic(panicNilSample)
		}
		elems[i] = reflect.TypeOf(s)
	}

	return Types{elems: elems}
}

// TypeList builds a Type-Sequence from descriptors.
// It panics on a nil descriptor, as TypesOf does.
func TypeList(ts ...reflect.Type) Types {
	elems := make([]reflect.Type, len(ts))
	for i, t := range ts {
		if t == nil {
			panic(panicNilSample)
		}
		elems[i] = t
	}

	return Types{elems: elems}
}

// Len implements Sequence.
func (t Types) Len() int { return len(t.elems) }

// At implements Sequence.
func (t Types) At(i int) reflect.Type { return t.elems[i] }

// Key implements Sequence: the byte size of e.
func (t Types) Key(e reflect.Type) int64 { return int64(e.Size()) }

// Shape implements Sequence.
func (t Types) Shape() Shape { return ShapeTypes }

// Elements implements Sequence.
func (t Types) Elements() []reflect.Type {
	out := make([]reflect.Type, len(t.elems))
	copy(out, t.elems)

	return out
}

// Rebuild implements Sequence.
func (t Types) Rebuild(elems []reflect.Type) Sequence[reflect.Type] {
	return Types{elems: elems}
}

// String renders the list as "types[int8 int32 ...]".
func (t Types) String() string {
	var b strings.Builder
	b.WriteString("types[")
	for i, e := range t.elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')

	return b.String()
}
