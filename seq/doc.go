// SPDX-License-Identifier: MIT

// Package seq is the representation layer of seqlath: the two canonical
// sequence shapes every algorithm in the module is written against.
//
// 🚀 What is a sequence here?
//
//	An ordered, fixed-length, immutable collection of elements that comes in
//	exactly two shapes:
//	  • Type-Sequence  (Types): ordered reflect.Type descriptors, analogous to a tuple of types.
//	  • Value-Sequence (Values[E]): ordered integer constants of one declared kind.
//
//	Both implement Sequence[E]. Algorithms never look at the concrete shape:
//	they read elements through At/Len, order them through Key (byte size for a
//	type, the value itself for a constant), and produce results through
//	Rebuild, which always returns the same shape as the input.
//
// ✨ Guarantees:
//   - Value semantics: no function in seqlath mutates its input; every edit
//     returns a freshly built sequence.
//   - Dual-shape invariant: a Types and a Values with equal keys yield results
//     with equal keys under every algorithm.
//   - Fail-fast bounds: checked accessors (Get, CheckRange) return sentinel
//     errors before any work is done; there are no partial results.
//
// ⚙️ Usage:
//
//	vs := seq.ValuesOf(5, 3, 1, 4, 2)
//	ts := seq.TypesOf(int64(0), int8(0), int32(0))
//
//	x, err := seq.Get[int](vs, 2)     // 1, nil
//	_, err = seq.Get[int](vs, 9)      // ErrIndexOutOfRange
//
//	asTypes, err := seq.ToTypes(vs)   // [5]uint8, [3]uint8, ...
//	back := seq.ToValues[int](asTypes) // 5 3 1 4 2
//
// Complexity:
//
//   - At / Len / Key: O(1)
//   - Elements / Rebuild / conversions: O(n)
package seq
