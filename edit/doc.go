// SPDX-License-Identifier: MIT

// Package edit implements the structural editing layer of seqlath: slicing,
// concatenation, insertion, erasure, rotation, reversal, swapping and
// deduplication over any seq.Sequence.
//
// Every operation returns a new sequence of the same shape as its input and
// leaves the input untouched. Erase, Insert, Replace and the Take/Drop/Pop
// family are compositions of Range and Concat, so they share one set of
// boundary rules:
//
//	Range(s, lo, hi)   lo ≤ hi ≤ len(s), else ErrInvalidRange / ErrIndexOutOfRange
//	Rotate(s, i, j, k) i ≤ j ≤ k ≤ len(s); blocks [i,j) and [j,k) trade places
//
// Example:
//
//	s := seq.ValuesOf(0, 1, 2, 3, 4)
//	r, _ := edit.Rotate[int](s, 1, 3, 5) // 0 3 4 1 2
//	u, _ := edit.Unique[int](seq.ValuesOf(1, 2, 1, 3)) // 1 2 3
package edit
