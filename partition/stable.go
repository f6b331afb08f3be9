// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/katalvlaran/seqlath/internal/kernel"
	"github.com/katalvlaran/seqlath/seq"
)

// StablePartition moves the elements of [lo, hi) satisfying pred in front
// of the others, preserving relative order within both groups, and returns
// the boundary. Options select the buffer size (WithBufferSize); the
// default is half of the range that follows the leading run of true
// elements, and a range that is already all true returns hi untouched.
//
// Complexity: O(n) with a full buffer, O(n log n) with none.
func StablePartition[E comparable](s seq.Sequence[E], lo, hi int, pred seq.Pred[E], opts ...Option) (seq.Sequence[E], int, error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return nil, 0, err
	}
	o := Apply(opts...)
	elems := s.Elements()
	p := kernel.StablePartition(elems, lo, hi, o.BufferSize, pred)

	return s.Rebuild(elems), p, nil
}

// PartitionAdaptive is the order-preserving partition without the leading
// skip: a range of at most bufSize elements is reshuffled through scratch
// space, a longer one is halved and the halves merged by rotation.
//
// Errors:
//   - seq.ErrInvalidRange: also when bufSize is negative.
func PartitionAdaptive[E comparable](s seq.Sequence[E], lo, hi, bufSize int, pred seq.Pred[E]) (seq.Sequence[E], int, error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return nil, 0, err
	}
	if bufSize < 0 {
		return nil, 0, fmt.Errorf("%w: buffer size %d", seq.ErrInvalidRange, bufSize)
	}
	elems := s.Elements()
	p := kernel.Adaptive(elems, lo, hi, bufSize, pred)

	return s.Rebuild(elems), p, nil
}

// RandomizedStablePartition picks a pivot value from [lo, hi) with src and
// stably splits the range into (< pivot | == pivot | > pivot) under less.
// It returns the bounds [lt, gt) of the block equal to the pivot.
// A nil less is the canonical key order, a nil src DefaultLFSR().
func RandomizedStablePartition[E comparable](s seq.Sequence[E], lo, hi int, less seq.Less[E], src Source) (seq.Sequence[E], int, int, error) {
	if err := window(s, lo, hi); err != nil {
		return nil, 0, 0, err
	}
	less = seq.Resolve(s, less)
	if src == nil {
		src = DefaultLFSR()
	}
	elems := s.Elements()
	pivot := elems[lo+src.Intn(hi-lo)]
	lt, gt := kernel.Split3(elems, lo, hi, pivot, less)

	return s.Rebuild(elems), lt, gt, nil
}
