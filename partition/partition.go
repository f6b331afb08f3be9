// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/katalvlaran/seqlath/internal/kernel"
	"github.com/katalvlaran/seqlath/seq"
)

// Partition runs the Lomuto scheme over [lo, hi) with pivot s[hi-1].
// Elements e with goesLeft(e, pivot) end up before the pivot, the others
// after it; nil goesLeft is the canonical key order "less or equal".
// It returns the rearranged sequence and the pivot's final index.
//
// Errors:
//   - seq.ErrNilSequence, seq.ErrInvalidRange, seq.ErrIndexOutOfRange as seq.CheckRange.
//   - seq.ErrEmptySequence: lo == hi leaves no pivot.
//
// Complexity: O(hi-lo) comparisons.
func Partition[E comparable](s seq.Sequence[E], lo, hi int, goesLeft seq.Less[E]) (seq.Sequence[E], int, error) {
	if err := window(s, lo, hi); err != nil {
		return nil, 0, err
	}
	if goesLeft == nil {
		goesLeft = seq.OrderingEqual(s)
	}
	elems := s.Elements()
	q := kernel.Lomuto(elems, lo, hi, goesLeft)

	return s.Rebuild(elems), q, nil
}

// RandomizedPartition swaps an element chosen by src into position hi-1
// and then partitions like Partition. A nil src means DefaultLFSR().
func RandomizedPartition[E comparable](s seq.Sequence[E], lo, hi int, goesLeft seq.Less[E], src Source) (seq.Sequence[E], int, error) {
	if err := window(s, lo, hi); err != nil {
		return nil, 0, err
	}
	if goesLeft == nil {
		goesLeft = seq.OrderingEqual(s)
	}
	if src == nil {
		src = DefaultLFSR()
	}
	elems := s.Elements()
	q := kernel.RandomizedLomuto(elems, lo, hi, goesLeft, src)

	return s.Rebuild(elems), q, nil
}

// Shuffle permutes [lo, hi) with Fisher–Yates. A nil src means DefaultLFSR().
func Shuffle[E comparable](s seq.Sequence[E], lo, hi int, src Source) (seq.Sequence[E], error) {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return nil, err
	}
	if src == nil {
		src = DefaultLFSR()
	}
	elems := s.Elements()
	kernel.Shuffle(elems, lo, hi, src)

	return s.Rebuild(elems), nil
}

// window validates a non-empty partition range.
func window[E comparable](s seq.Sequence[E], lo, hi int) error {
	if err := seq.CheckRange(s, lo, hi); err != nil {
		return err
	}
	if lo == hi {
		return fmt.Errorf("%w: empty window at %d", seq.ErrEmptySequence, lo)
	}

	return nil
}
