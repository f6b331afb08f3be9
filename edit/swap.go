// SPDX-License-Identifier: MIT

package edit

import (
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

// Swap exchanges the elements at positions i and j. i == j is a no-op
// that still returns a fresh sequence.
func Swap[E comparable](s seq.Sequence[E], i, j int) (seq.Sequence[E], error) {
	if err := seq.CheckIndex(s, i); err != nil {
		return nil, err
	}
	if err := seq.CheckIndex(s, j); err != nil {
		return nil, err
	}
	elems := s.Elements()
	elems[i], elems[j] = elems[j], elems[i]

	return s.Rebuild(elems), nil
}

// SwapRanges exchanges the elements at [lo, hi) of a with those at the same
// positions of b.
func SwapRanges[E comparable](a, b seq.Sequence[E], lo, hi int) (seq.Sequence[E], seq.Sequence[E], error) {
	return SwapExtent(a, lo, hi, b, lo, hi)
}

// SwapExtent exchanges the block [lo1, hi1) of a with the block [lo2, hi2)
// of b. The blocks may differ in length, in which case both results change
// length accordingly.
//
//	SwapExtent([1 2 3 4], 1, 3, [7 8 9], 0, 1) = [1 7 4], [2 3 8 9]
func SwapExtent[E comparable](a seq.Sequence[E], lo1, hi1 int, b seq.Sequence[E], lo2, hi2 int) (seq.Sequence[E], seq.Sequence[E], error) {
	if err := seq.CheckRange(a, lo1, hi1); err != nil {
		return nil, nil, fmt.Errorf("first operand: %w", err)
	}
	if err := seq.CheckRange(b, lo2, hi2); err != nil {
		return nil, nil, fmt.Errorf("second operand: %w", err)
	}

	blockA := slice(a, lo1, hi1)
	blockB := slice(b, lo2, hi2)
	outA, err := Replace(a, lo1, hi1, blockB...)
	if err != nil {
		return nil, nil, err
	}
	outB, err := Replace(b, lo2, hi2, blockA...)
	if err != nil {
		return nil, nil, err
	}

	return outA, outB, nil
}
