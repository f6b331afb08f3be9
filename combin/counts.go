// SPDX-License-Identifier: MIT

package combin

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/seqlath/seq"
)

// NextCombinationCounts steps through the multisets of size r drawn from n
// kinds, each held as a count vector (c[0], ..., c[n-1]) summing to r.
// Vectors run in ascending lexicographic order from (0, ..., 0, r) to
// (r, 0, ..., 0); the last wraps to the first with false.
//
// The step moves one unit from the last non-zero count to its left
// neighbour and pushes what remains of that count to the end.
//
// Errors:
//   - seq.ErrNilSequence
//   - ErrIndexOutOfBounds: some count is negative.
func NextCombinationCounts[E constraints.Integer](counts seq.Sequence[E]) (seq.Sequence[E], bool, error) {
	c, err := countDigits(counts)
	if err != nil || len(c) == 0 {
		return counts, false, err
	}
	n := len(c)
	i := n - 1
	for i > 0 && c[i] == 0 {
		i--
	}
	if i == 0 {
		c[0], c[n-1] = c[n-1], c[0]
		return counts.Rebuild(c), false, nil
	}
	c[i]--
	c[i], c[n-1] = c[n-1], c[i]
	c[i-1]++

	return counts.Rebuild(c), true, nil
}

// PrevCombinationCounts is the inverse step of NextCombinationCounts; the
// first vector wraps to (r, 0, ..., 0) with false.
func PrevCombinationCounts[E constraints.Integer](counts seq.Sequence[E]) (seq.Sequence[E], bool, error) {
	c, err := countDigits(counts)
	if err != nil || len(c) == 0 {
		return counts, false, err
	}
	n := len(c)
	i := n - 2
	for i >= 0 && c[i] == 0 {
		i--
	}
	if i < 0 {
		c[0], c[n-1] = c[n-1], c[0]
		return counts.Rebuild(c), false, nil
	}
	c[i]--
	c[i+1], c[n-1] = c[n-1], c[i+1]
	c[i+1]++

	return counts.Rebuild(c), true, nil
}

// CombinationCountsList enumerates every count vector of n kinds summing to
// r, starting from (0, ..., 0, r). There are C(n+r-1, r) of them.
//
// Errors:
//   - seq.ErrInvalidRange: n < 1 or r < 0.
func CombinationCountsList[E constraints.Integer](n int, r E) ([]seq.Sequence[E], error) {
	if n < 1 || r < 0 {
		return nil, fmt.Errorf("%w: %d kinds, size %d", seq.ErrInvalidRange, n, r)
	}
	first := make([]E, n)
	first[n-1] = r

	var (
		out []seq.Sequence[E]
		cur seq.Sequence[E] = seq.ValuesOf(first...)
		ok  = true
		err error
	)
	for ok {
		out = append(out, cur)
		if cur, ok, err = NextCombinationCounts(cur); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func countDigits[E constraints.Integer](counts seq.Sequence[E]) ([]E, error) {
	if counts == nil {
		return nil, seq.ErrNilSequence
	}
	c := counts.Elements()
	for i, x := range c {
		if x < 0 {
			return nil, fmt.Errorf("%w: count %d is %d", ErrIndexOutOfBounds, i, x)
		}
	}

	return c, nil
}
