// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

// CountingSort orders s canonically with a stable counting pass over ranks
// (see seq.Ranker). Ranks are shifted by their minimum, so negative
// constants are fine.
//
// Errors:
//   - seq.ErrNilSequence
//   - ErrKeyRangeTooWide: max(key)-min(key)+1 exceeds MaxCountingSpan.
//
// Complexity: O(n + k) where k is the key span.
func CountingSort[E comparable](s seq.Sequence[E]) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}
	elems := s.Elements()
	if len(elems) < 2 {
		return s.Rebuild(elems), nil
	}

	rank := seq.Ranker(s)
	keys := make([]uint64, len(elems))
	lo, hi := rank(elems[0]), rank(elems[0])
	for i, e := range elems {
		k := rank(e)
		keys[i] = k
		lo, hi = min(lo, k), max(hi, k)
	}
	span := hi - lo
	if span >= MaxCountingSpan {
		return nil, fmt.Errorf("%w: span %d", ErrKeyRangeTooWide, span+1)
	}

	digit := func(i int) int { return int(keys[i] - lo) }

	return s.Rebuild(countingPass(elems, int(span)+1, digit)), nil
}

// RadixSort orders s canonically by rank, least significant decimal digit
// first, with a stable counting pass per digit.
//
// Complexity: O(d·(n + 10)) where d is the digit count of the key span.
func RadixSort[E comparable](s seq.Sequence[E]) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}
	elems := s.Elements()
	if len(elems) < 2 {
		return s.Rebuild(elems), nil
	}

	rank := seq.Ranker(s)
	lo := rank(elems[0])
	for _, e := range elems {
		lo = min(lo, rank(e))
	}
	shifted := func(e E) uint64 { return rank(e) - lo }
	var top uint64
	for _, e := range elems {
		top = max(top, shifted(e))
	}

	for exp := uint64(1); ; exp *= 10 {
		cur := elems
		elems = countingPass(cur, 10, func(i int) int { return int(shifted(cur[i]) / exp % 10) })
		if top/exp < 10 {
			break
		}
	}

	return s.Rebuild(elems), nil
}

// countingPass stably distributes elems into buckets [0, buckets) chosen by
// digit(i) and returns the concatenation.
func countingPass[E comparable](elems []E, buckets int, digit func(i int) int) []E {
	count := make([]int, buckets+1)
	for i := range elems {
		count[digit(i)+1]++
	}
	for b := 1; b <= buckets; b++ {
		count[b] += count[b-1]
	}

	out := make([]E, len(elems))
	for i, e := range elems {
		d := digit(i)
		out[count[d]] = e
		count[d]++
	}

	return out
}
