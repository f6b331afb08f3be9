// SPDX-License-Identifier: MIT

package dynprog

import (
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

// Subarray is a non-empty run [Low, High] (both inclusive) and the sum of
// its keys.
type Subarray struct {
	Low  int
	High int
	Sum  int64
}

// Kadane returns a maximum-sum subarray of s by the linear running-max scan:
// the best run ending at i is either element i alone or element i appended
// to the best run ending at i-1. The earliest maximum wins.
//
// Complexity: O(n).
func Kadane[E comparable](s seq.Sequence[E]) (Subarray, error) {
	if s == nil {
		return Subarray{}, seq.ErrNilSequence
	}
	if s.Len() == 0 {
		return Subarray{}, seq.ErrEmptySequence
	}

	first := s.Key(s.At(0))
	best := Subarray{Sum: first}
	start, run := 0, first
	for i := 1; i < s.Len(); i++ {
		x := s.Key(s.At(i))
		if run+x < x {
			start, run = i, x
		} else {
			run += x
		}
		if run > best.Sum {
			best = Subarray{Low: start, High: i, Sum: run}
		}
	}

	return best, nil
}

// FindMaximumSubarray returns a maximum-sum subarray of s by divide and
// conquer: the best of the left half, the right half and the best run
// crossing the midpoint. Ties prefer left, then right, then crossing.
//
// Its Sum always equals Kadane's.
//
// Complexity: O(n log n).
func FindMaximumSubarray[E comparable](s seq.Sequence[E]) (Subarray, error) {
	if s == nil {
		return Subarray{}, seq.ErrNilSequence
	}
	if s.Len() == 0 {
		return Subarray{}, seq.ErrEmptySequence
	}

	return maximumSubarray(s, 0, s.Len()-1), nil
}

func maximumSubarray[E comparable](s seq.Sequence[E], lo, hi int) Subarray {
	if lo == hi {
		return Subarray{Low: lo, High: hi, Sum: s.Key(s.At(lo))}
	}
	mid := (lo + hi) / 2
	left := maximumSubarray(s, lo, mid)
	right := maximumSubarray(s, mid+1, hi)
	cross := crossingSubarray(s, lo, mid, hi)

	switch {
	case left.Sum >= right.Sum && left.Sum >= cross.Sum:
		return left
	case right.Sum >= left.Sum && right.Sum >= cross.Sum:
		return right
	default:
		return cross
	}
}

// FindMaxCrossingSubarray returns the maximum-sum run of s[lo..hi] that
// contains both mid and mid+1. Bounds are inclusive and must satisfy
// 0 ≤ lo ≤ mid < hi < s.Len().
func FindMaxCrossingSubarray[E comparable](s seq.Sequence[E], lo, mid, hi int) (Subarray, error) {
	if s == nil {
		return Subarray{}, seq.ErrNilSequence
	}
	if lo < 0 || hi >= s.Len() {
		return Subarray{}, fmt.Errorf("%w: [%d, %d] of %d", seq.ErrIndexOutOfRange, lo, hi, s.Len())
	}
	if lo > mid || mid >= hi {
		return Subarray{}, fmt.Errorf("%w: lo=%d mid=%d hi=%d", seq.ErrInvalidRange, lo, mid, hi)
	}

	return crossingSubarray(s, lo, mid, hi), nil
}

func crossingSubarray[E comparable](s seq.Sequence[E], lo, mid, hi int) Subarray {
	leftSum := s.Key(s.At(mid))
	low := mid
	sum := leftSum
	for i := mid - 1; i >= lo; i-- {
		sum += s.Key(s.At(i))
		if sum > leftSum {
			leftSum, low = sum, i
		}
	}

	rightSum := s.Key(s.At(mid + 1))
	high := mid + 1
	sum = rightSum
	for j := mid + 2; j <= hi; j++ {
		sum += s.Key(s.At(j))
		if sum > rightSum {
			rightSum, high = sum, j
		}
	}

	return Subarray{Low: low, High: high, Sum: leftSum + rightSum}
}
