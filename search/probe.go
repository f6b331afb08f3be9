// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/seqlath/seq"

// BinarySearch reports whether some element of the ascending sequence s is
// canonically equal to target. A nil or empty sequence contains nothing.
//
// Complexity: O(log n).
func BinarySearch[E comparable](s seq.Sequence[E], target E) bool {
	if s == nil {
		return false
	}

	rank := seq.Ranker(s)

	return binaryRank(s, rank, 0, s.Len(), rank(target))
}

// ExponentialSearch doubles a probe index until it passes the key, then
// bisects the last bracket. It favours targets near the front.
//
// Complexity: O(log i) where i is the target position.
func ExponentialSearch[E comparable](s seq.Sequence[E], target E) bool {
	if s == nil || s.Len() == 0 {
		return false
	}
	rank := seq.Ranker(s)
	key := rank(target)
	if rank(s.At(0)) == key {
		return true
	}
	i := 1
	for i < s.Len() && rank(s.At(i)) <= key {
		i *= 2
	}

	return binaryRank(s, rank, i/2, min(i, s.Len()), key)
}

// InterpolationSearch guesses the probe position from the rank interval of
// the current window. When the interval collapses, or the guess leaves the
// window, it probes the midpoint instead, so the answer is correct for any
// ascending input and only the probe count depends on the key spread.
//
// Complexity: O(log log n) on uniform keys, O(log n) otherwise.
func InterpolationSearch[E comparable](s seq.Sequence[E], target E) bool {
	if s == nil {
		return false
	}
	rank := seq.Ranker(s)
	key := rank(target)
	lo, hi := 0, s.Len()-1
	for lo <= hi {
		kLo, kHi := rank(s.At(lo)), rank(s.At(hi))
		if key < kLo || key > kHi {
			return false
		}
		pos := interpolate(lo, hi, kLo, kHi, key)
		switch k := rank(s.At(pos)); {
		case k == key:
			return true
		case k < key:
			lo = pos + 1
		default:
			hi = pos - 1
		}
	}

	return false
}

// interpolate returns the probe position for key inside [lo, hi], with
// kLo ≤ key ≤ kHi. The arithmetic runs in float64 since rank spans may
// exceed int64 products; distinct ranks that round together fall back to mid.
func interpolate(lo, hi int, kLo, kHi, key uint64) int {
	mid := lo + (hi-lo)/2
	span := float64(kHi) - float64(kLo)
	if span <= 0 {
		return mid
	}
	frac := (float64(key) - float64(kLo)) / span
	pos := lo + int(frac*float64(hi-lo))
	if pos < lo || pos > hi {
		return mid
	}

	return pos
}

// FibonacciSearch splits the window at Fibonacci offsets, using only
// additions to compute probe positions.
//
// Complexity: O(log n).
func FibonacciSearch[E comparable](s seq.Sequence[E], target E) bool {
	if s == nil {
		return false
	}
	n := s.Len()
	rank := seq.Ranker(s)
	key := rank(target)

	fibM2, fibM1 := 0, 1
	fibM := fibM2 + fibM1
	for fibM < n {
		fibM2, fibM1 = fibM1, fibM
		fibM = fibM1 + fibM2
	}

	offset := -1
	for fibM > 1 {
		i := min(offset+fibM2, n-1)
		switch k := rank(s.At(i)); {
		case k < key:
			fibM, fibM1 = fibM1, fibM2
			fibM2 = fibM - fibM1
			offset = i
		case k > key:
			fibM, fibM1 = fibM2, fibM1-fibM2
			fibM2 = fibM - fibM1
		default:
			return true
		}
	}

	return fibM1 == 1 && offset+1 < n && rank(s.At(offset+1)) == key
}

// binaryRank bisects [lo, hi) for key.
func binaryRank[E comparable](s seq.Sequence[E], rank func(E) uint64, lo, hi int, key uint64) bool {
	for lo < hi {
		half := lo + (hi-lo-1)/2
		switch k := rank(s.At(half)); {
		case k == key:
			return true
		case k < key:
			lo = half + 1
		default:
			hi = half
		}
	}

	return false
}
