// SPDX-License-Identifier: MIT

package kernel

// Intner is the random source used for pivot choice; *math/rand.Rand
// satisfies it.
type Intner interface {
	Intn(n int) int
}

// Lomuto partitions a[lo:hi) around the pivot a[hi-1]. Elements for which
// goesLeft(e, pivot) holds end up before the pivot, the rest after it.
// It returns the final pivot index. hi-lo must be positive.
func Lomuto[E any](a []E, lo, hi int, goesLeft func(e, pivot E) bool) int {
	x := a[hi-1]
	i := lo - 1
	for j := lo; j < hi-1; j++ {
		if goesLeft(a[j], x) {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[hi-1] = a[hi-1], a[i+1]

	return i + 1
}

// RandomizedLomuto moves a random element of a[lo:hi) into the pivot slot
// and runs Lomuto.
func RandomizedLomuto[E any](a []E, lo, hi int, goesLeft func(e, pivot E) bool, src Intner) int {
	r := lo + src.Intn(hi-lo)
	a[r], a[hi-1] = a[hi-1], a[r]

	return Lomuto(a, lo, hi, goesLeft)
}

// Shuffle permutes a[lo:hi) uniformly (Fisher–Yates).
func Shuffle[E any](a []E, lo, hi int, src Intner) {
	for i := hi - 1; i > lo; i-- {
		j := lo + src.Intn(i-lo+1)
		a[i], a[j] = a[j], a[i]
	}
}

// AutoBuffer asks StablePartition to size its buffer as half the range
// left after the leading run of true elements.
const AutoBuffer = -1

// StablePartition moves the elements satisfying pred to the front of
// a[lo:hi) keeping relative order on both sides, and returns the boundary.
// The leading run of true elements is skipped before any work is done.
func StablePartition[E any](a []E, lo, hi, buf int, pred func(E) bool) int {
	first := lo
	for first < hi && pred(a[first]) {
		first++
	}
	if first == hi {
		return hi
	}
	if buf < 0 {
		buf = (hi - first) / 2
	}

	return Adaptive(a, first, hi, buf, pred)
}

// Adaptive is the order-preserving partition of a[lo:hi). A range that fits
// in buf elements is reshuffled through a scratch buffer; a longer one is
// halved, both halves are partitioned, and the middle blocks are rotated
// into place.
func Adaptive[E any](a []E, lo, hi, buf int, pred func(E) bool) int {
	n := hi - lo
	switch {
	case n == 0:
		return lo
	case n == 1:
		if pred(a[lo]) {
			return hi
		}
		return lo
	case n <= buf:
		rest := make([]E, 0, n)
		w := lo
		for i := lo; i < hi; i++ {
			if pred(a[i]) {
				a[w] = a[i]
				w++
			} else {
				rest = append(rest, a[i])
			}
		}
		copy(a[w:hi], rest)
		return w
	}

	mid := lo + n/2
	left := Adaptive(a, lo, mid, buf, pred)

	rightLo := mid
	for rightLo < hi && pred(a[rightLo]) {
		rightLo++
	}
	right := rightLo
	if rightLo < hi {
		right = Adaptive(a, rightLo, hi, buf, pred)
	}

	return Rotate(a, left, mid, right)
}

// Split3 stably rearranges a[lo:hi) into (< x | == x | > x) under the
// strict order less and returns the bounds of the middle block.
func Split3[E any](a []E, lo, hi int, x E, less func(a, b E) bool) (lt, gt int) {
	lt = StablePartition(a, lo, hi, AutoBuffer, func(e E) bool { return less(e, x) })
	gt = StablePartition(a, lt, hi, AutoBuffer, func(e E) bool { return !less(x, e) })

	return lt, gt
}

// Select returns the element of rank n in a[lo:hi) under the strict order
// less, reordering a as quickselect does. n is an absolute index.
func Select[E any](a []E, lo, hi, n int, less func(a, b E) bool, src Intner) E {
	le := func(e, pivot E) bool { return !less(pivot, e) }
	for hi-lo > 1 {
		q := RandomizedLomuto(a, lo, hi, le, src)
		switch {
		case n == q:
			return a[q]
		case n < q:
			hi = q
		default:
			lo = q + 1
		}
	}

	return a[lo]
}
