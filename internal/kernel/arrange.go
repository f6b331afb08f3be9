// SPDX-License-Identifier: MIT

package kernel

// Reverse flips a[lo:hi) in place.
func Reverse[E any](a []E, lo, hi int) {
	for hi--; lo < hi; lo, hi = lo+1, hi-1 {
		a[lo], a[hi] = a[hi], a[lo]
	}
}

// Rotate swaps the adjacent blocks a[i:j) and a[j:k) in place and returns
// i + (k - j), where the block that started at i now begins.
func Rotate[E any](a []E, i, j, k int) int {
	if i == j {
		return k
	}
	if j == k {
		return i
	}
	Reverse(a, i, j)
	Reverse(a, j, k)
	Reverse(a, i, k)

	return i + (k - j)
}

// UpperBound returns the first p in [lo, hi) with less(x, a[p]), or hi.
func UpperBound[E any](a []E, lo, hi int, x E, less func(a, b E) bool) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		if less(x, a[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}
