// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/seqlath/seq"

// HeapSort builds a max-heap in place and repeatedly moves its root behind
// the shrinking heap.
//
// Complexity: O(n log n), O(1) extra space.
func HeapSort[E comparable](s seq.Sequence[E], less seq.Less[E]) (seq.Sequence[E], error) {
	return apply(s, less, func(a []E, less seq.Less[E]) {
		n := len(a)
		for i := n/2 - 1; i >= 0; i-- {
			maxHeapify(a, i, n, less)
		}
		for end := n - 1; end > 0; end-- {
			a[0], a[end] = a[end], a[0]
			maxHeapify(a, 0, end, less)
		}
	})
}

// maxHeapify sifts a[i] down inside the heap a[:n).
func maxHeapify[E comparable](a []E, i, n int, less seq.Less[E]) {
	for {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < n && less(a[largest], a[l]) {
			largest = l
		}
		if r < n && less(a[largest], a[r]) {
			largest = r
		}
		if largest == i {
			return
		}
		a[i], a[largest] = a[largest], a[i]
		i = largest
	}
}
