// SPDX-License-Identifier: MIT

// Package sorting is the sorting family of seqlath: seventeen algorithms
// behind one contract and a dispatcher that picks among them.
//
// 🚀 Contract
//
// Every sort returns a permutation of its input ordered under a strict
// seq.Less; nil selects the canonical key order (type size or constant
// value). The input is never modified. Sorts marked stable keep elements
// that compare equal in their input order:
//
//	Algorithm        Stable  Notes
//	selection        no      exchange form: swap whenever a later element is smaller
//	select           no      n quickselect passes (partition.Select)
//	counting         yes     by key; no comparator
//	radix            yes     LSD, base 10, counting pass per digit; no comparator
//	stooge           no      O(n^2.71), for completeness
//	bubble           no      adjacent exchanges from the back
//	shaker           no      bidirectional bubble
//	odd-even         no      alternating odd/even compare-exchange phases
//	gnome            no      single cursor, steps back after each swap
//	insert           yes     binary search for the slot, then rotate it in
//	insertion        yes     classic shifting insertion
//	quick            no      recursive, randomized Lomuto pivot
//	quick-iterative  no      same with an explicit stack
//	stable           yes     random pivot value, stable three-way split
//	merge            yes     top-down merge sort
//	strand           no      repeatedly pulls ascending strands and merges
//	heap             no      in-place max-heap
//
// SortIndex returns the stable sorting permutation itself, as positions
// into the input.
//
// ⚙️ Dispatcher
//
//	out, err := sorting.Sort[int](s, nil, sorting.WithAlgorithm(sorting.AlgoHeap))
//
// Randomized algorithms draw pivots from a partition.Source; the default is
// a fresh partition.DefaultLFSR(), so results are reproducible.
package sorting
