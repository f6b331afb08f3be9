// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/seqlath/partition"
	"github.com/katalvlaran/seqlath/seq"
)

// Sort orders s with the algorithm chosen by opts (default AlgoMerge).
//
// Errors:
//   - seq.ErrNilSequence
//   - ErrUnknownAlgorithm: Options.Algorithm is not in Algorithms().
//   - ErrComparatorNotSupported: less != nil for a key-only algorithm.
//   - ErrKeyRangeTooWide: from AlgoCounting.
func Sort[E comparable](s seq.Sequence[E], less seq.Less[E], opts ...Option) (seq.Sequence[E], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if s == nil {
		return nil, seq.ErrNilSequence
	}
	if o.Algorithm < 0 || o.Algorithm >= algoCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(o.Algorithm))
	}
	if o.Algorithm.KeyOnly() {
		if less != nil {
			return nil, fmt.Errorf("%w: %s", ErrComparatorNotSupported, o.Algorithm)
		}
		if o.Algorithm == AlgoCounting {
			return CountingSort(s)
		}
		return RadixSort(s)
	}

	src := o.Source
	switch o.Algorithm {
	case AlgoSelection:
		return SelectionSort(s, less)
	case AlgoSelect:
		return SelectSort(s, less, src)
	case AlgoStooge:
		return StoogeSort(s, less)
	case AlgoBubble:
		return BubbleSort(s, less)
	case AlgoShaker:
		return ShakerSort(s, less)
	case AlgoOddEven:
		return OddEvenSort(s, less)
	case AlgoGnome:
		return GnomeSort(s, less)
	case AlgoInsert:
		return InsertSort(s, less)
	case AlgoInsertion:
		return InsertionSort(s, less)
	case AlgoQuick:
		return QuickSort(s, less, src)
	case AlgoQuickIterative:
		return QuickSortIterative(s, less, src)
	case AlgoStable:
		return StableSort(s, less, src)
	case AlgoStrand:
		return StrandSort(s, less)
	case AlgoHeap:
		return HeapSort(s, less)
	default:
		return MergeSort(s, less)
	}
}

// IsSorted reports whether no element of s is less than its predecessor.
// A nil sequence is not sorted.
func IsSorted[E comparable](s seq.Sequence[E], less seq.Less[E]) bool {
	if s == nil {
		return false
	}
	less = seq.Resolve(s, less)
	for i := 1; i < s.Len(); i++ {
		if less(s.At(i), s.At(i-1)) {
			return false
		}
	}

	return true
}

// apply clones s, runs fn over the copy with the resolved order and
// rebuilds the result.
func apply[E comparable](s seq.Sequence[E], less seq.Less[E], fn func(a []E, less seq.Less[E])) (seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}
	elems := s.Elements()
	fn(elems, seq.Resolve(s, less))

	return s.Rebuild(elems), nil
}

// source falls back to a fresh default register.
func source(src partition.Source) partition.Source {
	if src == nil {
		return partition.DefaultLFSR()
	}

	return src
}
