// SPDX-License-Identifier: MIT

package sorting_test

import (
	"testing"

	"github.com/katalvlaran/seqlath/partition"
	"github.com/katalvlaran/seqlath/seq"
	"github.com/katalvlaran/seqlath/sorting"
)

// benchmarkSort runs one algorithm on a deterministic permutation of 0..n-1.
func benchmarkSort(b *testing.B, a sorting.Algorithm, n int) {
	s, err := partition.Shuffle[int](seq.Iota(n, 0, 1), 0, n, partition.NewSource(7))
	if err != nil {
		b.Fatalf("Shuffle failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sorting.Sort[int](s, nil, sorting.WithAlgorithm(a)); err != nil {
			b.Fatalf("%s failed: %v", a, err)
		}
	}
}

// BenchmarkSort_NLogN covers the O(n log n) members on 10k elements.
func BenchmarkSort_NLogN(b *testing.B) {
	for _, a := range []sorting.Algorithm{
		sorting.AlgoMerge, sorting.AlgoHeap, sorting.AlgoQuick,
		sorting.AlgoQuickIterative, sorting.AlgoStable, sorting.AlgoCounting, sorting.AlgoRadix,
	} {
		b.Run(a.String(), func(b *testing.B) { benchmarkSort(b, a, 10_000) })
	}
}

// BenchmarkSort_Quadratic covers the O(n²) members on 500 elements.
func BenchmarkSort_Quadratic(b *testing.B) {
	for _, a := range []sorting.Algorithm{
		sorting.AlgoSelection, sorting.AlgoBubble, sorting.AlgoShaker, sorting.AlgoOddEven,
		sorting.AlgoGnome, sorting.AlgoInsert, sorting.AlgoInsertion, sorting.AlgoSelect, sorting.AlgoStrand,
	} {
		b.Run(a.String(), func(b *testing.B) { benchmarkSort(b, a, 500) })
	}
}
