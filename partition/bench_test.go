// SPDX-License-Identifier: MIT

package partition_test

import (
	"testing"

	"github.com/katalvlaran/seqlath/partition"
	"github.com/katalvlaran/seqlath/seq"
)

// scrambled returns a deterministic permutation of 0..n-1.
func scrambled(b *testing.B, n int) seq.Sequence[int] {
	s, err := partition.Shuffle[int](seq.Iota(n, 0, 1), 0, n, partition.NewSource(42))
	if err != nil {
		b.Fatalf("Shuffle failed: %v", err)
	}

	return s
}

// benchmarkStable runs StablePartition with the given options on n elements.
func benchmarkStable(b *testing.B, n int, opts ...partition.Option) {
	s := scrambled(b, n)
	even := func(x int) bool { return x%2 == 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := partition.StablePartition[int](s, 0, n, even, opts...); err != nil {
			b.Fatalf("StablePartition failed: %v", err)
		}
	}
}

// BenchmarkStablePartition_Auto uses the default half-range buffer.
func BenchmarkStablePartition_Auto(b *testing.B) { benchmarkStable(b, 4096) }

// BenchmarkStablePartition_NoBuffer forces the rotation strategy.
func BenchmarkStablePartition_NoBuffer(b *testing.B) {
	benchmarkStable(b, 4096, partition.WithBufferSize(0))
}

// BenchmarkSelect_Median selects the median of a scrambled range.
func BenchmarkSelect_Median(b *testing.B) {
	const n = 4096
	s := scrambled(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := partition.Select[int](s, n/2, nil, partition.NewSource(int64(i))); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}
