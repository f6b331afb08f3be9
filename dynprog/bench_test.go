// SPDX-License-Identifier: MIT

package dynprog_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqlath/dynprog"
	"github.com/katalvlaran/seqlath/seq"
)

// randomValues returns a deterministic Value-Sequence of n keys in [-50, 50].
func randomValues(n int) seq.Sequence[int] {
	rng := rand.New(rand.NewSource(42))
	vs := make([]int, n)
	for i := range vs {
		vs[i] = rng.Intn(101) - 50
	}

	return seq.ValuesOf(vs...)
}

// benchmarkDTW runs DTW with the given options on two 500-element series.
func benchmarkDTW(b *testing.B, opts *dynprog.Options) {
	x, y := randomValues(500), randomValues(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dynprog.DTW(x, y, opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

func BenchmarkDTW_FullMatrix(b *testing.B) {
	benchmarkDTW(b, &dynprog.Options{MemoryMode: dynprog.FullMatrix})
}

func BenchmarkDTW_RollingArray(b *testing.B) {
	benchmarkDTW(b, &dynprog.Options{MemoryMode: dynprog.RollingArray})
}

func BenchmarkDTW_Window(b *testing.B) {
	benchmarkDTW(b, &dynprog.Options{Window: 10, MemoryMode: dynprog.RollingArray})
}

func BenchmarkEditDistance(b *testing.B) {
	x, y := randomValues(400), randomValues(400)
	for _, mode := range []dynprog.MemoryMode{dynprog.FullMatrix, dynprog.RollingArray} {
		b.Run(mode.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := dynprog.EditDistance(x, y, nil, &dynprog.Options{MemoryMode: mode}); err != nil {
					b.Fatalf("EditDistance failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkMaximumSubarray(b *testing.B) {
	s := randomValues(10_000)
	b.Run("kadane", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = dynprog.Kadane(s)
		}
	})
	b.Run("divide-and-conquer", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = dynprog.FindMaximumSubarray(s)
		}
	})
}

func BenchmarkBinomialCache(b *testing.B) {
	c, err := dynprog.NewBinomialCache(dynprog.MaxBinomialN + 1)
	if err != nil {
		b.Fatalf("NewBinomialCache failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := i % (dynprog.MaxBinomialN + 1)
		if _, err := c.Coeff(n, n/2); err != nil {
			b.Fatalf("Coeff failed: %v", err)
		}
	}
}
