// SPDX-License-Identifier: MIT

// Package partition implements partitioning, order statistics and the
// deterministic random sources they draw pivots from.
//
// 🚀 Operations
//
//   - Partition            Lomuto scheme, pivot = s[hi-1].
//   - RandomizedPartition  Lomuto after swapping a random element into hi-1.
//   - Shuffle              Fisher–Yates over a window.
//   - StablePartition      order-preserving; skips the leading true run, then
//     runs PartitionAdaptive with a buffer of half the remaining range.
//   - PartitionAdaptive    buffered reshuffle when the range fits the buffer,
//     halve/partition/rotate otherwise.
//   - RandomizedStablePartition  stable three-way split around a random pivot.
//   - Select               quickselect: the element of rank n.
//
// ✨ Randomness
//
// Nothing here reads the clock. Every randomized call takes a Source:
//
//	DefaultLFSR()   5-bit register, state 10110, taps {2,4}
//	NewLFSR(s, t)   any register
//	NewSource(seed) math/rand stream; seed 0 selects a fixed default
//
// The same Source state always yields the same result.
//
// ⚙️ Options
//
// StablePartition and the sorting package accept functional options
// (WithSource, WithSeed, WithLFSR, WithBufferSize) over DefaultOptions().
package partition
