// SPDX-License-Identifier: MIT

// Package dynprog collects the dynamic-programming algorithms of seqlath.
//
// 🚀 What it covers
//
//   - EditDistance: Levenshtein distance between two sequences under a
//     caller-supplied equality, O(m·n) bottom-up table.
//   - BinomialCoeff / PascalRow: Pascal's triangle filled bottom-up in
//     uint64, with overflow detection. BinomialCache memoizes whole rows
//     in an adaptive replacement cache.
//   - Kadane / FindMaximumSubarray / FindMaxCrossingSubarray: the maximum
//     subarray by a linear running-max scan and by divide and conquer.
//     Both report the same Sum for the same input.
//   - DTW: dynamic time warping over element keys, with a Sakoe–Chiba band,
//     a slope penalty and optional path recovery.
//
// ✨ Keys
//
// Subarray sums and DTW costs are computed on seq.Sequence.Key, so a
// Type-Sequence is measured by type sizes and a Value-Sequence by its values.
//
// ⚙️ Memory
//
// EditDistance and DTW accept *Options. MemoryMode selects between the full
// (n+1)×(m+1) table and two rolling rows; only the full table can recover a
// warping path.
//
//	opts := &dynprog.Options{Window: 2, ReturnPath: true}
//	dist, path, err := dynprog.DTW[int](a, b, opts)
package dynprog
