// SPDX-License-Identifier: MIT

// Package search provides the traversal and query layer of seqlath.
//
// 🚀 What it covers
//
//   - Linear predicate scans: FirstOf, LastOf, FirstNotOf, LastNotOf and
//     their ...In forms over a half-open window [lo, hi).
//   - Partition points on sorted input: PartitionPoint, LowerBound,
//     UpperBound, EqualRange.
//   - Key probes on ascending input: BinarySearch, ExponentialSearch,
//     InterpolationSearch, FibonacciSearch. All four agree on the answer.
//   - Pattern matching: KMPTable and KMP with a caller-supplied equality;
//     Search, FindEnd and SearchN for the first or last contiguous run.
//   - Frequency queries: Mode, MajoritySearch, IsPalindromic.
//
// ✨ Sentinels
//
// A forward scan that finds nothing returns hi; a backward scan returns
// lo-1. Callers elsewhere in seqlath compare against exactly these values,
// so they are part of the contract:
//
//	i, _ := search.FirstOf[int](s, isOdd) // i == s.Len() when no odd element
//	j, _ := search.LastOf[int](s, isOdd)  // j == -1 when no odd element
//
// ⚙️ Orderings
//
// Bound queries take a strict seq.Less; nil means the canonical key order
// of the sequence. The key probes always use the canonical rank
// (seq.Ranker), so unsigned constants above math.MaxInt64 are found too.
package search
