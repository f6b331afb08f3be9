// SPDX-License-Identifier: MIT

// Package combin generates permutations, combinations and index tuples one
// step at a time.
//
// Every Next/Prev function is a pure successor: it returns the following
// arrangement and true, or, when the input was the last one, wraps to the
// first arrangement and returns false. Looping until false therefore visits
// each arrangement exactly once:
//
//	p := seq.Sequence[int](seq.ValuesOf(0, 1, 2))
//	for ok := true; ok; {
//		fmt.Println(p)
//		p, ok, _ = combin.NextPermutation(p, nil)
//	}
//
// The List helpers (Permutations, Combinations, HypercubeList,
// LoopIndicesList, SlideList, CombinationCountsList) run that loop and collect the results.
//
// Index generators work on integer Value-Sequences:
//
//	NextHypercube(idx, lo, hi)  odometer over [lo, hi)^n
//	NextLoopIndices(idx, lim)   mixed-radix counter, digit i in [0, lim[i])
//	NextSlide(idx, lo, hi)      a run of consecutive indices sliding by one in [lo, hi)
//	NextCombinationCounts(c)    multiset of size sum(c) as per-kind counts, lexicographic
package combin
