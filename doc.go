// SPDX-License-Identifier: MIT

// Package seqlath is a library of classic sequence algorithms written once
// against a single Sequence capability, so every algorithm runs unchanged
// over a list of types and over a list of integer constants.
//
// 🚀 What is seqlath?
//
//	A generic, allocation-honest toolkit that brings together:
//		• Representation: seq.Types and seq.Values behind seq.Sequence
//		• Editing: range, concat, erase, insert, rotate, swap, unique
//		• Queries: predicate scans, bounds, binary/exponential/
//		  interpolation/Fibonacci probes, KMP
//		• Set algebra on sorted sequences
//		• Partitioning: Lomuto, stable, adaptive, randomized; selection
//		• Sorting: seventeen algorithms behind one dispatcher
//		• Combinatorics: permutations, combinations, hypercube indices,
//		  loop counters, sliding windows
//		• Dynamic programming: edit distance, binomial coefficients,
//		  maximum subarray, DTW
//
// ✨ Why seqlath?
//
//   - Values, not mutation: every operation returns a new sequence and
//     leaves its input untouched.
//   - One vocabulary: sorting, partitioning and combinatorics share the
//     same rotate/partition/merge kernels.
//   - Reproducible randomness: pivots come from a pluggable Source, with
//     a 5-bit LFSR as the deterministic default.
//
// Packages:
//
//	seq/: Sequence, Types, Values, orderings, sentinel errors
//	edit/: structural editing
//	search/: scans, bounds, probes, pattern matching
//	setops/: union, intersection, difference, merge, includes
//	partition/: partitions, LFSR and math/rand sources, selection
//	sorting/: the sorting family and its dispatcher
//	combin/: combinatorics generators
//	dynprog/: dynamic programming
//	cmd/seqlath: command-line front end
//
// Quick example:
//
//	s := seq.ValuesOf(5, 3, 1, 4, 2)
//	out, _ := sorting.Sort[int](s, nil, sorting.WithAlgorithm(sorting.AlgoHeap))
//	fmt.Println(out) // values[1 2 3 4 5]
//
//	go get github.com/katalvlaran/seqlath
package seqlath
