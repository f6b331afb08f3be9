// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

// KMPTable builds the failure function of pattern: entry i is the length of
// the longest proper prefix of pattern[0..i] that is also its suffix.
// A nil eq means structural equality.
func KMPTable[E comparable](pattern seq.Sequence[E], eq seq.Eq[E]) ([]int, error) {
	if pattern == nil {
		return nil, seq.ErrNilSequence
	}
	eq = seq.ResolveEq(eq)

	table := make([]int, pattern.Len())
	k := 0
	for i := 1; i < pattern.Len(); i++ {
		for k > 0 && !eq(pattern.At(i), pattern.At(k)) {
			k = table[k-1]
		}
		if eq(pattern.At(i), pattern.At(k)) {
			k++
		}
		table[i] = k
	}

	return table, nil
}

// KMP returns every position at which pattern occurs in text, overlaps
// included, in ascending order. The empty pattern occurs at every position
// 0..text.Len().
//
// Complexity: O(len(text) + len(pattern)) calls to eq.
func KMP[E comparable](text, pattern seq.Sequence[E], eq seq.Eq[E]) ([]int, error) {
	if text == nil {
		return nil, fmt.Errorf("%w: text", seq.ErrNilSequence)
	}
	table, err := KMPTable(pattern, eq)
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	eq = seq.ResolveEq(eq)

	m := pattern.Len()
	var matches []int
	if m == 0 {
		for i := 0; i <= text.Len(); i++ {
			matches = append(matches, i)
		}
		return matches, nil
	}

	k := 0
	for i := 0; i < text.Len(); i++ {
		for k > 0 && !eq(text.At(i), pattern.At(k)) {
			k = table[k-1]
		}
		if eq(text.At(i), pattern.At(k)) {
			k++
		}
		if k == m {
			matches = append(matches, i-m+1)
			k = table[k-1]
		}
	}

	return matches, nil
}
