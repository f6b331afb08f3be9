// SPDX-License-Identifier: MIT

package dynprog

import (
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

// EditDistance returns the Levenshtein distance between a and b: the least
// number of single-element insertions, deletions and substitutions that turn
// a into b. A nil eq means structural equality.
//
// Table:
//
//	D[i][0] = i, D[0][j] = j
//	D[i][j] = D[i-1][j-1]                                 if eq(a[i-1], b[j-1])
//	D[i][j] = 1 + min(D[i-1][j], D[i][j-1], D[i-1][j-1])  otherwise
//
// Only opts.MemoryMode is consulted; RollingArray keeps two rows of length
// len(b)+1.
//
// Complexity: O(len(a)·len(b)) time.
func EditDistance[E comparable](a, b seq.Sequence[E], eq seq.Eq[E], opts *Options) (int, error) {
	if a == nil {
		return 0, fmt.Errorf("%w: a", seq.ErrNilSequence)
	}
	if b == nil {
		return 0, fmt.Errorf("%w: b", seq.ErrNilSequence)
	}
	o := DefaultOptions()
	if opts != nil {
		o.MemoryMode = opts.MemoryMode
	}
	if _, err := resolve(&o); err != nil {
		return 0, err
	}
	eq = seq.ResolveEq(eq)

	n, m := a.Len(), b.Len()
	if o.MemoryMode == RollingArray {
		return editRolling(a, b, eq, n, m), nil
	}

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if eq(a.At(i-1), b.At(j-1)) {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			dp[i][j] = 1 + min3(dp[i-1][j], dp[i][j-1], dp[i-1][j-1])
		}
	}

	return dp[n][m], nil
}

func editRolling[E comparable](a, b seq.Sequence[E], eq seq.Eq[E], n, m int) int {
	prev, curr, release := editRows.borrow(m + 1)
	defer release()
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			if eq(a.At(i-1), b.At(j-1)) {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min3(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
