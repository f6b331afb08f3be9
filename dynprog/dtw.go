// SPDX-License-Identifier: MIT

package dynprog

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seqlath/seq"
)

// DTW computes the dynamic time warping distance between the keys of a and b.
// Returns (distance, path, error); path is nil unless opts.ReturnPath.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = a.Len(), m = b.Len(). Allocate (n+1)x(m+1) table D.
//  2. D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//  3. For every cell inside the band |i-j| ≤ Window:
//     cost    = |key(a[i-1]) - key(b[j-1])|
//     D[i][j] = cost + min(D[i-1][j]+SlopePenalty, D[i][j-1]+SlopePenalty, D[i-1][j-1])
//  4. distance = D[n][m].
//  5. With ReturnPath, backtrack from (n,m) to (1,1) through the cheapest
//     predecessor, preferring the diagonal on ties.
//
// Path entries are 0-based index pairs (i into a, j into b), first to last.
//
// Errors:
//   - seq.ErrEmptySequence  if either input is empty.
//   - ErrPathNeedsFullMatrix if ReturnPath is set with RollingArray.
//
// Complexity: O(n·m) time; O(n·m) or O(m) memory.
func DTW[E comparable](a, b seq.Sequence[E], opts *Options) (distance float64, path [][2]int, err error) {
	if a == nil || b == nil {
		return 0, nil, seq.ErrNilSequence
	}
	n, m := a.Len(), b.Len()
	if n == 0 || m == 0 {
		return 0, nil, fmt.Errorf("%w: dtw inputs must be non-empty", seq.ErrEmptySequence)
	}
	o, err := resolve(opts)
	if err != nil {
		return 0, nil, err
	}

	window := math.MaxInt32
	if o.Window > 0 {
		window = max(o.Window, abs(n-m))
	}
	penalty := o.SlopePenalty
	xs, ys := keys(a), keys(b)
	inf := math.Inf(1)

	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	if o.MemoryMode == RollingArray {
		var release func()
		dp[0], dp[1], release = warpRows.borrow(m + 1)
		defer release()
	} else {
		for i := range dp {
			dp[i] = make([]float64, m+1)
		}
	}
	dp[0][0] = 0
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	row := func(i int) int {
		if o.MemoryMode == FullMatrix {
			return i
		}
		return i % 2
	}

	for i := 1; i <= n; i++ {
		curr, prev := dp[row(i)], dp[row(i-1)]
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf
				continue
			}
			cost := math.Abs(xs[i-1] - ys[j-1])
			curr[j] = cost + min3(prev[j]+penalty, curr[j-1]+penalty, prev[j-1])
		}
	}
	distance = dp[row(n)][m]

	if o.ReturnPath {
		path = backtrack(dp, n, m, penalty)
	}

	return distance, path, nil
}

func keys[E comparable](s seq.Sequence[E]) []float64 {
	out := make([]float64, s.Len())
	for i := range out {
		out[i] = float64(s.Key(s.At(i)))
	}

	return out
}

func backtrack(dp [][]float64, n, m int, penalty float64) [][2]int {
	var path [][2]int
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, [2]int{i - 1, j - 1})
		diag := dp[i-1][j-1]
		up := dp[i-1][j] + penalty
		left := dp[i][j-1] + penalty
		switch {
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
	}
	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
