// SPDX-License-Identifier: MIT

package dynprog

import (
	"fmt"
	"math/bits"

	lru "github.com/hashicorp/golang-lru"
)

// BinomialCoeff returns C(n, k) by filling Pascal's triangle bottom-up.
// Only the first min(k, n-k)+1 columns of each row are kept, so C(n, k)
// is computable whenever the result itself fits in a uint64.
//
// C(n, k) = 0 for k > n. Negative arguments yield ErrNegativeArgument, a
// result beyond uint64 yields ErrBinomialOverflow.
//
// Complexity: O(n·min(k, n-k)) time, O(min(k, n-k)) memory.
func BinomialCoeff(n, k int) (uint64, error) {
	if n < 0 || k < 0 {
		return 0, fmt.Errorf("%w: C(%d, %d)", ErrNegativeArgument, n, k)
	}
	if k > n {
		return 0, nil
	}
	if n-k < k {
		k = n - k
	}

	row := make([]uint64, k+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		// right to left so row[j-1] still holds row i-1
		for j := min(i, k); j > 0; j-- {
			sum, carry := bits.Add64(row[j], row[j-1], 0)
			if carry != 0 {
				return 0, fmt.Errorf("%w: C(%d, %d)", ErrBinomialOverflow, n, k)
			}
			row[j] = sum
		}
	}

	return row[k], nil
}

// PascalRow returns row n of Pascal's triangle: C(n, 0) .. C(n, n).
// n must lie in [0, MaxBinomialN].
func PascalRow(n int) ([]uint64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: row %d", ErrNegativeArgument, n)
	}
	if n > MaxBinomialN {
		return nil, fmt.Errorf("%w: row %d", ErrBinomialOverflow, n)
	}

	return extendRow([]uint64{1}, 0, n), nil
}

// extendRow copies row `from` of the triangle and grows it to row `to`.
func extendRow(row []uint64, from, to int) []uint64 {
	out := make([]uint64, to+1)
	copy(out, row)
	for i := from + 1; i <= to; i++ {
		out[i] = 1
		for j := i - 1; j > 0; j-- {
			out[j] += out[j-1]
		}
	}

	return out
}

// BinomialCache memoizes rows of Pascal's triangle in an adaptive
// replacement cache. A zero BinomialCache is not usable; it must be
// initialized with NewBinomialCache. It is safe for concurrent use.
type BinomialCache struct {
	rows *lru.ARCCache
}

// NewBinomialCache returns a cache holding at most size rows.
func NewBinomialCache(size int) (*BinomialCache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCacheSize, size)
	}
	rows, err := lru.NewARC(size)
	if err != nil {
		return nil, fmt.Errorf("dynprog: %w", err)
	}

	return &BinomialCache{rows: rows}, nil
}

// Row returns a copy of row n. A miss resumes from the nearest cached row
// below n, or from row 0.
func (c *BinomialCache) Row(n int) ([]uint64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: row %d", ErrNegativeArgument, n)
	}
	if n > MaxBinomialN {
		return nil, fmt.Errorf("%w: row %d", ErrBinomialOverflow, n)
	}
	row := c.row(n)
	out := make([]uint64, len(row))
	copy(out, row)

	return out, nil
}

// Coeff returns C(n, k) from the cached row n. C(n, k) = 0 for k > n.
func (c *BinomialCache) Coeff(n, k int) (uint64, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: C(%d, %d)", ErrNegativeArgument, n, k)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: C(%d, %d)", ErrNegativeArgument, n, k)
	}
	if k > n {
		return 0, nil
	}
	if n > MaxBinomialN {
		return BinomialCoeff(n, k)
	}

	return c.row(n)[k], nil
}

// Len reports the number of cached rows.
func (c *BinomialCache) Len() int {
	return c.rows.Len()
}

// Purge drops every cached row.
func (c *BinomialCache) Purge() {
	c.rows.Purge()
}

func (c *BinomialCache) row(n int) []uint64 {
	if v, ok := c.rows.Get(n); ok {
		//nolint:forcetypeassert // Typed wrapper around untyped lib.
		return v.([]uint64)
	}

	base, from := []uint64{1}, 0
	for i := n - 1; i > 0; i-- {
		if v, ok := c.rows.Peek(i); ok {
			//nolint:forcetypeassert // Typed wrapper around untyped lib.
			base, from = v.([]uint64), i
			break
		}
	}
	row := extendRow(base, from, n)
	c.rows.Add(n, row)

	return row
}
