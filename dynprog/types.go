// SPDX-License-Identifier: MIT

package dynprog

import "errors"

// Sentinel errors.
var (
	// ErrPathNeedsFullMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsFullMatrix = errors.New("dynprog: ReturnPath requires MemoryMode=FullMatrix")

	// ErrUnknownMemoryMode indicates a MemoryMode outside the declared constants.
	ErrUnknownMemoryMode = errors.New("dynprog: unknown memory mode")

	// ErrNegativeArgument indicates a negative n or k.
	ErrNegativeArgument = errors.New("dynprog: argument must be non-negative")

	// ErrBinomialOverflow indicates a coefficient that does not fit in uint64.
	ErrBinomialOverflow = errors.New("dynprog: binomial coefficient overflows uint64")

	// ErrCacheSize indicates a non-positive cache capacity.
	ErrCacheSize = errors.New("dynprog: cache size must be positive")
)

// MaxBinomialN is the largest n for which every entry of row n of Pascal's
// triangle fits in a uint64.
const MaxBinomialN = 67

// MemoryMode controls how a DP table is stored.
//
//   - FullMatrix   keeps the entire (n+1)x(m+1) table. Memory: O(n·m).
//   - RollingArray keeps the previous and current rows. Memory: O(m).
//     No path recovery.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// RollingArray stores two rows only.
	RollingArray
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full-matrix"
	case RollingArray:
		return "rolling-array"
	default:
		return "unknown"
	}
}

// Options configures EditDistance and DTW. A nil *Options means
// DefaultOptions.
//
// Fields:
//   - Window       maximum deviation |i-j| allowed by DTW (Sakoe–Chiba band).
//     Zero or negative means no band. A band narrower than the length
//     difference of the inputs is widened to it, so a path always exists.
//   - SlopePenalty extra DTW cost of an insertion or deletion step.
//   - ReturnPath   DTW backtracks and returns the warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   table storage for both algorithms.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained full-matrix configuration
// without path recovery.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix}
}

func resolve(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != RollingArray {
		return o, ErrUnknownMemoryMode
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return o, ErrPathNeedsFullMatrix
	}

	return o, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three values.
func min3[T int | float64](a, b, c T) T {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
