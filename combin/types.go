// SPDX-License-Identifier: MIT

package combin

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqlath/seq"
)

var (
	// ErrLengthMismatch indicates an index tuple and its limits of different lengths.
	ErrLengthMismatch = errors.New("combin: index and limit lengths differ")

	// ErrIndexOutOfBounds indicates an index tuple that lies outside its space.
	ErrIndexOutOfBounds = errors.New("combin: index tuple outside its bounds")
)

// checkCount validates a prefix length k against s: 0 ≤ k ≤ s.Len().
func checkCount[E comparable](s seq.Sequence[E], k int) error {
	if s == nil {
		return seq.ErrNilSequence
	}
	if k < 0 || k > s.Len() {
		return fmt.Errorf("%w: k=%d, length %d", seq.ErrIndexOutOfRange, k, s.Len())
	}

	return nil
}
