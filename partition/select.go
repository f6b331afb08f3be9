// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/katalvlaran/seqlath/internal/kernel"
	"github.com/katalvlaran/seqlath/seq"
)

// Select returns the element of rank n, the one sorting s by less would
// place at position n, by randomized quickselect. A nil less is the
// canonical key order, a nil src DefaultLFSR().
//
// Errors:
//   - seq.ErrNilSequence
//   - seq.ErrIndexOutOfRange: n outside [0, s.Len()).
//
// Complexity: O(n) expected.
func Select[E comparable](s seq.Sequence[E], n int, less seq.Less[E], src Source) (E, error) {
	var zero E
	if err := seq.CheckIndex(s, n); err != nil {
		return zero, fmt.Errorf("select rank: %w", err)
	}
	less = seq.Resolve(s, less)
	if src == nil {
		src = DefaultLFSR()
	}
	elems := s.Elements()

	return kernel.Select(elems, 0, len(elems), n, less, src), nil
}
