// SPDX-License-Identifier: MIT

// Random sources for pivot selection.
//
// Goals:
//   - Determinism: same register or seed ⇒ identical pivots on every platform.
//   - Encapsulation: no time-based sources hidden anywhere.
//
// Concurrency:
//   - Neither *LFSR nor *rand.Rand is goroutine-safe. Give each goroutine its own Source.

package partition

import (
	"fmt"
	"math/rand"
	"strings"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Source yields pseudo-random positions in [0, n). *math/rand.Rand and
// *LFSR satisfy it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic *rand.Rand seeded with seed, or with
// defaultRNGSeed when seed is 0.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// LFSR is a Fibonacci linear-feedback shift register. Each step XORs the
// tapped bits, prepends the result and drops the last bit. The output of a
// step is the register read as a binary number, first bit most significant,
// before the shift.
type LFSR struct {
	state []bool
	taps  []int
}

// NewLFSR copies state and taps into a new register.
//
// Errors:
//   - ErrEmptyState: len(state) is 0 or exceeds MaxLFSRBits.
//   - ErrBadTap: no taps, or a tap outside [0, len(state)).
func NewLFSR(state []bool, taps []int) (*LFSR, error) {
	if len(state) == 0 || len(state) > MaxLFSRBits {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyState, len(state))
	}
	if len(taps) == 0 {
		return nil, fmt.Errorf("%w: no taps", ErrBadTap)
	}
	for _, t := range taps {
		if t < 0 || t >= len(state) {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrBadTap, t, len(state))
		}
	}

	l := &LFSR{
		state: make([]bool, len(state)),
		taps:  make([]int, len(taps)),
	}
	copy(l.state, state)
	copy(l.taps, taps)

	return l, nil
}

// DefaultLFSR returns the 5-bit register 10110 with taps {2, 4}.
// Its output stream starts 22, 27, 29, 14, 23.
func DefaultLFSR() *LFSR {
	l, _ := NewLFSR([]bool{true, false, true, true, false}, []int{2, 4})

	return l
}

// Value reads the current state without stepping.
func (l *LFSR) Value() uint64 {
	var v uint64
	for _, b := range l.state {
		v <<= 1
		if b {
			v |= 1
		}
	}

	return v
}

// Next returns the current value and advances the register one step.
//
// Complexity: O(len(state)).
func (l *LFSR) Next() uint64 {
	v := l.Value()

	var bit bool
	for _, t := range l.taps {
		bit = bit != l.state[t]
	}
	copy(l.state[1:], l.state[:len(l.state)-1])
	l.state[0] = bit

	return v
}

// Intn returns Next() mod n. Like rand.Intn it panics if n <= 0.
func (l *LFSR) Intn(n int) int {
	if n <= 0 {
		panic("partition: LFSR.Intn: invalid argument")
	}

	return int(l.Next() % uint64(n))
}

// String renders the state as a bit string, e.g. "10110".
func (l *LFSR) String() string {
	var b strings.Builder
	for _, bit := range l.state {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}
