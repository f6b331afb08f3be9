// SPDX-License-Identifier: MIT

package partition

import (
	"errors"

	"github.com/katalvlaran/seqlath/internal/kernel"
)

// Sentinel errors for LFSR construction.
var (
	// ErrEmptyState indicates an LFSR without state bits, or with more than
	// MaxLFSRBits of them.
	ErrEmptyState = errors.New("partition: LFSR state must hold 1..63 bits")

	// ErrBadTap indicates an empty tap set or a tap outside the state.
	ErrBadTap = errors.New("partition: LFSR tap out of range")
)

// MaxLFSRBits bounds the register width so every output fits in an int64.
const MaxLFSRBits = 63

// AutoBufferSize selects the default stable-partition buffer: half the
// range left after the leading run of true elements.
const AutoBufferSize = kernel.AutoBuffer

const (
	panicNilSource         = "partition: WithSource(nil)"
	panicNegativeBuffer    = "partition: WithBufferSize(n<0)"
	panicInvalidLFSRPrefix = "partition: WithLFSR: "
)

// Options configures the randomized and buffered operations.
type Options struct {
	// Source supplies pivot positions. Never nil after DefaultOptions.
	Source Source

	// BufferSize caps the scratch space of PartitionAdaptive.
	// AutoBufferSize picks (hi-N)/2 per call.
	BufferSize int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a fresh DefaultLFSR source and the automatic
// buffer size. Each call gets its own register, so results are reproducible.
func DefaultOptions() Options {
	return Options{
		Source:     DefaultLFSR(),
		BufferSize: AutoBufferSize,
	}
}

// Apply folds opts over DefaultOptions.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSource installs src as the pivot source. It panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *Options) { o.Source = src }
}

// WithSeed installs a math/rand stream seeded with seed (0 selects the
// fixed default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Source = NewSource(seed) }
}

// WithLFSR installs a register with the given state and taps.
// It panics when NewLFSR would reject them.
func WithLFSR(state []bool, taps []int) Option {
	l, err := NewLFSR(state, taps)
	if err != nil {
		panic(panicInvalidLFSRPrefix + err.Error())
	}

	return func(o *Options) { o.Source = l }
}

// WithBufferSize fixes the PartitionAdaptive buffer. 0 forces the pure
// rotation strategy. It panics on negative n.
func WithBufferSize(n int) Option {
	if n < 0 {
		panic(panicNegativeBuffer)
	}

	return func(o *Options) { o.BufferSize = n }
}
