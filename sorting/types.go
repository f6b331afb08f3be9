// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqlath/partition"
)

var (
	// ErrUnknownAlgorithm indicates an Algorithm value or name outside Algorithms().
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrComparatorNotSupported indicates a comparator passed to a key-only sort.
	ErrComparatorNotSupported = errors.New("sorting: algorithm sorts by key and takes no comparator")

	// ErrKeyRangeTooWide indicates a counting sort whose key span exceeds MaxCountingSpan.
	ErrKeyRangeTooWide = errors.New("sorting: key range too wide for counting sort")
)

// MaxCountingSpan bounds max(key)-min(key)+1 for CountingSort.
const MaxCountingSpan = 1 << 24

// Algorithm names one member of the family.
type Algorithm int

// Members of the family, in the order Algorithms lists them.
const (
	AlgoSelection Algorithm = iota
	AlgoSelect
	AlgoCounting
	AlgoRadix
	AlgoStooge
	AlgoBubble
	AlgoShaker
	AlgoOddEven
	AlgoGnome
	AlgoInsert
	AlgoInsertion
	AlgoQuick
	AlgoQuickIterative
	AlgoStable
	AlgoMerge
	AlgoStrand
	AlgoHeap

	algoCount
)

var algoNames = [...]string{
	AlgoSelection:      "selection",
	AlgoSelect:         "select",
	AlgoCounting:       "counting",
	AlgoRadix:          "radix",
	AlgoStooge:         "stooge",
	AlgoBubble:         "bubble",
	AlgoShaker:         "shaker",
	AlgoOddEven:        "odd-even",
	AlgoGnome:          "gnome",
	AlgoInsert:         "insert",
	AlgoInsertion:      "insertion",
	AlgoQuick:          "quick",
	AlgoQuickIterative: "quick-iterative",
	AlgoStable:         "stable",
	AlgoMerge:          "merge",
	AlgoStrand:         "strand",
	AlgoHeap:           "heap",
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if a < 0 || a >= algoCount {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algoNames[a]
}

// Stable reports whether a preserves the order of equal elements.
func (a Algorithm) Stable() bool {
	switch a {
	case AlgoCounting, AlgoRadix, AlgoInsert, AlgoInsertion, AlgoStable, AlgoMerge:
		return true
	default:
		return false
	}
}

// KeyOnly reports whether a orders by seq.Sequence.Key and rejects comparators.
func (a Algorithm) KeyOnly() bool {
	return a == AlgoCounting || a == AlgoRadix
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, algoCount)
	for i := range out {
		out[i] = Algorithm(i)
	}

	return out
}

// ParseAlgorithm maps a name as printed by String back to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algoNames {
		if n == name {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

const panicNilSource = "sorting: WithSource(nil)"

// Options configures Sort.
type Options struct {
	// Algorithm selects the strategy. Default AlgoMerge.
	Algorithm Algorithm

	// Source supplies pivots to the randomized algorithms.
	Source partition.Source
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns merge sort with a fresh partition.DefaultLFSR().
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgoMerge,
		Source:    partition.DefaultLFSR(),
	}
}

// WithAlgorithm selects the algorithm. Unknown values surface from Sort as
// ErrUnknownAlgorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithSource installs the pivot source. It panics on nil.
func WithSource(src partition.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *Options) { o.Source = src }
}

// WithSeed installs partition.NewSource(seed) as the pivot source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Source = partition.NewSource(seed) }
}
