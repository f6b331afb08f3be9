// SPDX-License-Identifier: MIT

package combin

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/seqlath/edit"
	"github.com/katalvlaran/seqlath/seq"
)

// NextHypercube advances idx as an odometer over [lo, hi)^n: the last digit
// moves fastest and wraps to lo with a carry. The maximal tuple wraps to
// all-lo with false. An empty cube (lo == hi) returns idx and false.
//
// Errors:
//   - seq.ErrNilSequence
//   - seq.ErrInvalidRange: hi < lo.
//   - ErrIndexOutOfBounds: some digit outside [lo, hi).
func NextHypercube[E constraints.Integer](idx seq.Sequence[E], lo, hi E) (seq.Sequence[E], bool, error) {
	elems, err := cubeDigits(idx, lo, hi)
	if err != nil || lo == hi {
		return idx, false, err
	}
	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i]+1 != hi {
			elems[i]++
			return idx.Rebuild(elems), true, nil
		}
		elems[i] = lo
	}

	return idx.Rebuild(elems), false, nil
}

// PrevHypercube steps the odometer back; all-lo wraps to all-(hi-1) with false.
func PrevHypercube[E constraints.Integer](idx seq.Sequence[E], lo, hi E) (seq.Sequence[E], bool, error) {
	elems, err := cubeDigits(idx, lo, hi)
	if err != nil || lo == hi {
		return idx, false, err
	}
	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i] != lo {
			elems[i]--
			return idx.Rebuild(elems), true, nil
		}
		elems[i] = hi - 1
	}

	return idx.Rebuild(elems), false, nil
}

// HypercubeList enumerates [lo, hi)^n in ascending odometer order.
func HypercubeList[E constraints.Integer](n int, lo, hi E) ([]seq.Sequence[E], error) {
	if n < 0 || hi < lo {
		return nil, fmt.Errorf("%w: dimension %d, bounds [%d, %d)", seq.ErrInvalidRange, n, lo, hi)
	}
	if lo == hi {
		return nil, nil
	}
	var (
		out []seq.Sequence[E]
		cur seq.Sequence[E] = seq.Repeat(n, lo)
		ok  = true
		err error
	)
	for ok {
		out = append(out, cur)
		if cur, ok, err = NextHypercube(cur, lo, hi); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func cubeDigits[E constraints.Integer](idx seq.Sequence[E], lo, hi E) ([]E, error) {
	if idx == nil {
		return nil, seq.ErrNilSequence
	}
	if hi < lo {
		return nil, fmt.Errorf("%w: bounds [%d, %d)", seq.ErrInvalidRange, lo, hi)
	}
	elems := idx.Elements()
	for i, d := range elems {
		if lo != hi && (d < lo || d >= hi) {
			return nil, fmt.Errorf("%w: digit %d is %d, bounds [%d, %d)", ErrIndexOutOfBounds, i, d, lo, hi)
		}
	}

	return elems, nil
}

// NextLoopIndices advances a mixed-radix counter: digit i runs over
// [0, limits[i]), the last digit fastest, as nested for-loops would. The
// maximal tuple wraps to all zeros with false.
//
// Errors:
//   - seq.ErrNilSequence
//   - ErrLengthMismatch: len(idx) != len(limits).
//   - ErrIndexOutOfBounds: some digit outside [0, limits[i]).
func NextLoopIndices[E constraints.Integer](idx, limits seq.Sequence[E]) (seq.Sequence[E], bool, error) {
	if idx == nil || limits == nil {
		return nil, false, seq.ErrNilSequence
	}
	if idx.Len() != limits.Len() {
		return nil, false, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, idx.Len(), limits.Len())
	}
	elems := idx.Elements()
	for i, d := range elems {
		if d < 0 || d >= limits.At(i) {
			return nil, false, fmt.Errorf("%w: digit %d is %d, limit %d", ErrIndexOutOfBounds, i, d, limits.At(i))
		}
	}
	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i]+1 < limits.At(i) {
			elems[i]++
			return idx.Rebuild(elems), true, nil
		}
		elems[i] = 0
	}

	return idx.Rebuild(elems), false, nil
}

// LoopIndicesList enumerates every tuple of the counter. A non-positive
// limit makes the space empty.
func LoopIndicesList[E constraints.Integer](limits seq.Sequence[E]) ([]seq.Sequence[E], error) {
	if limits == nil {
		return nil, seq.ErrNilSequence
	}
	for i := 0; i < limits.Len(); i++ {
		if limits.At(i) <= 0 {
			return nil, nil
		}
	}
	var (
		out []seq.Sequence[E]
		cur = limits.Rebuild(make([]E, limits.Len()))
		ok  = true
		err error
	)
	for ok {
		out = append(out, cur)
		if cur, ok, err = NextLoopIndices(cur, limits); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// NextSlide shifts a run of consecutive indices one step right inside
// [lo, hi). A run already touching hi is returned unchanged with false.
//
// Errors:
//   - seq.ErrNilSequence
//   - ErrIndexOutOfBounds: idx is not a consecutive run inside [lo, hi).
func NextSlide[E constraints.Integer](idx seq.Sequence[E], lo, hi E) (seq.Sequence[E], bool, error) {
	elems, err := slideRun(idx, lo, hi)
	if err != nil {
		return nil, false, err
	}
	if len(elems) == 0 || elems[len(elems)-1]+1 == hi {
		return idx.Rebuild(elems), false, nil
	}
	for i := range elems {
		elems[i]++
	}

	return idx.Rebuild(elems), true, nil
}

// PrevSlide shifts the run one step left; a run starting at lo is returned
// unchanged with false.
func PrevSlide[E constraints.Integer](idx seq.Sequence[E], lo, hi E) (seq.Sequence[E], bool, error) {
	elems, err := slideRun(idx, lo, hi)
	if err != nil {
		return nil, false, err
	}
	if len(elems) == 0 || elems[0] == lo {
		return idx.Rebuild(elems), false, nil
	}
	for i := range elems {
		elems[i]--
	}

	return idx.Rebuild(elems), true, nil
}

func slideRun[E constraints.Integer](idx seq.Sequence[E], lo, hi E) ([]E, error) {
	if idx == nil {
		return nil, seq.ErrNilSequence
	}
	elems := idx.Elements()
	for i, d := range elems {
		if d < lo || d >= hi || (i > 0 && d != elems[i-1]+1) {
			return nil, fmt.Errorf("%w: %v is not a run inside [%d, %d)", ErrIndexOutOfBounds, elems, lo, hi)
		}
	}

	return elems, nil
}

// SlideList returns every window of n consecutive elements of s, left to
// right. A window longer than s yields no windows.
//
// Errors:
//   - seq.ErrNilSequence
//   - seq.ErrInvalidRange: n < 1.
func SlideList[E comparable](s seq.Sequence[E], n int) ([]seq.Sequence[E], error) {
	if s == nil {
		return nil, seq.ErrNilSequence
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: window length %d", seq.ErrInvalidRange, n)
	}
	if n > s.Len() {
		return nil, nil
	}

	var (
		out []seq.Sequence[E]
		win seq.Sequence[int] = seq.Iota(n, 0, 1)
		ok  = true
		err error
	)
	for ok {
		first := win.At(0)
		w, rerr := edit.Range(s, first, first+n)
		if rerr != nil {
			return nil, rerr
		}
		out = append(out, w)
		if win, ok, err = NextSlide(win, 0, s.Len()); err != nil {
			return nil, err
		}
	}

	return out, nil
}
