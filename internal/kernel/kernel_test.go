// SPDX-License-Identifier: MIT

package kernel

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intLess(a, b int) bool { return a < b }

func TestRotate(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5}
	p := Rotate(a, 1, 4, 6)
	assert.Equal(t, []int{0, 4, 5, 1, 2, 3}, a)
	assert.Equal(t, 3, p)

	assert.Equal(t, 5, Rotate(a, 2, 2, 5))
	assert.Equal(t, 3, Rotate(a, 3, 5, 5))
}

func TestLomuto_Boundary(t *testing.T) {
	le := func(e, pivot int) bool { return e <= pivot }
	for _, in := range [][]int{
		{7},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{3, 8, 1, 9, 3, 3, 0},
	} {
		a := slices.Clone(in)
		q := Lomuto(a, 0, len(a), le)
		pivot := a[q]
		for i, e := range a {
			if i < q {
				assert.LessOrEqual(t, e, pivot, "%v", in)
			} else {
				assert.GreaterOrEqual(t, e, pivot, "%v", in)
			}
		}
	}
}

func TestAdaptive_KeepsOrder(t *testing.T) {
	isSmall := func(e int) bool { return e%10 < 5 }
	in := []int{13, 7, 21, 2, 15, 34, 44, 9, 1, 60, 18, 0}
	var trues, falses []int
	for _, e := range in {
		if isSmall(e) {
			trues = append(trues, e)
		} else {
			falses = append(falses, e)
		}
	}
	want := append(slices.Clone(trues), falses...)

	for _, buf := range []int{AutoBuffer, 0, 1, 3, len(in)} {
		a := slices.Clone(in)
		p := StablePartition(a, 0, len(a), buf, isSmall)
		assert.Equal(t, len(trues), p, "buf=%d", buf)
		assert.Equal(t, want, a, "buf=%d", buf)
	}
}

func TestSplit3(t *testing.T) {
	a := []int{5, 1, 5, 9, 0, 5, 7}
	lt, gt := Split3(a, 0, len(a), 5, intLess)
	assert.Equal(t, []int{1, 0, 5, 5, 5, 9, 7}, a)
	assert.Equal(t, 2, lt)
	assert.Equal(t, 5, gt)
}

func TestSelect(t *testing.T) {
	in := []int{9, 3, 3, 7, 1, 8, 2, 2, 6}
	sorted := slices.Clone(in)
	slices.Sort(sorted)
	src := rand.New(rand.NewSource(7))
	for n := range in {
		a := slices.Clone(in)
		assert.Equal(t, sorted[n], Select(a, 0, len(a), n, intLess, src), "n=%d", n)
	}
}
