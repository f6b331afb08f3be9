// SPDX-License-Identifier: MIT

package setops_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqlath/seq"
	"github.com/katalvlaran/seqlath/setops"
)

// TestAlgebra_Reference covers the reference pair [1 3 5 7] / [3 4 5 8].
func TestAlgebra_Reference(t *testing.T) {
	a := seq.ValuesOf(1, 3, 5, 7)
	b := seq.ValuesOf(3, 4, 5, 8)

	cases := []struct {
		name string
		op   func(a, b seq.Sequence[int], less seq.Less[int]) (seq.Sequence[int], error)
		want []int
	}{
		{"union", setops.Union[int], []int{1, 3, 4, 5, 7, 8}},
		{"intersection", setops.Intersection[int], []int{3, 5}},
		{"difference", setops.Difference[int], []int{1, 7}},
		{"symmetric", setops.SymmetricDifference[int], []int{1, 4, 7, 8}},
		{"merge", setops.Merge[int], []int{1, 3, 3, 4, 5, 5, 7, 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(a, b, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Elements())
		})
	}
}

// TestAlgebra_Empty checks identities with an empty operand.
func TestAlgebra_Empty(t *testing.T) {
	a := seq.ValuesOf(2, 4)
	e := seq.ValuesOf[int]()

	u, _ := setops.Union[int](a, e, nil)
	assert.Equal(t, []int{2, 4}, u.Elements())
	u, _ = setops.Union[int](e, a, nil)
	assert.Equal(t, []int{2, 4}, u.Elements())

	i, _ := setops.Intersection[int](a, e, nil)
	assert.Equal(t, 0, i.Len())

	d, _ := setops.Difference[int](e, a, nil)
	assert.Equal(t, 0, d.Len())
	d, _ = setops.Difference[int](a, e, nil)
	assert.Equal(t, []int{2, 4}, d.Elements())
}

// TestUnion_PrefersLeftOnTies uses a Type-Sequence, where int32 and uint32
// tie by size, to see which copy survives.
func TestUnion_PrefersLeftOnTies(t *testing.T) {
	a := seq.TypesOf(int8(0), int32(0))
	b := seq.TypesOf(uint32(0), int64(0))

	u, err := setops.Union[reflect.Type](a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{
		reflect.TypeOf(int8(0)), reflect.TypeOf(int32(0)), reflect.TypeOf(int64(0)),
	}, u.Elements())
	assert.Equal(t, seq.ShapeTypes, u.Shape())

	m, _ := setops.Merge[reflect.Type](a, b, nil)
	assert.Equal(t, []reflect.Type{
		reflect.TypeOf(int8(0)), reflect.TypeOf(int32(0)), reflect.TypeOf(uint32(0)), reflect.TypeOf(int64(0)),
	}, m.Elements(), "merge keeps a's copy first")
}

// TestAlgebra_Multiset follows the single-pass tie rules on duplicates.
func TestAlgebra_Multiset(t *testing.T) {
	a := seq.ValuesOf(1, 1, 2, 2, 2)
	b := seq.ValuesOf(1, 2, 2, 3)

	u, _ := setops.Union[int](a, b, nil)
	assert.Equal(t, []int{1, 1, 2, 2, 2, 3}, u.Elements())
	i, _ := setops.Intersection[int](a, b, nil)
	assert.Equal(t, []int{1, 2, 2}, i.Elements())
	d, _ := setops.Difference[int](a, b, nil)
	assert.Equal(t, []int{1, 2}, d.Elements())
	s, _ := setops.SymmetricDifference[int](a, b, nil)
	assert.Equal(t, []int{1, 2, 3}, s.Elements())
}

// TestIncludes covers sub-multiset checks.
func TestIncludes(t *testing.T) {
	a := seq.ValuesOf(1, 2, 2, 5, 9)

	ok, err := setops.Includes[int](a, seq.ValuesOf(2, 5), nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = setops.Includes[int](a, seq.ValuesOf(2, 2, 2), nil)
	assert.False(t, ok)

	ok, _ = setops.Includes[int](a, seq.ValuesOf[int](), nil)
	assert.True(t, ok)

	ok, _ = setops.Includes[int](a, seq.ValuesOf(10), nil)
	assert.False(t, ok)
}

// TestWindows runs the ...In forms and their validation.
func TestWindows(t *testing.T) {
	a := seq.ValuesOf(0, 1, 3, 5, 7, 100)
	b := seq.ValuesOf(3, 4, 5, 8)

	u, err := setops.UnionIn[int](a, 1, 5, b, 0, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8}, u.Elements())

	_, err = setops.DifferenceIn[int](a, 0, 7, b, 0, 4, nil)
	assert.ErrorIs(t, err, seq.ErrIndexOutOfRange)
	_, err = setops.IntersectionIn[int](a, 0, 1, b, 3, 2, nil)
	assert.ErrorIs(t, err, seq.ErrInvalidRange)
	_, err = setops.Union[int](a, nil, nil)
	assert.ErrorIs(t, err, seq.ErrNilSequence)
}

// TestDescendingOrder runs the algebra under a flipped order.
func TestDescendingOrder(t *testing.T) {
	a := seq.ValuesOf(7, 5, 3, 1)
	b := seq.ValuesOf(8, 5, 4, 3)
	greater := seq.Flip(seq.Ordering[int](a))

	u, err := setops.Union[int](a, b, greater)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 7, 5, 4, 3, 1}, u.Elements())
}
