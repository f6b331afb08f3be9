// SPDX-License-Identifier: MIT

package seq_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqlath/seq"
)

// TestValues_Basics checks length, access, keys and shape of a Value-Sequence.
func TestValues_Basics(t *testing.T) {
	v := seq.ValuesOf(5, 3, 1, 4, 2)

	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 1, v.At(2))
	assert.Equal(t, int64(4), v.Key(4))
	assert.Equal(t, seq.ShapeValues, v.Shape())
	assert.Equal(t, "values[5 3 1 4 2]", v.String())
}

// TestValues_ElementsIsCopy ensures Elements never aliases the receiver.
func TestValues_ElementsIsCopy(t *testing.T) {
	v := seq.ValuesOf(1, 2, 3)
	elems := v.Elements()
	elems[0] = 99

	assert.Equal(t, 1, v.At(0), "mutating the copy must not touch the sequence")
}

// TestValuesOf_CopiesInput ensures the builder does not alias caller memory.
func TestValuesOf_CopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	v := seq.ValuesOf(src...)
	src[1] = 42

	assert.Equal(t, []int{1, 2, 3}, v.Elements())
}

// TestIotaRepeat covers the arithmetic builders.
func TestIotaRepeat(t *testing.T) {
	assert.Equal(t, []int{2, 5, 8, 11}, seq.Iota(4, 2, 3).Elements())
	assert.Equal(t, []int8{7, 7, 7}, seq.Repeat[int8](3, 7).Elements())
	assert.Equal(t, 0, seq.Iota(-1, 0, 1).Len())
}

// TestTypes_Basics checks a Type-Sequence built from sample values.
func TestTypes_Basics(t *testing.T) {
	ts := seq.TypesOf(int64(0), int8(0), "")

	require.Equal(t, 3, ts.Len())
	assert.Equal(t, reflect.TypeOf(int8(0)), ts.At(1))
	assert.Equal(t, int64(8), ts.Key(ts.At(0)))
	assert.Equal(t, seq.ShapeTypes, ts.Shape())
	assert.Equal(t, "types[int64 int8 string]", ts.String())
}

// TestTypesOf_NilPanics verifies the programmer-error policy for nil samples.
func TestTypesOf_NilPanics(t *testing.T) {
	assert.Panics(t, func() { seq.TypesOf(1, nil) })
	assert.Panics(t, func() { seq.TypeList(nil) })
}

// TestGet_Bounds verifies checked access at and beyond both ends.
func TestGet_Bounds(t *testing.T) {
	v := seq.ValuesOf(10, 20, 30)

	x, err := seq.Get[int](v, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, x)

	x, err = seq.Get[int](v, 2)
	require.NoError(t, err)
	assert.Equal(t, 30, x)

	_, err = seq.Get[int](v, 3)
	assert.ErrorIs(t, err, seq.ErrIndexOutOfRange)

	_, err = seq.Get[int](v, -1)
	assert.ErrorIs(t, err, seq.ErrIndexOutOfRange)

	_, err = seq.Get[int](nil, 0)
	assert.ErrorIs(t, err, seq.ErrNilSequence)
}

// TestFrontBack covers the end accessors and the empty-sequence error.
func TestFrontBack(t *testing.T) {
	v := seq.ValuesOf(4, 5, 6)
	f, err := seq.Front[int](v)
	require.NoError(t, err)
	b, err := seq.Back[int](v)
	require.NoError(t, err)
	assert.Equal(t, 4, f)
	assert.Equal(t, 6, b)

	_, err = seq.Front(seq.Empty[int](v))
	assert.ErrorIs(t, err, seq.ErrEmptySequence)
	_, err = seq.Back(seq.Empty[int](v))
	assert.ErrorIs(t, err, seq.ErrEmptySequence)
}

// TestCheckRange enumerates the failure classes of a half-open range.
func TestCheckRange(t *testing.T) {
	v := seq.ValuesOf(1, 2, 3)

	assert.NoError(t, seq.CheckRange[int](v, 0, 3))
	assert.NoError(t, seq.CheckRange[int](v, 2, 2))
	assert.ErrorIs(t, seq.CheckRange[int](v, 2, 1), seq.ErrInvalidRange)
	assert.ErrorIs(t, seq.CheckRange[int](v, 0, 4), seq.ErrIndexOutOfRange)
	assert.ErrorIs(t, seq.CheckRange[int](v, -1, 1), seq.ErrIndexOutOfRange)
	assert.ErrorIs(t, seq.CheckRange[int](nil, 0, 0), seq.ErrNilSequence)
}

// TestEmpty_KeepsShape ensures the base form keeps the container shape.
func TestEmpty_KeepsShape(t *testing.T) {
	ts := seq.TypesOf(1, "x")
	e := seq.Empty[reflect.Type](ts)

	assert.Equal(t, 0, e.Len())
	assert.Equal(t, seq.ShapeTypes, e.Shape())
}

// TestEqual covers structural identity including shape and nil handling.
func TestEqual(t *testing.T) {
	a := seq.ValuesOf(1, 2, 3)
	b := seq.ValuesOf(1, 2, 3)
	c := seq.ValuesOf(1, 3, 2)

	assert.True(t, seq.Equal[int](a, b))
	assert.False(t, seq.Equal[int](a, c))
	assert.False(t, seq.Equal[int](a, seq.ValuesOf(1, 2)))
	assert.True(t, seq.Equal[int](nil, nil))
	assert.False(t, seq.Equal[int](a, nil))
}

// TestShapeConversion_RoundTrip converts values → types → values.
func TestShapeConversion_RoundTrip(t *testing.T) {
	v := seq.ValuesOf(5, 0, 3, 1)

	ts, err := seq.ToTypes[int](v)
	require.NoError(t, err)
	require.Equal(t, 4, ts.Len())
	assert.Equal(t, reflect.Array, ts.At(0).Kind())
	assert.Equal(t, []int64{5, 0, 3, 1}, seq.Keys[reflect.Type](ts))

	back := seq.ToValues[int](ts)
	assert.True(t, seq.Equal[int](v, back))
}

// TestToTypes_Negative rejects constants that have no size representation.
func TestToTypes_Negative(t *testing.T) {
	_, err := seq.ToTypes[int](seq.ValuesOf(1, -2))
	assert.ErrorIs(t, err, seq.ErrNegativeValue)

	_, err = seq.ToTypes[int](nil)
	assert.ErrorIs(t, err, seq.ErrNilSequence)
}

// TestToValues_Sizes maps descriptors to their byte sizes.
func TestToValues_Sizes(t *testing.T) {
	ts := seq.TypesOf(int8(0), int16(0), int32(0), int64(0))
	assert.Equal(t, []uint{1, 2, 4, 8}, seq.ToValues[uint](ts).Elements())
}

// TestOrderings covers the canonical orders and their derivations.
func TestOrderings(t *testing.T) {
	v := seq.ValuesOf(0)
	less := seq.Ordering[int](v)
	le := seq.OrderingEqual[int](v)

	assert.True(t, less(1, 2))
	assert.False(t, less(2, 2))
	assert.True(t, le(2, 2))
	assert.True(t, seq.Flip(less)(2, 1))
	assert.True(t, seq.LessEqual(less)(2, 2))
	assert.True(t, seq.Equivalent(less)(3, 3))
	assert.False(t, seq.Equivalent(less)(3, 4))
	assert.NotNil(t, seq.Resolve[int](v, nil))
	assert.True(t, seq.ResolveEq[int](nil)(7, 7))
	assert.False(t, seq.Not(func(x int) bool { return x > 0 })(1))

	ts := seq.TypesOf(int8(0), int64(0))
	tl := seq.Ordering[reflect.Type](ts)
	assert.True(t, tl(ts.At(0), ts.At(1)), "int8 is smaller than int64")
}

// TestOrdering_NativeRange keeps the numeric order of E at both ends of
// every kind, including unsigned values whose int64 key wraps.
func TestOrdering_NativeRange(t *testing.T) {
	u := seq.ValuesOf[uint64](0)
	uless := seq.Ordering[uint64](u)
	assert.True(t, uless(7, 1<<63))
	assert.True(t, uless(1<<63, math.MaxUint64))
	assert.False(t, uless(math.MaxUint64, 1))
	assert.True(t, seq.OrderingEqual[uint64](u)(1<<63, 1<<63))

	i := seq.ValuesOf[int64](0)
	iless := seq.Ordering[int64](i)
	assert.True(t, iless(math.MinInt64, -1))
	assert.True(t, iless(-1, 0))
	assert.True(t, iless(0, math.MaxInt64))

	i8 := seq.ValuesOf[int8](0)
	assert.True(t, seq.Ordering[int8](i8)(-128, 127))

	rank := seq.Ranker[uint64](u)
	assert.Less(t, rank(math.MaxInt64), rank(1<<63))
	trank := seq.Ranker[reflect.Type](seq.TypesOf(0))
	assert.Less(t, trank(reflect.TypeOf(int8(0))), trank(reflect.TypeOf(int16(0))))
}

// TestAsValues reuses or copies into the concrete Value-Sequence.
func TestAsValues(t *testing.T) {
	v := seq.ValuesOf(1, 2)
	var s seq.Sequence[int] = v
	assert.Equal(t, v.Elements(), seq.AsValues(s).Elements())
}

// TestShape_String covers every Shape name.
func TestShape_String(t *testing.T) {
	assert.Equal(t, "types", seq.ShapeTypes.String())
	assert.Equal(t, "values", seq.ShapeValues.String())
	assert.Equal(t, "unknown", seq.Shape(7).String())
	assert.Equal(t, 0, seq.Size[int](nil))
}
