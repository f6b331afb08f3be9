// SPDX-License-Identifier: MIT

package partition_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqlath/partition"
	"github.com/katalvlaran/seqlath/seq"
)

func isEven(x int) bool { return x%2 == 0 }

// TestStablePartition_Order checks order preservation for several buffers.
func TestStablePartition_Order(t *testing.T) {
	v := seq.ValuesOf(2, 4, 7, 1, 8, 3, 6, 10, 5, 12, 9)
	want := []int{2, 4, 8, 6, 10, 12, 7, 1, 3, 5, 9}

	for _, opts := range [][]partition.Option{
		nil,
		{partition.WithBufferSize(0)},
		{partition.WithBufferSize(2)},
		{partition.WithBufferSize(100)},
	} {
		out, p, err := partition.StablePartition[int](v, 0, v.Len(), isEven, opts...)
		require.NoError(t, err)
		assert.Equal(t, 6, p)
		assert.Equal(t, want, out.Elements())
	}
}

// TestStablePartition_Edges covers all-true, all-false and empty windows.
func TestStablePartition_Edges(t *testing.T) {
	out, p, err := partition.StablePartition[int](seq.ValuesOf(2, 4, 6), 0, 3, isEven)
	require.NoError(t, err)
	assert.Equal(t, 3, p)
	assert.Equal(t, []int{2, 4, 6}, out.Elements())

	out, p, _ = partition.StablePartition[int](seq.ValuesOf(1, 3, 5), 0, 3, isEven)
	assert.Equal(t, 0, p)
	assert.Equal(t, []int{1, 3, 5}, out.Elements())

	_, p, err = partition.StablePartition[int](seq.ValuesOf(1, 3, 5), 1, 1, isEven)
	require.NoError(t, err)
	assert.Equal(t, 1, p)
}

// TestPartitionAdaptive matches StablePartition on a window whose first
// element is false.
func TestPartitionAdaptive(t *testing.T) {
	v := seq.ValuesOf(0, 1, 2, 3, 4, 5, 6, 7, 8)
	out, p, err := partition.PartitionAdaptive[int](v, 1, 9, 3, isEven)
	require.NoError(t, err)
	assert.Equal(t, 5, p)
	assert.Equal(t, []int{0, 2, 4, 6, 8, 1, 3, 5, 7}, out.Elements())

	_, _, err = partition.PartitionAdaptive[int](v, 0, 9, -1, isEven)
	assert.ErrorIs(t, err, seq.ErrInvalidRange)
}

// TestRandomizedStablePartition checks the three blocks and their order on
// a Type-Sequence, where equal sizes hold distinct types.
func TestRandomizedStablePartition(t *testing.T) {
	ts := seq.TypesOf(int32(0), int8(0), uint32(0), int64(0), float32(0), uint8(0))
	size := func(rt reflect.Type) int64 { return int64(rt.Size()) }

	for seed := int64(1); seed <= 8; seed++ {
		out, lt, gt, err := partition.RandomizedStablePartition[reflect.Type](ts, 0, ts.Len(), nil, partition.NewSource(seed))
		require.NoError(t, err)
		require.Less(t, lt, gt, "pivot block is never empty")

		pivot := size(out.At(lt))
		for i := 0; i < out.Len(); i++ {
			switch k := size(out.At(i)); {
			case i < lt:
				assert.Less(t, k, pivot)
			case i < gt:
				assert.Equal(t, pivot, k)
			default:
				assert.Greater(t, k, pivot)
			}
		}

		// relative order of equal-sized types never changes.
		idx := map[reflect.Type]int{}
		for i, e := range out.Elements() {
			idx[e] = i
		}
		assert.Less(t, idx[reflect.TypeOf(int32(0))], idx[reflect.TypeOf(uint32(0))])
		assert.Less(t, idx[reflect.TypeOf(uint32(0))], idx[reflect.TypeOf(float32(0))])
		assert.Less(t, idx[reflect.TypeOf(int8(0))], idx[reflect.TypeOf(uint8(0))])
	}
}
