package bigmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutableBigIntAccumulatorAliasing(t *testing.T) {
	acc := NewMutableBigInt()
	acc.Set(FromInt64(5))

	acc.SetAdd(acc.ToBigInt(), acc.ToBigInt()) // self += self
	assert.Equal(t, int64(10), acc.ToBigInt().Int64())

	acc.SetMul(acc.ToBigInt(), acc.ToBigInt()) // self *= self
	assert.Equal(t, int64(100), acc.ToBigInt().Int64())
}

func TestMutableBigIntAddAbsAndSquareAccumulators(t *testing.T) {
	acc := NewMutableBigInt()
	acc.SetZero()
	acc.AddAbsValueOf(FromInt64(-3))
	acc.AddAbsValueOf(FromInt64(4))
	assert.Equal(t, int64(7), acc.ToBigInt().Int64())

	sumSq := NewMutableBigInt()
	sumSq.SetZero()
	sumSq.AddSquareOf(FromInt64(3))
	sumSq.AddSquareOf(FromInt64(4))
	assert.Equal(t, int64(25), sumSq.ToBigInt().Int64())
}

func TestMutableBigIntDivModAndPow(t *testing.T) {
	acc := NewMutableBigInt()
	acc.Set(FromInt64(17))

	require.NoError(t, acc.Rem(FromInt64(5)))
	assert.Equal(t, int64(2), acc.ToBigInt().Int64())

	acc.Set(FromInt64(3))
	require.NoError(t, acc.PowAssign(4))
	assert.Equal(t, int64(81), acc.ToBigInt().Int64())

	acc.Set(FromInt64(-7))
	require.NoError(t, acc.ModAssign(FromInt64(3)))
	assert.Equal(t, int64(2), acc.ToBigInt().Int64())
}

func TestMutableBigIntPrimitiveSetters(t *testing.T) {
	z := NewMutableBigInt().SetInt64(-5)
	assert.Equal(t, -1, z.Sign())
	assert.Equal(t, int64(-5), z.ToBigInt().Int64())

	z.SetUint64(1 << 40)
	assert.Equal(t, int64(1)<<40, z.ToBigInt().Int64())

	z.AddInt64(2).MulInt64(3)
	assert.Equal(t, (int64(1)<<40+2)*3, z.ToBigInt().Int64())
	z.SubInt64(1)
	assert.Equal(t, (int64(1)<<40+2)*3-1, z.ToBigInt().Int64())
}

func TestMutableBigIntBitOps(t *testing.T) {
	z := NewMutableBigInt()
	require.NoError(t, z.SetBit(3))
	assert.Equal(t, int64(8), z.ToBigInt().Int64())
	require.NoError(t, z.ClearBit(3))
	assert.Equal(t, 0, z.Sign())

	require.NoError(t, z.ApplyBitMask(8, 8))
	assert.Equal(t, int64(0x1FF), z.ToBigInt().Int64())
	require.NoError(t, z.ApplyBitMask(4, -1))
	assert.Equal(t, int64(0xF), z.ToBigInt().Int64())

	require.Error(t, z.SetBit(-1))
	require.Error(t, z.ApplyBitMask(-1, -1))
}

func TestMutableBigIntBitCapacityHint(t *testing.T) {
	z := NewMutableBigIntWithBitCapacity(256)
	assert.Equal(t, 0, z.Sign())
	z.Set(FromInt64(1)).Shl(200)
	want := FromInt64(1).Shl(200)
	assert.True(t, Eq(z.ToBigInt(), want))
}
