package bigmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModPowExample(t *testing.T) {
	mc, err := NewModContext(FromInt64(97))
	require.NoError(t, err)

	result, err := mc.ModPow(FromInt64(5), FromInt64(117))
	require.NoError(t, err)
	assert.Equal(t, int64(44), result.Int64())
}

func TestModPowEvenModulus(t *testing.T) {
	mc, err := NewModContext(FromInt64(100))
	require.NoError(t, err)

	result, err := mc.ModPow(FromInt64(3), FromInt64(5))
	require.NoError(t, err)
	assert.Equal(t, int64(43), result.Int64()) // 3^5 = 243, 243 mod 100 = 43
}

func TestModMulAndModSqrAgreeWithDirectArithmetic(t *testing.T) {
	modulus := FromInt64(1_000_000_007)
	mc, err := NewModContext(modulus)
	require.NoError(t, err)

	a := FromInt64(123456789)
	b := FromInt64(987654321)

	got := mc.ModMul(a, b)
	want, err := Mod(Mul(a, b), modulus)
	require.NoError(t, err)
	assert.True(t, Eq(got, want))

	gotSqr := mc.ModSqr(a)
	wantSqr, err := Mod(Mul(a, a), modulus)
	require.NoError(t, err)
	assert.True(t, Eq(gotSqr, wantSqr))
}

func TestModPowNegativeExponentFails(t *testing.T) {
	mc, err := NewModContext(FromInt64(11))
	require.NoError(t, err)
	_, err = mc.ModPow(FromInt64(2), FromInt64(-1))
	require.Error(t, err)
	kind, _ := Kind(err)
	assert.Equal(t, NegativeExponent, kind)
}

func TestModPowLargeOddModulus(t *testing.T) {
	base, err := FromString("123456789012345678901234567890")
	require.NoError(t, err)
	modulus, err := FromString("340282366920938463463374607431768211455") // 2^128 - 1, odd
	require.NoError(t, err)
	exp := FromInt64(65537)

	mc, err := NewModContext(modulus)
	require.NoError(t, err)
	got, err := mc.ModPow(base, exp)
	require.NoError(t, err)

	want, err := Pow(base, 65537)
	require.NoError(t, err)
	want, err = Mod(want, modulus)
	require.NoError(t, err)
	assert.True(t, Eq(got, want))
}

func TestModSetAddSubHalf(t *testing.T) {
	mc, err := NewModContext(FromInt64(11))
	require.NoError(t, err)

	assert.Equal(t, int64(6), mc.ModSet(FromInt64(-5)).Int64())
	assert.Equal(t, int64(4), mc.ModAdd(FromInt64(7), FromInt64(8)).Int64())
	assert.Equal(t, int64(6), mc.ModSub(FromInt64(3), FromInt64(8)).Int64())

	half, err := mc.ModHalfLucas(FromInt64(4))
	require.NoError(t, err)
	assert.Equal(t, int64(2), half.Int64())
	half, err = mc.ModHalfLucas(FromInt64(5))
	require.NoError(t, err)
	assert.Equal(t, int64(8), half.Int64())

	even, err := NewModContext(FromInt64(10))
	require.NoError(t, err)
	_, err = even.ModHalfLucas(FromInt64(4))
	require.Error(t, err)
}

func TestModMulNegativeOperand(t *testing.T) {
	mc, err := NewModContext(FromInt64(11))
	require.NoError(t, err)
	assert.Equal(t, int64(10), mc.ModMul(FromInt64(-3), FromInt64(4)).Int64())

	got, err := mc.ModPow(FromInt64(-2), FromInt64(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Int64()) // (-2)^3 = -8 ≡ 3 (mod 11)
}
