package bigmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModInverseExample(t *testing.T) {
	inv, err := ModInverse(FromInt64(7), FromInt64(11))
	require.NoError(t, err)
	assert.Equal(t, int64(8), inv.Int64())

	check, err := Mod(Mul(FromInt64(7), inv), FromInt64(11))
	require.NoError(t, err)
	assert.True(t, Eq(check, FromInt64(1)))
}

func TestModInverseNotInvertible(t *testing.T) {
	_, err := ModInverse(FromInt64(14), FromInt64(21))
	require.Error(t, err)
	kind, ok := Kind(err)
	assert.True(t, ok)
	assert.Equal(t, NotInvertible, kind)
}

func TestModInverseNegativeOperand(t *testing.T) {
	inv, err := ModInverse(FromInt64(-3), FromInt64(7))
	require.NoError(t, err)
	check, err := Mod(Mul(FromInt64(-3), inv), FromInt64(7))
	require.NoError(t, err)
	assert.True(t, Eq(check, FromInt64(1)))
}
