package bigmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalStringRoundTrip(t *testing.T) {
	cases := []string{
		"0", "1", "-1", "1000000000", "123456789012345678901234567890",
		"-999999999999999999999999999999999",
	}
	for _, s := range cases {
		x, err := FromString(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, x.String(), s)
	}
}

func TestHexStringParsingAndUnderscores(t *testing.T) {
	x, err := FromString("0x1_0000")
	require.NoError(t, err)
	assert.Equal(t, int64(0x10000), x.Int64())

	y, err := FromString("-0xFF")
	require.NoError(t, err)
	assert.Equal(t, int64(-255), y.Int64())
}

func TestBadFormatRejected(t *testing.T) {
	for _, s := range []string{"", "+", "-", "12x3", "0xZZ"} {
		_, err := FromString(s)
		require.Error(t, err, s)
		kind, _ := Kind(err)
		assert.Equal(t, BadFormat, kind, s)
	}
}

func TestTwosComplementBytesRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -128, 128, -129, 1000000, -1000000} {
		x := FromInt64(v)
		b, err := x.TwosComplementBytesBE(8)
		require.NoError(t, err, v)
		back := FromTwosComplementBytesBE(b)
		assert.Equal(t, v, back.Int64(), v)
	}
}

func TestTwosComplementBytesBoundary(t *testing.T) {
	b, err := FromInt64(127).TwosComplementBytesBE(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7f}, b)

	b, err = FromInt64(-128).TwosComplementBytesBE(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, b)

	_, err = FromInt64(128).TwosComplementBytesBE(1)
	require.Error(t, err)
}

func TestMagnitudeBytesRoundTrip(t *testing.T) {
	x, err := FromString("123456789012345678901234567890")
	require.NoError(t, err)
	b := x.MagnitudeBytesBE()
	back := FromMagnitudeBytesBE(false, b)
	assert.True(t, Eq(back, x))
}

func TestSeparatorPlacementRules(t *testing.T) {
	x, err := FromString("1_234_567")
	require.NoError(t, err)
	assert.Equal(t, int64(1234567), x.Int64())

	y, err := FromString("0x_FF")
	require.NoError(t, err)
	assert.Equal(t, int64(255), y.Int64())

	for _, s := range []string{"_1", "1_", "1__2", "0x1_", "-_1", "0x__F"} {
		_, err := FromString(s)
		require.Error(t, err, s)
		kind, _ := Kind(err)
		assert.Equal(t, BadFormat, kind, s)
	}
}

func TestToHexStringFormats(t *testing.T) {
	x := FromInt64(255)
	assert.Equal(t, "0xff", x.ToHexString(DefaultHexFormat))
	assert.Equal(t, "0x00FF", x.ToHexString(HexFormat{Upper: true, Prefix: "0x", MinDigits: 4}))
	assert.Equal(t, "#ff", x.ToHexString(HexFormat{Prefix: "#"}))
	assert.Equal(t, "[ff]", x.ToHexString(HexFormat{Prefix: "[", Suffix: "]"}))
	assert.Equal(t, "ff", x.ToHexString(HexFormat{}))

	neg := FromInt64(-255)
	assert.Equal(t, "-0x00ff", neg.ToHexString(HexFormat{Prefix: "0x", MinDigits: 4}))
}

func TestHexStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "123456789012345678901234567890"} {
		x, err := FromString(s)
		require.NoError(t, err)
		back, err := FromString(x.ToHexString(DefaultHexFormat))
		require.NoError(t, err)
		assert.True(t, Eq(back, x), s)
	}
}

func TestLittleEndianByteCodecs(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -128, 1000000, -1000000} {
		x := FromInt64(v)
		b, err := x.TwosComplementBytesLE(8)
		require.NoError(t, err, v)
		back := FromTwosComplementBytesLE(b)
		assert.Equal(t, v, back.Int64(), v)
	}

	x, err := FromString("123456789012345678901234567890")
	require.NoError(t, err)
	le := x.MagnitudeBytesLE()
	be := x.MagnitudeBytesBE()
	require.Equal(t, len(be), len(le))
	assert.Equal(t, be[0], le[len(le)-1])
	assert.True(t, Eq(FromMagnitudeBytesLE(false, le), x))
}

func TestLittleEndianLimbsRoundTrip(t *testing.T) {
	x, err := FromString("-123456789012345678901234567890")
	require.NoError(t, err)
	neg, limbs := x.LittleEndianLimbs()
	assert.True(t, neg)
	assert.True(t, Eq(FromLittleEndianLimbs(neg, limbs), x))
}
