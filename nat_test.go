package bigmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func natFromWords(ws ...Word) nat {
	return nat(ws).norm()
}

// natFromDecimal builds a nat magnitude from a decimal string via the
// already-tested BigInt conversion path, for constructing multi-limb
// operands without hand-encoding limbs.
func natFromDecimal(t *testing.T, s string) nat {
	t.Helper()
	x, err := FromString(s)
	if err != nil {
		t.Fatalf("natFromDecimal(%q): %v", s, err)
	}
	return x.mag
}

func TestNatAddSubRoundTrip(t *testing.T) {
	x := natFromWords(_M, _M, 1) // spans a carry out of the low two limbs
	y := natFromWords(2, 3)

	sum := nat(nil).add(x, y)
	back := nat(nil).sub(sum, y)
	assert.Equal(t, 0, back.cmp(x))

	back2 := nat(nil).sub(sum, x)
	assert.Equal(t, 0, back2.cmp(y))
}

func TestNatSubPanicsOnUnderflow(t *testing.T) {
	x := natFromWords(1)
	y := natFromWords(2)
	assert.Panics(t, func() {
		nat(nil).sub(x, y)
	})
}

func TestNatMulAgreesAcrossOperandShapes(t *testing.T) {
	// one-limb * one-limb
	a := natFromWords(123456789)
	b := natFromWords(987654321)
	got := nat(nil).mul(a, b)
	want := natFromWords(mulLoHi(123456789, 987654321))
	assert.Equal(t, 0, got.cmp(want))

	// multi-limb * one-limb exercises mulAddWW directly.
	big := natFromDecimal(t, "123456789012345678901234567890")
	one := natFromWords(7)
	viaMul := nat(nil).mul(big, one)
	viaMulAddWW := nat(nil).mulAddWW(big, 7, 0)
	assert.Equal(t, 0, viaMul.cmp(viaMulAddWW))
}

// mulLoHi returns the two-limb little-endian product of two words, used
// to build an expected value without relying on the code under test.
func mulLoHi(x, y Word) (lo, hi Word) {
	hi64, lo64 := mulWW(x, y)
	return lo64, hi64
}

func TestNatMulZeroOperand(t *testing.T) {
	x := natFromDecimal(t, "123456789012345678901234567890")
	got := nat(nil).mul(x, nat(nil))
	assert.Equal(t, 0, len(got))
}

func TestNatDivSingleLimbDivisor(t *testing.T) {
	u := natFromDecimal(t, "123456789012345678901234567890")
	v := natFromWords(97)

	q, r := nat(nil).div(nil, u, v)
	back := nat(nil).mul(q, v)
	back = nat(nil).add(back, r)
	assert.Equal(t, 0, back.cmp(u))
	assert.True(t, r.cmp(v) < 0)
}

func TestNatDivMultiLimbDivisor(t *testing.T) {
	u := natFromDecimal(t, "123456789012345678901234567890123456789012345678901234567890")
	v := natFromDecimal(t, "987654321098765432109876543210")

	q, r := nat(nil).div(nil, u, v)
	back := nat(nil).mul(q, v)
	back = nat(nil).add(back, r)
	assert.Equal(t, 0, back.cmp(u))
	assert.True(t, r.cmp(v) < 0)
}

func TestNatDivTwoLimbDivisorExact(t *testing.T) {
	// v spans exactly two limbs; u is constructed as a product of v and a
	// multi-limb q so the quotient/remainder are known exactly.
	v := natFromWords(_M-3, 5)
	q := natFromDecimal(t, "123456789012345")
	u := nat(nil).mul(q, v)

	gotQ, gotR := nat(nil).div(nil, u, v)
	assert.Equal(t, 0, gotQ.cmp(q))
	assert.Equal(t, 0, len(gotR))
}

func TestNatDivDivisorLongerThanDividend(t *testing.T) {
	u := natFromWords(5)
	v := natFromDecimal(t, "123456789012345678901234567890")

	q, r := nat(nil).div(nil, u, v)
	assert.Equal(t, 0, len(q))
	assert.Equal(t, 0, r.cmp(u))
}

func TestNatModWAgreesWithDiv(t *testing.T) {
	u := natFromDecimal(t, "123456789012345678901234567890")
	got := u.modW(97)

	_, r := nat(nil).div(nil, u, natFromWords(97))
	assert.Equal(t, Word(r.uint64()), got)
}

func TestNatSqrAgreesWithMulAcrossSizes(t *testing.T) {
	decimals := []string{
		"7",
		"123456789",
		"123456789012345678901234567890",
		// Long enough to cross KaratsubaSqrThreshold limbs (84 * 32 bits):
		// 120 repeats of an 8-digit block is ~960 decimal digits, well
		// past the ~810 digits needed for 84 limbs.
		"1" + repeatDigits("23456789", 120),
	}
	for _, s := range decimals {
		x := natFromDecimal(t, s)
		viaSqr := nat(nil).sqr(x)
		viaMul := nat(nil).mul(x, x)
		assert.Equal(t, 0, viaSqr.cmp(viaMul), s)
	}
}

func repeatDigits(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func TestNatShiftRoundTrip(t *testing.T) {
	x := natFromDecimal(t, "123456789012345678901234567890")
	for _, s := range []uint{0, 1, 31, 32, 33, 97} {
		shifted := nat(nil).shl(x, s)
		back := nat(nil).shr(shifted, s)
		assert.Equal(t, 0, back.cmp(x), "shift=%d", s)
	}
}

func TestNatShrDropsLowBits(t *testing.T) {
	x := natFromWords(0xFF, 1)
	got := nat(nil).shr(x, 4)
	// (0x1_000000FF) >> 4 == 0x1000000F
	assert.Equal(t, uint64(0x1000000F), got.uint64())
}

func TestNatBitLenAndTrailingZeros(t *testing.T) {
	x := natFromWords(0, 0x8)
	assert.Equal(t, _W+4, x.bitLen())
	assert.Equal(t, uint(_W+3), x.trailingZeroBits())
}

func TestNatCountOneBits(t *testing.T) {
	x := natFromWords(0xF, 0x3)
	assert.Equal(t, 6, x.countOneBits())
}

func TestNatSetBitAndBit(t *testing.T) {
	x := natFromWords(0)
	x = x.setBit(x, 40, 1)
	assert.Equal(t, uint(1), x.bit(40))
	assert.Equal(t, uint(0), x.bit(39))

	x = x.setBit(x, 40, 0)
	assert.Equal(t, uint(0), x.bit(40))
}

func TestNatWithBitMask(t *testing.T) {
	m := nat(nil).withBitMask(8, -1)
	assert.Equal(t, uint64(0xFF), m.uint64())

	m2 := nat(nil).withBitMask(8, 8)
	assert.Equal(t, uint64(0x1FF), m2.uint64())
}

func TestNatLogicalOps(t *testing.T) {
	x := natFromWords(0xF0, 0xFF)
	y := natFromWords(0x0F, 0x0F)

	assert.Equal(t, uint64(0x0F)<<_W|0x00, nat(nil).and(x, y).uint64())
	assert.Equal(t, uint64(0xFF)<<_W|0xFF, nat(nil).or(x, y).uint64())
	assert.Equal(t, uint64(0xF0)<<_W|0xFF, nat(nil).xor(x, y).uint64())
	assert.Equal(t, uint64(0xF0)<<_W|0xF0, nat(nil).andNot(x, y).uint64())
}

func TestNatSqrtBoundaryCases(t *testing.T) {
	for _, s := range []string{"0", "1", "2", "3", "4", "99999999999999999999999999999999999999999999999999"} {
		x := natFromDecimal(t, s)
		root := nat(nil).sqrt(x)

		rootPlus1 := nat(nil).add(root, natOne)
		rootSq := nat(nil).mul(root, root)
		rootPlus1Sq := nat(nil).mul(rootPlus1, rootPlus1)

		assert.True(t, rootSq.cmp(x) <= 0)
		assert.True(t, rootPlus1Sq.cmp(x) > 0)
	}
}

func TestNatMulRangeFactorial(t *testing.T) {
	got := nat(nil).mulRange(1, 10)
	want := natFromWords(3628800)
	assert.Equal(t, 0, got.cmp(want))

	zero := nat(nil).mulRange(0, 0)
	assert.Equal(t, 0, zero.cmp(natZero))

	empty := nat(nil).mulRange(5, 3)
	assert.Equal(t, 0, empty.cmp(natOne))
}

func TestNatBytesBERoundTrip(t *testing.T) {
	x := natFromDecimal(t, "123456789012345678901234567890")
	buf := make([]byte, len(x)*_S)
	off := x.bytesBE(buf)
	back := nat(nil).setBytesBE(buf[off:])
	assert.Equal(t, 0, back.cmp(x))
}
