package bigmath

import "math"

// Sign distinguishes the two sign variants of a BigInt or MutableBigInt.
// It is a tagged enum rather than a bare bool so the zero value has an
// obvious, named meaning and call sites read as intent ("NonNegative")
// rather than "false"; the sign is never encoded into the magnitude.
type Sign uint8

const (
	NonNegative Sign = iota
	Negative
)

// BigInt is an immutable arbitrary-precision signed integer. Its zero
// value is the canonical zero: NonNegative sign, empty
// magnitude. No method ever mutates the receiver; every operation
// returns a new value.
type BigInt struct {
	sign Sign
	mag  nat
}

// zeroBigInt is safe to share: BigInt is immutable and canonical zero
// never has a negative sign.
var zeroBigInt = &BigInt{}

func newBigInt(sign Sign, mag nat) *BigInt {
	mag = mag.norm()
	if len(mag) == 0 {
		sign = NonNegative
	}
	return &BigInt{sign: sign, mag: mag}
}

// --- Constructors ---

// FromInt64 constructs a BigInt from a signed 64-bit integer.
func FromInt64(x int64) *BigInt {
	sign := NonNegative
	ux := uint64(x)
	if x < 0 {
		sign = Negative
		ux = uint64(-x)
	}
	return newBigInt(sign, nat(nil).setUint64(ux))
}

// FromUint64 constructs a BigInt from an unsigned 64-bit integer.
func FromUint64(x uint64) *BigInt {
	return newBigInt(NonNegative, nat(nil).setUint64(x))
}

// FromInt32 constructs a BigInt from a signed 32-bit integer.
func FromInt32(x int32) *BigInt { return FromInt64(int64(x)) }

// FromUint32 constructs a BigInt from an unsigned 32-bit integer.
func FromUint32(x uint32) *BigInt { return FromUint64(uint64(x)) }

// FromFloat64 constructs a BigInt by truncating a float64 toward zero.
// It fails with BadFormat for NaN or infinite inputs.
func FromFloat64(x float64) (*BigInt, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, newError("FromFloat64", BadFormat, "NaN or infinite input")
	}
	defaultStats.Inc("construct.from_float64")
	sign := NonNegative
	if x < 0 {
		sign = Negative
		x = -x
	}
	x = math.Trunc(x)
	mag := nat(nil)
	for x >= 1 {
		word := math.Mod(x, twoPow32)
		mag = append(mag, Word(word))
		x = math.Trunc(x / twoPow32)
	}
	return newBigInt(sign, mag), nil
}

const twoPow32 = 4294967296.0

// FromLittleEndianLimbs constructs a BigInt directly from a little-endian
// limb array and an explicit sign, normalizing on intake.
func FromLittleEndianLimbs(negative bool, limbs []uint32) *BigInt {
	defaultStats.Inc("construct.from_limbs")
	mag := make(nat, len(limbs))
	copy(mag, limbs)
	sign := NonNegative
	if negative {
		sign = Negative
	}
	return newBigInt(sign, mag)
}

// FromLittleEndianLimbsRange is FromLittleEndianLimbs over the
// sub-slice limbs[offset : offset+length].
func FromLittleEndianLimbsRange(negative bool, limbs []uint32, offset, length int) (*BigInt, error) {
	if offset < 0 || length < 0 || offset+length > len(limbs) {
		return nil, newError("FromLittleEndianLimbsRange", OutOfDomain, "offset/length outside the limb array")
	}
	return FromLittleEndianLimbs(negative, limbs[offset:offset+length]), nil
}

// RandomBits returns a uniformly distributed value in [0, 1<<bits): a
// random value of at most the given bit length.
func RandomBits(src RandSource, bits int) (*BigInt, error) {
	if bits < 0 {
		return nil, newError("RandomBits", OutOfDomain, "negative bit length")
	}
	defaultStats.Inc("construct.random")
	return newBigInt(NonNegative, randomMag(src, bits)), nil
}

// RandomExactBits returns a uniformly distributed value of exactly the
// given bit length: bit bits-1 is always set. bits must be positive.
func RandomExactBits(src RandSource, bits int) (*BigInt, error) {
	if bits <= 0 {
		return nil, newError("RandomExactBits", OutOfDomain, "bit length must be positive")
	}
	defaultStats.Inc("construct.random")
	mag := randomMag(src, bits)
	mag = mag.setBit(mag, uint(bits-1), 1)
	return newBigInt(NonNegative, mag), nil
}

// RandomBelow returns a uniformly distributed value in [0, max), by
// rejection sampling at max's bit length. max must be positive.
func RandomBelow(src RandSource, max *BigInt) (*BigInt, error) {
	if max.sign == Negative || len(max.mag) == 0 {
		return nil, newError("RandomBelow", OutOfDomain, "bound must be positive")
	}
	defaultStats.Inc("construct.random")
	return newBigInt(NonNegative, nat(nil).random(src, max.mag, max.mag.bitLen())), nil
}

// randomMag fills a magnitude with bits random bits, no rejection
// needed since the range is a power of two.
func randomMag(src RandSource, bits int) nat {
	limbs := (bits + _W - 1) / _W
	z := make(nat, limbs)
	for i := range z {
		z[i] = src.Uint32()
	}
	if topBits := uint(bits % _W); topBits != 0 {
		z[limbs-1] &= Word(1)<<topBits - 1
	}
	return z.norm()
}

// WithSetBit returns a BigInt equal to zero with bit i set.
func WithSetBit(i int) (*BigInt, error) {
	if i < 0 {
		return nil, newError("WithSetBit", OutOfDomain, "negative bit index")
	}
	return newBigInt(NonNegative, nat(nil).setBit(nil, uint(i), 1)), nil
}

// WithBitMask returns a BigInt with its low `width` bits set, and bit
// `index` additionally set when index >= 0.
func WithBitMask(width int, index int) (*BigInt, error) {
	if width < 0 {
		return nil, newError("WithBitMask", OutOfDomain, "negative width")
	}
	if index < -1 {
		return nil, newError("WithBitMask", OutOfDomain, "negative bit index")
	}
	return newBigInt(NonNegative, nat(nil).withBitMask(width, index)), nil
}

// --- Accessors ---

// Sign reports -1, 0, or +1 following the value's sign.
func (x *BigInt) Sign() int {
	switch {
	case len(x.mag) == 0:
		return 0
	case x.sign == Negative:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether x is the canonical zero.
func (x *BigInt) IsZero() bool { return len(x.mag) == 0 }

// MagnitudeBitLen returns the bit length of |x|.
func (x *BigInt) MagnitudeBitLen() int { return x.mag.bitLen() }

// CountTrailingZeroBits returns the number of trailing zero bits of |x|.
func (x *BigInt) CountTrailingZeroBits() uint { return x.mag.trailingZeroBits() }

// MagnitudeCountOneBits returns the number of set bits in |x|.
func (x *BigInt) MagnitudeCountOneBits() int { return x.mag.countOneBits() }

// Int64 returns the low 64 bits of x, signed per two's complement
// truncation (mirrors math/big.Int.Int64's wraparound contract).
func (x *BigInt) Int64() int64 {
	v := int64(x.mag.uint64())
	if x.sign == Negative {
		v = -v
	}
	return v
}

// Uint64 returns the low 64 bits of |x|.
func (x *BigInt) Uint64() uint64 { return x.mag.uint64() }

// --- Comparison ---

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than
// y, consistent with the signed integer total order (canonical zero is
// unique and non-negative).
func Cmp(x, y *BigInt) int {
	if x.sign != y.sign {
		if len(x.mag) == 0 && len(y.mag) == 0 {
			return 0
		}
		if x.sign == Negative {
			return -1
		}
		return 1
	}
	c := x.mag.cmp(y.mag)
	if x.sign == Negative {
		return -c
	}
	return c
}

// Eq reports whether x and y are equal.
func Eq(x, y *BigInt) bool { return Cmp(x, y) == 0 }

// CmpInt64 compares x against the primitive value y without allocating a
// BigInt for y.
func (x *BigInt) CmpInt64(y int64) int {
	ySign := NonNegative
	uy := uint64(y)
	if y < 0 {
		ySign = Negative
		uy = uint64(-y)
	}
	if x.sign != ySign {
		if len(x.mag) == 0 && uy == 0 {
			return 0
		}
		if x.sign == Negative {
			return -1
		}
		return 1
	}
	var ym nat
	ym = ym.setUint64(uy)
	c := x.mag.cmp(ym)
	if x.sign == Negative {
		return -c
	}
	return c
}

// --- Algebra ---

// Abs returns |x|.
func (x *BigInt) Abs() *BigInt { return newBigInt(NonNegative, x.mag) }

// Neg returns -x. Negating zero returns zero.
func (x *BigInt) Neg() *BigInt {
	if len(x.mag) == 0 {
		return x
	}
	sign := NonNegative
	if x.sign == NonNegative {
		sign = Negative
	}
	return newBigInt(sign, x.mag)
}

// Add returns x + y: equal signs add magnitudes; opposite signs
// subtract the smaller magnitude from the larger and take the larger
// operand's sign.
func Add(x, y *BigInt) *BigInt {
	return addSigned(x.sign, x.mag, y.sign, y.mag)
}

// Sub returns x - y.
func Sub(x, y *BigInt) *BigInt { return Add(x, y.Neg()) }

// splitInt64 decomposes a primitive into the (sign, magnitude) pair the
// kernel works on, without allocating a BigInt for it.
func splitInt64(y int64) (Sign, nat) {
	sign := NonNegative
	uy := uint64(y)
	if y < 0 {
		sign = Negative
		uy = uint64(-y)
	}
	return sign, nat(nil).setUint64(uy)
}

// addSigned combines two (sign, magnitude) pairs under addition.
func addSigned(xs Sign, xm nat, ys Sign, ym nat) *BigInt {
	if xs == ys {
		return newBigInt(xs, nat(nil).add(xm, ym))
	}
	if c := xm.cmp(ym); c == 0 {
		return zeroBigInt
	} else if c > 0 {
		return newBigInt(xs, nat(nil).sub(xm, ym))
	}
	return newBigInt(ys, nat(nil).sub(ym, xm))
}

// AddInt64 returns x + y for a primitive y.
func (x *BigInt) AddInt64(y int64) *BigInt {
	ys, ym := splitInt64(y)
	return addSigned(x.sign, x.mag, ys, ym)
}

// SubInt64 returns x - y for a primitive y.
func (x *BigInt) SubInt64(y int64) *BigInt {
	ys, ym := splitInt64(y)
	if len(ym) != 0 {
		ys = xorSign(ys, Negative)
	}
	return addSigned(x.sign, x.mag, ys, ym)
}

// MulInt64 returns x * y for a primitive y, taking the single-row
// multiply-accumulate fast path when |y| fits in one limb.
func (x *BigInt) MulInt64(y int64) *BigInt {
	ys, ym := splitInt64(y)
	var mag nat
	if len(ym) == 1 {
		mag = nat(nil).mulAddWW(x.mag, ym[0], 0)
	} else {
		mag = nat(nil).mul(x.mag, ym)
	}
	return newBigInt(xorSign(x.sign, ys), mag)
}

// QuoRemInt64 returns the truncated quotient and remainder of x/y for a
// primitive y, using the single-limb division scan when |y| fits in one
// limb.
func (x *BigInt) QuoRemInt64(y int64) (q, r *BigInt, err error) {
	if y == 0 {
		return nil, nil, newError("QuoRemInt64", DivideByZero, "")
	}
	ys, ym := splitInt64(y)
	if len(ym) == 1 {
		qm, r0 := nat(nil).divW(x.mag, ym[0])
		q = newBigInt(xorSign(x.sign, ys), qm)
		r = newBigInt(x.sign, nat(nil).setWord(r0))
		return q, r, nil
	}
	return QuoRem(x, newBigInt(ys, ym))
}

// Mul returns x * y.
func Mul(x, y *BigInt) *BigInt {
	mag := nat(nil).mul(x.mag, y.mag)
	return newBigInt(xorSign(x.sign, y.sign), mag)
}

// Sqr returns x * x using the specialized squaring kernel.
func (x *BigInt) Sqr() *BigInt {
	return newBigInt(NonNegative, nat(nil).sqr(x.mag))
}

func xorSign(a, b Sign) Sign {
	if a == b {
		return NonNegative
	}
	return Negative
}

// QuoRem returns the truncated quotient and remainder of x/y: the
// remainder has the sign of the dividend, |rem| < |y|.
func QuoRem(x, y *BigInt) (q, r *BigInt, err error) {
	if len(y.mag) == 0 {
		return nil, nil, newError("QuoRem", DivideByZero, "")
	}
	defer guard("QuoRem", &err)
	qm, rm := nat(nil).div(nil, x.mag, y.mag)
	q = newBigInt(xorSign(x.sign, y.sign), qm)
	r = newBigInt(x.sign, rm)
	return q, r, nil
}

// Quo returns the truncated quotient x/y.
func Quo(x, y *BigInt) (*BigInt, error) {
	q, _, err := QuoRem(x, y)
	return q, err
}

// Rem returns the truncated remainder x%y (sign of the dividend).
func Rem(x, y *BigInt) (*BigInt, error) {
	_, r, err := QuoRem(x, y)
	return r, err
}

// Mod returns the least non-negative residue of x modulo n. n must be
// positive.
func Mod(x, n *BigInt) (res *BigInt, err error) {
	if n.sign == Negative || len(n.mag) == 0 {
		return nil, newError("Mod", NegativeModulus, "modulus must be positive")
	}
	defer guard("Mod", &err)
	_, rm := nat(nil).div(nil, x.mag, n.mag)
	if x.sign == Negative && len(rm) > 0 {
		rm = nat(nil).sub(n.mag, rm)
	}
	return newBigInt(NonNegative, rm), nil
}

// Pow returns x**e for e >= 0, via right-to-left binary exponentiation.
func Pow(x *BigInt, e int64) (*BigInt, error) {
	if e < 0 {
		return nil, newError("Pow", NegativeExponent, "")
	}
	result := FromInt64(1)
	base := x
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base)
		}
		e >>= 1
		if e > 0 {
			base = Mul(base, base)
		}
	}
	return result, nil
}

// Isqrt returns floor(sqrt(x)). x must be non-negative.
func Isqrt(x *BigInt) (root *BigInt, err error) {
	if x.sign == Negative {
		return nil, newError("Isqrt", NegativeInput, "")
	}
	defer guard("Isqrt", &err)
	return newBigInt(NonNegative, nat(nil).sqrt(x.mag)), nil
}

// Gcd returns the non-negative greatest common divisor of x and y via the
// Euclidean algorithm on magnitudes. gcd(0, x) = |x|, gcd(0, 0) = 0.
func Gcd(x, y *BigInt) *BigInt {
	u, v := x.mag, y.mag
	for len(v) != 0 {
		_, r := nat(nil).div(nil, u, v)
		u, v = v, r
	}
	return newBigInt(NonNegative, u)
}

// Factorial returns n! via a product-tree multiplication, minimizing
// schoolbook work versus a naive running-product loop.
func Factorial(n uint64) *BigInt {
	defaultStats.Inc("op.factorial")
	if n == 0 {
		return FromInt64(1)
	}
	return newBigInt(NonNegative, nat(nil).mulRange(1, n))
}

// --- Bitwise ---

// And returns x & y (two's-complement semantics on non-negative
// operands).
func And(x, y *BigInt) *BigInt { return newBigInt(NonNegative, nat(nil).and(x.mag, y.mag)) }

// Or returns x | y.
func Or(x, y *BigInt) *BigInt { return newBigInt(NonNegative, nat(nil).or(x.mag, y.mag)) }

// Xor returns x ^ y.
func Xor(x, y *BigInt) *BigInt { return newBigInt(NonNegative, nat(nil).xor(x.mag, y.mag)) }

// AndNot returns x &^ y.
func AndNot(x, y *BigInt) *BigInt { return newBigInt(NonNegative, nat(nil).andNot(x.mag, y.mag)) }

// Not returns ^x == -(x+1), matching two's-complement bitwise negation.
func (x *BigInt) Not() *BigInt {
	return Sub(FromInt64(-1), x)
}

// Shl returns x << s.
func (x *BigInt) Shl(s uint) *BigInt { return newBigInt(x.sign, nat(nil).shl(x.mag, s)) }

// Shr returns an arithmetic right shift of x by s bits (sign-extending,
// i.e. rounding toward negative infinity for negative x).
func (x *BigInt) Shr(s uint) *BigInt {
	if x.sign == NonNegative {
		return newBigInt(NonNegative, nat(nil).shr(x.mag, s))
	}
	// Arithmetic shift of a negative value: -x >> s == -((x-1)>>s) - 1.
	one := natOne
	adj := nat(nil).sub(x.mag, one)
	shifted := nat(nil).shr(adj, s)
	return newBigInt(Negative, nat(nil).add(shifted, one))
}

// Ushr returns the unsigned (logical) right shift of x's two's-complement
// representation by s bits.
func (x *BigInt) Ushr(s uint) (*BigInt, error) {
	if x.sign == NonNegative {
		return x.Shr(s), nil
	}
	return nil, newError("Ushr", OutOfDomain, "unsigned shift of a negative value has no magnitude-only representation")
}

// TestBit reports the value of bit i (0 or 1) in x's two's-complement
// representation.
func (x *BigInt) TestBit(i int) (uint, error) {
	if i < 0 {
		return 0, newError("TestBit", OutOfDomain, "negative bit index")
	}
	if x.sign == NonNegative {
		return x.mag.bit(uint(i)), nil
	}
	// two's complement of a negative magnitude m is ^(m-1)
	adj := nat(nil).sub(x.mag, natOne)
	return 1 - adj.bit(uint(i)), nil
}

// SetBit returns x with bit i set to b (0 or 1); only defined here for
// non-negative x, matching the magnitude-level kernel it's grounded on.
func (x *BigInt) SetBit(i int, b uint) (*BigInt, error) {
	if i < 0 {
		return nil, newError("SetBit", OutOfDomain, "negative bit index")
	}
	if b != 0 && b != 1 {
		return nil, newError("SetBit", OutOfDomain, "bit value must be 0 or 1")
	}
	if x.sign == Negative {
		return nil, newError("SetBit", OutOfDomain, "SetBit is defined on non-negative values")
	}
	return newBigInt(NonNegative, nat(nil).setBit(x.mag, uint(i), b)), nil
}

// ClearBit returns x with bit i cleared.
func (x *BigInt) ClearBit(i int) (*BigInt, error) { return x.SetBit(i, 0) }
