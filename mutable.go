package bigmath

// MutableBigInt is an aliasing-safe, in-place accumulator for repeated
// arithmetic: unlike BigInt, its operations mutate the
// receiver instead of allocating a fresh value each step, which matters
// for accumulation loops (running sums, product trees, modular
// exponentiation ladders) where BigInt's immutability would otherwise
// force one allocation per step.
//
// Every Set* method is safe to call with the receiver itself as an
// operand (z.SetAdd(z.ToBigInt(), y) style usage): the underlying nat
// kernel already detects when a receiver's backing array aliases an
// input and falls back to a fresh buffer for that call (see alias() in
// nat.go), so MutableBigInt does not need its own copy-on-alias layer
// beyond delegating to that kernel behavior.
type MutableBigInt struct {
	sign Sign
	mag  nat
}

// NewMutableBigInt returns a MutableBigInt initialized to zero.
func NewMutableBigInt() *MutableBigInt {
	return &MutableBigInt{}
}

// NewMutableBigIntWithBitCapacity returns a zero accumulator whose
// backing buffer is pre-sized to hold values up to the given bit
// length. Operations that reserve a spare limb beyond the result (an add
// keeps one for its carry, a shift one for the bits shifted out) can
// still grow the buffer when the value is near that length.
func NewMutableBigIntWithBitCapacity(bits int) *MutableBigInt {
	if bits < 0 {
		bits = 0
	}
	limbs := (bits + _W - 1) / _W
	return &MutableBigInt{mag: make(nat, 0, limbs)}
}

func (z *MutableBigInt) normalize() *MutableBigInt {
	z.mag = z.mag.norm()
	if len(z.mag) == 0 {
		z.sign = NonNegative
	}
	return z
}

// SetZero resets z to 0.
func (z *MutableBigInt) SetZero() *MutableBigInt {
	z.sign = NonNegative
	z.mag = z.mag[:0]
	return z
}

// SetOne resets z to 1.
func (z *MutableBigInt) SetOne() *MutableBigInt {
	z.sign = NonNegative
	z.mag = z.mag.setWord(1)
	return z
}

// Set copies x's value into z.
func (z *MutableBigInt) Set(x *BigInt) *MutableBigInt {
	z.sign = x.sign
	z.mag = z.mag.set(x.mag)
	return z
}

// SetInt64 sets z to a primitive signed value.
func (z *MutableBigInt) SetInt64(x int64) *MutableBigInt {
	z.sign = NonNegative
	ux := uint64(x)
	if x < 0 {
		z.sign = Negative
		ux = uint64(-x)
	}
	z.mag = z.mag.setUint64(ux)
	return z
}

// SetUint64 sets z to a primitive unsigned value.
func (z *MutableBigInt) SetUint64(x uint64) *MutableBigInt {
	z.sign = NonNegative
	z.mag = z.mag.setUint64(x)
	return z
}

// SetBit sets bit i of z's magnitude.
func (z *MutableBigInt) SetBit(i int) error {
	if i < 0 {
		return newError("MutableBigInt.SetBit", OutOfDomain, "negative bit index")
	}
	z.mag = z.mag.setBit(z.mag, uint(i), 1)
	return nil
}

// ClearBit clears bit i of z's magnitude.
func (z *MutableBigInt) ClearBit(i int) error {
	if i < 0 {
		return newError("MutableBigInt.ClearBit", OutOfDomain, "negative bit index")
	}
	z.mag = z.mag.setBit(z.mag, uint(i), 0)
	z.normalize()
	return nil
}

// ApplyBitMask sets z to the mask with `width` low bits set, and bit
// `index` additionally set when index >= 0 (pass -1 for no extra bit).
func (z *MutableBigInt) ApplyBitMask(width, index int) error {
	if width < 0 {
		return newError("MutableBigInt.ApplyBitMask", OutOfDomain, "negative width")
	}
	if index < -1 {
		return newError("MutableBigInt.ApplyBitMask", OutOfDomain, "negative bit index")
	}
	z.sign = NonNegative
	z.mag = z.mag.withBitMask(width, index)
	z.normalize()
	return nil
}

// ToBigInt snapshots z's current value into an immutable BigInt. The
// returned value owns its own magnitude slice, so later mutation of z
// cannot retroactively change it.
func (z *MutableBigInt) ToBigInt() *BigInt {
	mag := append(nat(nil), z.mag...)
	return newBigInt(z.sign, mag)
}

// Sign reports -1, 0, or +1 following z's current sign.
func (z *MutableBigInt) Sign() int {
	switch {
	case len(z.mag) == 0:
		return 0
	case z.sign == Negative:
		return -1
	default:
		return 1
	}
}

// --- Set* (binary, x op y -> z) ---

// SetAdd sets z = x + y.
func (z *MutableBigInt) SetAdd(x, y *BigInt) *MutableBigInt {
	if x.sign == y.sign {
		z.mag = z.mag.add(x.mag, y.mag)
		z.sign = x.sign
	} else if c := x.mag.cmp(y.mag); c == 0 {
		z.SetZero()
	} else if c > 0 {
		z.mag = z.mag.sub(x.mag, y.mag)
		z.sign = x.sign
	} else {
		z.mag = z.mag.sub(y.mag, x.mag)
		z.sign = y.sign
	}
	return z.normalize()
}

// SetSub sets z = x - y.
func (z *MutableBigInt) SetSub(x, y *BigInt) *MutableBigInt {
	return z.SetAdd(x, y.Neg())
}

// SetMul sets z = x * y.
func (z *MutableBigInt) SetMul(x, y *BigInt) *MutableBigInt {
	z.mag = z.mag.mul(x.mag, y.mag)
	z.sign = xorSign(x.sign, y.sign)
	return z.normalize()
}

// SetSqr sets z = x * x.
func (z *MutableBigInt) SetSqr(x *BigInt) *MutableBigInt {
	z.mag = z.mag.sqr(x.mag)
	z.sign = NonNegative
	return z.normalize()
}

// SetQuo sets z = truncated quotient of x/y.
func (z *MutableBigInt) SetQuo(x, y *BigInt) error {
	if len(y.mag) == 0 {
		return newError("MutableBigInt.SetQuo", DivideByZero, "")
	}
	q, _ := nat(nil).div(nil, x.mag, y.mag)
	z.mag = z.mag.set(q)
	z.sign = xorSign(x.sign, y.sign)
	z.normalize()
	return nil
}

// SetRem sets z = truncated remainder of x%y (sign of the dividend).
func (z *MutableBigInt) SetRem(x, y *BigInt) error {
	if len(y.mag) == 0 {
		return newError("MutableBigInt.SetRem", DivideByZero, "")
	}
	_, r := nat(nil).div(nil, x.mag, y.mag)
	z.mag = z.mag.set(r)
	z.sign = x.sign
	z.normalize()
	return nil
}

// SetMod sets z to the least non-negative residue of x modulo n. n must
// be positive.
func (z *MutableBigInt) SetMod(x, n *BigInt) error {
	if n.sign == Negative || len(n.mag) == 0 {
		return newError("MutableBigInt.SetMod", NegativeModulus, "modulus must be positive")
	}
	_, r := nat(nil).div(nil, x.mag, n.mag)
	if x.sign == Negative && len(r) > 0 {
		r = nat(nil).sub(n.mag, r)
	}
	z.mag = z.mag.set(r)
	z.sign = NonNegative
	z.normalize()
	return nil
}

// SetPow sets z = x**e for e >= 0.
func (z *MutableBigInt) SetPow(x *BigInt, e int64) error {
	if e < 0 {
		return newError("MutableBigInt.SetPow", NegativeExponent, "")
	}
	z.SetOne()
	base := NewMutableBigInt().Set(x)
	for e > 0 {
		if e&1 == 1 {
			z.SetMul(z.ToBigInt(), base.ToBigInt())
		}
		e >>= 1
		if e > 0 {
			base.SetMul(base.ToBigInt(), base.ToBigInt())
		}
	}
	return nil
}

// SetAnd sets z = x & y.
func (z *MutableBigInt) SetAnd(x, y *BigInt) *MutableBigInt {
	z.mag = z.mag.and(x.mag, y.mag)
	z.sign = NonNegative
	return z.normalize()
}

// SetOr sets z = x | y.
func (z *MutableBigInt) SetOr(x, y *BigInt) *MutableBigInt {
	z.mag = z.mag.or(x.mag, y.mag)
	z.sign = NonNegative
	return z.normalize()
}

// SetXor sets z = x ^ y.
func (z *MutableBigInt) SetXor(x, y *BigInt) *MutableBigInt {
	z.mag = z.mag.xor(x.mag, y.mag)
	z.sign = NonNegative
	return z.normalize()
}

// SetShl sets z = x << s.
func (z *MutableBigInt) SetShl(x *BigInt, s uint) *MutableBigInt {
	z.mag = z.mag.shl(x.mag, s)
	z.sign = x.sign
	return z.normalize()
}

// SetShr sets z to the arithmetic right shift of x by s bits.
func (z *MutableBigInt) SetShr(x *BigInt, s uint) *MutableBigInt {
	z.Set(x.Shr(s))
	return z
}

// SetUshr sets z to the logical right shift of x's two's-complement
// representation by s bits. x must be non-negative.
func (z *MutableBigInt) SetUshr(x *BigInt, s uint) error {
	shifted, err := x.Ushr(s)
	if err != nil {
		return err
	}
	z.Set(shifted)
	return nil
}

// --- in-place operators (z op= x) ---

// Add sets z = z + x.
func (z *MutableBigInt) Add(x *BigInt) *MutableBigInt { return z.SetAdd(z.ToBigInt(), x) }

// Sub sets z = z - x.
func (z *MutableBigInt) Sub(x *BigInt) *MutableBigInt { return z.SetSub(z.ToBigInt(), x) }

// Mul sets z = z * x.
func (z *MutableBigInt) Mul(x *BigInt) *MutableBigInt { return z.SetMul(z.ToBigInt(), x) }

// AddInt64 sets z = z + x for a primitive x.
func (z *MutableBigInt) AddInt64(x int64) *MutableBigInt {
	return z.Set(z.ToBigInt().AddInt64(x))
}

// SubInt64 sets z = z - x for a primitive x.
func (z *MutableBigInt) SubInt64(x int64) *MutableBigInt {
	return z.Set(z.ToBigInt().SubInt64(x))
}

// MulInt64 sets z = z * x for a primitive x.
func (z *MutableBigInt) MulInt64(x int64) *MutableBigInt {
	return z.Set(z.ToBigInt().MulInt64(x))
}

// SetDiv is an alias for SetQuo, matching the "Div" spelling used
// alongside the other in-place operators below.
func (z *MutableBigInt) SetDiv(x, y *BigInt) error { return z.SetQuo(x, y) }

// Div sets z = truncated quotient of z/x.
func (z *MutableBigInt) Div(x *BigInt) error { return z.SetQuo(z.ToBigInt(), x) }

// Rem sets z = truncated remainder of z%x (sign of the dividend).
func (z *MutableBigInt) Rem(x *BigInt) error { return z.SetRem(z.ToBigInt(), x) }

// ModAssign sets z to the least non-negative residue of z modulo n.
func (z *MutableBigInt) ModAssign(n *BigInt) error { return z.SetMod(z.ToBigInt(), n) }

// PowAssign sets z = z**e for e >= 0.
func (z *MutableBigInt) PowAssign(e int64) error { return z.SetPow(z.ToBigInt(), e) }

// UshrAssign sets z to the logical right shift of z's two's-complement
// representation by s bits. z must be non-negative.
func (z *MutableBigInt) UshrAssign(s uint) error { return z.SetUshr(z.ToBigInt(), s) }

// Sqr sets z = z * z.
func (z *MutableBigInt) Sqr() *MutableBigInt {
	z.mag = z.mag.sqr(z.mag)
	z.sign = NonNegative
	return z.normalize()
}

// Neg negates z in place.
func (z *MutableBigInt) Neg() *MutableBigInt {
	if len(z.mag) == 0 {
		return z
	}
	if z.sign == NonNegative {
		z.sign = Negative
	} else {
		z.sign = NonNegative
	}
	return z
}

// Abs sets z = |z|.
func (z *MutableBigInt) Abs() *MutableBigInt {
	z.sign = NonNegative
	return z
}

// And sets z = z & x.
func (z *MutableBigInt) And(x *BigInt) *MutableBigInt { return z.SetAnd(z.ToBigInt(), x) }

// Or sets z = z | x.
func (z *MutableBigInt) Or(x *BigInt) *MutableBigInt { return z.SetOr(z.ToBigInt(), x) }

// Xor sets z = z ^ x.
func (z *MutableBigInt) Xor(x *BigInt) *MutableBigInt { return z.SetXor(z.ToBigInt(), x) }

// Shl sets z = z << s.
func (z *MutableBigInt) Shl(s uint) *MutableBigInt {
	z.mag = z.mag.shl(z.mag, s)
	return z
}

// Shr sets z to the arithmetic right shift of z by s bits.
func (z *MutableBigInt) Shr(s uint) *MutableBigInt {
	return z.SetShr(z.ToBigInt(), s)
}

// --- accumulator helpers ---

// AddAbsValueOf adds |x| into z: z += |x|, for a running sum of
// magnitudes without allocating an intermediate BigInt per term.
func (z *MutableBigInt) AddAbsValueOf(x *BigInt) *MutableBigInt {
	return z.SetAdd(z.ToBigInt(), x.Abs())
}

// AddSquareOf adds x*x into z: z += x*x, for a running sum of squares
// (e.g. computing a vector's squared norm). Each call builds x*x and a
// snapshot of z as BigInt values for the addition, so it allocates per
// term.
func (z *MutableBigInt) AddSquareOf(x *BigInt) *MutableBigInt {
	sq := x.Sqr()
	return z.SetAdd(z.ToBigInt(), sq)
}
