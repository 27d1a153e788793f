package bigmath

// ModContext precomputes the reduction constants for repeated modular
// arithmetic against a single fixed modulus: a Barrett reducer, usable
// against any modulus, and, when the modulus is odd, a Montgomery
// reducer, which ModPow prefers since its per-step reduction avoids
// Barrett's division-shaped constant.
//
// Dispatch: ModPow against an odd modulus runs the Montgomery ladder;
// every other combination (even modulus, or a one-shot ModMul/ModSqr)
// uses Barrett reduction.
type ModContext struct {
	n   nat // modulus magnitude, normalized, non-zero
	k   int // limb count of n
	odd bool

	mu nat // Barrett: floor(b^(2k) / n)

	nprime nat // Montgomery: -n^-1 mod b^k
	rmodn  nat // Montgomery: b^k mod n
	r2modn nat // Montgomery: b^(2k) mod n
}

// NewModContext builds a reduction context for a positive modulus.
func NewModContext(modulus *BigInt) (*ModContext, error) {
	if len(modulus.mag) == 0 {
		return nil, newError("NewModContext", DivideByZero, "zero modulus")
	}
	if modulus.sign == Negative {
		return nil, newError("NewModContext", NegativeModulus, "modulus must be positive")
	}
	defaultStats.Inc("construct.mod_context")
	n := modulus.mag.norm()
	k := len(n)
	mc := &ModContext{n: n, k: k, odd: n[0]&1 == 1}

	b2k := nat(nil).shl(natOne, uint(2*k*_W))
	mu, r2modn := nat(nil).div(nil, b2k, n)
	mc.mu = mu

	if mc.odd {
		totalBits := k * _W
		inv := invModPow2(n, totalBits)
		rFull := nat(nil).shl(natOne, uint(totalBits))
		mc.nprime = nat(nil).sub(rFull, inv)
		_, rmodn := nat(nil).div(nil, rFull, n)
		mc.rmodn = rmodn
		mc.r2modn = r2modn
	}

	return mc, nil
}

func (mc *ModContext) reduceMag(x nat) nat {
	if x.cmp(mc.n) < 0 {
		return x
	}
	_, r := nat(nil).div(nil, x, mc.n)
	return r
}

// modSetMag maps a signed value to its least non-negative residue mod n.
func (mc *ModContext) modSetMag(x *BigInt) nat {
	r := mc.reduceMag(x.mag)
	if x.sign == Negative && len(r) > 0 {
		r = nat(nil).sub(mc.n, r)
	}
	return r
}

// ModSet reduces x into [0, n).
func (mc *ModContext) ModSet(x *BigInt) *BigInt {
	return newBigInt(NonNegative, mc.modSetMag(x))
}

// ModAdd returns x+y mod n via a single conditional subtraction of n.
func (mc *ModContext) ModAdd(x, y *BigInt) *BigInt {
	return newBigInt(NonNegative, addModN(mc.modSetMag(x), mc.modSetMag(y), mc.n))
}

// ModSub returns x-y mod n via a single conditional addition of n.
func (mc *ModContext) ModSub(x, y *BigInt) *BigInt {
	return newBigInt(NonNegative, subModN(mc.modSetMag(x), mc.modSetMag(y), mc.n))
}

// ModHalfLucas returns x/2 mod n for odd n and 0 <= x < n: x>>1 when x
// is even, (x+n)>>1 otherwise. It backs the halving steps of the Lucas
// add-one recurrences.
func (mc *ModContext) ModHalfLucas(x *BigInt) (*BigInt, error) {
	if !mc.odd {
		return nil, newError("ModContext.ModHalfLucas", OutOfDomain, "modulus must be odd")
	}
	return newBigInt(NonNegative, halveModN(mc.modSetMag(x), mc.n)), nil
}

// ModMul returns x*y mod n, via Barrett reduction of the full product.
func (mc *ModContext) ModMul(x, y *BigInt) *BigInt {
	xm := mc.modSetMag(x)
	ym := mc.modSetMag(y)
	prod := nat(nil).mul(xm, ym)
	return newBigInt(NonNegative, mc.barrettReduce(prod))
}

// ModSqr returns x*x mod n, via Barrett reduction.
func (mc *ModContext) ModSqr(x *BigInt) *BigInt {
	xm := mc.modSetMag(x)
	sq := nat(nil).sqr(xm)
	return newBigInt(NonNegative, mc.barrettReduce(sq))
}

// ModPow returns base**exp mod n for exp >= 0. Against an odd modulus it
// runs a Montgomery ladder; otherwise it runs square-and-multiply with
// Barrett reduction after every step.
func (mc *ModContext) ModPow(base, exp *BigInt) (result *BigInt, err error) {
	if exp.sign == Negative {
		return nil, newError("ModContext.ModPow", NegativeExponent, "")
	}
	defer guard("ModContext.ModPow", &err)
	baseMag := mc.modSetMag(base)
	if len(mc.n) == 1 && mc.n[0] == 1 {
		return newBigInt(NonNegative, nil), nil
	}
	if mc.odd {
		return newBigInt(NonNegative, mc.montgomeryPow(baseMag, exp.mag)), nil
	}
	return newBigInt(NonNegative, mc.barrettPow(baseMag, exp.mag)), nil
}

func (mc *ModContext) barrettPow(base, exp nat) nat {
	result := nat(nil).setWord(1)
	b := base
	bits := exp.bitLen()
	for i := 0; i < bits; i++ {
		if exp.bit(uint(i)) == 1 {
			result = mc.barrettReduce(nat(nil).mul(result, b))
		}
		if i+1 < bits {
			b = mc.barrettReduce(nat(nil).sqr(b))
		}
	}
	return result
}

func (mc *ModContext) montgomeryPow(base, exp nat) nat {
	baseR := mc.redc(nat(nil).mul(base, mc.r2modn))
	result := mc.rmodn // R mod n == Montgomery form of 1
	bits := exp.bitLen()
	for i := 0; i < bits; i++ {
		if exp.bit(uint(i)) == 1 {
			result = mc.redc(nat(nil).mul(result, baseR))
		}
		if i+1 < bits {
			baseR = mc.redc(nat(nil).sqr(baseR))
		}
	}
	return mc.redc(result)
}

// redc implements Montgomery reduction (HAC Algorithm 14.32): given
// t < n*b^k, returns t*b^-k mod n. It is expressed in terms of the
// already-verified nat kernel (mul/shr/add/sub) rather than a fused
// per-limb loop, trading some throughput for a reduction built entirely
// out of operations this repository already exercises elsewhere.
func (mc *ModContext) redc(t nat) nat {
	totalBits := mc.k * _W
	tLow := mod2k(t, totalBits)
	q := mulMod2k(tLow, mc.nprime, totalBits)
	qn := nat(nil).mul(q, mc.n)
	sum := nat(nil).add(t, qn)
	res := nat(nil).shr(sum, uint(totalBits))
	if res.cmp(mc.n) >= 0 {
		res = res.sub(res, mc.n)
	}
	return res
}

// barrettReduce implements Barrett reduction (HAC Algorithm 14.42) for
// x < n*b^k, returning x mod n.
func (mc *ModContext) barrettReduce(x nat) nat {
	k := mc.k
	shift1 := uint((k - 1) * _W)
	q1 := nat(nil).shr(x, shift1)
	q2 := nat(nil).mul(q1, mc.mu)
	shift2 := uint((k + 1) * _W)
	q3 := nat(nil).shr(q2, shift2)

	bitsKPlus1 := (k + 1) * _W
	r1 := mod2k(x, bitsKPlus1)
	r2 := mod2k(nat(nil).mul(q3, mc.n), bitsKPlus1)

	var r nat
	if r1.cmp(r2) >= 0 {
		r = nat(nil).sub(r1, r2)
	} else {
		full := nat(nil).shl(natOne, uint(bitsKPlus1))
		r = nat(nil).sub(nat(nil).add(r1, full), r2)
	}
	for r.cmp(mc.n) >= 0 {
		r = r.sub(r, mc.n)
	}
	return r
}

// --- 2-adic (mod 2^bits) arithmetic helpers, used to build the
// Montgomery constants and inside redc and barrettReduce above. ---

func mod2k(x nat, bits int) nat {
	if bits <= 0 {
		return nat(nil)
	}
	limbs := (bits + _W - 1) / _W
	if len(x) > limbs {
		x = x[:limbs]
	}
	z := append(nat(nil), x...)
	if topBits := bits % _W; topBits != 0 && len(z) == limbs {
		mask := Word(1)<<uint(topBits) - 1
		z[len(z)-1] &= mask
	}
	return z.norm()
}

func subMod2k(a, b nat, bits int) nat {
	a = mod2k(a, bits)
	b = mod2k(b, bits)
	if a.cmp(b) >= 0 {
		return mod2k(nat(nil).sub(a, b), bits)
	}
	full := nat(nil).shl(natOne, uint(bits))
	return mod2k(nat(nil).sub(nat(nil).add(a, full), b), bits)
}

func mulMod2k(a, b nat, bits int) nat {
	return mod2k(nat(nil).mul(a, b), bits)
}

// invModPow2 returns n^-1 mod 2^totalBits for odd n, via Newton-Hensel
// iteration: an inverse correct to d bits doubles to 2d correct bits
// each round. Used to build the Montgomery constant n' = -n^-1 mod R.
func invModPow2(n nat, totalBits int) nat {
	x := nat(nil).setWord(1) // n odd => n*1 == 1 (mod 2)
	bitsDone := 1
	two := nat(nil).setWord(2)
	for bitsDone < totalBits {
		next := bitsDone * 2
		if next > totalBits {
			next = totalBits
		}
		nx := mulMod2k(n, x, next)
		twoMinusNx := subMod2k(two, nx, next)
		x = mulMod2k(x, twoMinusNx, next)
		bitsDone = next
	}
	return mod2k(x, totalBits)
}
