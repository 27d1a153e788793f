package bigmath

// smallPrimes lists the odd primes up to 317, used for trial division
// before any probabilistic test runs. 2 is handled separately via an
// evenness check.
var smallPrimes = []uint32{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149,
	151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227,
	229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293, 307,
	311, 313, 317,
}

// smallMRWitnesses are sufficient to decide primality exactly for every
// n < 2^64 (Jaeschke/Pomerance/et al.'s verified witness set).
var smallMRWitnesses = []uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}

// IsProbablePrime reports whether x is prime, using trial division, a
// deterministic Miller-Rabin pass for x < 2^64, and a full Baillie-PSW
// test (strong base-2 Miller-Rabin plus a strong Lucas probable-prime
// test with Selfridge parameters) otherwise. x must be non-negative.
func IsProbablePrime(x *BigInt) (prime bool, err error) {
	if x.sign == Negative {
		return false, newError("IsProbablePrime", NegativeInput, "")
	}
	defer guard("IsProbablePrime", &err)
	return isProbablePrimeMag(x.mag), nil
}

func isProbablePrimeMag(x nat) bool {
	one := natOne
	if x.cmp(one) <= 0 {
		return false
	}
	two := natTwo
	if x.cmp(two) == 0 {
		return true
	}
	if x[0]&1 == 0 {
		return false
	}

	for _, p := range smallPrimes {
		pw := nat(nil).setWord(Word(p))
		if x.cmp(pw) == 0 {
			return true
		}
		if x.modW(Word(p)) == 0 {
			return false
		}
	}

	root := nat(nil).sqrt(x)
	if nat(nil).sqr(root).cmp(x) == 0 {
		return false // perfect square: never prime, and breaks Selfridge's D search
	}

	mc, err := NewModContext(newBigInt(NonNegative, x))
	if err != nil {
		return false
	}

	if x.bitLen() <= 64 {
		for _, w := range smallMRWitnesses {
			_, wm := nat(nil).div(nil, nat(nil).setUint64(w), x)
			if len(wm) == 0 {
				continue // witness is a multiple of x: no information
			}
			if !millerRabinWitness(mc, x, wm) {
				return false
			}
		}
		return true
	}

	if !millerRabinWitness(mc, x, two) {
		return false
	}
	return strongLucasProbablePrime(x)
}

// millerRabinWitness runs the strong probable-prime test for base a
// against odd n > 2.
func millerRabinWitness(mc *ModContext, n nat, a nat) bool {
	nMinus1 := nat(nil).sub(n, natOne)
	// d must be a copy: shr works in place when capacity allows, and
	// nMinus1 is still needed for the x == n-1 comparisons below.
	d := append(nat(nil), nMinus1...)
	s := 0
	for d[0]&1 == 0 {
		d = d.shr(d, 1)
		s++
	}

	x, _ := mc.ModPow(newBigInt(NonNegative, a), newBigInt(NonNegative, d))
	if x.mag.cmp(natOne) == 0 || x.mag.cmp(nMinus1) == 0 {
		return true
	}
	for i := 0; i < s-1; i++ {
		x = mc.ModSqr(x)
		if x.mag.cmp(nMinus1) == 0 {
			return true
		}
		if x.mag.cmp(natOne) == 0 {
			return false
		}
	}
	return false
}

// strongLucasProbablePrime runs the strong Lucas probable-prime test
// against odd, non-square n, using Selfridge's method A to choose D, P,
// Q.
func strongLucasProbablePrime(n nat) bool {
	mag := int64(5)
	dNeg := false
	for {
		j := jacobi(nat(nil).setUint64(uint64(mag)), dNeg, n)
		if j == -1 {
			break
		}
		if j == 0 {
			return false
		}
		mag += 2
		dNeg = !dNeg
	}
	d := mag
	if dNeg {
		d = -d
	}

	p := nat(nil).setWord(1)
	oneMinusD := 1 - d
	qNeg := oneMinusD < 0
	qMag := nat(nil).setUint64(uint64(abs64(oneMinusD)) / 4)

	dModN := reduceSignedModN(nat(nil).setUint64(uint64(mag)), dNeg, n)
	qModN := reduceSignedModN(qMag, qNeg, n)

	s := 0
	d0 := nat(nil).add(n, natOne)
	for d0[0]&1 == 0 {
		d0 = d0.shr(d0, 1)
		s++
	}

	u, v, qk := lucasUV(d0, n, p, qModN, dModN)
	if len(u) == 0 {
		return true
	}
	if len(v) == 0 {
		return true
	}
	for r := 1; r < s; r++ {
		v = subModN(mulModN(v, v, n), addModN(qk, qk, n), n)
		qk = mulModN(qk, qk, n)
		if len(v) == 0 {
			return true
		}
	}
	return false
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// lucasUV computes (U_k, V_k, Q^k) mod n via the standard doubling /
// add-one recurrences for the Lucas sequence with parameters P, Q, and
// discriminant D = P^2 - 4Q (passed pre-reduced mod n as dModN).
func lucasUV(k nat, n, p, q, dModN nat) (u, v, qk nat) {
	u = nat(nil)
	v = nat(nil).setWord(2)
	qk = nat(nil).setWord(1)

	bits := k.bitLen()
	for i := bits - 1; i >= 0; i-- {
		u2 := mulModN(u, v, n)
		v2 := subModN(mulModN(v, v, n), addModN(qk, qk, n), n)
		qk = mulModN(qk, qk, n)
		u, v = u2, v2

		if k.bit(uint(i)) == 1 {
			u1 := halveModN(addModN(mulModN(p, u, n), v, n), n)
			v1 := halveModN(addModN(mulModN(dModN, u, n), mulModN(p, v, n), n), n)
			qk = mulModN(qk, q, n)
			u, v = u1, v1
		}
	}
	return u, v, qk
}

// jacobi returns the Jacobi symbol (d/n) for odd n > 0, where d carries
// an explicit sign (dNeg) since it is sourced from a signed magnitude
// rather than a nat.
func jacobi(dMag nat, dNeg bool, n nat) int {
	a := reduceSignedModN(dMag, dNeg, n)
	return jacobiSymbol(a, n)
}

// jacobiSymbol computes (a/n) for 0 <= a < n and odd n > 0, via the
// standard reciprocity-based algorithm (HAC Algorithm 2.149).
func jacobiSymbol(a, n nat) int {
	a = append(nat(nil), a...)
	n = append(nat(nil), n...)
	result := 1
	for len(a) != 0 {
		for a[0]&1 == 0 {
			a = nat(nil).shr(a, 1)
			if m := n[0] & 7; m == 3 || m == 5 {
				result = -result
			}
		}
		a, n = n, a
		if a[0]&3 == 3 && n[0]&3 == 3 {
			result = -result
		}
		_, a = nat(nil).div(nil, a, n)
	}
	if len(n) == 1 && n[0] == 1 {
		return result
	}
	return 0
}

// reduceSignedModN maps a signed integer (mag, neg) to its non-negative
// residue mod n.
func reduceSignedModN(mag nat, neg bool, n nat) nat {
	_, r := nat(nil).div(nil, mag, n)
	if !neg || len(r) == 0 {
		return r
	}
	return nat(nil).sub(n, r)
}

func addModN(a, b, n nat) nat {
	s := nat(nil).add(a, b)
	if s.cmp(n) >= 0 {
		s = s.sub(s, n)
	}
	return s
}

func subModN(a, b, n nat) nat {
	if a.cmp(b) >= 0 {
		return nat(nil).sub(a, b)
	}
	return nat(nil).sub(nat(nil).add(a, n), b)
}

func mulModN(a, b, n nat) nat {
	prod := nat(nil).mul(a, b)
	_, r := nat(nil).div(nil, prod, n)
	return r
}

func halveModN(a, n nat) nat {
	if len(a) == 0 || a[0]&1 == 0 {
		return nat(nil).shr(a, 1)
	}
	return nat(nil).shr(nat(nil).add(a, n), 1)
}
