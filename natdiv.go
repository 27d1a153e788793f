package bigmath

// greaterThan reports whether (x1<<_W + x2) > (y1<<_W + y2), comparing
// two double-limb quantities without constructing a 64-bit intermediate
// that could overflow.
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || (x1 == y1 && x2 > y2)
}

// divW divides x by the single word y, returning quotient and remainder:
// the divisor-fits-in-one-limb fast path, a single linear scan using
// native 64-by-32 hardware division, no trial-and-correct needed.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("bigmath: division by zero")
	case y == 1:
		return z.set(x), 0
	case m == 0:
		return z[:0], 0
	}
	z = z.make(m)
	r = divWVW(z, 0, x, y)
	return z.norm(), r
}

// div computes q, r such that u = q*v + r, 0 <= r < v, for normalized u
// and non-zero normalized v. z2 receives the remainder. Dispatch: divisor
// longer than u -> quotient 0; one-limb divisor -> divW; otherwise Knuth
// Algorithm D (divLarge), which is also what a two-limb divisor uses:
// Algorithm D's correction step already degenerates to examining a
// single limb (v[n-2] = v[0]) when n == 2, so the generic path is
// already the cheap path in that case and a separate 2-limb routine
// would just be dead code (see DESIGN.md).
func (z nat) div(z2, u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("bigmath: division by zero")
	}
	if u.cmp(v) < 0 {
		return z[:0], z2.set(u)
	}
	if len(v) == 1 {
		var r0 Word
		q, r0 = z.divW(u, v[0])
		return q, z2.setWord(r0)
	}
	return z.divLarge(z2, u, v)
}

// divLarge implements Knuth's Algorithm D (TAOCP vol. 2, §4.3.1) for a
// divisor of two or more limbs: normalize both operands so the divisor's
// top limb has its high bit set, estimate each quotient digit from the
// top two remainder limbs and the divisor's top limb, correct the
// estimate downward using the divisor's second limb, multiply-subtract,
// and add back once on underflow. This is a variable-time implementation
// only; it carries no constant-time (zcap) machinery since this
// repository makes no constant-time guarantees (see doc.go).
func (z nat) divLarge(u, uIn, v nat) (q, r nat) {
	n := len(v)
	m := len(uIn) - n

	if alias(z, uIn) || alias(z, v) {
		z = nil
	}
	q = z.make(m + 1)

	qhatvp := getNat(n + 1)
	qhatv := *qhatvp
	defer putNat(qhatvp)

	if alias(u, uIn) || alias(u, v) {
		u = nil
	}
	u = u.make(len(uIn) + 1)
	u.clear()

	// D1: normalize so v's top limb has its high bit set.
	shift := nlz(v[n-1])
	if shift > 0 {
		v1p := getNat(n)
		defer putNat(v1p)
		v1 := *v1p
		shlVU(v1, v, shift)
		v = v1
	}
	u[len(uIn)] = shlVU(u[0:len(uIn)], uIn, shift)

	// D2-D7: process one quotient digit per iteration, most significant
	// first.
	vn1 := v[n-1]
	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two remainder limbs.
		qhat := Word(_M)
		if ujn := u[j+n]; ujn != vn1 {
			var rhat Word
			qhat, rhat = divWW(ujn, u[j+n-1], vn1)

			vn2 := v[n-2]
			x1, x2 := mulWW(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat { // rhat overflowed a word: no further correction needed
					break
				}
				x1, x2 = mulWW(qhat, vn2)
			}
		}

		// D4: multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)
		c := subVV(u[j:j+len(qhatv)], u[j:], qhatv)
		if c != 0 {
			// D6: add back once; the estimate was one too large.
			c := addVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}

		q[j] = qhat
	}

	q = q.norm()
	// D8: unnormalize the remainder.
	shrVU(u, u, shift)
	r = u.norm()
	return q, r
}

// modW returns x mod d for a single-word divisor d.
func (x nat) modW(d Word) Word {
	var q nat
	q = q.make(len(x))
	return divWVW(q, 0, x, d)
}
