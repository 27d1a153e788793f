package bigmath

// ModInverse returns x such that a*x ≡ 1 (mod m), via the iterative
// extended Euclidean algorithm. m must be positive; it fails with
// NotInvertible when gcd(a, m) != 1.
func ModInverse(a, m *BigInt) (inv *BigInt, err error) {
	if m.sign == Negative || len(m.mag) == 0 {
		return nil, newError("ModInverse", NegativeModulus, "modulus must be positive")
	}
	defer guard("ModInverse", &err)

	aMod, err := Mod(a, m)
	if err != nil {
		return nil, err
	}

	oldR, r := m, aMod
	oldT, t := FromInt64(0), FromInt64(1)

	for !r.IsZero() {
		q, err := Quo(oldR, r)
		if err != nil {
			return nil, err
		}
		oldR, r = r, Sub(oldR, Mul(q, r))
		oldT, t = t, Sub(oldT, Mul(q, t))
	}

	if oldR.CmpInt64(1) != 0 {
		return nil, newError("ModInverse", NotInvertible, "")
	}
	return Mod(oldT, m)
}
