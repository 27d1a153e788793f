package bigmath

// sqr sets z = x*x using a tiered dispatch: below
// SchoolbookSqrThreshold limbs, squaring folds into the generic
// multiplier (with 1- and 2-limb cases computed directly rather than by
// a full schoolbook pass); between the schoolbook and Karatsuba
// thresholds, a three-phase schoolbook squaring avoids recomputing
// symmetric cross terms; at or above the Karatsuba threshold, Karatsuba
// squaring takes over.
func (z nat) sqr(x nat) nat {
	n := len(x)
	switch {
	case n == 0:
		return z[:0]
	case n == 1:
		hi, lo := mulWW(x[0], x[0])
		z = z.make(2)
		z[0], z[1] = lo, hi
		return z.norm()
	case n == 2:
		return z.sqr2(x[0], x[1])
	case n < SchoolbookSqrThreshold:
		return z.mul(x, x)
	case n < KaratsubaSqrThreshold:
		return z.schoolbookSqr(x)
	default:
		return z.karatsubaSqr(x)
	}
}

// sqr2 squares a 2-limb operand directly: (x1*B+x0)^2 = x0^2 +
// 2*x0*x1*B + x1^2*B^2, using a 64-bit product (mulWW) for each term
// in place of a software 128-bit multiply.
func (z nat) sqr2(x0, x1 Word) nat {
	hi0, lo0 := mulWW(x0, x0)
	hiC, loC := mulWW(x0, x1)
	crossTop := hiC >> (_W - 1)
	crossHi := hiC<<1 | loC>>(_W-1)
	crossLo := loC << 1
	hi1, lo1 := mulWW(x1, x1)

	z = z.make(4)
	var c1, c2, c3 uint32
	z[0] = lo0
	z[1], c1 = addC(hi0, crossLo, 0)
	z[2], c2 = addC(crossHi, lo1, c1)
	z[3], c3 = addC(hi1, crossTop, c2)
	if c3 != 0 {
		panic("bigmath: sqr2 overflow")
	}
	return z.norm()
}

func addC(a, b Word, c uint32) (Word, uint32) {
	s := uint64(a) + uint64(b) + uint64(c)
	return Word(s), uint32(s >> _W)
}

// addToAt adds the single word w into z starting at limb index pos,
// propagating any carry upward. Used by schoolbookSqr to accumulate
// partial products directly into their column without an intermediate
// per-term allocation.
func addToAt(z nat, pos int, w Word) {
	for w != 0 && pos < len(z) {
		s, c := addC(z[pos], w, 0)
		z[pos] = s
		w = Word(c)
		pos++
	}
}

// schoolbookSqr squares a in three linear phases: accumulate cross terms
// a[i]*a[j] for i<j, double the accumulated vector once, then add the
// diagonal terms a[i]^2.
func (z nat) schoolbookSqr(a nat) nat {
	n := len(a)
	if alias(z, a) {
		z = nil
	}
	z = z.make(2 * n)
	z.clear()

	// Phase 1: cross terms, each counted once.
	for i := 0; i < n; i++ {
		if a[i] == 0 {
			continue
		}
		for j := i + 1; j < n; j++ {
			hi, lo := mulWW(a[i], a[j])
			addToAt(z, i+j, lo)
			addToAt(z, i+j+1, hi)
		}
	}

	// Phase 2: double the cross-term accumulation in a single pass.
	if c := shlVU(z, z, 1); c != 0 {
		panic("bigmath: schoolbookSqr: cross-term doubling overflowed")
	}

	// Phase 3: add the diagonal terms a[i]^2.
	for i := 0; i < n; i++ {
		hi, lo := mulWW(a[i], a[i])
		addToAt(z, 2*i, lo)
		addToAt(z, 2*i+1, hi)
	}

	return z.norm()
}

// karatsubaSqr squares a via Karatsuba: split a into high/low halves,
// recursively square each half, square the sum of the halves, and derive
// the cross term 2*a0*a1 by subtracting the two half-squares from that
// middle square.
func (z nat) karatsubaSqr(a nat) nat {
	n := len(a)
	k0 := n / 2
	k1 := n - k0
	a0, a1 := a[:k0], a[k0:]

	if alias(z, a) {
		z = nil
	}
	z = z.make(2 * n)

	var z0, z2 nat
	z0 = z0.sqr(a0) // length <= 2*k0
	z2 = z2.sqr(a1) // length <= 2*k1

	z.clear()
	copy(z[0:len(z0)], z0)
	copy(z[2*k0:2*k0+len(z2)], z2)

	// Save copies of the two half-squares: the addAt below will
	// overwrite the region they occupy before we're done needing them.
	savedLen := 2 * n
	savedP := getNat(savedLen)
	saved := *savedP
	defer putNat(savedP)
	copy(saved, z[:savedLen])

	sp := getNat(k1 + 1)
	s := *sp
	defer putNat(sp)
	s = s.add(a0, a1)

	var s2 nat
	s2 = s2.sqr(s)

	// t = a0^2 + a1^2 (as plain integers, not column-aligned).
	tp := getNat(savedLen)
	t := *tp
	defer putNat(tp)
	t = t.add(saved[:2*k0].norm(), saved[2*k0:savedLen].norm())

	// z1 = s2 - t = 2*a0*a1.
	var z1 nat
	z1 = z1.sub(s2.norm(), t)

	addAt(z, z1, k0)

	return z.norm()
}

// addAt implements z += x<<(_W*i) in place; z must be long enough to
// absorb the carry.
func addAt(z, x nat, i int) {
	if n := len(x); n > 0 {
		if c := addVV(z[i:i+n], z[i:i+n], x); c != 0 {
			j := i + n
			for c != 0 && j < len(z) {
				s, cc := addC(z[j], c, 0)
				z[j] = s
				c = Word(cc)
				j++
			}
		}
	}
}
