package bigmath

import "math/bits"

// nat is an unsigned multi-precision magnitude: a little-endian sequence
// of limbs (index 0 is least significant). It carries no sign; BigInt and
// MutableBigInt layer signed semantics on top of it. A nat is normalized
// when its highest limb is non-zero, or when it is empty (representing
// zero); kernel functions accept denormalized inputs where noted but
// always return normalized results.
//
// Every method here is a pure function of its receiver and arguments: it
// never retains a reference into a caller-owned slice beyond the call,
// and it reuses the receiver's backing array when there is room, the
// familiar "z.op(x, y)" capacity-reuse idiom used throughout this file.
type nat []Word

var (
	natZero = nat{}
	natOne  = nat{1}
	natTwo  = nat{2}
)

// norm trims leading (high-index) zero limbs and returns the normalized
// view. It never allocates.
func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// normalized reports whether z already satisfies the normal form.
func (z nat) normalized() bool {
	return len(z) == 0 || z[len(z)-1] != 0
}

// make returns a nat of length n, reusing z's backing array when it has
// enough capacity. This package makes no constant-time guarantees (see
// doc.go), so every operation here is free to be variable-time and to
// normalize eagerly.
func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n]
	}
	const headroom = 4
	return make(nat, n, n+headroom)
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setWord(x Word) nat {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z nat) setUint64(x uint64) nat {
	if w := Word(x); uint64(w) == x {
		return z.setWord(w)
	}
	z = z.make(2)
	z[0] = Word(x)
	z[1] = Word(x >> _W)
	return z.norm()
}

// uint64 returns the low 64 bits of z (zero-extended if shorter).
func (x nat) uint64() uint64 {
	var lo, hi Word
	if len(x) > 0 {
		lo = x[0]
	}
	if len(x) > 1 {
		hi = x[1]
	}
	return uint64(hi)<<_W | uint64(lo)
}

// cmp compares normalized x and y: -1, 0, +1.
func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	return cmpVV(x, y)
}

func (z nat) add(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return z.add(y, x)
	}
	if n == 0 {
		return z.set(x)
	}
	// m >= n > 0
	z = z.make(m + 1)
	c := addVV(z[:n], x[:n], y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub computes x - y and requires x >= y (the caller, the magnitude-level
// boundary in bigint.go/mutable.go, always arranges this by comparing
// operands first and swapping signs as needed).
func (z nat) sub(x, y nat) nat {
	m, n := len(x), len(y)
	if n == 0 {
		return z.set(x)
	}
	if m < n {
		panic("bigmath: nat.sub requires len(x) >= len(y)")
	}
	z = z.make(m)
	c := subVV(z[:n], x[:n], y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("bigmath: nat.sub underflow: x < y")
	}
	return z.norm()
}

// basicMul multiplies x and y into z using schoolbook row-by-row
// multiply-accumulate; z must have length len(x)+len(y). This is the
// only multiplication strategy Mul uses; Karatsuba is reserved for Sqr
// (see DESIGN.md).
func basicMul(z, x, y nat) {
	z[:len(x)+len(y)].clear()
	for i, yi := range y {
		if yi != 0 {
			z[i+len(x)] = addMulVVW(z[i:i+len(x)], x, yi)
		}
	}
}

func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

// mulAddWW sets z = x*y + r (y, r single words) and is the fast path for
// one-limb operands.
func (z nat) mulAddWW(x nat, y, r Word) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r)
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[:m], x, y, r)
	return z.norm()
}

// mul sets z = x*y. Dispatch: zero operand -> 0, single-limb operand ->
// multiply-accumulate row, otherwise schoolbook.
func (z nat) mul(x, y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, y[0], 0)
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m + n)
	basicMul(z, x, y)
	return z.norm()
}

// alias reports whether z and x share backing storage, the same check the
// teacher uses before reusing a receiver as scratch for its own inputs.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &(x[:cap(x)])[cap(x)-1] == &(y[:cap(y)])[cap(y)-1]
}

// mulRange computes the product of all integers in [a, b] inclusive,
// using a product tree (halving the range each level) so the operand
// sizes of intermediate multiplications stay balanced. Grounds
// BigInt.Factorial.
func (z nat) mulRange(a, b uint64) nat {
	switch {
	case a == 0:
		return z.setUint64(0)
	case a > b:
		return z.setUint64(1)
	case a == b:
		return z.setUint64(a)
	case a+1 == b:
		return z.mul(nat(nil).setUint64(a), nat(nil).setUint64(b))
	}
	m := a + (b-a)/2
	return z.mul(nat(nil).mulRange(a, m), nat(nil).mulRange(m+1, b))
}

// bitLen returns the length of x in bits; x need not be normalized.
func (x nat) bitLen() int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*_W + (_W - int(nlz(x[i])))
		}
	}
	return 0
}

// trailingZeroBits returns the count of consecutive zero bits from the
// least significant end of a non-zero x.
func (x nat) trailingZeroBits() uint {
	if len(x) == 0 {
		return 0
	}
	var i uint
	for x[i] == 0 {
		i++
	}
	return i*_W + ntz(x[i])
}

// countOneBits returns the number of set bits across all limbs.
func (x nat) countOneBits() int {
	n := 0
	for _, w := range x {
		n += bits.OnesCount32(uint32(w))
	}
	return n
}
