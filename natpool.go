package bigmath

import "sync"

// natPool recycles the scratch nats that Karatsuba squaring and Knuth
// Algorithm D division take from it, so those buffers are reused across
// calls instead of reallocated; Karatsuba squaring's other temporaries
// are still allocated per call.
var natPool sync.Pool

func getNat(n int) *nat {
	var z *nat
	if v := natPool.Get(); v != nil {
		z = v.(*nat)
	}
	if z == nil {
		z = new(nat)
		defaultStats.Inc("resize.scratch.alloc")
	} else if n > cap(*z) {
		defaultStats.Inc("resize.scratch.grow")
	}
	*z = z.make(n)
	return z
}

func putNat(z *nat) {
	natPool.Put(z)
}
