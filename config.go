package bigmath

// Algorithm thresholds, in limbs. These are calibrated on one
// microarchitecture class and should be treated as runtime- or
// build-time tunable rather than architectural constants, so they are
// package vars rather than consts.
var (
	// SchoolbookSqrThreshold is the operand length below which Sqr
	// dispatches to schoolbook multiplication of x*x rather than the
	// specialized squaring routine (doubling overhead doesn't pay off).
	SchoolbookSqrThreshold = 19

	// KaratsubaSqrThreshold is the operand length at or above which Sqr
	// uses Karatsuba squaring instead of the three-phase schoolbook
	// squaring routine.
	KaratsubaSqrThreshold = 84
)
