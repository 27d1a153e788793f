package bigmath

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind distinguishes the typed failures a public operation can
// surface. Internal kernels assume validated inputs; only the public
// boundary (BigInt, MutableBigInt, ModContext, primality, modInv) returns
// errors of this shape.
type ErrorKind int

const (
	// DivideByZero: divisor is zero in / or %, or a zero modulus in
	// ModContext construction.
	DivideByZero ErrorKind = iota
	// NotInvertible: modInv when gcd(a, m) != 1.
	NotInvertible
	// NegativeExponent: pow/modPow called with a negative exponent.
	NegativeExponent
	// NegativeModulus: mod(n) called with n <= 0.
	NegativeModulus
	// NegativeInput: primality or isqrt called on a negative value.
	NegativeInput
	// BadFormat: malformed text or byte input.
	BadFormat
	// OutOfDomain: negative bit index, negative shift amount, negative
	// bit-mask width.
	OutOfDomain
	// Invariant: an internal invariant was violated; this can only follow
	// from a bug in the library itself, never from a caller's input.
	Invariant
)

func (k ErrorKind) String() string {
	switch k {
	case DivideByZero:
		return "divide by zero"
	case NotInvertible:
		return "not invertible"
	case NegativeExponent:
		return "negative exponent"
	case NegativeModulus:
		return "negative modulus"
	case NegativeInput:
		return "negative input"
	case BadFormat:
		return "bad format"
	case OutOfDomain:
		return "out of domain"
	case Invariant:
		return "internal invariant violated"
	default:
		return "unknown error"
	}
}

// Error is the typed failure surfaced at the public boundary. Callers that
// need to branch on the failure kind should use errors.As with this type,
// or the Kind helper below.
type Error struct {
	Kind ErrorKind
	Op   string // operation that failed, e.g. "ModContext.ModPow"
	msg  string
}

func (e *Error) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("bigmath: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("bigmath: %s: %s: %s", e.Op, e.Kind, e.msg)
}

func newError(op string, kind ErrorKind, msg string) error {
	return errors.WithStack(&Error{Op: op, Kind: kind, msg: msg})
}

// Kind extracts the ErrorKind from err, if err (or something it wraps) is
// an *Error. The second return is false otherwise.
func Kind(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// invariantf builds an *Error of kind Invariant. It is returned, never
// panicked, by every public operation; unexported kernel helpers may still
// panic on conditions that validated, well-formed inputs can never trigger
// (e.g. a borrow escaping a subtraction whose operand ordering the caller
// already guaranteed). See logging.go for how those are surfaced for
// debugging before the panic unwinds the public call.
func invariantf(op, format string, args ...interface{}) error {
	return newError(op, Invariant, fmt.Sprintf(format, args...))
}

// guard is deferred at the top of public operations that can only panic
// through a library bug (a borrow escaping a subtraction, an index out of
// a kernel's workspace). It converts the recovered panic into an
// Invariant error, after logging it, so a caller sees a typed failure
// distinct from the user-facing error kinds instead of an unwinding
// stack.
func guard(op string, errp *error) {
	if r := recover(); r != nil {
		logInvariant(op, r)
		*errp = invariantf(op, "%v", r)
	}
}
