package bigmath

import "github.com/rs/zerolog"

// debugLog is the package's injectable logger for internal invariant
// violations. It defaults to a no-op so the hot arithmetic path never
// pays for logging unless a caller opts in. Never written to directly
// from the kernel (C1); only the boundary helpers in errors.go consult it
// before turning a recovered invariant panic into an *Error.
var debugLog zerolog.Logger = zerolog.Nop()

// SetLogger installs the logger used to report internal invariant
// failures. Pass zerolog.Nop() to silence it again. Not safe to call
// concurrently with in-flight operations, matching the rest of the
// package's single-owner concurrency model.
func SetLogger(l zerolog.Logger) {
	debugLog = l
}

// logInvariant records a recovered internal invariant violation at debug
// level before the public call site converts it to an *Error. op names
// the failing public method; detail is the recovered panic value.
func logInvariant(op string, detail interface{}) {
	debugLog.Debug().Str("op", op).Interface("detail", detail).Msg("bigmath: internal invariant violated")
}
