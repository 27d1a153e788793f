// Package bigmath implements arbitrary-precision signed integer
// arithmetic: an immutable BigInt, an in-place MutableBigInt
// accumulator, Barrett/Montgomery modular reduction via ModContext, a
// Baillie-PSW primality test, and modular inverse.
//
// The magnitude kernel (nat and its supporting files) is variable-time
// throughout; this package does not attempt to resist timing side
// channels and should not be used to process secret values in an
// adversarial setting.
package bigmath
