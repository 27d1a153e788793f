package bigmath

import (
	"strconv"
	"strings"
)

// decimalChunk is the largest power of ten that fits in a single limb,
// used to convert to/from decimal in base-10^9 groups instead of
// digit-by-digit.
const decimalChunk = 1_000_000_000

// FromString parses a signed integer literal: an optional leading '+'
// or '-', then either decimal digits or a "0x"/"0X"-prefixed hex
// literal, with '_' permitted anywhere between digits as a separator.
func FromString(s string) (*BigInt, error) {
	const op = "FromString"
	defaultStats.Inc("construct.from_string")
	orig := s
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	hex := false
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		hex = true
		s = s[2:]
	}
	if !validSeparators(s, hex) {
		return nil, newError(op, BadFormat, orig)
	}
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return nil, newError(op, BadFormat, orig)
	}

	var mag nat
	if hex {
		m, err := parseHexDigits(s)
		if err != nil {
			return nil, newError(op, BadFormat, orig)
		}
		mag = m
	} else {
		m, err := parseDecimalDigits(s)
		if err != nil {
			return nil, newError(op, BadFormat, orig)
		}
		mag = m
	}

	sign := NonNegative
	if neg {
		sign = Negative
	}
	return newBigInt(sign, mag), nil
}

// validSeparators enforces the '_' placement rules: a separator sits
// between digits, never leading (except immediately after a hex
// prefix's final character), never trailing, never doubled.
func validSeparators(body string, afterHexPrefix bool) bool {
	if body == "" {
		return false
	}
	if !afterHexPrefix && body[0] == '_' {
		return false
	}
	if body[len(body)-1] == '_' {
		return false
	}
	return !strings.Contains(body, "__")
}

func parseDecimalDigits(s string) (nat, error) {
	acc := nat(nil)
	for i := 0; i < len(s); {
		n := len(s) - i
		if n > 9 {
			n = 9
		}
		chunk, err := strconv.ParseUint(s[i:i+n], 10, 64)
		if err != nil {
			return nil, err
		}
		pow := uint64(1)
		for k := 0; k < n; k++ {
			pow *= 10
		}
		acc = acc.mul(acc, nat(nil).setUint64(pow))
		acc = acc.add(acc, nat(nil).setUint64(chunk))
		i += n
	}
	return acc.norm(), nil
}

func parseHexDigits(s string) (nat, error) {
	acc := nat(nil)
	for i := 0; i < len(s); i += 8 {
		n := len(s) - i
		if n > 8 {
			n = 8
		}
		chunk, err := strconv.ParseUint(s[i:i+n], 16, 64)
		if err != nil {
			return nil, err
		}
		shift := uint(n) * 4
		acc = acc.shl(acc, shift)
		acc = acc.add(acc, nat(nil).setUint64(chunk))
	}
	return acc.norm(), nil
}

// String renders x in decimal.
func (x *BigInt) String() string {
	digits := toDecimalString(x.mag)
	if x.sign == Negative && digits != "0" {
		return "-" + digits
	}
	return digits
}

// HexFormat configures ToHexString: casing, an arbitrary prefix and
// suffix wrapped around the digits ("0x", "#", "["+"]", or none), and a
// minimum digit count reached by zero-padding. The sign always precedes
// the prefix.
type HexFormat struct {
	Upper     bool
	Prefix    string
	Suffix    string
	MinDigits int
}

// DefaultHexFormat is lowercase with a "0x" prefix and no padding.
var DefaultHexFormat = HexFormat{Prefix: "0x"}

// ToHexString renders |x| in hex per f, preceded by '-' for negative x.
func (x *BigInt) ToHexString(f HexFormat) string {
	digits := toHexString(x.mag)
	if f.Upper {
		digits = strings.ToUpper(digits)
	}
	if pad := f.MinDigits - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	var sb strings.Builder
	if x.sign == Negative {
		sb.WriteByte('-')
	}
	sb.WriteString(f.Prefix)
	sb.WriteString(digits)
	sb.WriteString(f.Suffix)
	return sb.String()
}

func toDecimalString(mag nat) string {
	if len(mag) == 0 {
		return "0"
	}
	m := append(nat(nil), mag...)
	var chunks []Word
	for len(m) > 0 {
		var r Word
		m, r = nat(nil).divW(m, decimalChunk)
		chunks = append(chunks, r)
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(chunks[len(chunks)-1]), 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		sb.WriteString(strconv.FormatUint(uint64(chunks[i])+1_000_000_000, 10)[1:])
	}
	return sb.String()
}

func toHexString(mag nat) string {
	if len(mag) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(mag[len(mag)-1]), 16))
	for i := len(mag) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(mag[i])|0x100000000, 16)
		sb.WriteString(s[1:])
	}
	return sb.String()
}

// MagnitudeBytesBE returns the minimal-length big-endian unsigned byte
// encoding of |x|.
func (x *BigInt) MagnitudeBytesBE() []byte {
	if len(x.mag) == 0 {
		return []byte{}
	}
	buf := make([]byte, len(x.mag)*_S)
	i := x.mag.bytesBE(buf)
	return append([]byte(nil), buf[i:]...)
}

// FromMagnitudeBytesBE constructs a BigInt from a sign flag and a
// big-endian unsigned magnitude.
func FromMagnitudeBytesBE(neg bool, b []byte) *BigInt {
	defaultStats.Inc("construct.from_bytes")
	sign := NonNegative
	if neg {
		sign = Negative
	}
	return newBigInt(sign, nat(nil).setBytesBE(b))
}

// MagnitudeBytesLE returns the minimal-length little-endian unsigned
// byte encoding of |x|.
func (x *BigInt) MagnitudeBytesLE() []byte {
	return reverseBytes(x.MagnitudeBytesBE())
}

// FromMagnitudeBytesLE constructs a BigInt from a sign flag and a
// little-endian unsigned magnitude.
func FromMagnitudeBytesLE(neg bool, b []byte) *BigInt {
	return FromMagnitudeBytesBE(neg, reverseBytes(b))
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// TwosComplementBytesBE encodes x into exactly size bytes of big-endian
// two's complement, failing with BadFormat if x does not fit.
func (x *BigInt) TwosComplementBytesBE(size int) ([]byte, error) {
	if size <= 0 {
		return nil, newError("TwosComplementBytesBE", OutOfDomain, "size must be positive")
	}
	limit, _ := WithSetBit(size*8 - 1) // 2^(size*8-1): one past the max magnitude that fits
	if x.sign == NonNegative {
		if Cmp(x, limit) >= 0 {
			return nil, newError("TwosComplementBytesBE", BadFormat, "value does not fit in size bytes")
		}
	} else if Cmp(x.Abs(), limit) > 0 {
		return nil, newError("TwosComplementBytesBE", BadFormat, "value does not fit in size bytes")
	}

	var mag nat
	if x.sign == NonNegative {
		mag = x.mag
	} else {
		full := nat(nil).shl(natOne, uint(size*8))
		mag = nat(nil).sub(full, x.mag)
	}

	buf := make([]byte, size)
	writeBigEndian(buf, mag)
	return buf, nil
}

// FromTwosComplementBytesBE decodes a big-endian two's-complement byte
// string, treating an empty slice as zero.
func FromTwosComplementBytesBE(b []byte) *BigInt {
	defaultStats.Inc("construct.from_bytes")
	if len(b) == 0 {
		return zeroBigInt
	}
	u := nat(nil).setBytesBE(b)
	if b[0]&0x80 == 0 {
		return newBigInt(NonNegative, u)
	}
	full := nat(nil).shl(natOne, uint(len(b)*8))
	return newBigInt(Negative, nat(nil).sub(full, u))
}

// TwosComplementBytesLE encodes x into exactly size bytes of
// little-endian two's complement.
func (x *BigInt) TwosComplementBytesLE(size int) ([]byte, error) {
	b, err := x.TwosComplementBytesBE(size)
	if err != nil {
		return nil, err
	}
	return reverseBytes(b), nil
}

// FromTwosComplementBytesLE decodes a little-endian two's-complement
// byte string, treating an empty slice as zero.
func FromTwosComplementBytesLE(b []byte) *BigInt {
	return FromTwosComplementBytesBE(reverseBytes(b))
}

// writeBigEndian writes mag into buf as a fixed-width big-endian
// unsigned integer, left-padding with zero bytes. Unlike nat.bytesBE it
// does not require len(buf) to be a multiple of the limb width.
func writeBigEndian(buf []byte, mag nat) {
	for i := len(buf) - 1; i >= 0; i-- {
		pos := len(buf) - 1 - i
		limbIdx := pos / _S
		shift := uint(pos%_S) * 8
		var w Word
		if limbIdx < len(mag) {
			w = mag[limbIdx]
		}
		buf[i] = byte(w >> shift)
	}
}

// LittleEndianLimbs returns x's sign and its magnitude as little-endian
// 32-bit limbs, an interchange format for passing a BigInt's value
// across a process or serialization boundary.
func (x *BigInt) LittleEndianLimbs() (neg bool, limbs []uint32) {
	limbs = make([]uint32, len(x.mag))
	for i, w := range x.mag {
		limbs[i] = uint32(w)
	}
	return x.sign == Negative, limbs
}
