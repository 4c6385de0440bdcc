// Copyright 2025 go-quad Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quad

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Float128 represents an IEEE 754 quadruple-precision (binary128) floating-point
// number. It stores the raw encoding and provides float semantics through
// Context arithmetic.
//
// Format: Sign (1 bit) | Exponent (15 bits) | Mantissa (112 bits)
//
//	S | EEEEEEEEEEEEEEE | MMMM...MMMM
//
// Properties:
//   - Total bits: 128
//   - Exponent bits: 15 (bias: 16383)
//   - Mantissa bits: 112 (113 with the implicit leading bit)
//   - Max value: ~1.19e4932
//   - Min positive normal: 2^-16382 (~3.36e-4932)
//   - Min positive subnormal: 2^-16494 (~6.48e-4966)
//   - Precision: ~34 decimal digits
//
// Float128 is a comparable value type; two values are identical exactly when
// their bit patterns are.
type Float128 struct {
	hi, lo uint64
}

// Internal constants for the binary128 layout.
const (
	expBias    = 16383
	expMask    = 0x7FFF
	mantBits   = 112
	mantBitsHi = mantBits - 64
	signMask   = uint64(1) << 63
	fracMaskHi = uint64(1)<<mantBitsHi - 1
	quietBit   = uint64(1) << (mantBitsHi - 1)

	// prec is the significand precision including the implicit bit.
	prec = mantBits + 1

	// maxExp and minExp are the big.Float exponents (mant in [0.5, 1)) of
	// the largest finite value and the smallest normal value.
	maxExp = expBias + 1
	minExp = 2 - expBias

	// subnormalExp is the exponent of the smallest subnormal: 2^-16494.
	subnormalExp = 1 - expBias - mantBits
)

// Special values.
var (
	Zero              = Float128{}
	NegZero           = Float128{hi: signMask}
	One               = Float128{hi: expBias << mantBitsHi}
	Inf               = Float128{hi: expMask << mantBitsHi}
	NegInf            = Float128{hi: signMask | expMask<<mantBitsHi}
	NaN               = Float128{hi: expMask<<mantBitsHi | quietBit} // canonical quiet NaN
	MaxValue          = Float128{hi: (expMask-1)<<mantBitsHi | fracMaskHi, lo: math.MaxUint64}
	SmallestNormal    = Float128{hi: 1 << mantBitsHi}
	SmallestSubnormal = Float128{lo: 1}
)

// NextUp returns the least Float128 greater than x.
//
// Special cases are:
//
//	NextUp(±0) = SmallestSubnormal
//	NextUp(MaxValue) = +Inf
//	NextUp(+Inf) = +Inf
//	NextUp(-Inf) = -MaxValue
//	NextUp(NaN) = NaN
func NextUp(x Float128) Float128 {
	switch {
	case x.IsNaN() || x.IsInf(1):
		return x
	case x.IsZero():
		return SmallestSubnormal
	case x.Signbit():
		return x.dec()
	}
	return x.inc()
}

// NextDown returns the greatest Float128 less than x. NextDown(x) is
// -NextUp(-x).
func NextDown(x Float128) Float128 {
	return NextUp(x.Neg()).Neg()
}

// inc and dec step the magnitude encoding by one unit in the last place.
// The carry from the fraction into the exponent field moves to the next
// binade, and past MaxValue to Inf.
func (x Float128) inc() Float128 {
	x.lo++
	if x.lo == 0 {
		x.hi++
	}
	return x
}

func (x Float128) dec() Float128 {
	if x.lo == 0 {
		x.hi--
	}
	x.lo--
	return x
}

// FromBits returns the Float128 with the given high and low 64-bit words.
func FromBits(hi, lo uint64) Float128 {
	return Float128{hi: hi, lo: lo}
}

// Bits returns the high and low 64-bit words of the encoding of x.
func (x Float128) Bits() (hi, lo uint64) {
	return x.hi, x.lo
}

func (x Float128) biasedExp() int {
	return int(x.hi>>mantBitsHi) & expMask
}

func (x Float128) fracIsZero() bool {
	return x.hi&fracMaskHi == 0 && x.lo == 0
}

// IsNaN reports whether x is a NaN.
func (x Float128) IsNaN() bool {
	return x.biasedExp() == expMask && !x.fracIsZero()
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func (x Float128) IsInf(sign int) bool {
	if x.biasedExp() != expMask || !x.fracIsZero() {
		return false
	}
	return sign == 0 || (sign > 0) == !x.Signbit()
}

// IsFinite reports whether x is neither NaN nor an infinity.
func (x Float128) IsFinite() bool {
	return x.biasedExp() != expMask
}

// IsZero reports whether x is +0 or -0.
func (x Float128) IsZero() bool {
	return x.hi&^signMask == 0 && x.lo == 0
}

// IsSubnormal reports whether x is a nonzero value below SmallestNormal.
func (x Float128) IsSubnormal() bool {
	return x.biasedExp() == 0 && !x.IsZero()
}

// Signbit reports whether x is negative or negative zero.
func (x Float128) Signbit() bool {
	return x.hi&signMask != 0
}

// Neg returns x with its sign flipped. It never rounds or raises flags.
func (x Float128) Neg() Float128 {
	return Float128{hi: x.hi ^ signMask, lo: x.lo}
}

// Abs returns x with its sign cleared. It never rounds or raises flags.
func (x Float128) Abs() Float128 {
	return Float128{hi: x.hi &^ signMask, lo: x.lo}
}

// Quiet returns x with the quiet bit set if x is a NaN, and x otherwise.
func (x Float128) Quiet() Float128 {
	if x.IsNaN() {
		x.hi |= quietBit
	}
	return x
}

// significand returns the integer significand and the exponent of a finite x,
// such that |x| = sig * 2^exp.
func (x Float128) significand() (*big.Int, int) {
	sig := new(big.Int).SetUint64(x.hi & fracMaskHi)
	sig.Lsh(sig, 64)
	sig.Or(sig, new(big.Int).SetUint64(x.lo))
	e := x.biasedExp()
	if e == 0 {
		e = 1
	} else {
		sig.SetBit(sig, mantBits, 1)
	}
	return sig, e - expBias - mantBits
}

// Big returns the exact value of x as a *big.Float with 113 bits of precision.
// It panics with a big.ErrNaN if x is a NaN.
func (x Float128) Big() *big.Float {
	return x.setBig(new(big.Float))
}

func (x Float128) setBig(z *big.Float) *big.Float {
	if x.IsNaN() {
		panic(big.ErrNaN{})
	}
	z.SetPrec(prec).SetMode(big.ToNearestEven)
	if x.biasedExp() == expMask {
		return z.SetInf(x.Signbit())
	}
	sig, e := x.significand()
	z.SetInt(sig)
	z.SetMantExp(z, e)
	if x.Signbit() {
		z.Neg(z)
	}
	return z
}

// FromBig returns v rounded to the nearest Float128, ties to even.
func FromBig(v *big.Float) Float128 {
	r, _ := fromBig(v, ToNearestEven)
	return r
}

// FromFloat64 returns the Float128 equal to f. The conversion is exact.
func FromFloat64(f float64) Float128 {
	if math.IsNaN(f) {
		if math.Signbit(f) {
			return NaN.Neg()
		}
		return NaN
	}
	return FromBig(big.NewFloat(f))
}

// FromInt returns the Float128 equal to i. The conversion is exact.
func FromInt(i int64) Float128 {
	return FromBig(new(big.Float).SetInt64(i))
}

// Float64 returns x rounded to the nearest float64, ties to even.
func (x Float128) Float64() float64 {
	if x.IsNaN() {
		return math.NaN()
	}
	f, _ := x.Big().Float64()
	return f
}

// Parse converts s into the nearest Float128, ties to even. It accepts
// decimal and hexadecimal (0x1p-58) floating-point literals as understood by
// big.ParseFloat, plus "NaN", "Inf", "+Inf", "-Inf" and "Infinity" in any case.
func Parse(s string) (Float128, error) {
	t := strings.TrimSpace(s)
	neg := strings.HasPrefix(t, "-")
	switch strings.ToLower(strings.TrimLeft(t, "+-")) {
	case "nan":
		if neg {
			return NaN.Neg(), nil
		}
		return NaN, nil
	case "inf", "infinity":
		if neg {
			return NegInf, nil
		}
		return Inf, nil
	}
	v, _, err := big.ParseFloat(t, 0, parsePrec, big.ToNearestEven)
	if err != nil {
		return NaN, fmt.Errorf("quad: parse %q: %w", s, err)
	}
	return FromBig(v), nil
}

// parsePrec is wide enough that decimal input is rounded to binary128 from a
// value already correct to far more bits than the final rounding keeps.
const parsePrec = 320

// MustParse is like Parse but panics if s cannot be parsed.
// It simplifies initialization of package-level constants.
func MustParse(s string) Float128 {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// String returns x formatted with enough significant digits (36) to identify
// it uniquely.
func (x Float128) String() string {
	return x.Text('g', 36)
}

// Text converts x to a string according to the given format and precision,
// as (*big.Float).Text does.
func (x Float128) Text(format byte, precision int) string {
	switch {
	case x.IsNaN():
		return "NaN"
	case x.IsInf(1):
		return "+Inf"
	case x.IsInf(-1):
		return "-Inf"
	}
	return x.Big().Text(format, precision)
}

// Format implements fmt.Formatter. It accepts the formats understood by
// (*big.Float).Format; NaN prints as "NaN".
func (x Float128) Format(s fmt.State, verb rune) {
	if x.IsNaN() {
		fmt.Fprint(s, "NaN")
		return
	}
	x.Big().Format(s, verb)
}

// Equal reports whether x == y under IEEE 754 rules: NaN is unequal to
// everything and +0 equals -0.
func (x Float128) Equal(y Float128) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.cmp(y) == 0
}

// Less reports whether x < y. It is false if either operand is a NaN.
func (x Float128) Less(y Float128) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.cmp(y) < 0
}

// LessEq reports whether x <= y. It is false if either operand is a NaN.
func (x Float128) LessEq(y Float128) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return x.cmp(y) <= 0
}

// cmp orders two non-NaN values.
func (x Float128) cmp(y Float128) int {
	if x.IsZero() && y.IsZero() {
		return 0
	}
	xs, ys := x.Signbit(), y.Signbit()
	if xs != ys {
		if xs {
			return -1
		}
		return 1
	}
	c := cmpMag(x, y)
	if xs {
		return -c
	}
	return c
}

// cmpMag compares |x| and |y|. The sign-magnitude layout orders finite
// magnitudes and infinity the same way as their unsigned encodings.
func cmpMag(x, y Float128) int {
	xh, yh := x.hi&^signMask, y.hi&^signMask
	switch {
	case xh < yh:
		return -1
	case xh > yh:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}
