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
	"math"
	"math/big"
)

// workPrec is the precision of intermediate results that are later marked
// with a sticky bit and rounded to binary128. Two bits beyond prec hold the
// round and sticky information; the third absorbs the sticky bit itself.
const workPrec = prec + 3

var (
	mask64 = new(big.Int).SetUint64(math.MaxUint64)
	half   = big.NewFloat(0.5)
	bigOne = big.NewFloat(1)
)

// sticky returns a value that rounds to binary128 exactly as the true result
// would, given v, the true result truncated toward zero, and its accuracy.
// When v is inexact a 1 bit is appended below its last place, which puts the
// value strictly between v and the next value at v's precision.
func sticky(v *big.Float, acc big.Accuracy) *big.Float {
	if acc == big.Exact || v.IsInf() || v.Sign() == 0 {
		return v
	}
	p := v.Prec()
	exp := v.MantExp(nil)
	bit := new(big.Float).SetMantExp(bigOne, exp-int(p)-1)
	if v.Signbit() {
		bit.Neg(bit)
	}
	return new(big.Float).SetPrec(p+1).Add(v, bit)
}

// truncate returns v truncated toward zero to workPrec bits, with its accuracy.
func truncate(v *big.Float) (*big.Float, big.Accuracy) {
	t := new(big.Float).SetPrec(workPrec).SetMode(big.ToZero).Set(v)
	return t, t.Acc()
}

// fromBig rounds v to binary128 using mode and reports the exception flags
// the rounding raises. v must be exact or carry a sticky bit (see sticky).
func fromBig(v *big.Float, mode RoundingMode) (Float128, Flags) {
	neg := v.Signbit()
	var sign uint64
	if neg {
		sign = signMask
	}
	switch {
	case v.IsInf():
		return Float128{hi: sign | Inf.hi}, 0
	case v.Sign() == 0:
		return Float128{hi: sign}, 0
	}

	exp := v.MantExp(nil)
	if exp < minExp {
		return fromBigTiny(v, mode, sign)
	}
	if exp > maxExp {
		return overflow(neg, mode), FlagOverflow | FlagInexact
	}

	r := new(big.Float).SetPrec(prec).SetMode(mode.big()).Set(v)
	var flags Flags
	if r.Acc() != big.Exact {
		flags = FlagInexact
	}
	exp = r.MantExp(nil)
	if exp > maxExp {
		return overflow(neg, mode), FlagOverflow | FlagInexact
	}

	// |r| = sig * 2^(exp-prec) with sig in [2^112, 2^113).
	sig, _ := new(big.Float).SetMantExp(r.Abs(r), prec-exp).Int(nil)
	x := fromSignificand(sig)
	x.hi = x.hi&fracMaskHi | sign | uint64(exp-1+expBias)<<mantBitsHi
	return x, flags
}

// fromBigTiny rounds a value below the smallest normal onto the subnormal
// grid of multiples of 2^-16494. Rounding up to 2^112 units yields the
// smallest normal, whose encoding is the same integer.
func fromBigTiny(v *big.Float, mode RoundingMode, sign uint64) (Float128, Flags) {
	neg := sign != 0
	scaled := new(big.Float).SetMantExp(v, -subnormalExp)
	scaled.Abs(scaled)
	units, acc := scaled.Int(nil)
	if acc == big.Exact {
		x := fromSignificand(units)
		x.hi |= sign
		return x, 0
	}

	frac := new(big.Float).SetPrec(scaled.Prec()).Sub(scaled, new(big.Float).SetInt(units))
	up := false
	switch mode {
	case ToNearestEven:
		c := frac.Cmp(half)
		up = c > 0 || (c == 0 && units.Bit(0) == 1)
	case Upward:
		up = !neg
	case Downward:
		up = neg
	}
	if up {
		units.Add(units, big.NewInt(1))
	}
	x := fromSignificand(units)
	x.hi |= sign
	return x, FlagUnderflow | FlagInexact
}

// fromSignificand splits sig, at most 2^113-1, into the two encoding words.
// Bit 112 lands in the lowest exponent bit.
func fromSignificand(sig *big.Int) Float128 {
	lo := new(big.Int).And(sig, mask64).Uint64()
	hi := new(big.Int).Rsh(sig, 64).Uint64()
	return Float128{hi: hi, lo: lo}
}

// overflow returns the result of rounding a value beyond MaxValue.
func overflow(neg bool, mode RoundingMode) Float128 {
	toInf := true
	switch mode {
	case TowardZero:
		toInf = false
	case Upward:
		toInf = !neg
	case Downward:
		toInf = neg
	}
	r := MaxValue
	if toInf {
		r = Inf
	}
	if neg {
		r = r.Neg()
	}
	return r
}
