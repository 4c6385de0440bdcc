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

import "math/big"

// finish rounds v in the context's rounding mode and accumulates the flags.
// v must be exact or carry a sticky bit.
func (c *Context) finish(v *big.Float) Float128 {
	r, f := fromBig(v, c.mode)
	c.flags |= f
	return r
}

// finishApprox rounds v, an approximation of an irrational result carried to
// far more than workPrec bits.
func (c *Context) finishApprox(v *big.Float) Float128 {
	t, acc := truncate(v)
	if acc == big.Exact {
		acc = big.Below
	}
	return c.finish(sticky(t, acc))
}

// invalid raises FlagInvalid and returns the canonical NaN.
func (c *Context) invalid() Float128 {
	c.flags |= FlagInvalid
	return NaN
}

// pickNaN returns the quiet form of the first NaN operand.
func pickNaN(x, y Float128) Float128 {
	if x.IsNaN() {
		return x.Quiet()
	}
	return y.Quiet()
}

// exactZeroSign returns the sign of an exact zero sum: -0 only when rounding
// downward or when both operands are -0.
func (c *Context) exactZeroSign(x, y Float128) Float128 {
	if (x.Signbit() && y.Signbit() && x.IsZero() && y.IsZero()) || c.mode == Downward {
		return NegZero
	}
	return Zero
}

// Add returns x+y rounded in the context's rounding mode.
//
// Special cases are:
//
//	Add(+Inf, -Inf) = NaN (FlagInvalid)
//	Add(x, NaN) = Add(NaN, x) = NaN
func (c *Context) Add(x, y Float128) Float128 {
	switch {
	case x.IsNaN() || y.IsNaN():
		return pickNaN(x, y)
	case x.IsInf(0) && y.IsInf(0):
		if x.Signbit() != y.Signbit() {
			return c.invalid()
		}
		return x
	case x.IsInf(0):
		return x
	case y.IsInf(0):
		return y
	case x.IsZero() && y.IsZero():
		return c.exactZeroSign(x, y)
	case x.IsZero():
		return y
	case y.IsZero():
		return x
	}
	z := new(big.Float).SetPrec(workPrec).SetMode(big.ToZero)
	z.Add(x.Big(), y.Big())
	if z.Sign() == 0 {
		return c.exactZeroSign(x, y)
	}
	return c.finish(sticky(z, z.Acc()))
}

// Sub returns x-y rounded in the context's rounding mode.
func (c *Context) Sub(x, y Float128) Float128 {
	if y.IsNaN() {
		return pickNaN(x, y)
	}
	return c.Add(x, y.Neg())
}

// Mul returns x*y rounded in the context's rounding mode.
//
// Special cases are:
//
//	Mul(±0, ±Inf) = Mul(±Inf, ±0) = NaN (FlagInvalid)
//	Mul(x, NaN) = Mul(NaN, x) = NaN
func (c *Context) Mul(x, y Float128) Float128 {
	neg := x.Signbit() != y.Signbit()
	switch {
	case x.IsNaN() || y.IsNaN():
		return pickNaN(x, y)
	case (x.IsInf(0) && y.IsZero()) || (x.IsZero() && y.IsInf(0)):
		return c.invalid()
	case x.IsInf(0) || y.IsInf(0):
		return signed(Inf, neg)
	case x.IsZero() || y.IsZero():
		return signed(Zero, neg)
	}
	// The product of two 113-bit significands is exact in 226 bits.
	z := new(big.Float).SetPrec(2 * prec).Mul(x.Big(), y.Big())
	return c.finish(z)
}

// Quo returns x/y rounded in the context's rounding mode.
//
// Special cases are:
//
//	Quo(±0, ±0) = Quo(±Inf, ±Inf) = NaN (FlagInvalid)
//	Quo(x, ±0) = ±Inf for finite nonzero x (FlagDivByZero)
//	Quo(x, NaN) = Quo(NaN, x) = NaN
func (c *Context) Quo(x, y Float128) Float128 {
	neg := x.Signbit() != y.Signbit()
	switch {
	case x.IsNaN() || y.IsNaN():
		return pickNaN(x, y)
	case (x.IsZero() && y.IsZero()) || (x.IsInf(0) && y.IsInf(0)):
		return c.invalid()
	case x.IsInf(0):
		return signed(Inf, neg)
	case y.IsZero():
		c.flags |= FlagDivByZero
		return signed(Inf, neg)
	case x.IsZero() || y.IsInf(0):
		return signed(Zero, neg)
	}
	z := new(big.Float).SetPrec(workPrec).SetMode(big.ToZero)
	z.Quo(x.Big(), y.Big())
	return c.finish(sticky(z, z.Acc()))
}

// Sqrt returns the square root of x rounded in the context's rounding mode.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN (FlagInvalid)
//	Sqrt(NaN) = NaN
func (c *Context) Sqrt(x Float128) Float128 {
	switch {
	case x.IsNaN():
		return x.Quiet()
	case x.IsZero():
		return x
	case x.Signbit():
		return c.invalid()
	case x.IsInf(1):
		return x
	}
	// Scale the significand so its integer square root has more than
	// workPrec bits and the exponent stays even.
	sig, exp := x.significand()
	shift := 2*workPrec + 2 - sig.BitLen()
	if (exp-shift)%2 != 0 {
		shift++
	}
	n := sig.Lsh(sig, uint(shift))
	root := new(big.Int).Sqrt(n)
	acc := big.Exact
	if new(big.Int).Mul(root, root).Cmp(n) != 0 {
		acc = big.Below
	}
	v := new(big.Float).SetInt(root)
	v.SetMantExp(v, (exp-shift)/2)
	return c.finish(sticky(v, acc))
}

// signed returns |x| with the sign bit set when neg is true.
func signed(x Float128, neg bool) Float128 {
	x = x.Abs()
	if neg {
		return x.Neg()
	}
	return x
}
