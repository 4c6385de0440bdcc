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

// reductionGuard is the precision kept after subtracting k*pi/2 beyond the
// working precision. It covers the cancellation when x lies close to a
// multiple of pi/2.
const reductionGuard = 192

// SinCos returns sin(x) and cos(x), each rounded once.
//
// Special cases are:
//
//	SinCos(±0) = ±0, 1
//	SinCos(±Inf) = NaN, NaN (FlagInvalid)
//	SinCos(NaN) = NaN, NaN
func (c *Context) SinCos(x Float128) (sin, cos Float128) {
	switch {
	case x.IsNaN():
		return x.Quiet(), x.Quiet()
	case x.IsInf(0):
		nan := c.invalid()
		return nan, nan
	case x.IsZero():
		return x, One
	}
	s, co := sinCosBig(x.Big(), extPrec)
	return c.finishApprox(s), c.finishApprox(co)
}

// Sin returns sin(x). Special cases match SinCos.
func (c *Context) Sin(x Float128) Float128 {
	s, _ := c.SinCos(x)
	return s
}

// Cos returns cos(x). Special cases match SinCos.
func (c *Context) Cos(x Float128) Float128 {
	_, co := c.SinCos(x)
	return co
}

// sinCosBig returns sin v and cos v for finite nonzero v to about p bits.
//
// Algorithm: |v| = k*pi/2 + r with |r| <= pi/4, using pi carried to enough
// bits that r keeps p+reductionGuard significant bits even for |v| near
// MaxValue. The quadrant k mod 4 then permutes and negates the Taylor
// series values of sin r and cos r.
func sinCosBig(v *big.Float, p uint) (sin, cos *big.Float) {
	a := new(big.Float).Abs(v)
	w := p + reductionGuard
	if e := a.MantExp(nil); e > 0 {
		w += uint(e)
	}

	halfPi := new(big.Float).SetPrec(w).Set(pi(w))
	halfPi.SetMantExp(halfPi, -1)

	// k = floor(a/(pi/2) + 1/2)
	q := new(big.Float).SetPrec(w).Quo(a, halfPi)
	q.Add(q, half)
	k, _ := q.Int(nil)

	prod := new(big.Float).SetPrec(w + uint(k.BitLen())).SetInt(k)
	prod.Mul(prod, halfPi)
	r := new(big.Float).SetPrec(w).Sub(a, prod)

	sr, cr := taylorSinCos(r, p+32)
	switch k.Bit(0) | k.Bit(1)<<1 {
	case 0:
		sin, cos = sr, cr
	case 1:
		sin, cos = cr, sr.Neg(sr)
	case 2:
		sin, cos = sr.Neg(sr), cr.Neg(cr)
	default:
		sin, cos = cr.Neg(cr), sr
	}
	if v.Signbit() {
		sin.Neg(sin)
	}
	return sin, cos
}

// taylorSinCos sums the Taylor series of sin r and cos r to p bits.
// |r| <= pi/4 keeps the number of terms near p/5.
func taylorSinCos(r *big.Float, p uint) (sin, cos *big.Float) {
	sin = new(big.Float).SetPrec(p).Set(r)
	cos = new(big.Float).SetPrec(p).SetInt64(1)
	if r.Sign() == 0 {
		return sin, cos
	}

	r2 := new(big.Float).SetPrec(p).Mul(r, r)
	r2.Neg(r2)
	st := new(big.Float).SetPrec(p).Set(r)
	ct := new(big.Float).SetPrec(p).SetInt64(1)
	d := new(big.Float).SetPrec(p)
	sinDone, cosDone := false, false
	for n := int64(1); !sinDone || !cosDone; n++ {
		// st = (-1)^n r^(2n+1)/(2n+1)!, ct = (-1)^n r^(2n)/(2n)!
		if !cosDone {
			ct.Mul(ct, r2)
			ct.Quo(ct, d.SetInt64((2*n-1)*(2*n)))
			cosDone = negligible(ct, cos, p)
			cos.Add(cos, ct)
		}
		if !sinDone {
			st.Mul(st, r2)
			st.Quo(st, d.SetInt64((2*n)*(2*n+1)))
			sinDone = negligible(st, sin, p)
			sin.Add(sin, st)
		}
	}
	return sin, cos
}

// negligible reports whether adding term to sum can no longer change sum at
// p bits of precision.
func negligible(term, sum *big.Float, p uint) bool {
	return term.Sign() == 0 || term.MantExp(nil) < sum.MantExp(nil)-int(p)-2
}
