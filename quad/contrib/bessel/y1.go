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

package bessel

import "github.com/ajroetker/go-quad/quad"

// Y1 returns the order-one Bessel function of the second kind, rounding to
// nearest. Exception signals are discarded; use Y1Context to observe them.
//
// Special cases are:
//
//	Y1(±Inf) = 0
//	Y1(0) = -Inf
//	Y1(x < 0) = NaN
//	Y1(NaN) = NaN
func Y1(x quad.Float128) quad.Float128 {
	return Y1Context(new(quad.Context), x)
}

// Y1Float64 returns Y1(x) evaluated in binary128 and rounded to float64.
func Y1Float64(x float64) float64 {
	return Y1(quad.FromFloat64(x)).Float64()
}

// Y1Context returns the order-one Bessel function of the second kind using
// the rounding mode of c, except that the region 0 < x <= 2 is always
// evaluated rounding to nearest. Arithmetic exceptions accumulate in c's
// flags. quad.ErrDomain is recorded for x < 0 and quad.ErrRange for x = 0 and
// for tiny x whose result overflows.
func Y1Context(c *quad.Context, x quad.Float128) quad.Float128 {
	switch classify(c, x, y1TinyMax, true) {
	case RegionNaN:
		return x
	case RegionInf:
		return quad.Zero
	case RegionNegative:
		c.SetErr(quad.ErrDomain)
		return c.Quo(quad.Zero, c.Mul(quad.Zero, x))
	case RegionZero:
		c.Raise(quad.FlagDivByZero)
		c.SetErr(quad.ErrRange)
		return quad.NegInf
	case RegionTiny:
		z := c.Quo(twoOverPi.Neg(), x)
		if z.IsInf(0) {
			c.SetErr(quad.ErrRange)
		}
		return z
	case RegionNear:
		return y1Near(c, x)
	case RegionExtreme:
		ss, _ := phase(c, x)
		return asymptotic(c, ss, x)
	}

	ss, cc := phase(c, x)
	p, q := auxiliary(c, x)
	return asymptotic(c, c.Add(c.Mul(p, ss), c.Mul(q, cc)), x)
}

// y1Near evaluates Y1(x) = 2/pi (log(x) J1(x) - 1/x) + x R(z), z = x^2, for
// 0 < x <= 2. The final sum cancels heavily near the zeros of Y1, so the
// whole evaluation rounds to nearest whatever the caller's mode.
func y1Near(c *quad.Context, x quad.Float128) quad.Float128 {
	defer c.SetRounding(c.SetRounding(quad.ToNearestEven))

	z := c.Mul(x, x)
	p := c.Quo(c.Mul(x, evalFree(c, z, y1NearFit.num)), evalMonic(c, z, y1NearFit.den))
	p = c.Add(c.Quo(twoOverPi.Neg(), x), p)
	return c.Add(c.Mul(c.Mul(twoOverPi, c.Log(x)), J1Context(c, x)), p)
}
