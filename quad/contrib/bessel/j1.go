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

// J1 returns the order-one Bessel function of the first kind, rounding to
// nearest. Exception signals are discarded; use J1Context to observe them.
//
// Special cases are:
//
//	J1(±Inf) = 0
//	J1(±0) = ±0
//	J1(NaN) = NaN
func J1(x quad.Float128) quad.Float128 {
	return J1Context(new(quad.Context), x)
}

// J1Float64 returns J1(x) evaluated in binary128 and rounded to float64.
func J1Float64(x float64) float64 {
	return J1(quad.FromFloat64(x)).Float64()
}

// J1Context returns the order-one Bessel function of the first kind using
// the rounding mode of c. Arithmetic exceptions accumulate in c's flags;
// quad.ErrRange is recorded when a tiny argument's result underflows to 0.
func J1Context(c *quad.Context, x quad.Float128) quad.Float128 {
	r := classify(c, x, j1TinyMax, false)
	switch r {
	case RegionNaN:
		return x
	case RegionInf:
		return quad.Zero
	case RegionZero:
		return x
	case RegionTiny:
		ret := c.Mul(x, half)
		c.CheckUnderflow(ret)
		if ret.IsZero() {
			c.SetErr(quad.ErrRange)
		}
		return ret
	}

	xx := x.Abs()
	var v quad.Float128
	if r == RegionNear {
		v = j1Near(c, xx)
	} else {
		ss, cc := phase(c, xx)
		if r == RegionExtreme {
			v = asymptotic(c, cc, xx)
		} else {
			p, q := auxiliary(c, xx)
			v = asymptotic(c, c.Sub(c.Mul(p, cc), c.Mul(q, ss)), xx)
		}
	}
	if x.Signbit() {
		v = v.Neg()
	}
	return v
}

// j1Near evaluates J1(xx) = xx/2 + xx z R(z), z = xx^2, for 0 < xx <= 2.
func j1Near(c *quad.Context, xx quad.Float128) quad.Float128 {
	z := c.Mul(xx, xx)
	p := c.Quo(c.Mul(c.Mul(xx, z), evalFree(c, z, j1NearFit.num)), evalMonic(c, z, j1NearFit.den))
	return c.Add(p, c.Mul(half, xx))
}
