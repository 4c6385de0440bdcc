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

var (
	half          = quad.MustParse("0.5")
	threeEighths  = quad.MustParse("0.375")
	oneOverSqrtPi = quad.MustParse("5.6418958354775628694807945156077258584405e-1")
	twoOverPi     = quad.MustParse("6.3661977236758134307553505349005744813784e-1")

	// halfMax is the largest xx for which xx+xx does not overflow.
	halfMax = new(quad.Context).Quo(quad.MaxValue, quad.FromInt(2))
)

// phase returns sqrt(2) sin(X) and sqrt(2) cos(X) for X = xx - 3 pi/4:
//
//	cos(X) = (sin(xx) - cos(xx)) / sqrt(2)
//	sin(X) = -(sin(xx) + cos(xx)) / sqrt(2)
//
// One of the two sums cancels badly near its zeros. Since
// (-(s+c)) * (s-c) = cos(2 xx), the cancelling one is recomputed as a
// quotient of cos(2 xx) by the other whenever 2 xx is finite; s*c > 0 means
// s and c have the same sign and s-c is the one that cancels.
func phase(c *quad.Context, xx quad.Float128) (ss, cc quad.Float128) {
	s, co := c.SinCos(xx)
	ss = c.Sub(s.Neg(), co)
	cc = c.Sub(s, co)
	if xx.LessEq(halfMax) {
		z := c.Cos(c.Add(xx, xx))
		if quad.Zero.Less(c.Mul(s, co)) {
			cc = c.Quo(z, ss)
		} else {
			ss = c.Quo(z, cc)
		}
	}
	return ss, cc
}

// auxiliary returns P1(xx) and Q1(xx) for 2 < xx <= 2^256 using the far
// group selected by 1/xx.
func auxiliary(c *quad.Context, xx quad.Float128) (p, q quad.Float128) {
	xinv := c.Quo(quad.One, xx)
	z := c.Mul(xinv, xinv)
	g := &farGroups[selectFar(xinv)]
	p = g.p.eval(c, z)
	q = g.q.eval(c, z)

	// P1 = 1 + z R(z), Q1 = (0.375 + z R(z)) / xx
	p = c.Add(quad.One, c.Mul(z, p))
	q = c.Mul(z, q)
	q = c.Add(c.Mul(q, xinv), c.Mul(threeEighths, xinv))
	return p, q
}

// asymptotic returns (1/sqrt(pi)) * v / sqrt(xx), which is sqrt(2/(pi xx))
// times v/sqrt(2) for the phase terms v produced by phase.
func asymptotic(c *quad.Context, v, xx quad.Float128) quad.Float128 {
	return c.Quo(c.Mul(oneOverSqrtPi, v), c.Sqrt(xx))
}
