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

// evalFree evaluates coeffs[n]*z^n + ... + coeffs[1]*z + coeffs[0] using
// Horner's method: coeffs[0] + z*(coeffs[1] + z*(... + z*coeffs[n])).
func evalFree(c *quad.Context, z quad.Float128, coeffs []quad.Float128) quad.Float128 {
	n := len(coeffs) - 1
	y := coeffs[n]
	for i := n - 1; i >= 0; i-- {
		y = c.Add(c.Mul(y, z), coeffs[i])
	}
	return y
}

// evalMonic evaluates z^(n+1) + coeffs[n]*z^n + ... + coeffs[0], the monic
// polynomial whose leading coefficient is not stored.
func evalMonic(c *quad.Context, z quad.Float128, coeffs []quad.Float128) quad.Float128 {
	n := len(coeffs) - 1
	y := c.Add(z, coeffs[n])
	for i := n - 1; i >= 0; i-- {
		y = c.Add(c.Mul(y, z), coeffs[i])
	}
	return y
}

// eval returns num(z)/den(z) for the fit.
func (f *fit) eval(c *quad.Context, z quad.Float128) quad.Float128 {
	return c.Quo(evalFree(c, z, f.num), evalMonic(c, z, f.den))
}
