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

// Package bessel provides the Bessel functions of order one, J1 and Y1, for
// binary128 (quad.Float128) arguments, accurate to about 1e-34.
//
// # Functions
//
// Round-to-nearest entry points (exception signals are discarded):
//   - J1(x Float128) Float128 - Bessel function of the first kind, order one
//   - Y1(x Float128) Float128 - Bessel function of the second kind, order one
//
// Context entry points honour the caller's rounding mode and record
// exception flags and ErrDomain/ErrRange on the quad.Context:
//   - J1Context(c *quad.Context, x Float128) Float128
//   - Y1Context(c *quad.Context, x Float128) Float128
//
// Float64 convenience wrappers evaluate in binary128 and round once:
//   - J1Float64(x float64) float64
//   - Y1Float64(x float64) float64
//
// # Algorithm
//
// The domain splits at |x| = 2. Below it a rational minimax fit in z = x^2
// gives
//
//	J1(x) = x/2 + x z R(z)
//	Y1(x) = 2/pi (log(x) J1(x) - 1/x) + x R(z)
//
// Above it the asymptotic form
//
//	J1(x) = sqrt(2/(pi x)) (P1(x) cos(X) - Q1(x) sin(X)),  X = x - 3 pi/4
//	Y1(x) = sqrt(2/(pi x)) (P1(x) sin(X) + Q1(x) cos(X))
//
// uses auxiliary functions P1 and Q1 fitted on eight equal segments of 1/x in
// (0, 1/2]. sin(X) and cos(X) are formed from sin(x) and cos(x) and corrected
// with cos(2x) to avoid cancellation. Beyond 2^256 only the leading term of
// the expansion is kept.
//
// # Special cases
//
//   - J1(NaN) = Y1(NaN) = NaN
//   - J1(±Inf) = Y1(±Inf) = 0
//   - J1(±0) = ±0
//   - J1(-x) = -J1(x)
//   - Y1(0) = -Inf (FlagDivByZero, ErrRange)
//   - Y1(x < 0) = NaN (FlagInvalid, ErrDomain)
//   - J1(x) for |x| <= 2^-58 is x/2; ErrRange when that underflows to zero
//   - Y1(x) for 0 < x <= 2^-114 is -(2/pi)/x; ErrRange when that overflows
//
// All functions are safe for concurrent use; the coefficient tables are
// read-only and every call keeps its state in its own quad.Context.
package bessel
