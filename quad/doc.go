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

// Package quad provides IEEE 754 quadruple precision (binary128) floating
// point in software.
//
// Float128 is a value type holding the raw 128-bit encoding. Arithmetic is
// performed through a Context, which plays the role of the C floating-point
// environment: it carries the rounding mode, the sticky exception flags and
// an errno-like error slot.
//
// # Arithmetic
//
// Correctly rounded in every rounding mode, with gradual underflow:
//   - Context.Add(x, y Float128) Float128
//   - Context.Sub(x, y Float128) Float128
//   - Context.Mul(x, y Float128) Float128
//   - Context.Quo(x, y Float128) Float128
//   - Context.Sqrt(x Float128) Float128
//
// # Transcendental functions
//
// Evaluated with 64 guard bits and rounded once:
//   - Context.Log(x Float128) Float128 - ln(x)
//   - Context.Sin(x Float128) Float128
//   - Context.Cos(x Float128) Float128
//   - Context.SinCos(x Float128) (sin, cos Float128)
//
// Trigonometric argument reduction is exact to working precision over the
// whole finite range, so Sin(MaxValue) is as accurate as Sin(1).
//
// # Example
//
//	var c quad.Context
//	x := quad.MustParse("0.1")
//	y := c.Mul(x, x)
//	if c.Flags()&quad.FlagInexact != 0 {
//		fmt.Println("0.01 is not a binary128 value:", y)
//	}
//
// The bessel subpackage builds the order-one Bessel functions on top of these
// primitives.
package quad
