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

import (
	"math"
	"testing"

	"github.com/ajroetker/go-quad/quad"
)

func ints(v ...int64) []quad.Float128 {
	c := make([]quad.Float128, len(v))
	for i, n := range v {
		c[i] = quad.FromInt(n)
	}
	return c
}

// TestEvalFree tests Horner evaluation with coefficients low-degree first.
func TestEvalFree(t *testing.T) {
	// 1 + 2z + 3z^2
	coeffs := ints(1, 2, 3)
	tests := []struct {
		z, want int64
	}{
		{0, 1},
		{1, 6},
		{2, 17},
		{-1, 2},
	}

	var c quad.Context
	for _, tt := range tests {
		got := evalFree(&c, quad.FromInt(tt.z), coeffs)
		if got != quad.FromInt(tt.want) {
			t.Errorf("evalFree(%d) = %v, want %d", tt.z, got, tt.want)
		}
	}

	if got := evalFree(&c, quad.FromInt(7), ints(5)); got != quad.FromInt(5) {
		t.Errorf("constant polynomial: got %v", got)
	}
}

// TestEvalMonic tests Horner evaluation with an implicit leading 1.
func TestEvalMonic(t *testing.T) {
	// z^3 + 3z^2 + 2z + 1
	coeffs := ints(1, 2, 3)
	tests := []struct {
		z, want int64
	}{
		{0, 1},
		{1, 7},
		{2, 25},
		{-1, 1},
	}

	var c quad.Context
	for _, tt := range tests {
		got := evalMonic(&c, quad.FromInt(tt.z), coeffs)
		if got != quad.FromInt(tt.want) {
			t.Errorf("evalMonic(%d) = %v, want %d", tt.z, got, tt.want)
		}
	}

	// z + 4
	if got := evalMonic(&c, quad.FromInt(3), ints(4)); got != quad.FromInt(7) {
		t.Errorf("linear monic: got %v", got)
	}
}

// TestEvalPropagation tests that non-finite inputs propagate per IEEE rules.
func TestEvalPropagation(t *testing.T) {
	var c quad.Context
	coeffs := ints(1, 2, 3)
	if got := evalFree(&c, quad.NaN, coeffs); !got.IsNaN() {
		t.Errorf("evalFree(NaN) = %v", got)
	}
	if got := evalMonic(&c, quad.NaN, coeffs); !got.IsNaN() {
		t.Errorf("evalMonic(NaN) = %v", got)
	}
	if got := evalFree(&c, quad.Inf, coeffs); !got.IsInf(1) {
		t.Errorf("evalFree(Inf) = %v", got)
	}
	if got := evalMonic(&c, quad.NegInf, coeffs); !got.IsInf(-1) {
		t.Errorf("evalMonic(-Inf) = %v", got)
	}
	if c.Flags()&quad.FlagInvalid != 0 {
		t.Errorf("unexpected invalid flag: %v", c.Flags())
	}
}

// TestFitTables checks the shape of every coefficient table.
func TestFitTables(t *testing.T) {
	fits := map[string]*fit{"j1Near": &j1NearFit, "y1Near": &y1NearFit}
	for k, g := range farGroups {
		fits["p"+(RegionFar0 + Region(k)).String()] = g.p
		fits["q"+(RegionFar0 + Region(k)).String()] = g.q
	}
	if len(fits) != 18 {
		t.Fatalf("got %d fits, want 18", len(fits))
	}

	for name, f := range fits {
		if len(f.num) < 2 || len(f.den) < 2 {
			t.Errorf("%s: %d numerator and %d denominator coefficients", name, len(f.num), len(f.den))
		}
		if !(f.lo < f.hi) {
			t.Errorf("%s: empty interval [%v, %v]", name, f.lo, f.hi)
		}
		if f.peak <= 0 || f.peak > 1e-34 {
			t.Errorf("%s: peak relative error %v out of range", name, f.peak)
		}
		for i, v := range append(append([]quad.Float128{}, f.num...), f.den...) {
			if !v.IsFinite() || v.IsZero() {
				t.Errorf("%s: coefficient %d is %v", name, i, v)
			}
		}
	}
}

// TestNearFitsMatchSeries checks the near-region rational fits against the
// leading Taylor terms at small z, where the fits must reduce to them.
func TestNearFitsMatchSeries(t *testing.T) {
	var c quad.Context
	z := quad.MustParse("0x1p-40")

	// J1(x) = x/2 - x^3/16 + ..., so R(0) = -1/16.
	r := j1NearFit.eval(&c, z).Float64()
	if math.Abs(r+1.0/16) > 1e-10 {
		t.Errorf("J1 near fit at z=0: got %v, want -1/16", r)
	}

	// Y1(x) = 2/pi (log(x) J1(x) - 1/x) - (log 2 + (1-2 gamma)/2) x/pi + O(x^3 log x),
	// so R(0) = (2 gamma - 1 - 2 log 2) / (2 pi).
	const gamma = 0.57721566490153286060651209008240243
	want := (2*gamma - 1 - 2*math.Ln2) / (2 * math.Pi)
	r = y1NearFit.eval(&c, z).Float64()
	if math.Abs(r-want) > 1e-10 {
		t.Errorf("Y1 near fit at z=0: got %v, want %v", r, want)
	}
}
