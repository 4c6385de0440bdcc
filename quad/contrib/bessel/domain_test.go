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
	"github.com/google/go-cmp/cmp"
)

// TestClassify tests the region each function routes an argument to.
func TestClassify(t *testing.T) {
	tests := []struct {
		x      string
		j1, y1 Region
	}{
		{"nan", RegionNaN, RegionNaN},
		{"inf", RegionInf, RegionInf},
		{"-inf", RegionInf, RegionInf},
		{"0", RegionZero, RegionZero},
		{"-0", RegionZero, RegionZero},
		{"-1", RegionNear, RegionNegative},
		{"-100", RegionFar0, RegionNegative},
		{"0x1p-16494", RegionTiny, RegionTiny},
		{"0x1p-114", RegionTiny, RegionTiny},
		{"0x1.0000000000000000000000000001p-114", RegionTiny, RegionNear},
		{"0x1p-58", RegionTiny, RegionNear},
		{"0x1.0000000000000000000000000001p-58", RegionNear, RegionNear},
		{"1", RegionNear, RegionNear},
		{"2", RegionNear, RegionNear},
		{"2.25", RegionFar7, RegionFar7},
		{"2.5", RegionFar6, RegionFar6},
		{"3", RegionFar5, RegionFar5},
		{"3.5", RegionFar4, RegionFar4},
		{"4", RegionFar3, RegionFar3},
		{"5", RegionFar3, RegionFar3},
		{"6", RegionFar2, RegionFar2},
		{"8", RegionFar1, RegionFar1},
		{"12", RegionFar1, RegionFar1},
		{"16", RegionFar0, RegionFar0},
		{"1e70", RegionFar0, RegionFar0},
		{"0x1p256", RegionFar0, RegionFar0},
		{"0x1.0000000000000000000000000001p256", RegionExtreme, RegionExtreme},
		{"-1e100", RegionExtreme, RegionNegative},
		{"1e4000", RegionExtreme, RegionExtreme},
	}

	for _, tt := range tests {
		t.Run(tt.x, func(t *testing.T) {
			x := quad.MustParse(tt.x)
			if got := ClassifyJ1(x); got != tt.j1 {
				t.Errorf("ClassifyJ1(%s): got %v, want %v", tt.x, got, tt.j1)
			}
			if got := ClassifyY1(x); got != tt.y1 {
				t.Errorf("ClassifyY1(%s): got %v, want %v", tt.x, got, tt.y1)
			}
		})
	}
}

// TestThresholds tests the reciprocal-argument ladder.
func TestThresholds(t *testing.T) {
	want := []float64{0.0625, 0.125, 0.1875, 0.25, 0.3125, 0.375, 0.4375, 0.5}
	if diff := cmp.Diff(want, Thresholds()); diff != "" {
		t.Errorf("Thresholds() mismatch (-want +got):\n%s", diff)
	}

	// Each far group's fits cover exactly the segment ending at its bound.
	lo := 0.0
	for k, g := range farGroups {
		bound := g.bound.Float64()
		for _, f := range []*fit{g.p, g.q} {
			if f.lo != lo || f.hi != bound {
				t.Errorf("group %d: fit covers [%v, %v], want [%v, %v]", k, f.lo, f.hi, lo, bound)
			}
		}
		lo = bound
	}
}

// TestSelectFarBoundaries checks that a reciprocal exactly on a bound selects
// the lower group, and one ulp above selects the next.
func TestSelectFarBoundaries(t *testing.T) {
	for k, g := range farGroups {
		if got := selectFar(g.bound); got != k {
			t.Errorf("selectFar(%v): got %d, want %d", g.bound, got, k)
		}
		if k == len(farGroups)-1 {
			continue
		}
		if got := selectFar(quad.NextUp(g.bound)); got != k+1 {
			t.Errorf("selectFar(NextUp(%v)): got %d, want %d", g.bound, got, k+1)
		}
	}
	if got := selectFar(quad.SmallestSubnormal); got != 0 {
		t.Errorf("selectFar(tiny): got %d, want 0", got)
	}
	// 1/x for x just above 2 rounds to 1/2 or just below; both use the last group.
	if got := selectFar(quad.MustParse("0.5")); got != len(farGroups)-1 {
		t.Errorf("selectFar(0.5): got %d", got)
	}
}

// TestContinuity checks that J1 and Y1 agree across every region boundary
// in x: the near/far split at 2 and each ladder bound 1/t.
func TestContinuity(t *testing.T) {
	const tol = 1e-31
	var c quad.Context
	for k, g := range farGroups {
		x0 := c.Quo(quad.One, g.bound)
		below, above := x0, x0
		for range 4 {
			below = quad.NextDown(below)
			above = quad.NextUp(above)
		}

		wantBelow := RegionFar0 + Region(k+1)
		if k == len(farGroups)-1 {
			wantBelow = RegionNear
		}
		if got := ClassifyJ1(below); got != wantBelow {
			t.Errorf("ClassifyJ1(%v): got %v, want %v", below, got, wantBelow)
		}
		if got := ClassifyJ1(above); got != RegionFar0+Region(k) {
			t.Errorf("ClassifyJ1(%v): got %v, want %v", above, got, RegionFar0+Region(k))
		}

		for _, f := range []struct {
			name string
			fn   func(quad.Float128) quad.Float128
		}{{"J1", J1}, {"Y1", Y1}} {
			lo, hi := f.fn(below), f.fn(above)
			d, _ := c.Sub(hi, lo).Big().Float64()
			if math.Abs(d) > tol {
				t.Errorf("%s jumps by %.3g across x = %v (%v to %v)", f.name, d, x0, lo, hi)
			}
		}
	}
}

// TestRegionString tests region names and the Far accessor.
func TestRegionString(t *testing.T) {
	tests := []struct {
		r    Region
		want string
	}{
		{RegionNaN, "nan"},
		{RegionTiny, "tiny"},
		{RegionNear, "near"},
		{RegionFar0, "far[16,inf)"},
		{RegionFar7, "far(2,16/7]"},
		{RegionExtreme, "extreme"},
		{Region(-1), "Region(-1)"},
		{RegionExtreme + 1, "Region(15)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Region(%d).String(): got %q, want %q", int(tt.r), got, tt.want)
		}
	}

	for k := range 8 {
		r := RegionFar0 + Region(k)
		if got, ok := r.Far(); !ok || got != k {
			t.Errorf("%v.Far() = %d, %v; want %d, true", r, got, ok, k)
		}
	}
	for _, r := range []Region{RegionNear, RegionExtreme, RegionTiny} {
		if _, ok := r.Far(); ok {
			t.Errorf("%v.Far() should report false", r)
		}
	}
}

func TestBoundaries(t *testing.T) {
	b := Boundaries()
	if len(b) != 11 {
		t.Fatalf("len(Boundaries()) = %d, want 11", len(b))
	}
	for i := 1; i < len(b); i++ {
		if !b[i-1].Less(b[i]) {
			t.Errorf("Boundaries not ascending at %d: %v >= %v", i, b[i-1], b[i])
		}
	}

	exact := map[int]string{0: "0x1p-114", 1: "0x1p-58", 2: "2", 3: "2.285714285714285714285714285714285604", 4: "2.666666666666666666666666666666666538", 9: "16", 10: "0x1p256"}
	for i, s := range exact {
		if want := quad.MustParse(s); !b[i].Equal(want) {
			t.Errorf("Boundaries()[%d] = %v, want %v", i, b[i], want)
		}
	}

	// Every boundary changes the path of at least one function within a
	// few ulps.
	for _, x := range b {
		lo, hi := x, x
		for range 4 {
			lo, hi = quad.NextDown(lo), quad.NextUp(hi)
		}
		if ClassifyJ1(lo) == ClassifyJ1(hi) && ClassifyY1(lo) == ClassifyY1(hi) {
			t.Errorf("no region change near %v: J1 %v, Y1 %v", x, ClassifyJ1(x), ClassifyY1(x))
		}
	}
}
