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
	"fmt"

	"github.com/ajroetker/go-quad/quad"
)

// Region identifies the evaluation path an argument is routed to.
type Region int

const (
	// RegionNaN is a NaN argument, returned unchanged.
	RegionNaN Region = iota

	// RegionInf is an infinite argument; the result is 0.
	RegionInf

	// RegionZero is ±0.
	RegionZero

	// RegionNegative is x < 0 for Y1, outside its domain.
	RegionNegative

	// RegionTiny is |x| <= 2^-58 for J1 and 0 < x <= 2^-114 for Y1, where a
	// single term of the series is exact to working precision.
	RegionTiny

	// RegionNear is the rest of |x| <= 2, covered by one rational fit.
	RegionNear

	// RegionFar0 through RegionFar7 split 2 < |x| <= 2^256 by 1/|x| into
	// segments of width 1/16: RegionFarK covers K/16 <= 1/|x| <= (K+1)/16.
	RegionFar0
	RegionFar1
	RegionFar2
	RegionFar3
	RegionFar4
	RegionFar5
	RegionFar6
	RegionFar7

	// RegionExtreme is |x| > 2^256, where only the leading asymptotic term
	// is significant.
	RegionExtreme
)

var regionNames = [...]string{
	RegionNaN:      "nan",
	RegionInf:      "inf",
	RegionZero:     "zero",
	RegionNegative: "negative",
	RegionTiny:     "tiny",
	RegionNear:     "near",
	RegionFar0:     "far[16,inf)",
	RegionFar1:     "far[8,16]",
	RegionFar2:     "far[16/3,8]",
	RegionFar3:     "far[4,16/3]",
	RegionFar4:     "far[16/5,4]",
	RegionFar5:     "far[8/3,16/5]",
	RegionFar6:     "far[16/7,8/3]",
	RegionFar7:     "far(2,16/7]",
	RegionExtreme:  "extreme",
}

// String returns a short name for the region.
func (r Region) String() string {
	if r < 0 || int(r) >= len(regionNames) {
		return fmt.Sprintf("Region(%d)", int(r))
	}
	return regionNames[r]
}

// Far reports whether r is one of RegionFar0 through RegionFar7, and which.
func (r Region) Far() (k int, ok bool) {
	if r < RegionFar0 || r > RegionFar7 {
		return 0, false
	}
	return int(r - RegionFar0), true
}

// farGroup pairs the P1 and Q1 fits valid for 1/|x| up to bound.
type farGroup struct {
	bound quad.Float128
	p, q  *fit
}

// farGroups is searched in ascending order of bound. Boundaries are inclusive
// on the lower segment, so 1/|x| exactly on a bound always selects the same
// group. The last group also absorbs 1/|x| rounded up to 1/2.
var farGroups = [...]farGroup{
	{bound: quad.MustParse("0.0625"), p: &pFar0, q: &qFar0},
	{bound: quad.MustParse("0.125"), p: &pFar1, q: &qFar1},
	{bound: quad.MustParse("0.1875"), p: &pFar2, q: &qFar2},
	{bound: quad.MustParse("0.25"), p: &pFar3, q: &qFar3},
	{bound: quad.MustParse("0.3125"), p: &pFar4, q: &qFar4},
	{bound: quad.MustParse("0.375"), p: &pFar5, q: &qFar5},
	{bound: quad.MustParse("0.4375"), p: &pFar6, q: &qFar6},
	{bound: quad.MustParse("0.5"), p: &pFar7, q: &qFar7},
}

// Thresholds returns the reciprocal-argument ladder of the far region in
// ascending order.
func Thresholds() []float64 {
	t := make([]float64, len(farGroups))
	for i, g := range farGroups {
		t[i] = g.bound.Float64()
	}
	return t
}

// selectFar returns the index of the far group for xinv = 1/|x|.
func selectFar(xinv quad.Float128) int {
	for k := range farGroups[:len(farGroups)-1] {
		if xinv.LessEq(farGroups[k].bound) {
			return k
		}
	}
	return len(farGroups) - 1
}

// Boundary constants.
var (
	j1TinyMax  = quad.MustParse("0x1p-58")
	y1TinyMax  = quad.MustParse("0x1p-114")
	nearMax    = quad.FromInt(2)
	extremeMin = quad.MustParse("0x1p256")
)

// Boundaries returns, in ascending order, every positive argument at which J1
// or Y1 switches evaluation path: the two tiny cutoffs, 2, the reciprocals of
// the far ladder bounds rounded to nearest, and the extreme cutoff.
func Boundaries() []quad.Float128 {
	var c quad.Context
	b := []quad.Float128{y1TinyMax, j1TinyMax}
	for k := len(farGroups) - 1; k >= 0; k-- {
		b = append(b, c.Quo(quad.One, farGroups[k].bound))
	}
	return append(b, extremeMin)
}

// classify routes x for J1 (tiny = j1TinyMax) or Y1 (tiny = y1TinyMax,
// negative arguments rejected). The far segment is chosen from 1/|x| as
// rounded in c, exactly as the evaluation computes it.
func classify(c *quad.Context, x, tiny quad.Float128, rejectNegative bool) Region {
	switch {
	case x.IsNaN():
		return RegionNaN
	case x.IsInf(0):
		return RegionInf
	case x.IsZero():
		return RegionZero
	case rejectNegative && x.Signbit():
		return RegionNegative
	}
	xx := x.Abs()
	switch {
	case xx.LessEq(tiny):
		return RegionTiny
	case xx.LessEq(nearMax):
		return RegionNear
	case extremeMin.Less(xx):
		return RegionExtreme
	}
	return RegionFar0 + Region(selectFar(c.Quo(quad.One, xx)))
}

// ClassifyJ1 reports the region J1 evaluates x in under round-to-nearest.
func ClassifyJ1(x quad.Float128) Region {
	return classify(new(quad.Context), x, j1TinyMax, false)
}

// ClassifyY1 reports the region Y1 evaluates x in under round-to-nearest.
func ClassifyY1(x quad.Float128) Region {
	return classify(new(quad.Context), x, y1TinyMax, true)
}
