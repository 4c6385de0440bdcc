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

// Package sweep checks the structural properties of the binary128 Bessel
// functions over a grid of arguments in parallel.
//
// A sweep evaluates J1 and Y1 at Points logarithmically spaced arguments in
// [Lo, Hi] and verifies, at each one:
//
//   - J1(-x) has exactly the bits of -J1(x)
//   - Y1(-x) is NaN with FlagInvalid and ErrDomain recorded
//   - repeated calls return identical bits
//   - the result agrees with math.J1 and math.Y1 to float64 accuracy
//
// It then evaluates both functions a few ulps either side of every argument
// at which the evaluation path changes and verifies the values are
// continuous there.
package sweep

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/ajroetker/go-quad/quad"
	"github.com/ajroetker/go-quad/quad/contrib/bessel"
	"github.com/ajroetker/go-quad/quad/contrib/workerpool"
	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
	"sigs.k8s.io/yaml"
)

// Default grid.
const (
	DefaultPoints = 1024
	DefaultLo     = 1e-6
	DefaultHi     = 1e6
)

const (
	// float64Tol bounds the disagreement with math.J1 and math.Y1, absolute
	// below 1 and relative above.
	float64Tol = 1e-13

	// continuityTol bounds the jump across a path boundary, absolute below 1
	// and relative above.
	continuityTol = 1e-30

	// continuityUlps is how many ulps either side of a boundary are compared.
	continuityUlps = 4

	batchSize   = 16
	maxFailures = 32
)

// ErrBadRange is returned for a grid that is empty or not strictly positive.
var ErrBadRange = errors.New("sweep: grid must satisfy 0 < lo < hi")

// Config selects the grid and parallelism of a sweep. Zero fields take
// defaults: Workers from workerpool.DefaultWorkers, Points from
// DefaultPoints, and Lo and Hi from DefaultLo and DefaultHi when both are 0.
type Config struct {
	Workers int
	Points  int
	Lo, Hi  float64
}

func (cfg Config) withDefaults() (Config, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = workerpool.DefaultWorkers()
	}
	if cfg.Points <= 0 {
		cfg.Points = DefaultPoints
	}
	if cfg.Lo == 0 && cfg.Hi == 0 {
		cfg.Lo, cfg.Hi = DefaultLo, DefaultHi
	}
	if !(cfg.Lo > 0 && cfg.Lo < cfg.Hi) || math.IsInf(cfg.Hi, 0) {
		return cfg, fmt.Errorf("%w: got [%g, %g]", ErrBadRange, cfg.Lo, cfg.Hi)
	}
	return cfg, nil
}

// Check names one property verified by a sweep.
type Check int

const (
	CheckOddness Check = iota
	CheckDomain
	CheckIdempotence
	CheckFloat64J1
	CheckFloat64Y1
	CheckContinuityJ1
	CheckContinuityY1
	numChecks
)

var checkNames = [numChecks]string{
	CheckOddness:      "j1-oddness",
	CheckDomain:       "y1-domain",
	CheckIdempotence:  "idempotence",
	CheckFloat64J1:    "j1-float64",
	CheckFloat64Y1:    "y1-float64",
	CheckContinuityJ1: "j1-continuity",
	CheckContinuityY1: "y1-continuity",
}

func (c Check) String() string {
	if c < 0 || c >= numChecks {
		return fmt.Sprintf("Check(%d)", int(c))
	}
	return checkNames[c]
}

// CheckResult counts the arguments a property was checked at and how many
// violated it.
type CheckResult struct {
	Name    string `json:"name"`
	Checked int    `json:"checked"`
	Failed  int    `json:"failed"`
}

// Failure records one violation.
type Failure struct {
	Check string `json:"check"`
	X     string `json:"x"`
	Got   string `json:"got"`
	Want  string `json:"want"`

	x quad.Float128
}

// Report summarizes a sweep.
type Report struct {
	Lo      float64 `json:"lo"`
	Hi      float64 `json:"hi"`
	Points  int     `json:"points"`
	Workers int     `json:"workers"`

	// Regions counts grid points by the region J1 evaluates them in.
	Regions map[string]int `json:"regions"`

	Checks []CheckResult `json:"checks"`

	// MaxFloat64Error is the largest disagreement with the standard library
	// seen on the grid, absolute below 1 and relative above.
	MaxFloat64Error float64 `json:"maxFloat64Error"`

	// Failures lists the first violations, grouped by check in argument order.
	Failures []Failure `json:"failures,omitempty"`
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return lo.EveryBy(r.Checks, func(c CheckResult) bool { return c.Failed == 0 })
}

// Format is a Report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !slices.Contains([]Format{FormatText, FormatJSON, FormatYAML}, f) {
		return "", fmt.Errorf("sweep: unknown format %q (want text, json or yaml)", s)
	}
	return f, nil
}

// Encode writes r to w in format f.
func (r *Report) Encode(w io.Writer, f Format) error {
	var (
		b   []byte
		err error
	)
	switch f {
	case FormatJSON:
		b, err = json.MarshalIndent(r, "", "  ")
		b = append(b, '\n')
	case FormatYAML:
		b, err = yaml.Marshal(r)
	case FormatText:
		return r.encodeText(w)
	default:
		return fmt.Errorf("sweep: unknown format %q", f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func (r *Report) encodeText(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "grid: %d points in [%g, %g], %d workers\n", r.Points, r.Lo, r.Hi, r.Workers)
	for reg := range bessel.RegionExtreme + 1 {
		if n, ok := r.Regions[reg.String()]; ok {
			fmt.Fprintf(&sb, "  %-14s %d\n", reg, n)
		}
	}
	for _, c := range r.Checks {
		status := "ok"
		if c.Failed > 0 {
			status = "FAIL"
		}
		fmt.Fprintf(&sb, "%-14s %6d checked %6d failed  %s\n", c.Name, c.Checked, c.Failed, status)
	}
	fmt.Fprintf(&sb, "max float64 error: %.3g\n", r.MaxFloat64Error)
	for _, f := range r.Failures {
		fmt.Fprintf(&sb, "%s: x=%s got %s want %s\n", f.Check, f.X, f.Got, f.Want)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// tally accumulates one worker's results. Tallies sit side by side in a
// slice written concurrently, so each is padded to its own cache line.
type tally struct {
	checked  [numChecks]int
	failed   [numChecks]int
	regions  [bessel.RegionExtreme + 1]int
	maxErr   float64
	failures []Failure
	_        cpu.CacheLinePad
}

func (t *tally) record(check Check, x quad.Float128, ok bool, got, want string) {
	t.checked[check]++
	if ok {
		return
	}
	t.failed[check]++
	if len(t.failures) < maxFailures {
		t.failures = append(t.failures, Failure{
			Check: check.String(),
			X:     x.String(),
			Got:   got,
			Want:  want,
			x:     x,
		})
	}
}

// Run performs a sweep. If ctx is cancelled part way, Run returns the
// partial report together with ctx.Err().
func Run(ctx context.Context, cfg Config) (Report, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return Report{}, err
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	grid := Grid(cfg.Lo, cfg.Hi, cfg.Points)
	tallies := make([]tally, pool.NumWorkers())

	err = pool.ParallelForBatched(ctx, len(grid), batchSize, func(worker, start, end int) {
		t := &tallies[worker]
		for _, x := range grid[start:end] {
			checkPoint(t, x)
		}
	})
	if err == nil {
		boundaries := bessel.Boundaries()
		pool.ParallelFor(len(boundaries), func(worker, start, end int) {
			t := &tallies[worker]
			for _, b := range boundaries[start:end] {
				checkContinuity(t, b)
			}
		})
	}

	return merge(cfg, pool.NumWorkers(), tallies), err
}

// Grid returns n arguments spaced evenly in log scale over [from, to]. Each is
// a float64, so its binary128 conversion and math.J1 see the same value.
func Grid(from, to float64, n int) []float64 {
	if n == 1 {
		return []float64{from}
	}
	llo, lhi := math.Log(from), math.Log(to)
	step := (lhi - llo) / float64(n-1)
	return lo.Map(lo.Range(n), func(i, _ int) float64 {
		switch i {
		case 0:
			return from
		case n - 1:
			return to
		}
		return math.Exp(llo + float64(i)*step)
	})
}

func checkPoint(t *tally, xf float64) {
	x := quad.FromFloat64(xf)
	t.regions[bessel.ClassifyJ1(x)]++

	j := bessel.J1(x)
	y := bessel.Y1(x)

	jn := bessel.J1(x.Neg())
	t.record(CheckOddness, x, bitsEqual(jn, j.Neg()), jn.String(), j.Neg().String())

	var c quad.Context
	yn := bessel.Y1Context(&c, x.Neg())
	domainOK := yn.IsNaN() && c.Flags()&quad.FlagInvalid != 0 && errors.Is(c.Err(), quad.ErrDomain)
	t.record(CheckDomain, x, domainOK, fmt.Sprintf("%v flags=%v err=%v", yn, c.Flags(), c.Err()), "NaN flags=invalid")

	j2, y2 := bessel.J1(x), bessel.Y1(x)
	t.record(CheckIdempotence, x, bitsEqual(j, j2) && bitsEqual(y, y2), j2.String()+" "+y2.String(), j.String()+" "+y.String())

	t.compareFloat64(CheckFloat64J1, x, j.Float64(), math.J1(xf))
	t.compareFloat64(CheckFloat64Y1, x, y.Float64(), math.Y1(xf))
}

func (t *tally) compareFloat64(check Check, x quad.Float128, got, want float64) {
	d := scaledDiff(got, want)
	t.maxErr = max(t.maxErr, d)
	t.record(check, x, d <= float64Tol, fmt.Sprint(got), fmt.Sprint(want))
}

// checkContinuity compares each function a few ulps below b with its value
// a few ulps above.
func checkContinuity(t *tally, b quad.Float128) {
	below, above := b, b
	for range continuityUlps {
		below = quad.NextDown(below)
		above = quad.NextUp(above)
	}
	for _, fn := range []struct {
		check Check
		f     func(quad.Float128) quad.Float128
	}{
		{CheckContinuityJ1, bessel.J1},
		{CheckContinuityY1, bessel.Y1},
	} {
		lv, hv := fn.f(below), fn.f(above)
		var c quad.Context
		d := c.Sub(hv, lv).Abs()
		ok := d.LessEq(c.Mul(continuityLimit, quad.FromFloat64(max(1, math.Abs(lv.Float64())))))
		t.record(fn.check, b, ok, hv.String(), lv.String())
	}
}

var continuityLimit = quad.FromFloat64(continuityTol)

func scaledDiff(got, want float64) float64 {
	switch {
	case math.IsNaN(got) || math.IsNaN(want):
		if math.IsNaN(got) && math.IsNaN(want) {
			return 0
		}
		return math.Inf(1)
	case got == want:
		return 0
	}
	return math.Abs(got-want) / max(1, math.Abs(want))
}

func compareArg(a, b quad.Float128) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

func bitsEqual(a, b quad.Float128) bool {
	ah, al := a.Bits()
	bh, bl := b.Bits()
	return ah == bh && al == bl
}

func merge(cfg Config, workers int, tallies []tally) Report {
	r := Report{
		Lo:      cfg.Lo,
		Hi:      cfg.Hi,
		Points:  cfg.Points,
		Workers: workers,
		Regions: make(map[string]int),
	}
	for check := range numChecks {
		r.Checks = append(r.Checks, CheckResult{
			Name:    check.String(),
			Checked: lo.SumBy(tallies, func(t tally) int { return t.checked[check] }),
			Failed:  lo.SumBy(tallies, func(t tally) int { return t.failed[check] }),
		})
	}
	for reg := range bessel.RegionExtreme + 1 {
		if n := lo.SumBy(tallies, func(t tally) int { return t.regions[reg] }); n > 0 {
			r.Regions[reg.String()] = n
		}
	}
	r.MaxFloat64Error = lo.MaxBy(tallies, func(a, b tally) bool { return a.maxErr > b.maxErr }).maxErr

	r.Failures = lo.FlatMap(tallies, func(t tally, _ int) []Failure { return t.failures })
	slices.SortStableFunc(r.Failures, func(a, b Failure) int {
		return cmp.Or(cmp.Compare(a.Check, b.Check), compareArg(a.x, b.x))
	})
	if len(r.Failures) > maxFailures {
		r.Failures = r.Failures[:maxFailures]
	}
	return r
}
