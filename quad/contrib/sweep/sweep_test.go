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

package sweep

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ajroetker/go-quad/quad"
	"github.com/ajroetker/go-quad/quad/contrib/bessel"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestGrid(t *testing.T) {
	got := Grid(1, 1e4, 5)
	want := []float64{1, 10, 100, 1000, 1e4}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Errorf("Grid(1, 1e4, 5) mismatch (-want +got):\n%s", diff)
	}
	if got[0] != 1 || got[4] != 1e4 {
		t.Errorf("Grid endpoints = %v, %v, want exact 1, 1e4", got[0], got[4])
	}

	if got := Grid(2, 3, 1); !cmp.Equal(got, []float64{2}) {
		t.Errorf("Grid(2, 3, 1) = %v, want [2]", got)
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv("QUAD_WORKERS", "3")

	tests := []struct {
		name    string
		cfg     Config
		want    Config
		wantErr bool
	}{
		{
			name: "zero",
			cfg:  Config{},
			want: Config{Workers: 3, Points: DefaultPoints, Lo: DefaultLo, Hi: DefaultHi},
		},
		{
			name: "explicit",
			cfg:  Config{Workers: 2, Points: 10, Lo: 0.5, Hi: 8},
			want: Config{Workers: 2, Points: 10, Lo: 0.5, Hi: 8},
		},
		{name: "ZeroLo", cfg: Config{Lo: 0, Hi: 1}, wantErr: true},
		{name: "NegativeLo", cfg: Config{Lo: -1, Hi: 1}, wantErr: true},
		{name: "Reversed", cfg: Config{Lo: 2, Hi: 1}, wantErr: true},
		{name: "Empty", cfg: Config{Lo: 2, Hi: 2}, wantErr: true},
		{name: "InfHi", cfg: Config{Lo: 1, Hi: math.Inf(1)}, wantErr: true},
		{name: "NaN", cfg: Config{Lo: math.NaN(), Hi: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.withDefaults()
			if tt.wantErr {
				if !errors.Is(err, ErrBadRange) {
					t.Errorf("withDefaults(%+v) error = %v, want ErrBadRange", tt.cfg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("withDefaults(%+v): %v", tt.cfg, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("withDefaults mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRun(t *testing.T) {
	const points = 64
	report, err := Run(context.Background(), Config{Workers: 4, Points: points, Lo: 0.01, Hi: 100})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	nb := len(bessel.Boundaries())
	want := []CheckResult{
		{Name: "j1-oddness", Checked: points},
		{Name: "y1-domain", Checked: points},
		{Name: "idempotence", Checked: points},
		{Name: "j1-float64", Checked: points},
		{Name: "y1-float64", Checked: points},
		{Name: "j1-continuity", Checked: nb},
		{Name: "y1-continuity", Checked: nb},
	}
	if diff := cmp.Diff(want, report.Checks); diff != "" {
		t.Errorf("Checks mismatch (-want +got):\n%s", diff)
	}
	if !report.OK() {
		t.Errorf("report not OK, failures: %+v", report.Failures)
	}
	if report.Workers != 4 {
		t.Errorf("Workers = %d, want 4", report.Workers)
	}
	if report.MaxFloat64Error > float64Tol {
		t.Errorf("MaxFloat64Error = %g, want <= %g", report.MaxFloat64Error, float64Tol)
	}

	total := 0
	for name, n := range report.Regions {
		if name == bessel.RegionTiny.String() || name == bessel.RegionExtreme.String() {
			t.Errorf("grid in [0.01, 100] reached region %s", name)
		}
		total += n
	}
	if total != points {
		t.Errorf("region counts sum to %d, want %d", total, points)
	}
	if report.Regions[bessel.RegionNear.String()] == 0 || report.Regions[bessel.RegionFar0.String()] == 0 {
		t.Errorf("Regions = %v, want both near and far[16,inf) populated", report.Regions)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, Config{Workers: 2, Points: 32, Lo: 1, Hi: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	for _, c := range report.Checks {
		if c.Checked != 0 {
			t.Errorf("check %s ran %d times after cancellation", c.Name, c.Checked)
		}
	}
}

func TestRunBadRange(t *testing.T) {
	_, err := Run(context.Background(), Config{Lo: 5, Hi: 1})
	if !errors.Is(err, ErrBadRange) {
		t.Errorf("Run error = %v, want ErrBadRange", err)
	}
}

func TestCheckContinuity(t *testing.T) {
	var tl tally
	checkContinuity(&tl, quad.FromInt(2))
	if tl.checked[CheckContinuityJ1] != 1 || tl.failed[CheckContinuityJ1] != 0 {
		t.Errorf("continuity at 2: checked %d failed %d", tl.checked[CheckContinuityJ1], tl.failed[CheckContinuityJ1])
	}

	// A point far from any boundary is still smooth across the compared ulps.
	checkContinuity(&tl, quad.FromInt(3))
	if tl.failed[CheckContinuityY1] != 0 {
		t.Errorf("continuity at 3 failed: %+v", tl.failures)
	}
}

func TestMergeFailures(t *testing.T) {
	tallies := make([]tally, 4)
	for i := range 2 * maxFailures {
		x := quad.FromInt(int64(100 - i))
		tallies[i%4].record(CheckFloat64Y1, x, false, "1", "2")
		tallies[i%4].record(CheckOddness, x, i%2 == 0, "1", "2")
	}
	tallies[2].maxErr = 0.25
	tallies[0].maxErr = 0.125

	r := merge(Config{Lo: 1, Hi: 2, Points: 2 * maxFailures}, 4, tallies)

	if r.OK() {
		t.Error("report with failures is OK")
	}
	if r.MaxFloat64Error != 0.25 {
		t.Errorf("MaxFloat64Error = %g, want 0.25", r.MaxFloat64Error)
	}
	if len(r.Failures) != maxFailures {
		t.Fatalf("len(Failures) = %d, want %d", len(r.Failures), maxFailures)
	}
	for i := 1; i < len(r.Failures); i++ {
		a, b := r.Failures[i-1], r.Failures[i]
		if a.Check > b.Check || (a.Check == b.Check && b.x.Less(a.x)) {
			t.Errorf("Failures out of order at %d: %s %s before %s %s", i, a.Check, a.X, b.Check, b.X)
		}
	}
	if r.Failures[0].Check != CheckOddness.String() || r.Failures[0].X != "37" {
		t.Errorf("first failure = %+v, want j1-oddness at 37", r.Failures[0])
	}

	odd := r.Checks[CheckOddness]
	if odd.Checked != 2*maxFailures || odd.Failed != maxFailures {
		t.Errorf("oddness = %+v, want %d checked, %d failed", odd, 2*maxFailures, maxFailures)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	r := &Report{
		Lo:      1,
		Hi:      10,
		Points:  8,
		Workers: 2,
		Regions: map[string]int{"near": 3, "far[16/5,4]": 5},
		Checks: []CheckResult{
			{Name: "j1-oddness", Checked: 8},
			{Name: "y1-float64", Checked: 8, Failed: 1},
		},
		MaxFloat64Error: 0.5,
		Failures: []Failure{
			{Check: "y1-float64", X: "3", Got: "0.1", Want: "0.2"},
		},
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := r.Encode(&buf, FormatJSON); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		var got Report
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("Unmarshal: %v\n%s", err, buf.String())
		}
		if diff := cmp.Diff(*r, got, cmpopts.IgnoreUnexported(Failure{})); diff != "" {
			t.Errorf("json mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := r.Encode(&buf, FormatYAML); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		out := buf.String()
		for _, want := range []string{"maxFloat64Error: 0.5", "name: j1-oddness", "workers: 2", "near: 3"} {
			if !strings.Contains(out, want) {
				t.Errorf("yaml output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := r.Encode(&buf, FormatText); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		out := buf.String()
		if strings.Index(out, "near") > strings.Index(out, "far[16/5,4]") {
			t.Errorf("regions not in evaluation order:\n%s", out)
		}
		for _, want := range []string{"8 points in [1, 10]", "FAIL", "y1-float64: x=3 got 0.1 want 0.2"} {
			if !strings.Contains(out, want) {
				t.Errorf("text output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := r.Encode(&bytes.Buffer{}, Format("csv")); err == nil {
			t.Error("Encode(csv) succeeded")
		}
	})
}

func BenchmarkRun(b *testing.B) {
	cfg := Config{Points: 64, Lo: 0.1, Hi: 1000}
	for i := 0; i < b.N; i++ {
		if _, err := Run(context.Background(), cfg); err != nil {
			b.Fatal(err)
		}
	}
}
