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
package main

import (
	"fmt"
	"io"

	"github.com/ajroetker/go-quad/quad"
	"github.com/ajroetker/go-quad/quad/contrib/bessel"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// function describes one evaluable Bessel function.
type function struct {
	name     string
	short    string
	eval     func(*quad.Context, quad.Float128) quad.Float128
	classify func(quad.Float128) bessel.Region
}

var (
	j1Func = function{
		name:     "j1",
		short:    "Bessel function of the first kind of order one",
		eval:     bessel.J1Context,
		classify: bessel.ClassifyJ1,
	}
	y1Func = function{
		name:     "y1",
		short:    "Bessel function of the second kind of order one",
		eval:     bessel.Y1Context,
		classify: bessel.ClassifyY1,
	}
)

// result is one evaluation as reported to the user.
type result struct {
	Function string `json:"function"`
	X        string `json:"x"`
	Value    string `json:"value"`
	Bits     string `json:"bits"`
	Region   string `json:"region"`
	Rounding string `json:"rounding"`
	Flags    string `json:"flags"`
	Err      string `json:"error,omitempty"`
}

func newEvalCmd(opts *options, fn function) *cobra.Command {
	return &cobra.Command{
		Use:   fn.name + " x...",
		Short: "Evaluate the " + fn.short,
		Long: "Evaluate the " + fn.short + " at each argument.\n\n" +
			"Negative arguments must follow \"--\" so they are not read as flags.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs := make([]quad.Float128, len(args))
			for i, a := range args {
				x, err := quad.Parse(a)
				if err != nil {
					return err
				}
				xs[i] = x
			}

			results := lo.Map(xs, func(x quad.Float128, i int) result {
				return evaluate(opts.mode, fn, args[i], x)
			})
			for _, r := range results {
				opts.log.Debug("evaluated", "function", r.Function, "x", r.X, "region", r.Region, "flags", r.Flags)
			}

			return opts.encode(cmd.OutOrStdout(), results, func(w io.Writer) error {
				for _, r := range results {
					if err := writeResult(w, r); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// evaluate runs fn on x in a fresh context rounding with mode.
func evaluate(mode quad.RoundingMode, fn function, arg string, x quad.Float128) result {
	c := quad.NewContext(mode)
	v := fn.eval(c, x)
	hiBits, loBits := v.Bits()
	r := result{
		Function: fn.name,
		X:        arg,
		Value:    v.String(),
		Bits:     fmt.Sprintf("0x%016x%016x", hiBits, loBits),
		Region:   fn.classify(x).String(),
		Rounding: mode.String(),
		Flags:    c.Flags().String(),
	}
	if err := c.Err(); err != nil {
		r.Err = err.Error()
	}
	return r
}

func writeResult(w io.Writer, r result) error {
	_, err := fmt.Fprintf(w, "%s(%s) = %s\t[%s region=%s flags=%s]", r.Function, r.X, r.Value, r.Bits, r.Region, r.Flags)
	if err == nil && r.Err != "" {
		_, err = fmt.Fprintf(w, " error: %s", r.Err)
	}
	if err == nil {
		_, err = fmt.Fprintln(w)
	}
	return err
}
