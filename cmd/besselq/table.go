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

// boundaryRow reports the evaluation path on either side of a boundary.
type boundaryRow struct {
	X       string `json:"x"`
	J1Below string `json:"j1Below"`
	J1Above string `json:"j1Above"`
	Y1Below string `json:"y1Below"`
	Y1Above string `json:"y1Above"`
}

func newTableCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the arguments at which the evaluation path changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := boundaryTable()
			return opts.encode(cmd.OutOrStdout(), rows, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "%-40s %-14s %-14s %-14s %s\n", "x", "j1 below", "j1 above", "y1 below", "y1 above"); err != nil {
					return err
				}
				for _, r := range rows {
					if _, err := fmt.Fprintf(w, "%-40s %-14s %-14s %-14s %s\n", r.X, r.J1Below, r.J1Above, r.Y1Below, r.Y1Above); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func boundaryTable() []boundaryRow {
	return lo.Map(bessel.Boundaries(), func(b quad.Float128, _ int) boundaryRow {
		up := quad.NextUp(b)
		return boundaryRow{
			X:       b.String(),
			J1Below: bessel.ClassifyJ1(b).String(),
			J1Above: bessel.ClassifyJ1(up).String(),
			Y1Below: bessel.ClassifyY1(b).String(),
			Y1Above: bessel.ClassifyY1(up).String(),
		}
	})
}
