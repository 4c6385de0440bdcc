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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ajroetker/go-quad/quad/contrib/sweep"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSweepCmd(opts *options) *cobra.Command {
	var cfg sweep.Config
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Check oddness, domain, continuity and float64 agreement over a grid",
		Long: "Evaluate J1 and Y1 over a logarithmic grid of arguments in parallel and\n" +
			"check their structural properties. Exits non-zero if any check fails.\n" +
			"The default worker count is taken from QUAD_WORKERS.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			opts.log.Debug("sweep starting", "points", cfg.Points, "lo", cfg.Lo, "hi", cfg.Hi, "workers", cfg.Workers)

			report, err := sweep.Run(cmd.Context(), cfg)
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if err != nil {
				opts.log.Warn("sweep interrupted, reporting partial results", "error", err, "elapsed", time.Since(start))
			} else {
				opts.log.Info("sweep done", "points", report.Points, "workers", report.Workers, "elapsed", time.Since(start))
			}

			if encErr := report.Encode(cmd.OutOrStdout(), opts.output); encErr != nil {
				return errors.Join(err, encErr)
			}
			if err != nil {
				return err
			}
			if !report.OK() {
				failed := lo.SumBy(report.Checks, func(c sweep.CheckResult) int { return c.Failed })
				return fmt.Errorf("sweep: %d violations", failed)
			}
			return nil
		},
	}

	addGridFlags(cmd.Flags(), &cfg)
	return cmd
}

func addGridFlags(f *pflag.FlagSet, cfg *sweep.Config) {
	f.IntVar(&cfg.Workers, "workers", 0, "worker goroutines (0 uses QUAD_WORKERS or GOMAXPROCS)")
	f.IntVar(&cfg.Points, "points", sweep.DefaultPoints, "grid points")
	f.Float64Var(&cfg.Lo, "lo", sweep.DefaultLo, "smallest argument")
	f.Float64Var(&cfg.Hi, "hi", sweep.DefaultHi, "largest argument")
}
