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
// Command besselq evaluates the binary128 Bessel functions of order one.
//
// Usage:
//
//	besselq j1 2 0.5 1e30                  # J1 at each argument
//	besselq y1 --rounding down 0x1p-100    # Y1 rounded toward -Inf
//	besselq table                          # argument ranges of each evaluation path
//	besselq sweep --points 4096 --format yaml
//
// Arguments are decimal or hexadecimal (0x1.8p3) literals parsed to the nearest
// binary128 value. Results go to stdout as text, json or yaml; diagnostics go
// to stderr. The default output format is taken from BESSELQ_FORMAT.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ajroetker/go-quad/quad"
	"github.com/ajroetker/go-quad/quad/contrib/sweep"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// formatEnv names the environment variable holding the default --format.
const formatEnv = "BESSELQ_FORMAT"

// options holds the persistent flags shared by every subcommand.
type options struct {
	rounding string
	format   string
	verbose  bool

	mode   quad.RoundingMode
	output sweep.Format
	log    *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "besselq",
		Short:         "Evaluate binary128 Bessel functions of order one",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	defaultFormat := os.Getenv(formatEnv)
	if defaultFormat == "" {
		defaultFormat = string(sweep.FormatText)
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.rounding, "rounding", quad.ToNearestEven.String(), "rounding mode: nearest, zero, up or down")
	pf.StringVar(&opts.format, "format", defaultFormat, "output format: text, json or yaml (env "+formatEnv+")")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr at debug level")

	root.AddCommand(
		newEvalCmd(opts, j1Func),
		newEvalCmd(opts, y1Func),
		newTableCmd(opts),
		newSweepCmd(opts),
	)
	return root
}

// setup validates the persistent flags and builds the diagnostic logger.
func (o *options) setup(stderr io.Writer) error {
	mode, err := quad.ParseRoundingMode(o.rounding)
	if err != nil {
		return err
	}
	output, err := sweep.ParseFormat(o.format)
	if err != nil {
		return err
	}
	o.mode, o.output = mode, output

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	o.log.Debug("options", "rounding", o.mode, "format", o.output)
	return nil
}

// encode writes v to w as json or yaml, or calls text for the text format.
func (o *options) encode(w io.Writer, v any, text func(io.Writer) error) error {
	switch o.output {
	case sweep.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case sweep.FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return text(w)
}
