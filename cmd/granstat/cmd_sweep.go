/*
 * cmd_sweep.go, part of granstat.
 *
 * Copyright 2026 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rmera/granstat/granplot"
	"github.com/rmera/granstat/stats"
	"github.com/rmera/granstat/sweep"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Analyze every configuration of a sweep",
		Long: `Loads every repetition of every configuration in the configuration file,
cuts the repetitions of each configuration to the time they all cover, and
prints, per configuration, the repetitions used and the stabilization time.
With --json, the full time series are printed too.`,
		Example: `  granstat sweep -c gamma.yaml
  granstat sweep -c angles.ini --plot-dir plots --format svg
  granstat sweep -c gamma.yaml --json > gamma.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			plotDir, _ := cmd.Flags().GetString("plot-dir")
			format, _ := cmd.Flags().GetString("format")
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := sweep.Load(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			if plotDir != "" {
				cfg.PlotDir = plotDir
			}
			logger := newLogger(logLevel(cmd, cfg.LogLevel), cmd.ErrOrStderr())
			D, err := sweep.New(cfg, logger)
			if err != nil {
				return fmt.Errorf("invalid configuration %s: %w", path, err)
			}
			ids, err := cfg.IDs()
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				return fmt.Errorf("no configurations in %s", path)
			}
			R := D.Run(ids)

			if jsonOut {
				err = writeJSON(cmd.OutOrStdout(), R)
			} else {
				err = writeSummary(cmd.OutOrStdout(), R)
			}
			if err != nil {
				return err
			}
			if len(R.Failed()) == len(R.Series) {
				return fmt.Errorf("all %d configurations failed", len(R.Series))
			}
			if cfg.PlotDir != "" {
				files, err := granplot.Sweep(R, cfg.PlotDir, format)
				if err != nil {
					return fmt.Errorf("plotting: %w", err)
				}
				for _, f := range files {
					logger.Info("figure saved", "file", f)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "Sweep configuration (.yaml, .yml, .ini, .cfg or .gcfg)")
	cmd.Flags().String("plot-dir", "", "Save figures to this directory (overrides the configuration)")
	cmd.Flags().String("format", "png", "Figure format: png, svg, pdf or eps")
	cmd.MarkFlagRequired("config")
	return cmd
}

func writeSummary(w io.Writer, R *sweep.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONFIGURATION\tSTEM\tREPS\tMISSING\tMALFORMED\tHORIZON\tSTABILIZATION\tSTATUS")
	for _, S := range R.Series {
		if S.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\t-\t%v\t%v\t-\t-\tfailed: %v\n", S.Label(), S.ID.Stem(), S.Missing, S.Malformed, S.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%v\t%v\t%.4g\t%.4g ± %.2g\tok\n", S.Label(), S.ID.Stem(), len(S.Repetitions), S.Missing, S.Malformed, S.Horizon, S.Stabilization.Mean, S.Stabilization.Std)
	}
	return tw.Flush()
}

type jsonPoint struct {
	Time float64 `json:"time"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	N    int     `json:"n"`
}

type jsonSeries struct {
	Label                string      `json:"label"`
	Stem                 string      `json:"stem"`
	Repetitions          []int       `json:"repetitions,omitempty"`
	Missing              []int       `json:"missing,omitempty"`
	Malformed            []int       `json:"malformed,omitempty"`
	Horizon              float64     `json:"horizon,omitempty"`
	StabilizationSamples []float64   `json:"stabilization_samples,omitempty"`
	Stabilization        *jsonPoint  `json:"stabilization,omitempty"`
	Speed                []jsonPoint `json:"speed,omitempty"`
	Energy               []jsonPoint `json:"energy,omitempty"`
	Error                string      `json:"error,omitempty"`
}

func jsonPoints(M *stats.MetricStats) []jsonPoint {
	ret := make([]jsonPoint, M.Len())
	for i, p := range M.Points {
		ret[i] = jsonPoint{Time: p.Time, Mean: p.Mean, Std: p.Std, N: p.N}
	}
	return ret
}

func writeJSON(w io.Writer, R *sweep.Result) error {
	out := make([]jsonSeries, 0, len(R.Series))
	for _, S := range R.Series {
		js := jsonSeries{Label: S.Label(), Stem: S.ID.Stem(), Missing: S.Missing, Malformed: S.Malformed}
		if S.Err != nil {
			js.Error = S.Err.Error()
			out = append(out, js)
			continue
		}
		js.Repetitions = S.Repetitions
		js.Horizon = S.Horizon
		js.StabilizationSamples = S.StabilizationSamples
		js.Stabilization = &jsonPoint{Mean: S.Stabilization.Mean, Std: S.Stabilization.Std, N: S.Stabilization.N}
		js.Speed = jsonPoints(S.Speed)
		js.Energy = jsonPoints(S.Energy)
		out = append(out, js)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{"configurations": out})
}
