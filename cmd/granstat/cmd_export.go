/*
 * cmd_export.go, part of granstat.
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
	"fmt"

	"github.com/rmera/granstat"
	"github.com/rmera/granstat/export"
	"github.com/rmera/granstat/runload"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <stem>",
		Short: "Write the repetitions of a configuration as a CSV table",
		Long: `Reads <base>/<stem>_rep_<i>.xyz for i from 0 to reps-1 and writes one row per
particle per frame per repetition. Missing and malformed repetitions are skipped. The output
is compressed if its name ends in .zst or .gz.`,
		Example: `  granstat export g_100 --base runs --reps 5 -o g_100.csv.zst`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _ := cmd.Flags().GetString("base")
			reps, _ := cmd.Flags().GetInt("reps")
			out, _ := cmd.Flags().GetString("output")
			if reps <= 0 {
				return fmt.Errorf("--reps must be positive, got %d", reps)
			}
			logger := newLogger(logLevel(cmd, "info"), cmd.ErrOrStderr())
			L := &runload.Loader{Layout: runload.Layout{Base: base}, Logger: logger}
			id := granstat.ConfigID{}.WithStem(args[0]).WithLabel(args[0])
			B, err := L.LoadAll(id, reps)
			if err != nil {
				return err
			}
			if len(B.Runs) == 0 {
				return fmt.Errorf("no repetitions of %s in %s: %w", args[0], base, granstat.ErrInsufficientRepetitions)
			}
			if err := export.File(out, B.Runs); err != nil {
				return err
			}
			logger.Info("table written", "file", out, "repetitions", len(B.Runs), "missing", len(B.Missing), "malformed", len(B.Malformed))
			return nil
		},
	}
	cmd.Flags().String("base", ".", "Directory with the dump files")
	cmd.Flags().Int("reps", 5, "Number of repetitions")
	cmd.Flags().StringP("output", "o", "", "Output file (.csv, .csv.zst or .csv.gz)")
	cmd.MarkFlagRequired("output")
	return cmd
}
