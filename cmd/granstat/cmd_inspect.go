/*
 * cmd_inspect.go, part of granstat.
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
	"errors"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/rmera/granstat"
	"github.com/rmera/granstat/histo"
	"github.com/rmera/granstat/traj/dump"
	"github.com/spf13/cobra"
)

// dumpInfo summarizes a dump file.
type dumpInfo struct {
	File         string  `json:"file"`
	Frames       int     `json:"frames"`
	MinParticles int     `json:"min_particles"`
	MaxParticles int     `json:"max_particles"`
	FirstTime    float64 `json:"first_time"`
	LastTime     float64 `json:"last_time"`
	Projectile   bool    `json:"projectile"` //present in every frame

	// SpeedHistogram bins the speeds of the bed particles in the last frame.
	SpeedHistogram *histo.Data `json:"speed_histogram,omitempty"`

	last []granstat.ParticleState
}

// speedHistogram bins the speeds of the bed particles of the last frame
// into bins of equal width, from 0 to the largest speed.
func (info *dumpInfo) speedHistogram(bins int) error {
	speeds := make([]float64, 0, len(info.last))
	hi := 0.0
	for i := range info.last {
		if info.last[i].IsProjectile() {
			continue
		}
		v := info.last[i].Speed()
		speeds = append(speeds, v)
		hi = max(hi, v)
	}
	if hi == 0 {
		hi = 1
	}
	div, err := histo.Uniform(0, math.Nextafter(hi, math.Inf(1)), bins)
	if err != nil {
		return err
	}
	info.SpeedHistogram, err = histo.NewData(div, speeds)
	return err
}

func inspect(name string) (*dumpInfo, error) {
	r, err := dump.New(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	info := &dumpInfo{File: name, Projectile: true}
	var f granstat.Frame
	for {
		err := r.Next(&f)
		if err != nil {
			var last granstat.LastFrameError
			if errors.As(err, &last) {
				break
			}
			return nil, err
		}
		n := f.Len()
		if info.Frames == 0 {
			info.FirstTime = f.Time
			info.MinParticles = n
		}
		info.MinParticles = min(info.MinParticles, n)
		info.MaxParticles = max(info.MaxParticles, n)
		info.LastTime = f.Time
		info.last = f.Particles
		if _, ok := f.Particle(granstat.ProjectileID); !ok {
			info.Projectile = false
		}
		info.Frames++
	}
	if info.Frames == 0 {
		return nil, fmt.Errorf("%s: no frames: %w", name, granstat.ErrMalformedDump)
	}
	return info, nil
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <dump>",
		Short: "Check a dump file and print a summary of it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := inspect(args[0])
			if err != nil {
				return err
			}
			if bins, _ := cmd.Flags().GetInt("speed-bins"); bins > 0 {
				if err := info.speedHistogram(bins); err != nil {
					return err
				}
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "file\t%s\n", info.File)
			fmt.Fprintf(tw, "frames\t%d\n", info.Frames)
			fmt.Fprintf(tw, "particles\t%d to %d\n", info.MinParticles, info.MaxParticles)
			fmt.Fprintf(tw, "time\t%g to %g\n", info.FirstTime, info.LastTime)
			fmt.Fprintf(tw, "projectile\t%t\n", info.Projectile)
			if err := tw.Flush(); err != nil {
				return err
			}
			if info.SpeedHistogram != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "\nbed speeds at t = %g\n%s\n", info.LastTime, info.SpeedHistogram)
			}
			return nil
		},
	}
	cmd.Flags().Int("speed-bins", 0, "Print a histogram of the bed speeds in the last frame, with this many bins")
	return cmd
}
