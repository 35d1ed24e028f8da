/*
 * sweep.go, part of granstat.
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

package granplot

import (
	"os"

	"github.com/rmera/granstat/stats"
	"github.com/rmera/granstat/sweep"
)

//Sweep saves, in dir, the figures the analysis scripts produce for a sweep:
//projectile speed and bed kinetic energy of all the configurations together,
//and the stabilization time of each. Failed configurations are left out.
//It returns the names of the files written.
func Sweep(R *sweep.Result, dir, format string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var speeds, energies []Curve
	var labels []string
	var points []stats.Point
	for _, S := range R.Series {
		if S.Err != nil {
			continue
		}
		speeds = append(speeds, Curve{Label: S.Label(), Stats: S.Speed})
		energies = append(energies, Curve{Label: S.Label(), Stats: S.Energy})
		labels = append(labels, S.Label())
		points = append(points, S.Stabilization)
	}
	var written []string
	name := Name(dir, "speed", format)
	if err := ComparisonPlot(speeds, "Projectile speed", "speed", false, name); err != nil {
		return written, err
	}
	written = append(written, name)
	name = Name(dir, "energy", format)
	if err := ComparisonPlot(energies, "Kinetic energy of the bed", "kinetic energy", true, name); err != nil {
		return written, err
	}
	written = append(written, name)
	name = Name(dir, "stabilization", format)
	if err := StabilizationPlot(labels, points, "Stabilization time", name); err != nil {
		return written, err
	}
	written = append(written, name)
	return written, nil
}
