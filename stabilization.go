/*
 * stabilization.go, part of granstat.
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

package granstat

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// StabilizationTime returns the largest frame time recorded in the run, that is,
// the time at which the simulator's own stopping criterion fired.
// It returns an error if the run has no frames.
func StabilizationTime(R *Run) (float64, error) {
	if R == nil || len(R.Frames) == 0 {
		return 0, fmt.Errorf("granstat: no frames to take a stabilization time from")
	}
	return floats.Max(R.Times()), nil
}
