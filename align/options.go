/*
 * options.go, part of granstat.
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

package align

//Options contains the options for the Repetitions function.
type Options struct {
	interval  float64
	tolerance float64
}

//DefaultOptions returns the options used by the simulator's own analysis:
//a frame every 0.01 time units, matched with a tolerance of 1e-8.
func DefaultOptions() *Options {
	r := new(Options)
	r.interval = 0.01
	r.tolerance = 1e-8
	return r
}

//Returns the sampling interval of the runs, and sets it
//to a new value, if a positive one is given.
//A horizon shorter than the interval is empty.
func (O *Options) Interval(v ...float64) float64 {
	if len(v) > 0 && v[0] > 0 {
		O.interval = v[0]
	}
	return O.interval
}

//Returns the tolerance used to match frame times to the sampling
//grid, and sets it to a new value, if a positive one is given.
func (O *Options) Tolerance(v ...float64) float64 {
	if len(v) > 0 && v[0] > 0 {
		O.tolerance = v[0]
	}
	return O.tolerance
}
