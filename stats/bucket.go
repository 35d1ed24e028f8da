/*
 * bucket.go, part of granstat.
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

package stats

import (
	"fmt"
	"math"
)

//Bucketer maps frame times to the sampling grid k*interval.
type Bucketer struct {
	interval float64
	eps      float64
}

//NewBucketer returns a bucketer for the grid of the given interval. A time
//belongs to its nearest grid point only if it lies closer than eps to it.
//eps must be positive and smaller than half the interval, so a time never
//belongs to two buckets, and a time half-way between two grid points
//belongs to none.
func NewBucketer(interval, eps float64) (*Bucketer, error) {
	if !(interval > 0) || math.IsInf(interval, 0) {
		return nil, fmt.Errorf("stats: sampling interval must be positive and finite, got %g", interval)
	}
	if !(eps > 0) || eps >= interval/2 {
		return nil, fmt.Errorf("stats: tolerance %g out of range (0, %g)", eps, interval/2)
	}
	return &Bucketer{interval: interval, eps: eps}, nil
}

//Bucket returns the index of the grid point nearest to t (ties go up) and
//whether t is within the tolerance of it.
func (B *Bucketer) Bucket(t float64) (int, bool) {
	k := math.Floor(t/B.interval + 0.5)
	return int(k), math.Abs(t-k*B.interval) < B.eps
}

//Time returns the time of grid point k.
func (B *Bucketer) Time(k int) float64 {
	return float64(k) * B.interval
}

func (B *Bucketer) Interval() float64 {
	return B.interval
}

func (B *Bucketer) Tolerance() float64 {
	return B.eps
}
