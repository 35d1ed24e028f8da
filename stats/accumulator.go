/*
 * accumulator.go, part of granstat.
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

import "math"

//Accumulator keeps a running count, sum and sum of squares of the values
//added to it. Values are shifted by the first one, which keeps the
//sum-of-squares formula accurate when the spread is small compared to the mean.
//The zero value is ready to use.
type Accumulator struct {
	n     int
	shift float64
	sum   float64
	sumsq float64
}

//Add adds v to the accumulator.
func (A *Accumulator) Add(v float64) {
	if A.n == 0 {
		A.shift = v
	}
	d := v - A.shift
	A.sum += d
	A.sumsq += d * d
	A.n++
}

//Count returns the number of values added.
func (A *Accumulator) Count() int {
	return A.n
}

//Mean returns the arithmetic mean of the values, or NaN if there are none.
func (A *Accumulator) Mean() float64 {
	if A.n == 0 {
		return math.NaN()
	}
	return A.shift + A.sum/float64(A.n)
}

//Std returns the sample (N-1) standard deviation of the values, or 0 if
//fewer than two were added.
func (A *Accumulator) Std() float64 {
	if A.n < 2 {
		return 0
	}
	n := float64(A.n)
	v := (A.sumsq - A.sum*A.sum/n) / (n - 1)
	if v < 0 { //rounding
		return 0
	}
	return math.Sqrt(v)
}

//Point is the summary of one bucket of a series.
type Point struct {
	Bucket int
	Time   float64
	Mean   float64
	Std    float64
	N      int //number of repetitions that contributed
}

//Point returns the summary of the accumulated values, with the given bucket and time.
func (A *Accumulator) Point(bucket int, time float64) Point {
	return Point{Bucket: bucket, Time: time, Mean: A.Mean(), Std: A.Std(), N: A.n}
}

//Summarize treats samples as a series with a single bucket, and returns its summary.
func Summarize(samples []float64) Point {
	var A Accumulator
	for _, v := range samples {
		A.Add(v)
	}
	return A.Point(0, 0)
}
