/*
 * aggregate.go, part of granstat.
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

//Package stats reduces the records of several repetitions of a configuration
//to a time series of means and standard deviations across repetitions.
package stats

import (
	"sort"

	"github.com/rmera/granstat"
)

type cellKey struct {
	bucket int
	rep    int
}

//cell holds the value of one repetition in one bucket. It belongs to the
//frame that claimed it.
type cell struct {
	frame int
	value float64
}

//MetricStats is the summary of a metric under a policy, one point per bucket,
//sorted by bucket.
type MetricStats struct {
	Metric      Metric
	Policy      Policy
	Points      []Point
	Repetitions []int //sorted indexes of the repetitions that contributed
	bucketer    *Bucketer
	index       map[int]int
}

//Aggregate reduces records to one value per (bucket, repetition) pair, following
//metric and policy, and then summarizes the values of each bucket across
//repetitions. Records whose time is not within tolerance of the grid are
//ignored. A (bucket, repetition) pair is claimed by the earliest frame of that
//repetition that falls in the bucket and has a record the policy accepts.
//The result does not depend on the order of records.
func Aggregate(records []granstat.Record, metric Metric, policy Policy, B *Bucketer) *MetricStats {
	cells := make(map[cellKey]*cell)
	for i := range records {
		r := &records[i]
		if !policy.accepts(r.ID) {
			continue
		}
		k, ok := B.Bucket(r.Time)
		if !ok {
			continue
		}
		v := metric.Value(r)
		key := cellKey{bucket: k, rep: r.Repetition}
		c, ok := cells[key]
		switch {
		case !ok:
			cells[key] = &cell{frame: r.Frame, value: v}
		case r.Frame < c.frame:
			c.frame = r.Frame
			c.value = v
		case r.Frame == c.frame && !policy.scalar:
			c.value += v
		}
	}
	keys := make([]cellKey, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].bucket != keys[j].bucket {
			return keys[i].bucket < keys[j].bucket
		}
		return keys[i].rep < keys[j].rep
	})
	M := &MetricStats{Metric: metric, Policy: policy, bucketer: B, index: make(map[int]int)}
	reps := make(map[int]bool)
	var acc Accumulator
	for i, k := range keys {
		acc.Add(cells[k].value)
		reps[k.rep] = true
		if i == len(keys)-1 || keys[i+1].bucket != k.bucket {
			M.index[k.bucket] = len(M.Points)
			M.Points = append(M.Points, acc.Point(k.bucket, B.Time(k.bucket)))
			acc = Accumulator{}
		}
	}
	for r := range reps {
		M.Repetitions = append(M.Repetitions, r)
	}
	sort.Ints(M.Repetitions)
	return M
}

//Len returns the number of buckets in the series.
func (M *MetricStats) Len() int {
	return len(M.Points)
}

//At returns the point for the given bucket, and false if no repetition
//contributed to it.
func (M *MetricStats) At(bucket int) (Point, bool) {
	i, ok := M.index[bucket]
	if !ok {
		return Point{}, false
	}
	return M.Points[i], true
}

//Lookup returns the point of the bucket the given time belongs to.
func (M *MetricStats) Lookup(time float64) (Point, bool) {
	k, ok := M.bucketer.Bucket(time)
	if !ok {
		return Point{}, false
	}
	return M.At(k)
}

//Times returns the grid time of each point.
func (M *MetricStats) Times() []float64 {
	ret := make([]float64, len(M.Points))
	for i, p := range M.Points {
		ret[i] = p.Time
	}
	return ret
}

//Means returns the mean of each point.
func (M *MetricStats) Means() []float64 {
	ret := make([]float64, len(M.Points))
	for i, p := range M.Points {
		ret[i] = p.Mean
	}
	return ret
}

//Stds returns the standard deviation of each point.
func (M *MetricStats) Stds() []float64 {
	ret := make([]float64, len(M.Points))
	for i, p := range M.Points {
		ret[i] = p.Std
	}
	return ret
}

//Counts returns the number of repetitions behind each point.
func (M *MetricStats) Counts() []int {
	ret := make([]int, len(M.Points))
	for i, p := range M.Points {
		ret[i] = p.N
	}
	return ret
}
