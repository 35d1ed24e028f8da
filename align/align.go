/*
 * align.go, part of granstat.
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

//Package align puts together the repetitions of one configuration, cutting
//them all to the time range they share.
package align

import (
	"fmt"
	"sort"

	"github.com/rmera/granstat"
	"gonum.org/v1/gonum/floats"
)

//Dataset is the union of the records of every repetition of a configuration,
//truncated to the common horizon.
type Dataset struct {
	Config      granstat.ConfigID
	Horizon     float64
	Maxima      map[int]float64 //largest frame time of each repetition
	Repetitions []int           //sorted
	Records     []granstat.Record
}

//Horizon returns the smallest of the given maxima.
func Horizon(maxima []float64) float64 {
	return floats.Min(maxima)
}

//Repetitions aligns runs, which must all belong to the same configuration
//and have different repetition indexes. Every record with a time not
//larger than the horizon (the earliest end among the runs) is kept. Records
//are returned sorted by time, then repetition, then frame, with the file
//order of particles preserved. A nil o means DefaultOptions().
func Repetitions(runs []*granstat.Run, o *Options) (*Dataset, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("align: no runs to align: %w", granstat.ErrInsufficientRepetitions)
	}
	D := &Dataset{Config: runs[0].Config, Maxima: make(map[int]float64, len(runs))}
	maxima := make([]float64, 0, len(runs))
	for _, r := range runs {
		if r.Config != D.Config {
			return nil, fmt.Errorf("align: run %s does not belong to configuration %s", r, D.Config.Label())
		}
		if _, ok := D.Maxima[r.Repetition]; ok {
			return nil, fmt.Errorf("align: repetition %d of %s given twice", r.Repetition, D.Config.Label())
		}
		m, err := granstat.StabilizationTime(r)
		if err != nil {
			return nil, fmt.Errorf("align: run %s: %w", r, err)
		}
		D.Maxima[r.Repetition] = m
		D.Repetitions = append(D.Repetitions, r.Repetition)
		maxima = append(maxima, m)
	}
	sort.Ints(D.Repetitions)
	D.Horizon = Horizon(maxima)
	if D.Horizon < o.Interval() {
		return nil, fmt.Errorf("align: %s: horizon %g shorter than the sampling interval %g: %w", D.Config.Label(), D.Horizon, o.Interval(), granstat.ErrEmptyHorizon)
	}
	for _, r := range runs {
		for _, rec := range r.Records {
			if rec.Time <= D.Horizon {
				D.Records = append(D.Records, rec)
			}
		}
	}
	sort.SliceStable(D.Records, func(i, j int) bool {
		a, b := &D.Records[i], &D.Records[j]
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		if a.Repetition != b.Repetition {
			return a.Repetition < b.Repetition
		}
		return a.Frame < b.Frame
	})
	return D, nil
}

//Len returns the number of records in the dataset.
func (D *Dataset) Len() int {
	return len(D.Records)
}
