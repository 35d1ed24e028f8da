/*
 * histo.go, part of granstat.
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

//Package histo bins particle quantities, such as the speeds of the bed
//particles in a frame, into histograms.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram. Bin i holds the values v with dividers[i] <= v < dividers[i+1].
//Values outside all the bins are counted as out of range.
type Data struct {
	normalized bool
	total      int
	outside    int
	dividers   []float64
	histo      []float64
}

//Uniform returns n+1 dividers splitting [lo, hi] into n bins of equal width.
func Uniform(lo, hi float64, n int) ([]float64, error) {
	if n < 1 || !(hi > lo) {
		return nil, fmt.Errorf("histo: can't split [%g, %g] into %d bins", lo, hi, n)
	}
	return floats.Span(make([]float64, n+1), lo, hi), nil
}

//NewData returns a histogram with the given dividers, which must be sorted
//and at least 2, filled with rawdata, which can be nil. Neither slice is kept.
func NewData(dividers []float64, rawdata []float64) (*Data, error) {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("histo: need at least 2 sorted dividers, got %v", dividers)
	}
	D := new(Data)
	D.dividers = append([]float64(nil), dividers...)
	D.histo = make([]float64, len(dividers)-1)
	D.AddData(rawdata...)
	return D, nil
}

//AddData adds the given values to the histogram. If it was normalized, it stays so.
func (D *Data) AddData(point ...float64) {
	if len(point) == 0 {
		return
	}
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	raw := append([]float64(nil), point...)
	sort.Float64s(raw)
	//stat.Histogram panics on values out of the dividers, so those are cut first.
	lo := sort.SearchFloat64s(raw, D.dividers[0])
	hi := sort.SearchFloat64s(raw, D.dividers[len(D.dividers)-1])
	D.outside += len(raw) - (hi - lo)
	if hi > lo {
		counts := stat.Histogram(nil, D.dividers, raw[lo:hi], nil)
		floats.Add(D.histo, counts)
	}
	D.total += len(point)
	if norma {
		D.Normalize()
	}
}

//Total returns the number of values added, including those out of range.
func (D *Data) Total() int {
	return D.total
}

//Outside returns the number of values that fell out of every bin.
func (D *Data) Outside() int {
	return D.outside
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize divides every bin by the number of values added.
func (D *Data) Normalize() {
	if D.normalized || D.total <= 0 {
		return
	}
	floats.Scale(1/float64(D.total), D.histo)
	D.normalized = true
}

//UnNormalize returns the bins to counts.
func (D *Data) UnNormalize() {
	if !D.normalized {
		return
	}
	floats.Scale(float64(D.total), D.histo)
	D.normalized = false
}

//Dividers returns a copy of the dividers.
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

//View returns the bins. They should not be modified.
func (D *Data) View() []float64 {
	return D.histo
}

func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//String prints one bin per line.
func (D *Data) String() string {
	lines := make([]string, 0, len(D.histo)+1)
	for i, v := range D.histo {
		lines = append(lines, fmt.Sprintf("%9.4g - %9.4g  %9.4g", D.dividers[i], D.dividers[i+1], v))
	}
	lines = append(lines, fmt.Sprintf("total %d, out of range %d, normalized %v", D.total, D.outside, D.normalized))
	return strings.Join(lines, "\n")
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Outside    int       `json:"outside"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Normalized: D.normalized,
		Total:      D.total,
		Outside:    D.outside,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}
