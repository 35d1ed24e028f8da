/*
 * stats_test.go, part of granstat.
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
	"math"
	"math/rand"
	"testing"

	"github.com/rmera/granstat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func bucketer(t *testing.T) *Bucketer {
	B, err := NewBucketer(0.01, 1e-8)
	require.NoError(t, err)
	return B
}

func rec(time float64, rep, frame, id int, ke, speed float64) granstat.Record {
	return granstat.Record{Time: time, Repetition: rep, Frame: frame, ID: id, KineticEnergy: ke, Speed: speed}
}

func TestNewBucketer(t *testing.T) {
	for _, c := range [][2]float64{{0, 1e-8}, {-0.01, 1e-8}, {math.Inf(1), 1e-8}, {0.01, 0}, {0.01, 0.005}, {0.01, -1}, {math.NaN(), 1e-8}} {
		_, err := NewBucketer(c[0], c[1])
		assert.Error(t, err, c)
	}
}

func TestBucket(t *testing.T) {
	B := bucketer(t)
	cases := []struct {
		t  float64
		k  int
		ok bool
	}{
		{0, 0, true},
		{0.01, 1, true},
		{0.1 + 0.2, 30, true},
		{0.03 + 5e-9, 3, true},
		{0.03 - 5e-9, 3, true},
		{0.03 + 2e-8, 3, false},
		{0.015, 2, false},
		{0.0149, 1, false},
		{1.2, 120, true},
	}
	for _, c := range cases {
		k, ok := B.Bucket(c.t)
		assert.Equal(t, c.k, k, c.t)
		assert.Equal(t, c.ok, ok, c.t)
	}
	assert.InDelta(t, 0.3, B.Time(30), 1e-15)
}

func TestAccumulator(t *testing.T) {
	var A Accumulator
	assert.True(t, math.IsNaN(A.Mean()))
	assert.Equal(t, 0.0, A.Std())
	A.Add(3)
	assert.Equal(t, 3.0, A.Mean())
	assert.Equal(t, 0.0, A.Std())
	A.Add(5)
	assert.Equal(t, 4.0, A.Mean())
	assert.InDelta(t, math.Sqrt2, A.Std(), 1e-12)
	assert.Equal(t, 2, A.Count())
}

func TestAccumulatorOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, offset := range []float64{0, 1e3, 1e8} {
		var A Accumulator
		vals := make([]float64, 50)
		for i := range vals {
			vals[i] = offset + rng.NormFloat64()
			A.Add(vals[i])
		}
		mean, std := stat.MeanStdDev(vals, nil)
		assert.InEpsilon(t, mean, A.Mean(), 1e-12)
		assert.InEpsilon(t, std, A.Std(), 1e-6)
	}
}

//Values that are all the same must not give NaN from a negative variance.
func TestAccumulatorConstant(t *testing.T) {
	var A Accumulator
	for i := 0; i < 10; i++ {
		A.Add(0.1 + 0.2)
	}
	assert.Equal(t, 0.0, A.Std())
}

func TestSummarize(t *testing.T) {
	p := Summarize([]float64{1.0, 1.2, 0.9})
	assert.InDelta(t, 1.0333333333, p.Mean, 1e-9)
	assert.InDelta(t, 0.1527525232, p.Std, 1e-9)
	assert.Equal(t, 3, p.N)
	p = Summarize([]float64{2.5})
	assert.Equal(t, 2.5, p.Mean)
	assert.Equal(t, 0.0, p.Std)
}

func TestSingleRepetition(t *testing.T) {
	B := bucketer(t)
	records := []granstat.Record{
		rec(0, 0, 0, 0, 10, 3),
		rec(0, 0, 0, 1, 1, 1),
		rec(0, 0, 0, 2, 2, 2),
		rec(0.01, 0, 1, 0, 8, 2),
		rec(0.01, 0, 1, 1, 0.5, 1),
	}
	E := Aggregate(records, KineticEnergy, EnsembleSum(granstat.ProjectileID), B)
	require.Equal(t, 2, E.Len())
	assert.Equal(t, []float64{3, 0.5}, E.Means())
	assert.Equal(t, []float64{0, 0}, E.Stds())
	assert.Equal(t, []int{1, 1}, E.Counts())
	assert.Equal(t, []float64{0, 0.01}, E.Times())

	S := Aggregate(records, Speed, ScalarSeries(granstat.ProjectileID), B)
	assert.Equal(t, []float64{3, 2}, S.Means())
	assert.Equal(t, []int{0}, S.Repetitions)
}

func TestPartialBuckets(t *testing.T) {
	B := bucketer(t)
	records := []granstat.Record{
		rec(0, 0, 0, 0, 0, 4),
		rec(0, 1, 0, 0, 0, 6),
		rec(0, 2, 0, 0, 0, 8),
		rec(0.01, 0, 1, 0, 0, 3),
		rec(0.01, 2, 1, 0, 0, 5),
	}
	S := Aggregate(records, Speed, ScalarSeries(0), B)
	p, ok := S.At(0)
	require.True(t, ok)
	assert.Equal(t, 6.0, p.Mean)
	assert.Equal(t, 2.0, p.Std)
	assert.Equal(t, 3, p.N)
	p, ok = S.Lookup(0.01 + 1e-10)
	require.True(t, ok)
	assert.Equal(t, 2, p.N)
	assert.Equal(t, 4.0, p.Mean)
	_, ok = S.At(2)
	assert.False(t, ok)
	_, ok = S.Lookup(0.005)
	assert.False(t, ok)
	assert.Equal(t, []int{0, 1, 2}, S.Repetitions)
}

//A second frame of a repetition in the same bucket is ignored, and off-grid
//frames do not count at all.
func TestFirstFrameClaimsBucket(t *testing.T) {
	B := bucketer(t)
	records := []granstat.Record{
		rec(0.01+5e-9, 0, 2, 0, 0, 7),
		rec(0.01-5e-9, 0, 1, 0, 0, 5),
		rec(0.015, 0, 3, 0, 0, 100),
		rec(0.01, 1, 1, 1, 2, 0),
		rec(0.01, 1, 1, 2, 3, 0),
		rec(0.01, 1, 2, 1, 50, 0),
	}
	S := Aggregate(records, Speed, ScalarSeries(0), B)
	require.Equal(t, 1, S.Len())
	assert.Equal(t, 5.0, S.Points[0].Mean)
	assert.Equal(t, 1, S.Points[0].N)

	E := Aggregate(records, KineticEnergy, EnsembleSum(0), B)
	require.Equal(t, 1, E.Len())
	assert.Equal(t, 5.0, E.Points[0].Mean)
	assert.Equal(t, []int{1}, E.Repetitions)
}

func TestOrderIndependence(t *testing.T) {
	B := bucketer(t)
	var records []granstat.Record
	for rep := 0; rep < 4; rep++ {
		for f := 0; f < 20; f++ {
			for id := 0; id < 5; id++ {
				records = append(records, rec(float64(f)*0.01, rep, f, id, float64(rep*id+f), float64(rep+f)))
			}
		}
	}
	want := Aggregate(records, Speed, ScalarSeries(0), B)
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(records), func(i, j int) { records[i], records[j] = records[j], records[i] })
	got := Aggregate(records, Speed, ScalarSeries(0), B)
	assert.Equal(t, want.Points, got.Points)

	E := Aggregate(records, KineticEnergy, EnsembleSum(0), B)
	require.Equal(t, 20, E.Len())
	for _, p := range E.Points {
		assert.Equal(t, 4, p.N)
		assert.GreaterOrEqual(t, p.Std, 0.0)
	}
	//bucket f: sum over id 1..4 of rep*id+f = 10*rep + 4f; mean over reps 0..3 = 15 + 4f
	assert.InDelta(t, 15.0+4*7, E.Points[7].Mean, 1e-9)
}

func TestEmptyInput(t *testing.T) {
	S := Aggregate(nil, Speed, ScalarSeries(0), bucketer(t))
	assert.Equal(t, 0, S.Len())
	assert.Empty(t, S.Repetitions)
}

func TestPolicy(t *testing.T) {
	assert.True(t, ScalarSeries(3).accepts(3))
	assert.False(t, ScalarSeries(3).accepts(0))
	assert.False(t, EnsembleSum(0).accepts(0))
	assert.True(t, EnsembleSum(0).accepts(9))
	assert.True(t, EnsembleSum().accepts(0))
	assert.Equal(t, "particle 0", ScalarSeries(0).String())
	assert.Equal(t, "sum excluding [0]", EnsembleSum(0).String())
	assert.Equal(t, "speed", Speed.String())
}
