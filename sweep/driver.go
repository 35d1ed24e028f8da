/*
 * driver.go, part of granstat.
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

// Package sweep runs the analysis of a parameter sweep: for each configuration
// it loads every repetition, aligns them, and reduces them to the statistics
// reported by the simulator's analysis scripts.
package sweep

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rmera/granstat"
	"github.com/rmera/granstat/align"
	"github.com/rmera/granstat/runload"
	"github.com/rmera/granstat/stats"
	"golang.org/x/sync/errgroup"
)

// Series holds everything computed for one configuration. If Err is not nil,
// the configuration failed and only ID, Missing, Malformed and Err are meaningful.
type Series struct {
	ID          granstat.ConfigID
	Repetitions []int //repetitions used
	Missing     []int //repetitions whose files were not found
	Malformed   []int //repetitions whose files could not be parsed
	Horizon     float64

	// Speed is the projectile speed; Energy the kinetic energy of the bed,
	// projectile excluded.
	Speed  *stats.MetricStats
	Energy *stats.MetricStats

	// StabilizationSamples has one time per repetition used, in the order
	// of Repetitions. Taken from the whole runs, before alignment.
	StabilizationSamples []float64
	Stabilization        stats.Point

	Err error
}

// Label returns the label of the configuration.
func (S *Series) Label() string {
	return S.ID.Label()
}

// Driver runs sweeps.
type Driver struct {
	cfg      *Config
	logger   *slog.Logger
	loader   *runload.Loader
	bucketer *stats.Bucketer
	aligner  *align.Options
}

// New returns a driver for the given configuration, which is checked first.
// A nil logger discards the logs.
func New(cfg *Config, logger *slog.Logger) (*Driver, error) {
	if err := cfg.CheckInit(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	B, err := stats.NewBucketer(cfg.Interval, cfg.Epsilon)
	if err != nil {
		return nil, err
	}
	o := align.DefaultOptions()
	o.Interval(cfg.Interval)
	o.Tolerance(cfg.Epsilon)
	return &Driver{
		cfg:      cfg,
		logger:   logger,
		loader:   &runload.Loader{Layout: runload.Layout{Base: cfg.BasePath}, Workers: cfg.ReadWorkers, Logger: logger},
		bucketer: B,
		aligner:  o,
	}, nil
}

// Process computes the series of a single configuration. Failures are
// recorded in the Err field of the returned series.
func (D *Driver) Process(id granstat.ConfigID) *Series {
	S := &Series{ID: id}
	batch, err := D.loader.LoadAll(id, D.cfg.Repetitions)
	if err != nil {
		S.Err = err
		return S
	}
	S.Missing = batch.Missing
	S.Malformed = batch.Malformed
	if len(batch.Runs) == 0 {
		S.Err = fmt.Errorf("none of the %d repetitions of %s could be loaded (%d missing, %d malformed): %w", D.cfg.Repetitions, id.Label(), len(S.Missing), len(S.Malformed), granstat.ErrInsufficientRepetitions)
		return S
	}
	for _, r := range batch.Runs {
		t, err := granstat.StabilizationTime(r)
		if err != nil {
			S.Err = err
			return S
		}
		S.StabilizationSamples = append(S.StabilizationSamples, t)
	}
	data, err := align.Repetitions(batch.Runs, D.aligner)
	if err != nil {
		S.Err = err
		return S
	}
	S.Repetitions = data.Repetitions
	S.Horizon = data.Horizon
	S.Speed = stats.Aggregate(data.Records, stats.Speed, stats.ScalarSeries(D.cfg.ProjectileID), D.bucketer)
	S.Energy = stats.Aggregate(data.Records, stats.KineticEnergy, stats.EnsembleSum(D.cfg.ProjectileID), D.bucketer)
	S.Stabilization = stats.Summarize(S.StabilizationSamples)
	D.logger.Info("configuration done", "config", id.Label(), "repetitions", len(S.Repetitions), "missing", len(S.Missing), "malformed", len(S.Malformed), "horizon", S.Horizon, "buckets", S.Speed.Len())
	return S
}

// Run processes the configurations, several at a time, and returns their
// results in the order given. A failed configuration is logged and does not
// stop the others.
func (D *Driver) Run(ids []granstat.ConfigID) *Result {
	series := make([]*Series, len(ids))
	var g errgroup.Group
	g.SetLimit(D.cfg.Workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			series[i] = D.Process(id)
			return nil
		})
	}
	g.Wait()
	R := &Result{index: make(map[string]int, len(series))}
	for _, S := range series {
		if S.Err != nil {
			D.logger.Error("configuration failed", "config", S.Label(), "missing", len(S.Missing), "malformed", len(S.Malformed), "error", S.Err)
		}
		R.add(S, D.logger)
	}
	return R
}

// Result is the outcome of a sweep. Series are kept in the order the
// configurations were given, and keyed by label.
type Result struct {
	Series []*Series
	index  map[string]int
}

// add appends S. If a series with the same label is already there, S
// replaces it, in its position.
func (R *Result) add(S *Series, logger *slog.Logger) {
	label := S.Label()
	if i, ok := R.index[label]; ok {
		logger.Warn("duplicate configuration label, the later one wins", "label", label, "replaced", R.Series[i].ID.Stem(), "by", S.ID.Stem())
		R.Series[i] = S
		return
	}
	R.index[label] = len(R.Series)
	R.Series = append(R.Series, S)
}

// Labels returns the labels of the series, in order.
func (R *Result) Labels() []string {
	ret := make([]string, len(R.Series))
	for i, S := range R.Series {
		ret[i] = S.Label()
	}
	return ret
}

// Lookup returns the series with the given label.
func (R *Result) Lookup(label string) (*Series, bool) {
	i, ok := R.index[label]
	if !ok {
		return nil, false
	}
	return R.Series[i], true
}

// Failed returns the series that failed.
func (R *Result) Failed() []*Series {
	var ret []*Series
	for _, S := range R.Series {
		if S.Err != nil {
			ret = append(ret, S)
		}
	}
	return ret
}

func (R *Result) collect(f func(S *Series)) {
	for _, S := range R.Series {
		if S.Err == nil {
			f(S)
		}
	}
}

// Speeds returns the projectile speed of each successful configuration, by label.
func (R *Result) Speeds() map[string]*stats.MetricStats {
	ret := make(map[string]*stats.MetricStats)
	R.collect(func(S *Series) { ret[S.Label()] = S.Speed })
	return ret
}

// Energies returns the kinetic energy of the bed of each successful configuration, by label.
func (R *Result) Energies() map[string]*stats.MetricStats {
	ret := make(map[string]*stats.MetricStats)
	R.collect(func(S *Series) { ret[S.Label()] = S.Energy })
	return ret
}

// StabilizationSamples returns the stabilization time of each repetition of each
// successful configuration, by label.
func (R *Result) StabilizationSamples() map[string][]float64 {
	ret := make(map[string][]float64)
	R.collect(func(S *Series) { ret[S.Label()] = S.StabilizationSamples })
	return ret
}

// Stabilization returns the mean and standard deviation of the stabilization
// time of each successful configuration, by label.
func (R *Result) Stabilization() map[string]stats.Point {
	ret := make(map[string]stats.Point)
	R.collect(func(S *Series) { ret[S.Label()] = S.Stabilization })
	return ret
}
