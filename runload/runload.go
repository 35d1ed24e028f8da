/*
 * runload.go, part of granstat.
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

// Package runload loads the dump file of one repetition of one configuration
// and derives, for every particle in every frame, its kinetic energy and speed.
package runload

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rmera/granstat"
	"github.com/rmera/granstat/traj/dump"
	"golang.org/x/sync/errgroup"
)

// Ext is the extension of uncompressed dump files.
const Ext = ".xyz"

// compressed variants tried, in order, after the plain file.
var compressedExts = []string{".zst", ".gz"}

// Layout maps (configuration, repetition) pairs to file names:
// <Base>/<stem>_rep_<rep>.xyz
type Layout struct {
	Base string
}

// Path returns the name of the uncompressed dump for the given stem and repetition.
func (L Layout) Path(stem string, rep int) string {
	return filepath.Join(L.Base, fmt.Sprintf("%s_rep_%d%s", stem, rep, Ext))
}

// Candidates returns every name under which the dump may be found: the plain
// file first, then its compressed variants.
func (L Layout) Candidates(stem string, rep int) []string {
	p := L.Path(stem, rep)
	ret := []string{p}
	for _, e := range compressedExts {
		ret = append(ret, p+e)
	}
	return ret
}

// Find returns the first candidate that exists. If none does, the error
// wraps granstat.ErrRunNotFound.
func (L Layout) Find(stem string, rep int) (string, error) {
	for _, name := range L.Candidates(stem, rep) {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", &Error{message: "no dump file", filename: L.Path(stem, rep), stem: stem, rep: rep, deco: []string{"Find"}, err: granstat.ErrRunNotFound}
}

// Loader loads repetitions from the files in Layout.
type Loader struct {
	Layout  Layout
	Workers int          //maximum number of files read at the same time. NumCPU if 0 or less.
	Logger  *slog.Logger //nil discards the logs
}

func (L *Loader) logger() *slog.Logger {
	if L.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return L.Logger
}

func (L *Loader) workers() int {
	if L.Workers <= 0 {
		return runtime.NumCPU()
	}
	return L.Workers
}

// Load reads every frame of repetition rep of the configuration id. The file
// is closed before Load returns, whatever happens.
// A missing file gives an error that wraps granstat.ErrRunNotFound; a file
// that can't be decoded, one that wraps granstat.ErrMalformedDump.
func (L *Loader) Load(id granstat.ConfigID, rep int) (*granstat.Run, error) {
	name, err := L.Layout.Find(id.Stem(), rep)
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	r, err := dump.New(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) { //removed between Find and New
			return nil, &Error{message: err.Error(), filename: name, stem: id.Stem(), rep: rep, deco: []string{"Load"}, err: granstat.ErrRunNotFound}
		}
		return nil, errDecorate(err, "Load")
	}
	defer r.Close()
	run := &granstat.Run{Config: id, Repetition: rep}
	for {
		var f granstat.Frame
		err := r.Next(&f)
		if err != nil {
			var last granstat.LastFrameError
			if errors.As(err, &last) {
				break
			}
			return nil, errDecorate(err, "Load")
		}
		run.Frames = append(run.Frames, f)
	}
	if len(run.Frames) == 0 {
		return nil, &Error{message: "no frames in file", filename: name, stem: id.Stem(), rep: rep, deco: []string{"Load"}, err: granstat.ErrMalformedDump}
	}
	run.Records = Derive(run.Frames, rep)
	L.logger().Debug("loaded repetition", "config", id.Label(), "rep", rep, "file", name, "frames", len(run.Frames), "records", len(run.Records))
	return run, nil
}

// Derive returns one record per particle per frame, tagged with rep.
func Derive(frames []granstat.Frame, rep int) []granstat.Record {
	n := 0
	for i := range frames {
		n += len(frames[i].Particles)
	}
	ret := make([]granstat.Record, 0, n)
	for i := range frames {
		f := &frames[i]
		for j := range f.Particles {
			ret = append(ret, granstat.NewRecord(&f.Particles[j], i, f.Time, rep))
		}
	}
	return ret
}

// Batch is what LoadAll gets for a configuration.
type Batch struct {
	Runs      []*granstat.Run //sorted by repetition
	Missing   []int           //repetitions whose files were not found
	Malformed []int           //repetitions whose files could not be parsed
}

// Repetitions returns the indexes of the repetitions loaded.
func (B *Batch) Repetitions() []int {
	ret := make([]int, len(B.Runs))
	for i, r := range B.Runs {
		ret[i] = r.Repetition
	}
	return ret
}

// LoadAll loads repetitions 0 to reps-1 of id, several at a time.
// Missing and malformed repetitions are logged and skipped. Any other error
// is returned, and the whole batch is discarded.
func (L *Loader) LoadAll(id granstat.ConfigID, reps int) (*Batch, error) {
	if reps < 0 {
		return nil, &Error{message: fmt.Sprintf("can't load %d repetitions", reps), stem: id.Stem(), rep: reps, deco: []string{"LoadAll"}, err: granstat.ErrInsufficientRepetitions}
	}
	runs := make([]*granstat.Run, reps)
	errs := make([]error, reps) //each worker writes only its own slot
	var g errgroup.Group
	g.SetLimit(L.workers())
	for i := 0; i < reps; i++ {
		i := i
		g.Go(func() error {
			runs[i], errs[i] = L.Load(id, i)
			return nil
		})
	}
	g.Wait()
	B := new(Batch)
	for i, err := range errs {
		switch {
		case err == nil:
			B.Runs = append(B.Runs, runs[i])
		case errors.Is(err, granstat.ErrRunNotFound):
			B.Missing = append(B.Missing, i)
			L.logger().Warn("skipping missing repetition", "config", id.Label(), "rep", i, "file", L.Layout.Path(id.Stem(), i))
		case errors.Is(err, granstat.ErrMalformedDump):
			B.Malformed = append(B.Malformed, i)
			L.logger().Error("skipping malformed repetition", "config", id.Label(), "rep", i, "error", err)
		default:
			return nil, errDecorate(err, "LoadAll")
		}
	}
	return B, nil
}
