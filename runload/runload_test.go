/*
 * runload_test.go, part of granstat.
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

package runload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/granstat"
	"github.com/rmera/granstat/traj/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRun(t *testing.T, name string, times ...float64) {
	w, err := dump.NewWriter(name)
	require.NoError(t, err)
	for _, tm := range times {
		f := granstat.Frame{Time: tm, Particles: []granstat.ParticleState{
			{ID: 0, Velocity: [3]float64{3, 4, 0}, Mass: 2, Radius: 0.02},
			{ID: 1, Velocity: [3]float64{0, 0, -1}, Mass: 0.5, Radius: 0.01},
		}}
		require.NoError(t, w.WNext(&f))
	}
	require.NoError(t, w.Close())
}

func TestLayout(t *testing.T) {
	L := Layout{Base: "out/runs"}
	assert.Equal(t, filepath.Join("out/runs", "g_100_rep_3.xyz"), L.Path("g_100", 3))
	c := L.Candidates("d1", 0)
	require.Len(t, c, 3)
	assert.Equal(t, filepath.Join("out/runs", "d1_rep_0.xyz.zst"), c[1])
	assert.Equal(t, filepath.Join("out/runs", "d1_rep_0.xyz.gz"), c[2])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	id := granstat.Gamma(100)
	writeRun(t, filepath.Join(dir, "g_100_rep_2.xyz"), 0, 0.01, 0.02)
	L := &Loader{Layout: Layout{Base: dir}}
	run, err := L.Load(id, 2)
	require.NoError(t, err)
	assert.Equal(t, id, run.Config)
	assert.Equal(t, 2, run.Repetition)
	require.Len(t, run.Frames, 3)
	require.Len(t, run.Records, 6)
	for _, r := range run.Records {
		assert.Equal(t, 2, r.Repetition)
	}
	bullet := run.Records[2]
	assert.Equal(t, 0, bullet.ID)
	assert.Equal(t, 1, bullet.Frame)
	assert.Equal(t, 0.01, bullet.Time)
	assert.InDelta(t, 25.0, bullet.KineticEnergy, 1e-12)
	assert.InDelta(t, 5.0, bullet.Speed, 1e-12)
	assert.InDelta(t, 0.25, run.Records[3].KineticEnergy, 1e-12)
}

func TestLoadCompressed(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, filepath.Join(dir, "bAngle_45_rep_0.xyz.zst"), 0, 0.5)
	L := &Loader{Layout: Layout{Base: dir}}
	run, err := L.Load(granstat.Angle(45), 0)
	require.NoError(t, err)
	assert.Len(t, run.Frames, 2)
}

func TestLoadMissing(t *testing.T) {
	L := &Loader{Layout: Layout{Base: t.TempDir()}}
	_, err := L.Load(granstat.Gamma(50), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, granstat.ErrRunNotFound))
	var lerr *Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 0, lerr.Repetition())
	assert.Equal(t, []string{"Find", "Load"}, lerr.Decorate(""))
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "g_50_rep_0.xyz"), []byte("5\nheader\n1 0 0 0 0 0 0 1 1 0 0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "g_50_rep_1.xyz"), nil, 0o644))
	L := &Loader{Layout: Layout{Base: dir}}
	_, err := L.Load(granstat.Gamma(50), 0)
	assert.True(t, errors.Is(err, granstat.ErrMalformedDump))
	_, err = L.Load(granstat.Gamma(50), 1)
	assert.True(t, errors.Is(err, granstat.ErrMalformedDump))
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	id := granstat.ParticleCount(1500)
	writeRun(t, filepath.Join(dir, "nParticles_1500_rep_0.xyz"), 0, 0.01)
	writeRun(t, filepath.Join(dir, "nParticles_1500_rep_2.xyz.gz"), 0, 0.01, 0.02)
	L := &Loader{Layout: Layout{Base: dir}, Workers: 2}
	B, err := L.LoadAll(id, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, B.Repetitions())
	assert.Equal(t, []int{1}, B.Missing)
	assert.Len(t, B.Runs[1].Frames, 3)
}

func TestLoadAllSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	id := granstat.Gamma(75)
	writeRun(t, filepath.Join(dir, "g_75_rep_0.xyz"), 0, 0.01)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "g_75_rep_1.xyz"), []byte("two\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "g_75_rep_3.xyz"), []byte("1000000000000000\nheader\n0 0 0 0 0 0 0 1 1 0 0\n"), 0o644))
	L := &Loader{Layout: Layout{Base: dir}, Workers: 2}
	B, err := L.LoadAll(id, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, B.Repetitions())
	assert.Equal(t, []int{2}, B.Missing)
	assert.Equal(t, []int{1, 3}, B.Malformed)
}

func TestLoadAllNegative(t *testing.T) {
	L := &Loader{Layout: Layout{Base: t.TempDir()}}
	B, err := L.LoadAll(granstat.Gamma(1), -1)
	require.Error(t, err)
	assert.Nil(t, B)
	assert.True(t, errors.Is(err, granstat.ErrInsufficientRepetitions))
	B, err = L.LoadAll(granstat.Gamma(1), 0)
	require.NoError(t, err)
	assert.Empty(t, B.Runs)
}
