/*
 * main_test.go, part of granstat.
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

package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rmera/granstat"
	"github.com/rmera/granstat/traj/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRun(t *testing.T, name string, frames int, speed float64) {
	w, err := dump.NewWriter(name)
	require.NoError(t, err)
	for k := 0; k < frames; k++ {
		f := granstat.Frame{Time: float64(k) * 0.01, Particles: []granstat.ParticleState{
			{ID: 0, Velocity: [3]float64{speed, 0, 0}, Mass: 1},
			{ID: 1, Velocity: [3]float64{0, 1, 0}, Mass: 2},
		}}
		require.NoError(t, w.WNext(&f))
	}
	require.NoError(t, w.Close())
}

func run(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("whatever"))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func setup(t *testing.T) string {
	dir := t.TempDir()
	for rep := 0; rep < 2; rep++ {
		writeRun(t, filepath.Join(dir, "g_100_rep_"+strconv.Itoa(rep)+".xyz"), 5+rep, float64(2+2*rep))
	}
	cfg := "base_path: " + dir + "\nrepetitions: 2\nconfigurations:\n  - dimension: gamma\n    value: 100\n  - dimension: gamma\n    value: 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sweep.yaml"), []byte(cfg), 0o644))
	return dir
}

func TestSweepCmd(t *testing.T) {
	dir := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "g_7_rep_0.xyz"), []byte("two\n"), 0o644))
	out, err := run(t, "sweep", "-c", filepath.Join(dir, "sweep.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "gamma = 100")
	assert.Contains(t, out, "g_100")
	assert.Contains(t, out, "failed")

	out, err = run(t, "sweep", "-c", filepath.Join(dir, "sweep.yaml"), "--json", "--plot-dir", filepath.Join(dir, "plots"))
	require.NoError(t, err)
	var got struct {
		Configurations []jsonSeries `json:"configurations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Configurations, 2)
	c := got.Configurations[0]
	assert.Equal(t, []int{0, 1}, c.Repetitions)
	assert.InDelta(t, 0.04, c.Horizon, 1e-12)
	require.Len(t, c.Speed, 5)
	assert.InDelta(t, 3.0, c.Speed[0].Mean, 1e-12)
	assert.Equal(t, 2, c.Speed[0].N)
	assert.NotEmpty(t, got.Configurations[1].Error)
	assert.Equal(t, []int{0}, got.Configurations[1].Malformed)
	assert.Equal(t, []int{1}, got.Configurations[1].Missing)
	_, err = os.Stat(filepath.Join(dir, "plots", "speed.png"))
	assert.NoError(t, err)
}

func TestSweepCmdErrors(t *testing.T) {
	_, err := run(t, "sweep")
	assert.Error(t, err)
	_, err = run(t, "sweep", "-c", "nothere.yaml")
	assert.Error(t, err)
}

func TestExportCmd(t *testing.T) {
	dir := setup(t)
	name := filepath.Join(dir, "out.csv")
	_, err := run(t, "export", "g_100", "--base", dir, "--reps", "3", "-o", name)
	require.NoError(t, err)
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1+2*5+2*6)

	_, err = run(t, "export", "g_5", "--base", dir, "-o", name)
	assert.Error(t, err)
}

func TestInspectCmd(t *testing.T) {
	dir := setup(t)
	out, err := run(t, "inspect", filepath.Join(dir, "g_100_rep_1.xyz"), "--json")
	require.NoError(t, err)
	var info dumpInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, 6, info.Frames)
	assert.Equal(t, 2, info.MaxParticles)
	assert.InDelta(t, 0.05, info.LastTime, 1e-12)
	assert.True(t, info.Projectile)

	_, err = run(t, "inspect", filepath.Join(dir, "sweep.yaml"))
	assert.Error(t, err)
}

func TestInspectSpeedHistogram(t *testing.T) {
	dir := setup(t)
	out, err := run(t, "inspect", filepath.Join(dir, "g_100_rep_0.xyz"), "--speed-bins", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "bed speeds at t = 0.04")
	assert.Contains(t, out, "total 1, out of range 0")
}
