/*
 * config_test.go, part of granstat.
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

package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/granstat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, text string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "sweep.yaml", `
base_path: /data/runs
repetitions: 3
read_workers: 2
plot_dir: plots
configurations:
  - dimension: gamma
    value: 100
  - dimension: angle
    value: 22.5
    label: shallow
  - dimension: diameter
    name: d1
    lower: 0.01
    upper: 0.02
  - dimension: particles
    value: 1500
    stem: nP1500
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.CheckInit())
	assert.Equal(t, "/data/runs", c.BasePath)
	assert.Equal(t, 3, c.Repetitions)
	assert.Equal(t, 0.01, c.Interval)
	assert.Equal(t, 1e-8, c.Epsilon)
	assert.Equal(t, "plots", c.PlotDir)
	assert.Equal(t, 2, c.ReadWorkers)
	ids, err := c.IDs()
	require.NoError(t, err)
	require.Len(t, ids, 4)
	assert.Equal(t, granstat.Gamma(100), ids[0])
	assert.Equal(t, "shallow", ids[1].Label())
	assert.Equal(t, "bAngle_22.5", ids[1].Stem())
	assert.Equal(t, "d1", ids[2].Stem())
	assert.Equal(t, "diameter = d1", ids[2].Label())
	assert.Equal(t, 0.02, ids[2].Upper)
	assert.Equal(t, "nP1500", ids[3].Stem())
	assert.Equal(t, "particles = 1500", ids[3].Label())
}

func TestLoadINI(t *testing.T) {
	path := writeFile(t, "sweep.ini", `
[Sweep]
BasePath = runs
Repetitions = 4
ReadWorkers = 3
Dimension = gamma
Value = 50
Value = 100
Value = 200
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.CheckInit())
	assert.Equal(t, "runs", c.BasePath)
	assert.Equal(t, 4, c.Repetitions)
	assert.Equal(t, 3, c.ReadWorkers)
	assert.Equal(t, 0.01, c.Interval)
	ids, err := c.IDs()
	require.NoError(t, err)
	assert.Equal(t, []granstat.ConfigID{granstat.Gamma(50), granstat.Gamma(100), granstat.Gamma(200)}, ids)
}

func TestLoadINIDiameters(t *testing.T) {
	path := writeFile(t, "sweep.cfg", `
[Sweep]
Dimension = diameter
Name = small
Lower = 0.01
Upper = 0.015
Name = large
Lower = 0.02
Upper = 0.03
`)
	c, err := Load(path)
	require.NoError(t, err)
	ids, err := c.IDs()
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, granstat.Diameter("large", 0.02, 0.03), ids[1])

	bad := writeFile(t, "bad.ini", "[Sweep]\nDimension = diameter\nName = a\nName = b\nLower = 1\nUpper = 2\n")
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("sweep.toml")
	assert.Error(t, err)
	_, err = Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
	path := writeFile(t, "bad.yaml", "configurations:\n  - dimension: temperature\n    value: 3\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Error(t, c.CheckInit())
	path = writeFile(t, "count.yaml", "configurations:\n  - dimension: particles\n    value: 10.5\n")
	c, err = Load(path)
	require.NoError(t, err)
	_, err = c.IDs()
	assert.Error(t, err)
}
