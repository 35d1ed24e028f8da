/*
 * config.go, part of granstat.
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
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rmera/granstat"
	"gopkg.in/gcfg.v1"
	"gopkg.in/yaml.v3"
)

// Config contains every setting of a sweep.
type Config struct {
	// BasePath is the directory with the dump files.
	BasePath string `json:"base_path" yaml:"base_path"`

	// Repetitions is the number of repetitions expected for each configuration.
	Repetitions int `json:"repetitions" yaml:"repetitions"`

	// Interval is the sampling interval of the simulator's output.
	Interval float64 `json:"interval" yaml:"interval"`

	// Epsilon is the tolerance used to match frame times to the sampling grid.
	// Must be positive and smaller than Interval/2.
	Epsilon float64 `json:"epsilon" yaml:"epsilon"`

	// ProjectileID is the id of the bullet in the dumps.
	ProjectileID int `json:"projectile_id" yaml:"projectile_id"`

	// Workers bounds the configurations processed at the same time.
	Workers int `json:"workers" yaml:"workers"`

	// ReadWorkers bounds the repetitions each configuration reads at the
	// same time. At most Workers*ReadWorkers files are open at once.
	ReadWorkers int `json:"read_workers" yaml:"read_workers"`

	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string `json:"log_level" yaml:"log_level"`

	// PlotDir, if not empty, is where the plots of the sweep are saved.
	PlotDir string `json:"plot_dir,omitempty" yaml:"plot_dir,omitempty"`

	// Configurations are processed, and reported, in this order.
	Configurations []ConfigEntry `json:"configurations" yaml:"configurations"`
}

// ConfigEntry describes one configuration of the sweep.
type ConfigEntry struct {
	// Dimension is "angle", "diameter", "gamma" or "particles".
	Dimension string `json:"dimension" yaml:"dimension"`

	// Value is the angle in degrees, the gamma or the particle count.
	Value float64 `json:"value,omitempty" yaml:"value,omitempty"`

	// Name, Lower and Upper describe a diameter range.
	Name  string  `json:"name,omitempty" yaml:"name,omitempty"`
	Lower float64 `json:"lower,omitempty" yaml:"lower,omitempty"`
	Upper float64 `json:"upper,omitempty" yaml:"upper,omitempty"`

	// Label and Stem override the ones derived from the dimension and value.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Stem  string `json:"stem,omitempty" yaml:"stem,omitempty"`
}

// Default returns the settings of the simulator's own analysis scripts,
// with no configurations.
func Default() *Config {
	return &Config{
		BasePath:     ".",
		Repetitions:  5,
		Interval:     0.01,
		Epsilon:      1e-8,
		ProjectileID: granstat.ProjectileID,
		Workers:      runtime.NumCPU(),
		ReadWorkers:  1,
		LogLevel:     "info",
	}
}

// Load reads the configuration file at path on top of Default(). YAML files
// (.yaml, .yml) and gcfg INI files (.ini, .cfg, .gcfg) are understood.
func Load(path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".ini", ".cfg", ".gcfg":
		return loadINI(path)
	}
	return nil, fmt.Errorf("unknown configuration format for '%s'", path)
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

// iniSweep is the [Sweep] section of an INI configuration. An INI file
// describes a sweep along a single dimension. Value is given once per
// configuration; for diameters, Name, Lower and Upper are given once per range.
type iniSweep struct {
	BasePath     string
	Repetitions  int
	Interval     float64
	Epsilon      float64
	ProjectileID int
	Workers      int
	ReadWorkers  int
	LogLevel     string
	PlotDir      string

	Dimension string
	Value     []float64
	Name      []string
	Lower     []float64
	Upper     []float64
}

type iniWrapper struct {
	Sweep iniSweep
}

func defaultINIWrapper() *iniWrapper {
	d := Default()
	return &iniWrapper{Sweep: iniSweep{
		BasePath:     d.BasePath,
		Repetitions:  d.Repetitions,
		Interval:     d.Interval,
		Epsilon:      d.Epsilon,
		ProjectileID: d.ProjectileID,
		Workers:      d.Workers,
		ReadWorkers:  d.ReadWorkers,
		LogLevel:     d.LogLevel,
	}}
}

func loadINI(path string) (*Config, error) {
	wrap := defaultINIWrapper()
	if err := gcfg.ReadFileInto(wrap, path); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	s := &wrap.Sweep
	config := &Config{
		BasePath:     s.BasePath,
		Repetitions:  s.Repetitions,
		Interval:     s.Interval,
		Epsilon:      s.Epsilon,
		ProjectileID: s.ProjectileID,
		Workers:      s.Workers,
		ReadWorkers:  s.ReadWorkers,
		LogLevel:     s.LogLevel,
		PlotDir:      s.PlotDir,
	}
	dim, err := granstat.ParseDimension(s.Dimension)
	if err != nil {
		return nil, err
	}
	if dim == granstat.DimDiameter {
		if len(s.Lower) != len(s.Name) || len(s.Upper) != len(s.Name) {
			return nil, fmt.Errorf("%d diameter names given, with %d lower and %d upper bounds", len(s.Name), len(s.Lower), len(s.Upper))
		}
		for i, name := range s.Name {
			config.Configurations = append(config.Configurations, ConfigEntry{Dimension: s.Dimension, Name: name, Lower: s.Lower[i], Upper: s.Upper[i]})
		}
		return config, nil
	}
	for _, v := range s.Value {
		config.Configurations = append(config.Configurations, ConfigEntry{Dimension: s.Dimension, Value: v})
	}
	return config, nil
}

// CheckInit checks that the settings make sense, and fills in the ones
// that can be left out.
func (c *Config) CheckInit() error {
	if c.Repetitions <= 0 {
		return fmt.Errorf("need a positive number of repetitions, but got %d", c.Repetitions)
	}
	if !(c.Interval > 0) {
		return fmt.Errorf("interval must be positive, but is %g", c.Interval)
	}
	if !(c.Epsilon > 0) || c.Epsilon >= c.Interval/2 {
		return fmt.Errorf("epsilon must be in range (0, %g), but is %g", c.Interval/2, c.Epsilon)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.ReadWorkers <= 0 {
		c.ReadWorkers = 1
	}
	if c.BasePath == "" {
		c.BasePath = "."
	}
	validLevels := map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}
	for i := range c.Configurations {
		if _, err := c.Configurations[i].ID(); err != nil {
			return fmt.Errorf("configuration %d: %w", i, err)
		}
	}
	return nil
}

// ID builds the ConfigID for the entry.
func (e *ConfigEntry) ID() (granstat.ConfigID, error) {
	dim, err := granstat.ParseDimension(e.Dimension)
	if err != nil {
		return granstat.ConfigID{}, err
	}
	var id granstat.ConfigID
	switch dim {
	case granstat.DimAngle:
		id = granstat.Angle(e.Value)
	case granstat.DimGamma:
		id = granstat.Gamma(e.Value)
	case granstat.DimParticleCount:
		if e.Value <= 0 || e.Value != float64(int(e.Value)) {
			return id, fmt.Errorf("particle count must be a positive integer, but is %g", e.Value)
		}
		id = granstat.ParticleCount(int(e.Value))
	case granstat.DimDiameter:
		if e.Name == "" {
			return id, fmt.Errorf("diameter range needs a name")
		}
		if !(e.Lower > 0) || e.Upper < e.Lower {
			return id, fmt.Errorf("diameter range '%s' must have 0 < lower <= upper, but is [%g, %g]", e.Name, e.Lower, e.Upper)
		}
		id = granstat.Diameter(e.Name, e.Lower, e.Upper)
	}
	if e.Stem != "" {
		id = id.WithStem(e.Stem)
	}
	if e.Label != "" {
		id = id.WithLabel(e.Label)
	}
	return id, nil
}

// IDs returns the ConfigIDs of the configurations, in order.
func (c *Config) IDs() ([]granstat.ConfigID, error) {
	ret := make([]granstat.ConfigID, 0, len(c.Configurations))
	for i := range c.Configurations {
		id, err := c.Configurations[i].ID()
		if err != nil {
			return nil, fmt.Errorf("configuration %d: %w", i, err)
		}
		ret = append(ret, id)
	}
	return ret, nil
}
