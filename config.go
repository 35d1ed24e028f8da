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

package granstat

import (
	"fmt"
	"strconv"
	"strings"
)

// Dimension is the parameter varied along a sweep.
type Dimension int

const (
	DimAngle Dimension = iota
	DimDiameter
	DimGamma
	DimParticleCount
)

var dimensionNames = map[Dimension]string{
	DimAngle:         "angle",
	DimDiameter:      "diameter",
	DimGamma:         "gamma",
	DimParticleCount: "particles",
}

func (d Dimension) String() string {
	if s, ok := dimensionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Dimension(%d)", int(d))
}

// ParseDimension returns the dimension named by s (case-insensitive).
// "particles", "nparticles" and "particle_count" all name DimParticleCount.
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "angle", "bangle":
		return DimAngle, nil
	case "diameter", "diameters":
		return DimDiameter, nil
	case "gamma":
		return DimGamma, nil
	case "particles", "nparticles", "particle_count", "particle-count":
		return DimParticleCount, nil
	}
	return 0, fmt.Errorf("granstat: unknown sweep dimension %q", s)
}

// ConfigID identifies one configuration of a sweep. It carries the dimension
// being varied and its value, the stem used in the names of the dump files,
// and a human-readable label used to key results.
// ConfigIDs are comparable with ==.
type ConfigID struct {
	Dimension Dimension
	Value     float64 //angle in degrees, gamma, particle count or lower diameter.
	Upper     float64 //upper diameter. Only used by DimDiameter.
	stem      string
	label     string
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Angle returns the configuration with the bullet shot at deg degrees.
func Angle(deg float64) ConfigID {
	v := formatValue(deg)
	return ConfigID{Dimension: DimAngle, Value: deg, stem: "bAngle_" + v, label: "angle = " + v}
}

// Diameter returns the configuration with bed particle diameters drawn from
// [lower, upper]. Diameter ranges have no natural stem, so the name is used.
func Diameter(name string, lower, upper float64) ConfigID {
	return ConfigID{Dimension: DimDiameter, Value: lower, Upper: upper, stem: name, label: "diameter = " + name}
}

// Gamma returns the configuration with damping coefficient g.
func Gamma(g float64) ConfigID {
	v := formatValue(g)
	return ConfigID{Dimension: DimGamma, Value: g, stem: "g_" + v, label: "gamma = " + v}
}

// ParticleCount returns the configuration with n bed particles.
func ParticleCount(n int) ConfigID {
	v := strconv.Itoa(n)
	return ConfigID{Dimension: DimParticleCount, Value: float64(n), stem: "nParticles_" + v, label: "particles = " + v}
}

// WithStem returns a copy of the ID with the given file stem.
func (C ConfigID) WithStem(stem string) ConfigID {
	C.stem = stem
	return C
}

// WithLabel returns a copy of the ID with the given label.
func (C ConfigID) WithLabel(label string) ConfigID {
	C.label = label
	return C
}

// Stem returns the configuration label used in dump file names.
func (C ConfigID) Stem() string {
	return C.stem
}

// Label returns the human-readable label.
func (C ConfigID) Label() string {
	return C.label
}

func (C ConfigID) String() string {
	return C.label
}
