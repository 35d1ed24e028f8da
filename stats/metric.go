/*
 * metric.go, part of granstat.
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
	"fmt"
	"slices"

	"github.com/rmera/granstat"
)

//Metric is the per-particle quantity aggregated.
type Metric int

const (
	KineticEnergy Metric = iota
	Speed
)

//Value returns the metric for the record.
func (m Metric) Value(r *granstat.Record) float64 {
	if m == Speed {
		return r.Speed
	}
	return r.KineticEnergy
}

func (m Metric) String() string {
	switch m {
	case KineticEnergy:
		return "kineticEnergy"
	case Speed:
		return "speed"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

//Policy says how the particles of a frame are reduced to one value.
type Policy struct {
	scalar  bool
	id      int
	exclude []int
}

//ScalarSeries follows the particle with the given id. If it appears more
//than once in a frame, the first occurrence is used.
func ScalarSeries(id int) Policy {
	return Policy{scalar: true, id: id}
}

//EnsembleSum adds the values of every particle in the frame whose id is
//not in exclude.
func EnsembleSum(exclude ...int) Policy {
	return Policy{exclude: slices.Clone(exclude)}
}

//Scalar returns true if the policy follows a single particle.
func (P Policy) Scalar() bool {
	return P.scalar
}

func (P Policy) accepts(id int) bool {
	if P.scalar {
		return id == P.id
	}
	return !slices.Contains(P.exclude, id)
}

func (P Policy) String() string {
	if P.scalar {
		return fmt.Sprintf("particle %d", P.id)
	}
	if len(P.exclude) == 0 {
		return "sum"
	}
	return fmt.Sprintf("sum excluding %v", P.exclude)
}
