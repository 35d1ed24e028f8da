/*
 * particle.go, part of granstat.
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

	"gonum.org/v1/gonum/floats"
)

// ProjectileID is the id the simulator reserves for the bullet. Every other
// id belongs to the granular bed.
const ProjectileID = 0

// ParticleState is the state of one particle at the time of a frame.
type ParticleState struct {
	ID       int
	Position [3]float64
	Velocity [3]float64
	Radius   float64
	Mass     float64
	Pressure float64
}

// KineticEnergy returns 0.5*m*|v|^2 for the particle.
func (P *ParticleState) KineticEnergy() float64 {
	v := P.Velocity[:]
	return 0.5 * P.Mass * floats.Dot(v, v)
}

// Speed returns the magnitude of the velocity.
func (P *ParticleState) Speed() float64 {
	return floats.Norm(P.Velocity[:], 2)
}

// IsProjectile returns true if the particle is the bullet.
func (P *ParticleState) IsProjectile() bool {
	return P.ID == ProjectileID
}

// Frame is a snapshot of the system: a simulation time and the
// state of every particle at that time, in file order.
type Frame struct {
	Time      float64
	Particles []ParticleState
}

// Len returns the number of particles in the frame.
func (F *Frame) Len() int {
	return len(F.Particles)
}

// Particle returns the first particle with the given id, and
// false if no such particle is in the frame.
func (F *Frame) Particle(id int) (*ParticleState, bool) {
	for i := range F.Particles {
		if F.Particles[i].ID == id {
			return &F.Particles[i], true
		}
	}
	return nil, false
}

// Record is a quantity derived from one particle in one frame of one repetition.
type Record struct {
	Time          float64
	Repetition    int
	Frame         int //ordinal of the frame in its run
	ID            int
	KineticEnergy float64
	Speed         float64
}

// NewRecord derives the record for particle p, found in the frame with
// the given ordinal and time, of repetition rep.
func NewRecord(p *ParticleState, frame int, time float64, rep int) Record {
	return Record{
		Time:          time,
		Repetition:    rep,
		Frame:         frame,
		ID:            p.ID,
		KineticEnergy: p.KineticEnergy(),
		Speed:         p.Speed(),
	}
}

// Run is the sequence of frames of one (configuration, repetition) pair,
// with strictly increasing times, plus the records derived from them.
type Run struct {
	Config     ConfigID
	Repetition int
	Frames     []Frame
	Records    []Record
}

// Times returns the time of each frame in the run.
func (R *Run) Times() []float64 {
	ret := make([]float64, len(R.Frames))
	for i := range R.Frames {
		ret[i] = R.Frames[i].Time
	}
	return ret
}

func (R *Run) String() string {
	return fmt.Sprintf("%s rep %d (%d frames)", R.Config.Stem(), R.Repetition, len(R.Frames))
}
