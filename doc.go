/*
 * doc.go, part of granstat.
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

/*Package granstat ingests the particle dumps written by a granular-media
cannonball simulator and turns several repetitions of each configuration of a
parameter sweep into statistics with error bars.

	**granstat Capabilities**


    Reads/writes the multi-frame dump format (plain, zstd or gzip compressed),
    frame by frame (see traj/dump).

    Loads repetitions of a configuration, deriving kinetic energy and speed
    for every particle in every frame (see runload).

    Truncates repetitions to a common time horizon, so every time step is
    backed by all of them (see align).

    Computes per-time-step mean and sample standard deviation of the
    projectile speed and of the kinetic energy of the bed (see stats).

    Extracts stabilization times and drives whole sweeps over bullet angle,
    particle diameter, damping coefficient and particle count (see sweep).

    Exports CSV tables and plots (see export and granplot).

The root package holds the data model shared by the others: ParticleState,
Frame, Run, Record, the ConfigID that names sweep configurations, and the
error kinds.
*/
package granstat
