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

/******************** Format Specification   ***************************************************

A dump file has, by convention, the extension xyz. It has nothing to do with the XYZ format used
for molecules. It may be compressed: a trailing .zst extension means z-standard, a trailing .gz,
gzip.

A dump file is a sequence of blocks, one per frame, with no global header and no frame count.
Each block is:

A line containing only an integer N > 0: the number of particles in the frame.

One header line, ignored on reading. The writer in this package puts the column names there:

id xPosition yPosition zPosition xVelocity yVelocity zVelocity radius mass pressure time

N lines with 11 whitespace-separated numbers each: the particle id (an integer, possibly
written as a float), position (x y z), velocity (x y z), radius, mass, pressure and the time of
the frame. The time of the frame is the last field of its last line.

Frame times are strictly increasing along the file.

Blank lines may appear between blocks (typically, at the end of the file) and are skipped. A
block is malformed if its count line is not a positive integer, if the file ends before the
block does, if any of its N lines doesn't have 11 numbers, or if its time doesn't come after
the time of the previous block. Reading stops at the first malformed block.

***************************************************************************************************/

//Package dump reads and writes the particle dump files produced by the cannonball simulator.
package dump
