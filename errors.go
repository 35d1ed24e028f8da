/*
 * errors.go, part of granstat.
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

import "errors"

// Error kinds shared by all packages. Concrete errors wrap one of these,
// so callers can tell them apart with errors.Is.
var (
	// ErrMalformedDump marks a dump block that can't be decoded. It is fatal for the file.
	ErrMalformedDump = errors.New("malformed dump")

	// ErrRunNotFound marks a missing repetition file. Callers may skip it and go on.
	ErrRunNotFound = errors.New("run not found")

	// ErrInsufficientRepetitions means a configuration ended up with no usable repetition.
	ErrInsufficientRepetitions = errors.New("insufficient repetitions")

	// ErrEmptyHorizon means the repetitions of a configuration share no usable time range.
	ErrEmptyHorizon = errors.New("empty horizon")
)
