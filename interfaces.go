/*
 * interfaces.go, part of granstat.
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

// FrameReader is the interface for any source of frames, in the spirit of
// a trajectory: frames are read one at a time until the source runs out.
type FrameReader interface {

	//Is the source ready to be read?
	Readable() bool

	//Next reads the next frame into f. If f is nil, the frame is still
	//read and validated, but discarded. When the source is exhausted,
	//Next returns an error implementing LastFrameError.
	Next(f *Frame) error

	//Close releases the source. The reader can't be used afterwards.
	Close() error
}

// FrameWriter is the interface for any sink of frames.
type FrameWriter interface {
	WNext(f *Frame) error
	Close() error
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type. The errors also implement Unwrap, so the sentinels in this package can be
// matched with errors.Is.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the given caller to the decoration slice and returns it. An empty string just returns the current slice.
}

// DumpError is the interface for errors in dump files.
type DumpError interface {
	Error
	Critical() bool
	FileName() string
	Block() int //index of the offending block, starting from 0
	Line() int  //line where the offending block starts, starting from 1. 0 if unknown.
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so they can be
// filtered in a type switch or with errors.As.
type LastFrameError interface {
	DumpError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other DumpErrors
}
