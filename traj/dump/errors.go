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

package dump

import (
	"fmt"
	"io"

	"github.com/rmera/granstat"
)

//errDecorate is a helper function that asserts that the error
//implements granstat.Error and decorates the error with the caller's name before returning it.
//errors that don't implement granstat.Error are returned untouched.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(granstat.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//Error is the general structure for dump file errors. It fulfills granstat.Error and granstat.DumpError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	block    int
	line     int
	deco     []string
	critical bool
	err      error //what this error wraps. granstat.ErrMalformedDump for bad blocks.
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("dump file %s error: block %d (line %d): %s", err.filename, err.block, err.line, err.message)
	}
	return fmt.Sprintf("dump file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Unwrap returns the error kind, so it can be checked with errors.Is
func (err *Error) Unwrap() error { return err.err }

//FileName returns the file to which the failing reader or writer was associated
func (err *Error) FileName() string { return err.filename }

//Block returns the index of the block where the error happened.
func (err *Error) Block() int { return err.block }

//Line returns the line where the failing block starts, or 0.
func (err *Error) Line() int { return err.line }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

const (
	NotReadable  = "reader not readable"
	NotWriteable = "writer not writeable"
	NilFrame     = "given nil frame"
	EmptyFrame   = "frame with no particles"
)

//lastFrameError implements granstat.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
	blocks   int
}

//lastFrameError does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

//Block returns the number of blocks read before the end of the file.
func (E *lastFrameError) Block() int { return E.blocks }

func (E *lastFrameError) Line() int { return 0 }

//Is makes errors.Is(err, io.EOF) true for the last frame error.
func (E *lastFrameError) Is(target error) bool { return target == io.EOF }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newLastFrameError(filename string, blocks int, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.blocks = blocks
	e.deco = []string{caller}
	return e
}
