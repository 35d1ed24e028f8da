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

package runload

import (
	"fmt"

	"github.com/rmera/granstat"
)

//errDecorate decorates err with the caller's name if err implements granstat.Error.
//Other errors are returned untouched.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(granstat.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//Error is returned when a repetition can't be loaded. It fulfills granstat.Error.
type Error struct {
	message  string
	filename string
	stem     string
	rep      int
	deco     []string
	err      error
}

func (err *Error) Error() string {
	return fmt.Sprintf("run %s rep %d (%s): %s", err.stem, err.rep, err.filename, err.message)
}

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *Error) Unwrap() error { return err.err }

//FileName returns the file (or, for missing runs, the expected file) of the repetition.
func (err *Error) FileName() string { return err.filename }

//Repetition returns the index of the failing repetition.
func (err *Error) Repetition() int { return err.rep }
