/*
 * export.go, part of granstat.
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

//Package export writes the particles of loaded runs as a CSV table, one row
//per particle per frame per repetition.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rmera/granstat"
	"github.com/rmera/granstat/internal/zio"
)

//Columns is the header of the table.
var Columns = []string{"id", "xPosition", "yPosition", "zPosition", "xVelocity", "yVelocity", "zVelocity", "radius", "mass", "pressure", "time", "repetition"}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

//WriteCSV writes the header and then every particle of every frame of runs, in order.
func WriteCSV(w io.Writer, runs []*granstat.Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	row := make([]string, len(Columns))
	for _, r := range runs {
		rep := strconv.Itoa(r.Repetition)
		for i := range r.Frames {
			f := &r.Frames[i]
			t := ftoa(f.Time)
			for j := range f.Particles {
				p := &f.Particles[j]
				row[0] = strconv.Itoa(p.ID)
				for k := 0; k < 3; k++ {
					row[1+k] = ftoa(p.Position[k])
					row[4+k] = ftoa(p.Velocity[k])
				}
				row[7] = ftoa(p.Radius)
				row[8] = ftoa(p.Mass)
				row[9] = ftoa(p.Pressure)
				row[10] = t
				row[11] = rep
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

//File writes the table to the named file, compressed if the extension
//(.zst or .gz) says so.
func File(name string, runs []*granstat.Run) error {
	w, err := zio.Create(name)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := WriteCSV(w, runs); err != nil {
		w.Close()
		return fmt.Errorf("export: writing %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("export: closing %s: %w", name, err)
	}
	return nil
}
