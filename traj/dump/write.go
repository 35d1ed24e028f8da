/*
 * write.go, part of granstat.
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
	"bufio"
	"io"
	"strconv"

	"github.com/rmera/granstat"
	"github.com/rmera/granstat/internal/zio"
)

//Write!
type Writer struct {
	w         *bufio.Writer
	closer    io.Closer //nil if the caller owns the stream
	filename  string
	writeable bool
	frames    int
	lastTime  float64
	buf       []byte
}

//NewWriter creates the named dump file, compressing it if the extension says so.
func NewWriter(name string) (*Writer, error) {
	wc, err := zio.Create(name)
	if err != nil {
		return nil, &Error{message: "unable to create: " + err.Error(), filename: name, deco: []string{"NewWriter"}, critical: true, err: err}
	}
	W := NewStreamWriter(wc)
	W.closer = wc
	W.filename = name
	return W, nil
}

//NewStreamWriter returns a writer that puts frames in w. The caller keeps
//ownership of w, which is not closed by Close.
func NewStreamWriter(w io.Writer) *Writer {
	W := new(Writer)
	W.w = bufio.NewWriter(w)
	W.writeable = true
	W.buf = make([]byte, 0, 256)
	return W
}

//WNext writes f as the next block. Floats are written with the shortest
//representation that reads back to the same value.
func (W *Writer) WNext(f *granstat.Frame) error {
	if !W.writeable {
		return &Error{message: NotWriteable, filename: W.filename, block: W.frames, deco: []string{"WNext"}, critical: true}
	}
	if f == nil {
		return &Error{message: NilFrame, filename: W.filename, block: W.frames, deco: []string{"WNext"}, critical: true}
	}
	if len(f.Particles) == 0 {
		return &Error{message: EmptyFrame, filename: W.filename, block: W.frames, deco: []string{"WNext"}, critical: true}
	}
	if W.frames > 0 && f.Time <= W.lastTime {
		return &Error{message: "frame times must increase", filename: W.filename, block: W.frames, deco: []string{"WNext"}, critical: true, err: granstat.ErrMalformedDump}
	}
	b := W.buf[:0]
	b = strconv.AppendInt(b, int64(len(f.Particles)), 10)
	b = append(b, '\n')
	b = append(b, Header...)
	b = append(b, '\n')
	if _, err := W.w.Write(b); err != nil {
		return W.fail(err)
	}
	for i := range f.Particles {
		b = appendParticle(W.buf[:0], &f.Particles[i], f.Time)
		if _, err := W.w.Write(b); err != nil {
			return W.fail(err)
		}
	}
	W.buf = b
	W.frames++
	W.lastTime = f.Time
	return nil
}

func (W *Writer) fail(err error) error {
	W.writeable = false
	return &Error{message: err.Error(), filename: W.filename, block: W.frames, deco: []string{"WNext"}, critical: true, err: err}
}

func appendParticle(b []byte, p *granstat.ParticleState, time float64) []byte {
	b = strconv.AppendInt(b, int64(p.ID), 10)
	for _, v := range p.Position {
		b = appendFloat(b, v)
	}
	for _, v := range p.Velocity {
		b = appendFloat(b, v)
	}
	b = appendFloat(b, p.Radius)
	b = appendFloat(b, p.Mass)
	b = appendFloat(b, p.Pressure)
	b = appendFloat(b, time)
	return append(b, '\n')
}

func appendFloat(b []byte, v float64) []byte {
	b = append(b, ' ')
	return strconv.AppendFloat(b, v, 'g', -1, 64)
}

//Frames returns the number of frames written so far.
func (W *Writer) Frames() int {
	return W.frames
}

//Close flushes what is left and, if the writer created its own file, closes it.
func (W *Writer) Close() error {
	if !W.writeable && W.closer == nil {
		return nil
	}
	W.writeable = false
	err := W.w.Flush()
	if W.closer != nil {
		if cerr := W.closer.Close(); err == nil {
			err = cerr
		}
		W.closer = nil
	}
	if err != nil {
		return &Error{message: err.Error(), filename: W.filename, deco: []string{"Close"}, err: err}
	}
	return nil
}
