/*
 * dump.go, part of granstat.
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
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rmera/granstat"
	"github.com/rmera/granstat/internal/zio"
)

const (
	// Fields is the number of numeric fields in each particle line.
	Fields = 11

	// Header is the header line written to each block.
	Header = "id xPosition yPosition zPosition xVelocity yVelocity zVelocity radius mass pressure time"
)

//the tokenizer states. A block is one count line, one header line and
//as many records as the count says.
type state int

const (
	expectCount state = iota
	expectHeader
	expectRecord
)

//Read!
type Reader struct {
	src      io.Reader
	closer   io.Closer //nil if the caller owns the source
	h        *bufio.Reader
	filename string
	owned    bool //true if the reader opened the file itself, and can open it again.
	line     int
	block    int
	lastTime float64
	readable bool
}

//New opens the named dump file for reading, decompressing it if the extension says so,
//and returns a pointer to the handle, or an error. The returned error wraps the one
//from the OS if the file can't be opened.
func New(name string) (*Reader, error) {
	R := new(Reader)
	R.filename = name
	R.owned = true
	if err := R.open(); err != nil {
		return nil, err
	}
	return R, nil
}

//NewReader returns a reader for the dump in r. name is used only in error messages.
//The caller keeps ownership of r. Rewind works only if r is also an io.Seeker.
func NewReader(r io.Reader, name string) *Reader {
	R := new(Reader)
	R.filename = name
	R.src = r
	R.h = bufio.NewReader(r)
	R.readable = true
	return R
}

func (R *Reader) open() error {
	rc, err := zio.Open(R.filename)
	if err != nil {
		return &Error{message: "unable to open: " + err.Error(), filename: R.filename, deco: []string{"open"}, critical: true, err: err}
	}
	R.src = rc
	R.closer = rc
	R.h = bufio.NewReader(rc)
	R.line = 0
	R.block = 0
	R.lastTime = 0
	R.readable = true
	return nil
}

//Readable returns true if the handle is readable (if it is possible to call Next on it)
func (R *Reader) Readable() bool {
	return R.readable
}

//FileName returns the name of the file being read.
func (R *Reader) FileName() string {
	return R.filename
}

//Blocks returns the number of blocks read so far.
func (R *Reader) Blocks() int {
	return R.block
}

//readLine returns the next line without its terminator. A last line without
//a trailing newline is still returned. io.EOF is returned only when no more lines are left.
func (R *Reader) readLine() (string, error) {
	s, err := R.h.ReadString('\n')
	if err != nil {
		if err != io.EOF || s == "" {
			return "", err
		}
	}
	R.line++
	return strings.TrimRight(s, "\r\n"), nil
}

//malformed marks the reader unreadable and returns a critical error for the current block.
func (R *Reader) malformed(countLine int, format string, args ...interface{}) error {
	R.readable = false
	return &Error{
		message:  fmt.Sprintf(format, args...),
		filename: R.filename,
		block:    R.block,
		line:     countLine,
		deco:     []string{"Next"},
		critical: true,
		err:      granstat.ErrMalformedDump,
	}
}

//Next reads the next frame into f. If f is nil, the frame is read and checked, but not kept.
//At the end of the file, Next returns an error implementing granstat.LastFrameError.
//Any other error is critical: the reader won't read past a malformed block.
func (R *Reader) Next(f *granstat.Frame) error {
	if !R.readable {
		return &Error{message: NotReadable, filename: R.filename, block: R.block, deco: []string{"Next"}, critical: true}
	}
	st := expectCount
	var n, read, countLine int
	var t float64
	var p granstat.ParticleState
	var particles []granstat.ParticleState
	for {
		line, err := R.readLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				R.readable = false
				return &Error{message: err.Error(), filename: R.filename, block: R.block, deco: []string{"Next"}, critical: true, err: err}
			}
			switch st {
			case expectCount:
				//nothing bad happened here, the file just ended.
				R.readable = false
				return newLastFrameError(R.filename, R.block, "Next")
			case expectHeader:
				return R.malformed(countLine, "file ends before the header line")
			default:
				return R.malformed(countLine, "file ends after %d of %d particle lines", read, n)
			}
		}
		switch st {
		case expectCount:
			s := strings.TrimSpace(line)
			if s == "" {
				continue
			}
			countLine = R.line
			n, err = strconv.Atoi(s)
			if err != nil {
				return R.malformed(countLine, "can't read particle count from '%s'", s)
			}
			if n <= 0 {
				return R.malformed(countLine, "particle count must be positive, got %d", n)
			}
			if f != nil {
				particles = make([]granstat.ParticleState, 0, min(n, 1<<12)) //the count is not trusted
			}
			st = expectHeader
		case expectHeader:
			st = expectRecord //content unspecified, so we don't look at it.
		case expectRecord:
			t, err = parseRecord(line, &p)
			if err != nil {
				if isCountLine(line) {
					return R.malformed(countLine, "count line '%s' at line %d, after %d of %d particle lines", strings.TrimSpace(line), R.line, read, n)
				}
				return R.malformed(countLine, "particle line %d of %d (line %d): %s", read+1, n, R.line, err.Error())
			}
			if f != nil {
				particles = append(particles, p)
			}
			read++
		}
		if st == expectRecord && read == n {
			break
		}
	}
	if R.block > 0 && t <= R.lastTime {
		return R.malformed(countLine, "frame time %g does not come after %g", t, R.lastTime)
	}
	R.lastTime = t
	R.block++
	if f != nil {
		f.Time = t
		f.Particles = particles
	}
	return nil
}

//isCountLine returns true if the line holds a single integer and nothing else.
func isCountLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return false
	}
	_, err := strconv.Atoi(fields[0])
	return err == nil
}

//parseRecord fills p with the particle in line and returns the time in the line.
func parseRecord(line string, p *granstat.ParticleState) (float64, error) {
	fields := strings.Fields(line)
	if len(fields) != Fields {
		return 0, fmt.Errorf("%d fields, %d expected", len(fields), Fields)
	}
	var v [Fields]float64
	var err error
	for i, s := range fields {
		v[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("can't parse field %d (%s)", i, s)
		}
	}
	if v[0] != math.Trunc(v[0]) || math.IsInf(v[0], 0) {
		return 0, fmt.Errorf("id %s is not an integer", fields[0])
	}
	if math.IsNaN(v[10]) || math.IsInf(v[10], 0) {
		return 0, fmt.Errorf("time %s is not finite", fields[10])
	}
	p.ID = int(v[0])
	p.Position = [3]float64{v[1], v[2], v[3]}
	p.Velocity = [3]float64{v[4], v[5], v[6]}
	p.Radius = v[7]
	p.Mass = v[8]
	p.Pressure = v[9]
	return v[10], nil
}

//Rewind puts the reader back at the first frame, so the file can be read again.
//A reader opened with New reopens its file. One created with NewReader
//needs a source that implements io.Seeker.
func (R *Reader) Rewind() error {
	if R.owned {
		R.Close()
		if err := R.open(); err != nil {
			return errDecorate(err, "Rewind")
		}
		return nil
	}
	s, ok := R.src.(io.Seeker)
	if !ok {
		return &Error{message: "source can't be rewound", filename: R.filename, deco: []string{"Rewind"}}
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return &Error{message: err.Error(), filename: R.filename, deco: []string{"Rewind"}, err: err}
	}
	R.h.Reset(R.src)
	R.line = 0
	R.block = 0
	R.lastTime = 0
	R.readable = true
	return nil
}

//ReadAll reads all the frames left in the file.
func (R *Reader) ReadAll() ([]granstat.Frame, error) {
	var frames []granstat.Frame
	for {
		var f granstat.Frame
		err := R.Next(&f)
		if err != nil {
			var last granstat.LastFrameError
			if errors.As(err, &last) {
				return frames, nil
			}
			return frames, errDecorate(err, "ReadAll")
		}
		frames = append(frames, f)
	}
}

//Close closes the object, and marks it as unreadable.
//Sources given to NewReader are left open.
func (R *Reader) Close() error {
	R.readable = false
	if R.closer == nil {
		return nil
	}
	err := R.closer.Close()
	R.closer = nil
	return err
}
