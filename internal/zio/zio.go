/*
 * zio.go, part of granstat.
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

// Package zio opens and creates files, compressing or decompressing them
// as their extension says: ".zst" is z-standard, ".gz" is gzip, and anything
// else is read or written as is.
package zio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	Plain = "plain"
	Zstd  = "zstd"
	Gzip  = "gzip"
)

// Format returns the compression format deduced from the extension of name.
func Format(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return Zstd
	case ".gz":
		return Gzip
	}
	return Plain
}

//readCloser ties a decompressor to the file under it.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error {
	return r.close()
}

type writeCloser struct {
	io.Writer
	close func() error
}

func (w *writeCloser) Close() error {
	return w.close()
}

// Open opens the named file for reading. The returned ReadCloser
// closes both the decompressor, if any, and the file.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewReader(f)
	switch Format(name) {
	case Zstd:
		d, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{d, func() error { d.Close(); return f.Close() }}, nil
	case Gzip:
		z, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{z, func() error {
			zerr := z.Close()
			if err := f.Close(); err != nil {
				return err
			}
			return zerr
		}}, nil
	}
	return &readCloser{buf, f.Close}, nil
}

// Create creates (or truncates) the named file for writing. Closing the returned
// WriteCloser flushes the compressor, if any, and closes the file.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch Format(name) {
	case Zstd:
		e, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &writeCloser{e, closeBoth(e, f)}, nil
	case Gzip:
		z := gzip.NewWriter(f)
		return &writeCloser{z, closeBoth(z, f)}, nil
	}
	return f, nil
}

func closeBoth(c io.Closer, f *os.File) func() error {
	return func() error {
		cerr := c.Close()
		if err := f.Close(); err != nil {
			return err
		}
		return cerr
	}
}
