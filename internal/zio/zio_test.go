/*
 * zio_test.go, part of granstat.
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

package zio

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, Zstd, Format("a/b_rep_0.xyz.zst"))
	assert.Equal(t, Zstd, Format("x.ZSTD"))
	assert.Equal(t, Gzip, Format("x.csv.gz"))
	assert.Equal(t, Plain, Format("x.xyz"))
	assert.Equal(t, Plain, Format("noext"))
}

func TestRoundTrip(t *testing.T) {
	text := "2\nheader\n0 1 2 3 4 5 6 7 8 9 0\n"
	for _, name := range []string{"a.xyz", "a.xyz.zst", "a.xyz.gz"} {
		path := filepath.Join(t.TempDir(), name)
		w, err := Create(path)
		require.NoError(t, err, name)
		_, err = io.WriteString(w, text)
		require.NoError(t, err, name)
		require.NoError(t, w.Close(), name)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		if Format(name) == Plain {
			assert.Equal(t, text, string(raw))
		} else {
			assert.NotEqual(t, text, string(raw), name)
		}

		r, err := Open(path)
		require.NoError(t, err, name)
		got, err := io.ReadAll(r)
		require.NoError(t, err, name)
		require.NoError(t, r.Close(), name)
		assert.Equal(t, text, string(got), name)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "none.xyz.zst"))
	assert.True(t, os.IsNotExist(err))
}
