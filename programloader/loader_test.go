// This file is part of GopherIntcode.
//
// GopherIntcode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherIntcode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherIntcode.  If not, see <https://www.gnu.org/licenses/>.

package programloader_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/jetsetilly/gopherintcode/programloader"
	"github.com/jetsetilly/gopherintcode/test"
)

const listing = "1,9,10,3,\n2,3,11,0,\n\n99,\n30,40,50\n"

var program = []uint64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}

func TestParse(t *testing.T) {
	p, err := programloader.Parse(strings.NewReader(listing))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, slices.Equal(p, program))

	p, err = programloader.Parse(strings.NewReader(" 1 , 0,0, 0 ,99 "))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, slices.Equal(p, []uint64{1, 0, 0, 0, 99}))

	p, err = programloader.Parse(strings.NewReader("18446744073709551615"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p[0], ^uint64(0))

	p, err = programloader.Parse(strings.NewReader("\n\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(p), 0)
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"1,x,3", "1,,3", "1,-2,3", "1,2.5", "1,2,,"} {
		_, err := programloader.Parse(strings.NewReader(s))
		test.ExpectSuccess(t, errors.Is(err, programloader.ErrUnparseable), s)
	}

	_, err := programloader.Parse(strings.NewReader("1,0,0,0\n99,foo\n"))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "line 2, token 2"))
}

func TestHash(t *testing.T) {
	test.ExpectEquality(t, programloader.Normalise(program), "1,9,10,3,2,3,11,0,99,30,40,50")
	test.ExpectEquality(t, len(programloader.Hash(program)), 64)
	test.ExpectInequality(t, programloader.Hash(program), programloader.Hash(program[1:]))
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestLoad(t *testing.T) {
	fn := writeFile(t, "gravity.txt", []byte(listing))

	ld := programloader.NewLoader(fn)
	test.ExpectFailure(t, ld.Compressed)
	test.ExpectFailure(t, ld.HasLoaded())
	test.ExpectEquality(t, ld.ShortName(), "gravity")

	p, err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, slices.Equal(p, program))
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, ld.Hash, programloader.Hash(program))

	// the returned program is a copy
	p[0] = 2
	p, err = ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p[0], uint64(1))
}

func TestLoadCompressed(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	test.DemandSuccess(t, err)
	fn := writeFile(t, "gravity.txt.ZST", enc.EncodeAll([]byte(listing), nil))
	enc.Close()

	ld := programloader.NewLoader(fn)
	test.ExpectSuccess(t, ld.Compressed)
	test.ExpectEquality(t, ld.ShortName(), "gravity")

	p, err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, slices.Equal(p, program))
}

func TestLoadErrors(t *testing.T) {
	ld := programloader.NewLoader(filepath.Join(t.TempDir(), "missing.txt"))
	_, err := ld.Load()
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))

	ld = programloader.NewLoader(writeFile(t, "empty.txt", []byte("\n")))
	_, err = ld.Load()
	test.ExpectSuccess(t, errors.Is(err, programloader.ErrUnparseable))

	ld = programloader.NewLoader(writeFile(t, "bad.txt", []byte("1,0,0,0,nn")))
	_, err = ld.Load()
	test.ExpectSuccess(t, errors.Is(err, programloader.ErrUnparseable))
	test.ExpectFailure(t, ld.HasLoaded())

	ld = programloader.NewLoader(writeFile(t, "hash.txt", []byte(listing)))
	ld.Hash = programloader.Hash([]uint64{1, 0, 0, 0, 99})
	_, err = ld.Load()
	test.ExpectSuccess(t, errors.Is(err, programloader.ErrHashMismatch))
}

func TestLoadFromNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gravity.txt" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, listing)
	}))
	defer srv.Close()

	ld := programloader.NewLoader(srv.URL + "/gravity.txt")
	p, err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, slices.Equal(p, program))

	ld = programloader.NewLoader(srv.URL + "/missing.txt")
	_, err = ld.Load()
	test.ExpectFailure(t, err)
}

func TestLoaderFromData(t *testing.T) {
	ld := programloader.NewLoaderFromData("inline", program)
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, ld.Hash, programloader.Hash(program))

	p, err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, slices.Equal(p, program))
}
