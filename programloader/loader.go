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

package programloader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// CompressedExtension is the file extension of zstd compressed listings.
const CompressedExtension = ".zst"

// Loader is used to specify the program to load into the machine.
type Loader struct {
	// filename of program to load. can be a http or https URL
	Filename string

	// whether the file is compressed. set by NewLoader() from the file
	// extension
	Compressed bool

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded program
	Hash string

	// copy of the loaded program. subsequent calls to Load() will return a
	// copy of this data
	Data []uint64
}

// NewLoader is the preferred method of initialisation for the Loader type.
// Filenames with the ".zst" extension (in any case) are treated as
// compressed.
func NewLoader(filename string) Loader {
	return Loader{
		Filename:   filename,
		Compressed: strings.EqualFold(filepath.Ext(filename), CompressedExtension),
	}
}

// NewLoaderFromData creates a Loader for a program that is already in
// memory. The name is used by ShortName() only.
func NewLoaderFromData(name string, program []uint64) Loader {
	data := make([]uint64, len(program))
	copy(data, program)
	return Loader{
		Filename: name,
		Hash:     Hash(data),
		Data:     data,
	}
}

// ShortName returns the filename of the program without any path or
// extensions.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	if ld.Compressed {
		s = strings.TrimSuffix(s, filepath.Ext(s))
	}
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program and return a copy of it. Filenames with a http or https
// scheme are fetched from the network. Everything else is treated as a local
// file.
//
// If the Hash field is not empty then the hash of the loaded program must
// match it. An error wrapping ErrHashMismatch is returned if it doesn't.
func (ld *Loader) Load() ([]uint64, error) {
	if !ld.HasLoaded() {
		var r io.ReadCloser
		var err error

		scheme := "file"
		if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
			scheme = u.Scheme
		}

		switch scheme {
		case "http", "https":
			r, err = fetch(ld.Filename)
		default:
			r, err = os.Open(ld.Filename)
		}
		if err != nil {
			return nil, fmt.Errorf("programloader: %w", err)
		}
		defer r.Close()

		data, err := ld.read(r)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: %s contains no program", ErrUnparseable, ld.Filename)
		}

		hash := Hash(data)
		if ld.Hash != "" && ld.Hash != hash {
			return nil, fmt.Errorf("%w: %s", ErrHashMismatch, ld.Filename)
		}

		ld.Hash = hash
		ld.Data = data
	}

	program := make([]uint64, len(ld.Data))
	copy(program, ld.Data)
	return program, nil
}

// read parses the program from the reader, decompressing if necessary.
func (ld *Loader) read(r io.Reader) ([]uint64, error) {
	if !ld.Compressed {
		return Parse(r)
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("programloader: %w", err)
	}
	defer dec.Close()

	return Parse(dec)
}

func fetch(url string) (io.ReadCloser, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %s", url, resp.Status)
	}
	return resp.Body, nil
}
