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
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// sentinal errors returned by the programloader package.
var (
	ErrUnparseable  = errors.New("programloader: unparseable program")
	ErrHashMismatch = errors.New("programloader: unexpected hash value")
)

// Parse reads a program listing. Tokens are separated by commas and by the
// end of a line. A single trailing comma at the end of a line is allowed.
//
// An error wrapping ErrUnparseable is returned if any token is not an
// unsigned integer. The error message includes the line and position of the
// token.
func Parse(r io.Reader) ([]uint64, error) {
	var program []uint64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue // for loop
		}
		s = strings.TrimSuffix(s, ",")

		for i, tok := range strings.Split(s, ",") {
			tok = strings.TrimSpace(tok)
			v, err := strconv.ParseUint(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, token %d (%q)", ErrUnparseable, line, i+1, tok)
			}
			program = append(program, v)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}

	return program, nil
}

// Normalise returns the program as a single line listing.
func Normalise(program []uint64) string {
	s := strings.Builder{}
	for i, v := range program {
		if i > 0 {
			s.WriteRune(',')
		}
		s.WriteString(strconv.FormatUint(v, 10))
	}
	return s.String()
}

// Hash returns the blake2b-256 hash of the normalised program as a hex
// string. Two listings that differ only in their layout have the same hash.
func Hash(program []uint64) string {
	h := blake2b.Sum256([]byte(Normalise(program)))
	return hex.EncodeToString(h[:])
}
