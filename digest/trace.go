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

package digest

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"golang.org/x/crypto/blake2b"
)

// the number of uint64 values written to the buffer for each result: the
// address, opcode, three operands, two source values, the result value and
// the state.
const fieldsPerResult = 9

// the buffer has room for the previous digest followed by the fields of the
// new result
const traceBufferLength = blake2b.Size256 + fieldsPerResult*8

// Trace is an implementation of the Digest interface for execution results.
type Trace struct {
	digest [blake2b.Size256]byte
	buffer [traceBufferLength]byte

	instructions int
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace() *Trace {
	return &Trace{}
}

func (dig *Trace) String() string {
	return fmt.Sprintf("%s (%d instructions)", dig.Hash(), dig.instructions)
}

// Hash implements the Digest interface.
func (dig *Trace) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Trace) ResetDigest() {
	dig.digest = [blake2b.Size256]byte{}
	dig.instructions = 0
}

// Instructions returns the number of results added since the last reset.
func (dig *Trace) Instructions() int {
	return dig.instructions
}

// Add the result to the digest. Results that have not been finalised are
// ignored.
func (dig *Trace) Add(r execution.Result) {
	if !r.Final {
		return
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the buffer
	copy(dig.buffer[:], dig.digest[:])

	var opcode uint64
	if r.Defn != nil {
		opcode = r.Defn.Opcode
	}

	fields := [fieldsPerResult]uint64{
		r.Address,
		opcode,
		r.Operands[0],
		r.Operands[1],
		r.Operands[2],
		r.Src1,
		r.Src2,
		r.Value,
		uint64(r.State),
	}

	b := dig.buffer[blake2b.Size256:]
	for i, f := range fields {
		binary.LittleEndian.PutUint64(b[i*8:], f)
	}

	dig.digest = blake2b.Sum256(dig.buffer[:])
	dig.instructions++
}
