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

// Package digest is used to create fingerprints of program execution. The
// fingerprint of a run is a chain of hashes, one link for every instruction
// executed. Two runs with the same fingerprint executed the same instructions
// on the same values in the same order.
//
// The Trace type is the only implementation of the Digest interface. It is
// used by the regression package to detect changes to the behaviour of the
// interpreter that would not be seen by comparing the final state of memory.
package digest

// Digest implementations compute a hash of a stream of data.
type Digest interface {
	Hash() string
	ResetDigest()
}
