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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopherintcode/hardware/cpu/instructions"
)

// Result records the outcome of a single step of the CPU. The debugger and
// disassembler use it to present the instruction and the tests use it to
// check what the CPU did.
type Result struct {
	// the address of the opcode cell for this instruction
	Address uint64

	// the instruction definition. nil if the opcode cell could not be read
	Defn *instructions.Definition

	// the raw operand cells. only the first Defn.Operands entries are valid
	Operands [3]uint64

	// the values read from the two source addresses of a binary instruction
	// and the value written to the destination address
	Src1  uint64
	Src2  uint64
	Value uint64

	// the state of the CPU after the instruction
	State State

	// a description of any error. empty if there was no error
	Error string

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04d ???", r.Address)
	}

	var s string
	switch r.Defn.Operator {
	case instructions.Add, instructions.Mul:
		s = fmt.Sprintf("%04d %s [%d] [%d] -> [%d]", r.Address, r.Defn.Mnemonic,
			r.Operands[0], r.Operands[1], r.Operands[2])
		if r.Final && r.State == Running {
			s = fmt.Sprintf("%s (%d, %d => %d)", s, r.Src1, r.Src2, r.Value)
		}
	case instructions.Halt:
		s = fmt.Sprintf("%04d %s", r.Address, r.Defn.Mnemonic)
	default:
		s = fmt.Sprintf("%04d ??? %d", r.Address, r.Defn.Opcode)
	}

	if r.Error != "" {
		s = fmt.Sprintf("%s * %s", s, r.Error)
	}

	return s
}
