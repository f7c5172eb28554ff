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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Data entries are the cells that cannot be reached by the walk through the
// program. Decoded entries have been found by the walk but have not yet been
// executed. Executed entries have been reached by the CPU.
const (
	EntryLevelData EntryLevel = iota
	EntryLevelDecoded
	EntryLevelExecuted
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelData:
		return "data"
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelExecuted:
		return "executed"
	}
	return "unknown"
}

// Entry is a disassembled instruction or a single data cell.
type Entry struct {
	Level EntryLevel

	// copy of the decoded instruction. for executed entries this is the
	// result of the most recent execution of the instruction. the Defn field
	// is nil for data entries
	Result execution.Result

	// the cells occupied by the entry. for data entries this is a single
	// cell. for a truncated instruction this is fewer cells than the stride
	Cells []uint64
}

// Address returns the address of the first cell of the entry.
func (e *Entry) Address() uint64 {
	return e.Result.Address
}

// Truncated returns true if the entry is an instruction that runs past the
// end of the program.
func (e *Entry) Truncated() bool {
	if e.Result.Defn == nil {
		return false
	}
	return len(e.Cells) < e.Result.Defn.Operands+1
}

// Bytecode returns the cells of the entry as a comma separated list.
func (e *Entry) Bytecode() string {
	s := make([]string, len(e.Cells))
	for i, c := range e.Cells {
		s[i] = fmt.Sprintf("%d", c)
	}
	return strings.Join(s, ",")
}

// Operator returns the mnemonic for the entry. Data entries have no
// operator.
func (e *Entry) Operator() string {
	if e.Result.Defn == nil {
		return ""
	}
	return e.Result.Defn.Mnemonic
}

// Operand returns the operands of the entry formatted for the listing.
func (e *Entry) Operand() string {
	if e.Result.Defn == nil {
		return fmt.Sprintf("%d", e.Cells[0])
	}

	switch e.Result.Defn.Operator {
	case instructions.Invalid:
		return fmt.Sprintf("%d", e.Result.Defn.Opcode)
	case instructions.Add, instructions.Mul:
		if e.Truncated() {
			return "(truncated)"
		}
		return fmt.Sprintf("[%d] [%d] -> [%d]", e.Result.Operands[0], e.Result.Operands[1], e.Result.Operands[2])
	}

	return ""
}

func (e *Entry) String() string {
	if e.Result.Defn == nil {
		return fmt.Sprintf("%04d  %s", e.Address(), e.Operand())
	}
	return strings.TrimSpace(fmt.Sprintf("%04d  %s %s", e.Address(), e.Operator(), e.Operand()))
}
