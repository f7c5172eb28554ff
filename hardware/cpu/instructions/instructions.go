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

// Package instructions defines the intcode instruction set. There are only
// three instructions and every instruction occupies Stride cells, whether or
// not it uses the operand cells.
package instructions

import "fmt"

// Stride is the number of cells occupied by every instruction: the opcode
// cell and three operand cells.
const Stride = 4

// Operator identifies what an instruction does.
type Operator int

// List of operators.
const (
	Invalid Operator = iota
	Add
	Mul
	Halt
)

func (op Operator) String() string {
	switch op {
	case Add:
		return "ADD"
	case Mul:
		return "MUL"
	case Halt:
		return "HLT"
	}
	return "???"
}

// Opcode values as they appear in memory.
const (
	OpcodeAdd  = 1
	OpcodeMul  = 2
	OpcodeHalt = 99
)

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	Opcode   uint64
	Mnemonic string
	Operator Operator

	// the number of operand cells that are read during decode
	Operands int
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == Invalid {
		return fmt.Sprintf("%d undefined opcode", defn.Opcode)
	}
	return fmt.Sprintf("%d %s (%d operands)", defn.Opcode, defn.Mnemonic, defn.Operands)
}

// IsBinary returns true if the instruction combines two source cells into a
// destination cell.
func (defn Definition) IsBinary() bool {
	return defn.Operator == Add || defn.Operator == Mul
}

// Apply the operator to the two values. Only meaningful for binary
// instructions. Overflow wraps.
func (defn Definition) Apply(a, b uint64) uint64 {
	switch defn.Operator {
	case Add:
		return a + b
	case Mul:
		return a * b
	}
	panic(fmt.Sprintf("instructions: Apply() called for non-binary instruction %s", defn.Mnemonic))
}

var definitions = map[uint64]*Definition{
	OpcodeAdd:  {Opcode: OpcodeAdd, Mnemonic: "ADD", Operator: Add, Operands: 3},
	OpcodeMul:  {Opcode: OpcodeMul, Mnemonic: "MUL", Operator: Mul, Operands: 3},
	OpcodeHalt: {Opcode: OpcodeHalt, Mnemonic: "HLT", Operator: Halt, Operands: 0},
}

// Decode returns the definition for the opcode. Opcodes that aren't in the
// instruction set return a definition with the Invalid operator and the
// opcode value preserved; the function never returns nil.
func Decode(opcode uint64) *Definition {
	if defn, ok := definitions[opcode]; ok {
		return defn
	}
	return &Definition{Opcode: opcode, Mnemonic: "???", Operator: Invalid}
}

// GetDefinitions returns the list of valid instruction definitions, ordered
// by opcode.
func GetDefinitions() []Definition {
	return []Definition{
		*definitions[OpcodeAdd],
		*definitions[OpcodeMul],
		*definitions[OpcodeHalt],
	}
}
