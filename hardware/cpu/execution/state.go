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

// State of the CPU. Running is the only non-terminal state. Once the CPU has
// entered any other state it stays in that state until it is reset.
type State int

// List of valid State values.
const (
	// the CPU will decode another instruction on the next step
	Running State = iota

	// a HLT instruction was decoded. this is the only successful end state
	Halted

	// an opcode not in the instruction set was decoded
	Invalid

	// an address in an instruction (or the opcode cell itself) was outside of
	// memory
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Invalid:
		return "invalid opcode"
	case Faulted:
		return "faulted"
	}
	return "unknown state"
}

// IsTerminal returns true if the state requires a reset before the CPU can
// run again.
func (s State) IsTerminal() bool {
	return s != Running
}

// IsSuccess returns true only for the Halted state. Callers computing a
// result from memory should check this rather than IsTerminal().
func (s State) IsSuccess() bool {
	return s == Halted
}
