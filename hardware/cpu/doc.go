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

// Package cpu emulates the intcode processor. The processor executes
// instructions according to the value read from the address pointed to by the
// instruction pointer (IP). This value is the opcode and is looked up in the
// instruction table. See the instructions package for the instruction set.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument:
//
//	mc := cpu.NewCPU(mem)
//
//	for !mc.State.IsTerminal() {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			// invalid opcode or bad address
//		}
//	}
//
// The CPU has no jump instructions so the IP only ever moves forward. Every
// instruction is four cells wide and the IP moves by four after every binary
// instruction.
//
// Operands are always addresses. An ADD instruction with the operands 9, 10,
// 3 reads the values at addresses 9 and 10, adds them and writes the result
// to address 3.
//
// The LastResult field can be probed for information about the last
// instruction executed. Very useful for the debugger.
//
// Ending execution happens in one of three ways. A HLT instruction (opcode
// 99) is the successful ending. An opcode not in the instruction table puts
// the CPU into the Invalid state and an address outside of memory puts it
// into the Faulted state. In the latter two cases ExecuteInstruction()
// returns an error of type *Fault. All three states require a Reset() before
// the CPU will execute another instruction.
package cpu
