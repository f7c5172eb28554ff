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

// Package disassembly creates a listing of an intcode program. Every cell of
// the program is represented by an Entry. Cells that are part of an
// instruction belong to the Entry for that instruction. Cells that follow the
// last instruction are data entries.
//
// Instructions are found by walking the program from the first instruction,
// one record of four cells at a time. The walk ends at the first HLT or
// invalid opcode, or at a record that is cut short by the end of the
// program. There are no jumps so no other cells can be reached by the CPU,
// unless the program writes new opcodes into memory.
//
// UpdateEntry() is used by the debugger to keep the disassembly in step with
// execution. Entries that have been executed are marked as such and entries
// for opcodes written by the program itself are replaced.
package disassembly
