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

// Package memory implements the memory of the intcode machine. Unlike a real
// computer there is no address decoding and no mirroring. Memory is simply a
// flat list of cells, the same length as the program that was loaded into it.
//
// The program itself is kept separately and is used to restore memory to its
// loaded state with the Reset() function. This is how the search package runs
// many trials with the same program without reloading it.
//
// Read() and Write() are the operations used by the CPU. Both return an
// error wrapping ErrOutOfRange if the address is not in memory. Peek() and
// Patch() are meta-operations, intended for the debugger and for drivers that
// want to seed a program with input values.
//
// The CPU accesses memory through the cpubus.Memory interface, which Memory
// satisfies.
package memory
