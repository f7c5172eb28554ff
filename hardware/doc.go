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

// Package hardware is the base package for the intcode interpreter. The
// Machine type combines the CPU with the memory holding the program and is
// the interface used by the rest of the project.
//
// A program is installed with Load() and run with Run():
//
//	m := hardware.NewMachine(nil)
//	err := m.Load([]uint64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50})
//	state, err := m.Run()
//	v, ok := m.ReadCell(0)
//
// Memory can be restored to the loaded program with Reset() and seeded with
// Patch(). This is how the search package tries many input values with the
// same program.
//
// The hardware sub-packages are cpu, which implements the instruction cycle,
// and memory, which holds the program and the working copy of it.
package hardware
