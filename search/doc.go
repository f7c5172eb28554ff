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

// Package search finds the pair of inputs that make an intcode program
// produce a target value.
//
// The two inputs, the noun and the verb, are patched into consecutive memory
// cells (cells 1 and 2 by default) before the program is run. The output is
// the value left in cell 0 when the program halts. Search() tries every pair
// in turn, noun first, and returns the first pair to produce the target.
//
// Every trial starts with a reset of the machine so nothing from one trial
// can affect the next. Trials that end with an invalid opcode or a fault are
// not errors. They are simply not solutions.
package search
