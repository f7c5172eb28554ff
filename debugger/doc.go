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

// Package debugger implements a line-oriented debugger for the intcode
// machine. Commands are read from a terminal.Terminal implementation, or from
// a script, and the results are printed back to the same terminal.
//
// The debugger can step through a program one instruction at a time, run it
// until it halts, inspect and modify memory and halt execution when the IP
// reaches an address (a break) or when the value in a cell changes (a trap).
//
// The HELP command lists all commands.
package debugger
