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

// Package logger is the central log repository for GopherIntcode. Log entries
// are tagged with the name of the package, or the part of the package, that
// made the entry. For example:
//
//	logger.Log(logger.Allow, "cpu", "invalid opcode (7) at 0012")
//
// The detail argument can be a string, an error, a fmt.Stringer or any other
// value that can be formatted with the %v verb.
//
// Adjacent duplicate entries are folded together and shown with a repeat
// count. This keeps the log readable when a search runs thousands of trials
// that end the same way.
//
// The package level functions operate on a central logger with a fixed
// maximum number of entries. Independent instances can be created with
// NewLogger(), which is mostly useful for testing.
package logger
