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

// Package cpubus defines the operations the CPU requires of memory.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are the raw values found in operand cells so they can be any
// value. Implementations must return an error for addresses they do not
// contain rather than panic.
type Memory interface {
	Read(address uint64) (uint64, error)
	Write(address uint64, data uint64) error
}
