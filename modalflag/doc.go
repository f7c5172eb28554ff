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

// Package modalflag wraps the flag package in the standard library. It adds
// program modes, each mode having its own set of flags.
//
// Rather than passing the argument list to Parse(), the list is given to
// NewArgs() first:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SEARCH", "DEBUG")
//	md.Parse()
//
// After Parse(), the selected mode is returned by Mode(). The mode can then
// define its own flags with a call to NewMode() followed by the AddBool(),
// AddInt() etc. functions. A second call to Parse() processes those flags:
//
//	switch md.Mode() {
//	case "SEARCH":
//		md.NewMode()
//		target := md.AddInt("target", 19690720, "value to search for")
//		md.Parse()
//		search(*target, md.RemainingArgs())
//	}
//
// The first sub-mode added is the default mode. It is selected when the next
// argument doesn't name one of the sub-modes. Sub-mode names are case
// insensitive.
//
// The -help flag is handled automatically. Help output lists the flags for
// the current mode and the available sub-modes.
package modalflag
