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

// Package prefs facilitates the storage of preferential values in the
// GopherIntcode system. It is a way of storing values between invocations of
// the program.
//
// Preference values are represented by the Bool, Int and String types. Each
// is safe to read from one goroutine while being set from another.
//
// Values are associated with a Disk instance using a key:
//
//	dsk, _ := prefs.NewDisk(paths.ResourcePath("", "preferences"))
//	var legacy prefs.Bool
//	dsk.Add("cpu.legacystride", &legacy)
//	dsk.Load(true)
//
// The preferences file is a plain text file of "key :: value" lines. Keys
// found in the file that are not added to a Disk are left untouched when the
// Disk is saved, so different parts of the program can share the same file.
//
// The command line stack overrides values for the duration of a single mode.
// A value taken from the stack is used by Load() in place of the value on
// disk.
package prefs
