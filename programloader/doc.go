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

// Package programloader is used to load intcode programs from disk or from
// the network. The Loader type records where a program came from and the hash
// of the program. The regression package uses the hash to make sure a
// program hasn't changed since a test was recorded.
//
// Programs are text listings of unsigned integers separated by commas. A
// listing can be on a single line or across many lines. Blank lines are
// ignored. A listing can be compressed with zstd, in which case the filename
// should have the ".zst" extension.
//
// Programs are parsed completely before they are returned. A program that
// can't be parsed is never partially loaded.
package programloader
