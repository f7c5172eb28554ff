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

// Package regression facilitates the regression testing of the intcode
// machine. Each entry in the regression database is a program, any patches
// to apply before running it and the outcome that is expected: the final
// state of the machine and the values of selected memory cells.
//
// The regression database is a YAML file, managed by the database package.
// Entries are added with RegressAdd(), which runs the program and records the
// outcome. RegressRunTests() runs the programs again and compares the outcome
// with the recorded outcome.
//
// The program of an entry is either the name of a program listing file or is
// stored inline in the database. In both cases the hash of the program is
// recorded and a listing file that has changed since the entry was added will
// cause an error rather than a failure.
package regression
