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

// Package paths prepares paths to GopherIntcode resources, such as the
// preferences file and the regression database.
//
// ResourcePath() prepends the supplied resource with the base resource
// directory. If a directory named ".gopherintcode" exists in the current
// directory then that is used as the base. Otherwise, the base is a directory
// in the user's config directory, as returned by os.UserConfigDir():
//
//	pth := paths.ResourcePath("regression", "db.yaml")
//
// On a modern Linux system the path returned will be:
//
//	/home/user/.config/gopherintcode/regression/db.yaml
//
// ResourcePath() does not create any directories. Use MakeResourceDir() for
// that.
package paths
