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

// Package version reports the version of the program. The version number is
// set at link time by the makefile. Otherwise the version is derived from the
// build information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GopherIntcode"

// set by the linker. if number is empty then the project was not built using
// the makefile
var number string

var revision string
var version string

// Version returns the version string, the revision string and whether this
// is a numbered release version.
//
// The version string is "unreleased" if the program was built from a vcs
// checkout without a version number, and "local" if there is no vcs
// information at all. The revision is suffixed with "+dirty" if the source
// had uncommitted changes when it was built.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a one line summary of the version suitable for printing.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number, readSettings())
}

func readSettings() map[string]string {
	settings := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}
	return settings
}

// fromBuildInfo decides on the version and revision strings from the version
// number and the build settings.
func fromBuildInfo(number string, settings map[string]string) (string, string) {
	var version, revision string

	if rev, ok := settings["vcs.revision"]; ok && rev != "" {
		revision = rev
		if settings["vcs.modified"] == "true" {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	} else {
		revision = "no revision information"
	}

	switch {
	case number != "":
		version = number
	case settings["vcs"] != "":
		version = "unreleased"
	default:
		version = "local"
	}

	return version, revision
}
