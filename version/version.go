// This file is part of rp1mmio.
//
// rp1mmio is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rp1mmio is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rp1mmio.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the application from the build
// information.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "rp1mmio"

// set with the -ldflags "-X" option when building a release
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the vcs revision and whether this is a
// numbered release.
//
// The version is "unreleased" if the program was built from a repository
// without a version number and "local" if there is no vcs information at all.
// The revision is suffixed with "+dirty" if the source had been modified.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version on a single line.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number, debug.ReadBuildInfo)
}

// fromBuildInfo decides the version and revision strings. the build info
// function is an argument so that it can be replaced in tests.
func fromBuildInfo(number string, buildInfo func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs, modified bool
	var rev string

	if info, ok := buildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case rev == "":
		rev = "no revision information"
	case modified:
		rev += "+dirty"
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
