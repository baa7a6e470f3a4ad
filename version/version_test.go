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

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/jetsetilly/rp1mmio/test"
)

func info(settings ...debug.BuildSetting) func() (*debug.BuildInfo, bool) {
	return func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: settings}, true
	}
}

func TestFromBuildInfo(t *testing.T) {
	v, r := fromBuildInfo("", func() (*debug.BuildInfo, bool) { return nil, false })
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	v, r = fromBuildInfo("", info(
		debug.BuildSetting{Key: "vcs", Value: "git"},
		debug.BuildSetting{Key: "vcs.revision", Value: "abc123"},
	))
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc123")

	v, r = fromBuildInfo("v0.1.0", info(
		debug.BuildSetting{Key: "vcs", Value: "git"},
		debug.BuildSetting{Key: "vcs.revision", Value: "abc123"},
		debug.BuildSetting{Key: "vcs.modified", Value: "true"},
	))
	test.ExpectEquality(t, v, "v0.1.0")
	test.ExpectEquality(t, r, "abc123+dirty")
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, strings.HasPrefix(String(), ApplicationName+" "), true)
}
