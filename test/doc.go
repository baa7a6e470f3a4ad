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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failed test with t.Errorf() and allow the
// test to continue. The Demand*() functions report with t.Fatalf() and
// should be used when the rest of the test depends on the value being
// correct, for example an address that is then used for a register access.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. The documentation for those functions describe the
// currently supported types.
//
// It is worth describing how the success and failure functions handle the nil
// type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to
// succeed. This is because of how errors usually work (nil to indicate no
// error).
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The Compare() function can then be used to test
// for equality.
//
// All functions accept optional tags which are printed at the start of a
// failure message. Useful when testing in a loop:
//
//	for pin := range 28 {
//		test.ExpectEquality(t, got[pin], want[pin], "pin", pin)
//	}
package test
