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

// Package prefs holds typed preference values and the command line stack that
// is used to set them.
//
// Each preference type is safe to read and set from more than one goroutine.
// Packages that need configuration define a Preferences type made of these
// values and a constructor that sets defaults and then applies any values
// found on the command line stack:
//
//	p := &Preferences{}
//	p.Device.Set("/dev/mem")
//	prefs.ApplyCommandLinePref("mmio.device", &p.Device)
//
// The command line stack is filled by the application's main function from a
// flag value:
//
//	prefs.PushCommandLineStack("mmio.device::/dev/mem")
//	defer prefs.PopCommandLineStack()
package prefs
