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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each with its own set of flags, in the manner of the go
// command (go build, go test, etc.).
//
// Arguments are given to NewArgs() and then processed with one or more calls
// to Parse(). Sub-modes are added before a call to Parse() and the selected
// mode is returned by Mode().
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	sim := md.AddBool("sim", false, "use the simulated RP1")
//	md.AddSubModes("MAP", "PEEK", "POKE")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PEEK":
//		md.NewMode()
//		alias := md.AddString("alias", "RW", "alias to read through")
//		md.Parse()
//		peek(*sim, *alias, md.RemainingArgs())
//	}
//
// Sub-mode names are case insensitive and are always reported in upper case.
// The first sub-mode is the default, used when the next argument is not the
// name of a sub-mode.
//
// Flags that take a register value or mask should be added with AddUint32().
// The value can be written with any Go integer literal prefix, so 0x1f, 0b11111
// and 31 are the same.
package modalflag
