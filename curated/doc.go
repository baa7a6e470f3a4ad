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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and remember the pattern they
// were created with.
//
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
// The pattern is what identifies an error. Packages export their patterns as
// const strings and callers test for them with Is() or Has():
//
//	const OutOfRange = "out of range: %s index %d"
//
//	err := curated.Errorf(OutOfRange, "pin", 28)
//	if curated.Is(err, OutOfRange) {
//		fmt.Println("true")
//	}
//
// Is() only looks at the outermost pattern. Has() walks the chain of
// curated errors passed as placeholder values:
//
//	f := curated.Errorf("poke: %v", err)
//	curated.Is(f, OutOfRange)  // false
//	curated.Has(f, OutOfRange) // true
//
// IsAny() answers whether the error was created by Errorf() at all. We think
// of uncurated errors as unexpected errors.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". This means a
// function can wrap an error with its own context without worrying whether
// the callee has already done so:
//
//	mmio: mmio: cannot open /dev/mem
//
// is reported as
//
//	mmio: cannot open /dev/mem
package curated
