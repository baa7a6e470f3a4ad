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

// Package simulated is an in-memory RP1 register file. It is used for testing
// and by the command line tool when the hardware is not available.
//
// Every register named by the memorymap package has one cell, whichever alias
// is used to reach it. Stores through the XOR, SET and CLR aliases are applied
// with a compare-and-swap loop, so concurrent stores to the same register
// through different aliases behave as they do on the hardware.
package simulated
