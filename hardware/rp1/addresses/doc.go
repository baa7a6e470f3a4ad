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

// Package addresses lists the RP1 register offsets exactly as the datasheet
// gives them. There is one constant or table entry per register.
//
// The memorymap package computes the same offsets with a base + index*stride
// formula. The two must agree for every index and memorymap checks this when
// it is initialised. Prefer the memorymap package for all access. This
// package exists so that the numbers can be found with grep and compared
// against the documentation.
package addresses
