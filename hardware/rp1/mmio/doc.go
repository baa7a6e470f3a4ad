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

// Package mmio maps the RP1 register areas into the address space of the
// process and implements the bus.Memory interface over the mapping.
//
// Each area is mapped separately, all four aliases included. Every Load32()
// and Store32() is a single 32 bit access to the mapped memory and values are
// never cached.
//
// Mapping is only possible on Linux. On other platforms Open() always fails.
package mmio

// MappingError is the pattern for errors when opening or closing the mapping.
// The values are the device name and the underlying error.
const MappingError = "mmio: %s: %v"
