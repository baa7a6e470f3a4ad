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

// Package memorymap translates RP1 registers into physical addresses.
//
// The RP1 low speed peripherals are divided into areas (GPIO, pads, RIO and
// the two PWM blocks). Every area is visible four times, once for each alias:
//
//	origin + 0x0000 + offset	plain read/write
//	origin + 0x1000 + offset	write performs register ^= value
//	origin + 0x2000 + offset	write performs register |= value
//	origin + 0x3000 + offset	write performs register &^= value
//
// A register is named by a Region. Regions are created with the constructor
// functions (GPIOControl(), Pad(), PWMChannelDuty(), etc.) which reject any
// index outside of the hardware range. Indexes are never wrapped or masked.
//
// An Address can only be created by Resolve(). Resolve() also rejects aliases
// that make no sense for the register. For example, there is no sensible
// meaning for an atomic set of a read-only status register.
//
//	r, err := memorymap.GPIOControl(7)
//	if err != nil {
//		return err
//	}
//	addr, err := memorymap.Resolve(r, memorymap.AtomicSet)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%#08x", addr.Physical()) // 0x400d203c
//
// Addresses are cheap to produce and should not be kept beyond the access
// they were resolved for.
//
// Errors returned by this package are curated errors with one of the patterns
// OutOfRange, UnsupportedAlias, InvalidAddress or UnknownSymbol.
package memorymap
