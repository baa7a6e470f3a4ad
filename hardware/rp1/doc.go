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

// Package rp1 performs reads and writes on the registers of the RP1 I/O
// controller. Addresses are created by the memorymap package and the memory
// transactions are made by a bus.Memory backend, either the mmio package for
// real hardware or the simulated package.
//
//	p, _ := mmio.NewPreferences()
//	mem, _ := mmio.Open(p)
//	defer mem.Close()
//	pio := rp1.NewPeripheral(mem)
//
//	r, _ := memorymap.GPIOControl(7)
//	pio.SetBits(r, 0x1f)
//
// There are two ways of changing some of the bits in a register. SetBits(),
// ClearBits() and ToggleBits() use the SET, CLR and XOR aliases of the
// register and are a single store. The hardware applies the change so it is
// safe to use from more than one goroutine or alongside interrupt handlers.
//
// The NonAtomic type provides the same operations as a load followed by a
// store. It exists for registers which do not support the aliases and for
// callers which have exclusive access to a register.
//
// All errors are detected before any memory transaction is made.
package rp1
