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

// Package bus defines the access patterns to the RP1 registers.
//
// Memory is implemented by the backends: the memory mapped hardware in the
// mmio package and the register file in the simulated package. Registers is
// implemented by the rp1 package and is what GPIO, PWM and interrupt drivers
// should depend on. DebuggerBus is for tools that poke at registers by name.
package bus

import "github.com/jetsetilly/rp1mmio/hardware/rp1/memorymap"

// Memory is a single 32 bit transaction with the register space. Each call is
// exactly one load or one store at the physical address of the Address,
// including the alias offset. Implementations must not cache values.
type Memory interface {
	Load32(addr memorymap.Address) (uint32, error)
	Store32(addr memorymap.Address, value uint32) error
}

// Registers defines the operations available to drivers.
//
// SetBits(), ClearBits() and ToggleBits() are atomic with respect to any
// other access to the same register, from any core or interrupt handler,
// because the hardware performs the operation. No locking is required.
type Registers interface {
	Read(addr memorymap.Address) (uint32, error)
	Write(addr memorymap.Address, value uint32) error

	SetBits(r memorymap.Region, mask uint32) error
	ClearBits(r memorymap.Region, mask uint32) error
	ToggleBits(r memorymap.Region, mask uint32) error
}

// DebuggerBus defines the meta-operations for all registers. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of a driver.
type DebuggerBus interface {
	Peek(r memorymap.Region) (uint32, error)
	Poke(r memorymap.Region, value uint32) error
}
