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

package rp1

import (
	"github.com/jetsetilly/rp1mmio/hardware/rp1/bus"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/memorymap"
)

// NonAtomic performs read-modify-write sequences on registers. Each operation
// is a load followed by a store through the Direct alias.
//
// NonAtomic is NOT safe if anything else can change the register between the
// load and the store. That includes other goroutines, the other processor
// cores and interrupt handlers. A change made in that window is lost. The
// caller must guarantee that it is the only accessor of the register, or use
// the SetBits(), ClearBits() and ToggleBits() functions of Peripheral.
type NonAtomic struct {
	mem bus.Memory
}

// NonAtomic returns the read-modify-write operations for the Peripheral.
func (p *Peripheral) NonAtomic() NonAtomic {
	return NonAtomic{mem: p.mem}
}

// Modify loads the register, passes the value to the function and stores the
// result. The address can use any alias. The load and store are always made
// through the Direct alias of the same register.
func (n NonAtomic) Modify(addr memorymap.Address, f func(uint32) uint32) error {
	if err := memorymap.Validate(addr); err != nil {
		return rejected(err)
	}
	addr = addr.Primary()

	v, err := n.mem.Load32(addr)
	if err != nil {
		return err
	}
	return n.mem.Store32(addr, f(v))
}

// SetBits is the read-modify-write equivalent of Peripheral.SetBits().
func (n NonAtomic) SetBits(addr memorymap.Address, mask uint32) error {
	return n.Modify(addr, func(v uint32) uint32 {
		return v | mask
	})
}

// ClearBits is the read-modify-write equivalent of Peripheral.ClearBits().
func (n NonAtomic) ClearBits(addr memorymap.Address, mask uint32) error {
	return n.Modify(addr, func(v uint32) uint32 {
		return v &^ mask
	})
}
