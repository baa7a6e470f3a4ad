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
	"github.com/jetsetilly/rp1mmio/curated"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/bus"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/memorymap"
	"github.com/jetsetilly/rp1mmio/logger"
)

// Peripheral is the register access layer for the RP1. It implements the
// bus.Registers and bus.DebuggerBus interfaces over a bus.Memory backend.
type Peripheral struct {
	mem bus.Memory
}

// NewPeripheral is the preferred method of initialisation for the Peripheral
// type.
func NewPeripheral(mem bus.Memory) *Peripheral {
	return &Peripheral{mem: mem}
}

// rejected logs the error before returning it. no transaction has been made.
func rejected(err error) error {
	logger.Log(logger.Allow, "rp1", err)
	return err
}

// Read the register at the address. The address can use any alias. Every call
// is a single load from the backend.
func (p *Peripheral) Read(addr memorymap.Address) (uint32, error) {
	if err := memorymap.Validate(addr); err != nil {
		return 0, rejected(err)
	}
	return p.mem.Load32(addr)
}

// Write value to the register at the address, replacing all bits. Only
// addresses resolved through the Direct alias can be written to. Use
// SetBits(), ClearBits() or ToggleBits() to change part of a register.
func (p *Peripheral) Write(addr memorymap.Address, value uint32) error {
	if err := memorymap.Validate(addr); err != nil {
		return rejected(err)
	}
	if addr.Alias() != memorymap.Direct {
		return rejected(curated.Errorf(memorymap.UnsupportedAlias, addr.Region(), addr.Alias()))
	}
	return p.mem.Store32(addr, value)
}

// ReadRegion reads the register through the Direct alias.
func (p *Peripheral) ReadRegion(r memorymap.Region) (uint32, error) {
	addr, err := memorymap.Resolve(r, memorymap.Direct)
	if err != nil {
		return 0, rejected(err)
	}
	return p.mem.Load32(addr)
}

// WriteRegion writes the register through the Direct alias.
func (p *Peripheral) WriteRegion(r memorymap.Region, value uint32) error {
	addr, err := memorymap.Resolve(r, memorymap.Direct)
	if err != nil {
		return rejected(err)
	}
	return p.mem.Store32(addr, value)
}

// storeAlias resolves the region through the alias and stores the mask. the
// hardware applies the mask to the register.
func (p *Peripheral) storeAlias(r memorymap.Region, a memorymap.Alias, mask uint32) error {
	addr, err := memorymap.Resolve(r, a)
	if err != nil {
		return rejected(err)
	}
	return p.mem.Store32(addr, mask)
}

// SetBits sets the bits in mask with a single store to the SET alias of the
// register. Bits not in mask are unchanged.
func (p *Peripheral) SetBits(r memorymap.Region, mask uint32) error {
	return p.storeAlias(r, memorymap.AtomicSet, mask)
}

// ClearBits clears the bits in mask with a single store to the CLR alias of
// the register. Bits not in mask are unchanged.
func (p *Peripheral) ClearBits(r memorymap.Region, mask uint32) error {
	return p.storeAlias(r, memorymap.AtomicClear, mask)
}

// ToggleBits inverts the bits in mask with a single store to the XOR alias of
// the register. Bits not in mask are unchanged.
func (p *Peripheral) ToggleBits(r memorymap.Region, mask uint32) error {
	return p.storeAlias(r, memorymap.AtomicXor, mask)
}

// Peek implements the bus.DebuggerBus interface.
func (p *Peripheral) Peek(r memorymap.Region) (uint32, error) {
	return p.ReadRegion(r)
}

// Poke implements the bus.DebuggerBus interface.
func (p *Peripheral) Poke(r memorymap.Region, value uint32) error {
	return p.WriteRegion(r, value)
}
