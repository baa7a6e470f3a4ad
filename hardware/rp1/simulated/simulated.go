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

package simulated

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/rp1mmio/curated"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/memorymap"
	"github.com/jetsetilly/rp1mmio/logger"
	"go.uber.org/atomic"
)

// key identifies the underlying register, independent of the alias used to
// reach it.
type key struct {
	area   memorymap.Area
	offset uint32
}

// Access is a single transaction recorded by the Peripheral when tracing is
// enabled.
type Access struct {
	Store    bool
	Physical uint32
	Alias    memorymap.Alias
	Value    uint32
}

func (a Access) String() string {
	if a.Store {
		return fmt.Sprintf("store %#08x (%s) <- %#08x", a.Physical, a.Alias, a.Value)
	}
	return fmt.Sprintf("load  %#08x (%s) -> %#08x", a.Physical, a.Alias, a.Value)
}

// Peripheral is a register file with the same alias behaviour as the RP1. It
// implements the bus.Memory interface.
type Peripheral struct {
	// the map is created once and never changed. the cells are changed with
	// atomic operations only
	regs map[key]*cell

	trace    atomic.Bool
	crit     sync.Mutex
	accesses []Access
}

type cell struct {
	value    atomic.Uint32
	readOnly bool
}

// NewPeripheral is the preferred method of initialisation for the Peripheral
// type. Every register starts at zero.
func NewPeripheral() *Peripheral {
	p := &Peripheral{
		regs: make(map[key]*cell),
	}
	for _, r := range memorymap.Regions() {
		addr, err := memorymap.Resolve(r, memorymap.Direct)
		if err != nil {
			panic(fmt.Sprintf("simulated: %v", err))
		}
		p.regs[key{area: addr.Area(), offset: addr.Offset()}] = &cell{readOnly: r.ReadOnly()}
	}
	return p
}

func (p *Peripheral) lookup(addr memorymap.Address) (*cell, error) {
	if err := memorymap.Validate(addr); err != nil {
		return nil, err
	}
	c, ok := p.regs[key{area: addr.Area(), offset: addr.Offset()}]
	if !ok {
		return nil, curated.Errorf(memorymap.InvalidAddress, addr.Physical(), "is not a simulated register")
	}
	return c, nil
}

func (p *Peripheral) record(acc Access) {
	if !p.trace.Load() {
		return
	}
	p.crit.Lock()
	defer p.crit.Unlock()
	p.accesses = append(p.accesses, acc)
}

// Load32 implements the bus.Memory interface. A load through any alias
// returns the value of the register.
func (p *Peripheral) Load32(addr memorymap.Address) (uint32, error) {
	c, err := p.lookup(addr)
	if err != nil {
		return 0, err
	}
	v := c.value.Load()
	p.record(Access{Physical: addr.Physical(), Alias: addr.Alias(), Value: v})
	return v, nil
}

// Store32 implements the bus.Memory interface. A store through the XOR, SET or
// CLR alias is applied to the register as one indivisible operation. Stores to
// read-only registers have no effect.
func (p *Peripheral) Store32(addr memorymap.Address, value uint32) error {
	c, err := p.lookup(addr)
	if err != nil {
		return err
	}
	p.record(Access{Store: true, Physical: addr.Physical(), Alias: addr.Alias(), Value: value})

	if c.readOnly {
		return nil
	}

	switch addr.Alias() {
	case memorymap.Direct:
		c.value.Store(value)
		return nil
	case memorymap.AtomicXor:
		c.apply(func(v uint32) uint32 { return v ^ value })
	case memorymap.AtomicSet:
		c.apply(func(v uint32) uint32 { return v | value })
	case memorymap.AtomicClear:
		c.apply(func(v uint32) uint32 { return v &^ value })
	}

	return nil
}

// apply the operation to the cell, retrying if another goroutine changes the
// cell between the load and the swap.
func (c *cell) apply(op func(uint32) uint32) {
	for {
		o := c.value.Load()
		if c.value.CompareAndSwap(o, op(o)) {
			return
		}
	}
}

// Preset sets the value of a register without recording an access. Unlike
// Store32(), read-only registers can be changed. Useful for simulating input
// pins and interrupt status.
func (p *Peripheral) Preset(r memorymap.Region, value uint32) error {
	addr, err := memorymap.Resolve(r, memorymap.Direct)
	if err != nil {
		return err
	}
	c, err := p.lookup(addr)
	if err != nil {
		return err
	}
	c.value.Store(value)
	return nil
}

// Reset all registers to zero and forget the recorded accesses.
func (p *Peripheral) Reset() {
	for _, c := range p.regs {
		c.value.Store(0)
	}
	p.crit.Lock()
	defer p.crit.Unlock()
	p.accesses = p.accesses[:0]
	logger.Log(logger.Allow, "simulated", "reset")
}

// Trace turns the recording of accesses on or off.
func (p *Peripheral) Trace(on bool) {
	p.trace.Store(on)
}

// Accesses returns a copy of the recorded accesses in the order they were
// made.
func (p *Peripheral) Accesses() []Access {
	p.crit.Lock()
	defer p.crit.Unlock()
	c := make([]Access, len(p.accesses))
	copy(c, p.accesses)
	return c
}
