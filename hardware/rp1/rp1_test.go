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

package rp1_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/jetsetilly/rp1mmio/curated"
	"github.com/jetsetilly/rp1mmio/hardware/rp1"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/bus"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/memorymap"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/simulated"
	"github.com/jetsetilly/rp1mmio/logger"
	"github.com/jetsetilly/rp1mmio/test"
)

var (
	_ bus.Registers   = (*rp1.Peripheral)(nil)
	_ bus.DebuggerBus = (*rp1.Peripheral)(nil)
)

func gpioControl(t *testing.T, pin int) memorymap.Region {
	t.Helper()
	r, err := memorymap.GPIOControl(pin)
	test.DemandSuccess(t, err)
	return r
}

func resolve(t *testing.T, r memorymap.Region, a memorymap.Alias) memorymap.Address {
	t.Helper()
	addr, err := memorymap.Resolve(r, a)
	test.DemandSuccess(t, err)
	return addr
}

func TestReadWrite(t *testing.T) {
	sim := simulated.NewPeripheral()
	pio := rp1.NewPeripheral(sim)

	addr := resolve(t, gpioControl(t, 7), memorymap.Direct)
	test.ExpectSuccess(t, pio.Write(addr, 0x12345678))

	v, err := pio.Read(addr)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x12345678))

	// reading through an alias returns the register value
	v, err = pio.Read(resolve(t, gpioControl(t, 7), memorymap.AtomicSet))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x12345678))

	// region variants
	test.ExpectSuccess(t, pio.WriteRegion(gpioControl(t, 8), 0x55))
	v, err = pio.ReadRegion(gpioControl(t, 8))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x55))
}

func TestSetClearRestores(t *testing.T) {
	sim := simulated.NewPeripheral()
	pio := rp1.NewPeripheral(sim)
	r := gpioControl(t, 3)

	for _, initial := range []uint32{0x00000000, 0xffffffff, 0x0000f0f0, 0x80000001} {
		for _, mask := range []uint32{0x00000000, 0x0000001f, 0x00000f00, 0xffffffff} {
			test.DemandSuccess(t, pio.WriteRegion(r, initial))
			test.ExpectSuccess(t, pio.SetBits(r, mask))

			v, _ := pio.ReadRegion(r)
			test.ExpectEquality(t, v, initial|mask)

			test.ExpectSuccess(t, pio.ClearBits(r, mask))
			v, _ = pio.ReadRegion(r)

			// set then clear restores the value for bits that were not
			// already set before the SetBits()
			test.ExpectEquality(t, v, initial&^mask)
			if initial&mask == 0 {
				test.ExpectEquality(t, v, initial)
			}
		}
	}
}

func TestToggleTwice(t *testing.T) {
	sim := simulated.NewPeripheral()
	pio := rp1.NewPeripheral(sim)
	r, err := memorymap.PWMChannelControl(memorymap.PWM1, 2)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, pio.WriteRegion(r, 0xa5a5a5a5))
	test.ExpectSuccess(t, pio.ToggleBits(r, 0x0000ffff))
	v, _ := pio.ReadRegion(r)
	test.ExpectEquality(t, v, uint32(0xa5a55a5a))

	test.ExpectSuccess(t, pio.ToggleBits(r, 0x0000ffff))
	v, _ = pio.ReadRegion(r)
	test.ExpectEquality(t, v, uint32(0xa5a5a5a5))
}

// the atomic operations are a single store to the correct alias
func TestAliasSelection(t *testing.T) {
	sim := simulated.NewPeripheral()
	pio := rp1.NewPeripheral(sim)
	r := gpioControl(t, 7)

	sim.Trace(true)
	test.ExpectSuccess(t, pio.SetBits(r, 0x01))
	test.ExpectSuccess(t, pio.ClearBits(r, 0x02))
	test.ExpectSuccess(t, pio.ToggleBits(r, 0x04))

	acc := sim.Accesses()
	test.DemandEquality(t, len(acc), 3)
	test.ExpectEquality(t, acc[0], simulated.Access{Store: true, Physical: 0x400d203c, Alias: memorymap.AtomicSet, Value: 0x01})
	test.ExpectEquality(t, acc[1], simulated.Access{Store: true, Physical: 0x400d303c, Alias: memorymap.AtomicClear, Value: 0x02})
	test.ExpectEquality(t, acc[2], simulated.Access{Store: true, Physical: 0x400d103c, Alias: memorymap.AtomicXor, Value: 0x04})
}

func TestUnsupportedAlias(t *testing.T) {
	sim := simulated.NewPeripheral()
	pio := rp1.NewPeripheral(sim)

	// PWM duty holds a value and only supports the Direct alias
	r, err := memorymap.PWMChannelDuty(memorymap.PWM0, 2)
	test.DemandSuccess(t, err)

	sim.Trace(true)
	test.ExpectEquality(t, curated.Is(pio.SetBits(r, 1), memorymap.UnsupportedAlias), true)
	test.ExpectEquality(t, curated.Is(pio.ClearBits(r, 1), memorymap.UnsupportedAlias), true)
	test.ExpectEquality(t, curated.Is(pio.ToggleBits(r, 1), memorymap.UnsupportedAlias), true)

	// writing through an alias is refused. the atomic operations must be used
	// instead
	addr := resolve(t, gpioControl(t, 7), memorymap.AtomicSet)
	test.ExpectEquality(t, curated.Is(pio.Write(addr, 1), memorymap.UnsupportedAlias), true)

	// no transaction was made
	test.ExpectEquality(t, len(sim.Accesses()), 0)
}

func TestInvalidAddress(t *testing.T) {
	sim := simulated.NewPeripheral()
	pio := rp1.NewPeripheral(sim)

	sim.Trace(true)

	var zero memorymap.Address
	_, err := pio.Read(zero)
	test.ExpectEquality(t, curated.Is(err, memorymap.InvalidAddress), true)
	test.ExpectEquality(t, curated.Is(pio.Write(zero, 0), memorymap.InvalidAddress), true)
	test.ExpectEquality(t, curated.Is(pio.NonAtomic().Modify(zero, func(v uint32) uint32 { return v }), memorymap.InvalidAddress), true)

	var undefined memorymap.Region
	test.ExpectEquality(t, curated.Is(pio.SetBits(undefined, 1), memorymap.OutOfRange), true)
	_, err = pio.Peek(undefined)
	test.ExpectEquality(t, curated.Is(err, memorymap.OutOfRange), true)
	test.ExpectEquality(t, curated.Is(pio.Poke(undefined, 1), memorymap.OutOfRange), true)

	test.ExpectEquality(t, len(sim.Accesses()), 0)
}

func TestRejectionsLogged(t *testing.T) {
	sim := simulated.NewPeripheral()
	pio := rp1.NewPeripheral(sim)

	logger.Clear()
	addr := resolve(t, gpioControl(t, 1), memorymap.AtomicClear)
	test.ExpectFailure(t, pio.Write(addr, 1))

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "rp1: unsupported alias"), true)

	// successful accesses are not logged
	logger.Clear()
	test.ExpectSuccess(t, pio.SetBits(gpioControl(t, 1), 1))
	test.ExpectEquality(t, len(logger.Copy()), 0)
}

func TestNonAtomic(t *testing.T) {
	sim := simulated.NewPeripheral()
	pio := rp1.NewPeripheral(sim)
	r := gpioControl(t, 12)
	direct := resolve(t, r, memorymap.Direct)

	test.DemandSuccess(t, pio.Write(direct, 0x00ff))

	sim.Trace(true)
	na := pio.NonAtomic()
	test.ExpectSuccess(t, na.SetBits(direct, 0x0f00))
	test.ExpectSuccess(t, na.ClearBits(direct, 0x000f))
	test.ExpectSuccess(t, na.Modify(direct, func(v uint32) uint32 { return v << 4 }))

	// the address can be an alias
	test.ExpectSuccess(t, na.SetBits(resolve(t, r, memorymap.AtomicXor), 1))
	sim.Trace(false)

	v, _ := pio.Read(direct)
	test.ExpectEquality(t, v, uint32(0xff01))

	// every operation is a load and a store through the Direct alias
	acc := sim.Accesses()
	test.DemandEquality(t, len(acc), 8)
	for i, a := range acc {
		test.ExpectEquality(t, a.Alias, memorymap.Direct, i)
		test.ExpectEquality(t, a.Physical, direct.Physical(), i)
		test.ExpectEquality(t, a.Store, i%2 == 1, i)
	}
}

func TestPeekPoke(t *testing.T) {
	sim := simulated.NewPeripheral()
	pio := rp1.NewPeripheral(sim)

	test.ExpectSuccess(t, pio.Poke(memorymap.VoltageSelect(), 1))
	v, err := pio.Peek(memorymap.VoltageSelect())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(1))

	// read-only registers ignore the poke
	test.ExpectSuccess(t, pio.Poke(memorymap.RIOIn(), 0xff))
	v, _ = pio.Peek(memorymap.RIOIn())
	test.ExpectEquality(t, v, uint32(0))
}

// concurrent SetBits() and ClearBits() on the same register do not lose
// updates
func TestConcurrentSetBits(t *testing.T) {
	sim := simulated.NewPeripheral()
	pio := rp1.NewPeripheral(sim)
	r := memorymap.RIOOutputEnable()

	var wg sync.WaitGroup
	for bit := range memorymap.NumPins {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				_ = pio.SetBits(r, 1<<bit)
				_ = pio.ToggleBits(r, 1<<bit)
				_ = pio.SetBits(r, 1<<bit)
			}
		}()
	}
	wg.Wait()

	v, err := pio.ReadRegion(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(1<<memorymap.NumPins-1))
}
