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

//go:build linux

package mmio_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/rp1mmio/curated"
	"github.com/jetsetilly/rp1mmio/hardware/rp1"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/bus"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/memorymap"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/mmio"
	"github.com/jetsetilly/rp1mmio/prefs"
	"github.com/jetsetilly/rp1mmio/test"
)

var _ bus.Memory = (*mmio.Mapping)(nil)

// a sparse file large enough to hold every area with a host base of zero.
// the file stands in for /dev/mem
func fakeDevice(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "mem")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, f.Truncate(0x100000))
	test.DemandSuccess(t, f.Close())
	return fn
}

func openFake(t *testing.T, fn string) *mmio.Mapping {
	t.Helper()
	prefs.PushCommandLineStack("mmio.hostbase::0; mmio.device::" + fn)
	defer prefs.PopCommandLineStack()

	p, err := mmio.NewPreferences()
	test.DemandSuccess(t, err)
	m, err := mmio.Open(p)
	test.DemandSuccess(t, err)
	return m
}

func TestOpenMissingDevice(t *testing.T) {
	prefs.PushCommandLineStack("mmio.device::" + filepath.Join(t.TempDir(), "missing"))
	defer prefs.PopCommandLineStack()

	p, err := mmio.NewPreferences()
	test.DemandSuccess(t, err)
	_, err = mmio.Open(p)
	test.ExpectEquality(t, curated.Is(err, mmio.MappingError), true)
}

func TestMappedAccess(t *testing.T) {
	fn := fakeDevice(t)
	m := openFake(t, fn)

	r, err := memorymap.GPIOControl(7)
	test.DemandSuccess(t, err)
	addr, err := memorymap.Resolve(r, memorymap.Direct)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, m.Store32(addr, 0xdeadbeef))
	v, err := m.Load32(addr)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xdeadbeef))

	// a store through an alias goes to the alias address. a file does not
	// apply the operation like the hardware does
	set, err := memorymap.Resolve(r, memorymap.AtomicSet)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, m.Store32(set, 0x00000011))

	var zero memorymap.Address
	_, err = m.Load32(zero)
	test.ExpectEquality(t, curated.Is(err, memorymap.InvalidAddress), true)

	test.ExpectSuccess(t, m.Close())

	// the stores are in the file at the window offset plus the register
	// offset. the RP1 is little endian
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[0xd0000+0x3c:]), uint32(0xdeadbeef))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(b[0xd0000+0x203c:]), uint32(0x00000011))

	// no longer mapped
	_, err = m.Load32(addr)
	test.ExpectEquality(t, curated.Is(err, mmio.MappingError), true)
}

// the access layer works over the mapping
func TestPeripheralOverMapping(t *testing.T) {
	fn := fakeDevice(t)
	m := openFake(t, fn)
	defer m.Close()

	pio := rp1.NewPeripheral(m)
	r, err := memorymap.PWMChannelDuty(memorymap.PWM0, 2)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, pio.WriteRegion(r, 1000))
	v, err := pio.ReadRegion(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(1000))
}
