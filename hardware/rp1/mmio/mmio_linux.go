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

package mmio

import (
	"errors"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/jetsetilly/rp1mmio/curated"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/memorymap"
	"github.com/jetsetilly/rp1mmio/logger"
	"golang.org/x/sys/unix"
)

// Mapping is the RP1 register areas mapped into memory.
//
// Load32() and Store32() can be called from more than one goroutine. Close()
// must not be called while another goroutine is accessing the mapping.
type Mapping struct {
	device  string
	windows map[memorymap.Area][]byte
}

// Open maps every RP1 area from the device named in the preferences.
func Open(p *Preferences) (*Mapping, error) {
	m := &Mapping{
		device:  p.Device.String(),
		windows: make(map[memorymap.Area][]byte),
	}

	f, err := os.OpenFile(m.device, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, curated.Errorf(MappingError, m.device, err)
	}

	// the file can be closed once the memory is mapped
	defer f.Close()

	for _, area := range memorymap.Areas {
		offset, err := p.Window(area)
		if err != nil {
			_ = m.unmap()
			return nil, curated.Errorf(MappingError, m.device, err)
		}

		b, err := unix.Mmap(int(f.Fd()), offset, int(memorymap.AreaSize), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
		if err != nil {
			_ = m.unmap()
			return nil, curated.Errorf(MappingError, m.device, err)
		}
		m.windows[area] = b

		logger.Logf(logger.Allow, "mmio", "mapped %s from %s at %#x", area, m.device, offset)
	}

	return m, nil
}

func (m *Mapping) unmap() error {
	var errs []error
	for area, b := range m.windows {
		if err := unix.Munmap(b); err != nil {
			errs = append(errs, err)
		}
		delete(m.windows, area)
	}
	return errors.Join(errs...)
}

// Close unmaps all areas. The Mapping cannot be used after it is closed.
func (m *Mapping) Close() error {
	if err := m.unmap(); err != nil {
		return curated.Errorf(MappingError, m.device, err)
	}
	logger.Logf(logger.Allow, "mmio", "unmapped %s", m.device)
	return nil
}

// word returns a pointer to the mapped register.
func (m *Mapping) word(addr memorymap.Address) (*uint32, error) {
	if err := memorymap.Validate(addr); err != nil {
		return nil, err
	}
	b, ok := m.windows[addr.Area()]
	if !ok {
		return nil, curated.Errorf(MappingError, m.device, "area is not mapped")
	}
	return (*uint32)(unsafe.Pointer(&b[addr.Relative()])), nil
}

// Load32 implements the bus.Memory interface.
func (m *Mapping) Load32(addr memorymap.Address) (uint32, error) {
	w, err := m.word(addr)
	if err != nil {
		return 0, err
	}
	return atomic.LoadUint32(w), nil
}

// Store32 implements the bus.Memory interface.
func (m *Mapping) Store32(addr memorymap.Address, value uint32) error {
	w, err := m.word(addr)
	if err != nil {
		return err
	}
	atomic.StoreUint32(w, value)
	return nil
}
