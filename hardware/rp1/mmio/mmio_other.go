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

//go:build !linux

package mmio

import (
	"runtime"

	"github.com/jetsetilly/rp1mmio/curated"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/memorymap"
)

// Mapping is not available on this platform.
type Mapping struct{}

// Open always fails on this platform.
func Open(p *Preferences) (*Mapping, error) {
	return nil, curated.Errorf(MappingError, p.Device.String(), "not supported on "+runtime.GOOS)
}

// Close implements the io.Closer interface.
func (m *Mapping) Close() error {
	return nil
}

// Load32 implements the bus.Memory interface.
func (m *Mapping) Load32(addr memorymap.Address) (uint32, error) {
	return 0, curated.Errorf(MappingError, "", "not supported on "+runtime.GOOS)
}

// Store32 implements the bus.Memory interface.
func (m *Mapping) Store32(addr memorymap.Address, value uint32) error {
	return curated.Errorf(MappingError, "", "not supported on "+runtime.GOOS)
}
