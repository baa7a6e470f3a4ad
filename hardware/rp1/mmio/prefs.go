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

package mmio

import (
	"fmt"

	"github.com/jetsetilly/rp1mmio/curated"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/memorymap"
	"github.com/jetsetilly/rp1mmio/prefs"
)

// Default values for the preferences.
const (
	DefaultDevice = "/dev/mem"

	// the RP1 is on the PCIe bus of the Raspberry Pi 5. its peripherals appear
	// in the host physical address space at this address
	DefaultHostBase = 0x1f00000000
)

// the address of the peripherals as seen by the RP1 itself. the address in
// the host address space is relative to this.
const rp1PeripheralBase = 0x40000000

// Preferences for the mmio backend.
type Preferences struct {
	// the device file to map. /dev/mem gives access to all physical memory
	// and requires root
	Device prefs.String

	// the address of the RP1 peripherals in the host physical address space
	HostBase prefs.Int
}

// prefs keys on the command line stack.
const (
	prefsDevice   = "mmio.device"
	prefsHostBase = "mmio.hostbase"
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Defaults are overridden by values found on the prefs
// command line stack.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.HostBase.SetHook(func(v prefs.Value) error {
		if b := v.(int64); b < 0 || b%int64(memorymap.AreaSize) != 0 {
			return curated.Errorf(MappingError, "hostbase", fmt.Errorf("%#x is not a valid host base", b))
		}
		return nil
	})

	if err := p.Device.Set(DefaultDevice); err != nil {
		return nil, err
	}
	if err := p.HostBase.Set(int64(DefaultHostBase)); err != nil {
		return nil, err
	}

	if _, err := prefs.ApplyCommandLinePref(prefsDevice, &p.Device); err != nil {
		return nil, err
	}
	if _, err := prefs.ApplyCommandLinePref(prefsHostBase, &p.HostBase); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) String() string {
	return fmt.Sprintf("%s::%s; %s::%#x", prefsDevice, p.Device.String(), prefsHostBase, p.HostBase.Get())
}

// Window returns the offset into the device of the area's registers. The
// window is memorymap.AreaSize bytes long and includes all four aliases.
func (p *Preferences) Window(area memorymap.Area) (int64, error) {
	if area == memorymap.Undefined {
		return 0, curated.Errorf(memorymap.OutOfRange, "area", area)
	}
	return p.HostBase.Get().(int64) + int64(area.Origin()-rp1PeripheralBase), nil
}
