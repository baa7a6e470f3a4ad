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

package memorymap

import (
	"fmt"

	"github.com/jetsetilly/rp1mmio/curated"
)

// register offsets from the area origin, expressed as base + index*stride.
const (
	gpioStatusOrigin  = uint32(0x000)
	gpioControlOrigin = uint32(0x004)
	gpioStride        = uint32(0x008)

	intrRaw        = uint32(0x100)
	intrCoreOrigin = uint32(0x104)
	intrCoreStride = uint32(0x00c)
	intrEnable     = uint32(0x000)
	intrForce      = uint32(0x004)
	intrStatus     = uint32(0x008)

	padVoltageSelect = uint32(0x00)
	padOrigin        = uint32(0x04)
	padStride        = uint32(0x04)

	rioOut          = uint32(0x00)
	rioOutputEnable = uint32(0x04)
	rioIn           = uint32(0x08)

	pwmGlobalControl  = uint32(0x00)
	pwmFIFOControl    = uint32(0x04)
	pwmCommonRange    = uint32(0x08)
	pwmCommonDuty     = uint32(0x0c)
	pwmDutyFIFO       = uint32(0x10)
	pwmChannelOrigin  = uint32(0x14)
	pwmChannelStride  = uint32(0x10)
	pwmChannelControl = uint32(0x00)
	pwmChannelRange   = uint32(0x04)
	pwmChannelPhase   = uint32(0x08)
	pwmChannelDuty    = uint32(0x0c)
	pwmInterruptRaw   = uint32(0x54)
	pwmInterruptEnbl  = uint32(0x58)
	pwmInterruptForce = uint32(0x5c)
	pwmInterruptStat  = uint32(0x60)
)

// offset of the register from the area origin. Direct alias
func (r Region) offset() uint32 {
	idx := uint32(r.index)
	core := uint32(r.core)

	switch r.kind {
	case KindGPIOStatus:
		return gpioStatusOrigin + idx*gpioStride
	case KindGPIOControl:
		return gpioControlOrigin + idx*gpioStride
	case KindInterruptRaw:
		return intrRaw
	case KindInterruptEnable:
		return intrCoreOrigin + core*intrCoreStride + intrEnable
	case KindInterruptForce:
		return intrCoreOrigin + core*intrCoreStride + intrForce
	case KindInterruptStatus:
		return intrCoreOrigin + core*intrCoreStride + intrStatus
	case KindVoltageSelect:
		return padVoltageSelect
	case KindPad:
		return padOrigin + idx*padStride
	case KindRIOOut:
		return rioOut
	case KindRIOOutputEnable:
		return rioOutputEnable
	case KindRIOIn:
		return rioIn
	case KindPWMGlobalControl:
		return pwmGlobalControl
	case KindPWMFIFOControl:
		return pwmFIFOControl
	case KindPWMCommonRange:
		return pwmCommonRange
	case KindPWMCommonDuty:
		return pwmCommonDuty
	case KindPWMDutyFIFO:
		return pwmDutyFIFO
	case KindPWMChannelControl:
		return pwmChannelOrigin + idx*pwmChannelStride + pwmChannelControl
	case KindPWMChannelRange:
		return pwmChannelOrigin + idx*pwmChannelStride + pwmChannelRange
	case KindPWMChannelPhase:
		return pwmChannelOrigin + idx*pwmChannelStride + pwmChannelPhase
	case KindPWMChannelDuty:
		return pwmChannelOrigin + idx*pwmChannelStride + pwmChannelDuty
	case KindPWMInterruptRaw:
		return pwmInterruptRaw
	case KindPWMInterruptEnable:
		return pwmInterruptEnbl
	case KindPWMInterruptForce:
		return pwmInterruptForce
	case KindPWMInterruptStatus:
		return pwmInterruptStat
	}

	return 0
}

// Address is a register resolved through an alias. The only way to create a
// usable Address is with the Resolve() function. The zero value is not a valid
// address and will be rejected by Validate().
type Address struct {
	region Region
	alias  Alias
}

// Resolve the register named by the region, as seen through the alias.
//
// Resolve has no side effects and performs no I/O. It fails with an OutOfRange
// error if the region is undefined or the alias is not one of the four alias
// values, and with an UnsupportedAlias error if the register does not support
// the alias.
func Resolve(r Region, a Alias) (Address, error) {
	if r.kind == KindUndefined {
		return Address{}, curated.Errorf(OutOfRange, "region", r)
	}
	if !a.valid() {
		return Address{}, curated.Errorf(OutOfRange, "alias", fmt.Sprintf("%#04x", uint32(a)))
	}
	if !r.Supports(a) {
		return Address{}, curated.Errorf(UnsupportedAlias, r, a)
	}
	return Address{region: r, alias: a}, nil
}

// Physical returns the address used for the memory access: area origin plus
// alias offset plus register offset.
func (addr Address) Physical() uint32 {
	return addr.region.Area().Origin() + addr.Relative()
}

// Relative returns the address relative to the area origin, including the
// alias offset.
func (addr Address) Relative() uint32 {
	return uint32(addr.alias) + addr.region.offset()
}

// Offset returns the offset of the register from the area origin, not
// including the alias offset.
func (addr Address) Offset() uint32 {
	return addr.region.offset()
}

// Area returns the area the address is in.
func (addr Address) Area() Area {
	return addr.region.Area()
}

// Alias returns the alias the address was resolved through.
func (addr Address) Alias() Alias {
	return addr.alias
}

// Region returns the register the address was resolved from.
func (addr Address) Region() Region {
	return addr.region
}

// Primary returns the address of the same register through the Direct alias.
// Every register supports the Direct alias so this is always a valid address
// if the receiving address is valid.
func (addr Address) Primary() Address {
	return Address{region: addr.region, alias: Direct}
}

func (addr Address) String() string {
	return fmt.Sprintf("%s@%s (%#08x)", addr.region, addr.alias, addr.Physical())
}

// Validate checks that the address was produced by Resolve() and that the
// physical address is one that the RP1 decodes. Returns an InvalidAddress
// error if not.
func Validate(addr Address) error {
	if addr.region.kind == KindUndefined {
		return curated.Errorf(InvalidAddress, addr.Physical(), "does not name a register")
	}
	if !addr.alias.valid() {
		return curated.Errorf(InvalidAddress, addr.Physical(), "uses an unknown alias")
	}
	return ValidatePhysical(addr.Physical())
}
