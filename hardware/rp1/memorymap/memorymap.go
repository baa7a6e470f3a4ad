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
	"strings"

	"github.com/jetsetilly/rp1mmio/curated"
)

// Sentinal error patterns. Use curated.Is() or curated.Has() to test for them.
const (
	OutOfRange       = "out of range: %s %v"
	UnsupportedAlias = "unsupported alias: %v cannot be accessed through the %v alias"
	InvalidAddress   = "invalid address: %#08x %s"
	UnknownSymbol    = "unknown register: %s"
)

// Area represents the different register blocks of the RP1.
type Area int

func (a Area) String() string {
	switch a {
	case GPIO:
		return "GPIO"
	case Pads:
		return "PADS"
	case RIO:
		return "RIO"
	case PWM0:
		return "PWM0"
	case PWM1:
		return "PWM1"
	}

	return "undefined"
}

// The different register blocks in the RP1.
const (
	Undefined Area = iota
	GPIO
	Pads
	RIO
	PWM0
	PWM1
)

// Areas lists every defined Area in address order.
var Areas = []Area{PWM0, PWM1, GPIO, RIO, Pads}

// The origin and memory top for each area. Memtop is relative to the origin
// and is the last byte of the last register in the area. Addresses above
// memtop, but below the next alias window, are not decoded by the RP1.
const (
	OriginGPIO = uint32(0x400d0000)
	MemtopGPIO = uint32(0x0127)
	OriginPads = uint32(0x400f0000)
	MemtopPads = uint32(0x0073)
	OriginRIO  = uint32(0x400e0000)
	MemtopRIO  = uint32(0x000b)
	OriginPWM0 = uint32(0x40098000)
	OriginPWM1 = uint32(0x4009c000)
	MemtopPWM  = uint32(0x0063)
)

// AliasWindow is the size of each alias view of an area. AreaSize is the span
// of all four alias views.
const (
	AliasWindow = uint32(0x1000)
	AreaSize    = 4 * AliasWindow
)

// Origin returns the physical address of the first register in the area.
func (a Area) Origin() uint32 {
	switch a {
	case GPIO:
		return OriginGPIO
	case Pads:
		return OriginPads
	case RIO:
		return OriginRIO
	case PWM0:
		return OriginPWM0
	case PWM1:
		return OriginPWM1
	}
	return 0
}

// Memtop returns the offset of the last byte of the last register in the
// area.
func (a Area) Memtop() uint32 {
	switch a {
	case GPIO:
		return MemtopGPIO
	case Pads:
		return MemtopPads
	case RIO:
		return MemtopRIO
	case PWM0, PWM1:
		return MemtopPWM
	}
	return 0
}

// Alias selects which of the four views of a register is used for an access.
// The value of an Alias is the offset of the view from the area origin.
type Alias uint32

// List of valid Alias values.
const (
	Direct      Alias = 0x0000
	AtomicXor   Alias = 0x1000
	AtomicSet   Alias = 0x2000
	AtomicClear Alias = 0x3000
)

// Aliases lists all valid Alias values.
var Aliases = []Alias{Direct, AtomicXor, AtomicSet, AtomicClear}

func (a Alias) String() string {
	switch a {
	case Direct:
		return "RW"
	case AtomicXor:
		return "XOR"
	case AtomicSet:
		return "SET"
	case AtomicClear:
		return "CLR"
	}
	return fmt.Sprintf("alias(%#04x)", uint32(a))
}

func (a Alias) valid() bool {
	switch a {
	case Direct, AtomicXor, AtomicSet, AtomicClear:
		return true
	}
	return false
}

// ParseAlias returns the Alias for the string representation returned by
// Alias.String(). DIRECT is accepted as a synonym of RW.
func ParseAlias(s string) (Alias, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RW", "DIRECT":
		return Direct, nil
	case "XOR":
		return AtomicXor, nil
	case "SET":
		return AtomicSet, nil
	case "CLR":
		return AtomicClear, nil
	}
	return Direct, curated.Errorf(OutOfRange, "alias", s)
}

// MapAddress splits a physical address into the area it is in, the offset of
// the register from the area origin and the alias view being used. The final
// return value is false if the address is not inside any area.
//
// No checks are made on alignment or whether the offset is beyond the memtop
// of the area. See ValidatePhysical() for that.
func MapAddress(physical uint32) (Area, uint32, Alias, bool) {
	for _, a := range Areas {
		o := a.Origin()
		if physical >= o && physical-o < AreaSize {
			rel := physical - o
			return a, rel & (AliasWindow - 1), Alias(rel &^ (AliasWindow - 1)), true
		}
	}
	return Undefined, 0, Direct, false
}

// IsArea returns true if the address is in the specificied area.
func IsArea(physical uint32, area Area) bool {
	a, _, _, ok := MapAddress(physical)
	return ok && a == area
}

// ValidatePhysical checks that a raw physical address is word aligned and
// decodes to a register in one of the RP1 areas, through any alias.
func ValidatePhysical(physical uint32) error {
	if physical&0x03 != 0 {
		return curated.Errorf(InvalidAddress, physical, "is not word aligned")
	}

	area, offset, _, ok := MapAddress(physical)
	if !ok {
		return curated.Errorf(InvalidAddress, physical, "is not in any RP1 area")
	}

	if offset+3 > area.Memtop() {
		return curated.Errorf(InvalidAddress, physical, fmt.Sprintf("is beyond the last register of %s", area))
	}

	return nil
}
