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
	"sort"
	"strings"

	"github.com/jetsetilly/rp1mmio/curated"
)

// every valid region in address order. created in init()
var allRegions []Region

// every valid region indexed by the result of Region.String()
var symbols map[string]Region

// every valid region indexed by the physical address of the Direct alias
var byPhysical map[uint32]Region

func init() {
	allRegions = make([]Region, 0, 160)

	for pin := range NumPins {
		allRegions = append(allRegions, Region{kind: KindGPIOStatus, index: pin})
		allRegions = append(allRegions, Region{kind: KindGPIOControl, index: pin})
	}
	allRegions = append(allRegions, Region{kind: KindInterruptRaw})
	for core := Proc0; core <= PCIe; core++ {
		allRegions = append(allRegions, Region{kind: KindInterruptEnable, core: core})
		allRegions = append(allRegions, Region{kind: KindInterruptForce, core: core})
		allRegions = append(allRegions, Region{kind: KindInterruptStatus, core: core})
	}

	allRegions = append(allRegions, Region{kind: KindVoltageSelect})
	for pin := range NumPins {
		allRegions = append(allRegions, Region{kind: KindPad, index: pin})
	}

	allRegions = append(allRegions, Region{kind: KindRIOOut})
	allRegions = append(allRegions, Region{kind: KindRIOOutputEnable})
	allRegions = append(allRegions, Region{kind: KindRIOIn})

	for _, block := range []Area{PWM0, PWM1} {
		allRegions = append(allRegions, Region{kind: KindPWMGlobalControl, block: block})
		allRegions = append(allRegions, Region{kind: KindPWMFIFOControl, block: block})
		allRegions = append(allRegions, Region{kind: KindPWMCommonRange, block: block})
		allRegions = append(allRegions, Region{kind: KindPWMCommonDuty, block: block})
		allRegions = append(allRegions, Region{kind: KindPWMDutyFIFO, block: block})
		for ch := range NumChannels {
			allRegions = append(allRegions, Region{kind: KindPWMChannelControl, block: block, index: ch})
			allRegions = append(allRegions, Region{kind: KindPWMChannelRange, block: block, index: ch})
			allRegions = append(allRegions, Region{kind: KindPWMChannelPhase, block: block, index: ch})
			allRegions = append(allRegions, Region{kind: KindPWMChannelDuty, block: block, index: ch})
		}
		allRegions = append(allRegions, Region{kind: KindPWMInterruptRaw, block: block})
		allRegions = append(allRegions, Region{kind: KindPWMInterruptEnable, block: block})
		allRegions = append(allRegions, Region{kind: KindPWMInterruptForce, block: block})
		allRegions = append(allRegions, Region{kind: KindPWMInterruptStatus, block: block})
	}

	// address order is easier to read in the summary and means that the
	// regions for an area are contiguous
	sort.SliceStable(allRegions, func(i, j int) bool {
		a := Address{region: allRegions[i]}
		b := Address{region: allRegions[j]}
		return a.Physical() < b.Physical()
	})

	symbols = make(map[string]Region, len(allRegions))
	byPhysical = make(map[uint32]Region, len(allRegions))
	for _, r := range allRegions {
		symbols[r.String()] = r
		byPhysical[Address{region: r}.Physical()] = r
	}
}

// Regions returns every register known to the package, in physical address
// order. The returned slice is a copy and can be modified by the caller.
func Regions() []Region {
	r := make([]Region, len(allRegions))
	copy(r, allRegions)
	return r
}

// ParseRegion returns the Region whose String() value matches the symbol.
// Comparison is case insensitive. Returns an UnknownSymbol error if no
// register has that name.
func ParseRegion(symbol string) (Region, error) {
	if r, ok := symbols[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return r, nil
	}
	return Region{}, curated.Errorf(UnknownSymbol, symbol)
}

// Lookup is the reverse of Resolve(). It returns the Address for a raw
// physical address, through whichever alias the address is in.
//
// Returns an InvalidAddress error if the address is not a register, or an
// UnsupportedAlias error if the register cannot be used through that alias.
func Lookup(physical uint32) (Address, error) {
	if err := ValidatePhysical(physical); err != nil {
		return Address{}, err
	}

	area, offset, alias, _ := MapAddress(physical)
	r, ok := byPhysical[area.Origin()+offset]
	if !ok {
		return Address{}, curated.Errorf(InvalidAddress, physical, "is not a register")
	}

	return Resolve(r, alias)
}
