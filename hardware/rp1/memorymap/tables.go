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

	"github.com/jetsetilly/rp1mmio/hardware/rp1/addresses"
)

// Mismatch describes a register whose computed offset does not agree with the
// datasheet table in the addresses package.
type Mismatch struct {
	Region   Region
	Computed uint32
	Table    uint32
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: computed %#04x, table %#04x", m.Region, m.Computed, m.Table)
}

// CrossCheck compares every computed offset and origin against the addresses
// package. An empty result means the two views agree.
func CrossCheck() []Mismatch {
	var m []Mismatch

	chk := func(r Region, table uint32) {
		if c := r.offset(); c != table {
			m = append(m, Mismatch{Region: r, Computed: c, Table: table})
		}
	}

	for pin := range NumPins {
		chk(Region{kind: KindGPIOStatus, index: pin}, addresses.GPIOStatus[pin])
		chk(Region{kind: KindGPIOControl, index: pin}, addresses.GPIOControl[pin])
		chk(Region{kind: KindPad, index: pin}, addresses.Pads[pin])
	}
	chk(Region{kind: KindVoltageSelect}, addresses.VoltageSelect)

	chk(Region{kind: KindInterruptRaw}, addresses.IntrRaw)
	for core := Proc0; core <= PCIe; core++ {
		chk(Region{kind: KindInterruptEnable, core: core}, addresses.InterruptEnable[core])
		chk(Region{kind: KindInterruptForce, core: core}, addresses.InterruptForce[core])
		chk(Region{kind: KindInterruptStatus, core: core}, addresses.InterruptStatus[core])
	}

	chk(Region{kind: KindRIOOut}, addresses.RIOOut)
	chk(Region{kind: KindRIOOutputEnable}, addresses.RIOOE)
	chk(Region{kind: KindRIOIn}, addresses.RIOIn)

	for _, block := range []Area{PWM0, PWM1} {
		chk(Region{kind: KindPWMGlobalControl, block: block}, addresses.PWMGlobalCtrl)
		chk(Region{kind: KindPWMFIFOControl, block: block}, addresses.PWMFIFOCtrl)
		chk(Region{kind: KindPWMCommonRange, block: block}, addresses.PWMCommonRange)
		chk(Region{kind: KindPWMCommonDuty, block: block}, addresses.PWMCommonDuty)
		chk(Region{kind: KindPWMDutyFIFO, block: block}, addresses.PWMDutyFIFO)
		for ch := range NumChannels {
			chk(Region{kind: KindPWMChannelControl, block: block, index: ch}, addresses.PWMChannelCtrl[ch])
			chk(Region{kind: KindPWMChannelRange, block: block, index: ch}, addresses.PWMChannelRange[ch])
			chk(Region{kind: KindPWMChannelPhase, block: block, index: ch}, addresses.PWMChannelPhase[ch])
			chk(Region{kind: KindPWMChannelDuty, block: block, index: ch}, addresses.PWMChannelDuty[ch])
		}
		chk(Region{kind: KindPWMInterruptRaw, block: block}, addresses.PWMIntr)
		chk(Region{kind: KindPWMInterruptEnable, block: block}, addresses.PWMInte)
		chk(Region{kind: KindPWMInterruptForce, block: block}, addresses.PWMIntf)
		chk(Region{kind: KindPWMInterruptStatus, block: block}, addresses.PWMInts)
	}

	origins := []struct {
		area  Area
		table uint32
	}{
		{GPIO, addresses.GPIOBase},
		{Pads, addresses.PadsBase},
		{RIO, addresses.SysRIOBase},
		{PWM0, addresses.PWM0Base},
		{PWM1, addresses.PWM1Base},
	}
	for _, o := range origins {
		if o.area.Origin() != o.table {
			m = append(m, Mismatch{Region: Region{block: o.area}, Computed: o.area.Origin(), Table: o.table})
		}
	}

	aliases := []struct {
		alias Alias
		table uint32
	}{
		{Direct, addresses.RWOffset},
		{AtomicXor, addresses.XOROffset},
		{AtomicSet, addresses.SETOffset},
		{AtomicClear, addresses.CLROffset},
	}
	for _, a := range aliases {
		if uint32(a.alias) != a.table {
			m = append(m, Mismatch{Computed: uint32(a.alias), Table: a.table})
		}
	}

	return m
}

// an address computed from a formula that disagrees with the datasheet is a
// programming error. using such an address on real hardware could do anything
func init() {
	if m := CrossCheck(); len(m) > 0 {
		panic(fmt.Sprintf("memorymap: register offsets disagree with datasheet: %v", m))
	}
}
