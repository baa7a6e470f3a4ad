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

package addresses

// Base addresses of the RP1 register blocks, as seen on the RP1 side of the
// PCIe link.
const (
	GPIOBase   = uint32(0x400d0000)
	PadsBase   = uint32(0x400f0000)
	SysRIOBase = uint32(0x400e0000)
	PWM0Base   = uint32(0x40098000)
	PWM1Base   = uint32(0x4009c000)
)

// Low speed peripherals provide aliases for atomic operations. The alias
// offset is added to the register offset before adding the block base.
const (
	RWOffset  = uint32(0x0000)
	XOROffset = uint32(0x1000)
	SETOffset = uint32(0x2000)
	CLROffset = uint32(0x3000)
)

// GPIOStatus is the STATUS register offset of GPIO0 to GPIO27 from GPIOBase.
var GPIOStatus = [28]uint32{
	0x000, // GPIO0
	0x008, // GPIO1
	0x010, // GPIO2
	0x018, // GPIO3
	0x020, // GPIO4
	0x028, // GPIO5
	0x030, // GPIO6
	0x038, // GPIO7
	0x040, // GPIO8
	0x048, // GPIO9
	0x050, // GPIO10
	0x058, // GPIO11
	0x060, // GPIO12
	0x068, // GPIO13
	0x070, // GPIO14
	0x078, // GPIO15
	0x080, // GPIO16
	0x088, // GPIO17
	0x090, // GPIO18
	0x098, // GPIO19
	0x0a0, // GPIO20
	0x0a8, // GPIO21
	0x0b0, // GPIO22
	0x0b8, // GPIO23
	0x0c0, // GPIO24
	0x0c8, // GPIO25
	0x0d0, // GPIO26
	0x0d8, // GPIO27
}

// GPIOControl is the CONTROL register offset of GPIO0 to GPIO27 from GPIOBase.
var GPIOControl = [28]uint32{
	0x004, // GPIO0
	0x00c, // GPIO1
	0x014, // GPIO2
	0x01c, // GPIO3
	0x024, // GPIO4
	0x02c, // GPIO5
	0x034, // GPIO6
	0x03c, // GPIO7
	0x044, // GPIO8
	0x04c, // GPIO9
	0x054, // GPIO10
	0x05c, // GPIO11
	0x064, // GPIO12
	0x06c, // GPIO13
	0x074, // GPIO14
	0x07c, // GPIO15
	0x084, // GPIO16
	0x08c, // GPIO17
	0x094, // GPIO18
	0x09c, // GPIO19
	0x0a4, // GPIO20
	0x0ac, // GPIO21
	0x0b4, // GPIO22
	0x0bc, // GPIO23
	0x0c4, // GPIO24
	0x0cc, // GPIO25
	0x0d4, // GPIO26
	0x0dc, // GPIO27
}

// Interrupt register offsets from GPIOBase.
const (
	IntrRaw   = uint32(0x100)
	Proc0INTE = uint32(0x104)
	Proc0INTF = uint32(0x108)
	Proc0INTS = uint32(0x10c)
	Proc1INTE = uint32(0x110)
	Proc1INTF = uint32(0x114)
	Proc1INTS = uint32(0x118)
	PCIeINTE  = uint32(0x11c)
	PCIeINTF  = uint32(0x120)
	PCIeINTS  = uint32(0x124)
)

// InterruptEnable, InterruptForce and InterruptStatus are indexed by
// processor: proc0, proc1 and pcie in that order.
var (
	InterruptEnable = [3]uint32{Proc0INTE, Proc1INTE, PCIeINTE}
	InterruptForce  = [3]uint32{Proc0INTF, Proc1INTF, PCIeINTF}
	InterruptStatus = [3]uint32{Proc0INTS, Proc1INTS, PCIeINTS}
)

// VoltageSelect is the per bank voltage select register at the bottom of
// the pads block.
const VoltageSelect = uint32(0x00)

// Pads is the pad control register offset of GPIO0 to GPIO27 from PadsBase.
var Pads = [28]uint32{
	0x04, // GPIO0
	0x08, // GPIO1
	0x0c, // GPIO2
	0x10, // GPIO3
	0x14, // GPIO4
	0x18, // GPIO5
	0x1c, // GPIO6
	0x20, // GPIO7
	0x24, // GPIO8
	0x28, // GPIO9
	0x2c, // GPIO10
	0x30, // GPIO11
	0x34, // GPIO12
	0x38, // GPIO13
	0x3c, // GPIO14
	0x40, // GPIO15
	0x44, // GPIO16
	0x48, // GPIO17
	0x4c, // GPIO18
	0x50, // GPIO19
	0x54, // GPIO20
	0x58, // GPIO21
	0x5c, // GPIO22
	0x60, // GPIO23
	0x64, // GPIO24
	0x68, // GPIO25
	0x6c, // GPIO26
	0x70, // GPIO27
}

// RIO offsets from SysRIOBase. RIO_IN also has a no-sync variant which is not
// listed.
const (
	RIOOut = uint32(0x00)
	RIOOE  = uint32(0x04)
	RIOIn  = uint32(0x08)
)

// PWM offsets from PWM0Base or PWM1Base.
const (
	PWMGlobalCtrl  = uint32(0x00)
	PWMFIFOCtrl    = uint32(0x04)
	PWMCommonRange = uint32(0x08)
	PWMCommonDuty  = uint32(0x0c)
	PWMDutyFIFO    = uint32(0x10)
	PWMChan0Ctrl   = uint32(0x14)
	PWMChan0Range  = uint32(0x18)
	PWMChan0Phase  = uint32(0x1c)
	PWMChan0Duty   = uint32(0x20)
	PWMChan1Ctrl   = uint32(0x24)
	PWMChan1Range  = uint32(0x28)
	PWMChan1Phase  = uint32(0x2c)
	PWMChan1Duty   = uint32(0x30)
	PWMChan2Ctrl   = uint32(0x34)
	PWMChan2Range  = uint32(0x38)
	PWMChan2Phase  = uint32(0x3c)
	PWMChan2Duty   = uint32(0x40)
	PWMChan3Ctrl   = uint32(0x44)
	PWMChan3Range  = uint32(0x48)
	PWMChan3Phase  = uint32(0x4c)
	PWMChan3Duty   = uint32(0x50)
	PWMIntr        = uint32(0x54)
	PWMInte        = uint32(0x58)
	PWMIntf        = uint32(0x5c)
	PWMInts        = uint32(0x60)
)

// Per channel PWM offsets, indexed by channel.
var (
	PWMChannelCtrl  = [4]uint32{PWMChan0Ctrl, PWMChan1Ctrl, PWMChan2Ctrl, PWMChan3Ctrl}
	PWMChannelRange = [4]uint32{PWMChan0Range, PWMChan1Range, PWMChan2Range, PWMChan3Range}
	PWMChannelPhase = [4]uint32{PWMChan0Phase, PWMChan1Phase, PWMChan2Phase, PWMChan3Phase}
	PWMChannelDuty  = [4]uint32{PWMChan0Duty, PWMChan1Duty, PWMChan2Duty, PWMChan3Duty}
)
