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

// NumPins is the number of GPIO pins in bank 0. Pins are numbered from zero.
const NumPins = 28

// NumChannels is the number of channels in each PWM block.
const NumChannels = 4

// Core identifies the processor an interrupt enable, force or status register
// belongs to.
type Core int

// List of valid Core values.
const (
	Proc0 Core = iota
	Proc1
	PCIe
)

// NumCores is the number of Core values.
const NumCores = 3

func (c Core) String() string {
	switch c {
	case Proc0:
		return "PROC0"
	case Proc1:
		return "PROC1"
	case PCIe:
		return "PCIE"
	}
	return fmt.Sprintf("core(%d)", int(c))
}

// Kind is the register family of a Region.
type Kind int

// List of valid Kind values.
const (
	KindUndefined Kind = iota
	KindGPIOStatus
	KindGPIOControl
	KindPad
	KindVoltageSelect
	KindInterruptRaw
	KindInterruptEnable
	KindInterruptForce
	KindInterruptStatus
	KindRIOOut
	KindRIOOutputEnable
	KindRIOIn
	KindPWMGlobalControl
	KindPWMFIFOControl
	KindPWMCommonRange
	KindPWMCommonDuty
	KindPWMDutyFIFO
	KindPWMChannelControl
	KindPWMChannelRange
	KindPWMChannelPhase
	KindPWMChannelDuty
	KindPWMInterruptRaw
	KindPWMInterruptEnable
	KindPWMInterruptForce
	KindPWMInterruptStatus
)

// Region names a single 32 bit register. The zero value is an undefined
// region and cannot be resolved.
//
// Regions are comparable and can be used as map keys.
type Region struct {
	kind Kind

	// pin number or PWM channel number. zero for regions that are not indexed
	index int

	// only meaningful for the interrupt enable/force/status kinds
	core Core

	// PWM0 or PWM1 for PWM kinds. for all other kinds the area is implied by
	// the kind
	block Area
}

// Kind returns the register family of the region.
func (r Region) Kind() Kind {
	return r.kind
}

// Index returns the pin or channel number of the region. Returns zero for
// regions that are not indexed.
func (r Region) Index() int {
	return r.index
}

// Area returns the area the region is in.
func (r Region) Area() Area {
	switch r.kind {
	case KindGPIOStatus, KindGPIOControl,
		KindInterruptRaw, KindInterruptEnable, KindInterruptForce, KindInterruptStatus:
		return GPIO
	case KindPad, KindVoltageSelect:
		return Pads
	case KindRIOOut, KindRIOOutputEnable, KindRIOIn:
		return RIO
	case KindUndefined:
		return Undefined
	}
	return r.block
}

func (r Region) String() string {
	switch r.kind {
	case KindGPIOStatus:
		return fmt.Sprintf("GPIO%d_STATUS", r.index)
	case KindGPIOControl:
		return fmt.Sprintf("GPIO%d_CTRL", r.index)
	case KindPad:
		return fmt.Sprintf("GPIO%d_PAD", r.index)
	case KindVoltageSelect:
		return "VOLTAGE_SELECT"
	case KindInterruptRaw:
		return "INTR"
	case KindInterruptEnable:
		return fmt.Sprintf("%s_INTE", r.core)
	case KindInterruptForce:
		return fmt.Sprintf("%s_INTF", r.core)
	case KindInterruptStatus:
		return fmt.Sprintf("%s_INTS", r.core)
	case KindRIOOut:
		return "RIO_OUT"
	case KindRIOOutputEnable:
		return "RIO_OE"
	case KindRIOIn:
		return "RIO_IN"
	case KindPWMGlobalControl:
		return fmt.Sprintf("%s_GLOBAL_CTRL", r.block)
	case KindPWMFIFOControl:
		return fmt.Sprintf("%s_FIFO_CTRL", r.block)
	case KindPWMCommonRange:
		return fmt.Sprintf("%s_COMMON_RANGE", r.block)
	case KindPWMCommonDuty:
		return fmt.Sprintf("%s_COMMON_DUTY", r.block)
	case KindPWMDutyFIFO:
		return fmt.Sprintf("%s_DUTY_FIFO", r.block)
	case KindPWMChannelControl:
		return fmt.Sprintf("%s_CHAN%d_CTRL", r.block, r.index)
	case KindPWMChannelRange:
		return fmt.Sprintf("%s_CHAN%d_RANGE", r.block, r.index)
	case KindPWMChannelPhase:
		return fmt.Sprintf("%s_CHAN%d_PHASE", r.block, r.index)
	case KindPWMChannelDuty:
		return fmt.Sprintf("%s_CHAN%d_DUTY", r.block, r.index)
	case KindPWMInterruptRaw:
		return fmt.Sprintf("%s_INTR", r.block)
	case KindPWMInterruptEnable:
		return fmt.Sprintf("%s_INTE", r.block)
	case KindPWMInterruptForce:
		return fmt.Sprintf("%s_INTF", r.block)
	case KindPWMInterruptStatus:
		return fmt.Sprintf("%s_INTS", r.block)
	}
	return "undefined"
}

// Supports returns true if the register can be accessed through the alias.
//
// Read-only registers and registers that hold a value rather than a set of
// flags (PWM range, phase and duty) only support the Direct alias. Control,
// pad, enable and force registers support all four.
func (r Region) Supports(a Alias) bool {
	if !a.valid() || r.kind == KindUndefined {
		return false
	}
	if a == Direct {
		return true
	}

	switch r.kind {
	case KindGPIOControl, KindPad, KindVoltageSelect,
		KindInterruptEnable, KindInterruptForce,
		KindRIOOut, KindRIOOutputEnable,
		KindPWMGlobalControl, KindPWMFIFOControl, KindPWMChannelControl,
		KindPWMInterruptEnable, KindPWMInterruptForce:
		return true
	}

	return false
}

// ReadOnly returns true if writes to the register have no effect.
func (r Region) ReadOnly() bool {
	switch r.kind {
	case KindGPIOStatus, KindInterruptRaw, KindInterruptStatus, KindRIOIn,
		KindPWMInterruptRaw, KindPWMInterruptStatus:
		return true
	}
	return false
}

// SupportedAliases returns the aliases the register can be accessed through,
// in address order.
func (r Region) SupportedAliases() []Alias {
	s := make([]Alias, 0, len(Aliases))
	for _, a := range Aliases {
		if r.Supports(a) {
			s = append(s, a)
		}
	}
	return s
}

func checkPin(pin int) error {
	if pin < 0 || pin >= NumPins {
		return curated.Errorf(OutOfRange, "pin", pin)
	}
	return nil
}

func checkChannel(channel int) error {
	if channel < 0 || channel >= NumChannels {
		return curated.Errorf(OutOfRange, "channel", channel)
	}
	return nil
}

func checkCore(core Core) error {
	if core < Proc0 || core > PCIe {
		return curated.Errorf(OutOfRange, "core", int(core))
	}
	return nil
}

func checkBlock(block Area) error {
	if block != PWM0 && block != PWM1 {
		return curated.Errorf(OutOfRange, "pwm block", block)
	}
	return nil
}

func pinRegion(kind Kind, pin int) (Region, error) {
	if err := checkPin(pin); err != nil {
		return Region{}, err
	}
	return Region{kind: kind, index: pin}, nil
}

// GPIOStatus is the read-only STATUS register of a pin.
func GPIOStatus(pin int) (Region, error) {
	return pinRegion(KindGPIOStatus, pin)
}

// GPIOControl is the CONTROL register of a pin.
func GPIOControl(pin int) (Region, error) {
	return pinRegion(KindGPIOControl, pin)
}

// Pad is the pad control register of a pin.
func Pad(pin int) (Region, error) {
	return pinRegion(KindPad, pin)
}

// VoltageSelect is the bank voltage select register in the pads area.
func VoltageSelect() Region {
	return Region{kind: KindVoltageSelect}
}

// InterruptRaw is the read-only raw interrupt register in the GPIO area.
func InterruptRaw() Region {
	return Region{kind: KindInterruptRaw}
}

func coreRegion(kind Kind, core Core) (Region, error) {
	if err := checkCore(core); err != nil {
		return Region{}, err
	}
	return Region{kind: kind, core: core}, nil
}

// InterruptEnable is the interrupt enable register for a processor.
func InterruptEnable(core Core) (Region, error) {
	return coreRegion(KindInterruptEnable, core)
}

// InterruptForce is the interrupt force register for a processor.
func InterruptForce(core Core) (Region, error) {
	return coreRegion(KindInterruptForce, core)
}

// InterruptStatus is the read-only interrupt status register for a processor.
func InterruptStatus(core Core) (Region, error) {
	return coreRegion(KindInterruptStatus, core)
}

// RIOOut is the RIO output level register.
func RIOOut() Region {
	return Region{kind: KindRIOOut}
}

// RIOOutputEnable is the RIO output enable register.
func RIOOutputEnable() Region {
	return Region{kind: KindRIOOutputEnable}
}

// RIOIn is the read-only RIO (synchronised) input level register.
func RIOIn() Region {
	return Region{kind: KindRIOIn}
}

func blockRegion(kind Kind, block Area) (Region, error) {
	if err := checkBlock(block); err != nil {
		return Region{}, err
	}
	return Region{kind: kind, block: block}, nil
}

// PWMGlobalControl is the global control register of a PWM block. The block
// argument must be PWM0 or PWM1.
func PWMGlobalControl(block Area) (Region, error) {
	return blockRegion(KindPWMGlobalControl, block)
}

// PWMFIFOControl is the FIFO control register of a PWM block.
func PWMFIFOControl(block Area) (Region, error) {
	return blockRegion(KindPWMFIFOControl, block)
}

// PWMCommonRange is the range register shared by channels of a PWM block.
func PWMCommonRange(block Area) (Region, error) {
	return blockRegion(KindPWMCommonRange, block)
}

// PWMCommonDuty is the duty register shared by channels of a PWM block.
func PWMCommonDuty(block Area) (Region, error) {
	return blockRegion(KindPWMCommonDuty, block)
}

// PWMDutyFIFO is the duty FIFO of a PWM block. Writes push a value.
func PWMDutyFIFO(block Area) (Region, error) {
	return blockRegion(KindPWMDutyFIFO, block)
}

func channelRegion(kind Kind, block Area, channel int) (Region, error) {
	if err := checkBlock(block); err != nil {
		return Region{}, err
	}
	if err := checkChannel(channel); err != nil {
		return Region{}, err
	}
	return Region{kind: kind, block: block, index: channel}, nil
}

// PWMChannelControl is the control register of a PWM channel.
func PWMChannelControl(block Area, channel int) (Region, error) {
	return channelRegion(KindPWMChannelControl, block, channel)
}

// PWMChannelRange is the range register of a PWM channel.
func PWMChannelRange(block Area, channel int) (Region, error) {
	return channelRegion(KindPWMChannelRange, block, channel)
}

// PWMChannelPhase is the phase register of a PWM channel.
func PWMChannelPhase(block Area, channel int) (Region, error) {
	return channelRegion(KindPWMChannelPhase, block, channel)
}

// PWMChannelDuty is the duty register of a PWM channel.
func PWMChannelDuty(block Area, channel int) (Region, error) {
	return channelRegion(KindPWMChannelDuty, block, channel)
}

// PWMInterruptRaw is the read-only raw interrupt register of a PWM block.
func PWMInterruptRaw(block Area) (Region, error) {
	return blockRegion(KindPWMInterruptRaw, block)
}

// PWMInterruptEnable is the interrupt enable register of a PWM block.
func PWMInterruptEnable(block Area) (Region, error) {
	return blockRegion(KindPWMInterruptEnable, block)
}

// PWMInterruptForce is the interrupt force register of a PWM block.
func PWMInterruptForce(block Area) (Region, error) {
	return blockRegion(KindPWMInterruptForce, block)
}

// PWMInterruptStatus is the read-only interrupt status register of a PWM
// block.
func PWMInterruptStatus(block Area) (Region, error) {
	return blockRegion(KindPWMInterruptStatus, block)
}
