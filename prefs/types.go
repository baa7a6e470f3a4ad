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

package prefs

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// Pref is implemented by all types in the prefs system.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value atomic.Bool
	hook  func(value Value) error
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value.Load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
	}

	if p.hook != nil {
		if err := p.hook(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// SetHook sets the callback function to be called just before the prefs
// value is updated. If the callback returns an error the value is not
// changed.
func (p *Bool) SetHook(f func(value Value) error) {
	p.hook = f
}

// String implements a string type in the prefs system.
type String struct {
	value atomic.String
	hook  func(value Value) error
}

func (p *String) String() string {
	return p.value.Load()
}

// Set new value to String type. Values that are not strings are formatted
// with the %v verb.
func (p *String) Set(v Value) error {
	nv := strings.TrimSpace(fmt.Sprintf("%v", v))

	if p.hook != nil {
		if err := p.hook(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.value.Load()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// SetHook sets the callback function to be called just before the prefs
// value is updated. If the callback returns an error the value is not
// changed.
func (p *String) SetHook(f func(value Value) error) {
	p.hook = f
}

// Int implements an integer type in the prefs system. The value is 64 bits
// wide on every platform because it is used for physical addresses.
type Int struct {
	value atomic.Int64
	hook  func(value Value) error
}

func (p *Int) String() string {
	return strconv.FormatInt(p.value.Load(), 10)
}

// Set new value to Int type. New value can be an integer or a string. Strings
// are parsed with the base prefix rules of Go literals, so "0x1f00000000"
// is accepted.
func (p *Int) Set(v Value) error {
	var nv int64
	switch v := v.(type) {
	case int64:
		nv = v
	case int32:
		nv = int64(v)
	case int:
		nv = int64(v)
	case uint32:
		nv = int64(v)
	case string:
		var err error
		nv, err = strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
	}

	if p.hook != nil {
		if err := p.hook(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.value.Load()
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// SetHook sets the callback function to be called just before the prefs
// value is updated. If the callback returns an error the value is not
// changed.
func (p *Int) SetHook(f func(value Value) error) {
	p.hook = f
}
