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

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/rp1mmio/logger"
	"github.com/jetsetilly/rp1mmio/test"
)

func run(t *testing.T, args ...string) (int, *test.CompareWriter, *test.CompareWriter) {
	t.Helper()
	out := &test.CompareWriter{}
	errOut := &test.CompareWriter{}
	return launch(args, out, errOut), out, errOut
}

func TestMap(t *testing.T) {
	r, out, _ := run(t)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, len(out.Lines()), 5+148)

	r, out, _ = run(t, "map", "-area", "rio")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out.String(), "RIO 400e0000 -> 400e3fff\n"+
		"  400e0000\tRIO_OUT           \tRW XOR SET CLR\n"+
		"  400e0004\tRIO_OE            \tRW XOR SET CLR\n"+
		"  400e0008\tRIO_IN            \tRW\n")

	r, _, errOut := run(t, "map", "-area", "i2c")
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectEquality(t, errOut.String(), "* error in MAP mode: unknown area: i2c\n")
}

func TestResolve(t *testing.T) {
	r, out, _ := run(t, "resolve", "GPIO7_CTRL", "gpio7_ctrl@set")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out.String(), "GPIO7_CTRL@RW (0x400d003c)\nGPIO7_CTRL@SET (0x400d203c)\n")

	// the alias flag does not change registers with an explicit alias
	r, out, _ = run(t, "resolve", "-alias", "clr", "GPIO7_CTRL", "GPIO7_CTRL@xor", "0x40098040")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out.String(), "GPIO7_CTRL@CLR (0x400d303c)\nGPIO7_CTRL@XOR (0x400d103c)\nPWM0_CHAN2_DUTY@RW (0x40098040)\n")

	r, _, errOut := run(t, "resolve", "PWM0_CHAN2_DUTY@SET")
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectEquality(t, strings.Contains(errOut.String(), "unsupported alias"), true)

	r, _, errOut = run(t, "resolve", "GPIO28_CTRL")
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectEquality(t, strings.Contains(errOut.String(), "unknown register: GPIO28_CTRL"), true)

	r, _, _ = run(t, "resolve")
	test.ExpectEquality(t, r, exitModeError)
}

func TestAccess(t *testing.T) {
	r, out, _ := run(t, "-sim", "set", "GPIO7_CTRL", "0x1f")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out.String(), "GPIO7_CTRL@RW (0x400d003c) = 0x0000001f\n")

	// every run has a new simulation
	r, out, _ = run(t, "-sim", "toggle", "GPIO7_CTRL", "0x3")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out.String(), "GPIO7_CTRL@RW (0x400d003c) = 0x00000003\n")

	r, out, _ = run(t, "-sim", "clear", "GPIO7_CTRL", "0x3")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out.String(), "GPIO7_CTRL@RW (0x400d003c) = 0x00000000\n")

	r, out, _ = run(t, "-sim", "poke", "PWM1_CHAN0_RANGE", "1000")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out.String(), "PWM1_CHAN0_RANGE@RW (0x4009c018) = 0x000003e8\n")

	r, out, _ = run(t, "-sim", "peek", "-alias", "xor", "RIO_OE")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out.String(), "RIO_OE@XOR (0x400e1004) = 0x00000000\n")
}

func TestAccessErrors(t *testing.T) {
	// poke must be through the Direct alias
	r, _, errOut := run(t, "-sim", "poke", "GPIO7_CTRL@SET", "1")
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectEquality(t, strings.Contains(errOut.String(), "unsupported alias"), true)

	// status registers have no atomic aliases
	r, _, errOut = run(t, "-sim", "set", "GPIO7_STATUS", "1")
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectEquality(t, strings.Contains(errOut.String(), "unsupported alias"), true)

	// bit operations do not replace an explicit alias
	r, _, errOut = run(t, "-sim", "set", "GPIO7_CTRL@CLR", "0x5")
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectEquality(t, strings.Contains(errOut.String(), "unsupported alias"), true)
	r, _, errOut = run(t, "-sim", "toggle", "GPIO7_CTRL@XOR", "0x5")
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectEquality(t, strings.Contains(errOut.String(), "unsupported alias"), true)

	// a physical address in the SET window
	r, out, errOut := run(t, "-sim", "clear", "0x400d203c", "0x5")
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectEquality(t, out.String(), "")
	test.ExpectEquality(t, strings.Contains(errOut.String(), "unsupported alias"), true)

	r, _, _ = run(t, "-sim", "set", "GPIO7_CTRL")
	test.ExpectEquality(t, r, exitModeError)
	r, _, _ = run(t, "-sim", "set", "GPIO7_CTRL", "0x100000000")
	test.ExpectEquality(t, r, exitModeError)
	r, _, _ = run(t, "-sim", "peek")
	test.ExpectEquality(t, r, exitModeError)
}

func TestCloseBackend(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	closeBackend(func() error { return nil })
	test.ExpectEquality(t, len(logger.Copy()), 0)

	closeBackend(func() error { return errors.New("munmap failed") })
	w := &test.CompareWriter{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "rp1mmio: closing backend: munmap failed\n")
}

func TestParseError(t *testing.T) {
	r, _, errOut := run(t, "-nosuchflag")
	test.ExpectEquality(t, r, exitParseErr)
	test.ExpectEquality(t, strings.HasPrefix(errOut.String(), "* error: "), true)
}

func TestHelp(t *testing.T) {
	r, out, _ := run(t, "-help")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, strings.Contains(out.String(), "available sub-modes: MAP, RESOLVE, PEEK, POKE, SET, CLEAR, TOGGLE, VERSION"), true)
}

func TestVersion(t *testing.T) {
	r, out, _ := run(t, "version")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, strings.HasPrefix(out.String(), "rp1mmio "), true)
}
