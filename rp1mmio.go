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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/rp1mmio/curated"
	"github.com/jetsetilly/rp1mmio/hardware/rp1"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/memorymap"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/mmio"
	"github.com/jetsetilly/rp1mmio/hardware/rp1/simulated"
	"github.com/jetsetilly/rp1mmio/logger"
	"github.com/jetsetilly/rp1mmio/modalflag"
	"github.com/jetsetilly/rp1mmio/prefs"
	"github.com/jetsetilly/rp1mmio/version"
)

// exit values returned by launch()
const (
	exitOK        = 0
	exitParseErr  = 10
	exitModeError = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

const additionalHelp = `Registers are named as in the RP1 datasheet. For example GPIO7_CTRL,
GPIO7_PAD, RIO_OUT, PROC0_INTE and PWM0_CHAN2_DUTY. Use the MAP mode for a
full list. Aliases are RW, XOR, SET and CLR.`

// launch the program with the arguments. output is written to out and errors
// to errOut. returns the exit value for the process.
func launch(args []string, out io.Writer, errOut io.Writer) int {
	md := &modalflag.Modes{Output: out}
	md.NewArgs(args)

	sim := md.AddBool("sim", false, "use a simulated RP1 rather than the hardware")
	prefsString := md.AddString("prefs", "", "preferences for the mmio backend")
	log := md.AddBool("log", false, "echo the log to stderr")
	md.AddSubModes("MAP", "RESOLVE", "PEEK", "POKE", "SET", "CLEAR", "TOGGLE", "VERSION")
	md.AdditionalHelp(additionalHelp)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(errOut, "* error: %v\n", err)
		return exitParseErr
	}

	if *log {
		logger.SetEcho(echoWriter(errOut))
		defer logger.SetEcho(nil)
	}

	if *prefsString != "" {
		prefs.PushCommandLineStack(*prefsString)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "rp1mmio", "unused preferences: %s", unused)
			}
		}()
	}

	switch md.Mode() {
	case "MAP":
		err = mapMode(md, out)
	case "RESOLVE":
		err = resolveMode(md, out)
	case "VERSION":
		fmt.Fprintln(out, version.String())
	default:
		err = accessMode(md, out, *sim)
	}

	if err != nil {
		fmt.Fprintf(errOut, "* error in %s mode: %v\n", md, err)
		return exitModeError
	}

	return exitOK
}

// echoWriter colorizes the log if the writer is a terminal.
func echoWriter(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		return logger.NewColorizer(w)
	}
	return w
}

func mapMode(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()
	area := md.AddString("area", "", "only list registers in this area (GPIO, PADS, RIO, PWM0, PWM1)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s := memorymap.Summary()
	if *area == "" {
		io.WriteString(out, s)
		return nil
	}

	// the summary is divided into sections that begin with the area name
	heading := strings.ToUpper(*area) + " "
	var section bool
	var found bool
	for _, l := range strings.SplitAfter(s, "\n") {
		if !strings.HasPrefix(l, " ") {
			section = strings.HasPrefix(l, heading)
			found = found || section
		}
		if section {
			io.WriteString(out, l)
		}
	}

	if !found {
		return fmt.Errorf("unknown area: %s", *area)
	}

	return nil
}

// parseAddress accepts a register name with an optional alias, or a physical
// address. for example GPIO7_CTRL, GPIO7_CTRL@SET or 0x400d203c
func parseAddress(s string, defaultAlias memorymap.Alias) (memorymap.Address, error) {
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return memorymap.Lookup(uint32(v))
	}

	symbol, alias, ok := strings.Cut(s, "@")
	a := defaultAlias
	if ok {
		var err error
		a, err = memorymap.ParseAlias(alias)
		if err != nil {
			return memorymap.Address{}, err
		}
	}

	r, err := memorymap.ParseRegion(symbol)
	if err != nil {
		return memorymap.Address{}, err
	}

	return memorymap.Resolve(r, a)
}

func resolveMode(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()
	alias := md.AddString("alias", "RW", "alias to resolve the register through (RW, XOR, SET, CLR)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	a, err := memorymap.ParseAlias(*alias)
	if err != nil {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("register required for %s mode", md)
	}

	for _, arg := range md.RemainingArgs() {
		addr, err := parseAddress(arg, a)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, addr)
	}

	return nil
}

// backend creates the bus.Memory implementation. the returned function must be
// called when the backend is no longer required.
func backend(sim bool) (*rp1.Peripheral, func() error, error) {
	if sim {
		return rp1.NewPeripheral(simulated.NewPeripheral()), func() error { return nil }, nil
	}

	p, err := mmio.NewPreferences()
	if err != nil {
		return nil, nil, err
	}
	logger.Logf(logger.Allow, "rp1mmio", "mmio preferences: %s", p)

	m, err := mmio.Open(p)
	if err != nil {
		return nil, nil, err
	}
	return rp1.NewPeripheral(m), m.Close, nil
}

// closeBackend calls the function returned by backend() and logs any error.
func closeBackend(done func() error) {
	if err := done(); err != nil {
		logger.Logf(logger.Allow, "rp1mmio", "closing backend: %v", err)
	}
}

func accessMode(md *modalflag.Modes, out io.Writer, sim bool) error {
	md.NewMode()

	var alias *string
	if md.Mode() == "PEEK" {
		alias = md.AddString("alias", "RW", "alias to read through (RW, XOR, SET, CLR)")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	args := md.RemainingArgs()
	switch md.Mode() {
	case "PEEK":
		if len(args) != 1 {
			return fmt.Errorf("%s mode requires one register", md)
		}
	default:
		if len(args) != 2 {
			return fmt.Errorf("%s mode requires a register and a value", md)
		}
	}

	a := memorymap.Direct
	if alias != nil {
		a, err = memorymap.ParseAlias(*alias)
		if err != nil {
			return err
		}
	}

	addr, err := parseAddress(args[0], a)
	if err != nil {
		return err
	}

	// the bit operations choose their own alias. an explicit alias that
	// disagrees with the operation is not substituted
	switch md.Mode() {
	case "SET", "CLEAR", "TOGGLE":
		if addr.Alias() != memorymap.Direct {
			return curated.Errorf(memorymap.UnsupportedAlias, addr.Region(), addr.Alias())
		}
	}

	var value uint32
	if len(args) > 1 {
		v, err := strconv.ParseUint(args[1], 0, 32)
		if err != nil {
			return fmt.Errorf("value: %w", err)
		}
		value = uint32(v)
	}

	pio, done, err := backend(sim)
	if err != nil {
		return err
	}
	defer closeBackend(done)

	switch md.Mode() {
	case "PEEK":
		v, err := pio.Read(addr)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s = 0x%08x\n", addr, v)
		return nil
	case "POKE":
		err = pio.Write(addr, value)
	case "SET":
		err = pio.SetBits(addr.Region(), value)
	case "CLEAR":
		err = pio.ClearBits(addr.Region(), value)
	case "TOGGLE":
		err = pio.ToggleBits(addr.Region(), value)
	}
	if err != nil {
		return err
	}

	v, err := pio.ReadRegion(addr.Region())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s = 0x%08x\n", addr.Primary(), v)

	return nil
}
