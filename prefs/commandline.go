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
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/rp1mmio/curated"
)

// CommandLineError is the pattern for errors when a value on the command line
// stack cannot be applied to a preference.
const CommandLineError = "prefs: %s: %v"

type commandLineGroup map[string]string

var commandLine struct {
	crit  sync.Mutex
	stack []commandLineGroup
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a prefs string and adds it as a new group. The
// string is a list of key/value pairs separated by semi-colons. The key and
// value are separated by a double colon:
//
//	mmio.device::/dev/mem; mmio.hostbase::0x1f00000000
//
// Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	grp := make(commandLineGroup)

	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		grp[k] = strings.TrimSpace(v)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, grp)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the unused preferences of the group as a prefs string, sorted by
// key. An empty string means every preference was used.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	popped := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i, k := range keys {
		keys[i] = fmt.Sprintf("%s::%s", k, popped[k])
	}

	return strings.Join(keys, "; ")
}

// GetCommandLinePref value from the current group. The value is deleted when it
// is returned.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false, nil
	}

	grp := commandLine.stack[len(commandLine.stack)-1]
	if v, ok := grp[key]; ok {
		delete(grp, key)
		return true, v
	}

	return false, nil
}

// ApplyCommandLinePref sets the preference from the current group if the key
// is present. Returns true if the preference was changed.
func ApplyCommandLinePref(key string, p Pref) (bool, error) {
	ok, v := GetCommandLinePref(key)
	if !ok {
		return false, nil
	}
	if err := p.Set(v); err != nil {
		return false, curated.Errorf(CommandLineError, key, err)
	}
	return true, nil
}
