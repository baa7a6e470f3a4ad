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
)

// Summary returns a single multiline string detailing every register in the
// RP1 areas: physical address through the Direct alias, the register symbol
// and the aliases supported by the register. Useful for reference.
func Summary() string {
	s := strings.Builder{}

	current := Undefined
	for _, r := range allRegions {
		// area heading
		if r.Area() != current {
			current = r.Area()
			s.WriteString(fmt.Sprintf("%s %08x -> %08x\n", current, current.Origin(), current.Origin()+AreaSize-1))
		}

		aliases := make([]string, 0, len(Aliases))
		for _, a := range r.SupportedAliases() {
			aliases = append(aliases, a.String())
		}

		addr := Address{region: r}
		s.WriteString(fmt.Sprintf("  %08x\t%-18s\t%s\n", addr.Physical(), r.String(), strings.Join(aliases, " ")))
	}

	return s.String()
}
