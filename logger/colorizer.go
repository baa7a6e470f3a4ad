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

package logger

import (
	"io"
	"strings"
)

const (
	penTag    = "\033[36m"
	penRepeat = "\033[2m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is colored and the repeat count is dimmed. Lines that are not log
// entries are written unchanged.
//
// Should only be used when the output is a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if len(l) == 0 {
			continue
		}

		s := l
		if tag, detail, ok := strings.Cut(l, ": "); ok && !strings.ContainsAny(tag, " \t") {
			s = penTag + tag + penNormal + ": " + detail
			if i := strings.LastIndex(s, " (repeat x"); i >= 0 {
				s = s[:i] + penRepeat + strings.TrimSuffix(s[i:], "\n") + penNormal
				if strings.HasSuffix(l, "\n") {
					s += "\n"
				}
			}
		}

		if _, err := io.WriteString(c.out, s); err != nil {
			return n, err
		}
		n += len(l)
	}

	return n, nil
}
