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

package curated_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jetsetilly/rp1mmio/curated"
	"github.com/jetsetilly/rp1mmio/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrap: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf("test error: %v", e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	// Is() does not look inside the chain
	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Is(f, wrapPattern))

	// uncurated errors are never a match
	test.ExpectFailure(t, curated.Is(errors.New("test error: foo"), testPattern))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(wrapPattern, e)
	g := curated.Errorf(wrapPattern, f)

	test.ExpectSuccess(t, curated.Has(e, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(g, testPattern))
	test.ExpectFailure(t, curated.Has(g, "not present"))
	test.ExpectFailure(t, curated.Has(nil, testPattern))

	// the repeated "wrap" parts are removed
	test.ExpectEquality(t, g.Error(), "wrap: test error: foo")
}

func TestIsAny(t *testing.T) {
	test.ExpectSuccess(t, curated.IsAny(curated.Errorf(testPattern, "foo")))
	test.ExpectFailure(t, curated.IsAny(errors.New("foo")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapPattern, fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, fs.ErrNotExist))

	f := curated.Errorf(testPattern, "no error value")
	test.ExpectSuccess(t, errors.Unwrap(f) == nil)
}
