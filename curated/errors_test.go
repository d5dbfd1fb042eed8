// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/test"
)

const testPattern = "test error: %s"

func TestMatching(t *testing.T) {
	err := curated.Errorf(testPattern, "detail")

	test.Equate(t, curated.IsAny(err), true)
	test.Equate(t, curated.Is(err, testPattern), true)
	test.Equate(t, curated.Is(err, "some other pattern"), false)

	// plain errors are never curated
	plain := errors.New("plain")
	test.Equate(t, curated.IsAny(plain), false)
	test.Equate(t, curated.Is(plain, testPattern), false)
}

func TestWrapping(t *testing.T) {
	inner := curated.Errorf(testPattern, "detail")
	outer := curated.Errorf("outer error: %v", inner)

	test.Equate(t, curated.Has(outer, testPattern), true)
	test.Equate(t, curated.Is(outer, testPattern), false)
}

func TestDeduplication(t *testing.T) {
	inner := curated.Errorf("emulator error: %v", errors.New("bad day"))
	outer := curated.Errorf("emulator error: %v", inner)

	test.Equate(t, outer.Error(), "emulator error: bad day")
}
