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

package test

import (
	"testing"
)

// Equate is used to test equality between one value and another.
//
//	var r uint16
//	r = someFunction()
//	test.Equate(t, r, uint16(10))
func Equate[T comparable](t *testing.T, value, expectedValue T) {
	t.Helper()

	if value != expectedValue {
		t.Errorf("equation of type %T failed (%v - wanted %v)", value, value, expectedValue)
	}
}

// ExpectSuccess is used to test that an error is nil.
func ExpectSuccess(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// ExpectFailure is used to test that an error is not nil.
func ExpectFailure(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Errorf("expected an error but got nil")
	}
}

// ExpectPanic is used to test that the supplied function panics. Execution
// continues normally after the panic has been observed.
func ExpectPanic(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("expected a panic but none occurred")
		}
	}()

	f()
}
