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

package logger_test

import (
	"strings"
	"testing"

	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	b := &strings.Builder{}
	test.Equate(t, logger.Write(b), false)

	logger.Log("test", "this is a test")
	test.Equate(t, logger.Write(b), true)
	test.Equate(t, b.String(), "test: this is a test\n")
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()

	logger.Log("test", "same entry")
	logger.Log("test", "same entry")
	logger.Log("test", "same entry")

	b := &strings.Builder{}
	logger.Write(b)
	test.Equate(t, b.String(), "test: same entry (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "entry one")
	logger.Log("test", "entry two")
	logger.Log("test", "entry three")

	b := &strings.Builder{}
	logger.Tail(b, 2)
	test.Equate(t, b.String(), "test: entry two\ntest: entry three\n")

	// asking for more entries than exist is not an error
	b.Reset()
	logger.Tail(b, 100)
	test.Equate(t, b.String(), "test: entry one\ntest: entry two\ntest: entry three\n")
}
