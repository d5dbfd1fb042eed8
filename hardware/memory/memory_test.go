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

package memory_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/test"
)

func TestRAMMirroring(t *testing.T) {
	mem := memory.NewMemory()

	// the 2K of RAM repeats every 0x800 up to 0x2000
	mem.Write(0x0000, 0x12)
	test.Equate(t, mem.Read(0x0800), uint8(0x12))
	test.Equate(t, mem.Read(0x1000), uint8(0x12))
	test.Equate(t, mem.Read(0x1800), uint8(0x12))

	// and writes through a mirror land in the same cell
	mem.Write(0x1801, 0x34)
	test.Equate(t, mem.Read(0x0001), uint8(0x34))
}

func TestUnmappedRange(t *testing.T) {
	mem := memory.NewMemory()

	// nothing is fitted between the RAM mirrors and the cartridge port
	mem.Write(0x2000, 0xff)
	test.Equate(t, mem.Read(0x2000), uint8(0))
	test.Equate(t, mem.Read(0x401f), uint8(0))
}

type stubMapper struct {
	lastWrite uint16
}

func (cart *stubMapper) Read(address uint16) uint8 {
	return uint8(address >> 8)
}

func (cart *stubMapper) Write(address uint16, _ uint8) {
	cart.lastWrite = address
}

func TestCartridgeRouting(t *testing.T) {
	mem := memory.NewMemory()

	// with no cartridge the port reads zero
	test.Equate(t, mem.Read(0x8000), uint8(0))

	cart := &stubMapper{}
	mem.AttachCartridge(cart)
	test.Equate(t, mem.Read(0x8000), uint8(0x80))
	mem.Write(0x4020, 0x01)
	test.Equate(t, cart.lastWrite, uint16(0x4020))
}
