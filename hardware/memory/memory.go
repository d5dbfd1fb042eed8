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

// Package memory is the console's address space as seen from the CPU. It
// routes every access to working RAM, to the cartridge port, or nowhere.
package memory

import (
	"github.com/famicore/famicore/hardware/cartridge"
)

// address map boundaries. the 2K of working RAM answers to the whole of the
// bottom 8K of the address space through mirroring.
const (
	ramMirrorTop  = uint16(0x2000)
	ramMask       = uint16(0x07ff)
	cartridgeBase = uint16(0x4020)
)

// Memory implements bus.CPUBus for the console.
type Memory struct {
	RAM  [0x0800]uint8
	Cart cartridge.Mapper
}

// NewMemory is the preferred method of initialisation for Memory. The
// cartridge port starts empty.
func NewMemory() *Memory {
	return &Memory{Cart: cartridge.NewEjected()}
}

// AttachCartridge plugs a mapper into the cartridge port, replacing whatever
// was there.
func (mem *Memory) AttachCartridge(cart cartridge.Mapper) {
	mem.Cart = cart
}

func (mem *Memory) Read(address uint16) uint8 {
	switch {
	case address < ramMirrorTop:
		return mem.RAM[address&ramMask]
	case address >= cartridgeBase:
		return mem.Cart.Read(address)
	}

	// the PPU and APU registers would answer in this range. nothing is
	// fitted there yet so the bus floats low
	return 0
}

func (mem *Memory) Write(address uint16, data uint8) {
	switch {
	case address < ramMirrorTop:
		mem.RAM[address&ramMask] = data
	case address >= cartridgeBase:
		mem.Cart.Write(address, data)
	}
}
