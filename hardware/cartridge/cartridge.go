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

// Package cartridge represents the hardware plugged into the console's
// cartridge port. The Mapper interface is what the rest of the console sees;
// concrete mappers decide how the cartridge's ROM (and any extra hardware on
// the board) responds to the address range given over to the port.
package cartridge

// Mapper is the cartridge as seen from the bus. Addresses are the full CPU
// address; the mapper is responsible for its own decoding of the cartridge
// range.
type Mapper interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Mirroring is the nametable mirroring arrangement requested by the
// cartridge. It has no consumer in the CPU but is parsed, recorded and
// reported because the container format carries it.
type Mirroring int

const (
	Horizontal Mirroring = iota
	Vertical
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "unknown"
}
