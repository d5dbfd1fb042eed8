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

package cartridge

import (
	"fmt"

	"github.com/famicore/famicore/curated"
)

// error patterns for the NROM mapper.
const (
	PayloadError = "nrom: payload too short: %d bytes for %d"
)

const (
	prgBankSize = 16384
	chrBankSize = 8192
)

// NROM is the simplest cartridge board: no bank switching at all. PRG ROM
// appears at 0x8000; a single 16K bank is mirrored into the top half of the
// range.
type NROM struct {
	prg       []uint8
	chr       []uint8
	mirroring Mirroring
}

// NewNROM builds the mapper from a parsed iNES header and payload.
func NewNROM(hdr Header, payload []byte) (*NROM, error) {
	prgLen := int(hdr.PRGSize) * prgBankSize
	chrLen := int(hdr.CHRSize) * chrBankSize

	if len(payload) < prgLen+chrLen {
		return nil, curated.Errorf(PayloadError, len(payload), prgLen+chrLen)
	}

	return &NROM{
		prg:       payload[:prgLen],
		chr:       payload[prgLen : prgLen+chrLen],
		mirroring: hdr.Mirroring,
	}, nil
}

func (cart *NROM) String() string {
	return fmt.Sprintf("nrom: prg=%dk chr=%dk %s",
		len(cart.prg)/1024, len(cart.chr)/1024, cart.mirroring)
}

// Mirroring returns the nametable arrangement the board is wired for.
func (cart *NROM) Mirroring() Mirroring {
	return cart.mirroring
}

func (cart *NROM) Read(address uint16) uint8 {
	if address < 0x8000 || len(cart.prg) == 0 {
		return 0
	}
	return cart.prg[int(address-0x8000)%len(cart.prg)]
}

// Write does nothing. NROM has no registers and no RAM on the board.
func (cart *NROM) Write(_ uint16, _ uint8) {
}
