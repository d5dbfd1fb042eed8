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

package cartridge_test

import (
	"testing"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/cartridge"
	"github.com/famicore/famicore/test"
)

// buildImage assembles a minimal iNES image: one 16K PRG bank with the
// supplied bytes at the start, and one 8K CHR bank.
func buildImage(prgBytes ...uint8) []byte {
	image := make([]byte, 15+16384+8192)
	copy(image, []byte{0x4e, 0x45, 0x53, 0x1a, 0x01, 0x01, 0x01})
	copy(image[15:], prgBytes)
	return image
}

func TestParseINES(t *testing.T) {
	hdr, payload, err := cartridge.ParseINES(buildImage(0xde, 0xad))
	test.ExpectSuccess(t, err)
	test.Equate(t, hdr.PRGSize, uint8(1))
	test.Equate(t, hdr.CHRSize, uint8(1))
	test.Equate(t, hdr.Mirroring, cartridge.Vertical)
	test.Equate(t, len(payload), 16384+8192)
	test.Equate(t, payload[0], uint8(0xde))
}

func TestParseINESErrors(t *testing.T) {
	// bad magic
	image := buildImage()
	image[0] = 0x4d
	_, _, err := cartridge.ParseINES(image)
	test.ExpectFailure(t, err)
	test.Equate(t, curated.Is(err, cartridge.MagicError), true)

	// non-zero padding
	image = buildImage()
	image[12] = 0x01
	_, _, err = cartridge.ParseINES(image)
	test.ExpectFailure(t, err)
	test.Equate(t, curated.Is(err, cartridge.PaddingError), true)

	// truncated header
	_, _, err = cartridge.ParseINES([]byte{0x4e, 0x45, 0x53})
	test.ExpectFailure(t, err)
	test.Equate(t, curated.Is(err, cartridge.ShortError), true)
}

func TestNROMMirrorsSingleBank(t *testing.T) {
	hdr, payload, err := cartridge.ParseINES(buildImage(0x42))
	test.ExpectSuccess(t, err)

	cart, err := cartridge.NewNROM(hdr, payload)
	test.ExpectSuccess(t, err)

	// a 16K bank appears at both 0x8000 and 0xc000
	test.Equate(t, cart.Read(0x8000), uint8(0x42))
	test.Equate(t, cart.Read(0xc000), uint8(0x42))

	// below the PRG window the board does not respond
	test.Equate(t, cart.Read(0x4020), uint8(0))

	// ROM ignores writes
	cart.Write(0x8000, 0xff)
	test.Equate(t, cart.Read(0x8000), uint8(0x42))
}

func TestNROMShortPayload(t *testing.T) {
	hdr := cartridge.Header{PRGSize: 2, CHRSize: 1}
	_, err := cartridge.NewNROM(hdr, make([]byte, 100))
	test.ExpectFailure(t, err)
	test.Equate(t, curated.Is(err, cartridge.PayloadError), true)
}

func TestEjected(t *testing.T) {
	cart := cartridge.NewEjected()
	cart.Write(0x8000, 0xff)
	test.Equate(t, cart.Read(0x8000), uint8(0))
	test.Equate(t, cart.String(), "ejected")
}
