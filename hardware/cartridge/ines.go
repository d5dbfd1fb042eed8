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
	"bytes"

	"github.com/famicore/famicore/curated"
)

// error patterns for the iNES parser. test with curated.Is().
const (
	MagicError   = "ines: invalid magic number"
	PaddingError = "ines: invalid padding"
	ShortError   = "ines: file too short: %d bytes"
)

// inesMagic begins every iNES file.
var inesMagic = []byte{0x4e, 0x45, 0x53, 0x1a}

// Header is the decoded iNES header.
type Header struct {
	// sizes are in units of 16K (PRG) and 8K (CHR)
	PRGSize   uint8
	CHRSize   uint8
	Mirroring Mirroring
}

// ParseINES decodes an iNES image into its header and payload. The payload
// is everything after the header: PRG ROM followed by CHR ROM.
//
// Only the fields this console uses are decoded. Flags 7 to 10 are skipped
// but the four padding bytes that follow them must be zero; a non-zero value
// there usually means the file is a later format variant that would be
// misread as iNES.
func ParseINES(data []byte) (Header, []byte, error) {
	if len(data) < 15 {
		return Header{}, nil, curated.Errorf(ShortError, len(data))
	}

	if !bytes.Equal(data[:4], inesMagic) {
		return Header{}, nil, curated.Errorf(MagicError)
	}

	hdr := Header{
		PRGSize:   data[4],
		CHRSize:   data[5],
		Mirroring: Horizontal,
	}

	// flag 6. bit 0 selects the nametable arrangement
	if data[6]&0x01 == 0x01 {
		hdr.Mirroring = Vertical
	}

	// bytes 7 to 10 are skipped. the four bytes after them are padding and
	// must be zero
	for _, b := range data[11:15] {
		if b != 0 {
			return Header{}, nil, curated.Errorf(PaddingError)
		}
	}

	return hdr, data[15:], nil
}
