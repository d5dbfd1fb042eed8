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

package disassembly_test

import (
	"testing"

	"github.com/famicore/famicore/disassembly"
	"github.com/famicore/famicore/test"
)

func reader(bytes ...uint8) func(uint16) uint8 {
	return func(address uint16) uint8 {
		return bytes[address-0x8000]
	}
}

func TestDisassemble(t *testing.T) {
	// LDA #$42
	e := disassembly.Disassemble(reader(0xa9, 0x42), 0x8000)
	test.Equate(t, e.String(), "$8000 LDA #$42")
	test.Equate(t, e.Next(), uint16(0x8002))

	// STA $0210
	e = disassembly.Disassemble(reader(0x8d, 0x10, 0x02), 0x8000)
	test.Equate(t, e.String(), "$8000 STA $0210")
	test.Equate(t, e.Next(), uint16(0x8003))

	// JMP ($02ff)
	e = disassembly.Disassemble(reader(0x6c, 0xff, 0x02), 0x8000)
	test.Equate(t, e.String(), "$8000 JMP ($02ff)")

	// LDA ($f0,X)
	e = disassembly.Disassemble(reader(0xa1, 0xf0), 0x8000)
	test.Equate(t, e.String(), "$8000 LDA ($f0,X)")

	// ROR A
	e = disassembly.Disassemble(reader(0x6a), 0x8000)
	test.Equate(t, e.String(), "$8000 ROR A")
	test.Equate(t, e.Next(), uint16(0x8001))
}

func TestDisassembleBranch(t *testing.T) {
	// a backwards branch resolves to its target address
	e := disassembly.Disassemble(reader(0xd0, 0xfe), 0x8000)
	test.Equate(t, e.String(), "$8000 BNE $8000")

	e = disassembly.Disassemble(reader(0xf0, 0x10), 0x8000)
	test.Equate(t, e.String(), "$8000 BEQ $8012")
}
