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

package instructions_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/test"
)

func TestDecodeTotality(t *testing.T) {
	documented := 0
	for i := 0; i < 256; i++ {
		defn := instructions.Decode(uint8(i))
		test.Equate(t, defn.OpCode, uint8(i))
		if !defn.Undocumented {
			documented++
		} else {
			// fallback definitions are harmless no-ops
			test.Equate(t, defn.Operator, instructions.Nop)
			test.Equate(t, defn.AddressingMode, instructions.Implied)
		}
	}
	test.Equate(t, documented, 151)
}

func TestDecodeSpotChecks(t *testing.T) {
	// store instructions use the indexed indirect modes, not plain indirect
	defn := instructions.Decode(0x81)
	test.Equate(t, defn.Operator, instructions.Sta)
	test.Equate(t, defn.AddressingMode, instructions.IndexedIndirect)

	defn = instructions.Decode(0x91)
	test.Equate(t, defn.Operator, instructions.Sta)
	test.Equate(t, defn.AddressingMode, instructions.IndirectIndexed)

	// the 0x6a column is ROR, not a second ROL
	for _, op := range []uint8{0x6a, 0x66, 0x76, 0x6e, 0x7e} {
		defn = instructions.Decode(op)
		test.Equate(t, defn.Operator, instructions.Ror)
	}
	test.Equate(t, instructions.Decode(0x6a).AddressingMode, instructions.Accumulator)

	// X register loads/stores index with Y in zero page
	defn = instructions.Decode(0xb6)
	test.Equate(t, defn.Operator, instructions.Ldx)
	test.Equate(t, defn.AddressingMode, instructions.ZeroPageY)

	defn = instructions.Decode(0x96)
	test.Equate(t, defn.Operator, instructions.Stx)
	test.Equate(t, defn.AddressingMode, instructions.ZeroPageY)

	defn = instructions.Decode(0xbc)
	test.Equate(t, defn.Operator, instructions.Ldy)
	test.Equate(t, defn.AddressingMode, instructions.AbsoluteX)
	test.Equate(t, defn.PageSensitive, true)

	defn = instructions.Decode(0xd9)
	test.Equate(t, defn.Operator, instructions.Cmp)
	test.Equate(t, defn.AddressingMode, instructions.AbsoluteY)
	test.Equate(t, defn.PageSensitive, true)
}

func TestPageSensitivity(t *testing.T) {
	// only indexed absolute reads can take the page-crossing penalty.
	// writes and read-modify-writes always pay it
	for i := 0; i < 256; i++ {
		defn := instructions.Decode(uint8(i))
		if !defn.PageSensitive {
			continue
		}
		ok := defn.AddressingMode == instructions.AbsoluteX ||
			defn.AddressingMode == instructions.AbsoluteY
		if !ok {
			t.Errorf("opcode %#02x page sensitive in mode %s", i, defn.AddressingMode)
		}
		switch defn.Operator {
		case instructions.Sta, instructions.Asl, instructions.Lsr,
			instructions.Rol, instructions.Ror, instructions.Inc, instructions.Dec:
			t.Errorf("opcode %#02x (%s) should not be page sensitive", i, defn.Operator)
		}
	}
}

func TestBranchShape(t *testing.T) {
	branches := []uint8{0x90, 0xb0, 0xf0, 0x30, 0xd0, 0x10, 0x50, 0x70}
	for _, op := range branches {
		defn := instructions.Decode(op)
		test.Equate(t, defn.AddressingMode, instructions.Relative)
		test.Equate(t, defn.IsBranch(), true)
	}
	test.Equate(t, instructions.Decode(0x4c).IsBranch(), false)
}
