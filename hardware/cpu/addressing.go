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

package cpu

import (
	"fmt"

	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// pageCrossed is true if adding the index to the base address carried into
// the high byte. crossing costs the indexed addressing modes an extra cycle.
func pageCrossed(result uint16, base uint16) bool {
	return result&0xff00 != base&0xff00
}

// resolve consumes the instruction's operand bytes and returns the effective
// address the operator should work with. for the immediate and relative
// modes the returned address is where the operand byte itself lives.
//
// write instructions (and read-modify-writes) always pay the indexing cycle
// on the absolute indexed and indirect indexed modes; instructions that only
// read pay it only when the indexing crosses a page. the definition's
// PageSensitive field records which shape an opcode has.
func (mc *CPU) resolve(defn instructions.Definition) uint16 {
	switch defn.AddressingMode {
	case instructions.Immediate, instructions.Relative:
		address := mc.PC.Address()
		mc.PC.Add(1)
		return address

	case instructions.ZeroPage:
		m := mc.read8Bit(mc.PC.Address())
		mc.PC.Add(1)
		return uint16(m)

	case instructions.ZeroPageX:
		m := mc.read8Bit(mc.PC.Address())
		mc.PC.Add(1)
		mc.tick(1)
		return uint16(m + mc.X.Value())

	case instructions.ZeroPageY:
		m := mc.read8Bit(mc.PC.Address())
		mc.PC.Add(1)
		mc.tick(1)
		return uint16(m + mc.Y.Value())

	case instructions.Absolute:
		address := mc.read16Bit(mc.PC.Address())
		mc.PC.Add(2)
		return address

	case instructions.AbsoluteX:
		base := mc.read16Bit(mc.PC.Address())
		mc.PC.Add(2)
		address := base + uint16(mc.X.Value())
		if !defn.PageSensitive || pageCrossed(address, base) {
			mc.tick(1)
		}
		return address

	case instructions.AbsoluteY:
		base := mc.read16Bit(mc.PC.Address())
		mc.PC.Add(2)
		address := base + uint16(mc.Y.Value())
		if !defn.PageSensitive || pageCrossed(address, base) {
			mc.tick(1)
		}
		return address

	case instructions.Indirect:
		pointer := mc.read16Bit(mc.PC.Address())
		mc.PC.Add(2)
		return mc.read16BitIndirect(pointer)

	case instructions.IndexedIndirect:
		m := mc.read8Bit(mc.PC.Address())
		mc.PC.Add(1)
		mc.tick(1)
		return mc.read16BitIndirect(uint16(m + mc.X.Value()))

	case instructions.IndirectIndexed:
		m := mc.read8Bit(mc.PC.Address())
		mc.PC.Add(1)
		base := mc.read16BitIndirect(uint16(m))
		address := base + uint16(mc.Y.Value())
		if !defn.PageSensitive || pageCrossed(address, base) {
			mc.tick(1)
		}
		return address
	}

	panic(fmt.Sprintf("cpu: no resolution for addressing mode %s", defn.AddressingMode))
}
