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

// Package disassembly turns bytes in the console's address space back into
// assembly language. It reads through a plain function rather than the bus
// so that disassembling does not tick the machine clock.
package disassembly

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// Entry is one disassembled instruction.
type Entry struct {
	Address uint16
	Defn    instructions.Definition
	Bytes   []uint8
	Operand string
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("$%04x %s", e.Address, e.Defn.Operator))
	if e.Operand != "" {
		s.WriteString(" ")
		s.WriteString(e.Operand)
	}
	return s.String()
}

// Next returns the address of the instruction following this one.
func (e Entry) Next() uint16 {
	return e.Address + uint16(len(e.Bytes))
}

// Disassemble decodes the instruction at address. read supplies the bytes;
// it will be called between one and three times.
func Disassemble(read func(uint16) uint8, address uint16) Entry {
	opcode := read(address)
	defn := instructions.Decode(opcode)

	e := Entry{
		Address: address,
		Defn:    defn,
		Bytes:   []uint8{opcode},
	}

	operand8 := func() uint8 {
		v := read(address + 1)
		e.Bytes = append(e.Bytes, v)
		return v
	}
	operand16 := func() uint16 {
		lo := read(address + 1)
		hi := read(address + 2)
		e.Bytes = append(e.Bytes, lo, hi)
		return uint16(hi)<<8 | uint16(lo)
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		// no operand
	case instructions.Accumulator:
		e.Operand = "A"
	case instructions.Immediate:
		e.Operand = fmt.Sprintf("#$%02x", operand8())
	case instructions.ZeroPage:
		e.Operand = fmt.Sprintf("$%02x", operand8())
	case instructions.ZeroPageX:
		e.Operand = fmt.Sprintf("$%02x,X", operand8())
	case instructions.ZeroPageY:
		e.Operand = fmt.Sprintf("$%02x,Y", operand8())
	case instructions.Absolute:
		e.Operand = fmt.Sprintf("$%04x", operand16())
	case instructions.AbsoluteX:
		e.Operand = fmt.Sprintf("$%04x,X", operand16())
	case instructions.AbsoluteY:
		e.Operand = fmt.Sprintf("$%04x,Y", operand16())
	case instructions.Indirect:
		e.Operand = fmt.Sprintf("($%04x)", operand16())
	case instructions.IndexedIndirect:
		e.Operand = fmt.Sprintf("($%02x,X)", operand8())
	case instructions.IndirectIndexed:
		e.Operand = fmt.Sprintf("($%02x),Y", operand8())
	case instructions.Relative:
		// relative branches are shown with the resolved target address
		offset := operand8()
		target := address + 2 + uint16(int16(int8(offset)))
		e.Operand = fmt.Sprintf("$%04x", target)
	}

	return e
}
