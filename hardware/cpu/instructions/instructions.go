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

// Package instructions defines the instruction set of the 2A03: the
// operators, the addressing modes and the decode table that maps every one
// of the 256 opcode values to a Definition.
//
// Decoding is total. Opcodes with no documented instruction decode to a NOP
// with implied addressing, marked Undocumented so that the CPU can report
// the fact. This fallback is deliberate policy: the fetch-decode-execute
// loop never fails on any byte value.
package instructions

import "fmt"

// Operator identifies the operation half of an instruction.
type Operator int

// List of operators. Nop is the zero value, which is also the operator of
// the decode fallback.
const (
	Nop Operator = iota

	// load/store operations
	Lda
	Ldx
	Ldy
	Sta
	Stx
	Sty

	// register transfers
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// stack operations
	Pha
	Php
	Pla
	Plp

	// logical operations
	And
	Eor
	Ora
	Bit

	// arithmetic
	Adc
	Sbc
	Cmp
	Cpx
	Cpy

	// increments and decrements
	Inc
	Inx
	Iny
	Dec
	Dex
	Dey

	// shifts and rotates
	Asl
	Lsr
	Rol
	Ror

	// jumps and calls
	Jmp
	Jsr
	Rts
	Rti

	// branches
	Bcc
	Bcs
	Beq
	Bmi
	Bne
	Bpl
	Bvc
	Bvs

	// status flag changes
	Clc
	Cld
	Cli
	Clv
	Sec
	Sed
	Sei

	// system functions
	Brk

	// undocumented operators. declared for completeness but never produced
	// by the decoder; the opcodes that would select them take the NOP
	// fallback instead
	Lax
	Sax
	Dcp
	Isb
	Slo
	Rla
	Sre
	Rra
)

func (op Operator) String() string {
	if int(op) < len(mnemonics) {
		return mnemonics[op]
	}
	return "???"
}

var mnemonics = []string{
	"NOP",
	"LDA", "LDX", "LDY", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	"PHA", "PHP", "PLA", "PLP",
	"AND", "EOR", "ORA", "BIT",
	"ADC", "SBC", "CMP", "CPX", "CPY",
	"INC", "INX", "INY", "DEC", "DEX", "DEY",
	"ASL", "LSR", "ROL", "ROR",
	"JMP", "JSR", "RTS", "RTI",
	"BCC", "BCS", "BEQ", "BMI", "BNE", "BPL", "BVC", "BVS",
	"CLC", "CLD", "CLI", "CLV", "SEC", "SED", "SEI",
	"BRK",
	"LAX", "SAX", "DCP", "ISB", "SLO", "RLA", "SRE", "RRA",
}

// AddressingMode describes how an instruction locates its operand.
type AddressingMode int

// The closed set of addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Relative
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPage,X"
	case ZeroPageY:
		return "ZeroPage,Y"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "Absolute,X"
	case AbsoluteY:
		return "Absolute,Y"
	case Relative:
		return "Relative"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "(Indirect,X)"
	case IndirectIndexed:
		return "(Indirect),Y"
	}
	return "unknown addressing mode"
}

// Definition describes one entry of the decode table.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode

	// PageSensitive instructions charge the indexing cycle of the AbsoluteX
	// and AbsoluteY modes only when the indexed address crosses a page
	// boundary. Write-shaped instructions are not page sensitive and always
	// charge the cycle.
	PageSensitive bool

	// Undocumented marks an entry produced by the decode fallback rather
	// than the documented instruction set.
	Undocumented bool
}

func (defn Definition) String() string {
	if defn.Undocumented {
		return fmt.Sprintf("%02x ??? (%s %s)", defn.OpCode, defn.Operator, defn.AddressingMode)
	}
	return fmt.Sprintf("%02x %s %s", defn.OpCode, defn.Operator, defn.AddressingMode)
}

// IsBranch returns true if the instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative
}
