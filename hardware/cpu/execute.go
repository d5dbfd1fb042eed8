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
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/logger"
)

// ExecuteInstruction fetches, decodes and executes the instruction at the
// current program counter. On return the clock has advanced by exactly the
// number of cycles the instruction takes on real hardware.
func (mc *CPU) ExecuteInstruction() {
	opcode := mc.read8Bit(mc.PC.Address())
	mc.PC.Add(1)

	defn := instructions.Decode(opcode)
	if defn.Undocumented {
		logger.Logf("cpu", "undocumented opcode %#02x (pc=%04x)", opcode, mc.PC.Address()-1)
	}

	var address uint16
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		// no operand bytes to consume
	default:
		address = mc.resolve(defn)
	}

	mc.execute(defn, address)
}

// setNZ sets the zero and negative flags from a result value. almost every
// instruction that produces a value does this.
func (mc *CPU) setNZ(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}

// compare is the common implementation of CMP/CPX/CPY. carry is set when
// the register is greater than or equal to the operand, which includes the
// equality case.
func (mc *CPU) compare(reg uint8, address uint16) {
	m := mc.read8Bit(address)
	mc.setNZ(reg - m)
	mc.Status.Carry = reg >= m
}

// branch applies a relative branch if the predicate holds. the displacement
// is signed. a taken branch costs one extra cycle and one more again if the
// target is in a different page to the instruction that follows the branch.
func (mc *CPU) branch(taken bool, address uint16) {
	offset := mc.read8Bit(address)
	if !taken {
		return
	}

	mc.tick(1)
	target := mc.PC.Address() + uint16(int16(int8(offset)))
	if pageCrossed(target, mc.PC.Address()) {
		mc.tick(1)
	}
	mc.PC.Load(target)
}

// shift applies a one-bit shift or rotate. the same register method does
// the work whether the target is the accumulator or a memory cell; memory
// targets are loaded into a scratch register and written back.
func (mc *CPU) shift(defn instructions.Definition, address uint16, op func(r *registers.Register) bool) {
	if defn.AddressingMode == instructions.Accumulator {
		mc.Status.Carry = op(&mc.A)
		mc.setNZ(mc.A.Value())
	} else {
		scratch := registers.NewRegister(mc.read8Bit(address), "scratch")
		mc.Status.Carry = op(&scratch)
		mc.setNZ(scratch.Value())
		mc.write8Bit(address, scratch.Value())
	}
	mc.tick(1)
}

// execute applies the operator to the resolved operand address, ticking the
// clock for any cycles not accounted for by a bus access.
func (mc *CPU) execute(defn instructions.Definition, address uint16) {
	switch defn.Operator {
	case instructions.Lda:
		mc.A.Load(mc.read8Bit(address))
		mc.setNZ(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(mc.read8Bit(address))
		mc.setNZ(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(mc.read8Bit(address))
		mc.setNZ(mc.Y.Value())

	case instructions.Sta:
		mc.write8Bit(address, mc.A.Value())

	case instructions.Stx:
		mc.write8Bit(address, mc.X.Value())

	case instructions.Sty:
		mc.write8Bit(address, mc.Y.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.X.Value())
		mc.tick(1)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setNZ(mc.Y.Value())
		mc.tick(1)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setNZ(mc.X.Value())
		mc.tick(1)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setNZ(mc.A.Value())
		mc.tick(1)

	case instructions.Txs:
		// the only transfer that leaves the flags alone
		mc.SP.Load(mc.X.Value())
		mc.tick(1)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setNZ(mc.A.Value())
		mc.tick(1)

	case instructions.Pha:
		mc.push8(mc.A.Value())
		mc.tick(1)

	case instructions.Php:
		mc.push8(mc.Status.Value() | registers.InstructionBreak)
		mc.tick(1)

	case instructions.Pla:
		mc.A.Load(mc.pull8())
		mc.setNZ(mc.A.Value())
		mc.tick(1)

	case instructions.Plp:
		mc.Status.FromValue(mc.pull8())
		mc.tick(2)

	case instructions.And:
		mc.A.AND(mc.read8Bit(address))
		mc.setNZ(mc.A.Value())

	case instructions.Eor:
		mc.A.EOR(mc.read8Bit(address))
		mc.setNZ(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(mc.read8Bit(address))
		mc.setNZ(mc.A.Value())

	case instructions.Bit:
		b := mc.A.Value() & mc.read8Bit(address)
		mc.setNZ(b)
		mc.Status.Overflow = b&0x40 == 0x40

	case instructions.Adc:
		carry, overflow := mc.A.Add(mc.read8Bit(address), mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.setNZ(mc.A.Value())

	case instructions.Sbc:
		carry, overflow := mc.A.Subtract(mc.read8Bit(address), mc.Status.Carry)
		mc.Status.Carry = carry
		mc.Status.Overflow = overflow
		mc.setNZ(mc.A.Value())

	case instructions.Cmp:
		mc.compare(mc.A.Value(), address)

	case instructions.Cpx:
		mc.compare(mc.X.Value(), address)

	case instructions.Cpy:
		mc.compare(mc.Y.Value(), address)

	case instructions.Inc:
		m := mc.read8Bit(address) + 1
		mc.write8Bit(address, m)
		mc.setNZ(m)
		mc.tick(1)

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.setNZ(mc.X.Value())
		mc.tick(1)

	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setNZ(mc.Y.Value())
		mc.tick(1)

	case instructions.Dec:
		m := mc.read8Bit(address) - 1
		mc.write8Bit(address, m)
		mc.setNZ(m)
		mc.tick(1)

	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.setNZ(mc.X.Value())
		mc.tick(1)

	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setNZ(mc.Y.Value())
		mc.tick(1)

	case instructions.Asl:
		mc.shift(defn, address, (*registers.Register).ASL)

	case instructions.Lsr:
		mc.shift(defn, address, (*registers.Register).LSR)

	case instructions.Rol:
		carry := mc.Status.Carry
		mc.shift(defn, address, func(r *registers.Register) bool {
			return r.ROL(carry)
		})

	case instructions.Ror:
		carry := mc.Status.Carry
		mc.shift(defn, address, func(r *registers.Register) bool {
			return r.ROR(carry)
		})

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Jsr:
		mc.push16(mc.PC.Address() - 1)
		mc.PC.Load(address)
		mc.tick(1)

	case instructions.Rts:
		mc.PC.Load(mc.pull16() + 1)
		mc.tick(3)

	case instructions.Rti:
		mc.Status.FromValue(mc.pull8())
		mc.PC.Load(mc.pull16())
		mc.tick(2)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Clc:
		mc.Status.Carry = false
		mc.tick(1)

	case instructions.Cld:
		mc.Status.DecimalMode = false
		mc.tick(1)

	case instructions.Cli:
		mc.Status.InterruptDisable = false
		mc.tick(1)

	case instructions.Clv:
		mc.Status.Overflow = false
		mc.tick(1)

	case instructions.Sec:
		mc.Status.Carry = true
		mc.tick(1)

	case instructions.Sed:
		mc.Status.DecimalMode = true
		mc.tick(1)

	case instructions.Sei:
		mc.Status.InterruptDisable = true
		mc.tick(1)

	case instructions.Brk:
		mc.push16(mc.PC.Address())
		mc.push8(mc.Status.Value() | registers.InstructionBreak)
		mc.PC.Load(mc.read16Bit(BRKVector))
		mc.tick(1)

	case instructions.Nop:
		mc.tick(1)

	default:
		panic(fmt.Sprintf("cpu: operator %s has no implementation", defn.Operator))
	}
}
