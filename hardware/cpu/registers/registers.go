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

package registers

import (
	"fmt"
)

// Register is an 8-bit register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

// Label returns the identifying name given to the register at creation.
func (r Register) Label() string {
	return r.label
}

func (r Register) String() string {
	return fmt.Sprintf("%#02x", r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register as a uint16, for use in
// an address context.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if the register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV returns the state of bit 6. Used by the BIT instruction to set the
// overflow flag.
func (r Register) IsBitV() bool {
	return r.value&0x40 == 0x40
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register, with carry. The carry and overflow results are
// derived from the bit 7 carry chain: the carry into bit 7 is recovered from
// the operand sign bits and the result sign bit, and the carry out of bit 7
// follows from majority voting of those same bits. Overflow is the two
// disagreeing.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, overflow bool) {
	a := r.value

	res := a + val
	if carry {
		res++
	}

	a7 := a >> 7 & 1
	m7 := val >> 7 & 1
	c6 := a7 ^ m7 ^ (res >> 7 & 1)
	c7 := (a7 & m7) | (a7 & c6) | (m7 & c6)

	r.value = res

	return c7 == 1, c6^c7 == 1
}

// Subtract value from register, with carry acting as the inverse of a
// borrow. The flag derivation is the same shape as for Add.
func (r *Register) Subtract(val uint8, carry bool) (rcarry bool, overflow bool) {
	a := r.value

	res := a - val
	if carry {
		res++
	}

	a7 := a >> 7 & 1
	m7 := val >> 7 & 1
	c6 := a7 ^ m7 ^ (res >> 7 & 1)
	c7 := (a7 & m7) | (a7 & c6) | (m7 & c6)

	r.value = res

	return c7 == 1, c6^c7 == 1
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// ORA (inclusive or) value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// EOR (exclusive or) value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// ASL (arithmetic shift left) shifts the register one bit to the left.
// Returns the most significant bit as it was before the shift.
func (r *Register) ASL() bool {
	carry := r.IsNegative()
	r.value <<= 1
	return carry
}

// LSR (logical shift right) shifts the register one bit to the right.
// Returns the least significant bit as it was before the shift.
func (r *Register) LSR() bool {
	carry := r.value&1 == 1
	r.value >>= 1
	return carry
}

// ROL rotates the register one bit to the left, the supplied carry filling
// bit 0. Returns the new carry state.
func (r *Register) ROL(carry bool) bool {
	rcarry := r.IsNegative()
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// ROR rotates the register one bit to the right, the supplied carry filling
// bit 7. Returns the new carry state.
func (r *Register) ROR(carry bool) bool {
	rcarry := r.value&1 == 1
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}
