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
	"strings"
)

// Break patterns spliced into the status byte as it is pushed onto the
// stack. Bits 4 and 5 of a pushed status byte are not flags: bit 5 is always
// set in a pushed byte and bit 4 records whether the push was caused by an
// instruction (BRK, PHP) or by a hardware interrupt. An interrupt handler
// reads bit 4 from the pushed byte to tell the two apart.
const (
	// InterruptBreak is the pattern used when the status register is pushed
	// during a hardware interrupt sequence.
	InterruptBreak = uint8(0x20)

	// InstructionBreak is the pattern used when the status register is
	// pushed by the BRK or PHP instructions.
	InstructionBreak = uint8(0x30)
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. Only the six real flags are stored; the break patterns above are
// never part of the register.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}

	// bits 5 and 4 have no storage
	s.WriteRune('-')
	s.WriteRune('-')

	if sr.DecimalMode {
		s.WriteRune('D')
	} else {
		s.WriteRune('d')
	}
	if sr.InterruptDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister struct into an 8-bit value. Only the six
// real flag bits can ever be set; callers pushing the value onto the stack
// OR in the appropriate break pattern first.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue converts an 8-bit value (pulled from the stack, for example) to
// the StatusRegister struct receiver. The break-pattern bits of the value
// have nowhere to go and so are masked off by construction, as required when
// a pushed status byte is read back.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
