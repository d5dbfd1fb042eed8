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

// StackBase is the origin of the fixed 256-byte page in which the stack
// lives. The stack pointer only ever supplies the low byte of a stack
// address.
const StackBase = uint16(0x0100)

// StackPointer is the 8-bit register indexing the stack page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the full 16-bit address currently indexed by the stack
// pointer.
func (sp StackPointer) Address() uint16 {
	return StackBase | uint16(sp.value)
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Increment the stack pointer, wrapping within the stack page.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the stack pointer, wrapping within the stack page.
func (sp *StackPointer) Decrement() {
	sp.value--
}
