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

// Package registers implements the registers of the 2A03. The full
// complement of 8-bit registers (accumulator, index registers, stack
// pointer), the 16-bit program counter and the status register are all
// represented by their own type.
//
// Arithmetic on the Register type derives the carry and overflow flags from
// the bit 7 carry chain, the same way the silicon does, rather than by
// comparing widened integers. The StatusRegister type stores only the six
// real flags; the break patterns that appear in a pushed status byte are
// spliced in at push time and are never part of the register itself.
package registers
