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

// Package cpu implements the 2A03, the 6502 derivative found in the NES.
// Binary decimal mode is absent (the D flag can be set and cleared but
// arithmetic ignores it) and the undocumented opcodes decode to harmless
// no-ops.
//
// The implementation is cycle accurate at instruction granularity. Every
// bus access and every internal cycle ticks the shared clock, so the cycle
// count after ExecuteInstruction() returns is exactly what the real part
// would have consumed, including the extra cycle taken when an indexed read
// crosses a page boundary.
//
// Quirks of the original silicon are preserved where software depends on
// them: indirect JMP does not carry the pointer read across a page, zero
// page indexing wraps within the zero page, and the B bits pushed with the
// status register distinguish BRK/PHP from hardware interrupts.
package cpu
