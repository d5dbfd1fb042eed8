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

// Package bus defines the access interfaces between the CPU and the rest of
// the hardware. Defining them here rather than in the cpu or memory packages
// keeps those packages from importing one another.
package bus

// CPUBus is the memory as seen from the CPU. Addresses cover the full 16bit
// range; mirroring and unmapped regions are the implementation's concern.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Ticker advances the machine clock. The CPU calls Tick once for every bus
// access it makes (and for every internal cycle), which is what keeps the
// cycle counts accurate.
type Ticker interface {
	Tick()
}
