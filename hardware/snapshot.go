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

package hardware

import (
	"github.com/famicore/famicore/hardware/cpu"
)

// Snapshot records the whole machine state at an instruction boundary. The
// CPU and RAM are copied by value; the cartridge is not copied because ROM
// does not change.
type Snapshot struct {
	CPU    cpu.CPU
	RAM    [0x0800]uint8
	Cycles uint64
}

// Snapshot the current machine state.
func (nes *NES) Snapshot() Snapshot {
	return Snapshot{
		CPU:    *nes.CPU,
		RAM:    nes.Mem.RAM,
		Cycles: nes.Clock.Count(),
	}
}

// Restore puts the machine back into a previously snapshotted state. The
// clock is not rewound: cycles spent are cycles spent even when state is
// rolled back.
func (nes *NES) Restore(snap Snapshot) {
	nes.CPU.PC = snap.CPU.PC
	nes.CPU.A = snap.CPU.A
	nes.CPU.X = snap.CPU.X
	nes.CPU.Y = snap.CPU.Y
	nes.CPU.SP = snap.CPU.SP
	nes.CPU.Status = snap.CPU.Status
	nes.Mem.RAM = snap.RAM
}
