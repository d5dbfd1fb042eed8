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
	"github.com/famicore/famicore/hardware/cartridge"
	"github.com/famicore/famicore/hardware/clock"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/memory"
)

// NES is the main container for the emulated components of the console.
type NES struct {
	CPU   *cpu.CPU
	Mem   *memory.Memory
	Clock *clock.Clock
}

// NewNES creates a new console and everything associated with the hardware.
func NewNES() *NES {
	nes := &NES{}
	nes.Mem = memory.NewMemory()
	nes.Clock = clock.NewClock()
	nes.CPU = cpu.NewCPU(nes.Mem, nes.Clock)
	return nes
}

// AttachCartridge parses an iNES image, plugs the resulting mapper into the
// cartridge port and resets the console. A nil or empty image ejects the
// cartridge instead.
func (nes *NES) AttachCartridge(data []byte) error {
	if len(data) == 0 {
		nes.Mem.AttachCartridge(cartridge.NewEjected())
		nes.Reset()
		return nil
	}

	hdr, payload, err := cartridge.ParseINES(data)
	if err != nil {
		return err
	}

	cart, err := cartridge.NewNROM(hdr, payload)
	if err != nil {
		return err
	}

	nes.Mem.AttachCartridge(cart)
	nes.Reset()

	return nil
}

// Reset emulates the console's reset switch.
func (nes *NES) Reset() {
	nes.CPU.Reset()
}

// Step the emulation state one CPU instruction.
func (nes *NES) Step() {
	nes.CPU.ExecuteInstruction()
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function runs at the end of every CPU instruction; the emulation stops
// when it returns false.
func (nes *NES) Run(continueCheck func() bool) {
	if continueCheck == nil {
		continueCheck = func() bool { return true }
	}

	for {
		nes.CPU.ExecuteInstruction()
		if !continueCheck() {
			return
		}
	}
}
