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

package hardware_test

import (
	"testing"

	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/test"
)

// buildImage assembles an iNES image with one 16K PRG bank. program is
// placed at the start of the bank (CPU address 0x8000) and the reset vector
// points there.
func buildImage(program ...uint8) []byte {
	image := make([]byte, 15+16384+8192)
	copy(image, []byte{0x4e, 0x45, 0x53, 0x1a, 0x01, 0x01, 0x00})
	copy(image[15:], program)

	// the 16K bank is mirrored so the reset vector at 0xfffc falls at bank
	// offset 0x3ffc
	image[15+0x3ffc] = 0x00
	image[15+0x3ffd] = 0x80

	return image
}

func TestAttachCartridgeAndReset(t *testing.T) {
	nes := hardware.NewNES()

	// LDA #0x42; STA 0x0000
	err := nes.AttachCartridge(buildImage(0xa9, 0x42, 0x85, 0x00))
	test.ExpectSuccess(t, err)

	// attach resets the console: seven cycles and the PC at the vector
	test.Equate(t, nes.Clock.Count(), uint64(7))
	test.Equate(t, nes.CPU.PC.Address(), uint16(0x8000))
	test.Equate(t, nes.CPU.SP.Value(), uint8(0xfd))

	nes.Step()
	nes.Step()
	test.Equate(t, nes.Mem.Read(0x0000), uint8(0x42))
	test.Equate(t, nes.Clock.Count(), uint64(7+2+3))
}

func TestAttachCartridgeBadImage(t *testing.T) {
	nes := hardware.NewNES()
	err := nes.AttachCartridge([]byte{0xff, 0xff, 0xff, 0xff})
	test.ExpectFailure(t, err)
}

func TestEjectCartridge(t *testing.T) {
	nes := hardware.NewNES()
	err := nes.AttachCartridge(nil)
	test.ExpectSuccess(t, err)

	// with nothing in the port the reset vector reads zero
	test.Equate(t, nes.CPU.PC.Address(), uint16(0x0000))
}

func TestRunWithContinueCheck(t *testing.T) {
	nes := hardware.NewNES()

	// a program that does nothing forever: NOP; JMP 0x8000
	err := nes.AttachCartridge(buildImage(0xea, 0x4c, 0x00, 0x80))
	test.ExpectSuccess(t, err)

	instructions := 0
	nes.Run(func() bool {
		instructions++
		return instructions < 10
	})
	test.Equate(t, instructions, 10)
}

func TestHistory(t *testing.T) {
	nes := hardware.NewNES()

	// INX; JMP 0x8000
	err := nes.AttachCartridge(buildImage(0xe8, 0x4c, 0x00, 0x80))
	test.ExpectSuccess(t, err)

	hist := hardware.NewHistory()

	hist.Record(nes)
	nes.Step()
	test.Equate(t, nes.CPU.X.Value(), uint8(1))

	// stepping back restores registers but not the clock
	cycles := nes.Clock.Count()
	test.Equate(t, hist.StepBack(nes), true)
	test.Equate(t, nes.CPU.X.Value(), uint8(0))
	test.Equate(t, nes.CPU.PC.Address(), uint16(0x8000))
	test.Equate(t, nes.Clock.Count(), cycles)

	// the history is now empty
	test.Equate(t, hist.StepBack(nes), false)
}
