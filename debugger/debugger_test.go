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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/famicore/famicore/debugger"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/test"
)

func buildImage(program ...uint8) []byte {
	image := make([]byte, 15+16384+8192)
	copy(image, []byte{0x4e, 0x45, 0x53, 0x1a, 0x01, 0x01, 0x00})
	copy(image[15:], program)
	image[15+0x3ffc] = 0x00
	image[15+0x3ffd] = 0x80
	return image
}

func TestBreakpoint(t *testing.T) {
	nes := hardware.NewNES()

	// INX; INX; INX; JMP 0x8000
	err := nes.AttachCartridge(buildImage(0xe8, 0xe8, 0xe8, 0x4c, 0x00, 0x80))
	test.ExpectSuccess(t, err)

	dbg := debugger.NewDebugger(nes)
	dbg.BreakPC(0x8002)

	executed := dbg.Run(100)
	test.Equate(t, executed, 2)
	test.Equate(t, nes.CPU.PC.Address(), uint16(0x8002))
	test.Equate(t, nes.CPU.X.Value(), uint8(2))

	// stepping back unwinds one instruction
	test.Equate(t, dbg.StepBack(), true)
	test.Equate(t, nes.CPU.X.Value(), uint8(1))
}

func TestRunLimit(t *testing.T) {
	nes := hardware.NewNES()

	// NOP; JMP 0x8000
	err := nes.AttachCartridge(buildImage(0xea, 0x4c, 0x00, 0x80))
	test.ExpectSuccess(t, err)

	dbg := debugger.NewDebugger(nes)
	test.Equate(t, dbg.Run(25), 25)
}

func TestDump(t *testing.T) {
	nes := hardware.NewNES()
	dbg := debugger.NewDebugger(nes)

	s := &strings.Builder{}
	dbg.Dump(s)
	test.Equate(t, strings.Contains(s.String(), "digraph"), true)
}
