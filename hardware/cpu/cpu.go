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

package cpu

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/hardware/bus"
	"github.com/famicore/famicore/hardware/cpu/registers"
)

// interrupt and reset vectors
const (
	NMIVector   = uint16(0xfffa)
	ResetVector = uint16(0xfffc)
	BRKVector   = uint16(0xfffe)
)

// CPU implements the 2A03 processor. Create with NewCPU() and advance with
// ExecuteInstruction().
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem bus.CPUBus
	clk bus.Ticker
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem bus.CPUBus, clk bus.Ticker) *CPU {
	mc := &CPU{mem: mem, clk: clk}
	mc.PC = registers.NewProgramCounter(0)
	mc.A = registers.NewRegister(0, "A")
	mc.X = registers.NewRegister(0, "X")
	mc.Y = registers.NewRegister(0, "Y")
	mc.SP = registers.NewStackPointer(0)
	mc.Status = registers.NewStatusRegister()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%04x", mc.PC.Label(), mc.PC.Address()))
	s.WriteString(fmt.Sprintf(" %s=%02x", mc.A.Label(), mc.A.Value()))
	s.WriteString(fmt.Sprintf(" %s=%02x", mc.X.Label(), mc.X.Value()))
	s.WriteString(fmt.Sprintf(" %s=%02x", mc.Y.Label(), mc.Y.Value()))
	s.WriteString(fmt.Sprintf(" %s=%02x", mc.SP.Label(), mc.SP.Value()))
	s.WriteString(fmt.Sprintf(" %s=%s", mc.Status.Label(), mc.Status.String()))
	return s.String()
}

// tick advances the clock by n cycles. bus accesses tick the clock
// themselves; this is for the internal cycles that make no bus access.
func (mc *CPU) tick(n int) {
	for i := 0; i < n; i++ {
		mc.clk.Tick()
	}
}

// every read and write through these functions costs one cycle.

func (mc *CPU) read8Bit(address uint16) uint8 {
	mc.clk.Tick()
	return mc.mem.Read(address)
}

func (mc *CPU) write8Bit(address uint16, data uint8) {
	mc.clk.Tick()
	mc.mem.Write(address, data)
}

func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.read8Bit(address)
	hi := mc.read8Bit(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16BitIndirect reads a 16bit value without carrying the address
// increment across a page boundary. this is how the 6502 really reads
// pointers: the high byte of a pointer stored at 0x02ff comes from 0x0200,
// not 0x0300. zero page pointer reads wrap within the zero page for the
// same reason.
func (mc *CPU) read16BitIndirect(address uint16) uint16 {
	lo := mc.read8Bit(address)
	hi := mc.read8Bit(address&0xff00 | (address+1)&0x00ff)
	return uint16(hi)<<8 | uint16(lo)
}

// the stack lives in the 0x0100 page. the stack pointer register handles the
// page offset; push/pull only deal in values.

func (mc *CPU) push8(data uint8) {
	mc.write8Bit(mc.SP.Address(), data)
	mc.SP.Decrement()
}

func (mc *CPU) pull8() uint8 {
	mc.SP.Increment()
	return mc.read8Bit(mc.SP.Address())
}

// push16 pushes high byte first so that pull16 reads low byte first.

func (mc *CPU) push16(data uint16) {
	mc.push8(uint8(data >> 8))
	mc.push8(uint8(data))
}

func (mc *CPU) pull16() uint16 {
	lo := mc.pull8()
	hi := mc.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

// Reset puts the CPU into the state it has at power-on or after the console
// reset switch. Registers clear, the stack pointer starts at 0xfd and
// interrupts are disabled until software says otherwise. The sequence takes
// seven cycles, the last two of which read the reset vector.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.tick(5)
	mc.PC.Load(mc.read16Bit(ResetVector))
}

// NMI services a non-maskable interrupt. The PPU raises one of these at the
// start of every vertical blank.
func (mc *CPU) NMI() {
	mc.interrupt(NMIVector)
}

// IRQ services a maskable interrupt request. It does nothing while the
// interrupt disable flag is set.
func (mc *CPU) IRQ() {
	if mc.Status.InterruptDisable {
		return
	}
	mc.interrupt(BRKVector)
}

// interrupt is the common sequence for hardware interrupts: seven cycles to
// stack the program counter and status and load the handler address. the
// status byte is pushed with the interrupt B pattern so the handler can tell
// a hardware interrupt from a BRK.
func (mc *CPU) interrupt(vector uint16) {
	mc.tick(2)
	mc.push16(mc.PC.Address())
	mc.push8(mc.Status.Value() | registers.InterruptBreak)
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(vector))
}
