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

// Package debugger is a headless debugging harness for the console. It runs
// the emulation until a break condition is met, recording state history as
// it goes so a session can step backwards.
package debugger

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/logger"
)

// Debugger wraps a console with break conditions and state history.
type Debugger struct {
	nes  *hardware.NES
	hist *hardware.History

	// breakpoints are ORed together. execution halts when the program
	// counter reaches any of them
	breakPC []uint16
}

// NewDebugger is the preferred method of initialisation for the Debugger.
func NewDebugger(nes *hardware.NES) *Debugger {
	return &Debugger{
		nes:  nes,
		hist: hardware.NewHistory(),
	}
}

// BreakPC adds a break condition on a program counter value.
func (dbg *Debugger) BreakPC(address uint16) {
	dbg.breakPC = append(dbg.breakPC, address)
}

func (dbg *Debugger) hasBreak() bool {
	for _, address := range dbg.breakPC {
		if dbg.nes.CPU.PC.Address() == address {
			return true
		}
	}
	return false
}

// Run the emulation until a break condition is met or limit instructions
// have executed. Returns the number of instructions executed.
func (dbg *Debugger) Run(limit int) int {
	executed := 0
	for executed < limit && !dbg.hasBreak() {
		dbg.hist.Record(dbg.nes)
		dbg.nes.Step()
		executed++
	}

	if dbg.hasBreak() {
		logger.Logf("debugger", "break at pc=%04x", dbg.nes.CPU.PC.Address())
	}

	return executed
}

// StepBack rewinds the last recorded instruction. Returns false when there
// is no history left.
func (dbg *Debugger) StepBack() bool {
	return dbg.hist.StepBack(dbg.nes)
}

// Dump writes a graphviz rendering of the machine state to w. Useful for
// eyeballing the relationships between the console's components mid-session.
func (dbg *Debugger) Dump(w io.Writer) {
	fmt.Fprintf(w, "// %s\n", dbg.nes.CPU.String())
	memviz.Map(w, dbg.nes)
}
