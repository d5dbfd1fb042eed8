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

// the number of snapshots a History holds before old entries are reused.
const historyDepth = 64

// History is a ring of machine snapshots, useful for stepping an emulation
// backwards during a debugging session. Record after every instruction (or
// as often as wanted) and StepBack to revisit earlier states.
type History struct {
	snapshots [historyDepth]Snapshot
	head      int
	entries   int
}

func NewHistory() *History {
	return &History{}
}

// Record the current machine state.
func (hist *History) Record(nes *NES) {
	hist.snapshots[hist.head] = nes.Snapshot()
	hist.head = (hist.head + 1) % historyDepth
	if hist.entries < historyDepth {
		hist.entries++
	}
}

// StepBack restores the most recently recorded state, consuming it. Returns
// false if the history is empty.
func (hist *History) StepBack(nes *NES) bool {
	if hist.entries == 0 {
		return false
	}

	hist.head = (hist.head - 1 + historyDepth) % historyDepth
	hist.entries--
	nes.Restore(hist.snapshots[hist.head])

	return true
}
