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

// Package clock counts machine cycles. Every component that needs to stay in
// step with the CPU shares one Clock instance.
package clock

import "fmt"

// Clock is a monotonic cycle counter.
type Clock struct {
	count uint64
}

func NewClock() *Clock {
	return &Clock{}
}

// Tick advances the clock by one cycle.
func (clk *Clock) Tick() {
	clk.count++
}

// Count returns the number of cycles elapsed since the clock was created.
func (clk *Clock) Count() uint64 {
	return clk.count
}

func (clk *Clock) String() string {
	return fmt.Sprintf("clock: %d", clk.count)
}
