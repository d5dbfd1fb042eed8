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

package cartridge

// Ejected is the mapper in place when no cartridge is attached. The bus
// reads an open value of zero and writes disappear.
type Ejected struct{}

func NewEjected() *Ejected {
	return &Ejected{}
}

func (cart *Ejected) String() string {
	return "ejected"
}

func (cart *Ejected) Read(_ uint16) uint8 {
	return 0
}

func (cart *Ejected) Write(_ uint16, _ uint8) {
}
