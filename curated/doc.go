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

// Package curated is the error mechanism used throughout the project. An
// error created with Errorf() remembers the pattern it was created with,
// which means callers can test for a specific class of error without
// comparing formatted strings:
//
//	_, err := cartridge.Parse(data)
//	if curated.Is(err, cartridge.MagicError) {
//		...
//	}
//
// Patterns compose. When a curated error wraps another curated error, Has()
// finds the inner pattern anywhere in the chain, and the formatted message
// de-duplicates repeated parts so that wrapping does not produce stuttering
// text.
package curated
