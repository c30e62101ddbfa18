// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package ppu

// RGB is a display colour.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Palette translates shade indices to display colours. The colours are the
// greens of the original LCD panel, shade zero being the lightest.
var Palette = [4]RGB{
	{R: 0x9b, G: 0xbc, B: 0x0f},
	{R: 0x8b, G: 0xac, B: 0x0f},
	{R: 0x30, G: 0x62, B: 0x30},
	{R: 0x0f, G: 0x38, B: 0x0f},
}
