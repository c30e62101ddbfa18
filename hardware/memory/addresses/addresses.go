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

// Package addresses names the hardware registers in the IO area of the
// memory map. Names are the conventional ones from the hardware
// documentation.
package addresses

// Hardware register addresses.
const (
	JOYP = uint16(0xff00) // joypad read port / group select
	SB   = uint16(0xff01) // serial transfer data
	SC   = uint16(0xff02) // serial transfer control
	DIV  = uint16(0xff04) // free-running divider
	TIMA = uint16(0xff05) // timer counter
	TMA  = uint16(0xff06) // timer modulo
	TAC  = uint16(0xff07) // timer control
	IF   = uint16(0xff0f) // interrupt request flags
	LCDC = uint16(0xff40) // LCD control
	STAT = uint16(0xff41) // LCD status
	SCY  = uint16(0xff42) // background scroll Y
	SCX  = uint16(0xff43) // background scroll X
	LY   = uint16(0xff44) // current scanline
	LYC  = uint16(0xff45) // scanline compare
	DMA  = uint16(0xff46) // OAM DMA source page
	BGP  = uint16(0xff47) // background palette
	OBP0 = uint16(0xff48) // sprite palette 0
	OBP1 = uint16(0xff49) // sprite palette 1
	WY   = uint16(0xff4a) // window Y position
	WX   = uint16(0xff4b) // window X position
	BOOT = uint16(0xff50) // boot lockout
	IE   = uint16(0xffff) // interrupt enable mask
)
