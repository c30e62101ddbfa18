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

// Package memorymap describes the static partitioning of the DMG's 16-bit
// address space. Every address belongs to exactly one area.
//
// The map is fixed by the hardware:
//
//	0x0000 -> 0x7fff    cartridge ROM (through the mapper)
//	0x8000 -> 0x9fff    video RAM
//	0xa000 -> 0xbfff    cartridge RAM (through the mapper)
//	0xc000 -> 0xdfff    working RAM
//	0xe000 -> 0xfdff    echo of working RAM
//	0xfe00 -> 0xfe9f    object attribute memory (OAM)
//	0xfea0 -> 0xfeff    unusable
//	0xff00 -> 0xff7f    IO registers
//	0xff80 -> 0xfffe    high RAM
//	0xffff              interrupt enable register
//
// MapAddress() normalises an address to the origin of its area, which is how
// the memory package indexes its backing arrays. Note that addresses in the
// echo area normalise to the working RAM area.
package memorymap

// Area represents the different areas of the address space.
type Area int

// The list of memory areas. Passive areas (WRAM, HRAM) are backed by plain
// storage in the memory package; active areas belong to a component.
const (
	Cartridge Area = iota
	VRAM
	CartridgeRAM
	WRAM
	OAM
	Unusable
	IO
	HRAM
	InterruptEnable
)

func (a Area) String() string {
	switch a {
	case Cartridge:
		return "Cartridge"
	case VRAM:
		return "VRAM"
	case CartridgeRAM:
		return "CartridgeRAM"
	case WRAM:
		return "WRAM"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case InterruptEnable:
		return "InterruptEnable"
	}
	return "unmapped"
}

// The origins and memtops of the memory areas. The echo area is not an Area
// of its own; it maps onto WRAM.
const (
	OriginCart     = uint16(0x0000)
	MemtopCart     = uint16(0x7fff)
	OriginVRAM     = uint16(0x8000)
	MemtopVRAM     = uint16(0x9fff)
	OriginCartRAM  = uint16(0xa000)
	MemtopCartRAM  = uint16(0xbfff)
	OriginWRAM     = uint16(0xc000)
	MemtopWRAM     = uint16(0xdfff)
	OriginEcho     = uint16(0xe000)
	MemtopEcho     = uint16(0xfdff)
	OriginOAM      = uint16(0xfe00)
	MemtopOAM      = uint16(0xfe9f)
	OriginUnusable = uint16(0xfea0)
	MemtopUnusable = uint16(0xfeff)
	OriginIO       = uint16(0xff00)
	MemtopIO       = uint16(0xff7f)
	OriginHRAM     = uint16(0xff80)
	MemtopHRAM     = uint16(0xfffe)
	AddressIE      = uint16(0xffff)
)

// MapAddress returns the area an address belongs to and the address
// normalised to the origin of that area. Addresses in the echo area return
// the WRAM area and a WRAM-relative address.
func MapAddress(address uint16) (Area, uint16) {
	switch {
	case address <= MemtopCart:
		return Cartridge, address
	case address <= MemtopVRAM:
		return VRAM, address - OriginVRAM
	case address <= MemtopCartRAM:
		return CartridgeRAM, address
	case address <= MemtopWRAM:
		return WRAM, address - OriginWRAM
	case address <= MemtopEcho:
		return WRAM, address - OriginEcho
	case address <= MemtopOAM:
		return OAM, address - OriginOAM
	case address <= MemtopUnusable:
		return Unusable, address - OriginUnusable
	case address <= MemtopIO:
		return IO, address - OriginIO
	case address <= MemtopHRAM:
		return HRAM, address - OriginHRAM
	}
	return InterruptEnable, 0
}
