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

package cartridge

// cartMapper implementations hold the actual data of the loaded ROM and
// keep track of which banks are mapped into the two cartridge windows.
//
// Addresses passed to read() and write() are full bus addresses: the ROM
// window 0x0000 to 0x7fff and the RAM window 0xa000 to 0xbfff. The mapper
// cannot distinguish a ROM write from anything else; writes into the ROM
// window are bank-select and control operations.
type cartMapper interface {
	id() string
	read(addr uint16) uint8
	write(addr uint16, data uint8)

	numBanks() int

	// the cartridge RAM as a single slice, spanning all RAM banks. empty if
	// the header declares no RAM
	ram() []uint8

	// reset volatile state (bank selection, enable flags) without touching
	// RAM content
	reset()
}

// value returned for reads of unmapped cartridge space: out-of-range ROM
// offsets, disabled RAM, the RAM window of a cartridge without RAM. The data
// bus pins are not driven in these cases and float high.
const undrivenPins = 0xff

// ramSize decodes the RAM-size header field to a size in bytes.
func ramSize(code uint8) int {
	switch code {
	case 0x01:
		return 0x800
	case 0x02:
		return 0x2000
	case 0x03:
		return 0x8000
	case 0x04:
		return 0x20000
	case 0x05:
		return 0x10000
	}
	return 0
}

// romBanks decodes the ROM-size header field to a bank count. each bank is
// 16KB.
func romBanks(code uint8) int {
	if code > 0x08 {
		// not a documented size. derive the bank count from the data instead
		return 0
	}
	return 2 << code
}

// bankCountFromData is a fallback for undocumented ROM-size codes: enough
// 16KB banks to cover the data.
func bankCountFromData(data []uint8) int {
	n := (len(data) + 0x3fff) / 0x4000
	if n < 2 {
		n = 2
	}
	return n
}

// romRead services a read of a banked ROM offset, returning the undriven
// bus value for offsets beyond the actual data.
func romRead(data []uint8, bank int, addr uint16) uint8 {
	offset := bank*0x4000 + int(addr&0x3fff)
	if offset >= len(data) {
		return undrivenPins
	}
	return data[offset]
}

// ejected is the cartMapper used when no cartridge is attached.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

func (m *ejected) id() string {
	return "-"
}

func (m *ejected) read(_ uint16) uint8 {
	return undrivenPins
}

func (m *ejected) write(_ uint16, _ uint8) {
}

func (m *ejected) numBanks() int {
	return 0
}

func (m *ejected) ram() []uint8 {
	return nil
}

func (m *ejected) reset() {
}
