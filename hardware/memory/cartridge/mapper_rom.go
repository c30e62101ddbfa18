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

import (
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/logger"
)

// rom is the mapper for cartridges with no banking controller at all: 32KB
// of ROM wired straight into the two ROM windows, plus optional RAM.
type rom struct {
	data []uint8
	ramData []uint8
}

func newROM(data []uint8) *rom {
	m := &rom{data: data}
	m.ramData = make([]uint8, ramSize(data[ramSizeAddr]))
	return m
}

func (m *rom) id() string {
	return "ROM"
}

func (m *rom) read(addr uint16) uint8 {
	if addr <= memorymap.MemtopCart {
		if int(addr) >= len(m.data) {
			return undrivenPins
		}
		return m.data[addr]
	}

	// RAM window
	idx := int(addr - memorymap.OriginCartRAM)
	if idx >= len(m.ramData) {
		return undrivenPins
	}
	return m.ramData[idx]
}

func (m *rom) write(addr uint16, data uint8) {
	if addr <= memorymap.MemtopCart {
		// there is no controller to receive this. report it rather than
		// silently ignoring it because it suggests the program thinks it is
		// running on a different mapper
		logger.Logf("cartridge", "ROM: write to ROM window ignored (%#04x=%#02x)", addr, data)
		return
	}

	idx := int(addr - memorymap.OriginCartRAM)
	if idx < len(m.ramData) {
		m.ramData[idx] = data
	}
}

func (m *rom) numBanks() int {
	return 2
}

func (m *rom) ram() []uint8 {
	return m.ramData
}

func (m *rom) reset() {
}
