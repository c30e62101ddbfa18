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
)

// mbc1 is the most common banking controller. A 5-bit bank register selects
// the bank in the switchable ROM window; a further 2-bit register extends
// the bank index on large cartridges or selects the RAM bank, depending on
// the banking mode flag.
//
// The 5-bit bank register never selects bank 0 for the switchable window;
// writing 0 selects bank 1. The upper bits are not involved in that
// comparison, so on large cartridges banks 0x20, 0x40 and 0x60 are
// unreachable, exactly as on the real controller.
type mbc1 struct {
	data    []uint8
	ramData []uint8

	banks int

	// volatile state, set by writes to the ROM window
	ramEnable bool
	bankLo    uint8 // 5 bits
	bankHi    uint8 // 2 bits
	mode      uint8 // 0 = ROM banking, 1 = RAM banking
}

func newMBC1(data []uint8) *mbc1 {
	m := &mbc1{data: data}
	m.banks = romBanks(data[romSizeAddr])
	if m.banks == 0 {
		m.banks = bankCountFromData(data)
	}
	m.ramData = make([]uint8, ramSize(data[ramSizeAddr]))
	m.reset()
	return m
}

func (m *mbc1) id() string {
	return "MBC1"
}

func (m *mbc1) reset() {
	m.ramEnable = false
	m.bankLo = 1
	m.bankHi = 0
	m.mode = 0
}

// fixedBank returns the bank mapped into the fixed ROM window. In RAM
// banking mode on a large cartridge, the fixed window is affected by the
// 2-bit register.
func (m *mbc1) fixedBank() int {
	if m.mode == 1 {
		return (int(m.bankHi) << 5) % m.banks
	}
	return 0
}

// switchableBank returns the bank mapped into the switchable ROM window.
func (m *mbc1) switchableBank() int {
	return (int(m.bankHi)<<5 | int(m.bankLo)) % m.banks
}

// ramBank returns the RAM bank mapped into the RAM window.
func (m *mbc1) ramBank() int {
	if m.mode == 1 {
		return int(m.bankHi)
	}
	return 0
}

func (m *mbc1) read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return romRead(m.data, m.fixedBank(), addr)
	case addr <= memorymap.MemtopCart:
		return romRead(m.data, m.switchableBank(), addr)
	}

	if !m.ramEnable {
		return undrivenPins
	}
	idx := m.ramBank()*0x2000 + int(addr-memorymap.OriginCartRAM)
	if idx >= len(m.ramData) {
		return undrivenPins
	}
	return m.ramData[idx]
}

func (m *mbc1) write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		m.ramEnable = data&0x0f == 0x0a
	case addr < 0x4000:
		m.bankLo = data & 0x1f
		if m.bankLo == 0 {
			// bank 0 is never selectable for the switchable window
			m.bankLo = 1
		}
	case addr < 0x6000:
		m.bankHi = data & 0x03
	case addr <= memorymap.MemtopCart:
		m.mode = data & 0x01
	default:
		if !m.ramEnable {
			return
		}
		idx := m.ramBank()*0x2000 + int(addr-memorymap.OriginCartRAM)
		if idx < len(m.ramData) {
			m.ramData[idx] = data
		}
	}
}

func (m *mbc1) numBanks() int {
	return m.banks
}

func (m *mbc1) ram() []uint8 {
	return m.ramData
}
