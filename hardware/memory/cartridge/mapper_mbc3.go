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

// mbc3 uses a full 7-bit bank register for the switchable ROM window. The
// RAM-bank register doubles as a selector for the real-time clock
// registers, which this mapper does not implement: selecting them is
// reported rather than silently ignored so that a program relying on the
// clock is visible in the log.
type mbc3 struct {
	data    []uint8
	ramData []uint8

	banks int

	ramEnable bool
	romBank   uint8 // 7 bits
	ramBank   uint8 // 0x00-0x03 selects RAM, 0x08-0x0c selects an RTC register
}

func newMBC3(data []uint8) *mbc3 {
	m := &mbc3{data: data}
	m.banks = romBanks(data[romSizeAddr])
	if m.banks == 0 {
		m.banks = bankCountFromData(data)
	}
	m.ramData = make([]uint8, ramSize(data[ramSizeAddr]))
	m.reset()
	return m
}

func (m *mbc3) id() string {
	return "MBC3"
}

func (m *mbc3) reset() {
	m.ramEnable = false
	m.romBank = 1
	m.ramBank = 0
}

func (m *mbc3) rtcSelected() bool {
	return m.ramBank >= 0x08
}

func (m *mbc3) read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return romRead(m.data, 0, addr)
	case addr <= memorymap.MemtopCart:
		return romRead(m.data, int(m.romBank)%m.banks, addr)
	}

	if !m.ramEnable {
		return undrivenPins
	}
	if m.rtcSelected() {
		logger.Logf("cartridge", "MBC3: read of unimplemented RTC register %#02x", m.ramBank)
		return undrivenPins
	}
	idx := int(m.ramBank)*0x2000 + int(addr-memorymap.OriginCartRAM)
	if idx >= len(m.ramData) {
		return undrivenPins
	}
	return m.ramData[idx]
}

func (m *mbc3) write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		m.ramEnable = data&0x0f == 0x0a
	case addr < 0x4000:
		m.romBank = data & 0x7f
		if m.romBank == 0 {
			// bank 0 aliases to bank 1, as on MBC1
			m.romBank = 1
		}
	case addr < 0x6000:
		m.ramBank = data & 0x0f
		if m.rtcSelected() {
			logger.Logf("cartridge", "MBC3: unimplemented RTC register %#02x selected", m.ramBank)
		}
	case addr <= memorymap.MemtopCart:
		logger.Log("cartridge", "MBC3: unimplemented RTC latch")
	default:
		if !m.ramEnable || m.rtcSelected() {
			return
		}
		idx := int(m.ramBank)*0x2000 + int(addr-memorymap.OriginCartRAM)
		if idx < len(m.ramData) {
			m.ramData[idx] = data
		}
	}
}

func (m *mbc3) numBanks() int {
	return m.banks
}

func (m *mbc3) ram() []uint8 {
	return m.ramData
}
