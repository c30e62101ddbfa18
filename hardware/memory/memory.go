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

// Package memory implements the memory bus of the DMG. The bus owns the
// passive storage areas (working RAM, high RAM, and the IO registers that
// no component claims) and routes every other access to the component that
// owns the address: the cartridge mapper, the display controller, the
// timer, the serial port, the joypad or the interrupt controller.
//
// The bus also implements OAM DMA. A write to the DMA register copies a
// 160 byte page into OAM at once; the bus then counts down the period the
// copy occupies on real hardware, during which OAM reads return 0xff and
// OAM and VRAM writes are dropped.
package memory

import (
	"github.com/jetsetilly/gopherboy/hardware/bus"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/joypad"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/hardware/serial"
	"github.com/jetsetilly/gopherboy/hardware/timer"
)

// number of cycles an OAM DMA transfer occupies the bus for.
const dmaCycles = 640

// Memory implements the memory bus of the DMG.
type Memory struct {
	irq *interrupts.Interrupts

	Cart *cartridge.Cartridge
	PPU  *ppu.PPU
	TMR  *timer.Timer
	SIO  *serial.Serial
	JOY  *joypad.Joypad

	wram [0x2000]uint8
	hram [0x7f]uint8

	// backing storage for IO registers no component claims. the claimed
	// registers never touch this array
	io [0x80]uint8

	// remaining cycles of the current OAM DMA transfer, zero when the bus
	// is free
	dma int
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The components attached to the bus are created by the caller and shared
// with the rest of the machine.
func NewMemory(irq *interrupts.Interrupts, cart *cartridge.Cartridge,
	p *ppu.PPU, tmr *timer.Timer, sio *serial.Serial, joy *joypad.Joypad) *Memory {

	mem := &Memory{
		irq:  irq,
		Cart: cart,
		PPU:  p,
		TMR:  tmr,
		SIO:  sio,
		JOY:  joy,
	}
	mem.Reset()
	return mem
}

// Reset the passive storage areas to their post-boot state. The IO area is
// seeded from the values the boot program leaves behind; the components
// attached to the bus reset their own registers.
func (mem *Memory) Reset() {
	for i := range mem.wram {
		mem.wram[i] = 0
	}
	for i := range mem.io {
		mem.io[i] = ioReset[i]
	}
	for i := range mem.hram {
		mem.hram[i] = ioReset[0x80+i]
	}

	// the boot lockout register reads back as set once the boot program
	// has handed over
	mem.io[addresses.BOOT-memorymap.OriginIO] = 0x01

	mem.dma = 0
}

// port returns the component claiming an IO address, or nil if the address
// is backed by plain storage.
func (mem *Memory) port(address uint16) bus.Port {
	switch address {
	case addresses.JOYP:
		return mem.JOY
	case addresses.SB, addresses.SC:
		return mem.SIO
	case addresses.DIV, addresses.TIMA, addresses.TMA, addresses.TAC:
		return mem.TMR
	case addresses.IF:
		return mem.irq
	}
	if address >= addresses.LCDC && address <= addresses.WX && address != addresses.DMA {
		return mem.PPU
	}
	return nil
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) uint8 {
	area, idx := memorymap.MapAddress(address)

	switch area {
	case memorymap.Cartridge:
		return mem.Cart.Read(address)
	case memorymap.VRAM:
		return mem.PPU.ReadVRAM(idx)
	case memorymap.CartridgeRAM:
		return mem.Cart.Read(address)
	case memorymap.WRAM:
		return mem.wram[idx]
	case memorymap.OAM:
		if mem.dma > 0 {
			return 0xff
		}
		return mem.PPU.ReadOAM(idx)
	case memorymap.Unusable:
		return 0xff
	case memorymap.IO:
		if p := mem.port(address); p != nil {
			return p.ReadPort(address)
		}
		return mem.io[idx]
	case memorymap.HRAM:
		return mem.hram[idx]
	case memorymap.InterruptEnable:
		return mem.irq.ReadPort(address)
	}

	return 0xff
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) {
	area, idx := memorymap.MapAddress(address)

	switch area {
	case memorymap.Cartridge:
		mem.Cart.Write(address, data)
	case memorymap.VRAM:
		if mem.dma > 0 {
			return
		}
		mem.PPU.WriteVRAM(idx, data)
	case memorymap.CartridgeRAM:
		mem.Cart.Write(address, data)
	case memorymap.WRAM:
		mem.wram[idx] = data
	case memorymap.OAM:
		if mem.dma > 0 {
			return
		}
		mem.PPU.WriteOAM(idx, data)
	case memorymap.Unusable:
		// writes to the unusable area are dropped
	case memorymap.IO:
		if address == addresses.DMA {
			mem.io[idx] = data
			mem.startDMA(data)
			return
		}
		if p := mem.port(address); p != nil {
			p.WritePort(address, data)
			return
		}
		mem.io[idx] = data
	case memorymap.HRAM:
		mem.hram[idx] = data
	case memorymap.InterruptEnable:
		mem.irq.WritePort(address, data)
	}
}

// startDMA copies a 160 byte page into OAM and starts the busy period. The
// copy itself is immediate; on real hardware the program sits in high RAM
// while it happens, so nothing observes the intermediate state.
func (mem *Memory) startDMA(page uint8) {
	src := uint16(page) << 8
	for i := uint16(0); i < 0xa0; i++ {
		var data uint8

		area, idx := memorymap.MapAddress(src + i)
		switch area {
		case memorymap.Cartridge, memorymap.CartridgeRAM:
			data = mem.Cart.Read(src + i)
		case memorymap.VRAM:
			data = mem.PPU.ReadVRAM(idx)
		case memorymap.WRAM:
			data = mem.wram[idx]
		default:
			data = 0xff
		}

		mem.PPU.WriteOAM(i, data)
	}

	mem.dma = dmaCycles
}

// StepDMA advances the OAM DMA busy period by the number of elapsed
// cycles.
func (mem *Memory) StepDMA(cycles int) {
	if mem.dma > 0 {
		mem.dma -= cycles
		if mem.dma < 0 {
			mem.dma = 0
		}
	}
}

// DMAActive returns true while an OAM DMA transfer is occupying the bus.
func (mem *Memory) DMAActive() bool {
	return mem.dma > 0
}
