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

// Package ppu implements the display controller of the DMG. The controller
// owns video RAM, the object attribute memory and the LCD register group,
// and it produces one completed frame every 70224 cycles.
//
// The controller is a state machine over scanlines. A visible scanline
// passes through OAM search, pixel transfer and horizontal blank; after the
// last visible scanline the machine spends ten whole scanlines in vertical
// blank. Pixels for a scanline are synthesised in one go when the scanline
// enters pixel transfer.
//
// Completed frames are handed to any registered PixelRenderer at the moment
// the machine enters vertical blank. That is the only time a frame is
// exposed; a renderer that wants to keep the pixels must copy them.
package ppu

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// Dimensions of the visible display.
const (
	Width  = 160
	Height = 144
)

// Frame is one completed frame of the display: a shade index (0 to 3, 0
// being the lightest) for every visible pixel, with all palettes already
// applied. The palette package maps shade indices to display colours.
type Frame [Height][Width]uint8

// PixelRenderer implementations display, or otherwise work with, completed
// frames. For example, digest.Video.
//
// The frame pointer passed to NewFrame() is only valid for the duration of
// the call. Implementations that keep the pixels must copy them.
type PixelRenderer interface {
	NewFrame(frameNum int, frame *Frame) error
}

// the four modes of the scanline state machine, as they appear in the low
// two bits of the STAT register.
const (
	modeHBlank = 0x00
	modeVBlank = 0x01
	modeSearch = 0x02
	modeXfer   = 0x03

	modeMask = 0x03
)

// cycle budget for each mode of a visible scanline. a scanline in vertical
// blank spends all 456 cycles in that mode.
const (
	searchCycles = 80
	xferCycles   = 172
	hblankCycles = 204
	lineCycles   = searchCycles + xferCycles + hblankCycles
)

// scanline counts.
const (
	visibleLines = Height
	totalLines   = 154
)

// LCDC register bits.
const (
	lcdcBGEnable      = 0x01
	lcdcSpriteEnable  = 0x02
	lcdcSpriteSize    = 0x04
	lcdcBGTileMap     = 0x08
	lcdcTileData      = 0x10
	lcdcWindowEnable  = 0x20
	lcdcWindowTileMap = 0x40
	lcdcEnable        = 0x80
)

// STAT register bits, besides the mode field.
const (
	statCoincidence   = 0x04
	statIRQHBlank     = 0x08
	statIRQVBlank     = 0x10
	statIRQSearch     = 0x20
	statIRQCoincident = 0x40
)

// PPU implements the display controller.
type PPU struct {
	irq *interrupts.Interrupts

	// video RAM and object attribute memory. accessible over the bus,
	// subject to the access restrictions implemented in the memory package
	// with the help of the Mode() function
	vram [0x2000]uint8
	oam  [0xa0]uint8

	// the LCD register group
	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	// cycles accumulated towards the current mode's budget
	modeCycles int

	// the window keeps its own scanline counter: it only advances on
	// scanlines the window appears on
	windowLine int

	// total number of cycles the controller has been advanced by
	cycles uint64

	frame    Frame
	frameNum int

	renderers []PixelRenderer
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(irq *interrupts.Interrupts) *PPU {
	p := &PPU{irq: irq}
	p.Reset()
	return p
}

// Reset the controller to its post-boot state. The boot program leaves the
// display enabled, in the second scanline's OAM search.
func (p *PPU) Reset() {
	for i := range p.vram {
		p.vram[i] = 0
	}
	for i := range p.oam {
		p.oam[i] = 0
	}
	p.lcdc = 0x91
	p.stat = 0x02
	p.scy = 0
	p.scx = 0
	p.ly = 0
	p.lyc = 0
	p.bgp = 0xfc
	p.obp0 = 0xff
	p.obp1 = 0xff
	p.wy = 0
	p.wx = 0
	p.modeCycles = 0
	p.windowLine = 0
	p.cycles = 0
	p.frame = Frame{}
	p.frameNum = 0
}

func (p *PPU) String() string {
	return fmt.Sprintf("LY=%d mode=%d LCDC=%#02x STAT=%#02x", p.ly, p.stat&modeMask, p.lcdc, p.stat)
}

// AddPixelRenderer registers a renderer to receive completed frames.
func (p *PPU) AddPixelRenderer(r PixelRenderer) {
	p.renderers = append(p.renderers, r)
}

// Mode returns the current mode of the scanline state machine. Used by the
// memory package to apply bus access restrictions.
func (p *PPU) Mode() uint8 {
	return p.stat & modeMask
}

// Frame returns the frame buffer. Only the frame handed to PixelRenderers
// at the vertical blank boundary is complete; between vertical blanks the
// buffer holds a mix of the current and previous frame.
func (p *PPU) Frame() *Frame {
	return &p.frame
}

// FrameNum returns the number of completed frames.
func (p *PPU) FrameNum() int {
	return p.frameNum
}

// Cycles returns the total number of cycles the controller has been
// advanced by.
func (p *PPU) Cycles() uint64 {
	return p.cycles
}

// setMode transitions the scanline state machine, raising the display
// status interrupt if the STAT register asks for it.
func (p *PPU) setMode(mode uint8) {
	p.stat = p.stat&^uint8(modeMask) | mode

	var irqBit uint8
	switch mode {
	case modeHBlank:
		irqBit = statIRQHBlank
	case modeVBlank:
		irqBit = statIRQVBlank
	case modeSearch:
		irqBit = statIRQSearch
	default:
		return
	}
	if p.stat&irqBit != 0 {
		p.irq.Raise(interrupts.Stat)
	}
}

// setLine changes the current scanline, updating the coincidence flag and
// raising the display status interrupt on a coincidence if the STAT
// register asks for it.
func (p *PPU) setLine(line uint8) {
	p.ly = line
	if p.ly == p.lyc {
		p.stat |= statCoincidence
		if p.stat&statIRQCoincident != 0 {
			p.irq.Raise(interrupts.Stat)
		}
	} else {
		p.stat &^= statCoincidence
	}
}

// Step advances the controller by the number of elapsed master clock
// cycles. Mode and scanline boundaries fall exactly where the cycle budget
// puts them, however uneven the Step calls are.
func (p *PPU) Step(cycles int) {
	p.cycles += uint64(cycles)

	if p.lcdc&lcdcEnable != lcdcEnable {
		return
	}

	p.modeCycles += cycles

	for {
		switch p.stat & modeMask {
		case modeSearch:
			if p.modeCycles < searchCycles {
				return
			}
			p.modeCycles -= searchCycles
			p.setMode(modeXfer)
			p.renderScanline()

		case modeXfer:
			if p.modeCycles < xferCycles {
				return
			}
			p.modeCycles -= xferCycles
			p.setMode(modeHBlank)

		case modeHBlank:
			if p.modeCycles < hblankCycles {
				return
			}
			p.modeCycles -= hblankCycles
			p.setLine(p.ly + 1)
			if p.ly == visibleLines {
				p.setMode(modeVBlank)
				p.irq.Raise(interrupts.VBlank)
				p.newFrame()
			} else {
				p.setMode(modeSearch)
			}

		case modeVBlank:
			if p.modeCycles < lineCycles {
				return
			}
			p.modeCycles -= lineCycles
			if p.ly >= totalLines-1 {
				p.setLine(0)
				p.windowLine = 0
				p.setMode(modeSearch)
			} else {
				p.setLine(p.ly + 1)
			}
		}
	}
}

// newFrame passes the completed frame to the registered renderers.
func (p *PPU) newFrame() {
	p.frameNum++
	for _, r := range p.renderers {
		if err := r.NewFrame(p.frameNum, &p.frame); err != nil {
			// a renderer error is not a hardware condition. log and carry on
			logRendererError(err)
		}
	}
}

// ReadVRAM reads video RAM. The offset is relative to the start of the VRAM
// area.
func (p *PPU) ReadVRAM(offset uint16) uint8 {
	return p.vram[offset]
}

// WriteVRAM writes video RAM. Writes during pixel transfer are dropped;
// on real hardware the CPU cannot win that bus conflict.
func (p *PPU) WriteVRAM(offset uint16, data uint8) {
	if p.lcdc&lcdcEnable == lcdcEnable && p.Mode() == modeXfer {
		return
	}
	p.vram[offset] = data
}

// ReadOAM reads the object attribute memory. The offset is relative to the
// start of the OAM area.
func (p *PPU) ReadOAM(offset uint16) uint8 {
	return p.oam[offset]
}

// WriteOAM writes the object attribute memory.
func (p *PPU) WriteOAM(offset uint16, data uint8) {
	p.oam[offset] = data
}

// ReadPort implements the bus.Port interface.
func (p *PPU) ReadPort(address uint16) uint8 {
	switch address {
	case addresses.LCDC:
		return p.lcdc
	case addresses.STAT:
		return p.stat
	case addresses.SCY:
		return p.scy
	case addresses.SCX:
		return p.scx
	case addresses.LY:
		return p.ly
	case addresses.LYC:
		return p.lyc
	case addresses.BGP:
		return p.bgp
	case addresses.OBP0:
		return p.obp0
	case addresses.OBP1:
		return p.obp1
	case addresses.WY:
		return p.wy
	case addresses.WX:
		return p.wx
	}
	return 0xff
}

// WritePort implements the bus.Port interface.
func (p *PPU) WritePort(address uint16, data uint8) {
	switch address {
	case addresses.LCDC:
		wasOff := p.lcdc&lcdcEnable != lcdcEnable
		p.lcdc = data
		if p.lcdc&lcdcEnable != lcdcEnable {
			// display off: hold at the top of the frame in horizontal blank
			p.ly = 0
			p.modeCycles = 0
			p.windowLine = 0
			p.stat &^= uint8(modeMask)
		} else if wasOff {
			p.setLine(0)
			p.modeCycles = 0
			p.setMode(modeSearch)
		}
	case addresses.STAT:
		// the mode field and coincidence flag are read-only
		p.stat = p.stat&0x07 | data&0xf8
	case addresses.SCY:
		p.scy = data
	case addresses.SCX:
		p.scx = data
	case addresses.LY:
		// read-only
	case addresses.LYC:
		p.lyc = data
	case addresses.BGP:
		p.bgp = data
	case addresses.OBP0:
		p.obp0 = data
	case addresses.OBP1:
		p.obp1 = data
	case addresses.WY:
		p.wy = data
	case addresses.WX:
		p.wx = data
	}
}
