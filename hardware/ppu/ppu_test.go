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

package ppu_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/test"
)

func newPPU() (*ppu.PPU, *interrupts.Interrupts) {
	irq := interrupts.NewInterrupts()
	irq.WritePort(addresses.IF, 0x00)
	return ppu.NewPPU(irq), irq
}

func TestPPU_postBootState(t *testing.T) {
	p, _ := newPPU()
	test.Equate(t, p.ReadPort(addresses.LCDC), 0x91)
	test.Equate(t, p.ReadPort(addresses.STAT), 0x02)
	test.Equate(t, p.ReadPort(addresses.LY), 0)
	test.Equate(t, p.ReadPort(addresses.BGP), 0xfc)
	test.Equate(t, p.ReadPort(addresses.OBP0), 0xff)
	test.Equate(t, p.ReadPort(addresses.OBP1), 0xff)
}

func TestPPU_modeProgression(t *testing.T) {
	p, _ := newPPU()

	test.Equate(t, p.Mode(), 0x02)
	p.Step(80)
	test.Equate(t, p.Mode(), 0x03)
	p.Step(172)
	test.Equate(t, p.Mode(), 0x00)
	p.Step(204)
	test.Equate(t, p.Mode(), 0x02)
	test.Equate(t, p.ReadPort(addresses.LY), 1)
}

func TestPPU_lyIsReadOnly(t *testing.T) {
	p, _ := newPPU()
	p.Step(456)
	test.Equate(t, p.ReadPort(addresses.LY), 1)
	p.WritePort(addresses.LY, 99)
	test.Equate(t, p.ReadPort(addresses.LY), 1)
}

type frameCounter struct {
	count int
	last  *ppu.Frame
}

func (f *frameCounter) NewFrame(frameNum int, frame *ppu.Frame) error {
	f.count = frameNum
	f.last = frame
	return nil
}

func TestPPU_frameTiming(t *testing.T) {
	p, irq := newPPU()
	fc := &frameCounter{}
	p.AddPixelRenderer(fc)

	// vertical blank begins after the last visible scanline
	p.Step(456*144 - 1)
	test.Equate(t, p.Mode(), 0x00)
	test.Equate(t, fc.count, 0)
	p.Step(1)
	test.Equate(t, p.Mode(), 0x01)
	test.Equate(t, p.ReadPort(addresses.LY), 144)
	test.Equate(t, fc.count, 1)
	test.Equate(t, irq.Request&0x01, 0x01)

	// and the frame ends after ten scanlines of vertical blank
	p.Step(456 * 10)
	test.Equate(t, p.Mode(), 0x02)
	test.Equate(t, p.ReadPort(addresses.LY), 0)
	test.Equate(t, fc.count, 1)
}

func TestPPU_coincidenceInterrupt(t *testing.T) {
	p, irq := newPPU()
	p.WritePort(addresses.LYC, 5)
	p.WritePort(addresses.STAT, 0x40)

	p.Step(456 * 4)
	test.Equate(t, irq.Request&0x02, 0x00)
	test.Equate(t, p.ReadPort(addresses.STAT)&0x04, 0x00)

	p.Step(456)
	test.Equate(t, p.ReadPort(addresses.LY), 5)
	test.Equate(t, irq.Request&0x02, 0x02)
	test.Equate(t, p.ReadPort(addresses.STAT)&0x04, 0x04)
}

func TestPPU_statModeInterrupt(t *testing.T) {
	p, irq := newPPU()
	p.WritePort(addresses.STAT, 0x08)

	// horizontal blank is reached partway through the scanline
	p.Step(80 + 172)
	test.Equate(t, p.Mode(), 0x00)
	test.Equate(t, irq.Request&0x02, 0x02)
}

func TestPPU_displayDisable(t *testing.T) {
	p, _ := newPPU()
	p.Step(456 * 3)
	test.Equate(t, p.ReadPort(addresses.LY), 3)

	p.WritePort(addresses.LCDC, 0x11)
	test.Equate(t, p.ReadPort(addresses.LY), 0)
	p.Step(456 * 100)
	test.Equate(t, p.ReadPort(addresses.LY), 0)

	// reenabling restarts from the top of the frame
	p.WritePort(addresses.LCDC, 0x91)
	test.Equate(t, p.Mode(), 0x02)
	p.Step(456)
	test.Equate(t, p.ReadPort(addresses.LY), 1)
}

func TestPPU_vramWriteRestriction(t *testing.T) {
	p, _ := newPPU()

	p.WriteVRAM(0x0000, 0xaa)
	test.Equate(t, p.ReadVRAM(0x0000), 0xaa)

	// writes during pixel transfer are dropped
	p.Step(80)
	test.Equate(t, p.Mode(), 0x03)
	p.WriteVRAM(0x0000, 0xbb)
	test.Equate(t, p.ReadVRAM(0x0000), 0xaa)

	p.Step(172)
	p.WriteVRAM(0x0000, 0xbb)
	test.Equate(t, p.ReadVRAM(0x0000), 0xbb)
}

// fillTile writes a tile in which every pixel has the given colour index.
func fillTile(p *ppu.PPU, tileNum int, index uint8) {
	var lo, hi uint8
	if index&0x01 == 0x01 {
		lo = 0xff
	}
	if index&0x02 == 0x02 {
		hi = 0xff
	}
	for row := 0; row < 8; row++ {
		p.WriteVRAM(uint16(tileNum*16+row*2), lo)
		p.WriteVRAM(uint16(tileNum*16+row*2+1), hi)
	}
}

func TestPPU_backgroundRender(t *testing.T) {
	p, _ := newPPU()

	// post-boot LCDC selects the unsigned tile data area and tile map zero.
	// the map is all zeroes so tile zero covers the screen
	fillTile(p, 0, 3)
	p.WritePort(addresses.BGP, 0xe4)

	p.Step(80)
	frame := p.Frame()
	for x := 0; x < ppu.Width; x++ {
		test.Equate(t, frame[0][x], 3)
	}
}

func TestPPU_backgroundDisabled(t *testing.T) {
	p, _ := newPPU()
	fillTile(p, 0, 3)
	p.WritePort(addresses.BGP, 0xe4)
	p.WritePort(addresses.LCDC, 0x90)

	p.Step(80)
	test.Equate(t, p.Frame()[0][0], 0)
}

func TestPPU_backgroundScroll(t *testing.T) {
	p, _ := newPPU()

	// tile one is dark; it occupies the second column of the tile map
	fillTile(p, 1, 3)
	p.WriteVRAM(0x1800+1, 0x01)
	p.WritePort(addresses.BGP, 0xe4)
	p.WritePort(addresses.SCX, 8)

	p.Step(80)
	frame := p.Frame()
	for x := 0; x < 8; x++ {
		test.Equate(t, frame[0][x], 3)
	}
	test.Equate(t, frame[0][8], 0)
}

func TestPPU_spriteRender(t *testing.T) {
	p, _ := newPPU()

	// the post-boot LCDC leaves the sprite layer off
	p.WritePort(addresses.LCDC, 0x93)

	fillTile(p, 1, 3)
	p.WritePort(addresses.BGP, 0x00)
	p.WritePort(addresses.OBP0, 0xe4)

	// one sprite at the top left corner of the screen
	p.WriteOAM(0, 16)
	p.WriteOAM(1, 8)
	p.WriteOAM(2, 1)
	p.WriteOAM(3, 0)

	p.Step(80)
	frame := p.Frame()
	for x := 0; x < 8; x++ {
		test.Equate(t, frame[0][x], 3)
	}
	test.Equate(t, frame[0][8], 0)
}

func TestPPU_spriteBehindBackground(t *testing.T) {
	p, _ := newPPU()

	p.WritePort(addresses.LCDC, 0x93)

	// background colour index one everywhere. a sprite with the priority
	// flag set loses to any non-zero background pixel
	fillTile(p, 0, 1)
	fillTile(p, 1, 3)
	p.WritePort(addresses.BGP, 0xe4)
	p.WritePort(addresses.OBP0, 0xe4)

	p.WriteOAM(0, 16)
	p.WriteOAM(1, 8)
	p.WriteOAM(2, 1)
	p.WriteOAM(3, 0x80)

	p.Step(80)
	test.Equate(t, p.Frame()[0][0], 1)
}

func TestPPU_spriteLimitPerScanline(t *testing.T) {
	p, _ := newPPU()

	p.WritePort(addresses.LCDC, 0x93)

	fillTile(p, 1, 3)
	p.WritePort(addresses.BGP, 0x00)
	p.WritePort(addresses.OBP0, 0xe4)

	// twelve sprites on the same scanline. only the first ten appear
	for i := 0; i < 12; i++ {
		p.WriteOAM(uint16(i*4), 16)
		p.WriteOAM(uint16(i*4+1), uint8(8+i*8))
		p.WriteOAM(uint16(i*4+2), 1)
		p.WriteOAM(uint16(i*4+3), 0)
	}

	p.Step(80)
	frame := p.Frame()
	test.Equate(t, frame[0][9*8], 3)
	test.Equate(t, frame[0][10*8], 0)
}

func TestPPU_windowRender(t *testing.T) {
	p, _ := newPPU()

	// window covers the whole screen from the top left, drawing from tile
	// map one
	fillTile(p, 1, 3)
	for i := 0; i < 32*32; i++ {
		p.WriteVRAM(uint16(0x1c00+i), 0x01)
	}
	p.WritePort(addresses.BGP, 0xe4)
	p.WritePort(addresses.WY, 0)
	p.WritePort(addresses.WX, 7)
	p.WritePort(addresses.LCDC, 0x91|0x20|0x40)

	p.Step(80)
	frame := p.Frame()
	for x := 0; x < ppu.Width; x++ {
		test.Equate(t, frame[0][x], 3)
	}
}

func TestPPU_windowDisabledWithBackground(t *testing.T) {
	p, _ := newPPU()

	// clearing the background enable bit turns the window layer off too,
	// even with the window enable bit set
	fillTile(p, 1, 3)
	for i := 0; i < 32*32; i++ {
		p.WriteVRAM(uint16(0x1c00+i), 0x01)
	}
	p.WritePort(addresses.BGP, 0xe4)
	p.WritePort(addresses.WY, 0)
	p.WritePort(addresses.WX, 7)
	p.WritePort(addresses.LCDC, 0x90|0x20|0x40)

	p.Step(80)
	frame := p.Frame()
	for x := 0; x < ppu.Width; x++ {
		test.Equate(t, frame[0][x], 0)
	}
}
