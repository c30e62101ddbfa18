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

import (
	"sort"

	"github.com/jetsetilly/gopherboy/logger"
)

// VRAM offsets of the two tile maps and the tile data areas.
const (
	tileMap0  = 0x1800
	tileMap1  = 0x1c00
	tileData0 = 0x1000 // signed tile numbers, tile 0 at 0x9000
	tileData1 = 0x0000 // unsigned tile numbers, tile 0 at 0x8000
)

// sprite attribute flags.
const (
	sprPalette  = 0x10
	sprFlipX    = 0x20
	sprFlipY    = 0x40
	sprBehindBG = 0x80
)

// no more than ten sprites appear on any one scanline.
const maxSpritesPerLine = 10

// shade applies a palette register to a colour index.
func shade(palette uint8, index uint8) uint8 {
	return (palette >> (index * 2)) & 0x03
}

// tilePixel returns the colour index of one pixel of a tile. The tile
// number is interpreted as signed or unsigned according to the tile data
// select bit of the LCDC register.
func (p *PPU) tilePixel(tileNum uint8, x int, y int) uint8 {
	var addr int
	if p.lcdc&lcdcTileData == lcdcTileData {
		addr = tileData1 + int(tileNum)*16
	} else {
		addr = tileData0 + int(int8(tileNum))*16
	}

	lo := p.vram[addr+y*2]
	hi := p.vram[addr+y*2+1]
	bit := uint(7 - x)
	return (lo>>bit)&0x01 | ((hi>>bit)&0x01)<<1
}

// spritePixel is like tilePixel but sprite tiles always use the unsigned
// tile data area, regardless of the LCDC tile data select bit.
func (p *PPU) spritePixel(tileNum uint8, x int, y int) uint8 {
	addr := tileData1 + int(tileNum)*16
	lo := p.vram[addr+y*2]
	hi := p.vram[addr+y*2+1]
	bit := uint(7 - x)
	return (lo>>bit)&0x01 | ((hi>>bit)&0x01)<<1
}

// renderScanline synthesises the pixels of the current scanline into the
// frame buffer. Called as the scanline enters pixel transfer, so register
// changes made during horizontal blank take effect on the next scanline
// and mid-transfer register changes have no effect at all.
func (p *PPU) renderScanline() {
	if int(p.ly) >= Height {
		return
	}
	line := int(p.ly)

	// colour indices before palette translation. sprite priority against
	// the background is decided on indices, not shades
	var index [Width]uint8

	p.renderBackground(line, &index)
	p.renderWindow(line, &index)
	p.renderSprites(line, &index)
}

func (p *PPU) renderBackground(line int, index *[Width]uint8) {
	if p.lcdc&lcdcBGEnable != lcdcBGEnable {
		// a disabled background shows colour zero on every pixel
		for x := 0; x < Width; x++ {
			index[x] = 0
			p.frame[line][x] = shade(p.bgp, 0)
		}
		return
	}

	mapBase := tileMap0
	if p.lcdc&lcdcBGTileMap == lcdcBGTileMap {
		mapBase = tileMap1
	}

	y := (line + int(p.scy)) & 0xff
	for x := 0; x < Width; x++ {
		bx := (x + int(p.scx)) & 0xff
		tileNum := p.vram[mapBase+(y/8)*32+bx/8]
		ci := p.tilePixel(tileNum, bx%8, y%8)
		index[x] = ci
		p.frame[line][x] = shade(p.bgp, ci)
	}
}

func (p *PPU) renderWindow(line int, index *[Width]uint8) {
	// the background enable bit turns off the window layer as well
	if p.lcdc&lcdcBGEnable != lcdcBGEnable {
		return
	}
	if p.lcdc&lcdcWindowEnable != lcdcWindowEnable {
		return
	}
	if line < int(p.wy) || int(p.wx) >= Width+7 {
		return
	}

	mapBase := tileMap0
	if p.lcdc&lcdcWindowTileMap == lcdcWindowTileMap {
		mapBase = tileMap1
	}

	// the window has its own scanline counter. it only advances on
	// scanlines the window actually appears on
	y := p.windowLine
	p.windowLine++

	left := int(p.wx) - 7
	for x := left; x < Width; x++ {
		if x < 0 {
			continue
		}
		wx := x - left
		tileNum := p.vram[mapBase+(y/8)*32+wx/8]
		ci := p.tilePixel(tileNum, wx%8, y%8)
		index[x] = ci
		p.frame[line][x] = shade(p.bgp, ci)
	}
}

// sprite describes one OAM entry selected for the current scanline.
type sprite struct {
	oamIndex int
	y        int // top edge on screen, may be negative
	x        int // left edge on screen, may be negative
	tile     uint8
	attr     uint8
}

func (p *PPU) renderSprites(line int, index *[Width]uint8) {
	if p.lcdc&lcdcSpriteEnable != lcdcSpriteEnable {
		return
	}

	height := 8
	if p.lcdc&lcdcSpriteSize == lcdcSpriteSize {
		height = 16
	}

	// OAM search: the first ten sprites covering this scanline, in OAM
	// order. sprites beyond the tenth do not appear even if earlier
	// selections are offscreen horizontally
	var selected []sprite
	for i := 0; i < len(p.oam)/4 && len(selected) < maxSpritesPerLine; i++ {
		s := sprite{
			oamIndex: i,
			y:        int(p.oam[i*4]) - 16,
			x:        int(p.oam[i*4+1]) - 8,
			tile:     p.oam[i*4+2],
			attr:     p.oam[i*4+3],
		}
		if line >= s.y && line < s.y+height {
			selected = append(selected, s)
		}
	}

	// drawing priority: the sprite with the smaller X coordinate wins a
	// pixel; ties go to the earlier OAM entry. sorting is stable so the
	// OAM order settles ties
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].x < selected[j].x
	})

	// a pixel claimed by one sprite is no longer available to any sprite
	// behind it, even when the claimant defers to the background
	var claimed [Width]bool

	for _, s := range selected {
		ty := line - s.y
		if s.attr&sprFlipY == sprFlipY {
			ty = height - 1 - ty
		}

		tile := s.tile
		if height == 16 {
			// tall sprites ignore the low bit of the tile number
			tile &= 0xfe
			if ty >= 8 {
				tile++
				ty -= 8
			}
		}

		palette := p.obp0
		if s.attr&sprPalette == sprPalette {
			palette = p.obp1
		}

		for tx := 0; tx < 8; tx++ {
			x := s.x + tx
			if x < 0 || x >= Width {
				continue
			}
			if claimed[x] {
				continue
			}

			px := tx
			if s.attr&sprFlipX == sprFlipX {
				px = 7 - px
			}

			ci := p.spritePixel(tile, px, ty)
			if ci == 0 {
				// colour zero is transparent for sprites
				continue
			}

			claimed[x] = true
			if s.attr&sprBehindBG == sprBehindBG && index[x] != 0 {
				continue
			}
			p.frame[line][x] = shade(palette, ci)
		}
	}
}

func logRendererError(err error) {
	logger.Logf("ppu", "renderer: %v", err)
}
