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

// Package sdlplay is an SDL implementation of the ppu.PixelRenderer
// interface: a window displaying the emulated screen, with the keyboard
// mapped to the joypad.
//
// SDL is not goroutine safe so the window must be created and serviced
// from the same goroutine that runs the machine, which for this emulation
// is the natural arrangement anyway. Service() runs as part of NewFrame()
// so a machine with an SdlPlay registered needs no separate event loop.
package sdlplay

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/clocks"
	"github.com/jetsetilly/gopherboy/hardware/joypad"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
)

// sentinal error messages returned by the sdlplay package.
const (
	SDL = "sdlplay: %v"
)

const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the ppu.PixelRenderer
// interface.
type SdlPlay struct {
	joy *joypad.Joypad

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// to the renderer
	pixels []byte

	// frame rate cap. when enabled, NewFrame() sleeps away whatever is
	// left of the frame's time slot
	fpsCap    bool
	frameSlot time.Duration
	lastFrame time.Time

	// the user has asked to close the window
	quit bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type. The returned window is hidden until ShowWindow() is called.
func NewSdlPlay(joy *joypad.Joypad, scale float32) (*SdlPlay, error) {
	// computed as a variable rather than in the composite literal because
	// the constant expression is not representable as a time.Duration
	frameSlot := float64(time.Second) / float64(clocks.FramesPerSecond)

	scr := &SdlPlay{
		joy:       joy,
		fpsCap:    true,
		frameSlot: time.Duration(frameSlot),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.window, err = sdl.CreateWindow("Gopherboy",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(ppu.Width)*scale), int32(float32(ppu.Height)*scale),
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// texture is the same size as the screen. the renderer scales it to
	// fit the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), ppu.Width, ppu.Height)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.pixels = make([]byte, ppu.Width*ppu.Height*pixelDepth)

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	setupService()

	return scr, nil
}

// ShowWindow makes the window visible.
func (scr *SdlPlay) ShowWindow() {
	scr.window.Show()
	scr.lastFrame = time.Now()
}

// Destroy releases the SDL resources held by the window.
func (scr *SdlPlay) Destroy() {
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}

// SetFPSCap turns frame rate limiting on or off. With the cap off the
// window shows frames as fast as the machine produces them.
func (scr *SdlPlay) SetFPSCap(enable bool) {
	scr.fpsCap = enable
}

// Quit returns true once the user has asked to close the window.
func (scr *SdlPlay) Quit() bool {
	return scr.quit
}

// NewFrame implements the ppu.PixelRenderer interface. As well as
// displaying the frame, the call services pending window and keyboard
// events and paces the emulation to the frame rate of the real hardware.
func (scr *SdlPlay) NewFrame(frameNum int, frame *ppu.Frame) error {
	i := 0
	for y := 0; y < ppu.Height; y++ {
		for x := 0; x < ppu.Width; x++ {
			col := ppu.Palette[frame[y][x]&0x03]
			scr.pixels[i] = col.R
			scr.pixels[i+1] = col.G
			scr.pixels[i+2] = col.B
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, ppu.Width*pixelDepth)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	scr.renderer.Present()

	scr.Service()

	if scr.fpsCap {
		elapsed := time.Since(scr.lastFrame)
		if elapsed < scr.frameSlot {
			time.Sleep(scr.frameSlot - elapsed)
		}
		scr.lastFrame = time.Now()
	}

	return nil
}
