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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherboy/hardware/joypad"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. they take
	// time to service and for no good reason; this emulation has no use
	// for the mouse at all
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// mapKey translates a keyboard event to a joypad button. The boolean
// return value is false for keys with no joypad meaning.
func mapKey(sym sdl.Keycode) (joypad.Button, bool) {
	switch sym {
	case sdl.K_RIGHT:
		return joypad.Right, true
	case sdl.K_LEFT:
		return joypad.Left, true
	case sdl.K_UP:
		return joypad.Up, true
	case sdl.K_DOWN:
		return joypad.Down, true
	case sdl.K_z:
		return joypad.A, true
	case sdl.K_x:
		return joypad.B, true
	case sdl.K_RETURN:
		return joypad.Start, true
	case sdl.K_RSHIFT, sdl.K_LSHIFT:
		return joypad.Select, true
	}
	return 0, false
}

// Service pending window and keyboard events, forwarding button presses to
// the joypad. Called from NewFrame() so a running machine services events
// once per frame.
//
// MUST ONLY be called from the goroutine that created the SdlPlay.
func (scr *SdlPlay) Service() {
	for {
		// poll with a timeout of zero. when the queue is empty we're done
		ev := sdl.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			if ev.Keysym.Sym == sdl.K_ESCAPE {
				if ev.Type == sdl.KEYDOWN {
					scr.quit = true
				}
				continue
			}

			if button, ok := mapKey(ev.Keysym.Sym); ok {
				scr.joy.Set(button, ev.Type == sdl.KEYDOWN)
			}
		}
	}
}
