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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/gui/sdlplay"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/logger"
)

// Sentinal and general errors for the playmode package.
const (
	PlayError = "playmode: %v"
)

// Play the supplied cartridge in an SDL window until the window is closed
// or the process is interrupted.
//
// MUST ONLY be called from the goroutine that will service the SDL window.
// In practice that means the main goroutine, locked to the main thread.
func Play(cartload cartridgeloader.Loader, scale float32, fpsCap bool) error {
	dmg := hardware.NewDMG()

	scr, err := sdlplay.NewSdlPlay(dmg.Joypad, scale)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer scr.Destroy()

	scr.SetFPSCap(fpsCap)
	dmg.PPU.AddPixelRenderer(scr)

	err = dmg.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	err = loadSaveRAM(dmg)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	scr.ShowWindow()

	// ctrl-c also ends the session. the save RAM store below must run in
	// that case too, so the signal is handled here rather than left to the
	// runtime default
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	err = dmg.Run(func() (bool, error) {
		if scr.Quit() {
			return false, nil
		}
		select {
		case <-intChan:
			return false, nil
		default:
		}
		return true, nil
	})
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	err = storeSaveRAM(dmg)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	logger.Log("playmode", "session ended")

	return nil
}
