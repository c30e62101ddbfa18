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
	"fmt"
	"os"

	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/paths"
)

// the directory, relative to the resource path, where battery backed RAM
// is stored
const saveDir = "saves"

// saveFilePath returns the path of the battery backed RAM file for the
// attached cartridge.
func saveFilePath(dmg *hardware.DMG) (string, error) {
	return paths.ResourcePath(saveDir, fmt.Sprintf("%s.sav", dmg.Mem.Cart.ShortName()))
}

// loadSaveRAM seeds cartridge RAM from the save file, if the cartridge is
// battery backed and a save file exists.
func loadSaveRAM(dmg *hardware.DMG) error {
	if !dmg.Mem.Cart.HasBattery() {
		return nil
	}

	fn, err := saveFilePath(dmg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fn)
	if err != nil {
		// a missing save file is normal for a cartridge that has never
		// been played
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	err = dmg.Mem.Cart.SetRAM(data)
	if err != nil {
		return err
	}

	logger.Logf("playmode", "loaded %d bytes of save RAM from %s", len(data), fn)

	return nil
}

// storeSaveRAM writes cartridge RAM to the save file, if the cartridge is
// battery backed.
func storeSaveRAM(dmg *hardware.DMG) error {
	if !dmg.Mem.Cart.HasBattery() {
		return nil
	}

	fn, err := saveFilePath(dmg)
	if err != nil {
		return err
	}

	data := dmg.Mem.Cart.RAM()
	err = os.WriteFile(fn, data, 0600)
	if err != nil {
		return err
	}

	logger.Logf("playmode", "stored %d bytes of save RAM to %s", len(data), fn)

	return nil
}
