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

// Package cartridgeloader is used to specify the cartridge ROM to load into
// the emulated machine. The Loader value carries the raw ROM bytes and a
// hash of those bytes; interpretation of the bytes (header validation,
// mapper selection) is the responsibility of the cartridge package.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
)

// Error patterns originating from this package.
const (
	LoadError = "cartridgeloader: %v"
	HashError = "cartridgeloader: %s: hash does not match expected value"
)

// recognised file extensions for cartridge dumps. files with other
// extensions load anyway but a note is made in the log.
var fileExtensions = []string{".gb", ".dmg", ".bin", ".rom"}

// Loader is used to specify the cartridge to attach to the machine.
type Loader struct {
	// filename of the cartridge. for Loaders created from a byte slice this
	// is just a name for logging purposes
	Filename string

	// expected hash of the loaded data. an empty string means the hash need
	// not be validated. after a successful Load() it holds the hash of the
	// loaded data
	Hash string

	// the loaded data. subsequent calls to Load() leave it untouched
	Data []byte
}

// NewLoader is the preferred method of initialisation when loading from a
// file. The file is not read until Load() is called.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// NewLoaderFromData is the preferred method of initialisation when the ROM
// bytes are already in memory. The name argument is only used for
// identification in logs and error messages.
func NewLoaderFromData(name string, data []byte) Loader {
	return Loader{Filename: name, Data: data}
}

// ShortName returns a shortened version of the loader's filename, suitable
// for window titles and log tags.
func (cl Loader) ShortName() string {
	sn := filepath.Base(cl.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}

// Load the cartridge data and verify the hash. Idempotent for Loaders
// created with NewLoaderFromData().
func (cl *Loader) Load() error {
	if cl.Data == nil {
		ext := strings.ToLower(filepath.Ext(cl.Filename))
		recognised := false
		for _, e := range fileExtensions {
			if ext == e {
				recognised = true
				break
			}
		}
		if !recognised {
			logger.Logf("cartridgeloader", "unrecognised file extension for %s", cl.Filename)
		}

		data, err := os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		cl.Data = data
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(HashError, cl.ShortName())
	}
	cl.Hash = hash

	return nil
}
