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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
)

// Error patterns originating from this package. These make up the load-time
// error taxonomy: a failed Attach() never leaves a partially attached
// cartridge behind.
const (
	NotACartridge     = "cartridge: not a cartridge (%s)"
	ChecksumError     = "cartridge: %s: header checksum mismatch"
	UnsupportedMapper = "cartridge: %s: unsupported mapper type (%#02x)"
	RAMSizeError      = "cartridge: %s: RAM data is wrong size (%d bytes, expected %d)"
)

// header field offsets. the header occupies 0x0100 to 0x014f of the ROM.
const (
	titleStart     = 0x0134
	titleEnd       = 0x0143
	mapperTypeAddr = 0x0147
	romSizeAddr    = 0x0148
	ramSizeAddr    = 0x0149
	checksumAddr   = 0x014d

	// the range the header checksum is computed over
	checksumStart = 0x0134
	checksumEnd   = 0x014c

	// the smallest data that can contain a header
	minimumSize = 0x0150
)

// Cartridge defines the information and operations for a DMG cartridge.
type Cartridge struct {
	Filename string
	Hash     string

	// information from the validated header
	title      string
	mapperType uint8
	battery    bool

	// the specific cartridge data, mapped appropriately through the mapper
	// for the declared type
	mapper cartMapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart Cartridge) String() string {
	return fmt.Sprintf("%s [%s] banks=%d", cart.title, cart.mapper.id(), cart.mapper.numBanks())
}

// Title returns the cartridge title from the header, trimmed of padding.
func (cart Cartridge) Title() string {
	return cart.title
}

// ID returns the identifier of the mapper the cartridge is using.
func (cart Cartridge) ID() string {
	return cart.mapper.id()
}

// NumBanks returns the number of ROM banks in the cartridge.
func (cart Cartridge) NumBanks() int {
	return cart.mapper.numBanks()
}

// HasBattery returns true if the header declares battery-backed RAM. The
// host should persist the RAM() snapshot for such cartridges.
func (cart Cartridge) HasBattery() bool {
	return cart.battery
}

// Eject removes the cartridge. Unlike the real hardware an "ejected"
// cartridge is still readable, returning the value of undriven bus pins.
func (cart *Cartridge) Eject() {
	cart.Filename = "ejected"
	cart.Hash = ""
	cart.title = "ejected"
	cart.mapperType = 0
	cart.battery = false
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(*ejected)
	return ok
}

// Read the cartridge at the specified address. Addresses in both cartridge
// windows (ROM 0x0000-0x7fff and RAM 0xa000-0xbfff) are serviced.
func (cart *Cartridge) Read(addr uint16) uint8 {
	return cart.mapper.read(addr)
}

// Write to the cartridge at the specified address. Writes to the ROM window
// are interpreted as mapper control; writes to the RAM window land in
// cartridge RAM if it is present and enabled.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	cart.mapper.write(addr, data)
}

// Reset the cartridge's volatile state: bank selections, RAM enable flags.
// Cartridge RAM content is preserved, as it would be on a battery-backed
// cartridge.
func (cart *Cartridge) Reset() {
	cart.mapper.reset()
}

// RAM returns a copy of the cartridge RAM. The returned slice is sized per
// the RAM-size header field; it is empty if the cartridge has no RAM.
func (cart *Cartridge) RAM() []uint8 {
	r := cart.mapper.ram()
	c := make([]uint8, len(r))
	copy(c, r)
	return c
}

// SetRAM seeds the cartridge RAM, for example with the content of a battery
// save file. The data must be exactly the size declared by the header.
func (cart *Cartridge) SetRAM(data []uint8) error {
	r := cart.mapper.ram()
	if len(data) != len(r) {
		return curated.Errorf(RAMSizeError, cart.ShortName(), len(data), len(r))
	}
	copy(r, data)
	return nil
}

// ShortName returns a shortened version of the cartridge filename.
func (cart Cartridge) ShortName() string {
	return cartridgeloader.Loader{Filename: cart.Filename}.ShortName()
}

// Attach the cartridge loader data to the cartridge. The header is
// validated before any state changes; an error means the previously
// attached cartridge (or the ejected state) is untouched.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	data := cartload.Data
	shortName := cartload.ShortName()

	if len(data) < minimumSize {
		return curated.Errorf(NotACartridge, shortName)
	}

	// validate header checksum. the checksum algorithm is fixed by the boot
	// program: x = x - rom[i] - 1 over the header range
	var sum uint8
	for i := checksumStart; i <= checksumEnd; i++ {
		sum = sum - data[i] - 1
	}
	if sum != data[checksumAddr] {
		return curated.Errorf(ChecksumError, shortName)
	}

	mapperType := data[mapperTypeAddr]

	var mapper cartMapper
	var battery bool

	switch mapperType {
	case 0x00, 0x08:
		mapper = newROM(data)
	case 0x09:
		mapper = newROM(data)
		battery = true
	case 0x01, 0x02:
		mapper = newMBC1(data)
	case 0x03:
		mapper = newMBC1(data)
		battery = true
	case 0x11, 0x12:
		mapper = newMBC3(data)
	case 0x0f, 0x10, 0x13:
		mapper = newMBC3(data)
		battery = true
	default:
		return curated.Errorf(UnsupportedMapper, shortName, mapperType)
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.mapperType = mapperType
	cart.battery = battery
	cart.mapper = mapper

	// title is null padded. some late cartridges use the tail of the title
	// field for other purposes so also stop at the first unprintable byte
	title := data[titleStart : titleEnd+1]
	end := len(title)
	for i, b := range title {
		if b == 0x00 || b < 0x20 || b > 0x7e {
			end = i
			break
		}
	}
	cart.title = strings.TrimSpace(string(title[:end]))

	logger.Logf("cartridge", "%s attached (%s)", cart.String(), cart.Hash)

	return nil
}
