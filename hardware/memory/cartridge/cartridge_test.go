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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

// buildROM assembles a ROM image with a valid header. each 16KB bank is
// filled with its own bank number so that banking tests can tell banks
// apart with a single read.
func buildROM(mapperType uint8, romSizeCode uint8, ramSizeCode uint8) []uint8 {
	banks := 2 << romSizeCode
	data := make([]uint8, banks*0x4000)
	for b := 0; b < banks; b++ {
		for i := 0; i < 0x4000; i++ {
			data[b*0x4000+i] = uint8(b)
		}
	}

	copy(data[0x0134:], []uint8("TEST"))
	for i := 0x0138; i <= 0x0143; i++ {
		data[i] = 0x00
	}
	data[0x0147] = mapperType
	data[0x0148] = romSizeCode
	data[0x0149] = ramSizeCode

	var sum uint8
	for i := 0x0134; i <= 0x014c; i++ {
		sum = sum - data[i] - 1
	}
	data[0x014d] = sum

	return data
}

func attach(t *testing.T, data []uint8) *cartridge.Cartridge {
	t.Helper()
	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridgeloader.NewLoaderFromData("test.gb", data))
	test.ExpectedSuccess(t, err)
	return cart
}

func TestHeaderParsing(t *testing.T) {
	cart := attach(t, buildROM(0x00, 0x00, 0x00))
	test.Equate(t, cart.Title(), "TEST")
	test.Equate(t, cart.ID(), "ROM")
	test.Equate(t, cart.NumBanks(), 2)
	test.Equate(t, cart.HasBattery(), false)
}

func TestChecksumRejection(t *testing.T) {
	data := buildROM(0x00, 0x00, 0x00)
	data[0x014d] ^= 0xff

	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridgeloader.NewLoaderFromData("test.gb", data))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cartridge.ChecksumError), true)

	// no partial attach
	test.Equate(t, cart.IsEjected(), true)
}

func TestUnsupportedMapper(t *testing.T) {
	data := buildROM(0xfe, 0x00, 0x00)

	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridgeloader.NewLoaderFromData("test.gb", data))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cartridge.UnsupportedMapper), true)
	test.Equate(t, cart.IsEjected(), true)
}

func TestTooSmall(t *testing.T) {
	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridgeloader.NewLoaderFromData("test.gb", make([]uint8, 0x100)))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cartridge.NotACartridge), true)
}

func TestMBC1Banking(t *testing.T) {
	// 8 banks of ROM
	cart := attach(t, buildROM(0x01, 0x02, 0x00))
	test.Equate(t, cart.NumBanks(), 8)

	// fixed window sees bank 0, switchable window defaults to bank 1
	test.Equate(t, cart.Read(0x1000), 0)
	test.Equate(t, cart.Read(0x4000), 1)

	// select bank 5
	cart.Write(0x2000, 0x05)
	test.Equate(t, cart.Read(0x4000), 5)
	test.Equate(t, cart.Read(0x7fff), 5)

	// the fixed window is unaffected
	test.Equate(t, cart.Read(0x1000), 0)

	// bank index wraps to the available banks
	cart.Write(0x2000, 0x0a)
	test.Equate(t, cart.Read(0x4000), 2)
}

func TestMBC1BankZeroAlias(t *testing.T) {
	cart := attach(t, buildROM(0x01, 0x02, 0x00))

	cart.Write(0x2000, 0x00)
	test.Equate(t, cart.Read(0x4000), 1)
}

func TestMBC1RAM(t *testing.T) {
	// 8KB of RAM
	cart := attach(t, buildROM(0x03, 0x01, 0x02))
	test.Equate(t, cart.HasBattery(), true)

	// RAM is disabled on reset
	cart.Write(0xa000, 0x42)
	test.Equate(t, cart.Read(0xa000), 0xff)

	// enable and write
	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0x42)
	test.Equate(t, cart.Read(0xa000), 0x42)

	// snapshot and reseed
	ram := cart.RAM()
	test.Equate(t, len(ram), 0x2000)
	test.Equate(t, ram[0], 0x42)

	ram[0] = 0x24
	err := cart.SetRAM(ram)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.Read(0xa000), 0x24)

	// wrong sized seed data is rejected
	err = cart.SetRAM(make([]uint8, 0x100))
	test.ExpectedFailure(t, err)
}

func TestMBC3Banking(t *testing.T) {
	// 64 banks of ROM. MBC1 could not reach bank 0x21 with a single
	// register write but MBC3's 7-bit register can
	cart := attach(t, buildROM(0x11, 0x05, 0x00))
	test.Equate(t, cart.NumBanks(), 64)

	cart.Write(0x2000, 0x21)
	test.Equate(t, cart.Read(0x4000), 0x21)

	// bank 0 aliases to bank 1
	cart.Write(0x2000, 0x00)
	test.Equate(t, cart.Read(0x4000), 1)
}

func TestResetPreservesRAM(t *testing.T) {
	cart := attach(t, buildROM(0x03, 0x01, 0x02))

	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0x99)
	cart.Reset()

	// bank selection and RAM enable reset, RAM content preserved
	test.Equate(t, cart.Read(0xa000), 0xff)
	cart.Write(0x0000, 0x0a)
	test.Equate(t, cart.Read(0xa000), 0x99)
}
