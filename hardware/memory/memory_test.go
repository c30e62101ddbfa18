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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/joypad"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/hardware/serial"
	"github.com/jetsetilly/gopherboy/hardware/timer"
	"github.com/jetsetilly/gopherboy/test"
)

func newMemory() *memory.Memory {
	irq := interrupts.NewInterrupts()
	return memory.NewMemory(irq,
		cartridge.NewCartridge(),
		ppu.NewPPU(irq),
		timer.NewTimer(irq),
		serial.NewSerial(irq),
		joypad.NewJoypad(irq),
	)
}

func TestMemory_wramAndEcho(t *testing.T) {
	mem := newMemory()

	mem.Write(0xc000, 0x12)
	test.Equate(t, mem.Read(0xc000), 0x12)
	test.Equate(t, mem.Read(0xe000), 0x12)

	// writes to the echo area land in working RAM
	mem.Write(0xfdff, 0x34)
	test.Equate(t, mem.Read(0xddff), 0x34)
}

func TestMemory_hram(t *testing.T) {
	mem := newMemory()
	mem.Write(0xff80, 0x56)
	test.Equate(t, mem.Read(0xff80), 0x56)
	mem.Write(0xfffe, 0x78)
	test.Equate(t, mem.Read(0xfffe), 0x78)
}

func TestMemory_unusableArea(t *testing.T) {
	mem := newMemory()
	mem.Write(0xfea0, 0x12)
	test.Equate(t, mem.Read(0xfea0), 0xff)
	test.Equate(t, mem.Read(0xfeff), 0xff)
}

func TestMemory_ejectedCartridge(t *testing.T) {
	mem := newMemory()
	test.Equate(t, mem.Read(0x0000), 0xff)
	test.Equate(t, mem.Read(0xa000), 0xff)
}

func TestMemory_portDelegation(t *testing.T) {
	mem := newMemory()

	// post-boot values of registers claimed by components
	test.Equate(t, mem.Read(0xff00), 0xcf)
	test.Equate(t, mem.Read(0xff40), 0x91)
	test.Equate(t, mem.Read(0xff47), 0xfc)
	test.Equate(t, mem.Read(0xffff), 0x00)
	test.Equate(t, mem.Read(0xff0f), 0xe1)

	// a register write lands in the owning component, not the plain
	// storage behind the IO area
	mem.Write(0xff42, 0x20)
	test.Equate(t, mem.PPU.ReadPort(0xff42), 0x20)
}

func TestMemory_unclaimedIO(t *testing.T) {
	mem := newMemory()

	// sound registers have no component. post-boot value, then plain
	// storage
	test.Equate(t, mem.Read(0xff10), 0x80)
	mem.Write(0xff10, 0x55)
	test.Equate(t, mem.Read(0xff10), 0x55)

	// boot lockout reads back as set
	test.Equate(t, mem.Read(0xff50), 0x01)
}

func TestMemory_dmaTransfer(t *testing.T) {
	mem := newMemory()

	for i := uint16(0); i < 0xa0; i++ {
		mem.Write(0xc000+i, uint8(i))
	}
	mem.Write(0xff46, 0xc0)

	// the copy is immediate but the bus is busy; OAM reads 0xff and OAM
	// writes are dropped until the busy period lapses
	test.Equate(t, mem.DMAActive(), true)
	test.Equate(t, mem.Read(0xfe00), 0xff)
	mem.Write(0xfe00, 0xaa)

	mem.StepDMA(639)
	test.Equate(t, mem.DMAActive(), true)
	mem.StepDMA(1)
	test.Equate(t, mem.DMAActive(), false)

	for i := uint16(0); i < 0xa0; i++ {
		test.Equate(t, mem.Read(0xfe00+i), int(uint8(i)))
	}
}

func TestMemory_dmaBlocksVRAM(t *testing.T) {
	mem := newMemory()

	mem.Write(0x8000, 0x11)
	mem.Write(0xff46, 0xc0)
	mem.Write(0x8000, 0x22)
	test.Equate(t, mem.Read(0x8000), 0x11)

	mem.StepDMA(640)
	mem.Write(0x8000, 0x22)
	test.Equate(t, mem.Read(0x8000), 0x22)
}
