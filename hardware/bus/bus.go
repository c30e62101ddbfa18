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

// Package bus defines the memory interfaces used between the components of
// the hardware package.
//
// The CPU addresses memory through the CPUBus interface. The memory package
// implements CPUBus and resolves every address to either its own passive
// storage (working RAM, high RAM), the cartridge, or an addressable port on
// one of the active components.
//
// A Port is a block of registers owned by a component. Ports receive the
// full, unadjusted bus address. Reads of an address the port does not
// recognise return 0xff, matching the behaviour of unmapped hardware.
package bus

// CPUBus is the memory as seen by the CPU (and by the OAM DMA unit). Reads
// and writes never fail; addresses that map to nothing behave as the
// hardware does, returning a fixed value and swallowing writes.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Port is implemented by components that expose registers on the bus: the
// PPU, the timer, the serial port, the joypad and the interrupt controller.
type Port interface {
	ReadPort(address uint16) uint8
	WritePort(address uint16, data uint8)
}
