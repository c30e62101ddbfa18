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

// Package serial implements the serial port registers, SB and SC.
//
// There is no link cable on the other end of this serial port. A requested
// transfer is never completed: the transfer-start bit stays set, no serial
// interrupt is raised and the program eventually gives up waiting. This is
// deliberate. Completing transfers with a disconnected-cable value confuses
// programs that probe for a second machine, while leaving the request
// hanging matches what they expect from an unconnected port.
//
// The byte that a program placed in SB when it requested a transfer is
// still useful. Test programs print their results through the serial port,
// so every requested byte is captured to an output buffer that the host can
// drain with Output().
package serial

import (
	"strings"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// transferStart is the transfer request bit of the SC register.
const transferStart = 0x80

// Serial implements the SB/SC register pair.
type Serial struct {
	irq *interrupts.Interrupts

	sb uint8
	sc uint8

	output strings.Builder
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial(irq *interrupts.Interrupts) *Serial {
	ser := &Serial{irq: irq}
	ser.Reset()
	return ser
}

// Reset the serial port to its post-boot state. The captured output buffer
// is also cleared.
func (ser *Serial) Reset() {
	ser.sb = 0
	ser.sc = 0
	ser.output.Reset()
}

// ReadPort implements the bus.Port interface.
func (ser *Serial) ReadPort(address uint16) uint8 {
	switch address {
	case addresses.SB:
		return ser.sb
	case addresses.SC:
		// undefined bits read as 1
		return ser.sc | 0x7e
	}
	return 0xff
}

// WritePort implements the bus.Port interface. Setting the transfer-start
// bit of SC captures the current SB value but does not complete a transfer.
func (ser *Serial) WritePort(address uint16, data uint8) {
	switch address {
	case addresses.SB:
		ser.sb = data
	case addresses.SC:
		// only the transfer-start and clock-select bits are backed by
		// hardware
		ser.sc = data & 0x81

		if data&transferStart == transferStart {
			ser.output.WriteByte(ser.sb)
		}
	}
}

// Output returns everything written to the serial port so far.
func (ser *Serial) Output() string {
	return ser.output.String()
}
