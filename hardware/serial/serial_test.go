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

package serial_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/serial"
	"github.com/jetsetilly/gopherboy/test"
)

func TestTransferNeverCompletes(t *testing.T) {
	irq := interrupts.NewInterrupts()
	irq.Request = 0x00
	ser := serial.NewSerial(irq)

	ser.WritePort(addresses.SB, 0x42)
	test.Equate(t, ser.ReadPort(addresses.SB), 0x42)

	ser.WritePort(addresses.SC, 0x81)

	// SB is unchanged, the transfer-start bit stays set and no interrupt is
	// raised. but the byte has been captured
	test.Equate(t, ser.ReadPort(addresses.SB), 0x42)
	test.Equate(t, ser.ReadPort(addresses.SC)&0x80, 0x80)
	test.Equate(t, irq.Request, 0x00)
	test.Equate(t, ser.Output(), "\x42")
}

func TestOutputCapture(t *testing.T) {
	irq := interrupts.NewInterrupts()
	ser := serial.NewSerial(irq)

	for _, b := range []byte("Passed") {
		ser.WritePort(addresses.SB, b)
		ser.WritePort(addresses.SC, 0x81)
	}
	test.Equate(t, ser.Output(), "Passed")
}

func TestUndefinedBits(t *testing.T) {
	irq := interrupts.NewInterrupts()
	ser := serial.NewSerial(irq)

	test.Equate(t, ser.ReadPort(addresses.SC), 0x7e)
	ser.WritePort(addresses.SC, 0xff)
	test.Equate(t, ser.ReadPort(addresses.SC), 0xff)
}
