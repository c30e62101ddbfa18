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

package joypad_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/joypad"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/test"
)

func TestInitialState(t *testing.T) {
	irq := interrupts.NewInterrupts()
	joy := joypad.NewJoypad(irq)
	test.Equate(t, joy.ReadPort(addresses.JOYP), 0xcf)
}

func TestDirectionKeys(t *testing.T) {
	irq := interrupts.NewInterrupts()
	joy := joypad.NewJoypad(irq)

	// select direction keys. pressed buttons read as 0
	joy.WritePort(addresses.JOYP, 0x10)
	test.Equate(t, joy.ReadPort(addresses.JOYP)&0x0f, 0x0f)

	joy.Set(joypad.Right, true)
	test.Equate(t, joy.ReadPort(addresses.JOYP)&0x0f, 0x0e)

	joy.Set(joypad.Left, true)
	test.Equate(t, joy.ReadPort(addresses.JOYP)&0x0f, 0x0c)

	joy.Set(joypad.Up, true)
	joy.Set(joypad.Down, true)
	test.Equate(t, joy.ReadPort(addresses.JOYP)&0x0f, 0x00)

	joy.Set(joypad.Right, false)
	test.Equate(t, joy.ReadPort(addresses.JOYP)&0x0f, 0x01)
}

func TestActionKeys(t *testing.T) {
	irq := interrupts.NewInterrupts()
	joy := joypad.NewJoypad(irq)

	joy.WritePort(addresses.JOYP, 0x20)
	test.Equate(t, joy.ReadPort(addresses.JOYP)&0x0f, 0x0f)

	joy.Set(joypad.A, true)
	test.Equate(t, joy.ReadPort(addresses.JOYP)&0x0f, 0x0e)

	joy.Set(joypad.Start, true)
	test.Equate(t, joy.ReadPort(addresses.JOYP)&0x0f, 0x06)
}

func TestNoGroupSelected(t *testing.T) {
	irq := interrupts.NewInterrupts()
	joy := joypad.NewJoypad(irq)

	// deselecting both groups exposes nothing on the read port
	joy.WritePort(addresses.JOYP, 0x30)
	joy.Set(joypad.A, true)
	joy.Set(joypad.Down, true)
	test.Equate(t, joy.ReadPort(addresses.JOYP)&0x0f, 0x0f)
}

func TestInterruptOnSelectedGroup(t *testing.T) {
	irq := interrupts.NewInterrupts()
	irq.Request = 0x00
	joy := joypad.NewJoypad(irq)

	// press in a deselected group does not raise the interrupt
	joy.WritePort(addresses.JOYP, 0x30)
	joy.Set(joypad.A, true)
	test.Equate(t, irq.Request, 0x00)

	// press in the selected group raises the interrupt
	joy.Set(joypad.A, false)
	joy.WritePort(addresses.JOYP, 0x10)
	joy.Set(joypad.Down, true)
	test.Equate(t, irq.Request&(1<<uint(interrupts.Joypad)) != 0, true)

	// a held button does not raise the interrupt again
	irq.Request = 0x00
	joy.Set(joypad.Down, true)
	test.Equate(t, irq.Request, 0x00)
}
