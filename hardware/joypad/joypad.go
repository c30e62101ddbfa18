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

// Package joypad implements the button input latch of the DMG. The eight
// buttons are arranged as two four-bit groups, direction keys and action
// keys. The JOYP register selects which group is visible on the read port.
//
// The hardware convention is inverted: a bit reads 0 when the button is
// pressed and a group is selected by writing 0 to its select bit.
//
// The host updates button state with the Set() function, between calls to
// the machine's Step() function. A press of a button in the currently
// selected group raises the joypad interrupt.
package joypad

import (
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// Button identifies a single button on the joypad.
type Button int

// The eight buttons. The order within each group of four is the bit
// position on the read port.
const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
	NumButtons
)

func (b Button) String() string {
	switch b {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	case A:
		return "a"
	case B:
		return "b"
	case Select:
		return "select"
	case Start:
		return "start"
	}
	panic("unknown button")
}

// group select bits of the JOYP register. selection is active-low.
const (
	selectDirections = 0x10
	selectActions    = 0x20
)

// Joypad implements the button input latch.
type Joypad struct {
	irq *interrupts.Interrupts

	// current button state, true meaning pressed. indexed by Button
	buttons [NumButtons]bool

	// the JOYP register. bits 6-7 always read as 1
	register uint8
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad(irq *interrupts.Interrupts) *Joypad {
	joy := &Joypad{irq: irq}
	joy.Reset()
	return joy
}

// Reset the joypad to its post-boot state: nothing pressed, both groups
// deselected.
func (joy *Joypad) Reset() {
	for b := range joy.buttons {
		joy.buttons[b] = false
	}
	joy.register = 0xcf
	joy.update()
}

// Set the state of a single button. A transition from released to pressed
// raises the joypad interrupt if the button's group is currently selected.
func (joy *Joypad) Set(button Button, pressed bool) {
	if pressed && !joy.buttons[button] {
		direction := button <= Down
		if direction && joy.register&selectDirections == 0 {
			joy.irq.Raise(interrupts.Joypad)
		} else if !direction && joy.register&selectActions == 0 {
			joy.irq.Raise(interrupts.Joypad)
		}
	}
	joy.buttons[button] = pressed
	joy.update()
}

// update recomputes the low nibble of the JOYP register from the current
// button state and group selection.
func (joy *Joypad) update() {
	v := joy.register&0x30 | 0xc0
	low := uint8(0x0f)

	if joy.register&selectDirections == 0 {
		for b := Right; b <= Down; b++ {
			if joy.buttons[b] {
				low &^= 1 << uint(b)
			}
		}
	}
	if joy.register&selectActions == 0 {
		for b := A; b <= Start; b++ {
			if joy.buttons[b] {
				low &^= 1 << uint(b-A)
			}
		}
	}

	joy.register = v | low
}

// ReadPort implements the bus.Port interface.
func (joy *Joypad) ReadPort(address uint16) uint8 {
	if address != addresses.JOYP {
		return 0xff
	}
	return joy.register
}

// WritePort implements the bus.Port interface. Only the group select bits
// are writable.
func (joy *Joypad) WritePort(address uint16, data uint8) {
	if address != addresses.JOYP {
		return
	}
	joy.register = joy.register&0xc0 | data&0x30
	joy.update()
}
