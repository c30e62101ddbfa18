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

// Package timer implements the programmable timer of the DMG: the
// free-running divider (DIV) and the TIMA/TMA/TAC counter group.
package timer

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// Interval indicates how often (in master clock cycles) the TIMA register
// increases. The interval in use is selected by the low two bits of the TAC
// register.
type Interval int

// List of valid Interval values.
const (
	TIM1024 Interval = 1024
	TIM16   Interval = 16
	TIM64   Interval = 64
	TIM256  Interval = 256
)

func (in Interval) String() string {
	switch in {
	case TIM1024:
		return "4096Hz"
	case TIM16:
		return "262144Hz"
	case TIM64:
		return "65536Hz"
	case TIM256:
		return "16384Hz"
	}
	panic("unknown timer interval")
}

// interval returns the Interval selected by a TAC value.
func interval(tac uint8) Interval {
	switch tac & 0x03 {
	case 0:
		return TIM1024
	case 1:
		return TIM16
	case 2:
		return TIM64
	}
	return TIM256
}

// tacEnable is the timer enable bit of the TAC register. The divider runs
// regardless of this bit; only TIMA is gated by it.
const tacEnable = 0x04

// Timer implements the DIV/TIMA/TMA/TAC register group.
type Timer struct {
	irq *interrupts.Interrupts

	// the divider is a free-running 16-bit counter incremented every cycle.
	// the DIV register is its upper byte
	divider uint16

	// the user visible counter, its reload value and the control register.
	// only the low three bits of TAC are backed by hardware
	tima uint8
	tma  uint8
	tac  uint8

	// cycles accumulated towards the next TIMA increment. only advances
	// while the enable bit is set
	accumulator int
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(irq *interrupts.Interrupts) *Timer {
	tmr := &Timer{irq: irq}
	tmr.Reset()
	return tmr
}

// Reset the timer to its post-boot state.
func (tmr *Timer) Reset() {
	tmr.divider = 0
	tmr.tima = 0
	tmr.tma = 0
	tmr.tac = 0
	tmr.accumulator = 0
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%#02x TIMA=%#02x TMA=%#02x intv=%s enabled=%v",
		uint8(tmr.divider>>8), tmr.tima, tmr.tma,
		interval(tmr.tac), tmr.tac&tacEnable == tacEnable,
	)
}

// Step advances the timer by the number of elapsed master clock cycles.
//
// The divider always advances. TIMA advances only when the enable bit of TAC
// is set and only at the selected interval. On overflow TIMA reloads from
// TMA and the timer interrupt is raised before Step returns; the request is
// never deferred to a later call.
func (tmr *Timer) Step(cycles int) {
	tmr.divider += uint16(cycles)

	if tmr.tac&tacEnable != tacEnable {
		return
	}

	tmr.accumulator += cycles
	threshold := int(interval(tmr.tac))

	for tmr.accumulator >= threshold {
		tmr.accumulator -= threshold
		tmr.tima++
		if tmr.tima == 0 {
			tmr.tima = tmr.tma
			tmr.irq.Raise(interrupts.Timer)
		}
	}
}

// ReadPort implements the bus.Port interface.
func (tmr *Timer) ReadPort(address uint16) uint8 {
	switch address {
	case addresses.DIV:
		return uint8(tmr.divider >> 8)
	case addresses.TIMA:
		return tmr.tima
	case addresses.TMA:
		return tmr.tma
	case addresses.TAC:
		// undefined bits read as 1
		return tmr.tac | 0xf8
	}
	return 0xff
}

// WritePort implements the bus.Port interface. Writing any value to the DIV
// register resets the whole divider, including the cycles accumulated
// towards the next TIMA increment.
func (tmr *Timer) WritePort(address uint16, data uint8) {
	switch address {
	case addresses.DIV:
		tmr.divider = 0
		tmr.accumulator = 0
	case addresses.TIMA:
		tmr.tima = data
	case addresses.TMA:
		tmr.tma = data
	case addresses.TAC:
		tmr.tac = data & 0x07
	}
}
