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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/timer"
	"github.com/jetsetilly/gopherboy/test"
)

func TestDivider(t *testing.T) {
	irq := interrupts.NewInterrupts()
	tmr := timer.NewTimer(irq)

	// DIV is the upper byte of a 16-bit counter incremented every cycle
	tmr.Step(256)
	test.Equate(t, tmr.ReadPort(addresses.DIV), 1)
	tmr.Step(256)
	test.Equate(t, tmr.ReadPort(addresses.DIV), 2)

	// writing any value resets the divider
	tmr.WritePort(addresses.DIV, 0xff)
	test.Equate(t, tmr.ReadPort(addresses.DIV), 0)
}

func TestTimerCounter(t *testing.T) {
	irq := interrupts.NewInterrupts()
	tmr := timer.NewTimer(irq)

	// enable timer at the 16 cycle interval
	tmr.WritePort(addresses.TAC, 0x05)

	tmr.Step(16)
	test.Equate(t, tmr.ReadPort(addresses.TIMA), 1)
	tmr.Step(16)
	test.Equate(t, tmr.ReadPort(addresses.TIMA), 2)

	// a larger step accumulates several increments
	tmr.Step(64)
	test.Equate(t, tmr.ReadPort(addresses.TIMA), 6)
}

func TestTimerDisabled(t *testing.T) {
	irq := interrupts.NewInterrupts()
	tmr := timer.NewTimer(irq)

	tmr.WritePort(addresses.TAC, 0x00)
	tmr.Step(10000)
	test.Equate(t, tmr.ReadPort(addresses.TIMA), 0)

	// the divider advances regardless of the enable bit
	test.Equate(t, tmr.ReadPort(addresses.DIV), 10000>>8)
}

func TestTimerOverflow(t *testing.T) {
	irq := interrupts.NewInterrupts()
	irq.Request = 0x00
	tmr := timer.NewTimer(irq)

	tmr.WritePort(addresses.TAC, 0x05)
	tmr.WritePort(addresses.TIMA, 0xff)
	tmr.WritePort(addresses.TMA, 0x42)

	// overflow reloads from TMA and raises the interrupt on the same Step
	// call, not a subsequent one
	tmr.Step(16)
	test.Equate(t, tmr.ReadPort(addresses.TIMA), 0x42)
	test.Equate(t, irq.Request&(1<<uint(interrupts.Timer)) != 0, true)
}

func TestTACUndefinedBits(t *testing.T) {
	irq := interrupts.NewInterrupts()
	tmr := timer.NewTimer(irq)

	tmr.WritePort(addresses.TAC, 0x05)
	test.Equate(t, tmr.ReadPort(addresses.TAC), 0xfd)
}
