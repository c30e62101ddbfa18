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

// Package interrupts implements the interrupt controller of the DMG. The
// controller owns the IE and IF registers and the arbitration rules that
// decide which pending interrupt the CPU services next.
//
// Components that can raise an interrupt (the PPU, the timer, the serial
// port, the joypad) hold a reference to the one Interrupts instance and call
// Raise(). Whether a raised interrupt is ever serviced depends on the IE
// register and on the master enable flag, which is owned by the CPU and
// consulted at instruction boundaries.
package interrupts

// Source identifies one of the five interrupt sources. The numeric value of
// a Source is its bit position in the IE and IF registers and also its
// dispatch priority (lower value, higher priority).
type Source int

// The five interrupt sources in priority order.
const (
	VBlank Source = iota
	Stat
	Timer
	Serial
	Joypad
	NumSources
)

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBLANK"
	case Stat:
		return "STAT"
	case Timer:
		return "TIMER"
	case Serial:
		return "SERIAL"
	case Joypad:
		return "JOYPAD"
	}
	panic("unknown interrupt source")
}

// Vector returns the address the CPU jumps to when servicing the source.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*0x0008
}

// sourceMask covers the five defined bits of the IE and IF registers.
const sourceMask = 0x1f

// Interrupts is the interrupt controller. One instance is shared by the
// machine; it is not safe for concurrent use.
type Interrupts struct {
	// the IE register (0xffff). a request bit may be set in the IF register
	// even when the corresponding enable bit is clear
	Enable uint8

	// the IF register (0xff0f), five defined bits. the undefined upper bits
	// read as 1
	Request uint8
}

// NewInterrupts is the preferred method of initialisation for the Interrupts
// type.
func NewInterrupts() *Interrupts {
	irq := &Interrupts{}
	irq.Reset()
	return irq
}

// Reset the controller to its post-boot state. The boot program leaves the
// vblank request bit set.
func (irq *Interrupts) Reset() {
	irq.Enable = 0x00
	irq.Request = 0x01
}

// Raise sets the request bit for the source. The bit stays set until the CPU
// services the interrupt or the program clears it through the IF register.
func (irq *Interrupts) Raise(s Source) {
	irq.Request |= 1 << uint(s)
}

// Pending returns true if any source is both requested and enabled. Note
// that this says nothing about the master enable flag, which is owned by the
// CPU.
func (irq *Interrupts) Pending() bool {
	return irq.Enable&irq.Request&sourceMask != 0
}

// Next returns the highest priority source that is both requested and
// enabled. The boolean return value is false if there is no such source.
func (irq *Interrupts) Next() (Source, bool) {
	pending := irq.Enable & irq.Request & sourceMask
	if pending == 0 {
		return 0, false
	}
	for s := VBlank; s < NumSources; s++ {
		if pending&(1<<uint(s)) != 0 {
			return s, true
		}
	}
	return 0, false
}

// Acknowledge clears the request bit for the source. Called by the CPU as
// part of dispatch.
func (irq *Interrupts) Acknowledge(s Source) {
	irq.Request &^= 1 << uint(s)
}

// ReadPort implements the bus.Port interface. Address true selects the IE
// register; false the IF register.
func (irq *Interrupts) ReadPort(address uint16) uint8 {
	switch address {
	case 0xffff:
		return irq.Enable
	case 0xff0f:
		return irq.Request | ^uint8(sourceMask)
	}
	return 0xff
}

// WritePort implements the bus.Port interface.
func (irq *Interrupts) WritePort(address uint16, data uint8) {
	switch address {
	case 0xffff:
		irq.Enable = data
	case 0xff0f:
		irq.Request = data & sourceMask
	}
}
