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

// Package hardware assembles the components of the DMG into a machine: the
// SM83 processor, the memory bus, the display controller, the timer, the
// serial port, the joypad and the interrupt controller.
//
// The machine advances at instruction granularity. Step() runs one
// instruction on the processor and then advances every other component by
// the cycles the instruction consumed. StepFrame() repeats that until
// exactly one frame's worth of cycles have elapsed, carrying any overrun
// into the next frame so the aggregate rate never drifts.
package hardware

import (
	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/hardware/clocks"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
	"github.com/jetsetilly/gopherboy/hardware/joypad"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/ppu"
	"github.com/jetsetilly/gopherboy/hardware/serial"
	"github.com/jetsetilly/gopherboy/hardware/timer"
)

// DMG is the complete machine.
type DMG struct {
	IRQ    *interrupts.Interrupts
	CPU    *cpu.CPU
	Mem    *memory.Memory
	PPU    *ppu.PPU
	TMR    *timer.Timer
	SIO    *serial.Serial
	Joypad *joypad.Joypad

	// cycles executed beyond the frame boundary by the last StepFrame().
	// the next StepFrame() starts from here
	overrun int
}

// NewDMG is the preferred method of initialisation for the DMG type. The
// machine is created with no cartridge attached; reads from cartridge
// space return undriven bus values until AttachCartridge() succeeds.
func NewDMG() *DMG {
	dmg := &DMG{}

	dmg.IRQ = interrupts.NewInterrupts()
	dmg.PPU = ppu.NewPPU(dmg.IRQ)
	dmg.TMR = timer.NewTimer(dmg.IRQ)
	dmg.SIO = serial.NewSerial(dmg.IRQ)
	dmg.Joypad = joypad.NewJoypad(dmg.IRQ)
	dmg.Mem = memory.NewMemory(dmg.IRQ, cartridge.NewCartridge(),
		dmg.PPU, dmg.TMR, dmg.SIO, dmg.Joypad)
	dmg.CPU = cpu.NewCPU(dmg.Mem, dmg.IRQ)

	return dmg
}

// AttachCartridge to the machine and reset. If the attach fails the
// previously attached cartridge, if any, remains in place and the machine
// is left unreset.
func (dmg *DMG) AttachCartridge(cartload cartridgeloader.Loader) error {
	err := dmg.Mem.Cart.Attach(cartload)
	if err != nil {
		return err
	}
	dmg.Reset()
	return nil
}

// Reset the machine to its post-boot state. Cartridge RAM survives a
// reset, the same as battery backed RAM surviving a power cycle.
func (dmg *DMG) Reset() {
	dmg.IRQ.Reset()
	dmg.PPU.Reset()
	dmg.TMR.Reset()
	dmg.SIO.Reset()
	dmg.Joypad.Reset()
	dmg.Mem.Reset()
	dmg.Mem.Cart.Reset()
	dmg.CPU.Reset()
	dmg.overrun = 0
}

// Step the machine forward one instruction. Every component advances by
// the cycles the instruction consumed, so nothing in the machine can drift
// relative to the processor.
func (dmg *DMG) Step() (int, error) {
	cycles, err := dmg.CPU.Step()
	if err != nil {
		return cycles, err
	}

	dmg.TMR.Step(cycles)
	dmg.PPU.Step(cycles)
	dmg.Mem.StepDMA(cycles)

	return cycles, nil
}

// StepFrame runs the machine for one frame's worth of cycles. An
// instruction that straddles the frame boundary is not split; the overrun
// is deducted from the next call, so over any run of calls the machine
// advances at exactly one frame per call.
func (dmg *DMG) StepFrame() error {
	count := dmg.overrun
	for count < clocks.CyclesFrame {
		cycles, err := dmg.Step()
		if err != nil {
			return err
		}
		count += cycles
	}
	dmg.overrun = count - clocks.CyclesFrame
	return nil
}
