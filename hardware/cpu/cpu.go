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

// Package cpu implements the SM83, the 8-bit processor of the DMG. The
// processor talks to the rest of the machine over the bus.CPUBus interface
// and to the interrupt controller directly.
//
// Step() executes one instruction, or dispatches one interrupt, and
// reports how many master clock cycles it consumed. The hardware package
// uses that count to advance the other components by the same amount,
// which is what keeps the whole machine cycle accurate.
package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/bus"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/hardware/interrupts"
)

// Sentinal error messages returned by the CPU.
const (
	UndefinedOpcode = "cpu: undefined opcode (%#02x) at (%#04x)"
	KilledCPU       = "cpu: cpu is killed and must be reset"
)

// number of cycles consumed by an interrupt dispatch and by an idle halted
// step.
const (
	dispatchCycles = 20
	haltCycles     = 4
)

// CPU implements the SM83 processor.
type CPU struct {
	A uint8
	F uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	SP uint16
	PC uint16

	mem bus.CPUBus
	irq *interrupts.Interrupts

	// the master interrupt enable flag. imeDelay records that EI has been
	// executed and that the flag turns on one instruction late
	ime      bool
	imeDelay bool

	// HALT stops the processor until an interrupt is requested. the halt
	// bug suppresses one PC increment when HALT is executed with the
	// master enable off and an interrupt already pending
	halted  bool
	haltBug bool

	// Killed is true if the processor has executed an undefined opcode.
	// The processor stays killed until the next Reset()
	Killed bool

	// total number of cycles the processor has consumed
	cycles uint64

	// the most recently executed instruction
	LastDefinition *instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem bus.CPUBus, irq *interrupts.Interrupts) *CPU {
	mc := &CPU{mem: mem, irq: irq}
	mc.Reset()
	return mc
}

// Reset the processor to its post-boot state. The register values are the
// ones the boot program leaves behind.
func (mc *CPU) Reset() {
	mc.setAF(0x01b0)
	mc.setBC(0x0013)
	mc.setDE(0x00d8)
	mc.setHL(0x014d)
	mc.SP = 0xfffe
	mc.PC = 0x0100
	mc.ime = true
	mc.imeDelay = false
	mc.halted = false
	mc.haltBug = false
	mc.Killed = false
	mc.cycles = 0
	mc.LastDefinition = nil
}

func (mc *CPU) String() string {
	return fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x SP=%04x PC=%04x",
		mc.af(), mc.bc(), mc.de(), mc.hl(), mc.SP, mc.PC)
}

// Halted returns true while the processor is stopped waiting for an
// interrupt request.
func (mc *CPU) Halted() bool {
	return mc.halted
}

// IME returns the state of the master interrupt enable flag.
func (mc *CPU) IME() bool {
	return mc.ime
}

// Cycles returns the total number of cycles the processor has consumed.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// Step executes one instruction and returns the number of master clock
// cycles it consumed. If an interrupt is pending and the master enable
// flag is on, the step dispatches the interrupt instead of executing an
// instruction.
//
// An undefined opcode kills the processor. The step that encounters it
// returns an error satisfying curated.Is(err, cpu.UndefinedOpcode);
// subsequent steps fail immediately.
func (mc *CPU) Step() (int, error) {
	if mc.Killed {
		return 0, curated.Errorf(KilledCPU)
	}

	// the delayed effect of EI is applied after the next instruction has
	// executed, so note it before anything else happens this step. the
	// instruction in the delay slot can itself cancel the delayed enable
	// (a DI immediately after EI leaves the master flag off)
	wasDelay := mc.imeDelay

	// interrupt dispatch happens between instructions, before the fetch.
	// a pending request wakes a halted processor whatever the state of
	// the master enable flag
	if mc.irq.Pending() {
		mc.halted = false
		if mc.ime {
			src, _ := mc.irq.Next()
			mc.ime = false
			mc.imeDelay = false
			mc.irq.Acknowledge(src)
			mc.push(mc.PC)
			mc.PC = src.Vector()
			mc.cycles += dispatchCycles
			return dispatchCycles, nil
		}
	}

	if mc.halted {
		mc.cycles += haltCycles
		return haltCycles, nil
	}

	opcode := mc.mem.Read(mc.PC)
	def := instructions.Definitions[opcode]
	if def == nil {
		mc.Killed = true
		return 0, curated.Errorf(UndefinedOpcode, opcode, mc.PC)
	}

	// operands are fetched relative to the current PC, before the PC
	// advances
	var op8 uint8
	var op16 uint16
	switch def.Bytes {
	case 2:
		op8 = mc.mem.Read(mc.PC + 1)
	case 3:
		op16 = uint16(mc.mem.Read(mc.PC+1)) | uint16(mc.mem.Read(mc.PC+2))<<8
	}

	// the halt bug: the PC fails to advance for one instruction, so the
	// byte after HALT is fetched twice
	if mc.haltBug {
		mc.haltBug = false
	} else {
		mc.PC += uint16(def.Bytes)
	}

	cycles := def.Cycles
	if opcode == 0xcb {
		def = instructions.DefinitionsCB[op8]
		mc.executeCB(op8)
		cycles = def.Cycles
	} else {
		taken := mc.execute(opcode, op8, op16)
		if def.IsConditional() && !taken {
			cycles = def.CyclesNotTaken
		}
	}
	mc.LastDefinition = def

	if wasDelay && mc.imeDelay {
		mc.ime = true
		mc.imeDelay = false
	}

	mc.cycles += uint64(cycles)
	return cycles, nil
}

// push a sixteen bit value onto the stack, high byte first.
func (mc *CPU) push(v uint16) {
	mc.SP--
	mc.mem.Write(mc.SP, uint8(v>>8))
	mc.SP--
	mc.mem.Write(mc.SP, uint8(v))
}

// pop a sixteen bit value from the stack.
func (mc *CPU) pop() uint16 {
	lo := mc.mem.Read(mc.SP)
	mc.SP++
	hi := mc.mem.Read(mc.SP)
	mc.SP++
	return uint16(hi)<<8 | uint16(lo)
}
