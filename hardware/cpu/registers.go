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

package cpu

// flag bits of the F register. the low four bits of F do not exist in
// silicon and always read as zero.
const (
	flagZ = uint8(0x80)
	flagN = uint8(0x40)
	flagH = uint8(0x20)
	flagC = uint8(0x10)

	flagMask = uint8(0xf0)
)

func (mc *CPU) flag(flag uint8) bool {
	return mc.F&flag == flag
}

func (mc *CPU) setFlag(flag uint8, on bool) {
	if on {
		mc.F |= flag
	} else {
		mc.F &^= flag
	}
}

// the eight bit registers pair up into four sixteen bit registers.

func (mc *CPU) af() uint16 {
	return uint16(mc.A)<<8 | uint16(mc.F)
}

func (mc *CPU) setAF(v uint16) {
	mc.A = uint8(v >> 8)
	mc.F = uint8(v) & flagMask
}

func (mc *CPU) bc() uint16 {
	return uint16(mc.B)<<8 | uint16(mc.C)
}

func (mc *CPU) setBC(v uint16) {
	mc.B = uint8(v >> 8)
	mc.C = uint8(v)
}

func (mc *CPU) de() uint16 {
	return uint16(mc.D)<<8 | uint16(mc.E)
}

func (mc *CPU) setDE(v uint16) {
	mc.D = uint8(v >> 8)
	mc.E = uint8(v)
}

func (mc *CPU) hl() uint16 {
	return uint16(mc.H)<<8 | uint16(mc.L)
}

func (mc *CPU) setHL(v uint16) {
	mc.H = uint8(v >> 8)
	mc.L = uint8(v)
}

// reg8 reads the register selected by the three bit field of a regularly
// encoded opcode. index six is the memory location addressed by HL.
func (mc *CPU) reg8(idx uint8) uint8 {
	switch idx & 0x07 {
	case 0:
		return mc.B
	case 1:
		return mc.C
	case 2:
		return mc.D
	case 3:
		return mc.E
	case 4:
		return mc.H
	case 5:
		return mc.L
	case 6:
		return mc.mem.Read(mc.hl())
	}
	return mc.A
}

// setReg8 writes the register selected by the three bit field of a
// regularly encoded opcode.
func (mc *CPU) setReg8(idx uint8, v uint8) {
	switch idx & 0x07 {
	case 0:
		mc.B = v
	case 1:
		mc.C = v
	case 2:
		mc.D = v
	case 3:
		mc.E = v
	case 4:
		mc.H = v
	case 5:
		mc.L = v
	case 6:
		mc.mem.Write(mc.hl(), v)
	case 7:
		mc.A = v
	}
}
