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

// condition tests the condition field of a conditional jump, call or
// return opcode.
func (mc *CPU) condition(opcode uint8) bool {
	switch (opcode >> 3) & 0x03 {
	case 0:
		return !mc.flag(flagZ)
	case 1:
		return mc.flag(flagZ)
	case 2:
		return !mc.flag(flagC)
	}
	return mc.flag(flagC)
}

// eight bit arithmetic. results land in the accumulator.

func (mc *CPU) add(v uint8, carry bool) {
	c := uint16(0)
	if carry && mc.flag(flagC) {
		c = 1
	}
	r := uint16(mc.A) + uint16(v) + c
	mc.setFlag(flagZ, uint8(r) == 0)
	mc.setFlag(flagN, false)
	mc.setFlag(flagH, (mc.A&0x0f)+(v&0x0f)+uint8(c) > 0x0f)
	mc.setFlag(flagC, r > 0xff)
	mc.A = uint8(r)
}

func (mc *CPU) sub(v uint8, carry bool) {
	mc.A = mc.cmp(v, carry)
}

// cmp subtracts, with flags, without storing the result. SUB and SBC store
// it; CP discards it.
func (mc *CPU) cmp(v uint8, carry bool) uint8 {
	c := uint16(0)
	if carry && mc.flag(flagC) {
		c = 1
	}
	r := uint16(mc.A) - uint16(v) - c
	mc.setFlag(flagZ, uint8(r) == 0)
	mc.setFlag(flagN, true)
	mc.setFlag(flagH, uint16(mc.A&0x0f) < uint16(v&0x0f)+c)
	mc.setFlag(flagC, uint16(mc.A) < uint16(v)+c)
	return uint8(r)
}

func (mc *CPU) and(v uint8) {
	mc.A &= v
	mc.F = flagH
	mc.setFlag(flagZ, mc.A == 0)
}

func (mc *CPU) xor(v uint8) {
	mc.A ^= v
	mc.F = 0
	mc.setFlag(flagZ, mc.A == 0)
}

func (mc *CPU) or(v uint8) {
	mc.A |= v
	mc.F = 0
	mc.setFlag(flagZ, mc.A == 0)
}

// inc8 and dec8 leave the carry flag alone.

func (mc *CPU) inc8(v uint8) uint8 {
	r := v + 1
	mc.setFlag(flagZ, r == 0)
	mc.setFlag(flagN, false)
	mc.setFlag(flagH, v&0x0f == 0x0f)
	return r
}

func (mc *CPU) dec8(v uint8) uint8 {
	r := v - 1
	mc.setFlag(flagZ, r == 0)
	mc.setFlag(flagN, true)
	mc.setFlag(flagH, v&0x0f == 0x00)
	return r
}

// addHL leaves the zero flag alone.
func (mc *CPU) addHL(v uint16) {
	hl := mc.hl()
	r := uint32(hl) + uint32(v)
	mc.setFlag(flagN, false)
	mc.setFlag(flagH, (hl&0x0fff)+(v&0x0fff) > 0x0fff)
	mc.setFlag(flagC, r > 0xffff)
	mc.setHL(uint16(r))
}

// addSP implements the signed immediate addition shared by ADD SP,r8 and
// LD HL,SP+r8. Flags come from the unsigned addition of the low bytes.
func (mc *CPU) addSP(v uint8) uint16 {
	r := mc.SP + uint16(int8(v))
	mc.setFlag(flagZ, false)
	mc.setFlag(flagN, false)
	mc.setFlag(flagH, (mc.SP&0x0f)+uint16(v&0x0f) > 0x0f)
	mc.setFlag(flagC, (mc.SP&0xff)+uint16(v) > 0xff)
	return r
}

// daa adjusts the accumulator after BCD arithmetic.
func (mc *CPU) daa() {
	adjust := uint8(0)
	carry := mc.flag(flagC)

	if !mc.flag(flagN) {
		if mc.flag(flagH) || mc.A&0x0f > 0x09 {
			adjust |= 0x06
		}
		if carry || mc.A > 0x99 {
			adjust |= 0x60
			carry = true
		}
		mc.A += adjust
	} else {
		if mc.flag(flagH) {
			adjust |= 0x06
		}
		if carry {
			adjust |= 0x60
		}
		mc.A -= adjust
	}

	mc.setFlag(flagZ, mc.A == 0)
	mc.setFlag(flagH, false)
	mc.setFlag(flagC, carry)
}

// execute runs one unprefixed instruction. The return value reports
// whether a conditional instruction took its branch; unconditional
// instructions always return true.
func (mc *CPU) execute(opcode uint8, op8 uint8, op16 uint16) bool {
	// the two regularly encoded blocks cover half the opcode space
	if opcode >= 0x40 && opcode <= 0x7f && opcode != 0x76 {
		mc.setReg8(opcode>>3, mc.reg8(opcode))
		return true
	}
	if opcode >= 0x80 && opcode <= 0xbf {
		v := mc.reg8(opcode)
		switch (opcode >> 3) & 0x07 {
		case 0:
			mc.add(v, false)
		case 1:
			mc.add(v, true)
		case 2:
			mc.sub(v, false)
		case 3:
			mc.sub(v, true)
		case 4:
			mc.and(v)
		case 5:
			mc.xor(v)
		case 6:
			mc.or(v)
		case 7:
			mc.cmp(v, false)
		}
		return true
	}

	switch opcode {
	case 0x00: // NOP
	case 0x10: // STOP. nothing wakes the machine in this implementation
		// so it behaves as a two byte NOP

	// 16 bit loads
	case 0x01:
		mc.setBC(op16)
	case 0x11:
		mc.setDE(op16)
	case 0x21:
		mc.setHL(op16)
	case 0x31:
		mc.SP = op16
	case 0x08: // LD (a16),SP
		mc.mem.Write(op16, uint8(mc.SP))
		mc.mem.Write(op16+1, uint8(mc.SP>>8))
	case 0xf8: // LD HL,SP+r8
		mc.setHL(mc.addSP(op8))
	case 0xf9: // LD SP,HL
		mc.SP = mc.hl()

	// accumulator loads through the pointer registers
	case 0x02:
		mc.mem.Write(mc.bc(), mc.A)
	case 0x12:
		mc.mem.Write(mc.de(), mc.A)
	case 0x22: // LD (HL+),A
		mc.mem.Write(mc.hl(), mc.A)
		mc.setHL(mc.hl() + 1)
	case 0x32: // LD (HL-),A
		mc.mem.Write(mc.hl(), mc.A)
		mc.setHL(mc.hl() - 1)
	case 0x0a:
		mc.A = mc.mem.Read(mc.bc())
	case 0x1a:
		mc.A = mc.mem.Read(mc.de())
	case 0x2a: // LD A,(HL+)
		mc.A = mc.mem.Read(mc.hl())
		mc.setHL(mc.hl() + 1)
	case 0x3a: // LD A,(HL-)
		mc.A = mc.mem.Read(mc.hl())
		mc.setHL(mc.hl() - 1)

	// 8 bit immediate loads
	case 0x06, 0x0e, 0x16, 0x1e, 0x26, 0x2e, 0x36, 0x3e:
		mc.setReg8(opcode>>3, op8)

	// high page loads
	case 0xe0: // LDH (a8),A
		mc.mem.Write(0xff00+uint16(op8), mc.A)
	case 0xf0: // LDH A,(a8)
		mc.A = mc.mem.Read(0xff00 + uint16(op8))
	case 0xe2: // LD (C),A
		mc.mem.Write(0xff00+uint16(mc.C), mc.A)
	case 0xf2: // LD A,(C)
		mc.A = mc.mem.Read(0xff00 + uint16(mc.C))
	case 0xea: // LD (a16),A
		mc.mem.Write(op16, mc.A)
	case 0xfa: // LD A,(a16)
		mc.A = mc.mem.Read(op16)

	// 16 bit arithmetic
	case 0x03:
		mc.setBC(mc.bc() + 1)
	case 0x13:
		mc.setDE(mc.de() + 1)
	case 0x23:
		mc.setHL(mc.hl() + 1)
	case 0x33:
		mc.SP++
	case 0x0b:
		mc.setBC(mc.bc() - 1)
	case 0x1b:
		mc.setDE(mc.de() - 1)
	case 0x2b:
		mc.setHL(mc.hl() - 1)
	case 0x3b:
		mc.SP--
	case 0x09:
		mc.addHL(mc.bc())
	case 0x19:
		mc.addHL(mc.de())
	case 0x29:
		mc.addHL(mc.hl())
	case 0x39:
		mc.addHL(mc.SP)
	case 0xe8: // ADD SP,r8
		mc.SP = mc.addSP(op8)

	// 8 bit increment and decrement
	case 0x04, 0x0c, 0x14, 0x1c, 0x24, 0x2c, 0x34, 0x3c:
		mc.setReg8(opcode>>3, mc.inc8(mc.reg8(opcode>>3)))
	case 0x05, 0x0d, 0x15, 0x1d, 0x25, 0x2d, 0x35, 0x3d:
		mc.setReg8(opcode>>3, mc.dec8(mc.reg8(opcode>>3)))

	// 8 bit immediate arithmetic
	case 0xc6:
		mc.add(op8, false)
	case 0xce:
		mc.add(op8, true)
	case 0xd6:
		mc.sub(op8, false)
	case 0xde:
		mc.sub(op8, true)
	case 0xe6:
		mc.and(op8)
	case 0xee:
		mc.xor(op8)
	case 0xf6:
		mc.or(op8)
	case 0xfe:
		mc.cmp(op8, false)

	// rotates on the accumulator. unlike the prefixed rotates these
	// always clear the zero flag
	case 0x07: // RLCA
		mc.A = mc.rlc(mc.A)
		mc.setFlag(flagZ, false)
	case 0x0f: // RRCA
		mc.A = mc.rrc(mc.A)
		mc.setFlag(flagZ, false)
	case 0x17: // RLA
		mc.A = mc.rl(mc.A)
		mc.setFlag(flagZ, false)
	case 0x1f: // RRA
		mc.A = mc.rr(mc.A)
		mc.setFlag(flagZ, false)

	case 0x27:
		mc.daa()
	case 0x2f: // CPL
		mc.A = ^mc.A
		mc.setFlag(flagN, true)
		mc.setFlag(flagH, true)
	case 0x37: // SCF
		mc.setFlag(flagN, false)
		mc.setFlag(flagH, false)
		mc.setFlag(flagC, true)
	case 0x3f: // CCF
		mc.setFlag(flagN, false)
		mc.setFlag(flagH, false)
		mc.setFlag(flagC, !mc.flag(flagC))

	// jumps. relative jumps are relative to the already advanced PC
	case 0x18: // JR r8
		mc.PC += uint16(int8(op8))
	case 0x20, 0x28, 0x30, 0x38: // JR cc,r8
		if !mc.condition(opcode) {
			return false
		}
		mc.PC += uint16(int8(op8))
	case 0xc3: // JP a16
		mc.PC = op16
	case 0xc2, 0xca, 0xd2, 0xda: // JP cc,a16
		if !mc.condition(opcode) {
			return false
		}
		mc.PC = op16
	case 0xe9: // JP HL
		mc.PC = mc.hl()

	// calls and returns
	case 0xcd: // CALL a16
		mc.push(mc.PC)
		mc.PC = op16
	case 0xc4, 0xcc, 0xd4, 0xdc: // CALL cc,a16
		if !mc.condition(opcode) {
			return false
		}
		mc.push(mc.PC)
		mc.PC = op16
	case 0xc9: // RET
		mc.PC = mc.pop()
	case 0xc0, 0xc8, 0xd0, 0xd8: // RET cc
		if !mc.condition(opcode) {
			return false
		}
		mc.PC = mc.pop()
	case 0xd9: // RETI. the master enable turns on immediately, without
		// the EI delay
		mc.PC = mc.pop()
		mc.ime = true
	case 0xc7, 0xcf, 0xd7, 0xdf, 0xe7, 0xef, 0xf7, 0xff: // RST
		mc.push(mc.PC)
		mc.PC = uint16(opcode & 0x38)

	// stack
	case 0xc1:
		mc.setBC(mc.pop())
	case 0xd1:
		mc.setDE(mc.pop())
	case 0xe1:
		mc.setHL(mc.pop())
	case 0xf1:
		mc.setAF(mc.pop())
	case 0xc5:
		mc.push(mc.bc())
	case 0xd5:
		mc.push(mc.de())
	case 0xe5:
		mc.push(mc.hl())
	case 0xf5:
		mc.push(mc.af())

	case 0x76: // HALT
		if !mc.ime && mc.irq.Pending() {
			mc.haltBug = true
		} else {
			mc.halted = true
		}
	case 0xf3: // DI
		mc.ime = false
		mc.imeDelay = false
	case 0xfb: // EI
		mc.imeDelay = true
	}

	return true
}

// prefixed rotates and shifts. results set the zero flag.

func (mc *CPU) rlc(v uint8) uint8 {
	r := v<<1 | v>>7
	mc.F = 0
	mc.setFlag(flagZ, r == 0)
	mc.setFlag(flagC, v&0x80 == 0x80)
	return r
}

func (mc *CPU) rrc(v uint8) uint8 {
	r := v>>1 | v<<7
	mc.F = 0
	mc.setFlag(flagZ, r == 0)
	mc.setFlag(flagC, v&0x01 == 0x01)
	return r
}

func (mc *CPU) rl(v uint8) uint8 {
	r := v << 1
	if mc.flag(flagC) {
		r |= 0x01
	}
	mc.F = 0
	mc.setFlag(flagZ, r == 0)
	mc.setFlag(flagC, v&0x80 == 0x80)
	return r
}

func (mc *CPU) rr(v uint8) uint8 {
	r := v >> 1
	if mc.flag(flagC) {
		r |= 0x80
	}
	mc.F = 0
	mc.setFlag(flagZ, r == 0)
	mc.setFlag(flagC, v&0x01 == 0x01)
	return r
}

func (mc *CPU) sla(v uint8) uint8 {
	r := v << 1
	mc.F = 0
	mc.setFlag(flagZ, r == 0)
	mc.setFlag(flagC, v&0x80 == 0x80)
	return r
}

func (mc *CPU) sra(v uint8) uint8 {
	r := v>>1 | v&0x80
	mc.F = 0
	mc.setFlag(flagZ, r == 0)
	mc.setFlag(flagC, v&0x01 == 0x01)
	return r
}

func (mc *CPU) swap(v uint8) uint8 {
	r := v<<4 | v>>4
	mc.F = 0
	mc.setFlag(flagZ, r == 0)
	return r
}

func (mc *CPU) srl(v uint8) uint8 {
	r := v >> 1
	mc.F = 0
	mc.setFlag(flagZ, r == 0)
	mc.setFlag(flagC, v&0x01 == 0x01)
	return r
}

// executeCB runs one prefixed instruction.
func (mc *CPU) executeCB(opcode uint8) {
	if opcode < 0x40 {
		v := mc.reg8(opcode)
		switch opcode >> 3 {
		case 0:
			v = mc.rlc(v)
		case 1:
			v = mc.rrc(v)
		case 2:
			v = mc.rl(v)
		case 3:
			v = mc.rr(v)
		case 4:
			v = mc.sla(v)
		case 5:
			v = mc.sra(v)
		case 6:
			v = mc.swap(v)
		case 7:
			v = mc.srl(v)
		}
		mc.setReg8(opcode, v)
		return
	}

	bit := (opcode >> 3) & 0x07
	switch {
	case opcode < 0x80: // BIT b,r
		mc.setFlag(flagZ, mc.reg8(opcode)&(1<<bit) == 0)
		mc.setFlag(flagN, false)
		mc.setFlag(flagH, true)
	case opcode < 0xc0: // RES b,r
		mc.setReg8(opcode, mc.reg8(opcode)&^(1<<bit))
	default: // SET b,r
		mc.setReg8(opcode, mc.reg8(opcode)|1<<bit)
	}
}
