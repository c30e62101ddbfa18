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

// Package instructions defines the instruction set of the SM83. The tables
// give the length and cycle cost of every opcode; execution lives in the
// cpu package.
package instructions

import "fmt"

// Definition describes one opcode of the instruction set.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// number of bytes the instruction occupies, opcode included. prefixed
	// instructions are counted from the 0xcb byte
	Bytes int

	// cycle cost of the instruction. for conditional instructions this is
	// the cost when the condition passes
	Cycles int

	// cycle cost when the condition fails. zero for unconditional
	// instructions
	CyclesNotTaken int
}

func (def Definition) String() string {
	return fmt.Sprintf("%02x %s", def.OpCode, def.Mnemonic)
}

// IsConditional returns true if the cycle cost of the instruction depends
// on a condition flag.
func (def Definition) IsConditional() bool {
	return def.CyclesNotTaken != 0
}

// Definitions indexes the unprefixed instruction set by opcode. The entry
// for an opcode with no defined instruction is nil; executing one of those
// stalls the processor for good.
var Definitions [256]*Definition

// DefinitionsCB indexes the 0xcb prefixed instruction set by the byte
// following the prefix. Every entry is defined.
var DefinitionsCB [256]*Definition

// instruction lengths in bytes. zero marks an undefined opcode.
var opcodeBytes = [256]int{
	1, 3, 1, 1, 1, 1, 2, 1, 3, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 3, 3, 3, 1, 2, 1, 1, 1, 3, 2, 3, 3, 2, 1,
	1, 1, 3, 0, 3, 1, 2, 1, 1, 1, 3, 0, 3, 0, 2, 1,
	2, 1, 1, 0, 0, 1, 2, 1, 2, 1, 3, 0, 0, 0, 2, 1,
	2, 1, 1, 1, 0, 1, 2, 1, 2, 1, 3, 1, 0, 0, 2, 1,
}

// instruction cycle costs. conditional instructions hold the cost of the
// taken branch; the not-taken costs live in cyclesNotTaken.
var opcodeCycles = [256]int{
	4, 12, 8, 8, 4, 4, 8, 4, 20, 8, 8, 8, 4, 4, 8, 4,
	4, 12, 8, 8, 4, 4, 8, 4, 12, 8, 8, 8, 4, 4, 8, 4,
	12, 12, 8, 8, 4, 4, 8, 4, 12, 8, 8, 8, 4, 4, 8, 4,
	12, 12, 8, 8, 12, 12, 12, 4, 12, 8, 8, 8, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	8, 8, 8, 8, 8, 8, 4, 8, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4,
	20, 12, 16, 16, 24, 16, 8, 16, 20, 16, 16, 4, 24, 24, 8, 16,
	20, 12, 16, 0, 24, 16, 8, 16, 20, 16, 16, 0, 24, 0, 8, 16,
	12, 12, 8, 0, 0, 16, 8, 16, 16, 4, 16, 0, 0, 0, 8, 16,
	12, 12, 8, 4, 0, 16, 8, 16, 12, 8, 16, 4, 0, 0, 8, 16,
}

// cycle costs of conditional instructions when the condition fails.
var cyclesNotTaken = map[uint8]int{
	0x20: 8, 0x28: 8, 0x30: 8, 0x38: 8,
	0xc0: 8, 0xc8: 8, 0xd0: 8, 0xd8: 8,
	0xc2: 12, 0xca: 12, 0xd2: 12, 0xda: 12,
	0xc4: 12, 0xcc: 12, 0xd4: 12, 0xdc: 12,
}

// operand names indexed by the register field of a regularly encoded
// opcode.
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// mnemonics of the irregularly encoded opcodes, which is everything
// outside the 0x40 to 0xbf block.
var irregular = map[uint8]string{
	0x00: "NOP", 0x01: "LD BC,d16", 0x02: "LD (BC),A", 0x03: "INC BC",
	0x04: "INC B", 0x05: "DEC B", 0x06: "LD B,d8", 0x07: "RLCA",
	0x08: "LD (a16),SP", 0x09: "ADD HL,BC", 0x0a: "LD A,(BC)", 0x0b: "DEC BC",
	0x0c: "INC C", 0x0d: "DEC C", 0x0e: "LD C,d8", 0x0f: "RRCA",
	0x10: "STOP", 0x11: "LD DE,d16", 0x12: "LD (DE),A", 0x13: "INC DE",
	0x14: "INC D", 0x15: "DEC D", 0x16: "LD D,d8", 0x17: "RLA",
	0x18: "JR r8", 0x19: "ADD HL,DE", 0x1a: "LD A,(DE)", 0x1b: "DEC DE",
	0x1c: "INC E", 0x1d: "DEC E", 0x1e: "LD E,d8", 0x1f: "RRA",
	0x20: "JR NZ,r8", 0x21: "LD HL,d16", 0x22: "LD (HL+),A", 0x23: "INC HL",
	0x24: "INC H", 0x25: "DEC H", 0x26: "LD H,d8", 0x27: "DAA",
	0x28: "JR Z,r8", 0x29: "ADD HL,HL", 0x2a: "LD A,(HL+)", 0x2b: "DEC HL",
	0x2c: "INC L", 0x2d: "DEC L", 0x2e: "LD L,d8", 0x2f: "CPL",
	0x30: "JR NC,r8", 0x31: "LD SP,d16", 0x32: "LD (HL-),A", 0x33: "INC SP",
	0x34: "INC (HL)", 0x35: "DEC (HL)", 0x36: "LD (HL),d8", 0x37: "SCF",
	0x38: "JR C,r8", 0x39: "ADD HL,SP", 0x3a: "LD A,(HL-)", 0x3b: "DEC SP",
	0x3c: "INC A", 0x3d: "DEC A", 0x3e: "LD A,d8", 0x3f: "CCF",
	0x76: "HALT",
	0xc0: "RET NZ", 0xc1: "POP BC", 0xc2: "JP NZ,a16", 0xc3: "JP a16",
	0xc4: "CALL NZ,a16", 0xc5: "PUSH BC", 0xc6: "ADD A,d8", 0xc7: "RST 00H",
	0xc8: "RET Z", 0xc9: "RET", 0xca: "JP Z,a16", 0xcb: "PREFIX CB",
	0xcc: "CALL Z,a16", 0xcd: "CALL a16", 0xce: "ADC A,d8", 0xcf: "RST 08H",
	0xd0: "RET NC", 0xd1: "POP DE", 0xd2: "JP NC,a16",
	0xd4: "CALL NC,a16", 0xd5: "PUSH DE", 0xd6: "SUB d8", 0xd7: "RST 10H",
	0xd8: "RET C", 0xd9: "RETI", 0xda: "JP C,a16",
	0xdc: "CALL C,a16", 0xde: "SBC A,d8", 0xdf: "RST 18H",
	0xe0: "LDH (a8),A", 0xe1: "POP HL", 0xe2: "LD (C),A",
	0xe5: "PUSH HL", 0xe6: "AND d8", 0xe7: "RST 20H",
	0xe8: "ADD SP,r8", 0xe9: "JP HL", 0xea: "LD (a16),A",
	0xee: "XOR d8", 0xef: "RST 28H",
	0xf0: "LDH A,(a8)", 0xf1: "POP AF", 0xf2: "LD A,(C)", 0xf3: "DI",
	0xf5: "PUSH AF", 0xf6: "OR d8", 0xf7: "RST 30H",
	0xf8: "LD HL,SP+r8", 0xf9: "LD SP,HL", 0xfa: "LD A,(a16)", 0xfb: "EI",
	0xfe: "CP d8", 0xff: "RST 38H",
}

func mnemonic(opcode uint8) string {
	if m, ok := irregular[opcode]; ok {
		return m
	}

	// the 0x40 to 0xbf block encodes the operand registers in the opcode
	src := regNames[opcode&0x07]
	switch {
	case opcode < 0x80:
		return fmt.Sprintf("LD %s,%s", regNames[(opcode>>3)&0x07], src)
	case opcode < 0x88:
		return fmt.Sprintf("ADD A,%s", src)
	case opcode < 0x90:
		return fmt.Sprintf("ADC A,%s", src)
	case opcode < 0x98:
		return fmt.Sprintf("SUB %s", src)
	case opcode < 0xa0:
		return fmt.Sprintf("SBC A,%s", src)
	case opcode < 0xa8:
		return fmt.Sprintf("AND %s", src)
	case opcode < 0xb0:
		return fmt.Sprintf("XOR %s", src)
	case opcode < 0xb8:
		return fmt.Sprintf("OR %s", src)
	}
	return fmt.Sprintf("CP %s", src)
}

// the prefixed instruction set is entirely regular: eight operations on
// eight operands, then BIT, RES and SET over bit number and operand.
var cbOps = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func mnemonicCB(opcode uint8) string {
	src := regNames[opcode&0x07]
	switch {
	case opcode < 0x40:
		return fmt.Sprintf("%s %s", cbOps[opcode>>3], src)
	case opcode < 0x80:
		return fmt.Sprintf("BIT %d,%s", (opcode>>3)&0x07, src)
	case opcode < 0xc0:
		return fmt.Sprintf("RES %d,%s", (opcode>>3)&0x07, src)
	}
	return fmt.Sprintf("SET %d,%s", (opcode>>3)&0x07, src)
}

func init() {
	for i := 0; i < 256; i++ {
		opcode := uint8(i)

		if opcodeBytes[i] != 0 {
			Definitions[i] = &Definition{
				OpCode:         opcode,
				Mnemonic:       mnemonic(opcode),
				Bytes:          opcodeBytes[i],
				Cycles:         opcodeCycles[i],
				CyclesNotTaken: cyclesNotTaken[opcode],
			}
		}

		cycles := 8
		if opcode&0x07 == 0x06 {
			cycles = 16
		}
		DefinitionsCB[i] = &Definition{
			OpCode:   opcode,
			Mnemonic: mnemonicCB(opcode),
			Bytes:    2,
			Cycles:   cycles,
		}
	}
}
