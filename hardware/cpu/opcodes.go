// This file is part of chipset.
//
// chipset is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// chipset is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with chipset.  If not, see <https://www.gnu.org/licenses/>.

package cpu

// AddrMode names how an opcode derives its effective address (spec §4.3).
type AddrMode uint8

// The full set of 6502 addressing modes, including the accumulator form used
// by the memory shift/rotate instructions when they operate on A instead.
const (
	Implied AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect // JMP (ind) only
	IndirectX
	IndirectY
	Relative // branches only
)

// opcode is one row of the 256-entry dispatch table: the mnemonic (for
// disassembly/logging only), the addressing mode, the base cycle cost, and
// whether that mode's extra page-cross cycle applies to this opcode. Store
// and read-modify-write instructions never take the page-cross penalty even
// in indexed modes; only the read-only forms do.
type opcode struct {
	mnemonic    string
	mode        AddrMode
	cycles      uint8
	pageCrossOK bool
}

// opcodes is the full NMOS 6502 instruction matrix: every official opcode
// plus the stable illegal opcodes (LAX, SAX, DCP, ISC, SLO, RLA, SRE, RRA,
// ANC, ALR, ARR, LAS, SBX), the unstable family modelled with the configured
// magic constant (ANE, LAX#imm, SHA, SHX, SHY, TAS), the documented
// multi-byte/cycle NOPs, and the twelve JAM opcodes that halt the CPU.
var opcodes = [256]opcode{
	0x00: {"BRK", Implied, 7, false}, 0x01: {"ORA", IndirectX, 6, false},
	0x02: {"JAM", Implied, 0, false}, 0x03: {"SLO", IndirectX, 8, false},
	0x04: {"NOP", ZeroPage, 3, false}, 0x05: {"ORA", ZeroPage, 3, false},
	0x06: {"ASL", ZeroPage, 5, false}, 0x07: {"SLO", ZeroPage, 5, false},
	0x08: {"PHP", Implied, 3, false}, 0x09: {"ORA", Immediate, 2, false},
	0x0A: {"ASL", Accumulator, 2, false}, 0x0B: {"ANC", Immediate, 2, false},
	0x0C: {"NOP", Absolute, 4, false}, 0x0D: {"ORA", Absolute, 4, false},
	0x0E: {"ASL", Absolute, 6, false}, 0x0F: {"SLO", Absolute, 6, false},

	0x10: {"BPL", Relative, 2, false}, 0x11: {"ORA", IndirectY, 5, true},
	0x12: {"JAM", Implied, 0, false}, 0x13: {"SLO", IndirectY, 8, false},
	0x14: {"NOP", ZeroPageX, 4, false}, 0x15: {"ORA", ZeroPageX, 4, false},
	0x16: {"ASL", ZeroPageX, 6, false}, 0x17: {"SLO", ZeroPageX, 6, false},
	0x18: {"CLC", Implied, 2, false}, 0x19: {"ORA", AbsoluteY, 4, true},
	0x1A: {"NOP", Implied, 2, false}, 0x1B: {"SLO", AbsoluteY, 7, false},
	0x1C: {"NOP", AbsoluteX, 4, true}, 0x1D: {"ORA", AbsoluteX, 4, true},
	0x1E: {"ASL", AbsoluteX, 7, false}, 0x1F: {"SLO", AbsoluteX, 7, false},

	0x20: {"JSR", Absolute, 6, false}, 0x21: {"AND", IndirectX, 6, false},
	0x22: {"JAM", Implied, 0, false}, 0x23: {"RLA", IndirectX, 8, false},
	0x24: {"BIT", ZeroPage, 3, false}, 0x25: {"AND", ZeroPage, 3, false},
	0x26: {"ROL", ZeroPage, 5, false}, 0x27: {"RLA", ZeroPage, 5, false},
	0x28: {"PLP", Implied, 4, false}, 0x29: {"AND", Immediate, 2, false},
	0x2A: {"ROL", Accumulator, 2, false}, 0x2B: {"ANC", Immediate, 2, false},
	0x2C: {"BIT", Absolute, 4, false}, 0x2D: {"AND", Absolute, 4, false},
	0x2E: {"ROL", Absolute, 6, false}, 0x2F: {"RLA", Absolute, 6, false},

	0x30: {"BMI", Relative, 2, false}, 0x31: {"AND", IndirectY, 5, true},
	0x32: {"JAM", Implied, 0, false}, 0x33: {"RLA", IndirectY, 8, false},
	0x34: {"NOP", ZeroPageX, 4, false}, 0x35: {"AND", ZeroPageX, 4, false},
	0x36: {"ROL", ZeroPageX, 6, false}, 0x37: {"RLA", ZeroPageX, 6, false},
	0x38: {"SEC", Implied, 2, false}, 0x39: {"AND", AbsoluteY, 4, true},
	0x3A: {"NOP", Implied, 2, false}, 0x3B: {"RLA", AbsoluteY, 7, false},
	0x3C: {"NOP", AbsoluteX, 4, true}, 0x3D: {"AND", AbsoluteX, 4, true},
	0x3E: {"ROL", AbsoluteX, 7, false}, 0x3F: {"RLA", AbsoluteX, 7, false},

	0x40: {"RTI", Implied, 6, false}, 0x41: {"EOR", IndirectX, 6, false},
	0x42: {"JAM", Implied, 0, false}, 0x43: {"SRE", IndirectX, 8, false},
	0x44: {"NOP", ZeroPage, 3, false}, 0x45: {"EOR", ZeroPage, 3, false},
	0x46: {"LSR", ZeroPage, 5, false}, 0x47: {"SRE", ZeroPage, 5, false},
	0x48: {"PHA", Implied, 3, false}, 0x49: {"EOR", Immediate, 2, false},
	0x4A: {"LSR", Accumulator, 2, false}, 0x4B: {"ALR", Immediate, 2, false},
	0x4C: {"JMP", Absolute, 3, false}, 0x4D: {"EOR", Absolute, 4, false},
	0x4E: {"LSR", Absolute, 6, false}, 0x4F: {"SRE", Absolute, 6, false},

	0x50: {"BVC", Relative, 2, false}, 0x51: {"EOR", IndirectY, 5, true},
	0x52: {"JAM", Implied, 0, false}, 0x53: {"SRE", IndirectY, 8, false},
	0x54: {"NOP", ZeroPageX, 4, false}, 0x55: {"EOR", ZeroPageX, 4, false},
	0x56: {"LSR", ZeroPageX, 6, false}, 0x57: {"SRE", ZeroPageX, 6, false},
	0x58: {"CLI", Implied, 2, false}, 0x59: {"EOR", AbsoluteY, 4, true},
	0x5A: {"NOP", Implied, 2, false}, 0x5B: {"SRE", AbsoluteY, 7, false},
	0x5C: {"NOP", AbsoluteX, 4, true}, 0x5D: {"EOR", AbsoluteX, 4, true},
	0x5E: {"LSR", AbsoluteX, 7, false}, 0x5F: {"SRE", AbsoluteX, 7, false},

	0x60: {"RTS", Implied, 6, false}, 0x61: {"ADC", IndirectX, 6, false},
	0x62: {"JAM", Implied, 0, false}, 0x63: {"RRA", IndirectX, 8, false},
	0x64: {"NOP", ZeroPage, 3, false}, 0x65: {"ADC", ZeroPage, 3, false},
	0x66: {"ROR", ZeroPage, 5, false}, 0x67: {"RRA", ZeroPage, 5, false},
	0x68: {"PLA", Implied, 4, false}, 0x69: {"ADC", Immediate, 2, false},
	0x6A: {"ROR", Accumulator, 2, false}, 0x6B: {"ARR", Immediate, 2, false},
	0x6C: {"JMP", Indirect, 5, false}, 0x6D: {"ADC", Absolute, 4, false},
	0x6E: {"ROR", Absolute, 6, false}, 0x6F: {"RRA", Absolute, 6, false},

	0x70: {"BVS", Relative, 2, false}, 0x71: {"ADC", IndirectY, 5, true},
	0x72: {"JAM", Implied, 0, false}, 0x73: {"RRA", IndirectY, 8, false},
	0x74: {"NOP", ZeroPageX, 4, false}, 0x75: {"ADC", ZeroPageX, 4, false},
	0x76: {"ROR", ZeroPageX, 6, false}, 0x77: {"RRA", ZeroPageX, 6, false},
	0x78: {"SEI", Implied, 2, false}, 0x79: {"ADC", AbsoluteY, 4, true},
	0x7A: {"NOP", Implied, 2, false}, 0x7B: {"RRA", AbsoluteY, 7, false},
	0x7C: {"NOP", AbsoluteX, 4, true}, 0x7D: {"ADC", AbsoluteX, 4, true},
	0x7E: {"ROR", AbsoluteX, 7, false}, 0x7F: {"RRA", AbsoluteX, 7, false},

	0x80: {"NOP", Immediate, 2, false}, 0x81: {"STA", IndirectX, 6, false},
	0x82: {"NOP", Immediate, 2, false}, 0x83: {"SAX", IndirectX, 6, false},
	0x84: {"STY", ZeroPage, 3, false}, 0x85: {"STA", ZeroPage, 3, false},
	0x86: {"STX", ZeroPage, 3, false}, 0x87: {"SAX", ZeroPage, 3, false},
	0x88: {"DEY", Implied, 2, false}, 0x89: {"NOP", Immediate, 2, false},
	0x8A: {"TXA", Implied, 2, false}, 0x8B: {"ANE", Immediate, 2, false},
	0x8C: {"STY", Absolute, 4, false}, 0x8D: {"STA", Absolute, 4, false},
	0x8E: {"STX", Absolute, 4, false}, 0x8F: {"SAX", Absolute, 4, false},

	0x90: {"BCC", Relative, 2, false}, 0x91: {"STA", IndirectY, 6, false},
	0x92: {"JAM", Implied, 0, false}, 0x93: {"SHA", IndirectY, 6, false},
	0x94: {"STY", ZeroPageX, 4, false}, 0x95: {"STA", ZeroPageX, 4, false},
	0x96: {"STX", ZeroPageY, 4, false}, 0x97: {"SAX", ZeroPageY, 4, false},
	0x98: {"TYA", Implied, 2, false}, 0x99: {"STA", AbsoluteY, 5, false},
	0x9A: {"TXS", Implied, 2, false}, 0x9B: {"TAS", AbsoluteY, 5, false},
	0x9C: {"SHY", AbsoluteX, 5, false}, 0x9D: {"STA", AbsoluteX, 5, false},
	0x9E: {"SHX", AbsoluteY, 5, false}, 0x9F: {"SHA", AbsoluteY, 5, false},

	0xA0: {"LDY", Immediate, 2, false}, 0xA1: {"LDA", IndirectX, 6, false},
	0xA2: {"LDX", Immediate, 2, false}, 0xA3: {"LAX", IndirectX, 6, false},
	0xA4: {"LDY", ZeroPage, 3, false}, 0xA5: {"LDA", ZeroPage, 3, false},
	0xA6: {"LDX", ZeroPage, 3, false}, 0xA7: {"LAX", ZeroPage, 3, false},
	0xA8: {"TAY", Implied, 2, false}, 0xA9: {"LDA", Immediate, 2, false},
	0xAA: {"TAX", Implied, 2, false}, 0xAB: {"LXA", Immediate, 2, false},
	0xAC: {"LDY", Absolute, 4, false}, 0xAD: {"LDA", Absolute, 4, false},
	0xAE: {"LDX", Absolute, 4, false}, 0xAF: {"LAX", Absolute, 4, false},

	0xB0: {"BCS", Relative, 2, false}, 0xB1: {"LDA", IndirectY, 5, true},
	0xB2: {"JAM", Implied, 0, false}, 0xB3: {"LAX", IndirectY, 5, true},
	0xB4: {"LDY", ZeroPageX, 4, false}, 0xB5: {"LDA", ZeroPageX, 4, false},
	0xB6: {"LDX", ZeroPageY, 4, false}, 0xB7: {"LAX", ZeroPageY, 4, false},
	0xB8: {"CLV", Implied, 2, false}, 0xB9: {"LDA", AbsoluteY, 4, true},
	0xBA: {"TSX", Implied, 2, false}, 0xBB: {"LAS", AbsoluteY, 4, true},
	0xBC: {"LDY", AbsoluteX, 4, true}, 0xBD: {"LDA", AbsoluteX, 4, true},
	0xBE: {"LDX", AbsoluteY, 4, true}, 0xBF: {"LAX", AbsoluteY, 4, true},

	0xC0: {"CPY", Immediate, 2, false}, 0xC1: {"CMP", IndirectX, 6, false},
	0xC2: {"NOP", Immediate, 2, false}, 0xC3: {"DCP", IndirectX, 8, false},
	0xC4: {"CPY", ZeroPage, 3, false}, 0xC5: {"CMP", ZeroPage, 3, false},
	0xC6: {"DEC", ZeroPage, 5, false}, 0xC7: {"DCP", ZeroPage, 5, false},
	0xC8: {"INY", Implied, 2, false}, 0xC9: {"CMP", Immediate, 2, false},
	0xCA: {"DEX", Implied, 2, false}, 0xCB: {"SBX", Immediate, 2, false},
	0xCC: {"CPY", Absolute, 4, false}, 0xCD: {"CMP", Absolute, 4, false},
	0xCE: {"DEC", Absolute, 6, false}, 0xCF: {"DCP", Absolute, 6, false},

	0xD0: {"BNE", Relative, 2, false}, 0xD1: {"CMP", IndirectY, 5, true},
	0xD2: {"JAM", Implied, 0, false}, 0xD3: {"DCP", IndirectY, 8, false},
	0xD4: {"NOP", ZeroPageX, 4, false}, 0xD5: {"CMP", ZeroPageX, 4, false},
	0xD6: {"DEC", ZeroPageX, 6, false}, 0xD7: {"DCP", ZeroPageX, 6, false},
	0xD8: {"CLD", Implied, 2, false}, 0xD9: {"CMP", AbsoluteY, 4, true},
	0xDA: {"NOP", Implied, 2, false}, 0xDB: {"DCP", AbsoluteY, 7, false},
	0xDC: {"NOP", AbsoluteX, 4, true}, 0xDD: {"CMP", AbsoluteX, 4, true},
	0xDE: {"DEC", AbsoluteX, 7, false}, 0xDF: {"DCP", AbsoluteX, 7, false},

	0xE0: {"CPX", Immediate, 2, false}, 0xE1: {"SBC", IndirectX, 6, false},
	0xE2: {"NOP", Immediate, 2, false}, 0xE3: {"ISC", IndirectX, 8, false},
	0xE4: {"CPX", ZeroPage, 3, false}, 0xE5: {"SBC", ZeroPage, 3, false},
	0xE6: {"INC", ZeroPage, 5, false}, 0xE7: {"ISC", ZeroPage, 5, false},
	0xE8: {"INX", Implied, 2, false}, 0xE9: {"SBC", Immediate, 2, false},
	0xEA: {"NOP", Implied, 2, false}, 0xEB: {"SBC", Immediate, 2, false},
	0xEC: {"CPX", Absolute, 4, false}, 0xED: {"SBC", Absolute, 4, false},
	0xEE: {"INC", Absolute, 6, false}, 0xEF: {"ISC", Absolute, 6, false},

	0xF0: {"BEQ", Relative, 2, false}, 0xF1: {"SBC", IndirectY, 5, true},
	0xF2: {"JAM", Implied, 0, false}, 0xF3: {"ISC", IndirectY, 8, false},
	0xF4: {"NOP", ZeroPageX, 4, false}, 0xF5: {"SBC", ZeroPageX, 4, false},
	0xF6: {"INC", ZeroPageX, 6, false}, 0xF7: {"ISC", ZeroPageX, 6, false},
	0xF8: {"SED", Implied, 2, false}, 0xF9: {"SBC", AbsoluteY, 4, true},
	0xFA: {"NOP", Implied, 2, false}, 0xFB: {"ISC", AbsoluteY, 7, false},
	0xFC: {"NOP", AbsoluteX, 4, true}, 0xFD: {"SBC", AbsoluteX, 4, true},
	0xFE: {"INC", AbsoluteX, 7, false}, 0xFF: {"ISC", AbsoluteX, 7, false},
}

// jammed reports whether opcode o is one of the twelve JAM/KIL opcodes that
// wedge the CPU (spec §4.3).
func jammed(o uint8) bool {
	switch o {
	case 0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2:
		return true
	}
	return false
}
