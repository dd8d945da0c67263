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

// operand resolves an opcode's addressing mode to an effective address,
// reading whatever operand bytes follow the opcode from PC and advancing PC
// past them. Implied, Accumulator, Relative, and Immediate are handled by
// their callers directly and never reach here.
func (c *CPU) operand(mode AddrMode) uint16 {
	switch mode {
	case ZeroPage:
		return uint16(c.readPC())
	case ZeroPageX:
		return uint16(c.readPC() + c.X)
	case ZeroPageY:
		return uint16(c.readPC() + c.Y)
	case Absolute:
		lo := c.readPC()
		hi := c.readPC()
		return uint16(hi)<<8 | uint16(lo)
	case AbsoluteX:
		lo := c.readPC()
		hi := c.readPC()
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.X)
		c.pageCrossed = (addr & 0xFF00) != (base & 0xFF00)
		return addr
	case AbsoluteY:
		lo := c.readPC()
		hi := c.readPC()
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		c.pageCrossed = (addr & 0xFF00) != (base & 0xFF00)
		return addr
	case Indirect:
		lo := c.readPC()
		hi := c.readPC()
		ptr := uint16(hi)<<8 | uint16(lo)
		return c.readIndirectBuggy(ptr)
	case IndirectX:
		zp := c.readPC() + c.X
		lo := c.read(uint16(zp))
		hi := c.read(uint16(zp + 1))
		return uint16(hi)<<8 | uint16(lo)
	case IndirectY:
		zp := c.readPC()
		lo := c.read(uint16(zp))
		hi := c.read(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		c.pageCrossed = (addr & 0xFF00) != (base & 0xFF00)
		return addr
	}
	return 0
}

// readIndirectBuggy reproduces the original 6502's JMP (ind) page-boundary
// bug: when the pointer's low byte is 0xFF, the high byte of the target is
// fetched from the start of the same page rather than the next page (spec
// §4.3, scenario 6).
func (c *CPU) readIndirectBuggy(ptr uint16) uint16 {
	lo := c.read(ptr)
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := c.read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

// readOperandValue loads the byte an addressing mode names, handling
// Immediate and Accumulator alongside the memory-addressed modes so callers
// of read-only instructions (ADC, AND, CMP, ...) don't special-case them.
func (c *CPU) readOperandValue(mode AddrMode) uint8 {
	if mode == Immediate {
		return c.readPC()
	}
	if mode == Accumulator {
		return c.A
	}
	return c.read(c.operand(mode))
}
