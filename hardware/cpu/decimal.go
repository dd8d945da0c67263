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

// adc performs ADC, binary or decimal depending on the D flag (spec §4.3).
// By default Z, N, and V are derived from the binary addition of A, m, and
// carry-in even in decimal mode; this is the documented NMOS quirk and can
// be turned off via config.Tunables.SetDecimalFlagsFromBinary for silicon
// that doesn't exhibit it, in which case Z and N follow the adjusted result
// and V the partially adjusted sum.
func (c *CPU) adc(m uint8) {
	carryIn := uint8(0)
	if c.P.Get(FlagC) {
		carryIn = 1
	}

	binSum := uint16(c.A) + uint16(m) + uint16(carryIn)
	binResult := uint8(binSum)
	binCarry := binSum > 0xFF
	binOverflow := (c.A^m)&0x80 == 0 && (c.A^binResult)&0x80 != 0

	if !c.P.Get(FlagD) {
		c.A = binResult
		c.P.Set(FlagC, binCarry)
		c.P.Set(FlagV, binOverflow)
		c.P.SetZN(c.A)
		return
	}

	al := (c.A & 0x0F) + (m & 0x0F) + carryIn
	if al > 0x09 {
		al = ((al + 0x06) & 0x0F) + 0x10
	}
	sum := uint16(c.A&0xF0) + uint16(m&0xF0) + uint16(al)
	decOverflow := (c.A^m)&0x80 == 0 && (uint8(sum)^c.A)&0x80 != 0
	if sum >= 0xA0 {
		sum += 0x60
	}

	c.P.Set(FlagC, sum >= 0x100)
	c.A = uint8(sum)

	if c.cfg.DecimalFlagsFromBinary() {
		c.P.Set(FlagZ, binResult == 0)
		c.P.Set(FlagN, binResult&0x80 != 0)
		c.P.Set(FlagV, binOverflow)
	} else {
		c.P.Set(FlagZ, c.A == 0)
		c.P.Set(FlagN, c.A&0x80 != 0)
		c.P.Set(FlagV, decOverflow)
	}
}

// sbc performs SBC, binary or decimal depending on the D flag. Flags follow
// the same NMOS binary-result quirk as adc.
func (c *CPU) sbc(m uint8) {
	borrowIn := uint8(0)
	if !c.P.Get(FlagC) {
		borrowIn = 1
	}

	binDiff := int16(c.A) - int16(m) - int16(borrowIn)
	binResult := uint8(binDiff)
	binCarry := binDiff >= 0
	binOverflow := (c.A^m)&0x80 != 0 && (c.A^binResult)&0x80 != 0

	if !c.P.Get(FlagD) {
		c.A = binResult
		c.P.Set(FlagC, binCarry)
		c.P.Set(FlagV, binOverflow)
		c.P.SetZN(c.A)
		return
	}

	al := int16(c.A&0x0F) - int16(m&0x0F) - int16(borrowIn)
	if al < 0 {
		al = ((al - 0x06) & 0x0F) - 0x10
	}
	diff := int16(c.A&0xF0) - int16(m&0xF0) + al
	if diff < 0 {
		diff -= 0x60
	}

	c.A = uint8(diff)

	if c.cfg.DecimalFlagsFromBinary() {
		c.P.Set(FlagZ, binResult == 0)
		c.P.Set(FlagN, binResult&0x80 != 0)
	} else {
		c.P.Set(FlagZ, c.A == 0)
		c.P.Set(FlagN, c.A&0x80 != 0)
	}
	c.P.Set(FlagC, binCarry)
	c.P.Set(FlagV, binOverflow)
}
