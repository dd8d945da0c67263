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

// Package pia implements a PIA-like peripheral interface adapter: two ports,
// each with a data-direction register shared with the data slot and a
// control register carrying the interrupt enable/flag pair (spec §4.7).
package pia

// Control register bits.
const (
	CRIRQEnable uint8 = 1 << 0 // CA1/CB1 interrupt enable
	CRDDRAccess uint8 = 1 << 2 // port slot addresses DDR instead of data
	CRIRQFlag   uint8 = 1 << 7
)

// Register slots within the chip's 4-register window.
const (
	RegPortA uint16 = 0x0
	RegCtrlA uint16 = 0x1
	RegPortB uint16 = 0x2
	RegCtrlB uint16 = 0x3
)

// Chip is a PIA-like peripheral interface adapter.
type Chip struct {
	ora, orb   uint8
	ddra, ddrb uint8
	cra, crb   uint8
	ira, irb   uint8
}

// New returns a Chip with every register cleared.
func New() *Chip {
	return &Chip{}
}

// Read implements the bus.Chip contract (spec §4.7).
func (c *Chip) Read(offset uint16) uint8 {
	switch offset & 0x3 {
	case RegPortA:
		if c.cra&CRDDRAccess != 0 {
			return c.ddra
		}
		v := (c.ora & c.ddra) | (c.ira &^ c.ddra)
		c.cra &^= CRIRQFlag
		return v
	case RegCtrlA:
		return c.cra
	case RegPortB:
		if c.crb&CRDDRAccess != 0 {
			return c.ddrb
		}
		v := (c.orb & c.ddrb) | (c.irb &^ c.ddrb)
		c.crb &^= CRIRQFlag
		return v
	case RegCtrlB:
		return c.crb
	}
	return 0xFF
}

// Write implements the bus.Chip contract.
func (c *Chip) Write(offset uint16, v uint8) {
	switch offset & 0x3 {
	case RegPortA:
		if c.cra&CRDDRAccess != 0 {
			c.ddra = v
		} else {
			c.ora = v
		}
	case RegCtrlA:
		c.cra = v
	case RegPortB:
		if c.crb&CRDDRAccess != 0 {
			c.ddrb = v
		} else {
			c.orb = v
		}
	case RegCtrlB:
		c.crb = v
	}
}

// SetPortAInput deposits an externally driven value into port A's input
// latch, raising the CA1 flag if its interrupt is enabled.
func (c *Chip) SetPortAInput(v uint8) {
	c.ira = v
	if c.cra&CRIRQEnable != 0 {
		c.cra |= CRIRQFlag
	}
}

// SetPortBInput is SetPortAInput's port-B counterpart.
func (c *Chip) SetPortBInput(v uint8) {
	c.irb = v
	if c.crb&CRIRQEnable != 0 {
		c.crb |= CRIRQFlag
	}
}

// Clock is a no-op: the PIA has no internal timing of its own.
func (c *Chip) Clock() {}

// IRQ is the OR of CRA and CRB's flag bits (spec §6).
func (c *Chip) IRQ() bool {
	return c.cra&CRIRQFlag != 0 || c.crb&CRIRQFlag != 0
}
