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

// Package port implements a MOS6529-like simple single-port chip: one 8-bit
// latch, one input-pin snapshot, and a single direction bit (spec §4.8).
package port

// Chip is a single 8-bit I/O port with no data-direction register, just an
// overall in/out mode bit.
type Chip struct {
	latch      uint8
	inputPins  uint8
	outputMode bool
}

// New returns a Chip at power-on: latch and input pins both all-high, input
// mode selected.
func New() *Chip {
	return &Chip{latch: 0xFF, inputPins: 0xFF}
}

// SetDirection selects output mode (true) or input mode (false).
func (c *Chip) SetDirection(output bool) {
	c.outputMode = output
}

// SetInputPins updates the external pin snapshot read back in input mode.
func (c *Chip) SetInputPins(v uint8) {
	c.inputPins = v
}

// Read implements the bus.Chip contract: the latch in output mode, the pin
// snapshot in input mode.
func (c *Chip) Read(offset uint16) uint8 {
	if c.outputMode {
		return c.latch
	}
	return c.inputPins
}

// Write implements the bus.Chip contract: updates the latch in output
// mode, is silently dropped in input mode.
func (c *Chip) Write(offset uint16, v uint8) {
	if c.outputMode {
		c.latch = v
	}
}

// Clock is a no-op: the chip has no internal timing.
func (c *Chip) Clock() {}

// IRQ is always false: this chip has no interrupt line.
func (c *Chip) IRQ() bool { return false }
