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

// Package serial implements an ACIA-like asynchronous serial interface:
// register-pair address decode, TX shift timing, and RX buffering with
// framing/parity/overrun flags (spec §4.4).
package serial

// Status register bits.
const (
	StatusRDRF uint8 = 1 << 0 // receive data register full
	StatusTDRE uint8 = 1 << 1 // transmit data register empty
	StatusDCD  uint8 = 1 << 2 // data carrier detect
	StatusCTS  uint8 = 1 << 3 // clear to send
	StatusFE   uint8 = 1 << 4 // framing error
	StatusOVRN uint8 = 1 << 5 // overrun
	StatusPE   uint8 = 1 << 6 // parity error
	StatusIRQ  uint8 = 1 << 7
)

// Control register clock-divide bits (low 2 bits), selecting the TX
// countdown per spec §4.4.
const (
	ClockDiv1  uint8 = 0x00
	ClockDiv16 uint8 = 0x01
	ClockDiv64 uint8 = 0x02

	// ControlRXIRQEnable is bit 7 of the control register: enables the
	// aggregate IRQ when RDRF is set.
	ControlRXIRQEnable uint8 = 1 << 7
)

const (
	regData   uint16 = 0
	regStatus uint16 = 1
)

// Chip is an ACIA-like serial interface.
type Chip struct {
	dataReg    uint8
	statusReg  uint8
	controlReg uint8

	txBuffer       uint8
	txBufferEmpty  bool
	txShiftCounter uint32
}

// New returns a Chip in its power-on state: TDRE set, nothing else.
func New() *Chip {
	c := &Chip{}
	c.Reset()
	return c
}

// Reset restores power-on state.
func (c *Chip) Reset() {
	c.dataReg = 0
	c.statusReg = StatusTDRE
	c.controlReg = 0
	c.txBufferEmpty = true
	c.txShiftCounter = 0
}

// Read implements the bus.Chip register-read contract.
func (c *Chip) Read(offset uint16) uint8 {
	switch offset & 1 {
	case regData:
		v := c.dataReg
		c.statusReg &^= StatusRDRF
		c.refreshIRQ()
		return v
	default:
		return c.statusReg
	}
}

// Write implements the bus.Chip register-write contract.
func (c *Chip) Write(offset uint16, v uint8) {
	switch offset & 1 {
	case regData:
		c.txBuffer = v
		c.txBufferEmpty = false
		c.statusReg &^= StatusTDRE
		c.txShiftCounter = txCyclesForDivider(c.controlReg)
	default:
		c.controlReg = v
		c.refreshIRQ()
	}
}

// ReceiveByte is the external serial-line entry point (spec §4.4): it
// deposits into the RX buffer, or sets OVRN and discards the byte if RDRF is
// already set.
func (c *Chip) ReceiveByte(data uint8, framingError, parityError bool) {
	if c.statusReg&StatusRDRF != 0 {
		c.statusReg |= StatusOVRN
		c.refreshIRQ()
		return
	}
	c.dataReg = data
	c.statusReg |= StatusRDRF
	if framingError {
		c.statusReg |= StatusFE
	}
	if parityError {
		c.statusReg |= StatusPE
	}
	c.refreshIRQ()
}

// Clock advances the TX countdown by one cycle, setting TDRE on completion.
func (c *Chip) Clock() {
	if c.txBufferEmpty || c.txShiftCounter == 0 {
		return
	}
	c.txShiftCounter--
	if c.txShiftCounter == 0 {
		c.txBufferEmpty = true
		c.statusReg |= StatusTDRE
		c.refreshIRQ()
	}
}

// IRQ reports the aggregate interrupt line: bit 7 of the status register.
func (c *Chip) IRQ() bool {
	return c.statusReg&StatusIRQ != 0
}

func (c *Chip) refreshIRQ() {
	asserted := c.controlReg&ControlRXIRQEnable != 0 && c.statusReg&StatusRDRF != 0
	if asserted {
		c.statusReg |= StatusIRQ
	} else {
		c.statusReg &^= StatusIRQ
	}
}

func txCyclesForDivider(control uint8) uint32 {
	switch control & 0x03 {
	case ClockDiv16:
		return 160
	case ClockDiv64:
		return 640
	default:
		return 10
	}
}
