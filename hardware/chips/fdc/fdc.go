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

// Package fdc implements a WD1770-like floppy disk controller: a command
// decoder driving a timed-completion state machine (spec §4.9).
package fdc

import "github.com/eightbitbus/chipset/clocks"

// Status register bits.
const (
	StatusBusy   uint8 = 1 << 0
	StatusDRQ    uint8 = 1 << 1
	StatusCRCERR uint8 = 1 << 3
	StatusRNF    uint8 = 1 << 4 // record not found
	StatusWP     uint8 = 1 << 6 // write protected
	StatusINTRQ  uint8 = 1 << 7
)

// Register slots within the chip's 4-register window.
const (
	RegCmdStatus uint16 = 0x0
	RegTrack     uint16 = 0x1
	RegSector    uint16 = 0x2
	RegData      uint16 = 0x3
)

// Command high-nibble opcodes.
const (
	cmdRestore    uint8 = 0x0
	cmdSeek       uint8 = 0x1
	cmdReadSector uint8 = 0x8
	cmdWriteSector uint8 = 0xA
)

const (
	stepTimeSeconds   = 0.006
	headSettleSeconds = 0.015
	revolutionSeconds = 0.200
	quickFailSeconds  = 0.001
)

// Chip is a WD1770-like floppy disk controller.
type Chip struct {
	status uint8
	track  uint8
	sector uint8
	data   uint8

	busy        bool
	drq         bool
	remaining   uint32
	command     uint8
	diskImage   []uint8
	diskLoaded  bool
	writeProt   bool

	cpuFreq clocks.MHz
}

// New returns a Chip with no disk inserted, clocked by freq (spec §4.9's
// "process-wide CPU frequency constant" is threaded explicitly here instead
// of kept global).
func New(freq clocks.MHz) *Chip {
	return &Chip{cpuFreq: freq}
}

// InsertDisk loads a disk image and marks the drive ready. writeProtected
// controls whether a subsequent write-sector command fails with WP.
func (c *Chip) InsertDisk(image []uint8, writeProtected bool) {
	c.diskImage = image
	c.diskLoaded = true
	c.writeProt = writeProtected
}

// EjectDisk clears the inserted image.
func (c *Chip) EjectDisk() {
	c.diskImage = nil
	c.diskLoaded = false
}

func (c *Chip) secToCycles(seconds float64) uint32 {
	return uint32(seconds * float64(c.cpuFreq) * 1_000_000)
}

// Read implements the bus.Chip contract.
func (c *Chip) Read(offset uint16) uint8 {
	switch offset & 0x3 {
	case RegCmdStatus:
		return c.status
	case RegTrack:
		return c.track
	case RegSector:
		return c.sector
	case RegData:
		c.drq = false
		c.status &^= StatusDRQ
		return c.data
	}
	return 0xFF
}

// Write implements the bus.Chip contract.
func (c *Chip) Write(offset uint16, v uint8) {
	switch offset & 0x3 {
	case RegCmdStatus:
		c.executeCommand(v)
	case RegTrack:
		c.track = v
	case RegSector:
		c.sector = v
	case RegData:
		c.data = v
		c.drq = false
		c.status &^= StatusDRQ
	}
}

func (c *Chip) executeCommand(cmd uint8) {
	c.command = cmd
	c.busy = true
	c.drq = false
	c.status |= StatusBusy
	c.status &^= StatusDRQ | StatusINTRQ

	switch cmd >> 4 {
	case cmdRestore:
		c.remaining = c.secToCycles(stepTimeSeconds*40 + headSettleSeconds)
	case cmdSeek:
		c.remaining = c.secToCycles(stepTimeSeconds + headSettleSeconds)
	case cmdReadSector:
		if !c.diskLoaded {
			c.status |= StatusRNF
			c.remaining = c.secToCycles(quickFailSeconds)
		} else {
			c.data = 0x00
			c.drq = true
			c.status |= StatusDRQ
			c.remaining = c.secToCycles(revolutionSeconds)
		}
	case cmdWriteSector:
		if !c.diskLoaded {
			c.status |= StatusWP
			c.remaining = c.secToCycles(quickFailSeconds)
		} else if c.writeProt {
			c.status |= StatusWP
			c.remaining = c.secToCycles(quickFailSeconds)
		} else {
			c.remaining = c.secToCycles(revolutionSeconds)
		}
	default:
		c.remaining = c.secToCycles(quickFailSeconds)
	}
}

// Clock advances the command countdown, finishing the command at zero.
func (c *Chip) Clock() {
	if !c.busy || c.remaining == 0 {
		return
	}
	c.remaining--
	if c.remaining == 0 {
		c.finish(c.status&(StatusRNF|StatusWP) != 0)
	}
}

func (c *Chip) finish(errorOccurred bool) {
	c.busy = false
	c.status &^= StatusBusy
	if errorOccurred || c.status&StatusCRCERR != 0 {
		c.status |= StatusINTRQ
	}
}

// IRQ is the controller's INTRQ line.
func (c *Chip) IRQ() bool {
	return c.status&StatusINTRQ != 0
}
