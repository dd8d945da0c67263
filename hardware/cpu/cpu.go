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

// Package cpu implements the NMOS 6502/6507 instruction interpreter: full
// official opcode decoding, the stable illegal opcodes, cycle accounting,
// decimal-mode arithmetic, and the reset/IRQ/NMI/BRK sequences (spec §4.3).
package cpu

import (
	"fmt"

	"github.com/eightbitbus/chipset/config"
	"github.com/eightbitbus/chipset/logger"
)

// Bus is everything the CPU needs from the memory/bus dispatcher it is
// plumbed into. A concrete *bus.Dispatcher satisfies this structurally; the
// interface lives here so this package never imports the bus package.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
	Clock()
	CheckIRQ() bool
}

// CPU is the 6502/6507 register file plus the cycle-stepped interpreter
// described in spec §4.3.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	P       Status

	// Halted latches true on any JAM/KIL opcode; only Reset clears it.
	Halted bool

	// budget is the remaining-cycle counter described in spec §3/§4.3.
	budget int32

	// transient per-instruction flags, reset at the start of every fetch.
	pageCrossed bool
	branchTaken bool

	// nmiPending is an edge-latched request set by TriggerNMI and serviced
	// at the next instruction boundary, ahead of any pending IRQ.
	nmiPending bool

	// mask6507, when non-zero, is ANDed with every address before it
	// reaches the bus — the 6507's 13-bit address bus (spec §3).
	mask6507 uint16

	bus Bus
	cfg *config.Tunables

	// LastOpcode/LastPC record the most recently fetched instruction for
	// diagnostics (monitor, logging); they play no role in execution.
	LastOpcode uint8
	LastPC     uint16
}

// New constructs a CPU wired to bus. cfg may be nil, in which case the
// documented NMOS defaults apply (config.NewDefault()).
func New(bus Bus, cfg *config.Tunables) *CPU {
	if cfg == nil {
		cfg = config.NewDefault()
	}
	return &CPU{bus: bus, cfg: cfg}
}

// Enable6507Masking restricts every address this CPU issues to the low 13
// bits, modelling the 6507's truncated address bus (spec §3).
func (c *CPU) Enable6507Masking() {
	c.mask6507 = 0x1FFF
}

func (c *CPU) mask(addr uint16) uint16 {
	if c.mask6507 != 0 {
		return addr & c.mask6507
	}
	return addr
}

func (c *CPU) read(addr uint16) uint8 {
	return c.bus.Read(c.mask(addr))
}

func (c *CPU) write(addr uint16, v uint8) {
	c.bus.Write(c.mask(addr), v)
}

// readPC reads the byte at PC and advances PC. Used to fetch opcodes and
// operands.
func (c *CPU) readPC() uint8 {
	v := c.read(c.PC)
	c.PC++
	return v
}

// Remaining returns the CPU's outstanding cycle budget.
func (c *CPU) Remaining() int32 {
	return c.budget
}

// AddStallCycles adds n cycles to the remaining budget without fetching a
// new instruction — the mechanism by which the beam video chip's WSYNC stall
// callback (spec §4.10) is realized against this CPU.
func (c *CPU) AddStallCycles(n int32) {
	c.budget += n
}

// TriggerNMI edge-latches a non-maskable interrupt request, serviced at the
// next instruction boundary regardless of the I flag.
func (c *CPU) TriggerNMI() {
	c.nmiPending = true
}

// Reset performs the power-on/reset sequence (spec §3, §4.3): three dummy
// stack-page reads while SP counts down, PC loaded from the reset vector,
// flags set to I|U, SP left at 0xFD, and 7 cycles credited. A randomizes
// A/X/Y are left untouched by Reset — callers modelling power-on
// indeterminacy should randomize them beforehand; Reset only restores the
// documented deterministic state.
func (c *CPU) Reset() {
	c.Halted = false
	c.nmiPending = false
	c.pageCrossed = false
	c.branchTaken = false

	c.SP = 0xFD
	for i := 0; i < 3; i++ {
		_ = c.read(0x0100 | uint16(c.SP))
		c.SP--
	}
	c.SP = 0xFD

	c.P = NewStatus(FlagI)
	c.PC = c.readVector(0xFFFC)
	c.budget = 7
}

func (c *CPU) readVector(addr uint16) uint16 {
	lo := c.read(addr)
	hi := c.read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) push(v uint8) {
	c.write(0x0100|uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.read(0x0100 | uint16(c.SP))
}

func (c *CPU) pushPC() {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC))
}

func (c *CPU) popPC() {
	lo := c.pop()
	hi := c.pop()
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// Step advances the emulation by one cycle (spec §4.3, §5). It is a no-op
// once Halted.
func (c *CPU) Step() {
	if c.Halted {
		return
	}

	if c.budget != 0 {
		c.budget--
		c.bus.Clock()
		c.serviceInterrupts()
		return
	}

	c.fetchDecodeExecute()
}

// serviceInterrupts enters NMI (priority) or IRQ if one is pending and, for
// IRQ, the I flag is clear. Entry happens only from the trailing-cycle
// branch of Step, after the cycle's Clock() has run. The in-flight
// instruction has already executed in full at its fetch, so entry happens
// on that same trailing cycle and replaces whatever cycles the instruction
// still had outstanding with the interrupt sequence's 7 (spec §4.3, §5).
func (c *CPU) serviceInterrupts() {
	if c.nmiPending {
		c.nmiPending = false
		c.enterInterrupt(0xFFFA, false)
		return
	}
	if !c.P.Get(FlagI) && c.bus.CheckIRQ() {
		c.enterInterrupt(0xFFFE, false)
	}
}

// enterInterrupt implements the shared push/vector-load logic of IRQ, NMI,
// and BRK (spec §4.3). brk selects the BRK-specific PC pre-increment and
// pushed B bit.
func (c *CPU) enterInterrupt(vector uint16, brk bool) {
	if brk {
		c.PC++
		c.pushPC()
		c.push(c.P.Byte())
	} else {
		c.pushPC()
		c.push(c.P.ByteForIRQ())
	}
	c.P.Set(FlagI, true)
	c.PC = c.readVector(vector)
	c.budget = 7
}

func (c *CPU) fetchDecodeExecute() {
	c.pageCrossed = false
	c.branchTaken = false

	c.LastPC = c.PC
	op := c.readPC()
	c.LastOpcode = op

	if jammed(op) {
		c.Halted = true
		logger.Logf("cpu", "halted on JAM opcode %#02x at %#04x", op, c.LastPC)
		return
	}

	def := opcodes[op]
	c.execute(op, def.mode)

	cycles := int32(def.cycles)
	if c.branchTaken {
		// a taken branch always costs one extra cycle, and a second if it
		// crosses a page; neither depends on the table's pageCrossOK flag,
		// which governs indexed read instructions instead (spec §4.3).
		cycles++
		if c.pageCrossed {
			cycles++
		}
	} else if c.pageCrossed && def.pageCrossOK {
		cycles++
	}
	c.budget = cycles
}

func (c *CPU) String() string {
	return fmt.Sprintf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%s", c.PC, c.A, c.X, c.Y, c.SP, c.P)
}
