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

import (
	"testing"

	"github.com/eightbitbus/chipset/config"
)

// flatBus is a 64K RAM-backed Bus stub for exercising the CPU in isolation.
type flatBus struct {
	mem []uint8
	irq bool
}

func newFlatBus() *flatBus {
	return &flatBus{mem: make([]uint8, 0x10000)}
}

func (b *flatBus) Read(addr uint16) uint8    { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }
func (b *flatBus) Clock()                     {}
func (b *flatBus) CheckIRQ() bool             { return b.irq }

func (b *flatBus) load(addr uint16, bytes ...uint8) {
	copy(b.mem[addr:], bytes)
}

// runToNextFetch steps the CPU until it has consumed one full instruction's
// worth of cycles (i.e. until the next fetch is about to occur).
func runToNextFetch(c *CPU) {
	c.Step()
	for c.Remaining() != 0 {
		c.Step()
	}
}

func newTestCPU(b *flatBus) *CPU {
	c := New(b, config.NewDefault())
	b.load(0xFFFC, 0x00, 0x80)
	c.Reset()
	// drain the 7 cycles Reset credits so the CPU sits at a fetch boundary
	for c.Remaining() != 0 {
		c.Step()
	}
	return c
}

func TestResetVectorAndSP(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	if c.PC != 0x8000 {
		t.Fatalf("PC = %04X, want 8000", c.PC)
	}
	if c.SP != 0xFD {
		t.Fatalf("SP = %02X, want FD", c.SP)
	}
	if !c.P.Get(FlagI) {
		t.Fatalf("I flag clear after reset")
	}
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	b.load(0x8000, 0xA9, 0x00) // LDA #$00
	runToNextFetch(c)
	if c.A != 0 || !c.P.Get(FlagZ) {
		t.Fatalf("A=%02X Z=%v, want 0/true", c.A, c.P.Get(FlagZ))
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	c.A = 0x42
	b.load(0x8000, 0x48, 0xA9, 0x00, 0x68) // PHA; LDA #0; PLA
	runToNextFetch(c)
	runToNextFetch(c)
	if c.A != 0 {
		t.Fatalf("A=%02X after LDA #0, want 0", c.A)
	}
	runToNextFetch(c)
	if c.A != 0x42 {
		t.Fatalf("A=%02X after PLA, want 42", c.A)
	}
}

func TestPHPPLPRoundTrip(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	c.P.Set(FlagC, true)
	c.P.Set(FlagN, true)
	b.load(0x8000, 0x08, 0x18, 0x28) // PHP; CLC; PLP
	runToNextFetch(c)
	runToNextFetch(c)
	if c.P.Get(FlagC) {
		t.Fatalf("C still set after CLC")
	}
	runToNextFetch(c)
	if !c.P.Get(FlagC) || !c.P.Get(FlagN) {
		t.Fatalf("flags not restored by PLP: %s", c.P)
	}
}

func TestIndirectJMPPageBoundaryBug(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	// pointer at $30FF; low byte at $30FF, high byte should (buggily) come
	// from $3000, not $3100.
	b.load(0x30FF, 0x00)
	b.load(0x3000, 0x80)
	b.load(0x3100, 0xFF) // decoy: must not be used
	b.load(0x8000, 0x6C, 0xFF, 0x30) // JMP ($30FF)
	runToNextFetch(c)
	if c.PC != 0x8000 {
		t.Fatalf("PC = %04X, want 8000 (buggy indirect fetch)", c.PC)
	}
}

func TestBRKPushesAndVectors(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	b.load(0xFFFE, 0x00, 0x90)
	b.load(0x8000, 0x00, 0xEA) // BRK; NOP (signature byte skipped)
	runToNextFetch(c)
	if c.PC != 0x9000 {
		t.Fatalf("PC = %04X, want 9000", c.PC)
	}
	if !c.P.Get(FlagI) {
		t.Fatalf("I not set after BRK")
	}
	pushedP := b.mem[0x0100|uint16(c.SP+1)]
	if pushedP&FlagB == 0 {
		t.Fatalf("B not set in pushed status byte")
	}
}

func TestDecimalADCExample(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	c.P.Set(FlagD, true)
	c.A = 0x58 // 58
	b.load(0x8000, 0x69, 0x46) // ADC #$46 (46) -> 104 decimal
	runToNextFetch(c)
	if c.A != 0x04 || !c.P.Get(FlagC) {
		t.Fatalf("A=%02X C=%v, want 04/true (58+46=104 BCD)", c.A, c.P.Get(FlagC))
	}
}

func TestIRQSuppressedByInterruptDisable(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	b.irq = true
	c.P.Set(FlagI, true)
	b.load(0x8000, 0xEA) // NOP
	runToNextFetch(c)
	if c.PC != 0x8001 {
		t.Fatalf("IRQ serviced despite I flag set")
	}
}

func TestIRQTakenWhenEnabled(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	b.irq = true
	c.P.Set(FlagI, false)
	b.load(0xFFFE, 0x00, 0xA0)
	b.load(0x8000, 0xEA) // NOP
	runToNextFetch(c)
	if c.PC != 0xA000 {
		t.Fatalf("PC = %04X, want A000 (IRQ vector taken)", c.PC)
	}
}

func TestJammedOpcodeHalts(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	b.load(0x8000, 0x02) // JAM
	c.Step()
	if !c.Halted {
		t.Fatalf("CPU not halted after JAM opcode")
	}
	pc := c.PC
	c.Step()
	if c.PC != pc {
		t.Fatalf("halted CPU still advanced PC")
	}
}

func TestLAXLoadsBothRegisters(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	b.load(0x00, 0x77)
	b.load(0x8000, 0xA7, 0x00) // LAX $00
	runToNextFetch(c)
	if c.A != 0x77 || c.X != 0x77 {
		t.Fatalf("A=%02X X=%02X, want both 77", c.A, c.X)
	}
}

func TestLXAAppliesIllegalMagicConstant(t *testing.T) {
	b := newFlatBus()
	c := newTestCPU(b)
	c.A = 0xFF
	c.X = 0xFF
	b.load(0x8000, 0xAB, 0x0F) // LXA #$0F
	runToNextFetch(c)
	want := uint8((0xFF | c.cfg.IllegalMagic()) & 0xFF & 0x0F)
	if c.A != want || c.X != want {
		t.Fatalf("A=%02X X=%02X, want both %02X", c.A, c.X, want)
	}
}
