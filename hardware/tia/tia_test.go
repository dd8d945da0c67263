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

package tia

import "testing"

func TestFrameWrapsAfterFullBeamSweep(t *testing.T) {
	c := New()
	total := DotsPerScanline * ScanlinesPerFrame
	for i := 0; i < total; i++ {
		c.Clock()
	}
	if c.Frame != 1 {
		t.Fatalf("Frame = %d, want 1", c.Frame)
	}
	if c.Dot() != 0 || c.Line() != 0 {
		t.Fatalf("beam at (%d,%d), want (0,0)", c.Dot(), c.Line())
	}
}

func TestWSYNCStallsForRemainderOfScanline(t *testing.T) {
	c := New()
	for i := 0; i < 5; i++ {
		c.Clock()
	}
	var stalled int
	c.SetStallFunc(func(cycles int) { stalled = cycles })
	c.Write(WSYNC, 0)
	if want := (DotsPerScanline - 5) / 3; stalled != want {
		t.Fatalf("stall = %d, want %d", stalled, want)
	}
	c.Clock()
	if c.Dot() != 0 || c.Line() != 1 {
		t.Fatalf("beam at (%d,%d), want (0,1)", c.Dot(), c.Line())
	}
}

func TestRESP0SetsPlayerPositionToCurrentDot(t *testing.T) {
	c := New()
	for i := 0; i < 40; i++ {
		c.Clock()
	}
	c.Write(RESP0, 0)
	if c.player0.x != 40 {
		t.Fatalf("player0.x = %d, want 40", c.player0.x)
	}
}

func TestHMOVEAppliesMotionAtNextScanlineThenClearsLatch(t *testing.T) {
	c := New()
	c.Write(RESP0, 0) // player0.x = 0
	c.Write(HMP0, 0x10) // +1 dot of motion
	c.Write(HMOVE, 0)
	for c.Line() == 0 {
		c.Clock()
	}
	if c.player0.x != 1 {
		t.Fatalf("player0.x after HMOVE = %d, want 1", c.player0.x)
	}
	startX := c.player0.x
	for c.Line() == 1 {
		c.Clock()
	}
	if c.player0.x != startX {
		t.Fatalf("motion reapplied after latch should have cleared: x = %d, want %d", c.player0.x, startX)
	}
}

func TestINPTReadsHighBitFromInputFunc(t *testing.T) {
	c := New()
	c.SetInputFunc(func(pin int) bool { return pin == 2 })
	if got := c.Read(INPT0); got != 0 {
		t.Fatalf("INPT0 = %02X, want 0", got)
	}
	if got := c.Read(INPT2); got != 0x80 {
		t.Fatalf("INPT2 = %02X, want 80", got)
	}
}

func TestMissileWidthIsDotsNotAPlayerMultiplier(t *testing.T) {
	c := New()
	c.Write(COLUBK, 0x00)
	c.Write(COLUP0, 0x10)
	for i := 0; i < 50; i++ {
		c.Clock()
	}
	c.Write(NUSIZ0, 0x10) // bits 4-5 = 01: missile width 2 dots
	c.Write(RESM0, 0)     // missile0.x = current dot
	c.Write(ENAM0, 0x02)

	var colours [4]uint8
	for i := range colours {
		idx := c.line*DotsPerScanline + c.dot
		c.Clock() // renders the dot at idx, then advances
		colours[i] = c.Framebuffer[idx]
	}
	if colours[0] != 0x10 || colours[1] != 0x10 {
		t.Fatalf("missile colours = %v, want first two dots covered", colours)
	}
	if colours[2] != 0x00 || colours[3] != 0x00 {
		t.Fatalf("missile colours = %v, want a 2-dot-wide missile, not 8x that", colours)
	}
}

func TestCollisionRegistersAlwaysReadZero(t *testing.T) {
	c := New()
	if got := c.Read(CXM0P); got != 0 {
		t.Fatalf("CXM0P = %02X, want 0", got)
	}
}
