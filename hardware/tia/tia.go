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

// Package tia implements a beam-driven video/sound chip in the style of the
// Atari 2600's TIA: a 228x262 dot pipeline, playfield/player/missile/ball
// rendering, WSYNC CPU stall, and HMOVE horizontal motion (spec §4.10).
package tia

// Frame geometry (spec §4.10).
const (
	DotsPerScanline   = 228
	ScanlinesPerFrame = 262
)

// InputFunc samples a single digital input pin by index.
type InputFunc func(pin int) bool

// AudioFunc is the signature of the host's audio-sink callback, which takes
// one signed 16-bit sample. The chip stores an installed callback but never
// calls it: writes to the AUDCx/AUDFx/AUDVx registers are ignored and no
// samples are generated.
type AudioFunc func(sample int16)

// StallFunc is invoked by a WSYNC write with the number of CPU cycles the
// caller should burn before resuming (spec §4.10).
type StallFunc func(cpuCycles int)

// object is one of player0/player1/missile0/missile1/ball.
type object struct {
	x        int
	gfx      uint8 // unused by missile/ball
	enabled  bool
	reflect  bool
	size     int // players: width multiplier 1, 2, or 4; missiles and ball: width in dots, 1, 2, 4, or 8
	motion   int
}

// Chip is a TIA-like beam-driven video/sound peripheral.
type Chip struct {
	dot  int
	line int
	// Frame is the number of complete frames rendered; exported for hosts
	// that want to detect vsync without polling the framebuffer.
	Frame uint64

	vsync  bool
	vblank bool

	colubk, colupf, colup0, colup1 uint8
	pf0, pf1, pf2                  uint8
	ctrlpf                         uint8
	nusiz0, nusiz1                 uint8

	player0, player1         object
	missile0, missile1, ball object

	hmoveLatched bool

	// Framebuffer holds one colour index (0..0x7F) per dot; index as
	// Framebuffer[line*DotsPerScanline+dot]. Exposed read-only to the host
	// (spec §5): callers must not mutate it.
	Framebuffer [ScanlinesPerFrame * DotsPerScanline]uint8

	inputRead InputFunc
	audioSink AudioFunc
	stall     StallFunc
}

// New returns a Chip with all registers zeroed and the beam at (0,0).
func New() *Chip {
	return &Chip{}
}

// SetInputFunc installs the host's digital-input callback (spec §9).
func (c *Chip) SetInputFunc(f InputFunc) { c.inputRead = f }

// SetAudioFunc installs the host's audio-sink callback.
func (c *Chip) SetAudioFunc(f AudioFunc) { c.audioSink = f }

// SetStallFunc installs the host's WSYNC-stall callback.
func (c *Chip) SetStallFunc(f StallFunc) { c.stall = f }

// Dot and Line report the current beam position, for diagnostics and tests.
func (c *Chip) Dot() int  { return c.dot }
func (c *Chip) Line() int { return c.line }

// Clock renders the current dot's pixel, then advances the beam by one dot,
// wrapping the line at the frame boundary and applying any latched HMOVE at
// every new scanline (spec §4.10).
func (c *Chip) Clock() {
	c.renderDot()
	c.dot++
	if c.dot >= DotsPerScanline {
		c.dot = 0
		c.line++
		c.applyLatchedMotion()
		if c.line >= ScanlinesPerFrame {
			c.line = 0
			c.Frame++
		}
	}
}

// IRQ: the beam chip never asserts an interrupt line in this specification.
func (c *Chip) IRQ() bool { return false }

func (c *Chip) doWSYNC() {
	if c.stall != nil {
		remaining := (DotsPerScanline - c.dot) / 3
		if remaining > 0 {
			c.stall(remaining)
		}
	}
	c.dot = DotsPerScanline - 1
}

func (c *Chip) applyLatchedMotion() {
	if !c.hmoveLatched {
		return
	}
	c.player0.x = wrapDot(c.player0.x + c.player0.motion)
	c.player1.x = wrapDot(c.player1.x + c.player1.motion)
	c.missile0.x = wrapDot(c.missile0.x + c.missile0.motion)
	c.missile1.x = wrapDot(c.missile1.x + c.missile1.motion)
	c.ball.x = wrapDot(c.ball.x + c.ball.motion)
	c.hmoveLatched = false
}

func wrapDot(x int) int {
	x %= DotsPerScanline
	if x < 0 {
		x += DotsPerScanline
	}
	return x
}
