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

// nusizWidth returns the width multiplier encoded in a NUSIZx value's low
// three bits: values 5 and 7 double and quadruple a single copy, everything
// else (including the multi-copy values 1..4 and 6) draws at normal width
// (spec §4.10).
func nusizWidth(nusiz uint8) int {
	switch nusiz & 0x07 {
	case 5:
		return 2
	case 7:
		return 4
	default:
		return 1
	}
}

// missileWidth decodes a NUSIZx value's bits 4..5, the missile's own width
// in dots, independent of the player copy/size encoding in bits 0..2.
func missileWidth(nusiz uint8) int {
	return 1 << uint((nusiz>>4)&0x03)
}

// ballWidth decodes CTRLPF bits 4..5 the same way.
func ballWidth(ctrlpf uint8) int {
	return 1 << uint((ctrlpf>>4)&0x03)
}

// nusizCopyOffsets gives the extra copy start offsets, in dots, for each
// NUSIZx encoding: values 0, 5 and 7 draw one copy, 1/2/4 draw the primary
// plus one further copy and 3/6 the primary plus two, at fixed spacings from the primary
// position (standard TIA NUSIZ spacing; not spelled out numerically in the
// source material, so fixed here to the well-known two-copy/three-copy/
// widely-spaced table).
func nusizCopyOffsets(nusiz uint8) []int {
	switch nusiz & 0x07 {
	case 1:
		return []int{0, 16}
	case 2:
		return []int{0, 32}
	case 3:
		return []int{0, 16, 32}
	case 4:
		return []int{0, 64}
	case 6:
		return []int{0, 32, 64}
	default:
		return []int{0}
	}
}

// objectCovers reports whether a player covers the given dot, treating gfx
// as MSB-first across size-scaled dots, honoring the NUSIZ copy table.
// width here is the player's NUSIZ width multiplier (1, 2, or 4), so each
// graphics bit spans width dots and the whole player 8*width; missiles and the ball use their own
// direct-width checks instead (missileCovers, ballCovers) since their NUSIZ
// bits already give a dot count, not a multiplier.
func objectCovers(x int, nusizForCopies uint8, width int, dot int) (int, bool) {
	for _, off := range nusizCopyOffsets(nusizForCopies) {
		start := wrapDot(x + off)
		span := 8 * width
		rel := dot - start
		if rel < 0 {
			rel += DotsPerScanline
		}
		if rel < span {
			return rel / width, true
		}
	}
	return 0, false
}

// missileCovers reports whether a missile, drawn at its NUSIZ-encoded full
// width in dots, covers the given dot. Missiles share their paired player's
// NUSIZ copy table (same multi-copy offsets), but not its width scaling.
func missileCovers(x, width int, nusizForCopies uint8, dot int) bool {
	if width == 0 {
		width = 1
	}
	for _, off := range nusizCopyOffsets(nusizForCopies) {
		start := wrapDot(x + off)
		rel := dot - start
		if rel < 0 {
			rel += DotsPerScanline
		}
		if rel < width {
			return true
		}
	}
	return false
}

func graphicsBit(gfx uint8, bitIdx int, reflect bool) bool {
	if bitIdx < 0 || bitIdx > 7 {
		return false
	}
	if reflect {
		return gfx&(1<<uint(bitIdx)) != 0
	}
	return gfx&(1<<uint(7-bitIdx)) != 0
}

// playfieldBit reports the playfield's pixel at the given dot. PF0's four
// high bits (bits 4..7) read out low-to-high, then PF1 reads high-to-low,
// then PF2 reads low-to-high, giving the 20-bit pattern spec §4.10
// describes. Only the first 80 of each 114-dot half carries a playfield
// bit, four dots per bit (20*4=80); the remaining 34 dots of the half
// repeat the playfield's last bit, since neither the original nor the
// specification states what covers that remainder and a flat colour edge
// reads better than a hard cutoff. CTRLPF bit 0 mirrors the right half
// instead of repeating the left.
func (c *Chip) playfieldBit(dot int) bool {
	half := dot
	rightHalf := false
	if dot >= DotsPerScanline/2 {
		half = dot - DotsPerScanline/2
		rightHalf = true
	}

	mirror := c.ctrlpf&0x01 != 0
	effective := half
	if rightHalf && mirror {
		effective = DotsPerScanline/2 - 1 - half
	}

	bitIdx := effective / 4
	if bitIdx > 19 {
		bitIdx = 19
	}

	var bit bool
	switch {
	case bitIdx < 4:
		bit = c.pf0&(1<<uint(4+bitIdx)) != 0
	case bitIdx < 12:
		b := bitIdx - 4
		bit = c.pf1&(1<<uint(7-b)) != 0
	default:
		b := bitIdx - 12
		bit = c.pf2&(1<<uint(b)) != 0
	}
	return bit
}

// renderDot computes the colour for the current beam position and stores it
// in the framebuffer, applying the object priority order: player/missile
// objects over the playfield and ball, playfield and ball sharing the same
// priority, background last (spec §4.10).
func (c *Chip) renderDot() {
	idx := c.line*DotsPerScanline + c.dot
	if idx < 0 || idx >= len(c.Framebuffer) {
		return
	}
	if c.vblank {
		c.Framebuffer[idx] = 0
		return
	}

	colour := c.colubk

	if c.playfieldBit(c.dot) || (c.ball.enabled && c.ballCovers(c.dot)) {
		colour = c.colupf
	}

	if c.missile0.enabled {
		if missileCovers(c.missile0.x, c.missile0.size, c.nusiz0, c.dot) {
			colour = c.colup0
		}
	}
	if c.missile1.enabled {
		if missileCovers(c.missile1.x, c.missile1.size, c.nusiz1, c.dot) {
			colour = c.colup1
		}
	}

	if bitIdx, ok := objectCovers(c.player0.x, c.nusiz0, c.player0.size, c.dot); ok {
		if graphicsBit(c.player0.gfx, bitIdx, c.player0.reflect) {
			colour = c.colup0
		}
	}
	if bitIdx, ok := objectCovers(c.player1.x, c.nusiz1, c.player1.size, c.dot); ok {
		if graphicsBit(c.player1.gfx, bitIdx, c.player1.reflect) {
			colour = c.colup1
		}
	}

	c.Framebuffer[idx] = colour
}

func (c *Chip) ballCovers(dot int) bool {
	width := c.ball.size
	if width == 0 {
		width = 1
	}
	start := c.ball.x
	span := width
	rel := dot - start
	if rel < 0 {
		rel += DotsPerScanline
	}
	return rel < span
}
