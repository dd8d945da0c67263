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

// Package video is a host-side convenience for turning the beam video
// chip's opaque 7-bit colour indices (spec §4.10's "colour encoding" note)
// into displayable RGB, entirely outside the core: nothing in hardware/tia
// imports this package.
package video

import "image/color"

// NTSC is a reference palette mapping each of the 128 possible colour
// index values (the low 7 bits of COLUBK/COLUPF/COLUP0/COLUP1) to an RGB
// triple, in the style of the standard Atari 2600 NTSC palette: 16 hues
// (index bits 4..7) at 8 luminance steps (index bits 1..3, bit 0 unused by
// convention since the chip always rounds colour values to even).
var NTSC = buildNTSCPalette()

func buildNTSCPalette() [128]color.RGBA {
	var p [128]color.RGBA
	for hue := 0; hue < 16; hue++ {
		for lum := 0; lum < 8; lum++ {
			idx := hue<<3 | lum
			p[idx] = hsvToRGB(hue, lum)
		}
	}
	return p
}

// hsvToRGB is a coarse approximation of the NTSC chroma/luma encoding the
// real TIA uses, good enough for a developer preview, not broadcast
// accuracy (spec §1 excludes host-side video presentation from its scope).
func hsvToRGB(hue, lum int) color.RGBA {
	// hue 0 is monochrome (greyscale ramp); the rest sweep the colour wheel.
	l := uint8(32 + lum*28)
	if hue == 0 {
		return color.RGBA{R: l, G: l, B: l, A: 0xFF}
	}

	angle := float64(hue-1) / 15.0 * 360.0
	r, g, b := hueToRGBComponents(angle)
	scale := func(c uint8) uint8 {
		return uint8((uint32(c) * uint32(l)) / 255)
	}
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: 0xFF}
}

func hueToRGBComponents(angle float64) (uint8, uint8, uint8) {
	h := angle / 60.0
	x := uint8(255 * (1 - absFloat(modFloat(h, 2)-1)))
	switch {
	case h < 1:
		return 255, x, 0
	case h < 2:
		return x, 255, 0
	case h < 3:
		return 0, 255, x
	case h < 4:
		return 0, x, 255
	case h < 5:
		return x, 0, 255
	default:
		return 255, 0, x
	}
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func modFloat(a, b float64) float64 {
	for a >= b {
		a -= b
	}
	return a
}

// RGBA maps a TIA colour index (0..0x7F) to an RGB colour using the NTSC
// reference palette. Indices outside range are masked to 7 bits.
func RGBA(index uint8) color.RGBA {
	return NTSC[index&0x7F]
}
