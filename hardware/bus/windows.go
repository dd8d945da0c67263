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

package bus

// MaskWindow builds a decode predicate for the "(addr & mask) == value"
// style window spec §6 describes for the beam video and VIC chips. offsetBits
// is how many low bits of addr become the chip-local register offset.
func MaskWindow(mask, value uint16, offsetBits uint) func(uint16) (uint16, bool) {
	offsetMask := uint16(1)<<offsetBits - 1
	return func(addr uint16) (uint16, bool) {
		if addr&mask != value {
			return 0, false
		}
		return addr & offsetMask, true
	}
}

// RangeWindow builds a decode predicate for a contiguous [low, high] range,
// with the chip-local offset being addr-low masked to offsetBits.
func RangeWindow(low, high uint16, offsetBits uint) func(uint16) (uint16, bool) {
	offsetMask := uint16(1)<<offsetBits - 1
	return func(addr uint16) (uint16, bool) {
		if addr < low || addr > high {
			return 0, false
		}
		return (addr - low) & offsetMask, true
	}
}

// SingleAddress builds a decode predicate that matches exactly one address,
// always presenting offset 0 — the simple single-port chip's window (spec
// §6).
func SingleAddress(addr uint16) func(uint16) (uint16, bool) {
	return func(a uint16) (uint16, bool) {
		if a != addr {
			return 0, false
		}
		return 0, true
	}
}
