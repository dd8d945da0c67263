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

// Profile identifies a machine whose ROM write-protect ranges this package
// knows about (spec §3, §6). Peripheral decode windows are assembled
// separately, by hardware/machine, since they depend on which chips a
// profile actually wires up.
type Profile int

const (
	ProfileGeneric Profile = iota
	ProfileC64
	ProfileC128
	ProfileVIC20
	ProfilePET
	ProfilePlus4
	ProfileBBCMicro
	ProfileAppleII
	ProfileAppleIIc
	ProfileAppleIIGS
	ProfileAtari2600
	ProfileAtari5200
	ProfileAtari7800
	ProfileAtari8bit
	ProfileAtariLynx
	ProfileNES
	ProfileFamicomDisk
	ProfileOric
	ProfileKIM1
	ProfileSYM1
	ProfileAIM65
	ProfileDrive1541
	ProfileDrive1050
	ProfileDrive1571
)

// protectRanges gives the ROM write-protect ranges for each profile (spec
// §6). A profile not listed here protects nothing.
var protectRanges = map[Profile][]addrRange{
	ProfileC64:         {{0xA000, 0xBFFF}, {0xE000, 0xFFFF}},
	ProfileC128:        {{0x4000, 0x7FFF}, {0xE000, 0xFFFF}},
	ProfileVIC20:       {{0x1000, 0x1FFF}, {0x8000, 0x8FFF}, {0xE000, 0xFFFF}},
	ProfilePET:         {{0xC000, 0xFFFF}},
	ProfilePlus4:       {{0x8000, 0xBFFF}, {0xFC00, 0xFFFF}},
	ProfileBBCMicro:    {{0x8000, 0xBFFF}, {0xC000, 0xFFFF}},
	ProfileAppleII:     {{0xD000, 0xFFFF}},
	ProfileAppleIIc:    {{0xC000, 0xFFFF}},
	ProfileAppleIIGS:   {{0xE000, 0xFFFF}},
	ProfileAtari2600:   {{0xF000, 0xFFFF}},
	ProfileAtari5200:   {{0xD800, 0xFFFF}},
	ProfileAtari7800:   {{0xF000, 0xFFFF}},
	ProfileAtari8bit:   {{0xC000, 0xFFFF}},
	ProfileAtariLynx:   {{0xFE00, 0xFFFF}},
	ProfileNES:         {{0x8000, 0xFFFF}},
	ProfileFamicomDisk: {{0xE000, 0xFFFF}},
	ProfileOric:        {{0xC000, 0xFFFF}},
	ProfileKIM1:        {{0x0000, 0x03FF}},
	ProfileSYM1:        {{0x0000, 0x0FFF}},
	ProfileAIM65:       {{0xE000, 0xFFFF}},
	ProfileDrive1541:   {{0xC000, 0xFFFF}},
	ProfileDrive1050:   {{0xC000, 0xFFFF}},
	ProfileDrive1571:   {{0x8000, 0xFFFF}},
}

// ApplyProfile installs the ROM write-protect ranges for p.
func (d *Dispatcher) ApplyProfile(p Profile) {
	for _, r := range protectRanges[p] {
		d.Protect(r.Low, r.High)
	}
}
