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

// Package clocks names the CPU clock frequency, in MHz, of each machine
// profile. Frequency is a scalar input to the core (spec §4.9, §9): it is
// threaded explicitly through machine construction rather than kept as a
// mutable global, so that more than one profile can be emulated in the same
// process without interference.
package clocks

// MHz is a CPU clock frequency expressed in megahertz.
type MHz float64

// Frequencies for every profile referenced by spec §3/§6. Values are the
// commonly cited nominal NTSC/PAL figures for each machine; a host is free to
// override them when constructing a machine.
const (
	Generic   MHz = 1.0
	C64       MHz = 0.985248
	C128      MHz = 0.985248
	VIC20     MHz = 1.108404
	PET       MHz = 1.0
	Plus4     MHz = 1.7734476
	AppleII   MHz = 1.0227142857
	AppleIIc  MHz = 1.0227142857
	AppleIIGS MHz = 2.8
	Atari2600 MHz = 1.193182
	Atari5200 MHz = 1.7895
	Atari7800 MHz = 1.79
	Atari8bit MHz = 1.7895
	AtariLynx MHz = 16.0
	NES       MHz = 1.7897725
	FamiDisk  MHz = 1.7897725
	BBCMicro  MHz = 2.0
	Oric      MHz = 1.0
	KIM1      MHz = 1.0
	SYM1      MHz = 1.0
	AIM65     MHz = 1.0
	Drive1541 MHz = 1.0
	Drive1571 MHz = 2.0
	DriveAtari MHz = 1.0
)
