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

// Package config holds the handful of documented, swappable constants the
// spec calls out as implementation choices rather than fixed hardware facts
// (spec §9 Design Notes). Each value lives in an atomic cell so a host can
// change it between runs without synchronising with a running CPU goroutine
// of its own, mirroring the atomic-value preference cells the reference
// project uses for the same purpose.
package config

import "sync/atomic"

// Tunables holds the per-machine configurable constants. The zero value is
// not meaningful; use NewDefault.
type Tunables struct {
	// illegalMagic is the "magic constant" ANE and LAX #imm OR into the
	// accumulator before masking with X and the operand (spec §4.3).
	illegalMagic atomic.Uint32

	// decimalFlagsFromBinary controls whether decimal-mode ADC/SBC set Z and
	// N from the binary result (the documented NMOS quirk, spec §4.3) or
	// from the decimal-adjusted result. Default true.
	decimalFlagsFromBinary atomic.Bool
}

// NewDefault returns Tunables set to the values spec.md documents as the
// faithful NMOS behaviour.
func NewDefault() *Tunables {
	t := &Tunables{}
	t.illegalMagic.Store(0xEE)
	t.decimalFlagsFromBinary.Store(true)
	return t
}

// IllegalMagic returns the configured ANE/LAX magic constant.
func (t *Tunables) IllegalMagic() uint8 {
	return uint8(t.illegalMagic.Load())
}

// SetIllegalMagic overrides the ANE/LAX magic constant for testing against a
// different silicon sample.
func (t *Tunables) SetIllegalMagic(v uint8) {
	t.illegalMagic.Store(uint32(v))
}

// DecimalFlagsFromBinary reports whether decimal ADC/SBC derive Z/N from the
// binary sum rather than the decimal-adjusted one.
func (t *Tunables) DecimalFlagsFromBinary() bool {
	return t.decimalFlagsFromBinary.Load()
}

// SetDecimalFlagsFromBinary overrides the decimal Z/N source.
func (t *Tunables) SetDecimalFlagsFromBinary(v bool) {
	t.decimalFlagsFromBinary.Store(v)
}
