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

import "testing"

type stubChip struct {
	reg [4]uint8
	irq bool
}

func (c *stubChip) Read(offset uint16) uint8    { return c.reg[offset] }
func (c *stubChip) Write(offset uint16, v uint8) { c.reg[offset] = v }
func (c *stubChip) Clock()                       {}
func (c *stubChip) IRQ() bool                    { return c.irq }

func TestReadWriteRoundTripOutsideProtectedWindows(t *testing.T) {
	d := New()
	d.Write(0x0200, 0x42)
	if got := d.Read(0x0200); got != 0x42 {
		t.Fatalf("Read = %02X, want 42", got)
	}
}

func TestWriteProtectedRangeDropsWrite(t *testing.T) {
	d := New()
	d.ApplyProfile(ProfileC64)
	d.ram[0xA000] = 0x11
	d.Write(0xA000, 0x99)
	if got := d.Read(0xA000); got != 0x11 {
		t.Fatalf("Read = %02X, want 11 (write should be dropped)", got)
	}
}

func TestPeripheralWindowTakesPriorityOverRAM(t *testing.T) {
	d := New()
	chip := &stubChip{}
	d.Attach(chip, SingleAddress(0x1C00))
	d.Write(0x1C00, 0x55)
	if chip.reg[0] != 0x55 {
		t.Fatalf("chip not written")
	}
	if got := d.Read(0x1C00); got != 0x55 {
		t.Fatalf("Read = %02X, want 55", got)
	}
}

func TestCheckIRQAggregatesAttachedChips(t *testing.T) {
	d := New()
	a := &stubChip{}
	b := &stubChip{irq: true}
	d.Attach(a, SingleAddress(0x10))
	d.Attach(b, SingleAddress(0x20))
	if !d.CheckIRQ() {
		t.Fatalf("CheckIRQ false, want true (b asserts)")
	}
}

func TestMaskWindowDecodesBeamVideoStyle(t *testing.T) {
	match := MaskWindow(0x1080, 0x0000, 6)
	if off, ok := match(0x002A); !ok || off != 0x2A {
		t.Fatalf("match(0x2A) = %d,%v want 2A,true", off, ok)
	}
	if _, ok := match(0x1000); ok {
		t.Fatalf("match(0x1000) matched, should not (bit 12 set)")
	}
}
