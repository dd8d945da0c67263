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

package pia

import "testing"

func TestDDRAccessToggle(t *testing.T) {
	c := New()
	c.Write(RegCtrlA, CRDDRAccess)
	c.Write(RegPortA, 0xF0)
	if c.ddra != 0xF0 {
		t.Fatalf("ddra = %02X, want F0", c.ddra)
	}
	c.Write(RegCtrlA, 0)
	c.Write(RegPortA, 0x0F)
	if c.ora != 0x0F {
		t.Fatalf("ora = %02X, want 0F", c.ora)
	}
}

func TestExternalInputRaisesFlagWhenEnabled(t *testing.T) {
	c := New()
	c.Write(RegCtrlA, CRIRQEnable)
	c.SetPortAInput(0x80)
	if c.cra&CRIRQFlag == 0 {
		t.Fatalf("CA1 flag not raised")
	}
	if !c.IRQ() {
		t.Fatalf("IRQ not asserted")
	}
	c.Read(RegPortA)
	if c.cra&CRIRQFlag != 0 {
		t.Fatalf("flag not cleared by data read")
	}
}

func TestPortReadCombinesOutputAndInput(t *testing.T) {
	c := New()
	c.Write(RegCtrlA, CRDDRAccess)
	c.Write(RegPortA, 0xF0)
	c.Write(RegCtrlA, 0)
	c.Write(RegPortA, 0xA0)
	c.SetPortAInput(0x0F)
	if got := c.Read(RegPortA); got != 0xAF {
		t.Fatalf("port read = %02X, want AF", got)
	}
}
