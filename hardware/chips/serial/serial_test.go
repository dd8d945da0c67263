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

package serial

import "testing"

func TestTXCompletesAfterTenTicksAtDiv1(t *testing.T) {
	c := New()
	c.Write(1, ClockDiv1) // control
	c.Write(0, 0x55)      // data
	if c.Read(1)&StatusTDRE != 0 {
		t.Fatalf("TDRE set immediately after write, want clear")
	}
	for i := 0; i < 9; i++ {
		c.Clock()
	}
	if c.statusReg&StatusTDRE != 0 {
		t.Fatalf("TDRE set after 9 ticks, want still clear")
	}
	c.Clock()
	if c.statusReg&StatusTDRE == 0 {
		t.Fatalf("TDRE clear after 10 ticks, want set")
	}
}

func TestOverrunOnSecondReceiveBeforeRead(t *testing.T) {
	c := New()
	c.ReceiveByte(0x41, false, false)
	c.ReceiveByte(0x42, false, false)
	if c.statusReg&StatusOVRN == 0 {
		t.Fatalf("OVRN not set on overrun")
	}
	if c.dataReg != 0x41 {
		t.Fatalf("dataReg = %02X, want 41 (first byte kept)", c.dataReg)
	}
}

func TestIRQAssertsOnlyWhenEnabledAndRDRF(t *testing.T) {
	c := New()
	c.ReceiveByte(0x41, false, false)
	if c.IRQ() {
		t.Fatalf("IRQ asserted without RX-IRQ-enable")
	}
	c.Write(1, ControlRXIRQEnable)
	if !c.IRQ() {
		t.Fatalf("IRQ not asserted with enable set and RDRF set")
	}
	c.Read(0)
	if c.IRQ() {
		t.Fatalf("IRQ still asserted after data read clears RDRF")
	}
}
