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

package port

import "testing"

func TestInputModeReturnsPinsAndIgnoresWrites(t *testing.T) {
	c := New()
	c.SetInputPins(0x3C)
	if got := c.Read(0); got != 0x3C {
		t.Fatalf("Read = %02X, want 3C", got)
	}
	c.Write(0, 0xFF)
	if got := c.Read(0); got != 0x3C {
		t.Fatalf("write in input mode was not ignored")
	}
}

func TestOutputModeReturnsLatch(t *testing.T) {
	c := New()
	c.SetDirection(true)
	c.Write(0, 0x55)
	if got := c.Read(0); got != 0x55 {
		t.Fatalf("Read = %02X, want 55", got)
	}
}
