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

package machine

import (
	"testing"

	"github.com/eightbitbus/chipset/clocks"
	"github.com/eightbitbus/chipset/hardware/bus"
	"github.com/eightbitbus/chipset/hardware/chips/fdc"
)

func TestAtari2600AssemblyRoutesRIOTRAMAndRegisters(t *testing.T) {
	m, err := New(bus.ProfileAtari2600, clocks.Atari2600, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.TIA == nil || m.RIOT == nil {
		t.Fatalf("expected TIA and RIOT to be wired")
	}

	m.Bus.Write(0x0090, 0x42)
	if got := m.Bus.Read(0x0090); got != 0x42 {
		t.Fatalf("RIOT RAM round trip = %#02x, want 0x42", got)
	}

	// divide-64 timer register is at local offset 0x16; the bus window for
	// the I/O range starts at 0x0280.
	m.Bus.Write(0x0280+0x16, 0x04)
	for i := 0; i < 256; i++ {
		m.RIOT.Clock()
	}
	if !m.RIOT.IRQ() {
		t.Fatalf("expected RIOT timer IRQ after 256 cycles at divide-64 from 4")
	}
}

func TestAtari2600AssemblyMasks6507AddressSpace(t *testing.T) {
	m, err := New(bus.ProfileAtari2600, clocks.Atari2600, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m.Bus.Write(0x1000, 0x42)
	if got := m.Bus.Read(0x3000); got != 0x42 {
		t.Fatalf("0x3000 = %#02x, want 0x42 aliased from 0x1000 via the 6507's 13-bit bus", got)
	}
}

func TestBBCMicroAssemblyRoutesBothVIAsAndFDC(t *testing.T) {
	m, err := New(bus.ProfileBBCMicro, clocks.BBCMicro, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.VIA == nil || m.UserVIA == nil || m.FDC == nil {
		t.Fatalf("expected system VIA, user VIA, and FDC to be wired")
	}

	m.Bus.Write(0xFE4E, 0xFF) // IER on system VIA
	if m.Bus.Read(0xFE4E)&0x80 == 0 {
		t.Fatalf("IER read did not force bit 7")
	}

	m.Bus.Write(0xFE80, 0x80) // read sector with no disk
	if m.Bus.Read(0xFE80)&fdc.StatusRNF == 0 {
		t.Fatalf("expected RNF status immediately on read-sector with no disk")
	}
}

func TestGenericAssemblyRoutesSerialPIAAndPort(t *testing.T) {
	m, err := New(bus.ProfileGeneric, clocks.Generic, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Serial == nil || m.PIA == nil || m.Port == nil {
		t.Fatalf("expected serial, PIA, and port chips to be wired")
	}

	m.Port.SetDirection(true)
	m.Bus.Write(0x1C00, 0x55)
	if got := m.Bus.Read(0x1C00); got != 0x55 {
		t.Fatalf("port chip round trip = %#02x, want 0x55", got)
	}
}
