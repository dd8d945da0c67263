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

// Package machine assembles a CPU, a bus, and a profile's peripheral set
// into a runnable whole (spec §2, §6). Nothing here is itself timing
// critical; it exists purely to wire the pieces the other packages define.
package machine

import (
	"github.com/eightbitbus/chipset/chiperr"
	"github.com/eightbitbus/chipset/clocks"
	"github.com/eightbitbus/chipset/config"
	"github.com/eightbitbus/chipset/hardware/bus"
	"github.com/eightbitbus/chipset/hardware/chips/fdc"
	"github.com/eightbitbus/chipset/hardware/chips/pia"
	"github.com/eightbitbus/chipset/hardware/chips/port"
	"github.com/eightbitbus/chipset/hardware/chips/riot"
	"github.com/eightbitbus/chipset/hardware/chips/serial"
	"github.com/eightbitbus/chipset/hardware/chips/via"
	"github.com/eightbitbus/chipset/hardware/cpu"
	"github.com/eightbitbus/chipset/hardware/tia"
)

// Machine is a complete, runnable assembly. Only the fields relevant to the
// constructed profile are non-nil.
type Machine struct {
	Bus *bus.Dispatcher
	CPU *cpu.CPU

	TIA    *tia.Chip
	RIOT   *riot.Chip
	VIA    *via.Chip
	UserVIA *via.Chip
	FDC    *fdc.Chip
	PIA    *pia.Chip
	Serial *serial.Chip
	Port   *port.Chip
}

// New assembles a Machine for profile p, clocked at freq. cfg supplies the
// CPU's documented tunables (spec §9); a nil cfg uses config.NewDefault().
func New(p bus.Profile, freq clocks.MHz, cfg *config.Tunables) (*Machine, error) {
	if cfg == nil {
		cfg = config.NewDefault()
	}

	b := bus.New()
	b.ApplyProfile(p)

	m := &Machine{Bus: b, CPU: cpu.New(b, cfg)}

	switch p {
	case bus.ProfileAtari2600:
		m.assembleAtari2600(b)
	case bus.ProfileBBCMicro:
		m.assembleBBCMicro(b, freq)
	case bus.ProfileGeneric:
		m.assembleGeneric(b)
	default:
		return nil, chiperr.New(chiperr.UnknownProfile, int(p))
	}

	return m, nil
}

// assembleAtari2600 wires the beam video chip and the timer/RAM chip onto
// the bus at the windows spec §6 gives for "the 2600-family assembly". The
// 2600 couples its CPU to the bus through a 6507, which only brings out 13
// of the 6502's 16 address lines (spec §3), so every access aliases across
// the unbonded top three bits; Enable6507Masking reproduces that.
func (m *Machine) assembleAtari2600(b *bus.Dispatcher) {
	b.Enable6507Masking()
	m.CPU.Enable6507Masking()

	m.RIOT = riot.New()
	b.Attach(m.RIOT, atari2600RIOTRAMWindow)
	b.AttachWindow(m.RIOT, atari2600RIOTRegisterWindow)

	m.TIA = tia.New()
	b.Attach(&tiaDotTicker{chip: m.TIA}, bus.MaskWindow(0x1080, 0x0000, 6))

	m.TIA.SetStallFunc(func(cpuCycles int) { m.CPU.AddStallCycles(int32(cpuCycles)) })
}

// tiaDotTicker adapts tia.Chip to bus.Chip so the dispatcher's once-per-cycle
// Clock() drives three beam dots per CPU cycle, not one. Spec §4.10: "three
// dot-clocks equal one CPU cycle"; tia.Chip.Clock itself advances exactly one
// dot per call, matching doWSYNC's division by three, so the 3x ratio has to
// be supplied by whatever ticks it.
type tiaDotTicker struct {
	chip *tia.Chip
}

func (t *tiaDotTicker) Read(offset uint16) uint8     { return t.chip.Read(offset) }
func (t *tiaDotTicker) Write(offset uint16, v uint8) { t.chip.Write(offset, v) }
func (t *tiaDotTicker) IRQ() bool                    { return t.chip.IRQ() }

func (t *tiaDotTicker) Clock() {
	t.chip.Clock()
	t.chip.Clock()
	t.chip.Clock()
}

// The timer/RAM chip presents a single local offset space to riot.Chip:
// 0x00..0x7F is RAM, 0x80.. selects a register (spec §4.5). The bus exposes
// it through two separate address windows (spec §6): RAM at 0x0080-0x00FF
// maps straight through, and I/O at 0x0280-0x0297 maps into the upper half
// of that same local space.
func atari2600RIOTRAMWindow(addr uint16) (uint16, bool) {
	if addr < 0x0080 || addr > 0x00FF {
		return 0, false
	}
	return addr - 0x0080, true
}

func atari2600RIOTRegisterWindow(addr uint16) (uint16, bool) {
	if addr < 0x0280 || addr > 0x0297 {
		return 0, false
	}
	return 0x80 | ((addr - 0x0280) & 0x1F), true
}

// assembleBBCMicro wires the system VIA, a second user VIA, and the floppy
// controller onto the bus at the windows spec §6 gives for "the BBC Micro
// assembly". The system VIA's window already covers its own 0xFE50-0xFE5F
// mirror (spec §6), so RangeWindow needs no separate mirror attachment.
func (m *Machine) assembleBBCMicro(b *bus.Dispatcher, freq clocks.MHz) {
	m.FDC = fdc.New(freq)
	b.Attach(m.FDC, bus.RangeWindow(0xFE80, 0xFE83, 2))

	m.VIA = via.New()
	b.Attach(m.VIA, bus.RangeWindow(0xFE40, 0xFE5F, 4))

	m.UserVIA = via.New()
	b.Attach(m.UserVIA, bus.RangeWindow(0xFE60, 0xFE6F, 4))
}

// assembleGeneric wires the serial interface, the port-interface adapter,
// and the simple single-port chip onto the bus at the remaining windows
// spec §6 lists, for profiles that don't name a dedicated assembly.
func (m *Machine) assembleGeneric(b *bus.Dispatcher) {
	m.Serial = serial.New()
	b.Attach(m.Serial, bus.RangeWindow(0xD000, 0xD001, 1))

	m.PIA = pia.New()
	b.Attach(m.PIA, bus.RangeWindow(0xE840, 0xE843, 2))

	m.Port = port.New()
	b.Attach(m.Port, bus.SingleAddress(0x1C00))
}

// Step advances the machine by one CPU Step call; the CPU drives the bus
// clock as Step's contract requires.
func (m *Machine) Step() {
	m.CPU.Step()
}
