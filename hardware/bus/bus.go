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

// Package bus implements the flat 64KiB address space and the machine-
// profile-driven dispatcher that routes CPU reads and writes to RAM, a
// write-protected ROM range, or a memory-mapped peripheral (spec §4.2, §6).
package bus

// Chip is anything the dispatcher can route an address window to: a
// register-file read/write pair, a per-cycle tick, and an interrupt line.
// Every peripheral in hardware/chips implements this.
type Chip interface {
	Read(offset uint16) uint8
	Write(offset uint16, v uint8)
	Clock()
	IRQ() bool
}

// addrRange is an inclusive [Low, High] byte range.
type addrRange struct {
	Low, High uint16
}

func (r addrRange) contains(addr uint16) bool {
	return addr >= r.Low && addr <= r.High
}

// window pairs a decode predicate with the chip it routes to. match returns
// the chip-local offset and whether addr falls inside the window.
type window struct {
	chip  Chip
	match func(addr uint16) (uint16, bool)
}

// Dispatcher is the bus described by spec §4.2: RAM backing store, a
// machine-profile's ROM write-protect ranges, and an ordered list of
// peripheral decode windows.
type Dispatcher struct {
	ram [1 << 16]uint8

	addrMask uint16 // 0xFFFF normally; 0x1FFF for the 6507's 13-bit bus

	protect []addrRange
	windows []window

	// chips is the fixed tick/IRQ-aggregation order: serial, floppy,
	// versatile, timer/RAM, port adapter, beam-video (spec §5). Attach
	// populates it in call order, so machine assembly must attach chips in
	// that order.
	chips []Chip
}

// New returns an empty Dispatcher with the full 16-bit address space and no
// write protection or peripherals attached.
func New() *Dispatcher {
	return &Dispatcher{addrMask: 0xFFFF}
}

// Enable6507Masking restricts every address to the low 13 bits, as the 6507
// variant of the CPU-bus coupling does (spec §3).
func (d *Dispatcher) Enable6507Masking() {
	d.addrMask = 0x1FFF
}

// Protect adds an inclusive ROM write-protect range (spec §6).
func (d *Dispatcher) Protect(low, high uint16) {
	d.protect = append(d.protect, addrRange{low, high})
}

// Attach routes any address for which match returns ok to chip, using the
// returned offset as the chip-local register index, and registers chip for
// per-cycle ticking and IRQ aggregation. Attachment order is both the
// window-probe order for Read/Write and the Clock/IRQ order, so callers
// must attach chips in the spec's declared stable order. Use AttachWindow
// instead when a chip needs more than one decode window (e.g. the timer/RAM
// chip's separate RAM and register windows on the 2600) so it is only
// ticked once.
func (d *Dispatcher) Attach(chip Chip, match func(addr uint16) (uint16, bool)) {
	d.AttachWindow(chip, match)
	d.chips = append(d.chips, chip)
}

// AttachWindow adds a decode window routing to chip without registering it
// for ticking — use alongside a prior Attach of the same chip to give it a
// second window.
func (d *Dispatcher) AttachWindow(chip Chip, match func(addr uint16) (uint16, bool)) {
	d.windows = append(d.windows, window{chip: chip, match: match})
}

func (d *Dispatcher) mask(addr uint16) uint16 {
	return addr & d.addrMask
}

// Read implements spec §4.2's Read(addr).
func (d *Dispatcher) Read(addr uint16) uint8 {
	addr = d.mask(addr)
	for _, w := range d.windows {
		if offset, ok := w.match(addr); ok {
			return w.chip.Read(offset)
		}
	}
	return d.ram[addr]
}

// Write implements spec §4.2's Write(addr, v): peripheral windows take
// priority over both ROM protection and plain RAM; outside any window, a
// write into a protected range is silently dropped.
func (d *Dispatcher) Write(addr uint16, v uint8) {
	addr = d.mask(addr)
	for _, w := range d.windows {
		if offset, ok := w.match(addr); ok {
			w.chip.Write(offset, v)
			return
		}
	}
	for _, r := range d.protect {
		if r.contains(addr) {
			return
		}
	}
	d.ram[addr] = v
}

// Clock ticks every attached chip once, in attachment order.
func (d *Dispatcher) Clock() {
	for _, c := range d.chips {
		c.Clock()
	}
}

// CheckIRQ is the logical OR of every attached chip's IRQ line (spec §4.2,
// §6).
func (d *Dispatcher) CheckIRQ() bool {
	for _, c := range d.chips {
		if c.IRQ() {
			return true
		}
	}
	return false
}

// LoadROM copies image into the address space starting at addr, bypassing
// write protection — the host's boot-loading path, not a peripheral-facing
// operation (spec §1 Non-goals: ROM image loading is the host's job, but it
// still needs somewhere to put the bytes).
func (d *Dispatcher) LoadROM(addr uint16, image []uint8) {
	copy(d.ram[addr:], image)
}

// PeekRAM reads the raw backing array without going through peripheral
// decode or masking — a diagnostics/test hook, never used on the hot path.
func (d *Dispatcher) PeekRAM(addr uint16) uint8 {
	return d.ram[addr]
}
