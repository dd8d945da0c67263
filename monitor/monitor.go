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

// Package monitor is a line-oriented REPL over a running machine.Machine:
// step N CPU cycles, peek/poke memory, print registers. It is
// illustrative scaffolding for cmd/chipset (spec §1), not part of the
// emulated machine.
package monitor

import (
	"os"
	"strconv"
	"strings"

	"github.com/eightbitbus/chipset/hardware/machine"
	"github.com/eightbitbus/chipset/logger"
	"github.com/eightbitbus/chipset/monitor/easyterm"
)

// Monitor drives a machine.Machine from line-oriented terminal input.
type Monitor struct {
	m  *machine.Machine
	tm easyterm.Terminal
}

// New wraps m with a REPL bound to stdin/stdout.
func New(m *machine.Machine) (*Monitor, error) {
	mon := &Monitor{m: m}
	if err := mon.tm.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, err
	}
	return mon, nil
}

// Close restores the terminal to canonical mode.
func (mon *Monitor) Close() {
	mon.tm.CanonicalMode()
	mon.tm.CleanUp()
}

// RunLine executes a single REPL command line, writing any response to the
// terminal. It returns false when the command was "quit".
func (mon *Monitor) RunLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "q":
		return false

	case "step", "s":
		n := 1
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				n = v
			}
		}
		for i := 0; i < n; i++ {
			mon.m.Step()
		}
		mon.tm.Print("%s\n", mon.m.CPU)

	case "regs", "r":
		mon.tm.Print("%s\n", mon.m.CPU)

	case "peek", "p":
		if len(fields) < 2 {
			mon.tm.Print("usage: peek <addr>\n")
			break
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "$"), 16, 16)
		if err != nil {
			mon.tm.Print("bad address: %v\n", err)
			break
		}
		mon.tm.Print("%04X: %02X\n", addr, mon.m.Bus.PeekRAM(uint16(addr)))

	case "poke":
		if len(fields) < 3 {
			mon.tm.Print("usage: poke <addr> <value>\n")
			break
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "$"), 16, 16)
		if err != nil {
			mon.tm.Print("bad address: %v\n", err)
			break
		}
		val, err := strconv.ParseUint(strings.TrimPrefix(fields[2], "$"), 16, 8)
		if err != nil {
			mon.tm.Print("bad value: %v\n", err)
			break
		}
		mon.m.Bus.Write(uint16(addr), uint8(val))

	case "log":
		logger.Tail(writerFunc(mon.tm.Print), 20)

	default:
		mon.tm.Print("unrecognised command: %s\n", fields[0])
	}

	return true
}

// writerFunc adapts easyterm.Terminal.Print's printf-style signature to
// io.Writer, so logger.Tail can write through the same terminal output.
type writerFunc func(string, ...interface{})

func (f writerFunc) Write(p []byte) (int, error) {
	f("%s", string(p))
	return len(p), nil
}
