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

// Package diagnostics renders a live machine.Machine's object graph for
// debugging profile assemblies, separate from the emulated machine itself
// (spec §1 treats this kind of developer tooling as outside the core).
package diagnostics

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Dump writes a graphviz .dot rendering of v (typically a *machine.Machine)
// to w, showing how the CPU, bus, and attached peripherals reference one
// another.
func Dump(w io.Writer, v interface{}) {
	memviz.Map(w, v)
}
