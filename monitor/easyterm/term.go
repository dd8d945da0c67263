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

// Package easyterm gives the monitor REPL just enough terminal control to
// restore canonical mode on exit and print formatted responses. The
// monitor reads whole lines through bufio.Scanner rather than individual
// keystrokes, so this is deliberately narrower than a full raw-mode/
// cbreak-mode/geometry-tracking terminal wrapper: only what monitor.go
// actually calls is kept.
package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal wraps a posix terminal's canonical-mode attributes so the
// monitor can restore them on Close after reading lines with the terminal
// left in its default (line-buffered, echoing) mode throughout.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios

	mu sync.Mutex
}

// Initialise records inputFile/outputFile and captures the terminal's
// current (canonical) attributes so CanonicalMode can restore them later.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm Terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm Terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)

	return nil
}

// CleanUp is a no-op hook kept for symmetry with Initialise; a monitor
// session holds no background goroutine or signal handler to tear down.
func (pt *Terminal) CleanUp() {}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// CanonicalMode restores the terminal's attributes as captured by
// Initialise.
func (pt *Terminal) CanonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}
