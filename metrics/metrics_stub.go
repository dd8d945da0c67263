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

//go:build !statsview
// +build !statsview

package metrics

import "io"

// Launch starts no server in builds without the statsview tag; it only
// writes a line to output saying the server is not available.
func Launch(output io.Writer) {
	output.Write([]byte("stats server not available in this build\n"))
}

// Available reports whether a statsview server can be launched in this
// build.
func Available() bool {
	return false
}
