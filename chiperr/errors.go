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

// Package chiperr is the error type used for host-facing setup failures.
// Nothing in the hot path (Read, Write, Step, Clock) ever returns one of
// these; per spec, the core treats bus and peripheral misbehaviour as
// hardware-accurate side effects, not software errors.
package chiperr

import "fmt"

// Errno identifies a specific error condition.
type Errno int

// Error categories.
const (
	UnknownProfile Errno = iota
	UnsupportedCommand
	DiskNotInserted
	DiskWriteProtected
	InvalidDiskImage
)

var messages = map[Errno]string{
	UnknownProfile:      "unrecognised machine profile (%v)",
	UnsupportedCommand:  "floppy controller received an unsupported command (%#02x)",
	DiskNotInserted:     "no disk inserted in drive",
	DiskWriteProtected:  "disk is write-protected",
	InvalidDiskImage:    "disk image is invalid (%s)",
}

// Error is the error type returned by setup-time functions across the module.
type Error struct {
	Errno  Errno
	Values []interface{}
}

// New creates an Error for the given Errno, formatted with values.
func New(errno Errno, values ...interface{}) Error {
	return Error{Errno: errno, Values: values}
}

func (e Error) Error() string {
	return fmt.Sprintf(messages[e.Errno], e.Values...)
}
