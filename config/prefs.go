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

package config

import "github.com/eightbitbus/chipset/prefs"

// tunablesDisk bridges Tunables' atomic cells to the prefs package's
// disk-persistence and command-line-override machinery, so a host can save
// a chosen silicon profile between runs or override it for a single
// invocation without recompiling.
type tunablesDisk struct {
	illegalMagic prefs.Int
	decimal      prefs.Bool
}

// Bind attaches a disk-backed pref set to t. Loading the returned Disk
// (or pushing a command-line group and reading from it beforehand) updates
// t's values in place via the prefs hooks.
func (t *Tunables) Bind(path string) (*prefs.Disk, error) {
	dsk, err := prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	td := &tunablesDisk{}
	td.illegalMagic.SetHookPost(func(v prefs.Value) error {
		t.SetIllegalMagic(uint8(v.(int)))
		return nil
	})
	td.decimal.SetHookPost(func(v prefs.Value) error {
		t.SetDecimalFlagsFromBinary(v.(bool))
		return nil
	})

	if err := td.illegalMagic.Set(int(t.IllegalMagic())); err != nil {
		return nil, err
	}
	if err := td.decimal.Set(t.DecimalFlagsFromBinary()); err != nil {
		return nil, err
	}

	if err := dsk.Add("cpu.illegalmagic", &td.illegalMagic); err != nil {
		return nil, err
	}
	if err := dsk.Add("cpu.decimalflagsfrombinary", &td.decimal); err != nil {
		return nil, err
	}

	return dsk, nil
}
