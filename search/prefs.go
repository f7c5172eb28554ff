// This file is part of GopherIntcode.
//
// GopherIntcode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherIntcode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherIntcode.  If not, see <https://www.gnu.org/licenses/>.

package search

import (
	"fmt"

	"github.com/jetsetilly/gopherintcode/prefs"
)

// Preferences for the search.
type Preferences struct {
	Target  prefs.Int
	Max     prefs.Int
	Address prefs.Int
}

// NewPreferences returns preferences with default values.
func NewPreferences() *Preferences {
	p := &Preferences{}

	nonNegative := func(v int) error {
		if v < 0 {
			return fmt.Errorf("value cannot be negative (%d)", v)
		}
		return nil
	}
	p.Target.SetValidation(nonNegative)
	p.Max.SetValidation(nonNegative)
	p.Address.SetValidation(nonNegative)

	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Target.Set(DefaultTarget)
	p.Max.Set(int(DefaultBounds.Max))
	p.Address.Set(DefaultBounds.Address)
}

// AddToDisk registers the preferences with the disk so that they can be
// saved and loaded.
func (p *Preferences) AddToDisk(dsk *prefs.Disk) error {
	if err := dsk.Add("search.target", &p.Target); err != nil {
		return err
	}
	if err := dsk.Add("search.max", &p.Max); err != nil {
		return err
	}
	return dsk.Add("search.address", &p.Address)
}

// Bounds returns the search bounds described by the preferences.
func (p *Preferences) Bounds() Bounds {
	return Bounds{
		Max:     uint64(p.Max.Get().(int)),
		Address: p.Address.Get().(int),
	}
}
