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

package database

import "fmt"

// Entry represents the generic entry in the database.
type Entry interface {
	// EntryType returns the string used to identify the entry type in the
	// database
	EntryType() string

	// String should return information about the entry in a human readable
	// format
	String() string

	// a clean up is performed when the entry is deleted from the database
	CleanUp() error
}

// Constructor returns a new, empty, instance of an entry type. The record
// data is decoded into the returned value.
type Constructor func() Entry

// RegisterEntryType tells the database what entries it may expect in the
// database and how to create them.
func (db *Session) RegisterEntryType(id string, con Constructor) error {
	if _, ok := db.entryTypes[id]; ok {
		return fmt.Errorf("%w: duplicate entry type (%s)", ErrDatabase, id)
	}
	db.entryTypes[id] = con
	return nil
}
