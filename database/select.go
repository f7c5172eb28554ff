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

// SelectAll entries in the database. onSelect can be nil.
//
// onSelect should return false when the selection should not continue. The
// selection also stops if onSelect returns an error.
func (db *Session) SelectAll(onSelect func(int, Entry) (bool, error)) error {
	return db.SelectKeys(onSelect)
}

// SelectKeys selects the entries with the keys in the list. An empty list
// selects every entry. Entries are selected in the order of the list.
func (db *Session) SelectKeys(onSelect func(int, Entry) (bool, error), keys ...int) error {
	if onSelect == nil {
		onSelect = func(_ int, _ Entry) (bool, error) { return true, nil }
	}

	if len(keys) == 0 {
		keys = db.SortedKeyList()
	}

	for _, key := range keys {
		ent, err := db.Get(key)
		if err != nil {
			return err
		}
		ok, err := onSelect(key, ent)
		if err != nil {
			return err
		}
		if !ok {
			break // for loop
		}
	}

	return nil
}
