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

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrDatabase is wrapped by all errors returned by the database package.
var ErrDatabase = errors.New("database")

// ErrKeyNotFound is returned when a key does not refer to an entry.
var ErrKeyNotFound = errors.New("database: key not found")

const maxEntries = 1000

// Activity specifies the type of activity that will be performed during the
// session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying

	// ActivityCreating is the same as ActivityModifying except that the
	// database file will be created if it does not already exist
	ActivityCreating
)

// the structure of the database file.
type record struct {
	Key  int        `yaml:"key"`
	Type string     `yaml:"type"`
	Data yaml.Node `yaml:"data"`
}

type dbFile struct {
	Entries []record `yaml:"entries"`
}

// Session keeps track of a database session.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Constructor
}

// StartSession starts/initialises a new DB session. The init function is
// called to register entry types before the database file is read.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Constructor),
	}

	if init != nil {
		err := init(db)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
		}
	}

	err := db.read()
	if err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Session) read() error {
	data, err := os.ReadFile(db.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && db.activity == ActivityCreating {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	var f dbFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(&f)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", ErrDatabase, db.path, err)
	}

	for _, r := range f.Entries {
		con, ok := db.entryTypes[r.Type]
		if !ok {
			return fmt.Errorf("%w: unrecognised entry type (%s) for key %d", ErrDatabase, r.Type, r.Key)
		}

		if _, ok := db.entries[r.Key]; ok {
			return fmt.Errorf("%w: duplicate key (%d)", ErrDatabase, r.Key)
		}

		ent := con()
		if r.Data.Kind != 0 {
			err = r.Data.Decode(ent)
			if err != nil {
				return fmt.Errorf("%w: key %d: %w", ErrDatabase, r.Key, err)
			}
		}

		db.entries[r.Key] = ent
	}

	return nil
}

// EndSession closes the database. If commitChanges is true then the entries
// are written to the database file.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges {
		return nil
	}

	if db.activity == ActivityReading {
		return fmt.Errorf("%w: cannot commit changes in a reading session", ErrDatabase)
	}

	var f dbFile
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]
		r := record{Key: key, Type: ent.EntryType()}
		err := r.Data.Encode(ent)
		if err != nil {
			return fmt.Errorf("%w: key %d: %w", ErrDatabase, key, err)
		}
		f.Entries = append(f.Entries, r)
	}

	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	err := enc.Encode(&f)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	err = enc.Close()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	err = os.WriteFile(db.path, b.Bytes(), 0o600)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return nil
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		_, err := fmt.Fprintf(output, "%03d %s\n", key, db.entries[key])
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Get returns the entry for the key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}
	return ent, nil
}

// Add an entry to the database using the lowest unused key. The key is
// returned.
func (db *Session) Add(ent Entry) (int, error) {
	if db.activity == ActivityReading {
		return 0, fmt.Errorf("%w: cannot add entries in a reading session", ErrDatabase)
	}

	if _, ok := db.entryTypes[ent.EntryType()]; !ok {
		return 0, fmt.Errorf("%w: unrecognised entry type (%s)", ErrDatabase, ent.EntryType())
	}

	var key int
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break // for loop
		}
	}

	if key == maxEntries {
		return 0, fmt.Errorf("%w: maximum entries exceeded (max %d)", ErrDatabase, maxEntries)
	}

	db.entries[key] = ent

	return key, nil
}

// Delete the entry with the key. The entry's CleanUp() function is called
// before it is removed.
func (db *Session) Delete(key int) error {
	if db.activity == ActivityReading {
		return fmt.Errorf("%w: cannot delete entries in a reading session", ErrDatabase)
	}

	ent, ok := db.entries[key]
	if !ok {
		return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}

	err := ent.CleanUp()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	delete(db.entries, key)

	return nil
}
