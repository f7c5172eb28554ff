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

// Package database is a very simple way of storing arbitrary entry types in a
// YAML file. It's as simple as simple can be but is still useful in helping to
// organise what is essentially a flat list of records.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The first argument is the path to the database file on the local disk. The
// second argument is a description of the type of activity that will be
// happening during the session. In this instance, we are saying that the
// database will be created if it does not already exist. If we don't want to
// modify the database at all, then we can use ActivityReading.
//
// The third argument is the database initialisation function. The database can
// hold any number of entry types and the initialisation function tells the
// session which types to expect:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("foo", func() database.Entry { return &fooEntry{} })
//	}
//
// Each record in the file names its entry type. When the database is read,
// the constructor for that type creates an empty Entry and the record's data
// is decoded into it with the yaml package. Entry types should therefore be
// pointers to structs with yaml field tags.
//
// Once a database session has successfully initialised, entries can be added,
// removed and selected/listed, depending on the activity type.
package database
