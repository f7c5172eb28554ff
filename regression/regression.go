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

package regression

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherintcode/database"
	"github.com/jetsetilly/gopherintcode/debugger/terminal/colorterm/easyterm/ansi"
)

// ErrUnknownEntry is returned when a key does not identify an entry in the
// regression database.
var ErrUnknownEntry = errors.New("regression: unknown entry")

// DBFile is the default name of the regression database. It is found in the
// resource directory.
const DBFile = "regression.yaml"

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag indicates that the outcome of the test should be recorded rather
	// than compared.
	//
	// message is the string that is to be printed during the regression. the
	// returned string is a description of the failure, if there was one
	regress(newRegression bool, output io.Writer, message string) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(programEntryType, func() database.Entry {
		return &ProgramRegression{}
	})
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbPath string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return fmt.Errorf("regression: %w", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd runs the regression and adds it to the database, recording the
// outcome.
func RegressAdd(output io.Writer, dbPath string, reg Regressor) error {
	db, err := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
	if err != nil {
		return fmt.Errorf("regression: %w", err)
	}

	msg := fmt.Sprintf("adding: %s", reg)
	_, _, err = reg.regress(true, output, msg)
	if err != nil {
		io.WriteString(output, "\n")
		db.EndSession(false)
		return err
	}

	key, err := db.Add(reg)
	if err != nil {
		db.EndSession(false)
		return fmt.Errorf("regression: %w", err)
	}

	io.WriteString(output, ansi.ClearLine)
	fmt.Fprintf(output, "\radded: %03d %s\n", key, reg)

	err = db.EndSession(true)
	if err != nil {
		return fmt.Errorf("regression: %w", err)
	}
	return nil
}

// RegressDelete removes an entry from the database. The user is asked for
// confirmation, which is read from the confirmation io.Reader.
func RegressDelete(output io.Writer, confirmation io.Reader, dbPath string, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return fmt.Errorf("%w: invalid key (%s)", ErrUnknownEntry, key)
	}

	db, err := database.StartSession(dbPath, database.ActivityModifying, initDBSession)
	if err != nil {
		return fmt.Errorf("regression: %w", err)
	}

	ent, err := db.Get(v)
	if err != nil {
		db.EndSession(false)
		return fmt.Errorf("%w: %w", ErrUnknownEntry, err)
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil && !errors.Is(err, io.EOF) {
		db.EndSession(false)
		return fmt.Errorf("regression: %w", err)
	}

	if confirm[0] != 'y' && confirm[0] != 'Y' {
		return db.EndSession(false)
	}

	err = db.Delete(v)
	if err != nil {
		db.EndSession(false)
		return fmt.Errorf("regression: %w", err)
	}

	fmt.Fprintf(output, "deleted test #%s from regression database\n", key)

	return db.EndSession(true)
}

// RegressRunTests runs the tests in the regression database. The filterKeys
// list specifies which entries to test. An empty list means that every entry
// should be tested.
func RegressRunTests(output io.Writer, dbPath string, verbose bool, failOnError bool, filterKeys []string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return fmt.Errorf("regression: %w", err)
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("%w: invalid key (%s)", ErrUnknownEntry, k)
		}
		if _, err := db.Get(v); err != nil {
			return fmt.Errorf("%w: %w", ErrUnknownEntry, err)
		}
		keys = append(keys, v)
	}

	numSucceed := 0
	numFail := 0
	numError := 0

	onSelect := func(key int, ent database.Entry) (bool, error) {
		reg, ok := ent.(Regressor)
		if !ok {
			return false, fmt.Errorf("regression: database entry %d does not satisfy Regressor interface", key)
		}

		msg := fmt.Sprintf("running: %03d %s", key, reg)
		ok, failure, err := reg.regress(false, output, msg)

		// once regress() has completed we clear the line ready for the
		// completion message
		io.WriteString(output, ansi.ClearLine)

		if err != nil {
			numError++
			fmt.Fprintf(output, "\r ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "  %v\n", err)
			}
			return !failOnError, nil
		}

		if !ok {
			numFail++
			fmt.Fprintf(output, "\rfailure: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "  %s\n", failure)
			}
			return true, nil
		}

		numSucceed++
		fmt.Fprintf(output, "\rsucceed: %03d %s\n", key, reg)

		return true, nil
	}

	err = db.SelectKeys(onSelect, keys...)

	numSkipped := db.NumEntries() - numSucceed - numFail - numError

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("regression tests: %d succeed, %d fail, %d skipped", numSucceed, numFail, numSkipped))
	if numError > 0 {
		s.WriteString(" [with errors]")
	}
	s.WriteString("\n")
	io.WriteString(output, s.String())

	return err
}
