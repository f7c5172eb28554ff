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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include the raw cells of each entry
	ByteCode bool

	// include data entries
	Data bool

	// mark executed entries with an asterisk
	Executed bool
}

// Write the disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	for _, e := range dsm.entries {
		dsm.writeLine(output, attr, e)
	}
}

// WriteAddress writes the entry containing the address to io.Writer.
func (dsm *Disassembly) WriteAddress(output io.Writer, attr WriteAttr, address uint64) error {
	e, ok := dsm.GetEntryByAddress(address)
	if !ok {
		return fmt.Errorf("disassembly: no entry at address %d", address)
	}
	attr.Data = true
	dsm.writeLine(output, attr, e)
	return nil
}

func (dsm *Disassembly) writeLine(output io.Writer, attr WriteAttr, e *Entry) {
	if e.Level == EntryLevelData && !attr.Data {
		return
	}

	s := strings.Builder{}

	if attr.Executed {
		if e.Level == EntryLevelExecuted {
			s.WriteString("* ")
		} else {
			s.WriteString("  ")
		}
	}

	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%-20s ", e.Bytecode()))
	}

	s.WriteString(e.String())
	s.WriteString("\n")

	io.WriteString(output, s.String())
}
