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
	"sync"

	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/instructions"
)

// Disassembly represents the annotated disassembly of an intcode program.
type Disassembly struct {
	// entries in address order
	entries []*Entry

	// indexed by address. every cell refers to the entry it belongs to
	reference []*Entry

	crit sync.Mutex
}

// FromProgram disassembles the program. If legacyStride is true then the
// walk starts at the second record, to match a CPU that advances the
// instruction pointer before decoding.
func FromProgram(program []uint64, legacyStride bool) *Disassembly {
	dsm := &Disassembly{
		reference: make([]*Entry, len(program)),
	}

	var start uint64
	if legacyStride {
		start = instructions.Stride
	}

	// cells before the start address are data
	for a := uint64(0); a < start && a < uint64(len(program)); a++ {
		dsm.add(dataEntry(program, a))
	}

	a := start
	for a < uint64(len(program)) {
		e := decode(program, a)
		dsm.add(e)
		a += uint64(len(e.Cells))

		if e.Result.Defn.Operator == instructions.Halt || e.Result.Defn.Operator == instructions.Invalid {
			break // for loop
		}
	}

	for ; a < uint64(len(program)); a++ {
		dsm.add(dataEntry(program, a))
	}

	return dsm
}

func (dsm *Disassembly) add(e *Entry) {
	dsm.entries = append(dsm.entries, e)
	for i := range e.Cells {
		dsm.reference[e.Address()+uint64(i)] = e
	}
}

func dataEntry(program []uint64, address uint64) *Entry {
	return &Entry{
		Level:  EntryLevelData,
		Result: execution.Result{Address: address},
		Cells:  program[address : address+1],
	}
}

// decode the instruction at the address. the number of cells in the entry
// is the number of cells occupied by the instruction, limited by the end of
// the program.
func decode(program []uint64, address uint64) *Entry {
	defn := instructions.Decode(program[address])

	e := &Entry{
		Level: EntryLevelDecoded,
		Result: execution.Result{
			Address: address,
			Defn:    defn,
		},
	}

	end := address + 1
	if defn.IsBinary() {
		end = min(address+instructions.Stride, uint64(len(program)))
		for i := range end - address - 1 {
			e.Result.Operands[i] = program[address+i+1]
		}
	}
	e.Cells = program[address:end]

	return e
}

// Len returns the number of entries in the disassembly.
func (dsm *Disassembly) Len() int {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	return len(dsm.entries)
}

// GetEntryByAddress returns the disassembly entry that the address belongs
// to.
func (dsm *Disassembly) GetEntryByAddress(address uint64) (*Entry, bool) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	if address >= uint64(len(dsm.reference)) {
		return nil, false
	}
	return dsm.reference[address], true
}

// UpdateEntry to more closely resemble the most recent execution.Result. If
// the result is for an address that is not the start of an instruction
// entry, or the opcode has changed since the disassembly was made, then the
// entry is replaced.
func (dsm *Disassembly) UpdateEntry(result execution.Result) {
	if result.Defn == nil || result.Address >= uint64(len(dsm.reference)) {
		return
	}

	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	e := dsm.reference[result.Address]
	if e.Address() == result.Address && e.Result.Defn != nil && e.Result.Defn.Opcode == result.Defn.Opcode {
		e.Level = EntryLevelExecuted
		e.Result = result
		return
	}

	// new entry from the result. the cells are copied from the entries
	// it overlaps, which may themselves be out of date
	n := 1
	if result.Defn.IsBinary() {
		n = min(instructions.Stride, len(dsm.reference)-int(result.Address))
	}

	cells := make([]uint64, n)
	cells[0] = result.Defn.Opcode
	for i := 1; i < n; i++ {
		cells[i] = result.Operands[i-1]
	}

	ne := &Entry{
		Level:  EntryLevelExecuted,
		Result: result,
		Cells:  cells,
	}

	// remove the entries that are overwritten by the new entry. any cells of
	// those entries not covered by the new entry become data
	replaced := make(map[*Entry]bool)
	for i := range n {
		replaced[dsm.reference[int(result.Address)+i]] = true
	}

	entries := make([]*Entry, 0, len(dsm.entries))
	for _, old := range dsm.entries {
		if !replaced[old] {
			entries = append(entries, old)
			continue // for loop
		}
		for i, c := range old.Cells {
			a := old.Address() + uint64(i)
			if a < result.Address || a >= result.Address+uint64(n) {
				d := &Entry{
					Level:  EntryLevelData,
					Result: execution.Result{Address: a},
					Cells:  []uint64{c},
				}
				entries = append(entries, d)
				dsm.reference[a] = d
			} else if a == result.Address {
				entries = append(entries, ne)
			}
		}
	}
	dsm.entries = entries

	for i := range n {
		dsm.reference[int(result.Address)+i] = ne
	}
}
