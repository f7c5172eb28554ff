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

package memory

import (
	"errors"
	"fmt"
	"strings"
)

// sentinal errors returned by memory functions.
var (
	ErrOutOfRange    = errors.New("memory: address out of range")
	ErrEmptyProgram  = errors.New("memory: program is empty")
	ErrNoProgramYet  = errors.New("memory: no program loaded")
	ErrPatchTooLarge = errors.New("memory: patch extends beyond end of memory")
)

// Memory is the working image of a program. The ROM field is the program as
// it was loaded and is never written to. RAM is the copy that the CPU reads
// and writes.
//
// The length of RAM is always the same as the length of ROM.
type Memory struct {
	rom []uint64
	ram []uint64
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The program is copied and so the caller is free to reuse the slice.
func NewMemory(program []uint64) (*Memory, error) {
	mem := &Memory{}
	err := mem.Load(program)
	if err != nil {
		return nil, err
	}
	return mem, nil
}

// Load replaces the ROM with a copy of the program and initialises the RAM
// from it. Any previously loaded program is forgotten.
func (mem *Memory) Load(program []uint64) error {
	if len(program) == 0 {
		return ErrEmptyProgram
	}
	mem.rom = make([]uint64, len(program))
	copy(mem.rom, program)
	mem.ram = make([]uint64, len(program))
	copy(mem.ram, mem.rom)
	return nil
}

// Reset copies the ROM into RAM. Calling it any number of times has the same
// effect as calling it once.
func (mem *Memory) Reset() {
	copy(mem.ram, mem.rom)
}

// Len returns the number of cells in memory.
func (mem *Memory) Len() int {
	return len(mem.ram)
}

func (mem *Memory) String() string {
	return mem.Dump(8)
}

// Dump returns the contents of RAM as a table. The width argument is the
// number of cells on each line.
func (mem *Memory) Dump(width int) string {
	if width <= 0 {
		width = 8
	}

	s := strings.Builder{}
	for i, v := range mem.ram {
		if i%width == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04d ", i))
		}
		s.WriteString(fmt.Sprintf(" %d", v))
	}
	return s.String()
}

// Read returns the value at the address. Addresses outside of memory result
// in an ErrOutOfRange error.
func (mem *Memory) Read(address uint64) (uint64, error) {
	if address >= uint64(len(mem.ram)) {
		return 0, fmt.Errorf("%w: read %d (length %d)", ErrOutOfRange, address, len(mem.ram))
	}
	return mem.ram[address], nil
}

// Write stores the value at the address. Addresses outside of memory result
// in an ErrOutOfRange error and memory is not changed.
func (mem *Memory) Write(address uint64, data uint64) error {
	if address >= uint64(len(mem.ram)) {
		return fmt.Errorf("%w: write %d (length %d)", ErrOutOfRange, address, len(mem.ram))
	}
	mem.ram[address] = data
	return nil
}

// Peek is a side-effect free read that never returns an error. The boolean
// return value is false if the address is not in memory.
func (mem *Memory) Peek(address int) (uint64, bool) {
	if address < 0 || address >= len(mem.ram) {
		return 0, false
	}
	return mem.ram[address], true
}

// Patch overwrites consecutive cells starting at the address.
//
// The entire range is checked before anything is written. If any cell in the
// range is outside of memory then no cell is changed.
func (mem *Memory) Patch(address int, values ...uint64) error {
	if mem.rom == nil {
		return ErrNoProgramYet
	}
	if address < 0 || address >= len(mem.ram) {
		return fmt.Errorf("%w: patch at %d (length %d)", ErrOutOfRange, address, len(mem.ram))
	}
	if address+len(values) > len(mem.ram) {
		return fmt.Errorf("%w: %w: %d cells at %d (length %d)", ErrOutOfRange, ErrPatchTooLarge,
			len(values), address, len(mem.ram))
	}
	copy(mem.ram[address:], values)
	return nil
}

// Snapshot returns a copy of RAM.
func (mem *Memory) Snapshot() []uint64 {
	s := make([]uint64, len(mem.ram))
	copy(s, mem.ram)
	return s
}

// Program returns a copy of the ROM.
func (mem *Memory) Program() []uint64 {
	p := make([]uint64, len(mem.rom))
	copy(p, mem.rom)
	return p
}
