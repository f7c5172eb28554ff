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

package memory_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherintcode/hardware/memory"
	"github.com/jetsetilly/gopherintcode/test"
)

func TestLoad(t *testing.T) {
	_, err := memory.NewMemory(nil)
	test.ExpectEquality(t, errors.Is(err, memory.ErrEmptyProgram), true)

	program := []uint64{1, 0, 0, 0, 99}
	mem, err := memory.NewMemory(program)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.Len(), 5)

	// the caller's slice is copied
	program[0] = 2
	v, ok := mem.Peek(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint64(1))
}

func TestReadWrite(t *testing.T) {
	mem, err := memory.NewMemory([]uint64{1, 2, 3})
	test.DemandSuccess(t, err)

	err = mem.Write(2, 30)
	test.ExpectSuccess(t, err)
	v, err := mem.Read(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint64(30))

	_, err = mem.Read(3)
	test.ExpectEquality(t, errors.Is(err, memory.ErrOutOfRange), true)
	err = mem.Write(1<<63, 0)
	test.ExpectEquality(t, errors.Is(err, memory.ErrOutOfRange), true)

	_, ok := mem.Peek(-1)
	test.ExpectFailure(t, ok)
	_, ok = mem.Peek(3)
	test.ExpectFailure(t, ok)
}

func TestReset(t *testing.T) {
	mem, err := memory.NewMemory([]uint64{1, 2, 3})
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, mem.Write(0, 100))
	test.ExpectEquality(t, mem.Snapshot()[0], uint64(100))
	test.ExpectEquality(t, mem.Program()[0], uint64(1))

	mem.Reset()
	mem.Reset()
	test.ExpectEquality(t, mem.Snapshot()[0], uint64(1))
}

func TestPatch(t *testing.T) {
	var mem memory.Memory
	test.ExpectEquality(t, errors.Is(mem.Patch(0, 1), memory.ErrNoProgramYet), true)

	test.DemandSuccess(t, mem.Load([]uint64{0, 0, 0, 0}))

	test.ExpectSuccess(t, mem.Patch(1, 12, 2))
	test.ExpectEquality(t, mem.Dump(4), "0000  0 12 2 0")

	// a patch that extends beyond the end of memory changes nothing
	err := mem.Patch(3, 7, 7)
	test.ExpectEquality(t, errors.Is(err, memory.ErrOutOfRange), true)
	test.ExpectEquality(t, errors.Is(err, memory.ErrPatchTooLarge), true)
	test.ExpectEquality(t, mem.Dump(4), "0000  0 12 2 0")

	err = mem.Patch(-1, 7)
	test.ExpectEquality(t, errors.Is(err, memory.ErrOutOfRange), true)
}

func TestDump(t *testing.T) {
	mem, err := memory.NewMemory([]uint64{1, 9, 10, 3, 2, 3, 11, 0, 99})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.Dump(4), "0000  1 9 10 3\n0004  2 3 11 0\n0008  99")
	test.ExpectEquality(t, mem.Dump(0), mem.String())
}
