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

package hardware_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/jetsetilly/gopherintcode/hardware"
	"github.com/jetsetilly/gopherintcode/hardware/cpu"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/hardware/memory"
	"github.com/jetsetilly/gopherintcode/test"
)

type quiet struct{}

func (_ quiet) AllowLogging() bool {
	return false
}

func newMachine(t *testing.T, program ...uint64) *hardware.Machine {
	t.Helper()
	m := hardware.NewMachine(nil)
	m.SetLogging(quiet{})
	test.DemandSuccess(t, m.Load(program))
	return m
}

func TestExamples(t *testing.T) {
	type example struct {
		program  []uint64
		position int
		expected uint64
	}

	examples := []example{
		{program: []uint64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, position: 0, expected: 3500},
		{program: []uint64{1, 0, 0, 0, 99}, position: 0, expected: 2},
		{program: []uint64{2, 3, 0, 3, 99}, position: 3, expected: 6},
		{program: []uint64{2, 4, 4, 5, 99, 0}, position: 5, expected: 9801},
		{program: []uint64{1, 1, 1, 4, 99, 5, 6, 0, 99}, position: 0, expected: 30},
	}

	for i, e := range examples {
		m := newMachine(t, e.program...)
		state, err := m.Run()
		test.ExpectSuccess(t, err, i)
		test.ExpectEquality(t, state, execution.Halted, i)

		v, ok := m.ReadCell(e.position)
		test.ExpectSuccess(t, ok, i)
		test.ExpectEquality(t, v, e.expected, i)
	}
}

func TestEmptyProgram(t *testing.T) {
	m := hardware.NewMachine(nil)
	err := m.Load([]uint64{})
	test.ExpectSuccess(t, errors.Is(err, memory.ErrEmptyProgram))

	// nothing to run
	_, err = m.Run()
	test.ExpectFailure(t, err)
}

func TestReload(t *testing.T) {
	m := newMachine(t, 1, 0, 0, 0, 99)
	_, err := m.Run()
	test.ExpectSuccess(t, err)

	// loading replaces the previous program entirely
	test.DemandSuccess(t, m.Load([]uint64{2, 3, 0, 3, 99}))
	test.ExpectEquality(t, m.Mem.Len(), 5)
	v, _ := m.ReadCell(0)
	test.ExpectEquality(t, v, uint64(2))

	state, err := m.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, execution.Halted)
	v, _ = m.ReadCell(3)
	test.ExpectEquality(t, v, uint64(6))
}

func TestReset(t *testing.T) {
	program := []uint64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}
	m := newMachine(t, program...)

	_, err := m.Run()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, slices.Equal(m.Mem.Snapshot(), program))

	test.DemandSuccess(t, m.Patch(9, 1, 2, 3))

	m.Reset()
	test.ExpectSuccess(t, slices.Equal(m.Mem.Snapshot(), program))
	m.Reset()
	test.ExpectSuccess(t, slices.Equal(m.Mem.Snapshot(), program))
	test.ExpectEquality(t, m.CPU.IP, uint64(0))
	test.ExpectEquality(t, m.CPU.State, execution.Running)

	// runs from the start again with the same result
	state, err := m.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, execution.Halted)
	v, _ := m.ReadCell(0)
	test.ExpectEquality(t, v, uint64(3500))
}

func TestRunWithoutReset(t *testing.T) {
	m := newMachine(t, 1, 0, 0, 0, 99)
	state, err := m.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, execution.Halted)

	// poke the first instruction so that running it again would change
	// memory. running without a reset must do nothing
	test.DemandSuccess(t, m.Patch(0, 1, 0, 0, 1))
	state, err = m.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, execution.Halted)
	v, _ := m.ReadCell(1)
	test.ExpectEquality(t, v, uint64(0))
}

func TestPatchAndRead(t *testing.T) {
	m := newMachine(t, 1, 0, 0, 0, 99, 0, 0, 0)

	values := []uint64{7, 8, 9}
	test.DemandSuccess(t, m.Patch(5, values...))
	for i, v := range values {
		c, ok := m.ReadCell(5 + i)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, c, v)
	}

	// patching to exactly the end of memory is fine
	test.ExpectSuccess(t, m.Patch(7, 10))

	_, ok := m.ReadCell(8)
	test.ExpectFailure(t, ok)
	_, ok = m.ReadCell(-1)
	test.ExpectFailure(t, ok)
}

// patching is atomic. a patch that extends beyond the end of memory must not
// change any cell, including those cells that are in range.
func TestPatchIsAtomic(t *testing.T) {
	program := []uint64{1, 0, 0, 0, 99}
	m := newMachine(t, program...)

	err := m.Patch(3, 11, 12, 13)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrOutOfRange))
	test.ExpectSuccess(t, slices.Equal(m.Mem.Snapshot(), program))

	err = m.Patch(5, 1)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrOutOfRange))
	err = m.Patch(-1, 1)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrOutOfRange))
	test.ExpectSuccess(t, slices.Equal(m.Mem.Snapshot(), program))
}

func TestFaults(t *testing.T) {
	m := newMachine(t, 1, 0, 0, 0, 7, 0, 0, 0, 99)
	state, err := m.Run()
	test.ExpectEquality(t, state, execution.Invalid)
	test.ExpectSuccess(t, errors.Is(err, cpu.ErrInvalidOpcode))

	m = newMachine(t, 1, 0, 0, 100, 99)
	state, err = m.Run()
	test.ExpectEquality(t, state, execution.Faulted)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrOutOfRange))

	// no HLT. the IP runs off the end of memory
	m = newMachine(t, 1, 0, 0, 0)
	state, err = m.Run()
	test.ExpectEquality(t, state, execution.Faulted)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrOutOfRange))
}

func TestLegacyStridePreference(t *testing.T) {
	m := newMachine(t, 1, 0, 0, 0, 99)
	test.DemandSuccess(t, m.Prefs.LegacyStride.Set(true))

	state, err := m.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, execution.Halted)
	v, _ := m.ReadCell(0)
	test.ExpectEquality(t, v, uint64(1))
}

func TestRunWithCheck(t *testing.T) {
	m := newMachine(t, 1, 0, 0, 0, 1, 0, 0, 0, 99)

	var steps int
	state, err := m.RunWithCheck(func(r execution.Result) (bool, error) {
		steps++
		return false, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, steps, 1)
	test.ExpectEquality(t, state, execution.Running)

	state, err = m.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, execution.Halted)
	v, _ := m.ReadCell(0)
	test.ExpectEquality(t, v, uint64(4))
}
