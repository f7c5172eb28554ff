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

package cpu_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/jetsetilly/gopherintcode/hardware/cpu"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/hardware/memory"
	"github.com/jetsetilly/gopherintcode/test"
)

func newCPU(t *testing.T, program ...uint64) (*cpu.CPU, *memory.Memory) {
	t.Helper()
	mem, err := memory.NewMemory(program)
	test.DemandSuccess(t, err)
	mc := cpu.NewCPU(mem)
	mc.Logging = quiet{}
	mc.Reset()
	return mc, mem
}

type quiet struct{}

func (_ quiet) AllowLogging() bool {
	return false
}

func step(t *testing.T, mc *cpu.CPU) *execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	return &mc.LastResult
}

// binaryProperty runs a single binary instruction with randomised operands
// and checks that only the destination cell has changed.
func binaryProperty(t *testing.T, opcode uint64, op func(a, b uint64) uint64) {
	t.Helper()

	const size = 32

	for range 200 {
		program := make([]uint64, size)
		for i := range program {
			program[i] = rand.Uint64N(1000)
		}
		a := rand.Uint64N(size)
		b := rand.Uint64N(size)
		d := rand.Uint64N(size)
		program[0] = opcode
		program[1] = a
		program[2] = b
		program[3] = d

		mc, mem := newCPU(t, program...)
		before := mem.Snapshot()

		r := step(t, mc)
		test.ExpectEquality(t, r.State, execution.Running)
		test.ExpectEquality(t, mc.IP, uint64(4))

		after := mem.Snapshot()
		test.ExpectEquality(t, after[d], op(before[a], before[b]))
		for i := range after {
			if uint64(i) != d {
				test.ExpectEquality(t, after[i], before[i], "cell", i)
			}
		}
	}
}

func TestAdd(t *testing.T) {
	binaryProperty(t, 1, func(a, b uint64) uint64 { return a + b })
}

func TestMultiply(t *testing.T) {
	binaryProperty(t, 2, func(a, b uint64) uint64 { return a * b })
}

func TestHalt(t *testing.T) {
	mc, mem := newCPU(t, 1, 0, 0, 0, 99, 5, 6)
	step(t, mc)
	before := mem.Snapshot()

	r := step(t, mc)
	test.ExpectEquality(t, r.State, execution.Halted)
	test.ExpectEquality(t, mc.State, execution.Halted)
	test.ExpectSuccess(t, mc.State.IsSuccess())
	test.ExpectSuccess(t, slices.Equal(before, mem.Snapshot()))

	// the IP is left pointing at the HLT instruction
	test.ExpectEquality(t, mc.IP, uint64(4))

	// cpu will not continue without a reset
	err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, errors.Is(err, cpu.ErrNotRunning))
}

func TestInvalidOpcode(t *testing.T) {
	for _, opcode := range []uint64{0, 3, 4, 98, 100, 12345} {
		mc, mem := newCPU(t, opcode, 0, 0, 0, 99)
		before := mem.Snapshot()

		err := mc.ExecuteInstruction()
		test.ExpectFailure(t, err)
		test.ExpectSuccess(t, errors.Is(err, cpu.ErrInvalidOpcode))
		test.ExpectFailure(t, errors.Is(err, memory.ErrOutOfRange))
		test.ExpectEquality(t, mc.State, execution.Invalid)
		test.ExpectInequality(t, mc.State, execution.Halted)
		test.ExpectFailure(t, mc.State.IsSuccess())
		test.ExpectSuccess(t, mc.State.IsTerminal())
		test.ExpectSuccess(t, slices.Equal(before, mem.Snapshot()))

		var f *cpu.Fault
		test.DemandSuccess(t, errors.As(err, &f))
		test.ExpectEquality(t, f.Opcode, opcode)
		test.ExpectEquality(t, f.IP, uint64(0))
	}
}

func TestOutOfRange(t *testing.T) {
	programs := map[string][]uint64{
		"source 1":    {1, 50, 0, 0, 99},
		"source 2":    {1, 0, 50, 0, 99},
		"destination": {2, 0, 0, 5, 99},
		"operands":    {1, 0},
		"opcode":      {1, 0, 0, 0},
	}

	for name, program := range programs {
		mc, _ := newCPU(t, program...)

		var err error
		for err == nil && !mc.State.IsTerminal() {
			err = mc.ExecuteInstruction()
		}

		test.ExpectSuccess(t, errors.Is(err, memory.ErrOutOfRange), name)
		test.ExpectEquality(t, mc.State, execution.Faulted, name)
		test.ExpectInequality(t, mc.LastResult.Error, "", name)
	}
}

func TestOutOfRangeLeavesMemory(t *testing.T) {
	mc, mem := newCPU(t, 1, 0, 0, 9, 99)
	before := mem.Snapshot()
	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, slices.Equal(before, mem.Snapshot()))
}

func TestReset(t *testing.T) {
	mc, _ := newCPU(t, 7)
	test.ExpectFailure(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.State, execution.Invalid)

	mc.Reset()
	test.ExpectEquality(t, mc.State, execution.Running)
	test.ExpectEquality(t, mc.IP, uint64(0))
	test.ExpectSuccess(t, mc.LastResult.Defn == nil)
}

func TestLegacyStride(t *testing.T) {
	// with the legacy ordering the first instruction is never executed. the
	// first opcode read is at address 4
	mc, mem := newCPU(t, 1, 0, 0, 0, 99)
	mc.LegacyStride = true

	r := step(t, mc)
	test.ExpectEquality(t, r.Address, uint64(4))
	test.ExpectEquality(t, mc.State, execution.Halted)

	v, _ := mem.Peek(0)
	test.ExpectEquality(t, v, uint64(1))

	// same program with the normal ordering
	mc, mem = newCPU(t, 1, 0, 0, 0, 99)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.State, execution.Halted)
	v, _ = mem.Peek(0)
	test.ExpectEquality(t, v, uint64(2))
}

func TestResultString(t *testing.T) {
	mc, _ := newCPU(t, 1, 5, 6, 0, 99, 30, 40)
	r := step(t, mc)
	test.ExpectEquality(t, r.String(), "0000 ADD [5] [6] -> [0] (30, 40 => 70)")
	r = step(t, mc)
	test.ExpectEquality(t, r.String(), "0004 HLT")
}
