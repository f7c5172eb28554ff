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

package cpu

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherintcode/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherintcode/logger"
)

// sentinal errors returned by ExecuteInstruction.
var (
	ErrInvalidOpcode = errors.New("cpu: invalid opcode")
	ErrNotRunning    = errors.New("cpu: not running (reset required)")
)

// Fault is the error returned when an instruction cannot complete. It
// records where in the program the problem occurred. Use errors.Is() to
// distinguish between an invalid opcode (ErrInvalidOpcode) and a bad address
// (the memory package's ErrOutOfRange).
type Fault struct {
	Err    error
	IP     uint64
	Opcode uint64
}

func (f *Fault) Error() string {
	return fmt.Sprintf("cpu: fault at %04d (opcode %d): %v", f.IP, f.Opcode, f.Err)
}

// Unwrap returns the underlying error.
func (f *Fault) Unwrap() error {
	return f.Err
}

// CPU implements the intcode processor. The only register is the instruction
// pointer.
type CPU struct {
	mem cpubus.Memory

	// IP is the address of the next opcode cell
	IP uint64

	// the state of the machine. only the Running state allows further
	// instructions to be executed
	State execution.State

	// the result of the most recent call to ExecuteInstruction()
	LastResult execution.Result

	// LegacyStride causes the IP to be advanced before the opcode is read
	// rather than after the instruction has executed. the first instruction
	// of a program is skipped as a consequence. only useful for reproducing
	// the output of programs written against that ordering
	LegacyStride bool

	// logging permission for the cpu. the search package turns logging off
	// because thousands of trials would otherwise flood the log
	Logging logger.Permission
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:     mem,
		Logging: logger.Allow,
	}
}

// Plumb a new memory into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("IP=%04d state=%s", mc.IP, mc.State)
}

// Reset the CPU. The IP is set to zero and the state to Running. Memory is
// not touched.
func (mc *CPU) Reset() {
	mc.IP = 0
	mc.State = execution.Running
	mc.LastResult.Reset()
}

// fault puts the CPU into the terminal state and returns an error describing
// the problem.
func (mc *CPU) fault(state execution.State, err error) error {
	mc.State = state
	mc.LastResult.State = state
	mc.LastResult.Error = err.Error()
	mc.LastResult.Final = true

	var opcode uint64
	if mc.LastResult.Defn != nil {
		opcode = mc.LastResult.Defn.Opcode
	}

	f := &Fault{Err: err, IP: mc.LastResult.Address, Opcode: opcode}
	logger.Log(mc.Logging, "cpu", f)
	return f
}

// ExecuteInstruction steps the CPU forward one instruction. The basic
// process when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read the three operand cells, if the instruction has operands
//  3. dereference the source operands, perform the operation and write the
//     result to the destination
//
// Returns ErrNotRunning if the CPU is in a terminal state. A HLT instruction
// is not an error. An invalid opcode or an out of range address returns an
// error of type *Fault.
func (mc *CPU) ExecuteInstruction() error {
	if mc.State.IsTerminal() {
		return ErrNotRunning
	}

	if mc.LegacyStride {
		mc.IP += instructions.Stride
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.IP

	opcode, err := mc.mem.Read(mc.IP)
	if err != nil {
		return mc.fault(execution.Faulted, err)
	}

	defn := instructions.Decode(opcode)
	mc.LastResult.Defn = defn

	switch defn.Operator {
	case instructions.Halt:
		mc.State = execution.Halted
		mc.LastResult.State = execution.Halted
		mc.LastResult.Final = true
		logger.Logf(mc.Logging, "cpu", "halted at %04d", mc.IP)
		return nil

	case instructions.Invalid:
		return mc.fault(execution.Invalid, ErrInvalidOpcode)
	}

	// operand cells
	for i := 0; i < defn.Operands; i++ {
		mc.LastResult.Operands[i], err = mc.mem.Read(mc.IP + uint64(i) + 1)
		if err != nil {
			return mc.fault(execution.Faulted, err)
		}
	}

	mc.LastResult.Src1, err = mc.mem.Read(mc.LastResult.Operands[0])
	if err != nil {
		return mc.fault(execution.Faulted, err)
	}

	mc.LastResult.Src2, err = mc.mem.Read(mc.LastResult.Operands[1])
	if err != nil {
		return mc.fault(execution.Faulted, err)
	}

	mc.LastResult.Value = defn.Apply(mc.LastResult.Src1, mc.LastResult.Src2)

	err = mc.mem.Write(mc.LastResult.Operands[2], mc.LastResult.Value)
	if err != nil {
		return mc.fault(execution.Faulted, err)
	}

	if !mc.LegacyStride {
		mc.IP += instructions.Stride
	}

	mc.LastResult.State = execution.Running
	mc.LastResult.Final = true

	return nil
}
