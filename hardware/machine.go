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

package hardware

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopherintcode/hardware/cpu"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/hardware/memory"
	"github.com/jetsetilly/gopherintcode/logger"
	"github.com/jetsetilly/gopherintcode/prefs"
)

// Machine is the intcode interpreter. It ties together the CPU and the memory
// holding the program.
type Machine struct {
	Prefs *Preferences

	CPU *cpu.CPU
	Mem *memory.Memory
}

// NewMachine creates a new Machine with no program loaded. The prefs argument
// can be nil in which case the default preferences are used.
func NewMachine(p *Preferences) *Machine {
	if p == nil {
		p = NewPreferences()
	}
	m := &Machine{
		Prefs: p,
		Mem:   &memory.Memory{},
	}
	m.CPU = cpu.NewCPU(m.Mem)
	return m
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Load installs the program, replacing any program previously loaded. Memory
// is initialised from the program and the CPU is reset.
func (m *Machine) Load(program []uint64) error {
	err := m.Mem.Load(program)
	if err != nil {
		return fmt.Errorf("machine: %w", err)
	}
	m.CPU.Reset()
	logger.Logf(m.CPU.Logging, "machine", "loaded program of %d cells", len(program))
	return nil
}

// Reset restores memory to the program as it was loaded and resets the CPU so
// that the next call to Run() starts from the beginning.
func (m *Machine) Reset() {
	m.Mem.Reset()
	m.CPU.Reset()
}

// Patch overwrites memory starting at the position. Either all values are
// written or, if any position is out of range, none are.
func (m *Machine) Patch(position int, values ...uint64) error {
	err := m.Mem.Patch(position, values...)
	if err != nil {
		return fmt.Errorf("machine: %w", err)
	}
	return nil
}

// ReadCell returns the value at the position. The boolean is false if the
// position is outside of memory.
func (m *Machine) ReadCell(position int) (uint64, bool) {
	return m.Mem.Peek(position)
}

// Step executes a single instruction. See cpu.ExecuteInstruction() for
// details on the error values.
func (m *Machine) Step() error {
	m.CPU.LegacyStride = m.Prefs.LegacyStride.Get().(bool)
	return m.CPU.ExecuteInstruction()
}

// Run the program until it halts or until an error occurs. The returned
// state is always a terminal state.
//
// A HLT instruction returns the Halted state and no error. An invalid opcode
// returns the Invalid state and an error that satisfies errors.Is() for
// cpu.ErrInvalidOpcode. An address outside of memory returns the Faulted
// state and an error that satisfies errors.Is() for memory.ErrOutOfRange.
//
// Calling Run() when the machine is already in a terminal state does nothing
// and returns that state with no error. Reset() must be called before a
// program can be run again.
func (m *Machine) Run() (execution.State, error) {
	return m.RunWithCheck(nil)
}

// RunWithCheck is like Run() but calls continueCheck after every instruction
// that leaves the machine running. Execution stops if continueCheck returns
// false or an error.
func (m *Machine) RunWithCheck(continueCheck func(execution.Result) (bool, error)) (execution.State, error) {
	if m.Mem.Len() == 0 {
		return m.CPU.State, memory.ErrNoProgramYet
	}

	for !m.CPU.State.IsTerminal() {
		err := m.Step()
		if err != nil {
			if errors.Is(err, cpu.ErrNotRunning) {
				break // for loop
			}
			return m.CPU.State, fmt.Errorf("machine: %w", err)
		}

		if continueCheck != nil && !m.CPU.State.IsTerminal() {
			ok, err := continueCheck(m.CPU.LastResult)
			if err != nil {
				return m.CPU.State, err
			}
			if !ok {
				break // for loop
			}
		}
	}

	return m.CPU.State, nil
}

// SetLogging sets the logging permission for the machine.
func (m *Machine) SetLogging(perm logger.Permission) {
	m.CPU.Logging = perm
}

// Preferences for the machine.
type Preferences struct {
	// advance the IP before decoding rather than after executing. see the
	// LegacyStride field in the CPU type
	LegacyStride prefs.Bool
}

// NewPreferences returns preferences with default values.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.LegacyStride.Set(false)
}

// AddToDisk registers the preferences with the disk so that they can be
// saved and loaded.
func (p *Preferences) AddToDisk(dsk *prefs.Disk) error {
	return dsk.Add("cpu.legacystride", &p.LegacyStride)
}
