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
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/jetsetilly/gopherintcode/digest"
	"github.com/jetsetilly/gopherintcode/hardware"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/logger"
	"github.com/jetsetilly/gopherintcode/paths"
	"github.com/jetsetilly/gopherintcode/programloader"
)

const programEntryType = "program"

// Patch describes values to write to memory before the program is run.
type Patch struct {
	Address int      `yaml:"address"`
	Values  []uint64 `yaml:"values,flow"`
}

func (p Patch) String() string {
	s := make([]string, len(p.Values))
	for i, v := range p.Values {
		s[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%d=%s", p.Address, strings.Join(s, ","))
}

// ProgramRegression is the regression entry for an intcode program. Either
// Filename or Program should be set but not both.
type ProgramRegression struct {
	Name string `yaml:"name"`

	// the program listing file or the program itself
	Filename string   `yaml:"file,omitempty"`
	Program  []uint64 `yaml:"program,omitempty,flow"`

	// hash of the program. recorded when the regression is added
	Hash string `yaml:"hash"`

	Patches      []Patch `yaml:"patches,omitempty"`
	LegacyStride bool    `yaml:"legacystride,omitempty"`

	// the expected outcome. State is the string representation of the
	// execution.State type
	State string         `yaml:"state"`
	Cells map[int]uint64 `yaml:"cells"`

	// digest of every instruction executed. an empty trace is not compared
	Trace string `yaml:"trace,omitempty"`

	Notes string `yaml:"notes,omitempty"`
}

// NewProgramRegression is the preferred method of initialisation for the
// ProgramRegression type. If the loader has already loaded the program then
// the program is stored in the database, otherwise the filename is stored.
//
// The cells argument lists the memory cells to record. If the list is empty
// then cell zero is recorded.
func NewProgramRegression(ld programloader.Loader, patches []Patch, cells ...int) *ProgramRegression {
	reg := &ProgramRegression{
		Name:    ld.ShortName(),
		Patches: patches,
		Cells:   make(map[int]uint64),
	}

	if reg.Name == "" || reg.Name == "." {
		reg.Name = paths.UniqueFilename("regress", "")
	}

	if ld.HasLoaded() {
		reg.Program = slices.Clone(ld.Data)
	} else {
		reg.Filename = ld.Filename
	}

	if len(cells) == 0 {
		cells = []int{0}
	}
	for _, c := range cells {
		reg.Cells[c] = 0
	}

	return reg
}

// EntryType implements the database.Entry interface.
func (reg *ProgramRegression) EntryType() string {
	return programEntryType
}

// CleanUp implements the database.Entry interface.
func (reg *ProgramRegression) CleanUp() error {
	return nil
}

func (reg *ProgramRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s", programEntryType, reg.Name))
	if reg.Filename != "" {
		s.WriteString(fmt.Sprintf(" (%s)", reg.Filename))
	}
	for _, p := range reg.Patches {
		s.WriteString(fmt.Sprintf(" %s", p))
	}
	if reg.LegacyStride {
		s.WriteString(" [legacy stride]")
	}
	return s.String()
}

func (reg *ProgramRegression) loader() programloader.Loader {
	if reg.Filename != "" {
		ld := programloader.NewLoader(reg.Filename)
		ld.Hash = reg.Hash
		return ld
	}
	return programloader.NewLoaderFromData(reg.Name, reg.Program)
}

// sortedCells returns the addresses of the recorded cells in order.
func (reg *ProgramRegression) sortedCells() []int {
	c := make([]int, 0, len(reg.Cells))
	for a := range reg.Cells {
		c = append(c, a)
	}
	sort.Ints(c)
	return c
}

// regress implements the Regressor interface.
func (reg *ProgramRegression) regress(newRegression bool, output io.Writer, msg string) (bool, string, error) {
	io.WriteString(output, msg)

	if reg.Filename == "" && len(reg.Program) == 0 {
		return false, "", fmt.Errorf("regression: %s: no program", reg.Name)
	}

	ld := reg.loader()
	program, err := ld.Load()
	if err != nil {
		return false, "", fmt.Errorf("regression: %w", err)
	}

	if !newRegression && reg.Hash != ld.Hash {
		return false, "", fmt.Errorf("%w: %s", programloader.ErrHashMismatch, reg.Name)
	}

	m := hardware.NewMachine(nil)
	m.SetLogging(logger.Deny)
	m.Prefs.LegacyStride.Set(reg.LegacyStride)

	err = m.Load(program)
	if err != nil {
		return false, "", fmt.Errorf("regression: %w", err)
	}

	for _, p := range reg.Patches {
		err = m.Patch(p.Address, p.Values...)
		if err != nil {
			return false, "", fmt.Errorf("regression: %w", err)
		}
	}

	trace := digest.NewTrace()

	// an error from RunWithCheck() is not a regression error. the error is
	// reflected in the state, which is compared to the recorded state
	state, _ := m.RunWithCheck(func(r execution.Result) (bool, error) {
		trace.Add(r)
		return true, nil
	})
	trace.Add(m.CPU.LastResult)

	if newRegression {
		reg.Hash = ld.Hash
		reg.Trace = trace.Hash()
		reg.State = state.String()
		if reg.Cells == nil {
			reg.Cells = map[int]uint64{0: 0}
		}
		for _, a := range reg.sortedCells() {
			v, ok := m.ReadCell(a)
			if !ok {
				return false, "", fmt.Errorf("regression: cell %d is not in memory", a)
			}
			reg.Cells[a] = v
		}
		return true, "", nil
	}

	if state.String() != reg.State {
		return false, fmt.Sprintf("state: expected %s, got %s", reg.State, state), nil
	}

	for _, a := range reg.sortedCells() {
		v, ok := m.ReadCell(a)
		if !ok {
			return false, fmt.Sprintf("cell %d: not in memory", a), nil
		}
		if v != reg.Cells[a] {
			return false, fmt.Sprintf("cell %d: expected %d, got %d", a, reg.Cells[a], v), nil
		}
	}

	if reg.Trace != "" && reg.Trace != trace.Hash() {
		return false, fmt.Sprintf("trace: digest mismatch after %d instructions", trace.Instructions()), nil
	}

	return true, "", nil
}
