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

package search

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopherintcode/hardware"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/logger"
)

// ErrNoSolution is returned by Search() when no pair produces the target.
var ErrNoSolution = errors.New("search: no solution")

// DefaultTarget is the value searched for if no other target is specified.
const DefaultTarget = 19690720

// Bounds of the search. Both the noun and the verb take every value between
// zero and Max inclusive.
type Bounds struct {
	Max uint64

	// the noun is patched into this cell and the verb into the next
	Address int
}

// DefaultBounds are the bounds used by the program when no preference has
// been set.
var DefaultBounds = Bounds{Max: 99, Address: 1}

func (b Bounds) String() string {
	return fmt.Sprintf("0..%d at cell %d", b.Max, b.Address)
}

// Solution is the result of a successful search.
type Solution struct {
	Noun uint64
	Verb uint64

	// number of trials run before the solution was found, including the
	// successful trial
	Trials int
}

// Answer combines the noun and the verb into a single value.
func (s Solution) Answer() uint64 {
	return 100*s.Noun + s.Verb
}

func (s Solution) String() string {
	return fmt.Sprintf("noun=%d verb=%d answer=%d (%d trials)", s.Noun, s.Verb, s.Answer(), s.Trials)
}

// trial runs the program once with the noun and verb. the boolean return
// value is true if the trial ran to a successful halt.
func trial(m *hardware.Machine, address int, noun uint64, verb uint64) (uint64, bool, error) {
	m.Reset()

	err := m.Patch(address, noun, verb)
	if err != nil {
		return 0, false, err
	}

	state, _ := m.Run()
	if state != execution.Halted {
		return 0, false, nil
	}

	v, _ := m.ReadCell(0)
	return v, true, nil
}

// Search tries every noun and verb pair within the bounds, in order, until
// the value in cell 0 equals the target. The machine must have a program
// loaded.
//
// Returns ErrNoSolution if no pair produces the target. Any other error
// means the search could not be performed at all, for example if the patch
// address is not in memory.
//
// Machine logging is suppressed for the duration of the search. The machine
// is left in the state of the last trial.
func Search(m *hardware.Machine, target uint64, bounds Bounds) (Solution, error) {
	perm := m.CPU.Logging
	m.SetLogging(logger.Deny)
	defer m.SetLogging(perm)

	var trials int

	for noun := uint64(0); noun <= bounds.Max; noun++ {
		for verb := uint64(0); verb <= bounds.Max; verb++ {
			trials++

			v, ok, err := trial(m, bounds.Address, noun, verb)
			if err != nil {
				return Solution{}, fmt.Errorf("search: %w", err)
			}

			if ok && v == target {
				s := Solution{Noun: noun, Verb: verb, Trials: trials}
				logger.Logf(logger.Allow, "search", "found %d: %s", target, s)
				return s, nil
			}
		}
	}

	logger.Logf(logger.Allow, "search", "no solution for %d after %d trials", target, trials)
	return Solution{}, fmt.Errorf("%w for %d (%s)", ErrNoSolution, target, bounds)
}

// Restore runs the program once with the noun and verb patched into cells 1
// and 2 and returns the value in cell 0. This is the way to restore the
// gravity assist program to the state it had before the "1202 program
// alarm": Restore(m, 12, 2).
//
// Unlike a search trial, an invalid opcode or a fault is returned as an
// error.
func Restore(m *hardware.Machine, noun uint64, verb uint64) (uint64, error) {
	m.Reset()

	err := m.Patch(DefaultBounds.Address, noun, verb)
	if err != nil {
		return 0, fmt.Errorf("search: %w", err)
	}

	_, err = m.Run()
	if err != nil {
		return 0, fmt.Errorf("search: %w", err)
	}

	v, _ := m.ReadCell(0)
	return v, nil
}
