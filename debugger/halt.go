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

// breaks halt execution when the IP reaches an address. traps halt execution
// when the value in a cell changes from the value it had when the trap was
// last checked.

package debugger

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/gopherintcode/hardware"
)

type trap struct {
	address int
	value   uint64
}

type haltConditions struct {
	m *hardware.Machine

	breaks []uint64
	traps  []trap
}

func newHaltConditions(m *hardware.Machine) *haltConditions {
	return &haltConditions{m: m}
}

func (h *haltConditions) clear() {
	h.breaks = h.breaks[:0]
	h.traps = h.traps[:0]
}

func (h *haltConditions) addBreak(address uint64) error {
	if slices.Contains(h.breaks, address) {
		return fmt.Errorf("%w: break on %04d", ErrHaltConditionExists, address)
	}
	h.breaks = append(h.breaks, address)
	return nil
}

func (h *haltConditions) addTrap(address int) error {
	v, ok := h.m.ReadCell(address)
	if !ok {
		return fmt.Errorf("%w: %d", ErrBadAddress, address)
	}
	for _, t := range h.traps {
		if t.address == address {
			return fmt.Errorf("%w: trap on %04d", ErrHaltConditionExists, address)
		}
	}
	h.traps = append(h.traps, trap{address: address, value: v})
	return nil
}

// refresh the values of all traps. called when memory is changed by the
// debugger rather than by the program.
func (h *haltConditions) refresh() {
	for i := range h.traps {
		h.traps[i].value, _ = h.m.ReadCell(h.traps[i].address)
	}
}

// check returns a non-empty string describing the condition if any break or
// trap has been met.
func (h *haltConditions) check() string {
	s := strings.Builder{}

	if slices.Contains(h.breaks, h.m.CPU.IP) {
		s.WriteString(fmt.Sprintf("break on IP %04d", h.m.CPU.IP))
	}

	for i, t := range h.traps {
		v, _ := h.m.ReadCell(t.address)
		if v != t.value {
			if s.Len() > 0 {
				s.WriteString(", ")
			}
			s.WriteString(fmt.Sprintf("trap on %04d (%d -> %d)", t.address, t.value, v))
			h.traps[i].value = v
		}
	}

	return s.String()
}

func (h *haltConditions) listBreaks() []string {
	l := make([]string, 0, len(h.breaks))
	for i, b := range h.breaks {
		l = append(l, fmt.Sprintf("% 2d: IP %04d", i, b))
	}
	return l
}

func (h *haltConditions) listTraps() []string {
	l := make([]string, 0, len(h.traps))
	for i, t := range h.traps {
		l = append(l, fmt.Sprintf("% 2d: %04d (currently %d)", i, t.address, t.value))
	}
	return l
}
