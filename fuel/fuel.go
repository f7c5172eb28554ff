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

// Package fuel calculates the fuel required to launch a list of modules.
// The fuel for a module depends only on its mass:
//
//	fuel = mass / 3 - 2
//
// Division truncates toward zero. Very small masses need negative fuel and
// the negative amount is included in the total as it is.
//
// Fuel has mass too. TotalWithFuel() includes, for every module, the fuel
// needed to lift the fuel. That amount is calculated by applying the formula
// to the module's fuel, then to that result and so on, while the result is
// not negative.
package fuel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrUnparseable is returned by ParseMasses() when a line is not an integer.
var ErrUnparseable = errors.New("fuel: unparseable mass")

// Required returns the fuel required for the mass.
func Required(mass int64) int64 {
	return mass/3 - 2
}

// ForFuel returns the additional fuel needed to lift the fuel. The amount
// passed to the function is not included in the result.
func ForFuel(fuel int64) int64 {
	var extra int64
	for f := Required(fuel); f >= 0; f = Required(f) {
		extra += f
	}
	return extra
}

// Total returns the sum of Required() for every mass.
func Total(masses []int64) int64 {
	var total int64
	for _, m := range masses {
		total += Required(m)
	}
	return total
}

// TotalWithFuel returns Total() plus the fuel needed to lift the fuel of
// every module.
func TotalWithFuel(masses []int64) int64 {
	var total int64
	for _, m := range masses {
		f := Required(m)
		total += f + ForFuel(f)
	}
	return total
}

// ParseMasses reads one mass per line. Blank lines are ignored.
func ParseMasses(r io.Reader) ([]int64, error) {
	var masses []int64

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue // for loop
		}
		m, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d (%q)", ErrUnparseable, line, s)
		}
		masses = append(masses, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fuel: %w", err)
	}

	return masses, nil
}

// Report writes both totals for the masses to output.
func Report(output io.Writer, masses []int64) {
	fmt.Fprintf(output, "Total fuel required: %d\n", Total(masses))
	fmt.Fprintf(output, "New total fuel required: %d\n", TotalWithFuel(masses))
}
