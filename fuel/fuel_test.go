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

package fuel_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherintcode/fuel"
	"github.com/jetsetilly/gopherintcode/test"
)

func TestRequired(t *testing.T) {
	test.ExpectEquality(t, fuel.Required(12), int64(2))
	test.ExpectEquality(t, fuel.Required(14), int64(2))
	test.ExpectEquality(t, fuel.Required(1969), int64(654))
	test.ExpectEquality(t, fuel.Required(100756), int64(33583))

	// small masses need negative fuel
	test.ExpectEquality(t, fuel.Required(2), int64(-2))
	test.ExpectEquality(t, fuel.Required(0), int64(-2))
}

func TestForFuel(t *testing.T) {
	test.ExpectEquality(t, fuel.ForFuel(2), int64(0))
	test.ExpectEquality(t, fuel.ForFuel(654), int64(312))
	test.ExpectEquality(t, fuel.ForFuel(33583), int64(16763))
}

func TestTotals(t *testing.T) {
	masses := []int64{12, 14, 1969, 100756}
	test.ExpectEquality(t, fuel.Total(masses), int64(2+2+654+33583))
	test.ExpectEquality(t, fuel.TotalWithFuel(masses), int64(2+2+966+50346))

	// negative fuel is summed as is but is never lifted
	test.ExpectEquality(t, fuel.Total([]int64{2, 12}), int64(0))
	test.ExpectEquality(t, fuel.TotalWithFuel([]int64{2, 12}), int64(0))

	test.ExpectEquality(t, fuel.Total(nil), int64(0))
}

func TestParseMasses(t *testing.T) {
	masses, err := fuel.ParseMasses(strings.NewReader("12\n 14 \n\n1969\n100756\n"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(masses), 4)
	test.ExpectEquality(t, masses[3], int64(100756))

	_, err = fuel.ParseMasses(strings.NewReader("12\nfoo\n"))
	test.ExpectSuccess(t, errors.Is(err, fuel.ErrUnparseable))
}

func TestReport(t *testing.T) {
	tw := &test.Writer{}
	fuel.Report(tw, []int64{1969})
	test.ExpectEquality(t, tw.String(), "Total fuel required: 654\nNew total fuel required: 966\n")
}
