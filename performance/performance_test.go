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

package performance_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherintcode/hardware"
	"github.com/jetsetilly/gopherintcode/performance"
	"github.com/jetsetilly/gopherintcode/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	_, err = performance.ParseProfileString("trace")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileMem, hdr, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)

	_, err = os.Stat(hdr + "_cpu.profile")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	m := hardware.NewMachine(nil)
	test.DemandSuccess(t, m.Load([]uint64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}))

	tw := &test.Writer{}
	res, err := performance.Check(tw, performance.ProfileNone, m, "20ms")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, res.Runs > 0)

	// three instructions in every complete run
	test.ExpectSuccess(t, res.Instructions >= res.Runs*3)
	test.ExpectSuccess(t, tw.Contains("instructions/sec"))

	_, err = performance.Check(tw, performance.ProfileNone, m, "twenty")
	test.ExpectFailure(t, err)
}
