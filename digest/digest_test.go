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

package digest_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherintcode/digest"
	"github.com/jetsetilly/gopherintcode/hardware"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/test"
)

func traceProgram(t *testing.T, program ...uint64) *digest.Trace {
	t.Helper()

	m := hardware.NewMachine(nil)
	test.DemandSuccess(t, m.Load(program))

	dig := digest.NewTrace()
	_, _ = m.RunWithCheck(func(r execution.Result) (bool, error) {
		dig.Add(r)
		return true, nil
	})
	dig.Add(m.CPU.LastResult)

	return dig
}

func TestTrace(t *testing.T) {
	var _ digest.Digest = digest.NewTrace()

	a := traceProgram(t, 1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50)
	b := traceProgram(t, 1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50)
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Instructions(), 3)
	test.ExpectEquality(t, len(a.Hash()), 64)

	// a different value in a source cell changes the digest even though the
	// same instructions are executed
	c := traceProgram(t, 1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 51)
	test.ExpectInequality(t, a.Hash(), c.Hash())
	test.ExpectEquality(t, c.Instructions(), 3)

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), strings.Repeat("0", 64))
	test.ExpectEquality(t, a.Instructions(), 0)
}

func TestUnfinalisedResult(t *testing.T) {
	dig := digest.NewTrace()
	dig.Add(execution.Result{Address: 4})
	test.ExpectEquality(t, dig.Instructions(), 0)
	test.ExpectEquality(t, dig.Hash(), strings.Repeat("0", 64))
}
