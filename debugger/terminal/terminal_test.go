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

package terminal_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherintcode/debugger/terminal"
	"github.com/jetsetilly/gopherintcode/test"
)

type output struct {
	lines []string
}

func (o *output) TermPrintLine(style terminal.Style, s string) {
	o.lines = append(o.lines, fmt.Sprintf("%d:%s", style, s))
}

func TestWriter(t *testing.T) {
	o := &output{}
	w := terminal.NewWriter(o, terminal.StyleLog)

	fmt.Fprint(w, "foo\nbar")
	test.DemandEquality(t, len(o.lines), 1)
	test.ExpectEquality(t, o.lines[0], fmt.Sprintf("%d:foo", terminal.StyleLog))

	fmt.Fprint(w, "baz\n\nqux\n")
	test.DemandEquality(t, len(o.lines), 4)
	test.ExpectEquality(t, o.lines[1], fmt.Sprintf("%d:barbaz", terminal.StyleLog))
	test.ExpectEquality(t, o.lines[2], fmt.Sprintf("%d:", terminal.StyleLog))
	test.ExpectEquality(t, o.lines[3], fmt.Sprintf("%d:qux", terminal.StyleLog))

	fmt.Fprint(w, "end")
	w.Flush()
	test.DemandEquality(t, len(o.lines), 5)
	test.ExpectEquality(t, o.lines[4], fmt.Sprintf("%d:end", terminal.StyleLog))

	w.Flush()
	test.ExpectEquality(t, len(o.lines), 5)
}

func TestPrompt(t *testing.T) {
	test.ExpectEquality(t, terminal.Prompt{IP: 4}.String(), "[ 0004 ] >> ")
	test.ExpectEquality(t, terminal.Prompt{IP: 8, State: "halted"}.String(), "[ 0008 halted ] >> ")
}
