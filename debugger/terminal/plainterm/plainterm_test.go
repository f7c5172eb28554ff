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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherintcode/debugger/terminal"
	"github.com/jetsetilly/gopherintcode/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherintcode/test"
)

func TestPlainTerminal(t *testing.T) {
	tw := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\n\nquit"), tw)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	for _, expected := range []string{"step", "", "quit"} {
		s, err := pt.TermRead(terminal.Prompt{})
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, expected)
	}

	_, err := pt.TermRead(terminal.Prompt{})
	test.ExpectEquality(t, err, io.EOF)

	// the prompt is not printed for non-interactive input
	test.ExpectEquality(t, tw.String(), "")
}

func TestPrintLine(t *testing.T) {
	tw := &test.Writer{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), tw)

	pt.TermPrintLine(terminal.StyleEcho, "step")
	pt.TermPrintLine(terminal.StyleFeedback, "ok")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, tw.String(), "> step\nok\n* bad\n")

	tw.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "ok")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, tw.String(), "* bad\n")
}
