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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gopherintcode/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/jetsetilly/gopherintcode/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31m")

	s, err = ansi.ColorBuild("Red", "blue", "bold", true, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91;104;1m")

	s, err = ansi.ColorBuild("", "", "normal", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[m")

	_, err = ansi.ColorBuild("mauve", "", "", false, false)
	test.ExpectFailure(t, err)
	_, err = ansi.ColorBuild("", "mauve", "", false, false)
	test.ExpectFailure(t, err)
	_, err = ansi.ColorBuild("", "", "blink", false, false)
	test.ExpectFailure(t, err)
}

func TestTables(t *testing.T) {
	test.ExpectEquality(t, ansi.Pens["cyan"], "\033[96m")
	test.ExpectEquality(t, ansi.DimPens["white"], "\033[37m")
	test.ExpectEquality(t, ansi.PenStyles["bold"], "\033[1m")
}

func TestCursorMove(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorMove(-3), "\033[3D")
	test.ExpectEquality(t, ansi.CursorMove(2), "\033[2C")
	test.ExpectEquality(t, ansi.CursorMove(0), "")
}
