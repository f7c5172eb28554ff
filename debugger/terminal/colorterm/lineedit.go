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

package colorterm

// lineEditor holds the state of the line being edited and the history of
// previously entered lines.
type lineEditor struct {
	input  []rune
	cursor int

	history []string

	// index into history of the line being shown. equal to len(history) when
	// the line is new
	histIdx int

	// the new line being edited before moving through the history
	stash []rune
}

// begin a new line.
func (ed *lineEditor) begin() {
	ed.input = ed.input[:0]
	ed.cursor = 0
	ed.histIdx = len(ed.history)
	ed.stash = nil
}

// commit the current line to the history and return it. empty lines and
// repeats of the previous line are not added to the history.
func (ed *lineEditor) commit() string {
	s := string(ed.input)
	if s != "" && (len(ed.history) == 0 || ed.history[len(ed.history)-1] != s) {
		ed.history = append(ed.history, s)
	}
	return s
}

func (ed *lineEditor) insert(r rune) {
	ed.input = append(ed.input, 0)
	copy(ed.input[ed.cursor+1:], ed.input[ed.cursor:])
	ed.input[ed.cursor] = r
	ed.cursor++
}

// backspace removes the character before the cursor.
func (ed *lineEditor) backspace() {
	if ed.cursor == 0 {
		return
	}
	ed.input = append(ed.input[:ed.cursor-1], ed.input[ed.cursor:]...)
	ed.cursor--
}

func (ed *lineEditor) forward() {
	if ed.cursor < len(ed.input) {
		ed.cursor++
	}
}

func (ed *lineEditor) backward() {
	if ed.cursor > 0 {
		ed.cursor--
	}
}

// historyBack replaces the line with the previous entry in the history.
func (ed *lineEditor) historyBack() {
	if ed.histIdx == 0 {
		return
	}
	if ed.histIdx == len(ed.history) {
		ed.stash = append([]rune{}, ed.input...)
	}
	ed.histIdx--
	ed.replace([]rune(ed.history[ed.histIdx]))
}

// historyForward replaces the line with the next entry in the history, or
// the new line if the end of the history has been reached.
func (ed *lineEditor) historyForward() {
	if ed.histIdx >= len(ed.history) {
		return
	}
	ed.histIdx++
	if ed.histIdx == len(ed.history) {
		ed.replace(ed.stash)
		return
	}
	ed.replace([]rune(ed.history[ed.histIdx]))
}

func (ed *lineEditor) replace(r []rune) {
	ed.input = append(ed.input[:0], r...)
	ed.cursor = len(ed.input)
}
