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

//go:build !windows

package colorterm

import (
	"bufio"
	"io"
	"os"

	"github.com/jetsetilly/gopherintcode/debugger/terminal"
	"github.com/jetsetilly/gopherintcode/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopherintcode/debugger/terminal/colorterm/easyterm/ansi"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal

	reader *bufio.Reader
	editor lineEditor

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	ct.reader = bufio.NewReader(os.Stdin)
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// input has already been echoed by the line editor
	if style == terminal.StyleEcho {
		return
	}

	switch style {
	case terminal.StyleHelp:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleFeedback:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleCPUStep:
		ct.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleInstrument:
		ct.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleLog:
		ct.TermPrint(ansi.DimPens["green"])
	case terminal.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	}

	ct.TermPrint(s)
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint("\n")
}

// redraw the prompt and the line being edited, leaving the cursor in the
// correct position.
func (ct *ColorTerminal) redraw(prompt string) {
	ct.TermPrint("\r")
	ct.TermPrint(ansi.ClearLine)
	ct.TermPrint(ansi.PenStyles["bold"])
	ct.TermPrint(prompt)
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint(string(ct.editor.input))
	ct.TermPrint(ansi.CursorMove(ct.editor.cursor - len(ct.editor.input)))
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	p := prompt.String()
	ct.editor.begin()
	ct.redraw(p)

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			ct.TermPrint("\r\n")
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\r\n")
			return "", terminal.UserInterrupt

		case easyterm.KeyEndOfFile:
			if len(ct.editor.input) == 0 {
				ct.TermPrint("\r\n")
				return "", io.EOF
			}

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			_ = easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.TermPrint("\r\n")
			return ct.editor.commit(), nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			ct.editor.backspace()

		case easyterm.KeyEsc:
			r, _, err = ct.reader.ReadRune()
			if err != nil || r != easyterm.EscCursor {
				break // switch
			}
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				break // switch
			}
			switch r {
			case easyterm.CursorUp:
				ct.editor.historyBack()
			case easyterm.CursorDown:
				ct.editor.historyForward()
			case easyterm.CursorForward:
				ct.editor.forward()
			case easyterm.CursorBackward:
				ct.editor.backward()
			}

		default:
			if r >= ' ' {
				ct.editor.insert(r)
			}
		}

		ct.redraw(p)
	}
}
