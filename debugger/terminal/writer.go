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

package terminal

import (
	"strings"
)

// Writer adapts a Terminal Output to the io.Writer interface, so that
// functions that write to an io.Writer can print to the terminal. Every line
// of text is printed with the same style. Incomplete lines are held until
// the next call to Write() or Flush().
type Writer struct {
	Output Output
	Style  Style

	partial strings.Builder
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(output Output, style Style) *Writer {
	return &Writer{Output: output, Style: style}
}

// Write implements the io.Writer interface.
func (w *Writer) Write(p []byte) (int, error) {
	w.partial.Write(p)
	s := w.partial.String()

	i := strings.LastIndexByte(s, '\n')
	if i == -1 {
		return len(p), nil
	}

	for _, l := range strings.Split(s[:i], "\n") {
		w.Output.TermPrintLine(w.Style, l)
	}

	w.partial.Reset()
	w.partial.WriteString(s[i+1:])

	return len(p), nil
}

// Flush prints any incomplete line.
func (w *Writer) Flush() {
	if w.partial.Len() > 0 {
		w.Output.TermPrintLine(w.Style, w.partial.String())
		w.partial.Reset()
	}
}
