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
	"errors"
	"fmt"
)

// Sentinal errors. Returned by TermRead() when the user interrupts or aborts
// input. Not all terminal implementations will return these errors.
var (
	UserInterrupt = errors.New("user interrupt")
	UserAbort     = errors.New("user abort")
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input with any trailing newline
	// removed. io.EOF is returned when there is no more input.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive should return true for implementations that expect a
	// user to be typing the input.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// making sure the terminal is returned to canonical mode.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can choose
// to interpret the style in any way it sees fit.
type Style int

// List of terminal styles.
const (
	// input from the user echoed back to the output. implementations can
	// choose not to print this if the input is already visible
	StyleEcho Style = iota

	// information from the help command
	StyleHelp

	// information as a result of an error
	StyleError

	// the result of a command, where the command doesn't naturally produce
	// any other output
	StyleFeedback

	// an executed instruction
	StyleCPUStep

	// information about the state of the machine (eg. CPU, MEMORY, PEEK)
	StyleInstrument

	// entries from the central logger
	StyleLog
)

// Prompt specifies the prompt text.
type Prompt struct {
	// the address of the next instruction
	IP uint64

	// the state of the machine, if it is not running
	State string
}

// String returns the prompt with standard decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	if p.State == "" {
		return fmt.Sprintf("[ %04d ] >> ", p.IP)
	}
	return fmt.Sprintf("[ %04d %s ] >> ", p.IP, p.State)
}
