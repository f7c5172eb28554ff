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

package debugger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopherintcode/debugger/terminal"
	"github.com/jetsetilly/gopherintcode/disassembly"
	"github.com/jetsetilly/gopherintcode/hardware"
	"github.com/jetsetilly/gopherintcode/logger"
)

// sentinal errors returned by the debugger.
var (
	ErrNoProgram           = errors.New("debugger: no program loaded")
	ErrUnknownCommand      = errors.New("debugger: unknown command")
	ErrBadArgument         = errors.New("debugger: bad argument")
	ErrBadAddress          = errors.New("debugger: address not in memory")
	ErrHaltConditionExists = errors.New("debugger: halt condition already exists")
)

// maximum depth of nested SCRIPT commands.
const maxScriptDepth = 8

// Debugger is the basic debugging frontend for the intcode machine.
type Debugger struct {
	m    *hardware.Machine
	dsm  *disassembly.Disassembly
	term terminal.Terminal

	halt *haltConditions

	// set to false by the QUIT command
	running bool

	scriptDepth int
}

// NewDebugger creates and initialises everything required for a new debugging
// session. The machine must already have a program loaded.
func NewDebugger(m *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	if m.Mem.Len() == 0 {
		return nil, ErrNoProgram
	}

	dbg := &Debugger{
		m:    m,
		term: term,
		halt: newHaltConditions(m),
	}
	dbg.disassemble()

	return dbg, nil
}

// disassemble the program as it currently is in memory.
func (dbg *Debugger) disassemble() {
	dbg.dsm = disassembly.FromProgram(dbg.m.Mem.Snapshot(), dbg.m.Prefs.LegacyStride.Get().(bool))
}

// Start the main debugger sequence. The initScript is run before any input is
// read from the terminal and can be empty.
func (dbg *Debugger) Start(initScript string) error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.running = true

	if initScript != "" {
		err = dbg.runScriptFile(initScript)
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return dbg.inputLoop(dbg.term)
}

// inputLoop reads and executes commands until the QUIT command or until there
// is no more input.
func (dbg *Debugger) inputLoop(inp terminal.Input) error {
	for dbg.running {
		input, err := inp.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, terminal.UserInterrupt) || errors.Is(err, terminal.UserAbort) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		if !inp.IsInteractive() {
			dbg.printLine(terminal.StyleEcho, input)
		}

		err = dbg.parseInput(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// RunScript executes the commands in the io.Reader, one command per line.
// Blank lines and lines beginning with # are ignored. Errors from commands
// are printed to the terminal and do not stop the script. The returned error
// is only for problems with reading the script.
func (dbg *Debugger) RunScript(script io.Reader) error {
	dbg.running = true

	if dbg.scriptDepth >= maxScriptDepth {
		return fmt.Errorf("debugger: scripts nested too deeply")
	}
	dbg.scriptDepth++
	defer func() { dbg.scriptDepth-- }()

	scanner := bufio.NewScanner(script)
	for dbg.running && scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" || strings.HasPrefix(input, "#") {
			continue // for loop
		}

		dbg.printLine(terminal.StyleEcho, input)

		err := dbg.parseInput(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	err := scanner.Err()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	return nil
}

func (dbg *Debugger) runScriptFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer f.Close()

	logger.Logf(logger.Allow, "debugger", "running script %s", filename)

	return dbg.RunScript(f)
}

func (dbg *Debugger) prompt() terminal.Prompt {
	p := terminal.Prompt{IP: dbg.m.CPU.IP}
	if dbg.m.CPU.State.IsTerminal() {
		p.State = dbg.m.CPU.State.String()
	}
	return p
}

func (dbg *Debugger) printLine(style terminal.Style, s string, args ...any) {
	if len(args) > 0 {
		s = fmt.Sprintf(s, args...)
	}
	dbg.term.TermPrintLine(style, s)
}

// writer returns an io.Writer that prints each line to the terminal in the
// style specified. the returned writer must be flushed after use.
func (dbg *Debugger) writer(style terminal.Style) *terminal.Writer {
	return terminal.NewWriter(dbg.term, style)
}
