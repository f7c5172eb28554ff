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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherintcode/debugger/terminal"
	"github.com/jetsetilly/gopherintcode/disassembly"
	"github.com/jetsetilly/gopherintcode/hardware/cpu"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/logger"
)

// default number of entries printed by the LOG command.
const defaultLogTail = 10

// parseInput splits the input into tokens and executes the command.
func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch cmd {
	case cmdQuit:
		dbg.running = false

	case cmdReset:
		dbg.m.Reset()
		dbg.halt.refresh()
		dbg.disassemble()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRun:
		dbg.run()

	case cmdStep:
		count := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("%w: step count must be a positive number (%s)", ErrBadArgument, args[0])
			}
			count = n
		}
		dbg.step(count)

	case cmdCPU:
		dbg.printLine(terminal.StyleInstrument, dbg.m.CPU.String())

	case cmdLast:
		if !dbg.m.CPU.LastResult.Final {
			dbg.printLine(terminal.StyleFeedback, "no instruction executed yet")
			break // switch
		}
		dbg.printLine(terminal.StyleInstrument, dbg.m.CPU.LastResult.String())

	case cmdPeek:
		if len(args) == 0 {
			return fmt.Errorf("%w: PEEK requires an address", ErrBadArgument)
		}
		for _, a := range args {
			address, err := parseAddress(a)
			if err != nil {
				return err
			}
			v, ok := dbg.m.ReadCell(address)
			if !ok {
				return fmt.Errorf("%w: %d", ErrBadAddress, address)
			}
			dbg.printLine(terminal.StyleInstrument, "%04d -> %d", address, v)
		}

	case cmdPoke:
		if len(args) < 2 {
			return fmt.Errorf("%w: POKE requires an address and at least one value", ErrBadArgument)
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		values := make([]uint64, 0, len(args)-1)
		for _, a := range args[1:] {
			v, err := strconv.ParseUint(a, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: value must be an unsigned number (%s)", ErrBadArgument, a)
			}
			values = append(values, v)
		}
		err = dbg.m.Patch(address, values...)
		if err != nil {
			return err
		}
		dbg.halt.refresh()
		dbg.printLine(terminal.StyleFeedback, "poked %d cell(s) at %04d", len(values), address)

	case cmdMemory:
		width := 8
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("%w: width must be a positive number (%s)", ErrBadArgument, args[0])
			}
			width = n
		}
		for _, l := range strings.Split(dbg.m.Mem.Dump(width), "\n") {
			dbg.printLine(terminal.StyleInstrument, l)
		}

	case cmdList:
		attr := disassembly.WriteAttr{Executed: true}
		for _, a := range args {
			switch strings.ToUpper(a) {
			case "BYTECODE":
				attr.ByteCode = true
			case "DATA":
				attr.Data = true
			default:
				return fmt.Errorf("%w: unknown LIST option (%s)", ErrBadArgument, a)
			}
		}
		w := dbg.writer(terminal.StyleInstrument)
		dbg.dsm.Write(w, attr)
		w.Flush()

	case cmdMemViz:
		if len(args) == 0 {
			return fmt.Errorf("%w: MEMVIZ requires a filename", ErrBadArgument)
		}
		err := dbg.memviz(args[0])
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "memviz written to %s", args[0])

	case cmdBreak:
		if len(args) == 0 {
			dbg.listConditions("breaks", dbg.halt.listBreaks())
			break // switch
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		err = dbg.halt.addBreak(uint64(address))
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "break on IP %04d", address)

	case cmdTrap:
		if len(args) == 0 {
			dbg.listConditions("traps", dbg.halt.listTraps())
			break // switch
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		err = dbg.halt.addTrap(address)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "trap on %04d", address)

	case cmdClear:
		dbg.halt.clear()
		dbg.printLine(terminal.StyleFeedback, "breaks and traps cleared")

	case cmdScript:
		if len(args) == 0 {
			return fmt.Errorf("%w: SCRIPT requires a filename", ErrBadArgument)
		}
		return dbg.runScriptFile(args[0])

	case cmdLog:
		count := defaultLogTail
		if len(args) > 0 {
			if strings.ToUpper(args[0]) == "CLEAR" {
				logger.Clear()
				dbg.printLine(terminal.StyleFeedback, "log cleared")
				break // switch
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("%w: log count must be a positive number (%s)", ErrBadArgument, args[0])
			}
			count = n
		}
		w := dbg.writer(terminal.StyleLog)
		logger.Tail(w, count)
		w.Flush()

	case cmdHelp:
		return dbg.help(args)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, tokens[0])
	}

	return nil
}

// parseAddress converts the argument to a memory address. the address is not
// checked against the size of memory.
func parseAddress(a string) (int, error) {
	address, err := strconv.Atoi(a)
	if err != nil || address < 0 {
		return 0, fmt.Errorf("%w: address must be a non-negative number (%s)", ErrBadArgument, a)
	}
	return address, nil
}

// step executes up to count instructions, stopping early if the machine stops
// running or a halt condition is met.
func (dbg *Debugger) step(count int) {
	for i := 0; i < count; i++ {
		err := dbg.m.Step()
		dbg.afterInstruction()
		if err != nil {
			dbg.stepError(err)
			return
		}
		dbg.printLine(terminal.StyleCPUStep, dbg.m.CPU.LastResult.String())

		if dbg.m.CPU.State.IsTerminal() {
			dbg.printLine(terminal.StyleFeedback, "%s at %04d", dbg.m.CPU.State, dbg.m.CPU.IP)
			return
		}

		if cond := dbg.halt.check(); cond != "" {
			dbg.printLine(terminal.StyleFeedback, cond)
			return
		}
	}
}

// run until the machine stops running or until a halt condition is met.
func (dbg *Debugger) run() {
	if dbg.m.CPU.State.IsTerminal() {
		dbg.stepError(cpu.ErrNotRunning)
		return
	}

	var cond string

	_, err := dbg.m.RunWithCheck(func(_ execution.Result) (bool, error) {
		dbg.afterInstruction()
		cond = dbg.halt.check()
		return cond == "", nil
	})

	if cond != "" {
		dbg.printLine(terminal.StyleFeedback, cond)
		return
	}

	// the final instruction is not seen by the check function
	dbg.afterInstruction()

	if err != nil {
		dbg.stepError(err)
		return
	}

	dbg.printLine(terminal.StyleFeedback, "%s at %04d", dbg.m.CPU.State, dbg.m.CPU.IP)
}

// afterInstruction updates the disassembly with the result of the most
// recent instruction.
func (dbg *Debugger) afterInstruction() {
	if dbg.m.CPU.LastResult.Final {
		dbg.dsm.UpdateEntry(dbg.m.CPU.LastResult)
	}
}

func (dbg *Debugger) stepError(err error) {
	if errors.Is(err, cpu.ErrNotRunning) {
		dbg.printLine(terminal.StyleError, "machine has stopped (%s). use RESET to start again", dbg.m.CPU.State)
		return
	}
	dbg.printLine(terminal.StyleCPUStep, dbg.m.CPU.LastResult.String())
	dbg.printLine(terminal.StyleError, err.Error())
}

func (dbg *Debugger) listConditions(kind string, l []string) {
	if len(l) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no %s", kind)
		return
	}
	for _, s := range l {
		dbg.printLine(terminal.StyleInstrument, s)
	}
}

// memviz writes a graphviz description of the CPU and memory to the file.
func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.m.CPU, dbg.m.Mem)

	return nil
}

func (dbg *Debugger) help(args []string) error {
	if len(args) > 0 {
		cmd := strings.ToUpper(args[0])
		for _, c := range commandTemplate {
			if c.cmd == cmd {
				dbg.printLine(terminal.StyleHelp, strings.TrimSpace(fmt.Sprintf("%s %s", c.cmd, c.usage)))
				dbg.printLine(terminal.StyleHelp, "  %s", help[c.cmd])
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	for _, c := range commandTemplate {
		dbg.printLine(terminal.StyleHelp, "%-8s %s", c.cmd, help[c.cmd])
	}
	return nil
}
