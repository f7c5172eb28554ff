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

// debugger keywords
const (
	cmdReset = "RESET"
	cmdQuit  = "QUIT"
	cmdRun   = "RUN"
	cmdStep  = "STEP"

	cmdCPU    = "CPU"
	cmdLast   = "LAST"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdMemory = "MEMORY"
	cmdList   = "LIST"
	cmdMemViz = "MEMVIZ"

	// halt conditions
	cmdBreak = "BREAK"
	cmdTrap  = "TRAP"
	cmdClear = "CLEAR"

	// meta
	cmdScript = "SCRIPT"
	cmdLog    = "LOG"
	cmdHelp   = "HELP"
)

// commands in the order they are listed by HELP. the usage string follows the
// command name: arguments in angle brackets are required and arguments in
// parentheses are optional
var commandTemplate = []struct {
	cmd   string
	usage string
}{
	{cmd: cmdReset},
	{cmd: cmdQuit},
	{cmd: cmdRun},
	{cmd: cmdStep, usage: "(<count>)"},
	{cmd: cmdCPU},
	{cmd: cmdLast},
	{cmd: cmdPeek, usage: "<address> (<address>...)"},
	{cmd: cmdPoke, usage: "<address> <value> (<value>...)"},
	{cmd: cmdMemory, usage: "(<width>)"},
	{cmd: cmdList, usage: "(BYTECODE|DATA)"},
	{cmd: cmdMemViz, usage: "<file>"},
	{cmd: cmdBreak, usage: "(<address>)"},
	{cmd: cmdTrap, usage: "(<address>)"},
	{cmd: cmdClear},
	{cmd: cmdScript, usage: "<file>"},
	{cmd: cmdLog, usage: "(<count>|CLEAR)"},
	{cmd: cmdHelp, usage: "(<command>)"},
}

var help = map[string]string{
	cmdReset:  "Reset the machine. Memory is restored to the program as it was loaded",
	cmdQuit:   "Exit the debugger",
	cmdRun:    "Run the program until it halts or until a break or trap condition is met",
	cmdStep:   "Execute one instruction, or the number of instructions specified",
	cmdCPU:    "Display the current state of the CPU",
	cmdLast:   "Display the result of the most recently executed instruction",
	cmdPeek:   "Inspect individual memory cells",
	cmdPoke:   "Modify consecutive memory cells starting at the address",
	cmdMemory: "Display the contents of memory",
	cmdList:   "Display the disassembly of the program. Executed instructions are marked",
	cmdMemViz: "Write a graphviz description of the machine to a file",
	cmdBreak:  "Halt execution when the IP reaches the address. With no address, list breaks",
	cmdTrap:   "Halt execution when the value in the cell changes. With no address, list traps",
	cmdClear:  "Clear all breaks and traps",
	cmdScript: "Run commands from a file",
	cmdLog:    "Display the most recent entries in the log, or clear the log",
	cmdHelp:   "Display help for all commands or for the command specified",
}
