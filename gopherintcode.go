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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherintcode/debugger"
	"github.com/jetsetilly/gopherintcode/debugger/terminal"
	"github.com/jetsetilly/gopherintcode/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopherintcode/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopherintcode/digest"
	"github.com/jetsetilly/gopherintcode/disassembly"
	"github.com/jetsetilly/gopherintcode/fuel"
	"github.com/jetsetilly/gopherintcode/hardware"
	"github.com/jetsetilly/gopherintcode/hardware/cpu/execution"
	"github.com/jetsetilly/gopherintcode/logger"
	"github.com/jetsetilly/gopherintcode/modalflag"
	"github.com/jetsetilly/gopherintcode/paths"
	"github.com/jetsetilly/gopherintcode/performance"
	"github.com/jetsetilly/gopherintcode/prefs"
	"github.com/jetsetilly/gopherintcode/programloader"
	"github.com/jetsetilly/gopherintcode/regression"
	"github.com/jetsetilly/gopherintcode/search"
	"github.com/jetsetilly/gopherintcode/statsview"
	"github.com/jetsetilly/gopherintcode/version"
)

const defaultInitScript = "debuggerInit"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate. for example, the debugger provides its
	// own handling of ctrl-c.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

// send a state request to the main thread. does nothing if sync is nil,
// which is the case when the mode functions are called from tests.
func (sync *mainSync) send(req stateRequest) {
	if sync == nil {
		return
	}
	sync.state <- req
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// default ctrl-c handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)

	err := launchMode(md, sync)
	if err != nil {
		if md.Path() == "" {
			fmt.Printf("* error: %v\n", err)
			sync.send(stateRequest{req: reqQuit, args: 10})
			return
		}
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.send(stateRequest{req: reqQuit, args: 20})
		return
	}

	sync.send(stateRequest{req: reqQuit})
}

// launchMode parses the top level mode and calls the function for that mode.
func launchMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AddSubModes("RUN", "SEARCH", "FUEL", "DEBUG", "REGRESS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		return run(md)
	case "SEARCH":
		return searchMode(md)
	case "FUEL":
		return fuelMode(md)
	case "DEBUG":
		return debug(md, sync)
	case "REGRESS":
		return regress(md, sync)
	case "PERFORMANCE":
		return perform(md)
	case "VERSION":
		return showVersion(md)
	}

	return nil
}

// preferences used by the modes that run programs.
type preferences struct {
	hardware *hardware.Preferences
	search   *search.Preferences
}

// loadPreferences from the preferences file. The command line preferences
// string is applied on top of the values in the file.
func loadPreferences(output io.Writer, cmdline string) (*preferences, error) {
	p := &preferences{
		hardware: hardware.NewPreferences(),
		search:   search.NewPreferences(),
	}

	pth := paths.ResourcePath("preferences")

	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.hardware.AddToDisk(dsk)
	if err != nil {
		return nil, err
	}
	err = p.search.AddToDisk(dsk)
	if err != nil {
		return nil, err
	}

	if cmdline != "" {
		prefs.PushCommandLineStack(cmdline)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "! unused preferences: %s\n", unused)
			}
		}()
	}

	err = dsk.Load(false)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// set debugging log echo.
func setLogEcho(log bool) {
	if log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
}

// parsePatches parses a patch description of the form "address=value,value"
// with multiple patches separated by semicolons. eg. "1=12,2;10=5".
func parsePatches(s string) ([]regression.Patch, error) {
	var patches []regression.Patch

	for _, ps := range strings.Split(s, ";") {
		ps = strings.TrimSpace(ps)
		if ps == "" {
			continue // for loop
		}

		address, values, ok := strings.Cut(ps, "=")
		if !ok {
			return nil, fmt.Errorf("patch must be of the form address=value,value (%s)", ps)
		}

		a, err := strconv.Atoi(strings.TrimSpace(address))
		if err != nil || a < 0 {
			return nil, fmt.Errorf("patch address must be a non-negative number (%s)", address)
		}

		p := regression.Patch{Address: a}
		for _, vs := range strings.Split(values, ",") {
			v, err := strconv.ParseUint(strings.TrimSpace(vs), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("patch value must be an unsigned number (%s)", vs)
			}
			p.Values = append(p.Values, v)
		}

		patches = append(patches, p)
	}

	return patches, nil
}

// parseCells parses a comma separated list of cell addresses.
func parseCells(s string) ([]int, error) {
	var cells []int
	for _, cs := range strings.Split(s, ",") {
		cs = strings.TrimSpace(cs)
		if cs == "" {
			continue // for loop
		}
		c, err := strconv.Atoi(cs)
		if err != nil || c < 0 {
			return nil, fmt.Errorf("cell address must be a non-negative number (%s)", cs)
		}
		cells = append(cells, c)
	}
	return cells, nil
}

// prepareMachine loads the program file into a new machine and applies the
// patches.
func prepareMachine(filename string, prf *preferences, patches []regression.Patch) (*hardware.Machine, error) {
	ld := programloader.NewLoader(filename)
	program, err := ld.Load()
	if err != nil {
		return nil, err
	}

	m := hardware.NewMachine(prf.hardware)
	err = m.Load(program)
	if err != nil {
		return nil, err
	}

	for _, p := range patches {
		err = m.Patch(p.Address, p.Values...)
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	patch := md.AddString("patch", "", "patch memory before running (eg. 1=12,2)")
	cells := md.AddString("cell", "0", "comma separated list of cells to print after running")
	disasm := md.AddBool("disasm", false, "print disassembly after running")
	trace := md.AddBool("digest", false, "print the digest of the instructions executed")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsCmdline := md.AddString("prefs", "", "preferences to override (eg. \"cpu.legacystride::true\")")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("intcode program required for %s mode", md)
	case 1:
		patches, err := parsePatches(*patch)
		if err != nil {
			return err
		}

		cl, err := parseCells(*cells)
		if err != nil {
			return err
		}

		prf, err := loadPreferences(md.Output, *prefsCmdline)
		if err != nil {
			return err
		}

		m, err := prepareMachine(md.GetArg(0), prf, patches)
		if err != nil {
			return err
		}

		dsm := disassembly.FromProgram(m.Mem.Snapshot(), prf.hardware.LegacyStride.Get().(bool))

		dig := digest.NewTrace()

		state, runErr := m.RunWithCheck(func(r execution.Result) (bool, error) {
			dsm.UpdateEntry(r)
			dig.Add(r)
			return true, nil
		})
		dsm.UpdateEntry(m.CPU.LastResult)
		dig.Add(m.CPU.LastResult)

		fmt.Fprintf(md.Output, "state: %s\n", state)
		if runErr != nil {
			fmt.Fprintf(md.Output, "* %v\n", runErr)
		}

		for _, c := range cl {
			v, ok := m.ReadCell(c)
			if !ok {
				fmt.Fprintf(md.Output, "cell %d: not in memory\n", c)
				continue // for loop
			}
			fmt.Fprintf(md.Output, "cell %d: %d\n", c, v)
		}

		if *trace {
			fmt.Fprintf(md.Output, "digest: %s\n", dig)
		}

		if *disasm {
			dsm.Write(md.Output, disassembly.WriteAttr{Executed: true, Data: true})
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func searchMode(md *modalflag.Modes) error {
	md.NewMode()

	target := md.AddInt("target", -1, "value to search for in cell 0 (default from preferences)")
	profile := md.AddString("profile", "NONE", "run search through profiler: CPU, MEM, ALL (comma separated)")
	stats := md.AddBool("statsview", false, "run stats server (must be built with the statsview tag)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsCmdline := md.AddString("prefs", "", "preferences to override (eg. \"search.max::199\")")

	md.AdditionalHelp(`The search looks for the noun and verb that produce the target value in cell 0.
The noun and verb are patched into consecutive cells starting at the cell given by
the search.address preference. The answer is 100 * noun + verb.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("intcode program required for %s mode", md)
	case 1:
		prof, err := performance.ParseProfileString(*profile)
		if err != nil {
			return err
		}

		prf, err := loadPreferences(md.Output, *prefsCmdline)
		if err != nil {
			return err
		}

		m, err := prepareMachine(md.GetArg(0), prf, nil)
		if err != nil {
			return err
		}

		if *stats {
			if statsview.Available() {
				statsview.Launch(md.Output)
			} else {
				fmt.Fprintln(md.Output, "! statsview not available in this build")
			}
		}

		t := uint64(prf.search.Target.Get().(int))
		if *target >= 0 {
			t = uint64(*target)
		}
		bounds := prf.search.Bounds()

		return performance.RunProfiler(prof, "search", func() error {
			s, err := search.Search(m, t, bounds)
			if err != nil {
				return err
			}
			fmt.Fprintln(md.Output, s)
			return nil
		})
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func fuelMode(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("file of module masses required for %s mode", md)
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()

		masses, err := fuel.ParseMasses(f)
		if err != nil {
			return err
		}
		fuel.Report(md.Output, masses)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	initScript := md.AddString("initscript", paths.ResourcePath(defaultInitScript), "script to run on debugger start")
	patch := md.AddString("patch", "", "patch memory before debugging (eg. 1=12,2)")
	prefsCmdline := md.AddString("prefs", "", "preferences to override (eg. \"cpu.legacystride::true\")")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("intcode program required for %s mode", md)
	case 1:
		patches, err := parsePatches(*patch)
		if err != nil {
			return err
		}

		prf, err := loadPreferences(md.Output, *prefsCmdline)
		if err != nil {
			return err
		}

		m, err := prepareMachine(md.GetArg(0), prf, patches)
		if err != nil {
			return err
		}

		var term terminal.Terminal
		switch strings.ToUpper(*termType) {
		default:
			fmt.Fprintf(md.Output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
			fallthrough
		case "PLAIN":
			term = plainterm.NewPlainTerminal(nil, nil)
		case "COLOR":
			term = &colorterm.ColorTerminal{}
		}

		// the colour terminal is not available on every platform
		if err := term.Initialise(); err != nil {
			fmt.Fprintf(md.Output, "! %v: defaulting to plain terminal\n", err)
			term = plainterm.NewPlainTerminal(nil, nil)
		} else {
			term.CleanUp()
		}

		// turn off fallback ctrl-c handling. the terminal reports ctrl-c as a
		// user interrupt
		sync.send(stateRequest{req: reqNoIntSig})

		dbg, err := debugger.NewDebugger(m, term)
		if err != nil {
			return err
		}

		// the default init script is optional
		script := *initScript
		if script == paths.ResourcePath(defaultInitScript) {
			if _, err := os.Stat(script); err != nil {
				script = ""
			}
		}

		return dbg.Start(script)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "run performance check through profiler: CPU, MEM, ALL (comma separated)")
	patch := md.AddString("patch", "", "patch memory before running (eg. 1=12,2)")
	prefsCmdline := md.AddString("prefs", "", "preferences to override (eg. \"cpu.legacystride::true\")")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("intcode program required for %s mode", md)
	case 1:
		prof, err := performance.ParseProfileString(*profile)
		if err != nil {
			return err
		}

		patches, err := parsePatches(*patch)
		if err != nil {
			return err
		}

		prf, err := loadPreferences(md.Output, *prefsCmdline)
		if err != nil {
			return err
		}

		m, err := prepareMachine(md.GetArg(0), prf, patches)
		if err != nil {
			return err
		}

		_, err = performance.Check(md.Output, prof, m, *duration)
		return err
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regress(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	dbFile := md.AddString("db", "", "path to regression database (default in resource directory)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dbPath := *dbFile
	if dbPath == "" {
		dbPath, err = paths.MakeResourceDir(regression.DBFile)
		if err != nil {
			return err
		}
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "fail on first error")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		// turn off default sigint handling
		sync.send(stateRequest{req: reqNoIntSig})

		return regression.RegressRunTests(md.Output, dbPath, *verbose, *failOnError, md.RemainingArgs())

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return regression.RegressList(md.Output, dbPath)
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			return regression.RegressDelete(md.Output, confirmation, dbPath, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at at time")
		}

	case "ADD":
		return regressAdd(md, dbPath)
	}

	return nil
}

func regressAdd(md *modalflag.Modes, dbPath string) error {
	md.NewMode()

	patch := md.AddString("patch", "", "patch memory before running (eg. 1=12,2)")
	cells := md.AddString("cells", "0", "comma separated list of cells to record")
	legacy := md.AddBool("legacystride", false, "use legacy instruction stride")
	inline := md.AddBool("inline", false, "store the program in the database rather than the filename")
	notes := md.AddString("notes", "", "additional annotation for the database")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	md.AdditionalHelp(
		`The program is run and the final state of the machine and the value of the
recorded cells are stored in the database. The hash of the program is also stored
and running the regression test will fail with an error if the program file has
changed.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("intcode program required for %s mode", md)
	case 1:
		patches, err := parsePatches(*patch)
		if err != nil {
			return err
		}

		cl, err := parseCells(*cells)
		if err != nil {
			return err
		}

		ld := programloader.NewLoader(md.GetArg(0))
		if *inline {
			if _, err := ld.Load(); err != nil {
				return err
			}
		}

		reg := regression.NewProgramRegression(ld, patches, cl...)
		reg.LegacyStride = *legacy
		reg.Notes = *notes

		err = regression.RegressAdd(md.Output, dbPath, reg)
		if err != nil {
			// using carriage return (without newline) at beginning of error
			// message because we want to overwrite the last output from
			// RegressAdd()
			return fmt.Errorf("\rerror adding regression test: %w", err)
		}
	default:
		return fmt.Errorf("regression tests can only be added one at a time")
	}

	return nil
}
