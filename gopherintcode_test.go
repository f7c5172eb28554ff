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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherintcode/modalflag"
	"github.com/jetsetilly/gopherintcode/test"
)

// adds cells 9 and 10 into cell 3 and multiplies the result by cell 11,
// storing the result in cell 0
const sampleProgram = "1,9,10,3,2,3,11,0,99,30,40,50\n"

// the value in cell 0 is 100 * cell 9 + cell 10
const valueProgram = "2,9,11,12,1,12,10,0,99,0,0,100,0\n"

// workspace changes to a new temporary directory containing an empty
// resource directory. the directory is restored when the test ends.
func workspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, ".gopherintcode"), 0o700))

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	pth := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(pth, []byte(content), 0o600))
	return pth
}

func launchWithArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	w := &test.Writer{}
	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	err := launchMode(md, nil)
	return w.String(), err
}

func TestParsePatches(t *testing.T) {
	patches, err := parsePatches("1=12,2; 10=5")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(patches), 2)
	test.ExpectEquality(t, patches[0].String(), "1=12,2")
	test.ExpectEquality(t, patches[1].String(), "10=5")

	patches, err = parsePatches("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(patches), 0)

	for _, bad := range []string{"1", "x=1", "-1=1", "1=a", "1=1,,2"} {
		_, err = parsePatches(bad)
		test.ExpectFailure(t, err, bad)
	}
}

func TestParseCells(t *testing.T) {
	cells, err := parseCells("0, 3,")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(cells), 2)
	test.ExpectEquality(t, cells[1], 3)

	_, err = parseCells("0,-1")
	test.ExpectFailure(t, err)
}

func TestRunMode(t *testing.T) {
	dir := workspace(t)
	pth := writeFile(t, dir, "sample.txt", sampleProgram)

	out, err := launchWithArgs(t, "RUN", "-cell", "0,3", pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "state: halted\ncell 0: 3500\ncell 3: 70\n")

	// RUN is the default mode
	out, err = launchWithArgs(t, pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "state: halted\ncell 0: 3500\n")

	// patching an invalid opcode over the multiply instruction
	out, err = launchWithArgs(t, "RUN", "-patch", "4=7", "-disasm", pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.HasPrefix(out, "state: invalid opcode\n* "), true)
	test.ExpectEquality(t, strings.Contains(out, "cell 0: 1\n"), true)
	test.ExpectEquality(t, strings.Contains(out, "* 0000  ADD [9] [10] -> [3]\n"), true)
	test.ExpectEquality(t, strings.Contains(out, "* 0004  ??? 7\n"), true)

	// the digest is stable between runs and changes with the patches
	out, err = launchWithArgs(t, "RUN", "-digest", pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(out, "digest: "), true)
	again, err := launchWithArgs(t, "RUN", "-digest", pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, again, out)
	patched, err := launchWithArgs(t, "RUN", "-digest", "-patch", "9=1", pth)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, patched, out)

	_, err = launchWithArgs(t, "RUN")
	test.ExpectFailure(t, err)
	_, err = launchWithArgs(t, "RUN", "-patch", "20=1", pth)
	test.ExpectFailure(t, err)
	_, err = launchWithArgs(t, "RUN", filepath.Join(dir, "missing.txt"))
	test.ExpectFailure(t, err)
}

func TestLegacyStridePreference(t *testing.T) {
	dir := workspace(t)

	// the first record is skipped with the legacy stride so the first
	// instruction executed is the halt
	pth := writeFile(t, dir, "legacy.txt", "1,0,0,0,99\n")

	out, err := launchWithArgs(t, "RUN", "-prefs", "cpu.legacystride::true", pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "state: halted\ncell 0: 1\n")

	out, err = launchWithArgs(t, "RUN", pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "state: halted\ncell 0: 2\n")
}

func TestSearchMode(t *testing.T) {
	dir := workspace(t)
	pth := writeFile(t, dir, "value.txt", valueProgram)

	out, err := launchWithArgs(t, "SEARCH", "-target", "1202", "-prefs", "search.address::9", pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "noun=12 verb=2 answer=1202 (1203 trials)\n")

	_, err = launchWithArgs(t, "SEARCH", "-target", "1", "-prefs", "search.address::9; search.max::0", pth)
	test.ExpectFailure(t, err)

	_, err = launchWithArgs(t, "SEARCH", "-profile", "FOO", pth)
	test.ExpectFailure(t, err)
}

func TestFuelMode(t *testing.T) {
	dir := workspace(t)
	pth := writeFile(t, dir, "masses.txt", "1969\n100756\n")

	out, err := launchWithArgs(t, "FUEL", pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "Total fuel required: 34237\nNew total fuel required: 51312\n")
}

func TestRegressMode(t *testing.T) {
	dir := workspace(t)
	pth := writeFile(t, dir, "sample.txt", sampleProgram)

	out, err := launchWithArgs(t, "REGRESS", "ADD", "-cells", "0,3", pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(out, "added: 000 [program] sample"), true)

	out, err = launchWithArgs(t, "REGRESS", "ADD", "-inline", "-patch", "11=2", pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(out, "added: 001 [program] sample 11=2"), true)

	out, err = launchWithArgs(t, "REGRESS", "LIST")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.HasSuffix(out, "Total: 2\n"), true)

	out, err = launchWithArgs(t, "REGRESS")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.HasSuffix(out, "regression tests: 2 succeed, 0 fail, 0 skipped\n"), true)

	out, err = launchWithArgs(t, "REGRESS", "DELETE", "-yes", "0")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(out, "deleted test #0"), true)

	// the database is in the resource directory
	_, err = os.Stat(filepath.Join(dir, ".gopherintcode", "regression.yaml"))
	test.ExpectSuccess(t, err)

	// an alternative database
	out, err = launchWithArgs(t, "REGRESS", "-db", filepath.Join(dir, "other.yaml"), "ADD", pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(out, "added: 000"), true)
}

func TestVersionMode(t *testing.T) {
	out, err := launchWithArgs(t, "VERSION")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.HasPrefix(out, "GopherIntcode "), true)
}

func TestHelp(t *testing.T) {
	out, err := launchWithArgs(t, "-help")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(out, "available sub-modes: RUN, SEARCH, FUEL"), true)
}
